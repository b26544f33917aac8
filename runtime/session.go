// Package runtime hosts the session loop. The session is the single owner
// of the store and the call state machine: every command and every event
// from the channels, the poller and the async fetches is applied here, one
// at a time, so no other synchronization exists around session state.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"yatta-chat/channel"
	"yatta-chat/contract"
	"yatta-chat/domain"
	"yatta-chat/domain/event"
	apperrors "yatta-chat/errors"
	"yatta-chat/poll"
	"yatta-chat/signaling"
	"yatta-chat/store"
)

const defaultSinkTimeout = 2 * time.Second

// Deps are the session's collaborators. All of them are called from the
// session goroutine only.
type Deps struct {
	API      contract.ChatAPI
	Tokens   contract.TokenService
	Messages contract.MessageLink
	Inbox    contract.InboxLink
	Notifier contract.Notifier
	Media    contract.MediaTransport
}

type Session struct {
	log  *slog.Logger
	self domain.FlexID
	deps Deps

	commands chan domain.Command
	events   chan event.DomainEvent

	store   *store.Store
	machine *signaling.Machine
	sinks   []contract.EventSink

	pollInterval time.Duration
	sinkTimeout  time.Duration

	// Everything below is touched only inside Run.
	ctx        context.Context
	selected   domain.FlexID
	foreground bool
	inboxOpen  bool
	poller     *poll.Scheduler
	parked     []any
}

func NewSession(
	log *slog.Logger,
	self domain.FlexID,
	deps Deps,
	commands chan domain.Command,
	events chan event.DomainEvent,
	pollInterval time.Duration,
) *Session {
	s := &Session{
		log:          log,
		self:         self,
		deps:         deps,
		commands:     commands,
		events:       events,
		store:        store.New(log),
		pollInterval: pollInterval,
		sinkTimeout:  defaultSinkTimeout,
		foreground:   true,
	}
	s.machine = signaling.NewMachine(log, s, s)
	return s
}

// Add registers event sinks; they run on the session goroutine after each
// event is applied.
func (s *Session) Add(sinks ...contract.EventSink) *Session {
	s.sinks = append(s.sinks, sinks...)
	return s
}

// Selected reports the currently selected conversation. Meant for sinks
// constructed with a provider closure; reading it from another goroutine
// is not supported.
func (s *Session) Selected() domain.FlexID { return s.selected }

// Run is the session loop. It opens the inbox channel, starts the polling
// fallback, then applies commands and events until Shutdown or context
// cancellation.
func (s *Session) Run(ctx context.Context) error {
	s.ctx = ctx
	s.deps.Inbox.Open(ctx)
	s.syncScheduler(ctx)
	s.fetchConversations(ctx)

	for {
		select {
		case <-ctx.Done():
			s.teardown()
			return ctx.Err()
		case cmd := <-s.commands:
			if _, stop := cmd.(domain.Shutdown); stop {
				s.teardown()
				return nil
			}
			s.applyCommand(ctx, cmd)
		case evt := <-s.events:
			s.applyEvent(ctx, evt)
		}
	}
}

func (s *Session) applyCommand(ctx context.Context, cmd domain.Command) {
	switch c := cmd.(type) {
	case domain.SelectConversation:
		s.selectConversation(ctx, c.ID)
	case domain.SendText:
		s.sendText(ctx, c.Text)
	case domain.StartConversation:
		s.startConversation(ctx, c.TargetUser)
	case domain.StartCall:
		if s.selected.IsZero() {
			s.deps.Notifier.Notice("select a conversation before calling")
			return
		}
		if err := s.machine.StartCall(s.selected, c.Kind); err != nil {
			s.deps.Notifier.Notice("call could not be started")
			s.log.Warn("Outgoing call refused", "error", err)
		}
	case domain.AcceptCall:
		s.acceptCall(ctx)
	case domain.RejectCall:
		if err := s.machine.RejectLocal(); err != nil {
			s.log.Debug("No incoming call to reject")
		}
	case domain.EndCall:
		if err := s.machine.EndLocal(); err != nil {
			s.log.Debug("No active call to end")
		}
	case domain.SetVisibility:
		s.foreground = c.Foreground
		if s.poller != nil {
			s.poller.SetForeground(ctx, c.Foreground)
		}
	case domain.Snapshot:
		c.Reply <- s.snapshot()
	default:
		s.log.Warn(fmt.Sprintf("Unknown command %T", cmd))
	}
}

func (s *Session) applyEvent(ctx context.Context, evt event.DomainEvent) {
	switch e := evt.(type) {
	case event.ChannelOpened:
		s.channelOpened(ctx, e)
	case event.ChannelClosed:
		s.channelClosed(ctx, e)
	case event.MessageReceived:
		s.store.UpsertMessage(e.Message)
	case event.InboxNotice:
		// Something moved in another conversation; refresh the list so
		// ordering and last-message summaries stay current.
		s.fetchConversations(ctx)
		if e.Event == "read" {
			s.store.MarkRead(e.Conv, e.MessageID, time.Now())
		}
	case event.MessageRead:
		s.store.MarkRead(e.Conv, e.MessageID, e.At)
	case event.CallInviteSent:
		s.machine.HandleInviteEcho(e.CallID)
	case event.CallAccepted:
		s.machine.HandleAccepted(e.CallID)
	case event.CallRejected:
		s.machine.HandleRejected()
	case event.CallBusy:
		s.machine.HandleBusy()
	case event.CallIncoming:
		s.machine.HandleIncoming(e.Conv, e.CallID, e.Kind, e.From)
	case event.CallEnded:
		s.machine.HandleEnded(e.CallID)
	case event.TokenObtained:
		s.machine.HandleTokenObtained(e.CallID, e.Room)
	case event.TokenFailed:
		s.machine.HandleTokenFailed(e.CallID, e.Err)
	case event.RefreshDue:
		s.fetchConversations(ctx)
	case event.ConversationsFetched:
		s.store.ReplaceConversations(e.Conversations)
	case event.MessagesFetched:
		for _, m := range e.Messages {
			s.store.UpsertMessage(m)
		}
	case event.ConversationStarted:
		s.store.UpsertConversation(e.Conv)
		s.selectConversation(ctx, e.Conv.ID)
	default:
		s.log.Debug(fmt.Sprintf("Unhandled event %T", evt))
	}
	s.fanout(ctx, evt)
}

// fanout hands the applied event to every sink. A sink failure is logged
// and never disturbs the loop.
func (s *Session) fanout(ctx context.Context, evt event.DomainEvent) {
	if len(s.sinks) == 0 {
		return
	}
	sinkCtx, cancel := context.WithTimeout(ctx, s.sinkTimeout)
	defer cancel()
	for _, sink := range s.sinks {
		if err := sink.Consume(sinkCtx, evt); err != nil {
			s.log.Warn("Sink failed", "sink", fmt.Sprintf("%T", sink), "error", err)
		}
	}
}

func (s *Session) selectConversation(ctx context.Context, id domain.FlexID) {
	s.selected = id
	s.parked = nil
	s.deps.Messages.Open(ctx, id)
	if !id.IsZero() {
		s.fetchMessages(ctx, id)
	}
	s.syncScheduler(ctx)
}

func (s *Session) sendText(ctx context.Context, text string) {
	if s.selected.IsZero() {
		s.log.Warn("Send refused", "error", apperrors.ErrNoConversation)
		s.deps.Notifier.Notice("select a conversation first")
		return
	}
	msg, viaChannel, err := s.deps.Messages.Send(ctx, text)
	if err != nil {
		s.deps.Notifier.Notice("message could not be sent")
		s.log.Warn("Send failed on both paths", "error", err)
		return
	}
	if !viaChannel {
		// Fallback delivery: no channel echo will come, apply the
		// service's response directly.
		s.store.UpsertMessage(msg)
	}
}

func (s *Session) startConversation(ctx context.Context, target domain.FlexID) {
	go func() {
		conv, err := s.deps.API.StartOrGetConversation(ctx, target)
		if err != nil {
			s.log.Warn("start-or-get failed", "target", target.Int64(), "error", err)
			return
		}
		s.post(ctx, event.ConversationStarted{Conv: conv})
	}()
}

// acceptCall binds the message channel to the caller's conversation before
// answering, so the accept frame has a socket to ride once it opens.
func (s *Session) acceptCall(ctx context.Context) {
	call := s.machine.Active()
	if call != nil && call.Conversation != s.selected {
		s.selectConversation(ctx, call.Conversation)
	}
	if err := s.machine.AcceptLocal(); err != nil {
		s.log.Debug("No incoming call to accept")
	}
}

func (s *Session) channelOpened(ctx context.Context, e event.ChannelOpened) {
	switch e.Kind {
	case event.ChannelInbox:
		s.inboxOpen = true
		s.syncScheduler(ctx)
	case event.ChannelMessage:
		// An open notice from a superseded link must not release frames
		// parked for the currently bound conversation.
		if e.Conv == s.deps.Messages.Conversation() {
			s.flushParked()
		}
	}
}

func (s *Session) channelClosed(ctx context.Context, e event.ChannelClosed) {
	if !e.Clean() {
		s.log.Warn("Channel closed abnormally", "kind", string(e.Kind), "code", e.Code)
	}
	if e.Kind == event.ChannelInbox {
		s.inboxOpen = false
		s.syncScheduler(ctx)
	}
}

// syncScheduler enforces the fallback precondition: the poller runs while
// no conversation is selected and the inbox channel is down, and not a
// tick longer.
func (s *Session) syncScheduler(ctx context.Context) {
	want := s.selected.IsZero() && !s.inboxOpen
	if want && s.poller == nil {
		s.poller = poll.Start(ctx, s.log, s.pollInterval, s.foreground, s.events)
		return
	}
	if !want && s.poller != nil {
		s.poller.Retire()
		s.poller = nil
	}
}

func (s *Session) fetchConversations(ctx context.Context) {
	go func() {
		list, err := s.deps.API.Conversations(ctx)
		if err != nil {
			s.log.Warn("Conversation fetch failed", "error", err)
			return
		}
		s.post(ctx, event.ConversationsFetched{Conversations: list})
	}()
}

func (s *Session) fetchMessages(ctx context.Context, conversation domain.FlexID) {
	go func() {
		list, err := s.deps.API.Messages(ctx, conversation)
		if err != nil {
			s.log.Warn("Message fetch failed", "conversation", conversation.Int64(), "error", err)
			return
		}
		s.post(ctx, event.MessagesFetched{Conv: conversation, Messages: list})
	}()
}

func (s *Session) post(ctx context.Context, e event.DomainEvent) {
	select {
	case s.events <- e:
	case <-ctx.Done():
	}
}

func (s *Session) snapshot() domain.SessionView {
	view := domain.SessionView{
		Self:          s.self,
		Selected:      s.selected,
		Conversations: s.store.ListConversations(nil),
		CallState:     string(s.machine.State()),
		InboxOpen:     s.inboxOpen,
		Polling:       s.poller != nil,
	}
	if !s.selected.IsZero() {
		view.Messages = s.store.MessagesFor(s.selected)
	}
	if call := s.machine.Active(); call != nil {
		view.CallID = call.ID
	}
	return view
}

// teardown runs the shutdown sequence in order: the call first (one
// best-effort call_end while the channel may still be up), then both
// channels, then the poller.
func (s *Session) teardown() {
	s.machine.Teardown()
	s.deps.Messages.Retire()
	s.deps.Inbox.Retire()
	if s.poller != nil {
		s.poller.Retire()
		s.poller = nil
	}
	s.log.Info("Session stopped")
}

// --- signaling.Signaler -------------------------------------------------

// Outbound call frames ride the message channel. A frame produced while
// the channel is still connecting is parked and flushed on open; control
// frames are tolerant of loss by design of the state machine.

func (s *Session) SendInvite(conversation domain.FlexID, kind domain.CallKind, callID string) error {
	return s.signal(channel.NewCallInvite(conversation, kind, callID))
}

func (s *Session) SendAccept(callID string) error {
	return s.signal(channel.NewCallAccept(callID))
}

func (s *Session) SendReject(callID string) error {
	return s.signal(channel.NewCallReject(callID))
}

func (s *Session) SendEnd(callID string) error {
	return s.signal(channel.NewCallEnd(callID))
}

func (s *Session) signal(frame any) error {
	if s.deps.Messages.IsOpen() {
		return s.deps.Messages.SendSignal(frame)
	}
	if s.deps.Messages.Conversation().IsZero() {
		return apperrors.ErrChannelNotOpen
	}
	s.parked = append(s.parked, frame)
	return nil
}

func (s *Session) flushParked() {
	for _, frame := range s.parked {
		if err := s.deps.Messages.SendSignal(frame); err != nil {
			s.log.Warn("Parked signal not delivered", "error", err)
		}
	}
	s.parked = nil
}

// --- signaling.Effects --------------------------------------------------

func (s *Session) RequestToken(call domain.CallSession) {
	ctx := s.ctx
	go func() {
		room, err := s.deps.Tokens.Token(ctx, call.Conversation, call.Kind, call.ID)
		if err != nil {
			s.post(ctx, event.TokenFailed{CallID: call.ID, Err: err})
			return
		}
		s.post(ctx, event.TokenObtained{CallID: call.ID, Room: room})
	}()
}

func (s *Session) OpenMedia(call domain.CallSession) error {
	if call.Room == nil {
		return apperrors.ErrTokenUnavailable
	}
	return s.deps.Media.Join(*call.Room)
}

func (s *Session) CloseMedia() { s.deps.Media.Leave() }

func (s *Session) Alert(reason string) { s.deps.Notifier.Alert(reason) }

func (s *Session) Notice(message string) { s.deps.Notifier.Notice(message) }
