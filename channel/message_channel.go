package channel

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"yatta-chat/contract"
	"yatta-chat/domain"
	"yatta-chat/domain/event"
	apperrors "yatta-chat/errors"
	"yatta-chat/infrastructure/realtime"
)

// MessageChannel manages the single realtime connection bound to the
// currently selected conversation. Open, Send and Retire are only ever
// called from the session goroutine, so the manager carries no lock; the
// pump goroutine communicates exclusively through the event queue.
type MessageChannel struct {
	log    *slog.Logger
	dialer *websocket.Dialer
	urlFor func(domain.FlexID) string
	api    contract.ChatAPI
	events chan<- event.DomainEvent
	grace  time.Duration

	conn  *realtime.Conn
	bound domain.FlexID
}

func NewMessageChannel(
	log *slog.Logger,
	dialer *websocket.Dialer,
	urlFor func(domain.FlexID) string,
	api contract.ChatAPI,
	events chan<- event.DomainEvent,
	grace time.Duration,
) *MessageChannel {
	return &MessageChannel{
		log:    log,
		dialer: dialer,
		urlFor: urlFor,
		api:    api,
		events: events,
		grace:  grace,
	}
}

// Open binds the channel to a conversation. A live connection for the same
// conversation is left alone; a connection for a different conversation is
// fully retired before the new dial starts, so at most one connection ever
// exists.
func (m *MessageChannel) Open(ctx context.Context, conversation domain.FlexID) {
	if conversation == m.bound && m.conn != nil && m.conn.Phase() <= realtime.Open {
		return
	}
	if m.conn != nil {
		m.conn.Retire(m.grace)
	}
	m.bound = conversation
	if conversation.IsZero() {
		m.conn = nil
		return
	}
	conn := realtime.Dial(ctx, m.log, m.dialer, m.urlFor(conversation))
	m.conn = conn
	go m.pump(ctx, conn, conversation)
}

// Send delivers text channel-first with a request/response fallback. The
// returned message is only populated on the fallback path; the channel path
// answers with a server echo instead. Failure of both paths is recoverable:
// the store is untouched and the caller surfaces the error.
func (m *MessageChannel) Send(ctx context.Context, text string) (domain.Message, bool, error) {
	if m.bound.IsZero() {
		return domain.Message{}, false, apperrors.ErrNoConversation
	}
	if m.conn != nil && m.conn.Phase() == realtime.Open {
		if err := m.conn.Send(NewTextFrame(text)); err == nil {
			return domain.Message{}, true, nil
		}
		m.log.Warn("Channel send failed, falling back to request/response")
	}
	msg, err := m.api.SendMessage(ctx, m.bound, text)
	if err != nil {
		return domain.Message{}, false, fmt.Errorf("%w: %s", apperrors.ErrSendFailed, err)
	}
	return msg, false, nil
}

// SendSignal writes a call-signaling frame. Signaling has no
// request/response fallback; a closed channel is an error the state
// machine handles.
func (m *MessageChannel) SendSignal(v any) error {
	if m.conn == nil {
		return apperrors.ErrChannelNotOpen
	}
	return m.conn.Send(v)
}

func (m *MessageChannel) Conversation() domain.FlexID { return m.bound }

func (m *MessageChannel) IsOpen() bool {
	return m.conn != nil && m.conn.Phase() == realtime.Open
}

// Retire tears down the current connection, marking the close intentional
// first so the disconnect is classified as planned.
func (m *MessageChannel) Retire() {
	if m.conn != nil {
		m.conn.Retire(m.grace)
		m.conn = nil
	}
	m.bound = 0
}

func (m *MessageChannel) pump(ctx context.Context, conn *realtime.Conn, conversation domain.FlexID) {
	select {
	case <-conn.Opened():
		m.post(ctx, event.ChannelOpened{Kind: event.ChannelMessage, Conv: conversation})
	case <-conn.Done():
		m.postClosed(ctx, conn, conversation)
		return
	case <-ctx.Done():
		return
	}

	for raw := range conn.Frames() {
		evt, err := decodeFrame(raw, conversation)
		if err != nil {
			m.log.Warn("Dropping frame", "error", err)
			continue
		}
		m.post(ctx, evt)
	}
	<-conn.Done()
	m.postClosed(ctx, conn, conversation)
}

func (m *MessageChannel) postClosed(ctx context.Context, conn *realtime.Conn, conversation domain.FlexID) {
	m.post(ctx, event.ChannelClosed{
		Kind:        event.ChannelMessage,
		Conv:        conversation,
		Code:        conn.CloseCode(),
		Intentional: conn.Intentional(),
	})
}

func (m *MessageChannel) post(ctx context.Context, e event.DomainEvent) {
	select {
	case m.events <- e:
	case <-ctx.Done():
	}
}
