// Package event defines the domain events consumed by the session loop.
// Both realtime channels, the polling scheduler and async fetches all
// produce these; the session applies them serially.
package event

import (
	"time"

	"yatta-chat/domain"
)

// DomainEvent is anything the session loop can apply. Conversation returns
// the owning conversation id, or zero when the event is session-scoped.
type DomainEvent interface {
	Conversation() domain.FlexID
}

// ChannelKind names which of the two realtime connections an event is about.
type ChannelKind string

const (
	ChannelMessage ChannelKind = "message"
	ChannelInbox   ChannelKind = "inbox"
)

// ChannelOpened fires once a realtime connection completes its handshake.
type ChannelOpened struct {
	Kind ChannelKind
	Conv domain.FlexID
}

func (e ChannelOpened) Conversation() domain.FlexID { return e.Conv }

// ChannelClosed fires when a realtime connection ends. Intentional marks a
// planned teardown; close codes 1000/1001 are clean, anything else on an
// unintentional close is an anomaly.
type ChannelClosed struct {
	Kind        ChannelKind
	Conv        domain.FlexID
	Code        int
	Intentional bool
}

func (e ChannelClosed) Conversation() domain.FlexID { return e.Conv }

// Clean reports whether the close needs no fallback handling.
func (e ChannelClosed) Clean() bool {
	return e.Intentional || e.Code == 1000 || e.Code == 1001
}

// MessageReceived carries a message delivered on the per-conversation
// channel, already canonicalized at the wire boundary.
type MessageReceived struct {
	Message domain.Message
}

func (e MessageReceived) Conversation() domain.FlexID { return e.Message.Conversation }

// InboxNotice is a cross-conversation notification (new message somewhere,
// read receipt) delivered on the inbox channel.
type InboxNotice struct {
	Event     string
	Conv      domain.FlexID
	MessageID domain.FlexID
}

func (e InboxNotice) Conversation() domain.FlexID { return e.Conv }

// CallInviteSent is the server echo of our call_invite, carrying the
// authoritative call id.
type CallInviteSent struct {
	Conv   domain.FlexID
	CallID string
	Kind   domain.CallKind
}

func (e CallInviteSent) Conversation() domain.FlexID { return e.Conv }

// CallAccepted means the callee answered; the caller proceeds to token
// negotiation.
type CallAccepted struct {
	Conv   domain.FlexID
	CallID string
	Room   string
}

func (e CallAccepted) Conversation() domain.FlexID { return e.Conv }

// CallRejected means the callee declined.
type CallRejected struct {
	Conv   domain.FlexID
	CallID string
}

func (e CallRejected) Conversation() domain.FlexID { return e.Conv }

// CallEnded means either side hung up.
type CallEnded struct {
	Conv   domain.FlexID
	CallID string
}

func (e CallEnded) Conversation() domain.FlexID { return e.Conv }

// CallIncoming arrives on the inbox channel when someone calls us.
type CallIncoming struct {
	Conv   domain.FlexID
	CallID string
	Kind   domain.CallKind
	From   domain.Participant
}

func (e CallIncoming) Conversation() domain.FlexID { return e.Conv }

// CallBusy arrives on the inbox channel when the recipient of our invite is
// already in a call.
type CallBusy struct {
	Conv   domain.FlexID
	CallID string
}

func (e CallBusy) Conversation() domain.FlexID { return e.Conv }

// TokenObtained completes media negotiation for the given call.
type TokenObtained struct {
	CallID string
	Room   domain.MediaRoom
}

func (e TokenObtained) Conversation() domain.FlexID { return 0 }

// TokenFailed reports that the media token service refused or timed out.
type TokenFailed struct {
	CallID string
	Err    error
}

func (e TokenFailed) Conversation() domain.FlexID { return 0 }

// RefreshDue is a polling tick: the conversation list should be refetched.
type RefreshDue struct{}

func (e RefreshDue) Conversation() domain.FlexID { return 0 }

// ConversationsFetched is the result of an async conversation-list fetch.
type ConversationsFetched struct {
	Conversations []domain.Conversation
}

func (e ConversationsFetched) Conversation() domain.FlexID { return 0 }

// MessagesFetched is the result of an async message-history fetch.
type MessagesFetched struct {
	Conv     domain.FlexID
	Messages []domain.Message
}

func (e MessagesFetched) Conversation() domain.FlexID { return e.Conv }

// ConversationStarted is the result of a start-or-get request; the session
// upserts and selects the returned conversation.
type ConversationStarted struct {
	Conv domain.Conversation
}

func (e ConversationStarted) Conversation() domain.FlexID { return e.Conv.ID }

// MessageRead marks a stored message as read.
type MessageRead struct {
	Conv      domain.FlexID
	MessageID domain.FlexID
	At        time.Time
}

func (e MessageRead) Conversation() domain.FlexID { return e.Conv }
