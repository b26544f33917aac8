// Package channel owns the two realtime channel managers: one websocket
// bound to the currently selected conversation and one long-lived inbox
// websocket per user. Both decode text frames into domain events and post
// them into the session's inbound queue.
package channel

import (
	"encoding/json"
	"fmt"

	"yatta-chat/domain"
	"yatta-chat/domain/event"
	apperrors "yatta-chat/errors"
)

// inboundFrame is the superset of every frame either channel can deliver.
type inboundFrame struct {
	Type         string              `json:"type"`
	Message      *domain.Message     `json:"message"`
	Conversation domain.FlexID       `json:"conversation_id"`
	CallID       string              `json:"call_id"`
	CallType     domain.CallKind     `json:"call_type"`
	Room         string              `json:"room"`
	Event        string              `json:"event"`
	MessageID    domain.FlexID       `json:"message_id"`
	From         *domain.Participant `json:"from_user"`
}

// decodeFrame turns a raw text frame into a domain event. bound is the
// conversation the carrying channel is attached to; message frames that
// omit their conversation id inherit it. A malformed or unknown frame is a
// protocol error: the caller logs it and drops the single frame, the
// connection stays up.
func decodeFrame(raw []byte, bound domain.FlexID) (event.DomainEvent, error) {
	var f inboundFrame
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("malformed frame: %w", err)
	}
	switch f.Type {
	case "message":
		if f.Message == nil {
			return nil, fmt.Errorf("message frame without payload")
		}
		msg := *f.Message
		if msg.Conversation.IsZero() {
			msg.Conversation = bound
		}
		return event.MessageReceived{Message: msg}, nil
	case "call_invite_sent":
		conv := f.Conversation
		if conv.IsZero() {
			conv = bound
		}
		return event.CallInviteSent{Conv: conv, CallID: f.CallID, Kind: f.CallType}, nil
	case "call_accept":
		return event.CallAccepted{Conv: f.Conversation, CallID: f.CallID, Room: f.Room}, nil
	case "call_reject":
		return event.CallRejected{Conv: f.Conversation, CallID: f.CallID}, nil
	case "call_end":
		return event.CallEnded{Conv: f.Conversation, CallID: f.CallID}, nil
	case "inbox_event":
		return event.InboxNotice{Event: f.Event, Conv: f.Conversation, MessageID: f.MessageID}, nil
	case "call_incoming":
		var from domain.Participant
		if f.From != nil {
			from = *f.From
		}
		return event.CallIncoming{Conv: f.Conversation, CallID: f.CallID, Kind: f.CallType, From: from}, nil
	case "call_busy":
		return event.CallBusy{Conv: f.Conversation, CallID: f.CallID}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownFrame, f.Type)
	}
}

// TextFrame is the outbound message frame.
type TextFrame struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewTextFrame builds the outbound frame for a chat message.
func NewTextFrame(text string) TextFrame {
	return TextFrame{Type: "message", Text: text}
}

// CallInviteFrame starts an outgoing call.
type CallInviteFrame struct {
	Type            string          `json:"type"`
	ConversationID  int64           `json:"conversation_id"`
	CallType        domain.CallKind `json:"call_type"`
	ClientRequestID string          `json:"client_request_id"`
}

// NewCallInvite builds a call_invite frame for the given attempt.
func NewCallInvite(conversation domain.FlexID, kind domain.CallKind, callID string) CallInviteFrame {
	return CallInviteFrame{
		Type:            "call_invite",
		ConversationID:  conversation.Int64(),
		CallType:        kind,
		ClientRequestID: callID,
	}
}

// CallControlFrame covers call_accept, call_reject and call_end.
type CallControlFrame struct {
	Type   string `json:"type"`
	CallID string `json:"call_id"`
}

func NewCallAccept(callID string) CallControlFrame {
	return CallControlFrame{Type: "call_accept", CallID: callID}
}

func NewCallReject(callID string) CallControlFrame {
	return CallControlFrame{Type: "call_reject", CallID: callID}
}

func NewCallEnd(callID string) CallControlFrame {
	return CallControlFrame{Type: "call_end", CallID: callID}
}
