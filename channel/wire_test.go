package channel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"yatta-chat/domain"
	"yatta-chat/domain/event"
	apperrors "yatta-chat/errors"
)

func Test_DecodeFrame_MessageInheritsBoundConversation(t *testing.T) {
	req := require.New(t)

	raw := []byte(`{"type":"message","message":{"id":10,"sender":{"id":2,"username":"ayse"},"text":"selam"}}`)
	evt, err := decodeFrame(raw, 42)
	req.NoError(err)

	msg, ok := evt.(event.MessageReceived)
	req.True(ok)
	req.Equal(domain.FlexID(42), msg.Message.Conversation)
	req.Equal("selam", msg.Message.Text)
}

func Test_DecodeFrame_StringIDsAreCanonicalized(t *testing.T) {
	req := require.New(t)

	raw := []byte(`{"type":"message","message":{"id":"10","conversation":"42","text":"selam"}}`)
	evt, err := decodeFrame(raw, 7)
	req.NoError(err)

	msg := evt.(event.MessageReceived)
	req.Equal(domain.FlexID(10), msg.Message.ID)
	// The frame names its own conversation; the binding does not override it.
	req.Equal(domain.FlexID(42), msg.Message.Conversation)
}

func Test_DecodeFrame_CallControlFrames(t *testing.T) {
	req := require.New(t)

	cases := map[string]event.DomainEvent{
		`{"type":"call_invite_sent","call_id":"cs_1","call_type":"video"}`:                 event.CallInviteSent{Conv: 42, CallID: "cs_1", Kind: domain.CallVideo},
		`{"type":"call_accept","conversation_id":3,"call_id":"cs_1","room":"oda"}`:         event.CallAccepted{Conv: 3, CallID: "cs_1", Room: "oda"},
		`{"type":"call_reject","conversation_id":3,"call_id":"cs_1"}`:                      event.CallRejected{Conv: 3, CallID: "cs_1"},
		`{"type":"call_end","conversation_id":3,"call_id":"cs_1"}`:                         event.CallEnded{Conv: 3, CallID: "cs_1"},
		`{"type":"call_busy","conversation_id":3,"call_id":"cs_1"}`:                        event.CallBusy{Conv: 3, CallID: "cs_1"},
		`{"type":"inbox_event","event":"new_message","conversation_id":9,"message_id":77}`: event.InboxNotice{Event: "new_message", Conv: 9, MessageID: 77},
	}
	for raw, want := range cases {
		evt, err := decodeFrame([]byte(raw), 42)
		req.NoError(err, raw)
		req.Equal(want, evt, raw)
	}
}

func Test_DecodeFrame_IncomingCallCarriesCaller(t *testing.T) {
	req := require.New(t)

	raw := []byte(`{"type":"call_incoming","conversation_id":"7","call_id":"cs_9","call_type":"audio","from_user":{"id":2,"username":"ayse"}}`)
	evt, err := decodeFrame(raw, 0)
	req.NoError(err)

	incoming := evt.(event.CallIncoming)
	req.Equal(domain.FlexID(7), incoming.Conv)
	req.Equal("ayse", incoming.From.Username)
	req.Equal(domain.CallAudio, incoming.Kind)
}

func Test_DecodeFrame_UnknownTypeIsAProtocolError(t *testing.T) {
	req := require.New(t)

	_, err := decodeFrame([]byte(`{"type":"presence_ping"}`), 42)
	req.ErrorIs(err, apperrors.ErrUnknownFrame)

	_, err = decodeFrame([]byte(`{not json`), 42)
	req.Error(err)
}
