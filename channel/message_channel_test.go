package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"yatta-chat/domain"
	"yatta-chat/domain/event"
	apperrors "yatta-chat/errors"
)

var upgrader = websocket.Upgrader{}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func testLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// chatServer replays inbound text frames back as message frames, the way
// the realtime service echoes a delivered message.
func chatServer(t *testing.T, connections *atomic.Int32) *httptest.Server {
	t.Helper()
	var nextID atomic.Int64
	nextID.Store(100)
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		if connections != nil {
			connections.Add(1)
		}
		defer ws.Close()
		for {
			var in TextFrame
			if err := ws.ReadJSON(&in); err != nil {
				return
			}
			echo := map[string]any{
				"type": "message",
				"message": map[string]any{
					"id":   nextID.Add(1),
					"text": in.Text,
				},
			}
			if err := ws.WriteJSON(echo); err != nil {
				return
			}
		}
	}))
}

type sendRecorder struct {
	sent []string
	err  error
}

func (s *sendRecorder) Conversations(context.Context) ([]domain.Conversation, error) {
	return nil, nil
}

func (s *sendRecorder) Messages(context.Context, domain.FlexID) ([]domain.Message, error) {
	return nil, nil
}

func (s *sendRecorder) SendMessage(_ context.Context, conversation domain.FlexID, text string) (domain.Message, error) {
	if s.err != nil {
		return domain.Message{}, s.err
	}
	s.sent = append(s.sent, text)
	return domain.Message{ID: 900, Conversation: conversation, Text: text, CreatedAt: time.Now()}, nil
}

func (s *sendRecorder) StartOrGetConversation(context.Context, domain.FlexID) (domain.Conversation, error) {
	return domain.Conversation{}, nil
}

func waitEvent[T event.DomainEvent](t *testing.T, events chan event.DomainEvent) T {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-events:
			if want, ok := evt.(T); ok {
				return want
			}
		case <-deadline:
			var zero T
			t.Fatalf("timed out waiting for %T", zero)
			return zero
		}
	}
}

func Test_MessageChannel_OpenDeliverAndEcho(t *testing.T) {
	req := require.New(t)
	srv := chatServer(t, nil)
	defer srv.Close()

	events := make(chan event.DomainEvent, 16)
	urlFor := func(domain.FlexID) string { return wsURL(srv) }
	ch := NewMessageChannel(testLog(), nil, urlFor, &sendRecorder{}, events, time.Second)
	defer ch.Retire()

	ch.Open(context.Background(), 42)
	opened := waitEvent[event.ChannelOpened](t, events)
	req.Equal(event.ChannelMessage, opened.Kind)
	req.Equal(domain.FlexID(42), opened.Conv)

	_, viaChannel, err := ch.Send(context.Background(), "merhaba")
	req.NoError(err)
	req.True(viaChannel)

	echo := waitEvent[event.MessageReceived](t, events)
	req.Equal("merhaba", echo.Message.Text)
	// The echo inherits the bound conversation when the frame omits it.
	req.Equal(domain.FlexID(42), echo.Message.Conversation)
}

func Test_MessageChannel_ReopeningSameConversationIsANoOp(t *testing.T) {
	req := require.New(t)
	var connections atomic.Int32
	srv := chatServer(t, &connections)
	defer srv.Close()

	events := make(chan event.DomainEvent, 16)
	ch := NewMessageChannel(testLog(), nil, func(domain.FlexID) string { return wsURL(srv) }, &sendRecorder{}, events, time.Second)
	defer ch.Retire()

	ch.Open(context.Background(), 42)
	waitEvent[event.ChannelOpened](t, events)

	ch.Open(context.Background(), 42)
	time.Sleep(100 * time.Millisecond)
	req.Equal(int32(1), connections.Load())
}

func Test_MessageChannel_SwitchingConversationRetiresTheOldConnection(t *testing.T) {
	req := require.New(t)
	var connections atomic.Int32
	srv := chatServer(t, &connections)
	defer srv.Close()

	events := make(chan event.DomainEvent, 16)
	ch := NewMessageChannel(testLog(), nil, func(domain.FlexID) string { return wsURL(srv) }, &sendRecorder{}, events, time.Second)
	defer ch.Retire()

	ch.Open(context.Background(), 3)
	waitEvent[event.ChannelOpened](t, events)

	ch.Open(context.Background(), 7)

	closed := waitEvent[event.ChannelClosed](t, events)
	req.Equal(domain.FlexID(3), closed.Conv)
	req.True(closed.Clean())

	opened := waitEvent[event.ChannelOpened](t, events)
	req.Equal(domain.FlexID(7), opened.Conv)
	req.Equal(int32(2), connections.Load())
}

func Test_MessageChannel_SendFallsBackWhenChannelIsDown(t *testing.T) {
	req := require.New(t)

	events := make(chan event.DomainEvent, 16)
	api := &sendRecorder{}
	// The dial target refuses the upgrade, so the channel never opens.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no", http.StatusForbidden)
	}))
	defer srv.Close()

	ch := NewMessageChannel(testLog(), nil, func(domain.FlexID) string { return wsURL(srv) }, api, events, time.Second)
	defer ch.Retire()

	ch.Open(context.Background(), 42)
	waitEvent[event.ChannelClosed](t, events)

	msg, viaChannel, err := ch.Send(context.Background(), "merhaba")
	req.NoError(err)
	req.False(viaChannel)
	req.Equal(domain.FlexID(900), msg.ID)
	req.Equal([]string{"merhaba"}, api.sent)
}

func Test_MessageChannel_SendFailsWhenBothPathsFail(t *testing.T) {
	req := require.New(t)

	events := make(chan event.DomainEvent, 16)
	api := &sendRecorder{err: fmt.Errorf("service down")}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no", http.StatusForbidden)
	}))
	defer srv.Close()

	ch := NewMessageChannel(testLog(), nil, func(domain.FlexID) string { return wsURL(srv) }, api, events, time.Second)
	defer ch.Retire()

	ch.Open(context.Background(), 42)
	waitEvent[event.ChannelClosed](t, events)

	_, _, err := ch.Send(context.Background(), "merhaba")
	req.ErrorIs(err, apperrors.ErrSendFailed)
}

func Test_MessageChannel_SendWithoutConversationIsRefused(t *testing.T) {
	req := require.New(t)

	events := make(chan event.DomainEvent, 16)
	ch := NewMessageChannel(testLog(), nil, func(domain.FlexID) string { return "" }, &sendRecorder{}, events, time.Second)

	_, _, err := ch.Send(context.Background(), "merhaba")
	req.ErrorIs(err, apperrors.ErrNoConversation)

	req.ErrorIs(ch.SendSignal(NewCallEnd("cs_1")), apperrors.ErrChannelNotOpen)
}

func Test_MessageChannel_SignalFramesAreJSON(t *testing.T) {
	req := require.New(t)

	raw, err := json.Marshal(NewCallInvite(42, domain.CallVideo, "cs_abc"))
	req.NoError(err)
	req.JSONEq(`{"type":"call_invite","conversation_id":42,"call_type":"video","client_request_id":"cs_abc"}`, string(raw))

	raw, err = json.Marshal(NewCallReject("cs_abc"))
	req.NoError(err)
	req.JSONEq(`{"type":"call_reject","call_id":"cs_abc"}`, string(raw))
}
