package channel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"yatta-chat/domain/event"
)

// flakyInboxServer drops the first connection with an abnormal close and
// keeps every later one alive, pushing a single inbox notice on connect.
func flakyInboxServer(t *testing.T, connections *atomic.Int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		n := connections.Add(1)
		if n == 1 {
			// Abrupt drop, no close handshake: the client sees 1006.
			return
		}
		_ = ws.WriteJSON(map[string]any{
			"type":            "inbox_event",
			"event":           "new_message",
			"conversation_id": 9,
			"message_id":      77,
		})
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func Test_InboxChannel_ReconnectsAfterUnexpectedDrop(t *testing.T) {
	req := require.New(t)
	var connections atomic.Int32
	srv := flakyInboxServer(t, &connections)
	defer srv.Close()

	events := make(chan event.DomainEvent, 16)
	ch := NewInboxChannel(testLog(), nil, wsURL(srv), events, time.Second, Backoff{
		Base:     20 * time.Millisecond,
		Max:      100 * time.Millisecond,
		Attempts: 5,
	})
	defer ch.Retire()

	ch.Open(context.Background())

	// First connection opens, then drops abnormally.
	opened := waitEvent[event.ChannelOpened](t, events)
	req.Equal(event.ChannelInbox, opened.Kind)
	closed := waitEvent[event.ChannelClosed](t, events)
	req.False(closed.Clean())

	// The retry loop brings a fresh connection up and notices flow again.
	waitEvent[event.ChannelOpened](t, events)
	notice := waitEvent[event.InboxNotice](t, events)
	req.Equal("new_message", notice.Event)
	req.GreaterOrEqual(connections.Load(), int32(2))
}

func Test_InboxChannel_RetireStopsTheLoopForGood(t *testing.T) {
	req := require.New(t)
	var connections atomic.Int32
	srv := flakyInboxServer(t, &connections)
	defer srv.Close()

	events := make(chan event.DomainEvent, 16)
	ch := NewInboxChannel(testLog(), nil, wsURL(srv), events, time.Second, Backoff{
		Base:     20 * time.Millisecond,
		Max:      100 * time.Millisecond,
		Attempts: 5,
	})

	ch.Open(context.Background())
	waitEvent[event.ChannelOpened](t, events)
	waitEvent[event.ChannelClosed](t, events)
	waitEvent[event.ChannelOpened](t, events)

	ch.Retire()
	closed := waitEvent[event.ChannelClosed](t, events)
	req.True(closed.Clean())

	settled := connections.Load()
	time.Sleep(300 * time.Millisecond)
	req.Equal(settled, connections.Load())
	req.False(ch.IsOpen())
}

func Test_InboxChannel_GivesUpAfterTheAttemptBudget(t *testing.T) {
	// Refuses every upgrade; each dial fails outright.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no", http.StatusForbidden)
	}))
	defer srv.Close()

	events := make(chan event.DomainEvent, 64)
	ch := NewInboxChannel(testLog(), nil, wsURL(srv), events, time.Second, Backoff{
		Base:     5 * time.Millisecond,
		Max:      10 * time.Millisecond,
		Attempts: 2,
	})

	ch.Open(context.Background())

	closes := 0
	deadline := time.After(2 * time.Second)
	for closes < 3 {
		select {
		case evt := <-events:
			if _, ok := evt.(event.ChannelClosed); ok {
				closes++
			}
		case <-deadline:
			t.Fatalf("expected 3 failed connects, saw %d", closes)
		}
	}

	// Budget exhausted: no further dial, no further close events.
	select {
	case evt := <-events:
		t.Fatalf("unexpected event after giving up: %#v", evt)
	case <-time.After(200 * time.Millisecond):
	}
}

func Test_Backoff_DelayDoublesUpToTheCap(t *testing.T) {
	req := require.New(t)
	b := Backoff{Base: time.Second, Max: 10 * time.Second, Attempts: 8}

	req.Equal(time.Second, b.Delay(1))
	req.Equal(2*time.Second, b.Delay(2))
	req.Equal(4*time.Second, b.Delay(3))
	req.Equal(8*time.Second, b.Delay(4))
	req.Equal(10*time.Second, b.Delay(5))
	req.Equal(10*time.Second, b.Delay(50))
	req.Equal(time.Second, b.Delay(0))
}
