package realtime

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		for {
			mt, raw, err := ws.ReadMessage()
			if err != nil {
				return
			}
			if err := ws.WriteMessage(mt, raw); err != nil {
				return
			}
		}
	}))
}

func Test_Conn_OpensAndEchoes(t *testing.T) {
	req := require.New(t)
	srv := echoServer(t)
	defer srv.Close()

	c := Dial(context.Background(), slog.Default(), nil, wsURL(srv))

	select {
	case <-c.Opened():
	case <-time.After(2 * time.Second):
		t.Fatal("connection never opened")
	}
	req.Equal(Open, c.Phase())

	req.NoError(c.Send(map[string]string{"type": "message", "text": "hey"}))

	select {
	case raw := <-c.Frames():
		req.Contains(string(raw), "hey")
	case <-time.After(2 * time.Second):
		t.Fatal("no echo received")
	}

	c.Retire(time.Second)
	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("connection never finished closing")
	}
	req.True(c.Intentional())
}

func Test_Conn_SendBeforeOpenFails(t *testing.T) {
	req := require.New(t)

	// Dial something that will never answer the handshake quickly.
	c := Dial(context.Background(), slog.Default(), nil, "ws://127.0.0.1:1/ws/")
	err := c.Send("x")
	req.Error(err)
	c.Retire(10 * time.Millisecond)
}

func Test_Conn_RetireDuringConnectingAbandonsDial(t *testing.T) {
	req := require.New(t)

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release // hold the handshake hostage
	}))
	defer srv.Close()
	defer close(release)

	c := Dial(context.Background(), slog.Default(), nil, wsURL(srv))
	req.Equal(Connecting, c.Phase())

	start := time.Now()
	c.Retire(50 * time.Millisecond)
	req.Less(time.Since(start), time.Second)

	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("abandoned dial never reported done")
	}
	req.Equal(Closed, c.Phase())
	req.True(c.Intentional())
}

func Test_Conn_RetireIsIdempotent(t *testing.T) {
	srv := echoServer(t)
	defer srv.Close()

	c := Dial(context.Background(), slog.Default(), nil, wsURL(srv))
	<-c.Opened()
	c.Retire(time.Second)
	c.Retire(time.Second)
	<-c.Done()
}

func Test_Conn_RetireReleasesReadLoopWhenFramesAreNotDrained(t *testing.T) {
	req := require.New(t)

	// A server that floods frames without ever stopping. The client never
	// drains Frames(), so the buffer fills and the read loop parks on its
	// delivery send.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		for i := 0; i < 500; i++ {
			if err := ws.WriteMessage(websocket.TextMessage, []byte("flood")); err != nil {
				return
			}
		}
		// Keep the socket up so the read loop cannot exit via a read error.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	c := Dial(context.Background(), slog.Default(), nil, wsURL(srv))
	select {
	case <-c.Opened():
	case <-time.After(2 * time.Second):
		t.Fatal("connection never opened")
	}

	// Let the flood saturate the frame buffer.
	time.Sleep(200 * time.Millisecond)

	c.Retire(time.Second)
	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("read loop stayed parked on an undrained frame buffer")
	}
	req.Equal(Closed, c.Phase())
	req.True(c.Intentional())
}

func Test_Conn_UnexpectedServerCloseCarriesCode(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		_ = ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "boom"),
			time.Now().Add(time.Second))
		_ = ws.Close()
	}))
	defer srv.Close()

	c := Dial(context.Background(), slog.Default(), nil, wsURL(srv))
	<-c.Opened()

	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("close never observed")
	}
	req.Equal(websocket.CloseInternalServerErr, c.CloseCode())
	req.False(c.Intentional())
}
