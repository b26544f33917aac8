// Package realtime wraps a websocket into an explicit resource handle with
// a visible lifecycle phase, an intentional-close flag and a single Retire
// entry point. Managers in the channel package own these handles; nothing
// else touches the socket.
package realtime

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	apperrors "yatta-chat/errors"
)

// Phase is the connection lifecycle state.
type Phase int32

const (
	Connecting Phase = iota
	Open
	Closing
	Closed
)

const writeWait = 5 * time.Second

// Conn is one live websocket. The dial runs asynchronously: the handle is
// returned immediately in the Connecting phase and either Opened or Done
// closes later.
type Conn struct {
	log    *slog.Logger
	url    string
	dialer *websocket.Dialer
	cancel context.CancelFunc

	ws          *websocket.Conn // set before opened closes
	phase       atomic.Int32
	intentional atomic.Bool
	closeCode   atomic.Int32
	dialErr     error // set before done closes

	opened chan struct{}
	done   chan struct{}
	quit   chan struct{} // closed by Retire, releases a read loop parked on frames
	frames chan []byte

	writeMu    sync.Mutex
	retireOnce sync.Once
}

// Dial starts connecting to url and returns the handle immediately.
func Dial(ctx context.Context, log *slog.Logger, dialer *websocket.Dialer, url string) *Conn {
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	dialCtx, cancel := context.WithCancel(ctx)
	c := &Conn{
		log:    log,
		url:    url,
		dialer: dialer,
		cancel: cancel,
		opened: make(chan struct{}),
		done:   make(chan struct{}),
		quit:   make(chan struct{}),
		frames: make(chan []byte, 64),
	}
	c.phase.Store(int32(Connecting))
	go c.connect(dialCtx)
	return c
}

func (c *Conn) connect(ctx context.Context) {
	ws, resp, err := c.dialer.DialContext(ctx, c.url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		c.dialErr = err
		c.phase.Store(int32(Closed))
		close(c.done)
		return
	}
	if ctx.Err() != nil {
		// Retired while the handshake was in flight.
		_ = ws.Close()
		c.phase.Store(int32(Closed))
		close(c.done)
		return
	}
	c.ws = ws
	c.phase.Store(int32(Open))
	close(c.opened)
	c.readLoop()
}

func (c *Conn) readLoop() {
	code := 0
read:
	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if ce, ok := err.(*websocket.CloseError); ok {
				code = ce.Code
			}
			break
		}
		// Once retired nobody drains frames anymore, so the send must not
		// park this goroutine forever against a peer that keeps talking.
		select {
		case c.frames <- raw:
		case <-c.quit:
			break read
		}
	}
	close(c.frames)
	c.closeCode.Store(int32(code))
	c.phase.Store(int32(Closed))
	_ = c.ws.Close()
	close(c.done)
}

// Opened closes once the handshake completed.
func (c *Conn) Opened() <-chan struct{} { return c.opened }

// Done closes when the connection is gone, whatever the reason.
func (c *Conn) Done() <-chan struct{} { return c.done }

// Frames delivers inbound text frames in arrival order. The channel closes
// when the read loop ends.
func (c *Conn) Frames() <-chan []byte { return c.frames }

func (c *Conn) Phase() Phase { return Phase(c.phase.Load()) }

// CloseCode returns the websocket close code observed by the read loop,
// zero when the connection dropped without a close frame.
func (c *Conn) CloseCode() int { return int(c.closeCode.Load()) }

// Intentional reports whether Retire was called before the close.
func (c *Conn) Intentional() bool { return c.intentional.Load() }

// DialErr returns the handshake failure, if any. Valid after Done.
func (c *Conn) DialErr() error { return c.dialErr }

// Send writes v as a JSON text frame. It fails when the connection is not
// open; the caller decides whether a fallback path exists.
func (c *Conn) Send(v any) error {
	if c.intentional.Load() {
		return apperrors.ErrChannelRetired
	}
	if c.Phase() != Open {
		return apperrors.ErrChannelNotOpen
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(v)
}

// Retire is the single teardown entry point, idempotent. The intentional
// flag is set before any close frame goes out so the resulting disconnect
// is classified as planned. A connection still in the Connecting phase is
// given grace to finish its handshake before the close handshake runs;
// when grace elapses first the dial is abandoned outright. Closing a
// half-established socket would leak it in an ambiguous state.
func (c *Conn) Retire(grace time.Duration) {
	c.retireOnce.Do(func() {
		c.intentional.Store(true)
		close(c.quit)
		switch c.Phase() {
		case Connecting:
			select {
			case <-c.opened:
				c.closeHandshake()
			case <-c.done:
				// Dial failed on its own.
			case <-time.After(grace):
				c.log.Debug("Abandoning half-established connection", "url", c.url)
				c.cancel()
			}
		case Open:
			c.closeHandshake()
		default:
		}
	})
}

func (c *Conn) closeHandshake() {
	c.phase.Store(int32(Closing))
	deadline := time.Now().Add(writeWait)
	c.writeMu.Lock()
	_ = c.ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "retired"), deadline)
	c.writeMu.Unlock()
	// The read loop observes the peer's close response (or the dropped
	// socket) and finishes the teardown.
	select {
	case <-c.done:
	case <-time.After(writeWait):
		_ = c.ws.Close()
	}
}
