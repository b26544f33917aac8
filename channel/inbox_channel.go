package channel

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"yatta-chat/domain/event"
	"yatta-chat/infrastructure/realtime"
)

// InboxChannel manages the one long-lived per-user connection carrying
// cross-conversation notifications and incoming-call signals. It survives
// conversation switches; only session teardown retires it.
//
// Unexpected drops first surface as a ChannelClosed event so the polling
// fallback compensates immediately, then the manager retries with bounded
// backoff.
type InboxChannel struct {
	log     *slog.Logger
	dialer  *websocket.Dialer
	url     string
	events  chan<- event.DomainEvent
	grace   time.Duration
	backoff Backoff

	mu      sync.Mutex
	conn    *realtime.Conn
	running bool
	retired bool
}

func NewInboxChannel(
	log *slog.Logger,
	dialer *websocket.Dialer,
	url string,
	events chan<- event.DomainEvent,
	grace time.Duration,
	backoff Backoff,
) *InboxChannel {
	return &InboxChannel{
		log:     log,
		dialer:  dialer,
		url:     url,
		events:  events,
		grace:   grace,
		backoff: backoff,
	}
}

// Open starts the connect/reconnect loop. Calling Open on a running
// channel is a no-op.
func (m *InboxChannel) Open(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running || m.retired {
		return
	}
	m.running = true
	go m.run(ctx)
}

func (m *InboxChannel) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conn != nil && m.conn.Phase() == realtime.Open
}

// Retire permanently stops the channel, flagging the close as intentional
// before it goes out.
func (m *InboxChannel) Retire() {
	m.mu.Lock()
	m.retired = true
	conn := m.conn
	m.mu.Unlock()
	if conn != nil {
		conn.Retire(m.grace)
	}
}

func (m *InboxChannel) run(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.running = false
		m.mu.Unlock()
	}()

	for attempt := 0; ; {
		m.mu.Lock()
		if m.retired {
			m.mu.Unlock()
			return
		}
		conn := realtime.Dial(ctx, m.log, m.dialer, m.url)
		m.conn = conn
		m.mu.Unlock()

		if m.serve(ctx, conn) {
			return
		}

		attempt++
		if attempt > m.backoff.Attempts {
			m.log.Warn(fmt.Sprintf("Inbox channel giving up after %d attempts", attempt-1))
			return
		}
		delay := m.backoff.Delay(attempt)
		m.log.Info("Inbox channel reconnecting", "attempt", attempt, "delay", delay)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return
		}
	}
}

// serve pumps one connection until it ends. It reports true when the loop
// should stop for good: planned teardown, clean close or cancelled context.
func (m *InboxChannel) serve(ctx context.Context, conn *realtime.Conn) (stop bool) {
	select {
	case <-conn.Opened():
		m.post(ctx, event.ChannelOpened{Kind: event.ChannelInbox})
	case <-conn.Done():
		if err := conn.DialErr(); err != nil {
			m.log.Warn("Inbox channel dial failed", "error", err)
		}
		m.post(ctx, event.ChannelClosed{Kind: event.ChannelInbox, Intentional: conn.Intentional()})
		return conn.Intentional()
	case <-ctx.Done():
		conn.Retire(m.grace)
		return true
	}

	for raw := range conn.Frames() {
		evt, err := decodeFrame(raw, 0)
		if err != nil {
			m.log.Warn("Dropping inbox frame", "error", err)
			continue
		}
		m.post(ctx, evt)
	}
	<-conn.Done()

	closed := event.ChannelClosed{
		Kind:        event.ChannelInbox,
		Code:        conn.CloseCode(),
		Intentional: conn.Intentional(),
	}
	m.post(ctx, closed)
	if ctx.Err() != nil {
		return true
	}
	return closed.Clean()
}

func (m *InboxChannel) post(ctx context.Context, e event.DomainEvent) {
	select {
	case m.events <- e:
	case <-ctx.Done():
	}
}
