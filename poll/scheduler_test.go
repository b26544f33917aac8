package poll

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"yatta-chat/domain/event"
)

func drain(events chan event.DomainEvent, d time.Duration) int {
	count := 0
	deadline := time.After(d)
	for {
		select {
		case <-events:
			count++
		case <-deadline:
			return count
		}
	}
}

func Test_Scheduler_TicksWhileForeground(t *testing.T) {
	req := require.New(t)
	events := make(chan event.DomainEvent, 16)

	s := Start(context.Background(), slog.Default(), 20*time.Millisecond, true, events)
	defer s.Retire()

	req.GreaterOrEqual(drain(events, 150*time.Millisecond), 2)
}

func Test_Scheduler_SilentInBackground(t *testing.T) {
	req := require.New(t)
	events := make(chan event.DomainEvent, 16)

	s := Start(context.Background(), slog.Default(), 20*time.Millisecond, false, events)
	defer s.Retire()

	req.Zero(drain(events, 100*time.Millisecond))
}

func Test_Scheduler_ForegroundTransitionRefreshesImmediately(t *testing.T) {
	req := require.New(t)
	events := make(chan event.DomainEvent, 16)

	s := Start(context.Background(), slog.Default(), time.Hour, false, events)
	defer s.Retire()

	s.SetForeground(context.Background(), true)

	select {
	case e := <-events:
		_, ok := e.(event.RefreshDue)
		req.True(ok)
	case <-time.After(time.Second):
		t.Fatal("no immediate refresh on foreground transition")
	}

	// Repeating the same visibility does not refresh again.
	s.SetForeground(context.Background(), true)
	req.Zero(drain(events, 50*time.Millisecond))
}

func Test_Scheduler_RetireStopsTicksForGood(t *testing.T) {
	req := require.New(t)
	events := make(chan event.DomainEvent, 16)

	s := Start(context.Background(), slog.Default(), 10*time.Millisecond, true, events)
	time.Sleep(30 * time.Millisecond)
	s.Retire()
	s.Retire() // idempotent

	drain(events, 10*time.Millisecond) // flush anything already queued
	req.Zero(drain(events, 80*time.Millisecond))
}
