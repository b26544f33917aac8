// Package poll implements the fallback refresh loop used while the inbox
// channel is down. A Scheduler is a one-shot resource handle: the session
// creates one when the activation precondition holds (no conversation
// selected, inbox not open) and retires it the instant the precondition
// stops holding. A stray ticker surviving an inbox connect is a defect,
// which is why teardown is a single idempotent entry point.
package poll

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"yatta-chat/domain/event"
)

type Scheduler struct {
	log      *slog.Logger
	interval time.Duration
	events   chan<- event.DomainEvent

	foreground atomic.Bool
	stop       chan struct{}
	once       sync.Once
}

// Start creates and starts a scheduler. Ticks only fire while the host
// window is in the foreground.
func Start(ctx context.Context, log *slog.Logger, interval time.Duration, foreground bool, events chan<- event.DomainEvent) *Scheduler {
	s := &Scheduler{
		log:      log,
		interval: interval,
		events:   events,
		stop:     make(chan struct{}),
	}
	s.foreground.Store(foreground)
	go s.run(ctx)
	return s
}

func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if s.foreground.Load() {
				s.post(ctx, event.RefreshDue{})
			}
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// SetForeground updates visibility. A transition into the foreground
// refreshes immediately instead of waiting out the current tick.
func (s *Scheduler) SetForeground(ctx context.Context, v bool) {
	was := s.foreground.Swap(v)
	if v && !was {
		select {
		case <-s.stop:
			return
		default:
		}
		s.post(ctx, event.RefreshDue{})
	}
}

// Retire stops the ticker for good. Idempotent; safe to call from the
// owning goroutine at any time.
func (s *Scheduler) Retire() {
	s.once.Do(func() {
		close(s.stop)
		s.log.Debug("Polling scheduler retired")
	})
}

func (s *Scheduler) post(ctx context.Context, e event.DomainEvent) {
	select {
	case s.events <- e:
	case <-s.stop:
	case <-ctx.Done():
	}
}
