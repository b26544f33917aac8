package sink

import (
	"context"

	"yatta-chat/contract"
	"yatta-chat/domain"
	"yatta-chat/domain/event"
	"yatta-chat/policy"
)

// NotifySink turns qualifying events into user-facing alerts. The
// selected conversation changes over time, so it is read through a
// provider owned by the session.
type NotifySink struct {
	notifier contract.Notifier
	self     domain.FlexID
	selected func() domain.FlexID
}

func NewNotifySink(notifier contract.Notifier, self domain.FlexID, selected func() domain.FlexID) NotifySink {
	return NotifySink{notifier: notifier, self: self, selected: selected}
}

func (n NotifySink) Consume(_ context.Context, e event.DomainEvent) error {
	if !policy.ShouldAlert(e, n.selected(), n.self) {
		return nil
	}
	switch e.(type) {
	case event.CallIncoming:
		n.notifier.Alert("incoming call")
	default:
		n.notifier.Alert("new message")
	}
	return nil
}
