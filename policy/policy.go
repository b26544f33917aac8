// Package policy decides whether an event warrants an audible alert. It is
// a pure function of the event, the selected conversation and the local
// identity; playing the sound is the host UI's job.
package policy

import (
	"yatta-chat/domain"
	"yatta-chat/domain/event"
)

// ShouldAlert applies the notification rules:
//   - never for the user's own messages,
//   - never for the conversation currently on screen,
//   - always for an incoming call, regardless of selection.
//
// All identifiers reaching here are already canonical (FlexID), so the
// equality checks cannot be defeated by representation mismatches.
func ShouldAlert(e event.DomainEvent, selected, self domain.FlexID) bool {
	switch evt := e.(type) {
	case event.MessageReceived:
		if evt.Message.Mine(self) {
			return false
		}
		return evt.Message.Conversation != selected
	case event.InboxNotice:
		// Read receipts are silent; only activity notices alert.
		if evt.Event == "read" {
			return false
		}
		return evt.Conv != selected
	case event.CallIncoming:
		return true
	default:
		return false
	}
}
