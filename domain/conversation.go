// Package domain contains core concepts of the messaging system.
// Conversations, messages and call sessions are plain data; all I/O
// lives in the infrastructure and channel packages.
package domain

import "time"

// Participant identifies one side of a conversation.
type Participant struct {
	ID       FlexID `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Conversation is a thread between two or more participants. Conversations
// are created when a participant initiates contact and are never deleted by
// this core.
type Conversation struct {
	ID            FlexID        `json:"id"`
	Participants  []Participant `json:"participants"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	LastMessage   *Message      `json:"last_message,omitempty"`
	LastMessageAt *time.Time    `json:"last_message_at,omitempty"`
}

// OtherParticipant returns the counterpart of self, or the first participant
// when self is not part of the conversation.
func (c Conversation) OtherParticipant(self FlexID) *Participant {
	for i := range c.Participants {
		if c.Participants[i].ID != self {
			return &c.Participants[i]
		}
	}
	if len(c.Participants) > 0 {
		return &c.Participants[0]
	}
	return nil
}

// LastActivity is the most recent timestamp known for the conversation.
func (c Conversation) LastActivity() time.Time {
	if c.LastMessageAt != nil {
		return *c.LastMessageAt
	}
	return c.UpdatedAt
}
