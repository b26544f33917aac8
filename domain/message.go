package domain

import "time"

// Message is an immutable chat entry. The identifier is assigned by the
// persistence service; a message belongs to exactly one conversation.
// The only permitted mutation after creation is setting the read timestamp.
type Message struct {
	ID           FlexID      `json:"id"`
	Conversation FlexID      `json:"conversation"`
	Sender       Participant `json:"sender"`
	Text         string      `json:"text"`
	CreatedAt    time.Time   `json:"created_at"`
	ReadAt       *time.Time  `json:"read_at"`
}

// Mine reports whether the message was written by the given identity.
func (m Message) Mine(self FlexID) bool {
	return m.Sender.ID == self
}
