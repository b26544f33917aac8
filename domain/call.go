package domain

import "github.com/google/uuid"

// CallKind distinguishes audio-only from video calls.
type CallKind string

const (
	CallAudio CallKind = "audio"
	CallVideo CallKind = "video"
)

// MediaRoom describes the externally negotiated media session. It is opaque
// to this core: the media transport itself is an external collaborator.
type MediaRoom struct {
	URL   string `json:"media_url"`
	Token string `json:"token"`
	Name  string `json:"room"`
}

// CallSession tracks one call attempt. It is created on an outgoing invite
// or an inbound incoming-call signal and discarded on any terminal state.
type CallSession struct {
	ID           string
	Conversation FlexID
	Kind         CallKind
	From         *Participant
	Room         *MediaRoom
}

// NewCallID generates a caller-side call identifier, unique per attempt.
func NewCallID() string {
	return "cs_" + uuid.NewString()
}
