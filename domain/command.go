package domain

// Command is a user-initiated action dispatched into the session loop.
// Commands are applied one at a time by the owning goroutine; nothing
// outside that loop mutates session state.
type Command interface {
	command()
}

// SelectConversation binds the session to a conversation. A zero id clears
// the selection and retires the per-conversation channel.
type SelectConversation struct {
	ID FlexID
}

// SendText sends a message to the selected conversation.
type SendText struct {
	Text string
}

// StartConversation initiates contact with another user, creating the
// conversation server-side when none exists yet.
type StartConversation struct {
	TargetUser FlexID
}

// StartCall begins an outgoing call in the selected conversation.
type StartCall struct {
	Kind CallKind
}

// AcceptCall answers the currently incoming call.
type AcceptCall struct{}

// RejectCall declines the currently incoming call.
type RejectCall struct{}

// EndCall hangs up the active call.
type EndCall struct{}

// SetVisibility reports the host window's foreground state.
type SetVisibility struct {
	Foreground bool
}

// Shutdown tears the session down: best-effort call_end when a call is
// live, then both channels and the polling scheduler are retired.
type Shutdown struct{}

// Snapshot requests a read-only copy of session state, delivered on Reply.
// The copy is taken on the session goroutine, so it is always consistent.
type Snapshot struct {
	Reply chan<- SessionView
}

// SessionView is what a Snapshot returns.
type SessionView struct {
	Self          FlexID
	Selected      FlexID
	Conversations []Conversation
	Messages      []Message
	CallState     string
	CallID        string
	InboxOpen     bool
	Polling       bool
}

func (SelectConversation) command() {}
func (SendText) command()           {}
func (StartConversation) command()  {}
func (StartCall) command()          {}
func (AcceptCall) command()         {}
func (RejectCall) command()         {}
func (EndCall) command()            {}
func (SetVisibility) command()      {}
func (Shutdown) command()           {}
func (Snapshot) command()           {}
