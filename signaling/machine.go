// Package signaling holds the per-session call state machine. Every
// transition is driven by a named event; events that are not valid for the
// current state are logged and ignored, never fatal, and any terminal
// error returns the machine to idle so a session can never get stuck.
package signaling

import (
	"fmt"
	"log/slog"

	"yatta-chat/domain"
	apperrors "yatta-chat/errors"
)

// State of the call negotiation.
type State string

const (
	StateIdle       State = "idle"
	StateRinging    State = "ringing"
	StateIncoming   State = "incoming"
	StateConnecting State = "connecting"
	StateInCall     State = "in_call"
)

// Signaler sends call-control frames over the message channel.
type Signaler interface {
	SendInvite(conversation domain.FlexID, kind domain.CallKind, callID string) error
	SendAccept(callID string) error
	SendReject(callID string) error
	SendEnd(callID string) error
}

// Effects are the machine's side-effect ports. RequestToken is
// asynchronous: its outcome comes back later as TokenObtained/TokenFailed.
type Effects interface {
	RequestToken(call domain.CallSession)
	OpenMedia(call domain.CallSession) error
	CloseMedia()
	Alert(reason string)
	Notice(message string)
}

// Machine is driven exclusively by the session goroutine.
type Machine struct {
	log      *slog.Logger
	signaler Signaler
	fx       Effects
	state    State
	call     *domain.CallSession
}

func NewMachine(log *slog.Logger, signaler Signaler, fx Effects) *Machine {
	return &Machine{log: log, signaler: signaler, fx: fx, state: StateIdle}
}

func (m *Machine) State() State { return m.state }

// Active returns the current call session, nil when idle.
func (m *Machine) Active() *domain.CallSession { return m.call }

// StartCall begins an outgoing call: generate the local attempt id, send
// the invite, move to ringing.
func (m *Machine) StartCall(conversation domain.FlexID, kind domain.CallKind) error {
	if m.state != StateIdle {
		m.log.Warn("Rejecting outgoing call, another call is active", "state", string(m.state))
		return apperrors.ErrCallInProgress
	}
	call := domain.CallSession{
		ID:           domain.NewCallID(),
		Conversation: conversation,
		Kind:         kind,
	}
	if err := m.signaler.SendInvite(conversation, kind, call.ID); err != nil {
		return fmt.Errorf("call invite: %w", err)
	}
	m.call = &call
	m.state = StateRinging
	return nil
}

// HandleInviteEcho records the server-assigned call id while ringing.
func (m *Machine) HandleInviteEcho(callID string) {
	if m.state != StateRinging {
		m.ignore("call_invite_sent")
		return
	}
	if callID != "" {
		m.call.ID = callID
	}
}

// HandleAccepted moves a ringing call to connecting and starts token
// negotiation. A late echo arriving in any other state (the caller already
// timed out, say) is ignored.
func (m *Machine) HandleAccepted(callID string) {
	if m.state != StateRinging {
		m.ignore("call_accept")
		return
	}
	m.state = StateConnecting
	m.fx.RequestToken(*m.call)
}

// HandleRejected returns the caller to idle and surfaces the reason.
func (m *Machine) HandleRejected() {
	if m.state != StateRinging {
		m.ignore("call_reject")
		return
	}
	m.fx.Notice("call rejected")
	m.reset()
}

// HandleBusy surfaces a recipient-busy notice and returns to idle.
func (m *Machine) HandleBusy() {
	if m.state != StateRinging {
		m.ignore("call_busy")
		return
	}
	m.fx.Notice("recipient is busy in another call")
	m.reset()
}

// HandleIncoming processes an inbound call signal. An incoming call is
// always alerted regardless of UI focus. One call at a time is enforced
// here, centrally: a second incoming call while any session is active is
// implicitly declined as busy and the existing session is untouched.
func (m *Machine) HandleIncoming(conversation domain.FlexID, callID string, kind domain.CallKind, from domain.Participant) {
	if m.state != StateIdle {
		m.log.Info("Declining incoming call, already engaged", "call_id", callID, "state", string(m.state))
		if err := m.signaler.SendReject(callID); err != nil {
			m.log.Debug("Busy decline not delivered", "error", err)
		}
		return
	}
	m.call = &domain.CallSession{
		ID:           callID,
		Conversation: conversation,
		Kind:         kind,
		From:         &from,
	}
	m.state = StateIncoming
	m.fx.Alert("incoming call")
}

// AcceptLocal answers the incoming call: token negotiation starts and the
// acceptance is signaled to the caller.
func (m *Machine) AcceptLocal() error {
	if m.state != StateIncoming {
		return apperrors.ErrNoActiveCall
	}
	m.state = StateConnecting
	m.fx.RequestToken(*m.call)
	if err := m.signaler.SendAccept(m.call.ID); err != nil {
		m.log.Warn("call_accept not delivered", "error", err)
	}
	return nil
}

// RejectLocal declines the incoming call.
func (m *Machine) RejectLocal() error {
	if m.state != StateIncoming {
		return apperrors.ErrNoActiveCall
	}
	if err := m.signaler.SendReject(m.call.ID); err != nil {
		m.log.Warn("call_reject not delivered", "error", err)
	}
	m.reset()
	return nil
}

// HandleTokenObtained completes negotiation: the media session opens with
// the returned room descriptor. in_call is only ever reached through here.
// A token negotiated for a superseded attempt must never complete the
// current one, so the result is matched against the active call id.
func (m *Machine) HandleTokenObtained(callID string, room domain.MediaRoom) {
	if m.state != StateConnecting {
		m.ignore("token obtained")
		return
	}
	if m.stale(callID) {
		m.ignore("token obtained for " + callID)
		return
	}
	m.call.Room = &room
	if err := m.fx.OpenMedia(*m.call); err != nil {
		m.log.Warn("Media session failed to open", "error", err)
		m.fx.Notice("call could not be connected")
		m.reset()
		return
	}
	m.state = StateInCall
}

// HandleTokenFailed is a terminal error for the attempt: surface it and
// return to idle.
func (m *Machine) HandleTokenFailed(callID string, err error) {
	if m.state != StateConnecting {
		m.ignore("token failed")
		return
	}
	if m.stale(callID) {
		m.ignore("token failed for " + callID)
		return
	}
	m.log.Warn("Media token request failed", "error", err)
	m.fx.Notice("call could not be connected")
	m.reset()
}

// EndLocal hangs up the active call.
func (m *Machine) EndLocal() error {
	if m.state != StateInCall && m.state != StateConnecting && m.state != StateRinging {
		return apperrors.ErrNoActiveCall
	}
	if err := m.signaler.SendEnd(m.call.ID); err != nil {
		m.log.Debug("call_end not delivered", "error", err)
	}
	m.fx.CloseMedia()
	m.reset()
	return nil
}

// HandleEnded processes the peer hanging up, in whatever non-idle state
// the call is.
func (m *Machine) HandleEnded(callID string) {
	if m.state == StateIdle {
		m.ignore("call_end")
		return
	}
	m.fx.CloseMedia()
	m.reset()
}

// Teardown is the session-shutdown path: one best-effort end notification,
// then local state is discarded. It never blocks waiting for an ack.
func (m *Machine) Teardown() {
	if m.state == StateIdle {
		return
	}
	if m.call != nil {
		if err := m.signaler.SendEnd(m.call.ID); err != nil {
			m.log.Debug("Teardown call_end not delivered", "error", err)
		}
	}
	m.fx.CloseMedia()
	m.reset()
}

func (m *Machine) reset() {
	m.state = StateIdle
	m.call = nil
}

// stale reports whether a token result belongs to an attempt that is no
// longer the active call.
func (m *Machine) stale(callID string) bool {
	return callID != "" && m.call != nil && callID != m.call.ID
}

func (m *Machine) ignore(evt string) {
	m.log.Debug(fmt.Sprintf("Ignoring %s in state %s", evt, m.state))
}
