//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"yatta-chat/domain"
	"yatta-chat/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself; the supervisor handles panics and restarts.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// used for logging and supervision without manual naming.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink consumes domain events for side effects (archiving, telemetry).
// Sinks run on the session goroutine; they must not mutate session state.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// ChatAPI is the request/response surface of the message-persistence
// service.
type ChatAPI interface {
	Conversations(ctx context.Context) ([]domain.Conversation, error)
	Messages(ctx context.Context, conversation domain.FlexID) ([]domain.Message, error)
	SendMessage(ctx context.Context, conversation domain.FlexID, text string) (domain.Message, error)
	StartOrGetConversation(ctx context.Context, targetUser domain.FlexID) (domain.Conversation, error)
}

// TokenService negotiates access to the external media transport.
type TokenService interface {
	Token(ctx context.Context, conversation domain.FlexID, kind domain.CallKind, callID string) (domain.MediaRoom, error)
}

// Notifier surfaces alerts and notices to whatever UI hosts the core.
// Alert is the audible signal; Notice is a visible, actionable message.
type Notifier interface {
	Alert(reason string)
	Notice(message string)
}

// MediaTransport joins and leaves negotiated media rooms. The transport
// itself (codecs, devices) is entirely outside this core.
type MediaTransport interface {
	Join(room domain.MediaRoom) error
	Leave()
}

// MessageLink is the per-conversation realtime channel manager.
type MessageLink interface {
	// Open binds the link to a conversation, retiring any previous
	// connection first. Opening the already-bound conversation is a no-op.
	Open(ctx context.Context, conversation domain.FlexID)
	// Send delivers text over the channel when open, otherwise falls back
	// to the persistence service. The returned message is non-zero only on
	// the fallback path; viaChannel reports which path was taken.
	Send(ctx context.Context, text string) (msg domain.Message, viaChannel bool, err error)
	// SendSignal writes a call-signaling frame; it never falls back.
	SendSignal(v any) error
	Conversation() domain.FlexID
	IsOpen() bool
	Retire()
}

// InboxLink is the per-user realtime channel manager.
type InboxLink interface {
	Open(ctx context.Context)
	IsOpen() bool
	Retire()
}

// MessageArchive journals delivered messages for offline history.
type MessageArchive interface {
	Store(m domain.Message) error
	History(conversation domain.FlexID) ([]domain.Message, error)
}
