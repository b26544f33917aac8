package sink

import (
	"context"
	"fmt"
	"log/slog"

	"yatta-chat/contract"
	"yatta-chat/domain/event"
)

// ArchiveSink journals every delivered message so history survives
// restarts even when the persistence service is unreachable.
type ArchiveSink struct {
	archive contract.MessageArchive
	log     *slog.Logger
}

func NewArchiveSink(archive contract.MessageArchive, log *slog.Logger) ArchiveSink {
	return ArchiveSink{archive: archive, log: log}
}

func (a ArchiveSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageReceived:
		return a.archive.Store(evt.Message)
	case event.MessagesFetched:
		for _, m := range evt.Messages {
			if err := a.archive.Store(m); err != nil {
				return fmt.Errorf("archiving fetched message %d: %w", m.ID, err)
			}
		}
		return nil
	default:
		return nil
	}
}
