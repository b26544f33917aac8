//go:generate go run go.uber.org/mock/mockgen -source=archive.go -destination=../mocks/mock_archive.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"

	"yatta-chat/domain"
)

type IMessageArchive interface {
	Store(m domain.Message) error
	History(conversation domain.FlexID) ([]domain.Message, error)
}

// MessageArchive journals delivered messages in BadgerDB so a restarted
// client can show history without the persistence service. It is a cache
// beside the in-memory store, never a source of truth.
type MessageArchive struct {
	db    *badger.DB
	log   *slog.Logger
	limit *int
}

func NewMessageArchive(db *badger.DB, log *slog.Logger, limit *int) MessageArchive {
	return MessageArchive{db: db, log: log, limit: limit}
}

// Store persists one message. The key is "msg:{conversation}:{ts_padded}:{id}":
//  1. The 19-digit zero-padded timestamp makes lexicographic order
//     chronological within a conversation prefix.
//  2. The message id disambiguates two messages landing on the same
//     nanosecond.
//
// Re-storing an id is harmless: the key is identical, the write is a
// replace.
func (a MessageArchive) Store(m domain.Message) error {
	key := fmt.Sprintf("msg:%d:%019d:%d",
		m.Conversation.Int64(),
		m.CreatedAt.UnixNano(),
		m.ID.Int64(),
	)
	bytes, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// History returns the most recent messages of a conversation in
// chronological order, bounded by the configured limit when one is set.
func (a MessageArchive) History(conversation domain.FlexID) ([]domain.Message, error) {
	var raws [][]byte
	err := a.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("msg:%d:", conversation.Int64()))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the newest possible key of the prefix, then walk back.
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if a.limit != nil && len(raws) == *a.limit {
				a.log.Debug(fmt.Sprintf("History limit of %d reached", *a.limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				raws = append(raws, append([]byte{}, value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(raws))
	for _, raw := range raws {
		var m domain.Message
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return lo.Reverse(messages), nil
}
