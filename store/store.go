// Package store holds the in-memory conversation and message table. It is
// the single source of truth for both channels and the notification policy.
// The store performs no I/O and is owned exclusively by the session
// goroutine; there is no internal locking.
package store

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"yatta-chat/domain"
)

type Store struct {
	log           *slog.Logger
	conversations map[domain.FlexID]domain.Conversation
	messages      map[domain.FlexID][]domain.Message
	seen          map[domain.FlexID]struct{}
}

func New(log *slog.Logger) *Store {
	return &Store{
		log:           log,
		conversations: make(map[domain.FlexID]domain.Conversation),
		messages:      make(map[domain.FlexID][]domain.Message),
		seen:          make(map[domain.FlexID]struct{}),
	}
}

// UpsertConversation inserts or replaces a conversation entry.
func (s *Store) UpsertConversation(c domain.Conversation) {
	if c.ID.IsZero() {
		s.log.Warn("Dropping conversation without id")
		return
	}
	s.conversations[c.ID] = c
}

// ReplaceConversations swaps the whole conversation table for a freshly
// fetched list. Per-conversation message tables are kept: messages are
// never deleted by this core.
func (s *Store) ReplaceConversations(list []domain.Conversation) {
	s.conversations = make(map[domain.FlexID]domain.Conversation, len(list))
	for _, c := range list {
		if c.ID.IsZero() {
			continue
		}
		s.conversations[c.ID] = c
	}
}

// UpsertMessage applies a message in arrival order. Inserting an id that is
// already present is a no-op, which absorbs the channel-echo /
// optimistic-insert / redundant-delivery duplicate paths. It reports
// whether the message was actually inserted.
func (s *Store) UpsertMessage(m domain.Message) bool {
	if m.ID.IsZero() {
		s.log.Warn("Dropping message without id")
		return false
	}
	if _, dup := s.seen[m.ID]; dup {
		s.log.Debug(fmt.Sprintf("Duplicate message %d ignored", m.ID.Int64()))
		return false
	}
	s.seen[m.ID] = struct{}{}
	s.messages[m.Conversation] = append(s.messages[m.Conversation], m)
	s.touchConversation(m)
	return true
}

// MarkRead sets the read timestamp on a stored message. Read time is the
// only mutation a message ever receives.
func (s *Store) MarkRead(conversation, messageID domain.FlexID, at time.Time) {
	msgs := s.messages[conversation]
	for i := range msgs {
		if msgs[i].ID == messageID && msgs[i].ReadAt == nil {
			t := at
			msgs[i].ReadAt = &t
			return
		}
	}
}

// ListConversations returns conversations matching the filter (nil means
// all), most recent activity first.
func (s *Store) ListConversations(filter func(domain.Conversation) bool) []domain.Conversation {
	out := make([]domain.Conversation, 0, len(s.conversations))
	for _, c := range s.conversations {
		if filter == nil || filter(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastActivity().After(out[j].LastActivity())
	})
	return out
}

// Conversation looks up a single conversation.
func (s *Store) Conversation(id domain.FlexID) (domain.Conversation, bool) {
	c, ok := s.conversations[id]
	return c, ok
}

// MessagesFor returns the conversation's messages in arrival order. The
// comparison runs on the canonical numeric id on both sides, so a message
// can never leak into another conversation through a string/number
// representation mismatch.
func (s *Store) MessagesFor(id domain.FlexID) []domain.Message {
	stored := s.messages[id]
	out := make([]domain.Message, 0, len(stored))
	for _, m := range stored {
		if m.Conversation == id {
			out = append(out, m)
		}
	}
	return out
}

// touchConversation refreshes the last-message summary when a newer message
// lands in a known conversation.
func (s *Store) touchConversation(m domain.Message) {
	c, ok := s.conversations[m.Conversation]
	if !ok {
		return
	}
	if c.LastMessageAt == nil || m.CreatedAt.After(*c.LastMessageAt) {
		msg := m
		at := m.CreatedAt
		c.LastMessage = &msg
		c.LastMessageAt = &at
		s.conversations[m.Conversation] = c
	}
}
