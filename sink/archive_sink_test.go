package sink_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"yatta-chat/domain"
	"yatta-chat/domain/event"
	"yatta-chat/mocks"
	"yatta-chat/sink"
)

func TestArchiveSink_Consume(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockArchive := mocks.NewMockMessageArchive(ctrl)
	// Silencing logs for clean test output
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()
	s := sink.NewArchiveSink(mockArchive, logger)

	t.Run("Delivered message is journaled", func(t *testing.T) {
		m := domain.Message{ID: 10, Conversation: 42, Text: "selam", CreatedAt: time.Now()}
		mockArchive.EXPECT().Store(m).Return(nil).Times(1)

		req.NoError(s.Consume(ctx, event.MessageReceived{Message: m}))
	})

	t.Run("Fetched history is journaled message by message", func(t *testing.T) {
		messages := []domain.Message{
			{ID: 1, Conversation: 42, Text: "a"},
			{ID: 2, Conversation: 42, Text: "b"},
		}
		mockArchive.EXPECT().Store(messages[0]).Return(nil).Times(1)
		mockArchive.EXPECT().Store(messages[1]).Return(nil).Times(1)

		req.NoError(s.Consume(ctx, event.MessagesFetched{Conv: 42, Messages: messages}))
	})

	t.Run("Unrelated events are ignored", func(t *testing.T) {
		req.NoError(s.Consume(ctx, event.RefreshDue{}))
	})
}
