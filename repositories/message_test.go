package repositories

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"minislack/domain"
)

func newTestMessage(t *testing.T, channelID domain.ChannelID, text string) *domain.Message {
	t.Helper()
	content, err := domain.NewContent(text)
	require.NoError(t, err)
	return domain.NewMessage(channelID, domain.NewUserID(), content)
}

func TestMessageRepository_StoreAndGet(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)
	channelID := domain.NewChannelID()

	var stored []*domain.Message
	for i := 0; i < 3; i++ {
		message := newTestMessage(t, channelID, fmt.Sprintf("message number %d", i))
		req.NoError(repository.StoreMessage(message))
		stored = append(stored, message)
		time.Sleep(time.Millisecond)
	}

	fetched, _, err := repository.GetMessages(channelID, nil)
	req.NoError(err)
	req.Len(fetched, 3)
	// Newest first.
	req.True(stored[2].Equal(fetched[0]))
	req.True(stored[0].Equal(fetched[2]))
	req.Equal(stored[2].Content(), fetched[0].Content())
	req.Equal(stored[2].CreatedAt().UnixNano(), fetched[0].CreatedAt().UnixNano())
}

func TestMessageRepository_CursorPagination(t *testing.T) {
	req := require.New(t)
	limit := 2
	repository := NewMessageRepository(openTestDB(t), slog.Default(), &limit)
	channelID := domain.NewChannelID()

	for i := 0; i < 5; i++ {
		req.NoError(repository.StoreMessage(newTestMessage(t, channelID, fmt.Sprintf("message number %d", i))))
		time.Sleep(time.Millisecond)
	}

	firstPage, cursor, err := repository.GetMessages(channelID, nil)
	req.NoError(err)
	req.Len(firstPage, 2)
	req.NotNil(cursor)

	secondPage, cursor, err := repository.GetMessages(channelID, cursor)
	req.NoError(err)
	req.Len(secondPage, 2)

	thirdPage, _, err := repository.GetMessages(channelID, cursor)
	req.NoError(err)
	req.Len(thirdPage, 1)

	// No overlap across pages.
	seen := map[string]bool{}
	for _, page := range [][]*domain.Message{firstPage, secondPage, thirdPage} {
		for _, message := range page {
			req.False(seen[message.ID().String()])
			seen[message.ID().String()] = true
		}
	}
}

func TestMessageRepository_ChannelsAreIsolated(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)
	channelID := domain.NewChannelID()
	otherID := domain.NewChannelID()

	req.NoError(repository.StoreMessage(newTestMessage(t, channelID, "in the first channel")))
	req.NoError(repository.StoreMessage(newTestMessage(t, otherID, "in the second channel")))

	fetched, _, err := repository.GetMessages(channelID, nil)
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal(channelID, fetched[0].ChannelID())

	count, err := repository.CountMessages(channelID)
	req.NoError(err)
	req.Equal(1, count)
}

func TestMessageRepository_ArchiveFlow(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)
	channelID := domain.NewChannelID()

	old := newTestMessage(t, channelID, "an old message")
	time.Sleep(2 * time.Millisecond)
	cutoff := time.Now().UTC()
	time.Sleep(2 * time.Millisecond)
	recent := newTestMessage(t, channelID, "a recent message")
	req.NoError(repository.StoreMessage(old))
	req.NoError(repository.StoreMessage(recent))

	expired, err := repository.GetMessagesBefore(cutoff, 10)
	req.NoError(err)
	req.Len(expired, 1)
	req.True(old.Equal(expired[0]))

	req.NoError(repository.ArchiveMessages(expired))

	// Gone from the live keyspace, present in the archive.
	live, _, err := repository.GetMessages(channelID, nil)
	req.NoError(err)
	req.Len(live, 1)
	req.True(recent.Equal(live[0]))

	archived, err := repository.GetArchivedMessages(channelID)
	req.NoError(err)
	req.Len(archived, 1)
	req.True(old.Equal(archived[0]))
	req.Equal(old.CreatedAt().UnixNano(), archived[0].CreatedAt().UnixNano())

	// A second scan finds nothing left to archive.
	expired, err = repository.GetMessagesBefore(cutoff, 10)
	req.NoError(err)
	req.Empty(expired)
}

func TestMessageRepository_GetMessagesBeforeRespectsLimit(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)
	channelID := domain.NewChannelID()

	for i := 0; i < 5; i++ {
		req.NoError(repository.StoreMessage(newTestMessage(t, channelID, fmt.Sprintf("message number %d", i))))
	}

	cutoff := time.Now().UTC().Add(time.Minute)
	chunk, err := repository.GetMessagesBefore(cutoff, 3)
	req.NoError(err)
	req.Len(chunk, 3)
}
