package test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"minislack/auth"
	"minislack/domain"
	"minislack/domain/event"
	"minislack/moderation"
	"minislack/repositories"
	"minislack/services"
)

// Test_Scenario walks the whole lifecycle against a real BadgerDB:
// registration, channel creation, joining, posting through moderation,
// paging, and finally archival.
func Test_Scenario(t *testing.T) {
	req := require.New(t)
	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	defer db.Close()

	log := slog.Default()
	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenIssuer("integration-secret", time.Hour)
	moderator, err := moderation.NewModerator([]string{"badger"}, '*')
	req.NoError(err)

	counter := event.NewCounter()
	dispatcher := event.NewDispatcher(
		event.NewCountingHandler(counter),
		event.NewNotificationHandler(log),
	)

	userRepository := repositories.NewUserRepository(db)
	channelRepository := repositories.NewChannelRepository(db)
	membershipRepository := repositories.NewMembershipRepository(db)
	messageRepository := repositories.NewMessageRepository(db, log, lo.ToPtr(100))

	accounts := services.NewAccountService(userRepository, hasher, tokens, dispatcher)
	channels := services.NewChannelService(channelRepository, membershipRepository, dispatcher)
	chat := services.NewChatService(membershipRepository, messageRepository, moderator, dispatcher)
	archiver := services.NewArchiveService(messageRepository, dispatcher, log, 90*24*time.Hour, 10)

	// 1. Two users register; a duplicate handle is refused.
	aliceToken, err := accounts.Register("alice", "Alice@Example.com", "Alice", "ComplexPass123!")
	req.NoError(err)
	req.NotEmpty(aliceToken)
	_, err = accounts.Register("bob", "bob@example.com", "Bob", "AnotherPass456!")
	req.NoError(err)
	_, err = accounts.Register("alice", "elsewhere@example.com", "Impostor", "ComplexPass123!")
	req.Error(err)

	claims, err := tokens.Validate(string(aliceToken))
	req.NoError(err)
	aliceID, err := domain.ParseUserID(claims.UserID)
	req.NoError(err)

	// 2. The email was normalized on the way in.
	alice, err := userRepository.GetUserByID(aliceID)
	req.NoError(err)
	req.Equal("alice@example.com", alice.Email().String())

	bob, err := userRepository.GetUserByEmail(mustEmail(t, "bob@example.com"))
	req.NoError(err)

	// 3. Alice creates a channel; Bob joins it; a second join is refused.
	channel, err := channels.CreateChannel("general", "company wide", true, aliceID)
	req.NoError(err)
	_, err = channels.Join(channel.ID(), bob.ID())
	req.NoError(err)
	_, err = channels.Join(channel.ID(), bob.ID())
	req.Error(err)

	bobChannels, err := channels.ListChannelsOf(bob.ID())
	req.NoError(err)
	req.Len(bobChannels, 1)

	// 4. Bob posts through moderation; outsiders cannot post.
	message, err := chat.PostMessage(channel.ID(), bob.ID(), "the badger is loose")
	req.NoError(err)
	req.Equal("the ****** is loose", message.Content().String())
	_, err = chat.PostMessage(channel.ID(), domain.NewUserID(), "let me in")
	req.Error(err)

	fetched, _, err := chat.GetMessages(channel.ID(), nil)
	req.NoError(err)
	req.Len(fetched, 1)

	// 5. Nothing is old enough to archive yet.
	archived, err := archiver.RunOnce()
	req.NoError(err)
	req.Equal(0, archived)

	// 6. An aggressive retention window then sweeps everything.
	sweeper := services.NewArchiveService(messageRepository, dispatcher, log, -time.Second, 10)
	archived, err = sweeper.RunOnce()
	req.NoError(err)
	req.Equal(1, archived)

	remaining, _, err := chat.GetMessages(channel.ID(), nil)
	req.NoError(err)
	req.Empty(remaining)
	inArchive, err := messageRepository.GetArchivedMessages(channel.ID())
	req.NoError(err)
	req.Len(inArchive, 1)

	// 7. Every stage announced itself.
	req.Equal(2, counter.Count(event.UserRegisteredType))
	req.Equal(1, counter.Count(event.MemberJoinedType))
	req.Equal(1, counter.Count(event.MessagePostedType))
	req.Equal(1, counter.Count(event.MessagesArchivedType))
}

func mustEmail(t *testing.T, raw string) domain.Email {
	t.Helper()
	email, err := domain.NewEmail(raw)
	require.NoError(t, err)
	return email
}
