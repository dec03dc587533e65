package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"

	"minislack/domain"
	"minislack/errors"
)

func TestMembershipRepository_SaveAndExists(t *testing.T) {
	req := require.New(t)
	repository := NewMembershipRepository(openTestDB(t))
	channelID := domain.NewChannelID()
	userID := domain.NewUserID()

	exists, err := repository.MembershipExists(channelID, userID)
	req.NoError(err)
	req.False(exists)

	membership := domain.NewMembership(channelID, userID)
	req.NoError(repository.SaveMembership(membership))

	exists, err = repository.MembershipExists(channelID, userID)
	req.NoError(err)
	req.True(exists)
}

func TestMembershipRepository_DuplicatePairRejected(t *testing.T) {
	req := require.New(t)
	repository := NewMembershipRepository(openTestDB(t))
	channelID := domain.NewChannelID()
	userID := domain.NewUserID()

	req.NoError(repository.SaveMembership(domain.NewMembership(channelID, userID)))

	// A second membership for the same pair is refused even though it
	// carries a fresh membership id: the pair is the key.
	err := repository.SaveMembership(domain.NewMembership(channelID, userID))
	req.ErrorIs(err, errors.ErrAlreadyMember)
}

func TestMembershipRepository_Listings(t *testing.T) {
	req := require.New(t)
	repository := NewMembershipRepository(openTestDB(t))
	channelID := domain.NewChannelID()
	otherChannelID := domain.NewChannelID()
	userID := domain.NewUserID()
	otherUserID := domain.NewUserID()

	req.NoError(repository.SaveMembership(domain.NewMembership(channelID, userID)))
	req.NoError(repository.SaveMembership(domain.NewMembership(channelID, otherUserID)))
	req.NoError(repository.SaveMembership(domain.NewMembership(otherChannelID, userID)))

	byChannel, err := repository.ListMembershipsByChannel(channelID)
	req.NoError(err)
	req.Len(byChannel, 2)
	for _, m := range byChannel {
		req.Equal(channelID, m.ChannelID())
	}

	byUser, err := repository.ListMembershipsByUser(userID)
	req.NoError(err)
	req.Len(byUser, 2)
	for _, m := range byUser {
		req.Equal(userID, m.UserID())
	}
}

func TestMembershipRepository_RoundTrip(t *testing.T) {
	req := require.New(t)
	repository := NewMembershipRepository(openTestDB(t))
	original := domain.NewMembership(domain.NewChannelID(), domain.NewUserID())
	req.NoError(repository.SaveMembership(original))

	listed, err := repository.ListMembershipsByChannel(original.ChannelID())
	req.NoError(err)
	req.Len(listed, 1)
	req.True(original.Equal(listed[0]))
	req.Equal(original.JoinedAt().UnixNano(), listed[0].JoinedAt().UnixNano())
}
