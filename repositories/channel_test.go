package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"

	"minislack/domain"
	"minislack/errors"
)

func newTestChannel(t *testing.T, name string, public bool) *domain.Channel {
	t.Helper()
	req := require.New(t)
	n, err := domain.NewChannelName(name)
	req.NoError(err)
	d, err := domain.NewDescription("a test channel")
	req.NoError(err)
	return domain.NewChannel(n, d, public, domain.NewUserID())
}

func TestChannelRepository_SaveAndGet(t *testing.T) {
	req := require.New(t)
	repository := NewChannelRepository(openTestDB(t))
	channel := newTestChannel(t, "general", true)

	req.NoError(repository.SaveChannel(channel))

	fetched, err := repository.GetChannelByID(channel.ID())
	req.NoError(err)
	req.True(channel.Equal(fetched))
	req.Equal(channel.Name(), fetched.Name())
	req.True(fetched.IsPublic())
	req.Equal(channel.CreatorID(), fetched.CreatorID())
	req.Equal(channel.CreatedAt().UnixNano(), fetched.CreatedAt().UnixNano())
	req.Equal(channel.UpdatedAt().UnixNano(), fetched.UpdatedAt().UnixNano())

	name, err := domain.NewChannelName("general")
	req.NoError(err)
	byName, err := repository.GetChannelByName(name)
	req.NoError(err)
	req.True(channel.Equal(byName))
}

func TestChannelRepository_NameUniqueness(t *testing.T) {
	req := require.New(t)
	repository := NewChannelRepository(openTestDB(t))
	req.NoError(repository.SaveChannel(newTestChannel(t, "general", true)))

	err := repository.SaveChannel(newTestChannel(t, "general", false))
	req.ErrorIs(err, errors.ErrChannelNameTaken)

	name, err := domain.NewChannelName("general")
	req.NoError(err)
	exists, err := repository.ChannelNameExists(name)
	req.NoError(err)
	req.True(exists)
}

func TestChannelRepository_RenameReleasesOldName(t *testing.T) {
	req := require.New(t)
	repository := NewChannelRepository(openTestDB(t))
	channel := newTestChannel(t, "general", true)
	req.NoError(repository.SaveChannel(channel))

	name, err := domain.NewChannelName("random")
	req.NoError(err)
	description, err := domain.NewDescription("")
	req.NoError(err)
	channel.UpdateInfo(name, description)
	req.NoError(repository.SaveChannel(channel))

	oldName, err := domain.NewChannelName("general")
	req.NoError(err)
	exists, err := repository.ChannelNameExists(oldName)
	req.NoError(err)
	req.False(exists)

	// The freed name can now be claimed by a new channel.
	req.NoError(repository.SaveChannel(newTestChannel(t, "general", true)))
}

func TestChannelRepository_ListByIDs(t *testing.T) {
	req := require.New(t)
	repository := NewChannelRepository(openTestDB(t))
	first := newTestChannel(t, "general", true)
	second := newTestChannel(t, "random", true)
	req.NoError(repository.SaveChannel(first))
	req.NoError(repository.SaveChannel(second))

	channels, err := repository.ListChannelsByIDs([]domain.ChannelID{
		first.ID(), domain.NewChannelID(), second.ID(),
	})
	req.NoError(err)
	// Unknown ids are skipped, not fatal.
	req.Len(channels, 2)
}
