package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustChannel(t *testing.T, public bool) *Channel {
	t.Helper()
	req := require.New(t)
	name, err := NewChannelName("general")
	req.NoError(err)
	description, err := NewDescription("Company-wide chatter")
	req.NoError(err)
	return NewChannel(name, description, public, NewUserID())
}

func TestNewChannel_TimestampsStartEqual(t *testing.T) {
	req := require.New(t)
	channel := mustChannel(t, true)

	req.False(channel.ID().IsZero())
	req.Equal(channel.CreatedAt(), channel.UpdatedAt())
}

func TestRestoreChannel_RoundTrip(t *testing.T) {
	req := require.New(t)
	original := mustChannel(t, false)

	restored := RestoreChannel(original.ID(), original.Name(), original.Description(),
		original.IsPublic(), original.CreatorID(),
		original.CreatedAt(), original.UpdatedAt())

	req.True(original.Equal(restored))
	req.Equal(original.CreatedAt(), restored.CreatedAt())
	req.Equal(original.UpdatedAt(), restored.UpdatedAt())
	req.False(restored.IsPublic())
	req.Equal(original.CreatorID(), restored.CreatorID())
}

func TestChannel_UpdateInfo(t *testing.T) {
	req := require.New(t)
	channel := mustChannel(t, true)
	creator := channel.CreatorID()
	beforeUpdated := channel.UpdatedAt()

	name, err := NewChannelName("random")
	req.NoError(err)
	description, err := NewDescription("Anything goes")
	req.NoError(err)
	channel.UpdateInfo(name, description)

	req.Equal("random", channel.Name().String())
	req.Equal("Anything goes", channel.Description().String())
	req.True(channel.UpdatedAt().After(beforeUpdated))
	// Visibility and creator survive every update.
	req.True(channel.IsPublic())
	req.Equal(creator, channel.CreatorID())
}

func TestChannel_CanAcceptJoin(t *testing.T) {
	req := require.New(t)

	req.True(mustChannel(t, true).CanAcceptJoin())

	private := mustChannel(t, false)
	req.False(private.CanAcceptJoin())

	// Still closed after any other mutation.
	name, err := NewChannelName("renamed")
	req.NoError(err)
	description, err := NewDescription("")
	req.NoError(err)
	private.UpdateInfo(name, description)
	req.False(private.CanAcceptJoin())
}
