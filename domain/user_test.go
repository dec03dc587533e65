package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"minislack/errors"
)

func mustUser(t *testing.T) *User {
	t.Helper()
	req := require.New(t)
	handle, err := NewHandle("alice")
	req.NoError(err)
	email, err := NewEmail("alice@example.com")
	req.NoError(err)
	credential, err := DeriveCredential("password123", fakeHasher{})
	req.NoError(err)
	displayName, err := NewDisplayName("Alice")
	req.NoError(err)
	return NewUser(handle, email, credential, displayName)
}

func TestNewUser_TimestampsStartEqual(t *testing.T) {
	req := require.New(t)
	user := mustUser(t)

	req.False(user.ID().IsZero())
	req.Equal(user.CreatedAt(), user.UpdatedAt())
	req.Equal(time.UTC, user.CreatedAt().Location())
}

func TestRestoreUser_RoundTrip(t *testing.T) {
	req := require.New(t)
	original := mustUser(t)

	restored := RestoreUser(original.ID(), original.Handle(), original.Email(),
		original.Credential(), original.DisplayName(),
		original.CreatedAt(), original.UpdatedAt())

	req.True(original.Equal(restored))
	req.Equal(original.CreatedAt(), restored.CreatedAt())
	req.Equal(original.UpdatedAt(), restored.UpdatedAt())
}

func TestRestoreUser_TrustsStoredTimestamps(t *testing.T) {
	req := require.New(t)
	original := mustUser(t)

	// Restoration performs no ordering check: persisted data is taken as-is,
	// even when creation sits after modification.
	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	restored := RestoreUser(original.ID(), original.Handle(), original.Email(),
		original.Credential(), original.DisplayName(), created, updated)

	req.Equal(created, restored.CreatedAt())
	req.Equal(updated, restored.UpdatedAt())
}

func TestUser_Equal_IsIdentifierOnly(t *testing.T) {
	req := require.New(t)
	user := mustUser(t)
	other := mustUser(t)

	otherName, err := NewDisplayName("Somebody Else")
	req.NoError(err)
	sameID := RestoreUser(user.ID(), user.Handle(), user.Email(),
		user.Credential(), otherName, user.CreatedAt(), user.UpdatedAt())

	req.True(user.Equal(sameID))
	req.False(user.Equal(other))
	req.False(user.Equal(nil))
}

func TestUser_ChangeCredential(t *testing.T) {
	t.Run("should reject a wrong current credential and change nothing", func(t *testing.T) {
		req := require.New(t)
		user := mustUser(t)
		before := user.Credential()
		beforeUpdated := user.UpdatedAt()

		err := user.ChangeCredential("wrong-secret", "newpassword1", fakeHasher{})

		req.ErrorIs(err, errors.ErrBusinessRule)
		req.Equal(before, user.Credential())
		req.Equal(beforeUpdated, user.UpdatedAt())
	})

	t.Run("should swap the credential and advance UpdatedAt strictly forward", func(t *testing.T) {
		req := require.New(t)
		user := mustUser(t)
		before := user.Credential()
		beforeCreated := user.CreatedAt()
		beforeUpdated := user.UpdatedAt()

		err := user.ChangeCredential("password123", "newpassword1", fakeHasher{})

		req.NoError(err)
		req.NotEqual(before, user.Credential())
		req.True(user.UpdatedAt().After(beforeUpdated))
		req.Equal(beforeCreated, user.CreatedAt())

		ok, err := user.Credential().Matches("newpassword1", fakeHasher{})
		req.NoError(err)
		req.True(ok)
	})

	t.Run("should reject a too-short replacement secret", func(t *testing.T) {
		req := require.New(t)
		user := mustUser(t)

		err := user.ChangeCredential("password123", "short", fakeHasher{})

		req.ErrorIs(err, errors.ErrInvalidArgument)
	})
}

func TestUser_UpdateDisplayName(t *testing.T) {
	req := require.New(t)
	user := mustUser(t)
	beforeUpdated := user.UpdatedAt()

	name, err := NewDisplayName("Alice L.")
	req.NoError(err)
	user.UpdateDisplayName(name)

	req.Equal("Alice L.", user.DisplayName().String())
	req.True(user.UpdatedAt().After(beforeUpdated))
}
