package domain

import (
	"time"

	"minislack/errors"
)

// User is the account aggregate. Two construction paths exist: NewUser for
// fresh accounts (both timestamps set to now) and RestoreUser for rehydration
// from storage (timestamps carried over verbatim). There is deliberately no
// constructor taking optional timestamps.
type User struct {
	id          UserID
	handle      Handle
	email       Email
	credential  Credential
	displayName DisplayName
	createdAt   time.Time
	updatedAt   time.Time
}

// NewUser creates a fresh account. CreatedAt and UpdatedAt start equal.
func NewUser(handle Handle, email Email, credential Credential, displayName DisplayName) *User {
	now := time.Now().UTC()
	return &User{
		id:          NewUserID(),
		handle:      handle,
		email:       email,
		credential:  credential,
		displayName: displayName,
		createdAt:   now,
		updatedAt:   now,
	}
}

// RestoreUser rehydrates an account from persisted fields. No clock access:
// timestamps round-trip exactly as stored.
func RestoreUser(id UserID, handle Handle, email Email, credential Credential,
	displayName DisplayName, createdAt, updatedAt time.Time) *User {
	return &User{
		id:          id,
		handle:      handle,
		email:       email,
		credential:  credential,
		displayName: displayName,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (u *User) ID() UserID               { return u.id }
func (u *User) Handle() Handle           { return u.handle }
func (u *User) Email() Email             { return u.email }
func (u *User) Credential() Credential   { return u.credential }
func (u *User) DisplayName() DisplayName { return u.displayName }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }

// Equal compares by identifier only.
func (u *User) Equal(other *User) bool {
	return other != nil && u.id == other.id
}

// ChangeCredential swaps the stored credential after verifying the current
// one. On mismatch nothing changes and an ErrBusinessRule is returned.
func (u *User) ChangeCredential(current, next string, h Hasher) error {
	ok, err := u.credential.Matches(current, h)
	if err != nil {
		return err
	}
	if !ok {
		return errors.BusinessRulef("current credential does not match")
	}
	credential, err := DeriveCredential(next, h)
	if err != nil {
		return err
	}
	u.credential = credential
	u.touch()
	return nil
}

// UpdateDisplayName unconditionally replaces the display name.
func (u *User) UpdateDisplayName(name DisplayName) {
	u.displayName = name
	u.touch()
}

// touch advances UpdatedAt strictly forward even when the clock has not
// moved past the previous value yet.
func (u *User) touch() {
	now := time.Now().UTC()
	if !now.After(u.updatedAt) {
		now = u.updatedAt.Add(time.Nanosecond)
	}
	u.updatedAt = now
}
