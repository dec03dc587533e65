package domain

import (
	"minislack/errors"
)

// MinRawSecretLen is the minimum length of a plain text password before
// it may be turned into a credential.
const MinRawSecretLen = 8

// Hasher is the one-way hashing collaborator. The domain never hashes
// anything itself; an implementation (Argon2id in the auth package) is
// injected wherever credentials are derived or checked.
type Hasher interface {
	Hash(raw string) (string, error)
	Compare(raw, encoded string) (bool, error)
}

// Credential holds the hashed form of a user's secret. The raw secret is
// never stored and never appears in the string representation.
type Credential struct {
	hashed string
}

// DeriveCredential hashes a plain text secret into a storable credential.
// The length check applies to the raw secret only, so it lives here and
// not in RestoreCredential where the raw form is long gone.
func DeriveCredential(raw string, h Hasher) (Credential, error) {
	if len(raw) < MinRawSecretLen {
		return Credential{}, errors.InvalidArgumentf(
			"secret must be at least %d characters", MinRawSecretLen)
	}
	hashed, err := h.Hash(raw)
	if err != nil {
		return Credential{}, err
	}
	return Credential{hashed: hashed}, nil
}

// RestoreCredential wraps an already-hashed value loaded from storage.
func RestoreCredential(hashed string) (Credential, error) {
	if hashed == "" {
		return Credential{}, errors.InvalidArgumentf("stored credential must not be blank")
	}
	return Credential{hashed: hashed}, nil
}

// Matches reports whether the raw secret corresponds to this credential.
// Comparison is fully delegated to the hashing collaborator.
func (c Credential) Matches(raw string, h Hasher) (bool, error) {
	return h.Compare(raw, c.hashed)
}

// Hashed exposes the stored hash for persistence.
func (c Credential) Hashed() string { return c.hashed }

func (c Credential) IsZero() bool { return c.hashed == "" }

// String redacts the credential so it can never leak through logging.
func (c Credential) String() string { return "credential[redacted]" }
