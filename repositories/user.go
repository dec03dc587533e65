//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"minislack/domain"
	"minislack/errors"
)

type IUserRepository interface {
	SaveUser(user *domain.User) error
	GetUserByID(id domain.UserID) (*domain.User, error)
	GetUserByHandle(handle domain.Handle) (*domain.User, error)
	GetUserByEmail(email domain.Email) (*domain.User, error)
	HandleExists(handle domain.Handle) (bool, error)
	EmailExists(email domain.Email) (bool, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

// userRecord is the persisted shape of a User. Timestamps round-trip with
// nanosecond precision so restoration is byte-identical.
type userRecord struct {
	ID           string    `json:"id"`
	Handle       string    `json:"handle"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	DisplayName  string    `json:"display_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func userKey(id domain.UserID) []byte {
	return []byte("user:id:" + id.String())
}

func userHandleKey(handle string) []byte {
	return []byte("user:handle:" + handle)
}

func userEmailKey(email string) []byte {
	return []byte("user:email:" + email)
}

// SaveUser upserts a user. Handle and email uniqueness is enforced here:
// the secondary index keys are checked and rewritten in the same Badger
// transaction as the record itself, so two concurrent registrations for
// the same handle cannot both succeed.
func (r *UserRepository) SaveUser(user *domain.User) error {
	record := userRecord{
		ID:           user.ID().String(),
		Handle:       user.Handle().String(),
		Email:        user.Email().String(),
		PasswordHash: user.Credential().Hashed(),
		DisplayName:  user.DisplayName().String(),
		CreatedAt:    user.CreatedAt(),
		UpdatedAt:    user.UpdatedAt(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		if err := checkIndexFree(txn, userHandleKey(record.Handle), record.ID); err != nil {
			return err
		}
		if err := checkIndexFree(txn, userEmailKey(record.Email), record.ID); err != nil {
			return err
		}

		// Drop stale index entries when handle or email changed.
		if prev, err := getUserRecord(txn, userKey(user.ID())); err == nil {
			if prev.Handle != record.Handle {
				if err := txn.Delete(userHandleKey(prev.Handle)); err != nil {
					return err
				}
			}
			if prev.Email != record.Email {
				if err := txn.Delete(userEmailKey(prev.Email)); err != nil {
					return err
				}
			}
		}

		if err := txn.Set(userHandleKey(record.Handle), []byte(record.ID)); err != nil {
			return err
		}
		if err := txn.Set(userEmailKey(record.Email), []byte(record.ID)); err != nil {
			return err
		}
		return txn.Set(userKey(user.ID()), data)
	})
}

func (r *UserRepository) GetUserByID(id domain.UserID) (*domain.User, error) {
	var record userRecord
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		record, err = getUserRecord(txn, userKey(id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return restoreUser(record)
}

func (r *UserRepository) GetUserByHandle(handle domain.Handle) (*domain.User, error) {
	return r.getUserByIndex(userHandleKey(handle.String()))
}

func (r *UserRepository) GetUserByEmail(email domain.Email) (*domain.User, error) {
	return r.getUserByIndex(userEmailKey(email.String()))
}

func (r *UserRepository) HandleExists(handle domain.Handle) (bool, error) {
	return r.keyExists(userHandleKey(handle.String()))
}

func (r *UserRepository) EmailExists(email domain.Email) (bool, error) {
	return r.keyExists(userEmailKey(email.String()))
}

func (r *UserRepository) getUserByIndex(indexKey []byte) (*domain.User, error) {
	var record userRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(indexKey)
		if err != nil {
			return translateBadgerErr(err)
		}
		var id string
		if err := item.Value(func(val []byte) error {
			id = string(val)
			return nil
		}); err != nil {
			return err
		}
		record, err = getUserRecord(txn, []byte("user:id:"+id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return restoreUser(record)
}

func (r *UserRepository) keyExists(key []byte) (bool, error) {
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		return err
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func getUserRecord(txn *badger.Txn, key []byte) (userRecord, error) {
	var record userRecord
	item, err := txn.Get(key)
	if err != nil {
		return record, translateBadgerErr(err)
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &record)
	})
	return record, err
}

// checkIndexFree fails when the index key already points at another user.
func checkIndexFree(txn *badger.Txn, indexKey []byte, ownerID string) error {
	item, err := txn.Get(indexKey)
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		if string(val) != ownerID {
			return errors.ErrUserAlreadyExists
		}
		return nil
	})
}

// restoreUser rebuilds the entity through the restoration constructor:
// business fields re-validated as value objects, timestamps verbatim.
func restoreUser(record userRecord) (*domain.User, error) {
	id, err := domain.ParseUserID(record.ID)
	if err != nil {
		return nil, err
	}
	handle, err := domain.NewHandle(record.Handle)
	if err != nil {
		return nil, err
	}
	email, err := domain.NewEmail(record.Email)
	if err != nil {
		return nil, err
	}
	credential, err := domain.RestoreCredential(record.PasswordHash)
	if err != nil {
		return nil, err
	}
	displayName, err := domain.NewDisplayName(record.DisplayName)
	if err != nil {
		return nil, err
	}
	return domain.RestoreUser(id, handle, email, credential, displayName,
		record.CreatedAt, record.UpdatedAt), nil
}

func translateBadgerErr(err error) error {
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrNotFound
	}
	return err
}
