//go:generate go run go.uber.org/mock/mockgen -source=membership.go -destination=../mocks/mock_membership_repository.go -package=mocks
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

type IMembershipRepository interface {
	// SaveMembership persists a new membership. The (channel, user) pair is
	// the primary key, so a duplicate join fails with ErrAlreadyMember even
	// when two requests race: the check and the write share one transaction.
	SaveMembership(membership *domain.Membership) error
	MembershipExists(channelID domain.ChannelID, userID domain.UserID) (bool, error)
	ListMembershipsByChannel(channelID domain.ChannelID) ([]*domain.Membership, error)
	ListMembershipsByUser(userID domain.UserID) ([]*domain.Membership, error)
}

type MembershipRepository struct {
	db *badger.DB
}

func NewMembershipRepository(db *badger.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

type membershipRecord struct {
	ID        string    `json:"id"`
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"`
	JoinedAt  time.Time `json:"joined_at"`
}

// The composite key IS the uniqueness constraint: one key per
// (channel, user) pair. The record is written under both orderings so
// per-channel and per-user listings are both single prefix scans.
func membershipKey(channelID, userID string) []byte {
	return []byte(fmt.Sprintf("membership:%s:%s", channelID, userID))
}

func membershipUserKey(userID, channelID string) []byte {
	return []byte(fmt.Sprintf("membership_user:%s:%s", userID, channelID))
}

func (r *MembershipRepository) SaveMembership(membership *domain.Membership) error {
	record := membershipRecord{
		ID:        membership.ID().String(),
		ChannelID: membership.ChannelID().String(),
		UserID:    membership.UserID().String(),
		JoinedAt:  membership.JoinedAt(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		key := membershipKey(record.ChannelID, record.UserID)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrAlreadyMember
		} else if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(membershipUserKey(record.UserID, record.ChannelID), data)
	})
}

func (r *MembershipRepository) MembershipExists(channelID domain.ChannelID, userID domain.UserID) (bool, error) {
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(membershipKey(channelID.String(), userID.String()))
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

func (r *MembershipRepository) ListMembershipsByChannel(channelID domain.ChannelID) ([]*domain.Membership, error) {
	prefix := []byte("membership:" + channelID.String() + ":")
	return r.scanMemberships(prefix)
}

func (r *MembershipRepository) ListMembershipsByUser(userID domain.UserID) ([]*domain.Membership, error) {
	prefix := []byte("membership_user:" + userID.String() + ":")
	return r.scanMemberships(prefix)
}

func (r *MembershipRepository) scanMemberships(prefix []byte) ([]*domain.Membership, error) {
	var records []membershipRecord
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record membershipRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			}); err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	memberships := make([]*domain.Membership, 0, len(records))
	for _, record := range records {
		membership, err := restoreMembership(record)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, membership)
	}
	return memberships, nil
}

func restoreMembership(record membershipRecord) (*domain.Membership, error) {
	id, err := domain.ParseMembershipID(record.ID)
	if err != nil {
		return nil, err
	}
	channelID, err := domain.ParseChannelID(record.ChannelID)
	if err != nil {
		return nil, err
	}
	userID, err := domain.ParseUserID(record.UserID)
	if err != nil {
		return nil, err
	}
	return domain.RestoreMembership(id, channelID, userID, record.JoinedAt), nil
}
