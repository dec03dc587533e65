//go:generate go run go.uber.org/mock/mockgen -source=channel.go -destination=../mocks/mock_channel_repository.go -package=mocks
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

type IChannelRepository interface {
	SaveChannel(channel *domain.Channel) error
	GetChannelByID(id domain.ChannelID) (*domain.Channel, error)
	GetChannelByName(name domain.ChannelName) (*domain.Channel, error)
	ChannelNameExists(name domain.ChannelName) (bool, error)
	ListChannelsByIDs(ids []domain.ChannelID) ([]*domain.Channel, error)
}

type ChannelRepository struct {
	db *badger.DB
}

func NewChannelRepository(db *badger.DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

type channelRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Public      bool      `json:"public"`
	CreatorID   string    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func channelKey(id domain.ChannelID) []byte {
	return []byte("channel:id:" + id.String())
}

func channelNameKey(name string) []byte {
	return []byte("channel:name:" + name)
}

// SaveChannel upserts a channel. Name uniqueness rides the same transaction
// as the record write, exactly like the user handle index.
func (r *ChannelRepository) SaveChannel(channel *domain.Channel) error {
	record := channelRecord{
		ID:          channel.ID().String(),
		Name:        channel.Name().String(),
		Description: channel.Description().String(),
		Public:      channel.IsPublic(),
		CreatorID:   channel.CreatorID().String(),
		CreatedAt:   channel.CreatedAt(),
		UpdatedAt:   channel.UpdatedAt(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(channelNameKey(record.Name))
		if err == nil {
			if err := item.Value(func(val []byte) error {
				if string(val) != record.ID {
					return errors.ErrChannelNameTaken
				}
				return nil
			}); err != nil {
				return err
			}
		} else if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		if prev, err := getChannelRecord(txn, channelKey(channel.ID())); err == nil && prev.Name != record.Name {
			if err := txn.Delete(channelNameKey(prev.Name)); err != nil {
				return err
			}
		}

		if err := txn.Set(channelNameKey(record.Name), []byte(record.ID)); err != nil {
			return err
		}
		return txn.Set(channelKey(channel.ID()), data)
	})
}

func (r *ChannelRepository) GetChannelByID(id domain.ChannelID) (*domain.Channel, error) {
	var record channelRecord
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		record, err = getChannelRecord(txn, channelKey(id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return restoreChannel(record)
}

func (r *ChannelRepository) GetChannelByName(name domain.ChannelName) (*domain.Channel, error) {
	var record channelRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(channelNameKey(name.String()))
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
		record, err = getChannelRecord(txn, []byte("channel:id:"+id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return restoreChannel(record)
}

func (r *ChannelRepository) ChannelNameExists(name domain.ChannelName) (bool, error) {
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(channelNameKey(name.String()))
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

// ListChannelsByIDs resolves a batch of channel ids, skipping ids that no
// longer exist rather than failing the whole batch.
func (r *ChannelRepository) ListChannelsByIDs(ids []domain.ChannelID) ([]*domain.Channel, error) {
	var records []channelRecord
	err := r.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			record, err := getChannelRecord(txn, channelKey(id))
			if stderrors.Is(err, errors.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	channels := make([]*domain.Channel, 0, len(records))
	for _, record := range records {
		channel, err := restoreChannel(record)
		if err != nil {
			return nil, err
		}
		channels = append(channels, channel)
	}
	return channels, nil
}

func getChannelRecord(txn *badger.Txn, key []byte) (channelRecord, error) {
	var record channelRecord
	item, err := txn.Get(key)
	if err != nil {
		return record, translateBadgerErr(err)
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &record)
	})
	return record, err
}

func restoreChannel(record channelRecord) (*domain.Channel, error) {
	id, err := domain.ParseChannelID(record.ID)
	if err != nil {
		return nil, err
	}
	name, err := domain.NewChannelName(record.Name)
	if err != nil {
		return nil, err
	}
	description, err := domain.NewDescription(record.Description)
	if err != nil {
		return nil, err
	}
	creatorID, err := domain.ParseUserID(record.CreatorID)
	if err != nil {
		return nil, err
	}
	return domain.RestoreChannel(id, name, description, record.Public, creatorID,
		record.CreatedAt, record.UpdatedAt), nil
}
