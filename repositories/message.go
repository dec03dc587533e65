//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"minislack/domain"
)

type IMessageRepository interface {
	StoreMessage(message *domain.Message) error
	// GetMessages pages through a channel newest-first. The returned cursor
	// is passed back verbatim to fetch the next page; nil starts from the
	// latest message.
	GetMessages(channelID domain.ChannelID, cursor *string) ([]*domain.Message, *string, error)
	CountMessages(channelID domain.ChannelID) (int, error)
	// GetMessagesBefore scans live messages across all channels older than
	// the cutoff, capped at limit. Used by the archival job to build chunks.
	GetMessagesBefore(cutoff time.Time, limit int) ([]*domain.Message, error)
	// ArchiveMessages moves a chunk from the live keyspace to the archive
	// keyspace in a single transaction.
	ArchiveMessages(messages []*domain.Message) error
	GetArchivedMessages(channelID domain.ChannelID) ([]*domain.Message, error)
}

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) *MessageRepository {
	return &MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

type messageRecord struct {
	ID        string    `json:"id"`
	ChannelID string    `json:"channel_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// messageKey is formatted as "msg:{channel}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Prevent data loss by using the message id as a collision
//     disconnector if two messages land on the same nanosecond.
func messageKey(channelID string, at time.Time, id string) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s", channelID, at.UnixNano(), id))
}

func archiveKey(channelID string, at time.Time, id string) []byte {
	return []byte(fmt.Sprintf("archive:%s:%019d:%s", channelID, at.UnixNano(), id))
}

func (r *MessageRepository) StoreMessage(message *domain.Message) error {
	record, data, err := marshalMessage(message)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(messageKey(record.ChannelID, record.CreatedAt, record.ID), data)
	})
}

// GetMessages walks the channel prefix in reverse so the newest messages
// come first. The cursor is the key suffix after the prefix, exactly as
// stored, so resuming is a plain Seek.
func (r *MessageRepository) GetMessages(channelID domain.ChannelID, cursor *string) ([]*domain.Message, *string, error) {
	var records []messageRecord
	var lastKey string
	prefixStr := "msg:" + channelID.String() + ":"
	prefix := []byte(prefixStr)

	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Seek past every possible timestamp, then walk backwards.
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limitMessages != nil && len(records) == *r.limitMessages {
				r.log.Debug(fmt.Sprintf("Maximum of %d messages reached", *r.limitMessages))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefixStr):])
			var record messageRecord
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			}); err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	messages, err := restoreMessages(records)
	if err != nil {
		return nil, nil, err
	}
	return messages, &lastKey, nil
}

func (r *MessageRepository) CountMessages(channelID domain.ChannelID) (int, error) {
	prefix := []byte("msg:" + channelID.String() + ":")
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

func (r *MessageRepository) GetMessagesBefore(cutoff time.Time, limit int) ([]*domain.Message, error) {
	prefix := []byte("msg:")
	var records []messageRecord
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if len(records) == limit {
				break
			}
			var record messageRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			}); err != nil {
				return err
			}
			if record.CreatedAt.Before(cutoff) {
				records = append(records, record)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return restoreMessages(records)
}

func (r *MessageRepository) ArchiveMessages(messages []*domain.Message) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for _, message := range messages {
			record, data, err := marshalMessage(message)
			if err != nil {
				return err
			}
			if err := txn.Delete(messageKey(record.ChannelID, record.CreatedAt, record.ID)); err != nil {
				return err
			}
			if err := txn.Set(archiveKey(record.ChannelID, record.CreatedAt, record.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *MessageRepository) GetArchivedMessages(channelID domain.ChannelID) ([]*domain.Message, error) {
	prefix := []byte("archive:" + channelID.String() + ":")
	var records []messageRecord
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record messageRecord
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
	return restoreMessages(records)
}

func marshalMessage(message *domain.Message) (messageRecord, []byte, error) {
	record := messageRecord{
		ID:        message.ID().String(),
		ChannelID: message.ChannelID().String(),
		AuthorID:  message.AuthorID().String(),
		Content:   message.Content().String(),
		CreatedAt: message.CreatedAt(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return record, nil, fmt.Errorf("marshal failed: %w", err)
	}
	return record, data, nil
}

func restoreMessages(records []messageRecord) ([]*domain.Message, error) {
	messages := make([]*domain.Message, 0, len(records))
	for _, record := range records {
		message, err := restoreMessage(record)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func restoreMessage(record messageRecord) (*domain.Message, error) {
	id, err := domain.ParseMessageID(record.ID)
	if err != nil {
		return nil, err
	}
	channelID, err := domain.ParseChannelID(record.ChannelID)
	if err != nil {
		return nil, err
	}
	authorID, err := domain.ParseUserID(record.AuthorID)
	if err != nil {
		return nil, err
	}
	content, err := domain.NewContent(record.Content)
	if err != nil {
		return nil, err
	}
	return domain.RestoreMessage(id, channelID, authorID, content, record.CreatedAt), nil
}
