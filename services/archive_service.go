package services

import (
	"context"
	"log/slog"
	"time"

	"minislack/domain/event"
	"minislack/repositories"
)

// ArchiveService moves messages older than the retention window out of the
// live keyspace, one chunk at a time, until nothing is left to move.
type ArchiveService struct {
	messageRepository repositories.IMessageRepository
	dispatcher        *event.Dispatcher
	log               *slog.Logger
	retention         time.Duration
	chunkSize         int
}

func NewArchiveService(messages repositories.IMessageRepository, dispatcher *event.Dispatcher,
	log *slog.Logger, retention time.Duration, chunkSize int) *ArchiveService {
	return &ArchiveService{
		messageRepository: messages,
		dispatcher:        dispatcher,
		log:               log,
		retention:         retention,
		chunkSize:         chunkSize,
	}
}

// RunOnce drains every expired message and returns how many were archived.
// Each chunk is moved in its own transaction, so a crash mid-run loses no
// messages: whatever was not yet moved is picked up by the next run.
func (s *ArchiveService) RunOnce() (int, error) {
	cutoff := time.Now().UTC().Add(-s.retention)
	total := 0
	for {
		chunk, err := s.messageRepository.GetMessagesBefore(cutoff, s.chunkSize)
		if err != nil {
			return total, err
		}
		if len(chunk) == 0 {
			break
		}
		if err := s.messageRepository.ArchiveMessages(chunk); err != nil {
			return total, err
		}
		total += len(chunk)
		s.log.Info("archived chunk", "size", len(chunk), "total", total)
	}

	if total > 0 {
		s.dispatcher.Dispatch(event.New(event.MessagesArchivedType, event.MessagesArchived{
			Count:  total,
			Cutoff: cutoff,
		}))
	}
	return total, nil
}

// RunEvery triggers RunOnce on every tick until the context is cancelled.
func (s *ArchiveService) RunEvery(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.RunOnce(); err != nil {
				s.log.Error("archival run failed", "error", err)
			}
		}
	}
}
