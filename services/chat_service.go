package services

import (
	"fmt"

	"minislack/domain"
	"minislack/domain/event"
	"minislack/errors"
	"minislack/moderation"
	"minislack/repositories"
)

type IChatService interface {
	PostMessage(channelID domain.ChannelID, authorID domain.UserID, content string) (*domain.Message, error)
	GetMessages(channelID domain.ChannelID, cursor *string) ([]*domain.Message, *string, error)
}

type ChatService struct {
	membershipRepository repositories.IMembershipRepository
	messageRepository    repositories.IMessageRepository
	moderator            *moderation.Moderator
	dispatcher           *event.Dispatcher
}

func NewChatService(memberships repositories.IMembershipRepository,
	messages repositories.IMessageRepository, moderator *moderation.Moderator,
	dispatcher *event.Dispatcher) *ChatService {
	return &ChatService{
		membershipRepository: memberships,
		messageRepository:    messages,
		moderator:            moderator,
		dispatcher:           dispatcher,
	}
}

// PostMessage stores a message and announces it. Only members may post;
// content goes through moderation before it becomes a value object, so a
// censored message is what actually gets validated and persisted.
func (s *ChatService) PostMessage(channelID domain.ChannelID, authorID domain.UserID,
	content string) (*domain.Message, error) {
	member, err := s.membershipRepository.MembershipExists(channelID, authorID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, fmt.Errorf("%w: user %s in channel %s", errors.ErrNotMember, authorID, channelID)
	}

	censored := content
	if s.moderator != nil {
		censored = s.moderator.Censor(content)
	}
	c, err := domain.NewContent(censored)
	if err != nil {
		return nil, err
	}

	message := domain.NewMessage(channelID, authorID, c)
	if err := s.messageRepository.StoreMessage(message); err != nil {
		return nil, err
	}

	// Announce only after a successful save. This is where an external
	// notification layer would hook in.
	s.dispatcher.Dispatch(event.New(event.MessagePostedType, event.MessagePosted{
		MessageID: message.ID(),
		ChannelID: channelID,
		AuthorID:  authorID,
		Content:   message.Content(),
	}))
	return message, nil
}

func (s *ChatService) GetMessages(channelID domain.ChannelID, cursor *string) ([]*domain.Message, *string, error) {
	return s.messageRepository.GetMessages(channelID, cursor)
}
