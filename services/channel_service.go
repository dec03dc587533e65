package services

import (
	"fmt"

	"github.com/samber/lo"

	"minislack/domain"
	"minislack/domain/event"
	"minislack/errors"
	"minislack/repositories"
)

type IChannelService interface {
	CreateChannel(name, description string, public bool, creatorID domain.UserID) (*domain.Channel, error)
	UpdateChannelInfo(channelID domain.ChannelID, name, description string) error
	Join(channelID domain.ChannelID, userID domain.UserID) (*domain.Membership, error)
	ListChannelsOf(userID domain.UserID) ([]*domain.Channel, error)
	ListMembers(channelID domain.ChannelID) ([]*domain.Membership, error)
}

type ChannelService struct {
	channelRepository    repositories.IChannelRepository
	membershipRepository repositories.IMembershipRepository
	dispatcher           *event.Dispatcher
}

func NewChannelService(channels repositories.IChannelRepository,
	memberships repositories.IMembershipRepository, dispatcher *event.Dispatcher) *ChannelService {
	return &ChannelService{
		channelRepository:    channels,
		membershipRepository: memberships,
		dispatcher:           dispatcher,
	}
}

// CreateChannel persists a new channel and enrolls its creator.
func (s *ChannelService) CreateChannel(name, description string, public bool,
	creatorID domain.UserID) (*domain.Channel, error) {
	n, err := domain.NewChannelName(name)
	if err != nil {
		return nil, err
	}
	d, err := domain.NewDescription(description)
	if err != nil {
		return nil, err
	}

	if taken, err := s.channelRepository.ChannelNameExists(n); err != nil {
		return nil, err
	} else if taken {
		return nil, fmt.Errorf("%w: %s", errors.ErrChannelNameTaken, n)
	}

	channel := domain.NewChannel(n, d, public, creatorID)
	if err := s.channelRepository.SaveChannel(channel); err != nil {
		return nil, err
	}

	// The creator is always a member, even of a private channel.
	membership := domain.NewMembership(channel.ID(), creatorID)
	if err := s.membershipRepository.SaveMembership(membership); err != nil {
		return nil, err
	}
	return channel, nil
}

func (s *ChannelService) UpdateChannelInfo(channelID domain.ChannelID, name, description string) error {
	n, err := domain.NewChannelName(name)
	if err != nil {
		return err
	}
	d, err := domain.NewDescription(description)
	if err != nil {
		return err
	}
	channel, err := s.channelRepository.GetChannelByID(channelID)
	if err != nil {
		return err
	}
	channel.UpdateInfo(n, d)
	return s.channelRepository.SaveChannel(channel)
}

// Join runs the whole join workflow in order: the channel must exist, must
// accept joins, and the pair must not already be linked. The duplicate
// check here is advisory; the repository's composite key is what actually
// holds under concurrent joins for the same pair.
func (s *ChannelService) Join(channelID domain.ChannelID, userID domain.UserID) (*domain.Membership, error) {
	channel, err := s.channelRepository.GetChannelByID(channelID)
	if err != nil {
		return nil, err
	}
	if !channel.CanAcceptJoin() {
		return nil, fmt.Errorf("%w: %s", errors.ErrChannelPrivate, channel.Name())
	}
	if exists, err := s.membershipRepository.MembershipExists(channelID, userID); err != nil {
		return nil, err
	} else if exists {
		return nil, errors.ErrAlreadyMember
	}

	membership := domain.NewMembership(channelID, userID)
	if err := s.membershipRepository.SaveMembership(membership); err != nil {
		return nil, err
	}
	s.dispatcher.Dispatch(event.New(event.MemberJoinedType, event.MemberJoined{
		ChannelID: channelID,
		UserID:    userID,
	}))
	return membership, nil
}

func (s *ChannelService) ListChannelsOf(userID domain.UserID) ([]*domain.Channel, error) {
	memberships, err := s.membershipRepository.ListMembershipsByUser(userID)
	if err != nil {
		return nil, err
	}
	ids := lo.Map(memberships, func(m *domain.Membership, _ int) domain.ChannelID {
		return m.ChannelID()
	})
	return s.channelRepository.ListChannelsByIDs(ids)
}

func (s *ChannelService) ListMembers(channelID domain.ChannelID) ([]*domain.Membership, error) {
	return s.membershipRepository.ListMembershipsByChannel(channelID)
}
