package domain

import "time"

// Membership links a user to a channel. It is fully immutable: there is no
// mutation method. At most one membership may exist per (channel, user)
// pair; that uniqueness belongs to the repository, not to this entity.
type Membership struct {
	id        MembershipID
	channelID ChannelID
	userID    UserID
	joinedAt  time.Time
}

// NewMembership records a user joining a channel now.
func NewMembership(channelID ChannelID, userID UserID) *Membership {
	return &Membership{
		id:        NewMembershipID(),
		channelID: channelID,
		userID:    userID,
		joinedAt:  time.Now().UTC(),
	}
}

// RestoreMembership rehydrates a membership from persisted fields.
func RestoreMembership(id MembershipID, channelID ChannelID, userID UserID, joinedAt time.Time) *Membership {
	return &Membership{
		id:        id,
		channelID: channelID,
		userID:    userID,
		joinedAt:  joinedAt,
	}
}

func (m *Membership) ID() MembershipID     { return m.id }
func (m *Membership) ChannelID() ChannelID { return m.channelID }
func (m *Membership) UserID() UserID       { return m.userID }
func (m *Membership) JoinedAt() time.Time  { return m.joinedAt }

// Equal compares by identifier only.
func (m *Membership) Equal(other *Membership) bool {
	return other != nil && m.id == other.id
}
