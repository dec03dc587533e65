package domain

import "time"

// Channel is a place users join and post to. Visibility and the creator
// reference are fixed at construction; only name and description can change.
type Channel struct {
	id          ChannelID
	name        ChannelName
	description Description
	public      bool
	creatorID   UserID
	createdAt   time.Time
	updatedAt   time.Time
}

// NewChannel creates a fresh channel. CreatedAt and UpdatedAt start equal.
func NewChannel(name ChannelName, description Description, public bool, creatorID UserID) *Channel {
	now := time.Now().UTC()
	return &Channel{
		id:          NewChannelID(),
		name:        name,
		description: description,
		public:      public,
		creatorID:   creatorID,
		createdAt:   now,
		updatedAt:   now,
	}
}

// RestoreChannel rehydrates a channel from persisted fields.
func RestoreChannel(id ChannelID, name ChannelName, description Description,
	public bool, creatorID UserID, createdAt, updatedAt time.Time) *Channel {
	return &Channel{
		id:          id,
		name:        name,
		description: description,
		public:      public,
		creatorID:   creatorID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Channel) ID() ChannelID            { return c.id }
func (c *Channel) Name() ChannelName        { return c.name }
func (c *Channel) Description() Description { return c.description }
func (c *Channel) IsPublic() bool           { return c.public }
func (c *Channel) CreatorID() UserID        { return c.creatorID }
func (c *Channel) CreatedAt() time.Time     { return c.createdAt }
func (c *Channel) UpdatedAt() time.Time     { return c.updatedAt }

// Equal compares by identifier only.
func (c *Channel) Equal(other *Channel) bool {
	return other != nil && c.id == other.id
}

// UpdateInfo replaces name and description.
func (c *Channel) UpdateInfo(name ChannelName, description Description) {
	c.name = name
	c.description = description
	c.touch()
}

// CanAcceptJoin reports whether users may join on their own. Private
// channels never accept joins, whatever other state the channel is in.
func (c *Channel) CanAcceptJoin() bool {
	return c.public
}

func (c *Channel) touch() {
	now := time.Now().UTC()
	if !now.After(c.updatedAt) {
		now = c.updatedAt.Add(time.Nanosecond)
	}
	c.updatedAt = now
}
