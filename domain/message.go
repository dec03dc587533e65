package domain

import "time"

// Message is an immutable chat event. There is no edit operation:
// a posted message is fixed forever, which keeps the aggregate trivial.
type Message struct {
	id        MessageID
	channelID ChannelID
	authorID  UserID
	content   Content
	createdAt time.Time
}

// NewMessage records a message posted now.
func NewMessage(channelID ChannelID, authorID UserID, content Content) *Message {
	return &Message{
		id:        NewMessageID(),
		channelID: channelID,
		authorID:  authorID,
		content:   content,
		createdAt: time.Now().UTC(),
	}
}

// RestoreMessage rehydrates a message from persisted fields.
func RestoreMessage(id MessageID, channelID ChannelID, authorID UserID,
	content Content, createdAt time.Time) *Message {
	return &Message{
		id:        id,
		channelID: channelID,
		authorID:  authorID,
		content:   content,
		createdAt: createdAt,
	}
}

func (m *Message) ID() MessageID        { return m.id }
func (m *Message) ChannelID() ChannelID { return m.channelID }
func (m *Message) AuthorID() UserID     { return m.authorID }
func (m *Message) Content() Content     { return m.content }
func (m *Message) CreatedAt() time.Time { return m.createdAt }

// Equal compares by identifier only.
func (m *Message) Equal(other *Message) bool {
	return other != nil && m.id == other.id
}
