// Package event carries the domain events emitted after successful writes.
// Handlers are the seam an external notification layer (message broker,
// websocket fan-out) would attach to; the core only dispatches in-process.
package event

import (
	"time"

	"minislack/domain"
)

type Type string

const (
	UserRegisteredType   Type = "USER_REGISTERED"
	MemberJoinedType     Type = "MEMBER_JOINED"
	MessagePostedType    Type = "MESSAGE_POSTED"
	MessagesArchivedType Type = "MESSAGES_ARCHIVED"
)

// Event wraps a typed payload with the instant it occurred.
type Event struct {
	Type       Type
	OccurredAt time.Time
	Payload    any
}

type UserRegistered struct {
	UserID domain.UserID
	Handle domain.Handle
}

type MemberJoined struct {
	ChannelID domain.ChannelID
	UserID    domain.UserID
}

type MessagePosted struct {
	MessageID domain.MessageID
	ChannelID domain.ChannelID
	AuthorID  domain.UserID
	Content   domain.Content
}

type MessagesArchived struct {
	Count  int
	Cutoff time.Time
}

// New stamps a payload with its type and the current instant.
func New(t Type, payload any) Event {
	return Event{Type: t, OccurredAt: time.Now().UTC(), Payload: payload}
}
