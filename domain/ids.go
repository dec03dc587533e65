// Package domain contains core concepts of the chat system.
// Value objects validate themselves at construction and entities only
// mutate through their own methods. No runtime, network, or UI logic
// should be added here.
package domain

import (
	"strings"

	"github.com/google/uuid"

	"minislack/errors"
)

// UserID is an opaque unique token identifying a User.
// Always valid in memory: construct via NewUserID or ParseUserID.
type UserID struct {
	value string
}

// NewUserID generates a fresh random identifier.
func NewUserID() UserID {
	return UserID{value: uuid.NewString()}
}

// ParseUserID wraps an existing token coming from storage or an external
// reference. Blank or non-UUID input is rejected.
func ParseUserID(raw string) (UserID, error) {
	v, err := parseID(raw, "user id")
	return UserID{value: v}, err
}

func (id UserID) String() string { return id.value }
func (id UserID) IsZero() bool   { return id.value == "" }

// ChannelID identifies a Channel.
type ChannelID struct {
	value string
}

func NewChannelID() ChannelID {
	return ChannelID{value: uuid.NewString()}
}

func ParseChannelID(raw string) (ChannelID, error) {
	v, err := parseID(raw, "channel id")
	return ChannelID{value: v}, err
}

func (id ChannelID) String() string { return id.value }
func (id ChannelID) IsZero() bool   { return id.value == "" }

// MembershipID identifies a Membership.
type MembershipID struct {
	value string
}

func NewMembershipID() MembershipID {
	return MembershipID{value: uuid.NewString()}
}

func ParseMembershipID(raw string) (MembershipID, error) {
	v, err := parseID(raw, "membership id")
	return MembershipID{value: v}, err
}

func (id MembershipID) String() string { return id.value }
func (id MembershipID) IsZero() bool   { return id.value == "" }

// MessageID identifies a Message.
type MessageID struct {
	value string
}

func NewMessageID() MessageID {
	return MessageID{value: uuid.NewString()}
}

func ParseMessageID(raw string) (MessageID, error) {
	v, err := parseID(raw, "message id")
	return MessageID{value: v}, err
}

func (id MessageID) String() string { return id.value }
func (id MessageID) IsZero() bool   { return id.value == "" }

// parseID is the single validating path every identifier goes through,
// whether generated or wrapped from an existing token.
func parseID(raw, kind string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.InvalidArgumentf("%s must not be blank", kind)
	}
	if _, err := uuid.Parse(trimmed); err != nil {
		return "", errors.InvalidArgumentf("%s %q is not a valid token", kind, raw)
	}
	return trimmed, nil
}
