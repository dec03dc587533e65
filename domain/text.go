package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"minislack/errors"
)

const (
	HandleMinLen      = 3
	HandleMaxLen      = 20
	ChannelNameMinLen = 3
	ChannelNameMaxLen = 50
	DisplayNameMinLen = 1
	DisplayNameMaxLen = 50
	DescriptionMaxLen = 200
	ContentMinLen     = 1
	ContentMaxLen     = 2000
)

var (
	handlePattern      = regexp.MustCompile(`^[a-z0-9_]+$`)
	channelNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// Handle is the login name of a user: 3 to 20 characters of
// lowercase letters, digits and underscores. Input is trimmed and
// lowercased before the pattern check.
type Handle struct {
	value string
}

func NewHandle(raw string) (Handle, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return Handle{}, errors.InvalidArgumentf("handle must not be blank")
	}
	if n := utf8.RuneCountInString(v); n < HandleMinLen || n > HandleMaxLen {
		return Handle{}, errors.InvalidArgumentf(
			"handle must be %d to %d characters, got %d", HandleMinLen, HandleMaxLen, n)
	}
	if !handlePattern.MatchString(v) {
		return Handle{}, errors.InvalidArgumentf(
			"handle may only contain lowercase letters, digits and underscores")
	}
	return Handle{value: v}, nil
}

func (h Handle) String() string { return h.value }
func (h Handle) IsZero() bool   { return h.value == "" }

// DisplayName is the name shown next to a user's messages.
// Trimmed, 1 to 50 characters, any character allowed.
type DisplayName struct {
	value string
}

func NewDisplayName(raw string) (DisplayName, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return DisplayName{}, errors.InvalidArgumentf("display name must not be blank")
	}
	if n := utf8.RuneCountInString(v); n > DisplayNameMaxLen {
		return DisplayName{}, errors.InvalidArgumentf(
			"display name must be at most %d characters, got %d", DisplayNameMaxLen, n)
	}
	return DisplayName{value: v}, nil
}

func (d DisplayName) String() string { return d.value }
func (d DisplayName) IsZero() bool   { return d.value == "" }

// ChannelName is unique across the system: 3 to 50 characters of
// lowercase letters, digits, hyphens and underscores.
type ChannelName struct {
	value string
}

func NewChannelName(raw string) (ChannelName, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return ChannelName{}, errors.InvalidArgumentf("channel name must not be blank")
	}
	if n := utf8.RuneCountInString(v); n < ChannelNameMinLen || n > ChannelNameMaxLen {
		return ChannelName{}, errors.InvalidArgumentf(
			"channel name must be %d to %d characters, got %d", ChannelNameMinLen, ChannelNameMaxLen, n)
	}
	if !channelNamePattern.MatchString(v) {
		return ChannelName{}, errors.InvalidArgumentf(
			"channel name may only contain lowercase letters, digits, hyphens and underscores")
	}
	return ChannelName{value: v}, nil
}

func (n ChannelName) String() string { return n.value }
func (n ChannelName) IsZero() bool   { return n.value == "" }

// Description is an optional channel description. Empty is a valid value.
type Description struct {
	value string
}

func NewDescription(raw string) (Description, error) {
	v := strings.TrimSpace(raw)
	if n := utf8.RuneCountInString(v); n > DescriptionMaxLen {
		return Description{}, errors.InvalidArgumentf(
			"description must be at most %d characters, got %d", DescriptionMaxLen, n)
	}
	return Description{value: v}, nil
}

func (d Description) String() string { return d.value }
func (d Description) IsEmpty() bool  { return d.value == "" }

// Content is the body of a message, 1 to 2000 characters after trimming.
// Messages cannot be edited, so Content is only ever built once per message.
type Content struct {
	value string
}

func NewContent(raw string) (Content, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Content{}, errors.InvalidArgumentf("content must not be blank")
	}
	if n := utf8.RuneCountInString(v); n > ContentMaxLen {
		return Content{}, errors.InvalidArgumentf(
			"content must be at most %d characters, got %d", ContentMaxLen, n)
	}
	return Content{value: v}, nil
}

func (c Content) String() string { return c.value }
func (c Content) IsZero() bool   { return c.value == "" }
