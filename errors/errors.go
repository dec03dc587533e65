// Package errors defines the sentinel errors shared across the module.
// Two kinds matter to callers: ErrInvalidArgument (malformed input rejected
// by a value object) and ErrBusinessRule (a valid entity refusing a state
// transition). Everything else narrows one of those or a storage condition.
package errors

import "fmt"

var (
	// ErrInvalidArgument wraps every value-object construction failure.
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	// ErrBusinessRule wraps every entity precondition failure.
	ErrBusinessRule = fmt.Errorf("business rule violation")

	ErrNotFound           = fmt.Errorf("not found")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrChannelNameTaken   = fmt.Errorf("channel name already taken")
	ErrAlreadyMember      = fmt.Errorf("already a member of this channel")
	ErrChannelPrivate     = fmt.Errorf("channel does not accept joins")
	ErrNotMember          = fmt.Errorf("not a member of this channel")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
)

// InvalidArgumentf builds an ErrInvalidArgument carrying the concrete rule
// that was violated, so the caller can render a meaningful rejection.
func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// BusinessRulef builds an ErrBusinessRule carrying the failed precondition.
func BusinessRulef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBusinessRule, fmt.Sprintf(format, args...))
}
