package services

import (
	"fmt"

	"minislack/auth"
	"minislack/domain"
	"minislack/domain/event"
	"minislack/errors"
	"minislack/repositories"
)

type IAccountService interface {
	Register(handle, email, displayName, password string) (Token, error)
	Login(email, password string) (Token, error)
	ChangeCredential(userID domain.UserID, current, next string) error
	UpdateDisplayName(userID domain.UserID, displayName string) error
}

type Token string

type AccountService struct {
	userRepository repositories.IUserRepository
	hasher         domain.Hasher
	tokens         auth.TokenIssuer
	dispatcher     *event.Dispatcher
}

func NewAccountService(repo repositories.IUserRepository, hasher domain.Hasher,
	tokens auth.TokenIssuer, dispatcher *event.Dispatcher) *AccountService {
	return &AccountService{
		userRepository: repo,
		hasher:         hasher,
		tokens:         tokens,
		dispatcher:     dispatcher,
	}
}

// Register creates an account and returns its initial session token.
func (s *AccountService) Register(handle, email, displayName, password string) (Token, error) {
	// 1. Build the value objects. Any malformed input stops here,
	// before the expensive cryptographic work.
	h, err := domain.NewHandle(handle)
	if err != nil {
		return "", err
	}
	e, err := domain.NewEmail(email)
	if err != nil {
		return "", err
	}
	d, err := domain.NewDisplayName(displayName)
	if err != nil {
		return "", err
	}

	// 2. Uniqueness pre-checks. The repository re-enforces both inside its
	// own transaction; these exist to fail fast with a precise error.
	if taken, err := s.userRepository.HandleExists(h); err != nil {
		return "", err
	} else if taken {
		return "", fmt.Errorf("%w: handle %s", errors.ErrUserAlreadyExists, h)
	}
	if taken, err := s.userRepository.EmailExists(e); err != nil {
		return "", err
	} else if taken {
		return "", fmt.Errorf("%w: email %s", errors.ErrUserAlreadyExists, e)
	}

	// 3. Derive the credential. The raw password never reaches storage.
	credential, err := domain.DeriveCredential(password, s.hasher)
	if err != nil {
		return "", err
	}

	// 4. Persist and announce.
	user := domain.NewUser(h, e, credential, d)
	if err := s.userRepository.SaveUser(user); err != nil {
		return "", err
	}
	s.dispatcher.Dispatch(event.New(event.UserRegisteredType, event.UserRegistered{
		UserID: user.ID(),
		Handle: user.Handle(),
	}))

	token, err := s.tokens.Generate(user.ID().String(), user.Handle().String())
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}

func (s *AccountService) Login(email, password string) (Token, error) {
	e, err := domain.NewEmail(email)
	if err != nil {
		return "", errors.ErrInvalidCredentials
	}

	// Generic error on every failure path to prevent user enumeration.
	user, err := s.userRepository.GetUserByEmail(e)
	if err != nil {
		return "", errors.ErrInvalidCredentials
	}

	match, err := user.Credential().Matches(password, s.hasher)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID().String(), user.Handle().String())
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}

// ChangeCredential loads the user and delegates the swap to the entity,
// which owns the current-credential precondition.
func (s *AccountService) ChangeCredential(userID domain.UserID, current, next string) error {
	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return err
	}
	if err := user.ChangeCredential(current, next, s.hasher); err != nil {
		return err
	}
	return s.userRepository.SaveUser(user)
}

func (s *AccountService) UpdateDisplayName(userID domain.UserID, displayName string) error {
	d, err := domain.NewDisplayName(displayName)
	if err != nil {
		return err
	}
	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return err
	}
	user.UpdateDisplayName(d)
	return s.userRepository.SaveUser(user)
}
