package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-social/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-social/internal/domain/repository"
)

// PasswordHasher is a slow, salted one-way function. Verify must report false
// rather than fail on a malformed digest.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// RegistrationNotifier is told about every new account. Failures are logged, never returned to the user.
type RegistrationNotifier interface {
	UserRegistered(ctx context.Context, u RegisteredUser, email string) error
}

// Authenticator verifies a session token and returns the caller's user id.
// Token issuance and verification live outside this package.
type Authenticator interface {
	Verify(ctx context.Context, token string) (string, error)
}

type UserService struct {
	Repo       repo.UserRepository
	Hasher     PasswordHasher
	Validator  *IdentityValidator
	Notifier   RegistrationNotifier
	Logger     *logrus.Logger
	AvatarSize int
}

// RegisteredUser is returned by Register.
type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// AuthenticatedUser is returned by Authenticate. It never carries the digest.
type AuthenticatedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

func NewUserService(users repo.UserRepository, hasher PasswordHasher, notifier RegistrationNotifier, logger *logrus.Logger, avatarSize int) *UserService {
	return &UserService{
		Repo:       users,
		Hasher:     hasher,
		Validator:  NewIdentityValidator(users),
		Notifier:   notifier,
		Logger:     logger,
		AvatarSize: avatarSize,
	}
}

// Register normalizes and validates the input, then hashes the password and
// stores the user. Nothing is written unless validation is clean.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*RegisteredUser, error) {
	a := NormalizeIdentity(in)
	if err := s.Validator.Validate(ctx, a); err != nil {
		s.logStoreFault(err, "registration uniqueness check failed", a.Username)
		return nil, err
	}

	hash, err := s.Hasher.Hash(a.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{Username: a.Username, Email: a.Email, PasswordHash: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		// a concurrent registration won the unique index
		switch {
		case errors.Is(err, repo.ErrDuplicateUsername):
			return nil, &ValidationError{Violations: []Violation{violation(CodeUsernameTaken)}}
		case errors.Is(err, repo.ErrDuplicateEmail):
			return nil, &ValidationError{Violations: []Violation{violation(CodeEmailTaken)}}
		}
		perr := persistence("create user", err)
		s.logStoreFault(perr, "create user failed", a.Username)
		return nil, perr
	}

	out := RegisteredUser{ID: u.ID, Username: u.Username, Avatar: AvatarURL(u.Email, s.AvatarSize)}
	if s.Notifier != nil {
		if nErr := s.Notifier.UserRegistered(ctx, out, u.Email); nErr != nil && s.Logger != nil {
			s.Logger.WithError(nErr).WithField("user_id", u.ID).Warn("registration notification failed")
		}
	}
	return &out, nil
}

// Authenticate checks a username/password pair. An unknown user and a wrong
// password yield the same ErrInvalidCredentials; store faults are reported
// as *PersistenceError.
func (s *UserService) Authenticate(ctx context.Context, in CredentialsInput) (*AuthenticatedUser, error) {
	a := NormalizeCredentials(in)
	u, err := s.Repo.GetByUsername(ctx, a.Username)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		perr := persistence("find user", err)
		s.logStoreFault(perr, "login lookup failed", a.Username)
		return nil, perr
	}
	if !s.Hasher.Verify(a.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &AuthenticatedUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Avatar:   AvatarURL(u.Email, s.AvatarSize),
	}, nil
}

func (s *UserService) CheckUsernameExists(ctx context.Context, username string) (bool, error) {
	return s.Validator.UsernameExists(ctx, strings.ToLower(strings.TrimSpace(username)))
}

func (s *UserService) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	return s.Validator.EmailExists(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *UserService) logStoreFault(err error, msg, username string) {
	var perr *PersistenceError
	if s.Logger == nil || !errors.As(err, &perr) {
		return
	}
	s.Logger.WithError(perr.Err).WithField("username", username).Error(msg)
}
