package application

import (
	"context"
	"errors"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/oksasatya/go-ddd-social/internal/domain/repository"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 30
	passwordMinLen = 8
	passwordMaxLen = 50
)

var (
	rulesOnce sync.Once
	rules     *validator.Validate
)

func fieldRules() *validator.Validate {
	rulesOnce.Do(func() { rules = validator.New() })
	return rules
}

// IdentityValidator checks a normalized identity attempt. Field rules never
// short-circuit; uniqueness lookups run only once the field rules pass.
type IdentityValidator struct {
	Users repository.UserRepository
}

func NewIdentityValidator(users repository.UserRepository) *IdentityValidator {
	return &IdentityValidator{Users: users}
}

// FieldViolations runs the synchronous rules in a fixed order.
func FieldViolations(a IdentityAttempt) []Violation {
	v := fieldRules()
	var out []Violation

	if a.Username == "" {
		out = append(out, violation(CodeUsernameRequired))
	} else {
		if v.Var(a.Username, "alphanum") != nil {
			out = append(out, violation(CodeUsernameCharset))
		}
		n := utf8.RuneCountInString(a.Username)
		if n < usernameMinLen {
			out = append(out, violation(CodeUsernameTooShort))
		} else if n > usernameMaxLen {
			out = append(out, violation(CodeUsernameTooLong))
		}
	}

	if v.Var(a.Email, "required,email") != nil {
		out = append(out, violation(CodeEmailInvalid))
	}

	switch n := utf8.RuneCountInString(a.Password); {
	case n == 0:
		out = append(out, violation(CodePasswordRequired))
	case n < passwordMinLen:
		out = append(out, violation(CodePasswordTooShort))
	case n > passwordMaxLen:
		out = append(out, violation(CodePasswordTooLong))
	}
	return out
}

// Validate returns nil for a clean attempt, a *ValidationError listing every
// violation, or a *PersistenceError when a lookup could not reach the store.
func (iv *IdentityValidator) Validate(ctx context.Context, a IdentityAttempt) error {
	violations := FieldViolations(a)
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}

	var usernameTaken, emailTaken bool
	var g errgroup.Group
	g.Go(func() (err error) {
		usernameTaken, err = iv.UsernameExists(ctx, a.Username)
		return err
	})
	g.Go(func() (err error) {
		emailTaken, err = iv.EmailExists(ctx, a.Email)
		return err
	})
	if err := g.Wait(); err != nil {
		return persistence("uniqueness check", err)
	}

	if usernameTaken {
		violations = append(violations, violation(CodeUsernameTaken))
	}
	if emailTaken {
		violations = append(violations, violation(CodeEmailTaken))
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func (iv *IdentityValidator) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := iv.Users.GetByUsername(ctx, username)
	return found(err)
}

func (iv *IdentityValidator) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := iv.Users.GetByEmail(ctx, email)
	return found(err)
}

func found(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repository.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// ValidatePost checks a normalized post attempt.
func ValidatePost(a ContentAttempt) error {
	var violations []Violation
	if a.Title == "" {
		violations = append(violations, violation(CodeTitleRequired))
	}
	if a.Body == "" {
		violations = append(violations, violation(CodeBodyRequired))
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
