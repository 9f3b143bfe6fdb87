package application

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)

// Client-facing messages. The credentials message is identical for an unknown
// user and a wrong password.
const (
	MsgInvalidCredentials = "Invalid username / password."
	MsgNotFound           = "Not found."
	MsgTryAgainLater      = "Please try again later."
)

// ViolationCode identifies a failed field rule independent of its wording.
type ViolationCode string

const (
	CodeUsernameRequired ViolationCode = "username_required"
	CodeUsernameCharset  ViolationCode = "username_charset"
	CodeUsernameTooShort ViolationCode = "username_too_short"
	CodeUsernameTooLong  ViolationCode = "username_too_long"
	CodeEmailInvalid     ViolationCode = "email_invalid"
	CodePasswordRequired ViolationCode = "password_required"
	CodePasswordTooShort ViolationCode = "password_too_short"
	CodePasswordTooLong  ViolationCode = "password_too_long"
	CodeUsernameTaken    ViolationCode = "username_taken"
	CodeEmailTaken       ViolationCode = "email_taken"
	CodeTitleRequired    ViolationCode = "title_required"
	CodeBodyRequired     ViolationCode = "body_required"
)

// Violation is a single failed rule.
type Violation struct {
	Code    ViolationCode `json:"code"`
	Message string        `json:"message"`
}

var violationMessages = map[ViolationCode]string{
	CodeUsernameRequired: "You must provide a username.",
	CodeUsernameCharset:  "Username can only contain letters and numbers.",
	CodeUsernameTooShort: "Username must be at least 3 characters.",
	CodeUsernameTooLong:  "Username cannot exceed 30 characters.",
	CodeEmailInvalid:     "You must provide a valid email address.",
	CodePasswordRequired: "You must provide a password.",
	CodePasswordTooShort: "Password must be at least 8 characters.",
	CodePasswordTooLong:  "Password cannot exceed 50 characters.",
	CodeUsernameTaken:    "That username is already taken.",
	CodeEmailTaken:       "That email is already being used.",
	CodeTitleRequired:    "You must provide a title.",
	CodeBodyRequired:     "You must provide post content.",
}

func violation(code ViolationCode) Violation {
	return Violation{Code: code, Message: violationMessages[code]}
}

// ValidationError carries every violation found, in the order the rules ran.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages(), " ")
}

func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		out = append(out, v.Message)
	}
	return out
}

// Has reports whether the given code is among the violations.
func (e *ValidationError) Has(code ViolationCode) bool {
	for _, v := range e.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

// PersistenceError is a transient store failure surfaced without retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func persistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// Messages flattens a workflow error into the messages a client may see.
// Unknown errors collapse to the generic retry message so no internals leak.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Messages()
	}
	if errors.Is(err, ErrInvalidCredentials) {
		return []string{MsgInvalidCredentials}
	}
	if errors.Is(err, ErrNotFound) {
		return []string{MsgNotFound}
	}
	return []string{MsgTryAgainLater}
}
