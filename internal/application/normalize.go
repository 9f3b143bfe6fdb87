package application

import "strings"

// RegisterInput is raw registration data. A nil field means the value was
// missing or was not text.
type RegisterInput struct {
	Username *string
	Email    *string
	Password *string
}

// CredentialsInput is raw login data.
type CredentialsInput struct {
	Username *string
	Password *string
}

// PostInput is raw post data.
type PostInput struct {
	Title *string
	Body  *string
}

// IdentityAttempt is the canonical, request-scoped form of submitted identity data.
type IdentityAttempt struct {
	Username string
	Email    string
	Password string
}

// ContentAttempt is the canonical form of submitted post data.
type ContentAttempt struct {
	Title string
	Body  string
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func foldKey(s *string) string {
	return strings.ToLower(strings.TrimSpace(text(s)))
}

// NormalizeIdentity trims and lowercases username and email. The password is
// kept byte-for-byte.
func NormalizeIdentity(in RegisterInput) IdentityAttempt {
	return IdentityAttempt{
		Username: foldKey(in.Username),
		Email:    foldKey(in.Email),
		Password: text(in.Password),
	}
}

// NormalizeCredentials is NormalizeIdentity for a login form, which has no email.
func NormalizeCredentials(in CredentialsInput) IdentityAttempt {
	return IdentityAttempt{
		Username: foldKey(in.Username),
		Password: text(in.Password),
	}
}

// NormalizePost trims title and body, preserving case.
func NormalizePost(in PostInput) ContentAttempt {
	return ContentAttempt{
		Title: strings.TrimSpace(text(in.Title)),
		Body:  strings.TrimSpace(text(in.Body)),
	}
}

// StringField reads key from a decoded JSON object. Anything that is not a
// JSON string yields nil.
func StringField(m map[string]any, key string) *string {
	v, ok := m[key].(string)
	if !ok {
		return nil
	}
	return &v
}
