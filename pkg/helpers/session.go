package helpers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNoSession = errors.New("session not found")

// SessionUser is what a logged-in session remembers about its user.
type SessionUser struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type sessionRecord struct {
	SessionUser
	SID       string `json:"sid"`
	CreatedAt string `json:"created_at"`
}

// SessionAuthenticator issues access tokens backed by a Redis session and
// verifies them. A token is only valid while its session id is current.
type SessionAuthenticator struct {
	Redis *redis.Client
	JWT   *JWTManager
	TTL   time.Duration
}

func NewSessionAuthenticator(rdb *redis.Client, jwt *JWTManager, ttl time.Duration) *SessionAuthenticator {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionAuthenticator{Redis: rdb, JWT: jwt, TTL: ttl}
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

// Start records a fresh session for u and returns its access token.
func (a *SessionAuthenticator) Start(ctx context.Context, u SessionUser) (string, time.Time, error) {
	sid := uuid.NewString()
	token, exp, err := a.JWT.GenerateAccessToken(u.UserID, sid)
	if err != nil {
		return "", time.Time{}, err
	}
	rec := sessionRecord{SessionUser: u, SID: sid, CreatedAt: time.Now().UTC().Format(time.RFC3339Nano)}
	if err := RedisSetJSON(ctx, a.Redis, sessionKey(u.UserID), rec, a.TTL); err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// Verify returns the user id behind a valid, current token.
func (a *SessionAuthenticator) Verify(ctx context.Context, token string) (string, error) {
	rec, err := a.session(ctx, token)
	if err != nil {
		return "", err
	}
	return rec.UserID, nil
}

// Current returns the session user behind token.
func (a *SessionAuthenticator) Current(ctx context.Context, token string) (SessionUser, error) {
	rec, err := a.session(ctx, token)
	if err != nil {
		return SessionUser{}, err
	}
	return rec.SessionUser, nil
}

// End drops the session behind token. Unknown sessions are not an error.
func (a *SessionAuthenticator) End(ctx context.Context, token string) error {
	claims, err := a.JWT.ParseAccessToken(token)
	if err != nil {
		return nil
	}
	return RedisDel(ctx, a.Redis, sessionKey(claims.UserID))
}

func (a *SessionAuthenticator) session(ctx context.Context, token string) (sessionRecord, error) {
	claims, err := a.JWT.ParseAccessToken(token)
	if err != nil {
		return sessionRecord{}, err
	}
	var rec sessionRecord
	ok, err := RedisGetJSON(ctx, a.Redis, sessionKey(claims.UserID), &rec)
	if err != nil {
		return sessionRecord{}, err
	}
	if !ok || rec.SID != claims.SessionID {
		return sessionRecord{}, ErrNoSession
	}
	return rec, nil
}

var errSessionToken = errors.New("session token used as api token")

// TokenAuthenticator accepts stateless API tokens, which carry no session id.
// Session tokens are refused so that logout cannot be bypassed.
type TokenAuthenticator struct {
	JWT *JWTManager
}

// Issue returns a stateless token for userID.
func (a TokenAuthenticator) Issue(userID string) (string, time.Time, error) {
	return a.JWT.GenerateAccessToken(userID, "")
}

func (a TokenAuthenticator) Verify(_ context.Context, token string) (string, error) {
	claims, err := a.JWT.ParseAccessToken(token)
	if err != nil {
		return "", err
	}
	if claims.SessionID != "" {
		return "", errSessionToken
	}
	return claims.UserID, nil
}
