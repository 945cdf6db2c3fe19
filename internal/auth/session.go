package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "xtrack-session||"
	tokensSetKey     = "xtrack-sessions"
	tokenLength      = 40
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Session is an authenticated user session, identified by its token.
type Session struct {
	Token       string    `json:"token"`
	UserID      string    `json:"userId"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// storedSession is the redis value of a session key.
type storedSession struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   int64  `json:"createdAt"`
}

func encodeSession(s *Session) (string, error) {
	data, err := json.Marshal(storedSession{
		UserID:      s.UserID,
		Email:       s.Email,
		DisplayName: s.DisplayName,
		CreatedAt:   s.CreatedAt.Unix(),
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeSession(token, value string) (*Session, error) {
	var stored storedSession
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if stored.UserID == "" {
		return nil, ErrSessionNotFound
	}
	return &Session{
		Token:       token,
		UserID:      stored.UserID,
		Email:       stored.Email,
		DisplayName: stored.DisplayName,
		CreatedAt:   time.Unix(stored.CreatedAt, 0),
	}, nil
}

type sessionCtxKey struct{}

// WithSession returns a context carrying the authenticated session.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(*Session)
	return s, ok && s != nil
}
