package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// Checker resolves request tokens into live sessions.
type Checker struct {
	ttl         time.Duration
	redisClient *redis.Client
	NowFunc     func() time.Time
}

func NewChecker(ttl time.Duration, redisClient *redis.Client) *Checker {
	return &Checker{
		ttl:         ttl,
		redisClient: redisClient,
		NowFunc:     time.Now,
	}
}

func (c *Checker) Session(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	value, err := c.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	session, err := decodeSession(token, value)
	if err != nil {
		return nil, err
	}
	if c.NowFunc().Sub(session.CreatedAt) > c.ttl {
		return nil, ErrSessionExpired
	}

	return session, nil
}
