package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/xtrack/server/internal/telemetry/tracing"
	"github.com/xtrack/server/pkg"
)

const minPasswordLength = 6

var (
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrInvalidSignUp    = errors.New("invalid sign up request")
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth

type usersRepo interface {
	Add(ctx context.Context, user User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

func (r SignUpRequest) validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("%w: bad email", ErrInvalidSignUp)
	}
	if len(r.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must have at least %d characters", ErrInvalidSignUp, minPasswordLength)
	}
	if strings.TrimSpace(r.DisplayName) == "" {
		return fmt.Errorf("%w: display name empty", ErrInvalidSignUp)
	}
	return nil
}

type Service struct {
	users       usersRepo
	redisClient *redis.Client
	ttl         time.Duration
	notifier    *Notifier

	// injectable for tests
	RandStringFunc func(s int) (string, error)
	HashFunc       func(password string) (string, error)
	NowFunc        func() time.Time
}

func NewService(
	users usersRepo,
	ttl time.Duration,
	redisClient *redis.Client,
	notifier *Notifier,
) *Service {
	if notifier == nil {
		notifier = NewNotifier()
	}
	return &Service{
		users:          users,
		redisClient:    redisClient,
		ttl:            ttl,
		notifier:       notifier,
		RandStringFunc: pkg.GenerateRandomString,
		HashFunc:       pkg.HashPassword,
		NowFunc:        time.Now,
	}
}

func (s *Service) Notifier() *Notifier {
	return s.notifier
}

func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.signUp")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := req.validate(); err != nil {
		return nil, err
	}

	hash, err := s.HashFunc(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Add(ctx, User{
		Email:        req.Email,
		DisplayName:  strings.TrimSpace(req.DisplayName),
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("user.id", user.ID))

	return s.createSession(ctx, user)
}

func (s *Service) SignIn(ctx context.Context, email, password string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.signIn")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrWrongCredentials
		}
		return nil, err
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrWrongCredentials
	}

	return s.createSession(ctx, user)
}

func (s *Service) createSession(ctx context.Context, user *User) (*Session, error) {
	token, err := s.RandStringFunc(tokenLength)
	if err != nil {
		return nil, err
	}

	session := &Session{
		Token:       token,
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   time.Unix(s.NowFunc().Unix(), 0),
	}
	value, err := encodeSession(session)
	if err != nil {
		return nil, err
	}

	if err := s.redisClient.Set(ctx, sessionKeyPrefix+token, value, 0).Err(); err != nil {
		return nil, err
	}
	if err := s.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return nil, err
	}

	s.notifier.Publish(SessionEvent{Type: EventSignedIn, UserID: user.ID, At: session.CreatedAt})
	return session, nil
}

func (s *Service) SignOut(ctx context.Context, token string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.signOut")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sessionKey := sessionKeyPrefix + token
	value, err := s.redisClient.Get(ctx, sessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrSessionNotFound
		}
		return err
	}

	session, err := decodeSession(token, value)
	if err != nil {
		return err
	}

	if err := s.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		return err
	}
	if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return err
	}

	s.notifier.Publish(SessionEvent{Type: EventSignedOut, UserID: session.UserID, At: s.NowFunc()})
	return nil
}

// ScanAndClean removes every session older than the service ttl.
func (s *Service) ScanAndClean(ctx context.Context) {
	tokens, err := s.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}
	if len(tokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start", len(tokens))
	now := s.NowFunc()
	var expired []*Session
	for _, token := range tokens {
		value, err := s.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// dangling token, session value already gone
				expired = append(expired, &Session{Token: token})
				continue
			}
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		session, err := decodeSession(token, value)
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}
		if now.Sub(session.CreatedAt) > s.ttl {
			expired = append(expired, session)
		}
	}

	for _, session := range expired {
		if err := s.redisClient.Del(ctx, sessionKeyPrefix+session.Token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", session.Token, err)
			continue
		}
		if err := s.redisClient.SRem(ctx, tokensSetKey, session.Token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", session.Token, err)
			continue
		}
		if session.UserID != "" {
			s.notifier.Publish(SessionEvent{Type: EventExpired, UserID: session.UserID, At: now})
		}
	}
}
