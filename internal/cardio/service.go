package cardio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xtrack/server/internal/telemetry/metrics"
	"github.com/xtrack/server/internal/telemetry/tracing"
	"github.com/xtrack/server/pkg"
)

var ErrInvalidActivity = errors.New("invalid cardio activity")

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=cardio_test

type activitiesRepo interface {
	Add(ctx context.Context, a Activity) (*Activity, error)
	Update(ctx context.Context, a *Activity) error
	Delete(ctx context.Context, userID string, id int) error
	Get(ctx context.Context, userID string, id int) (*Activity, error)
	List(ctx context.Context, userID string, from *pkg.Date) ([]Activity, error)
	LongestDistance(ctx context.Context, userID string, activityType ActivityType, excludeID int) (float64, error)
}

type statsInvalidator interface {
	Invalidate(userID string)
}

type Service struct {
	repo           activitiesRepo
	invalidator    statsInvalidator
	metricsManager *metrics.Manager
}

func NewService(repo activitiesRepo, invalidator statsInvalidator, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		invalidator:    invalidator,
		metricsManager: metricsManager,
	}
}

func validate(a *Activity) error {
	a.Name = strings.TrimSpace(a.Name)
	switch {
	case !a.ActivityType.Valid():
		return fmt.Errorf("%w: unknown activity type %q", ErrInvalidActivity, a.ActivityType)
	case a.DurationMinutes <= 0:
		return fmt.Errorf("%w: duration must be positive", ErrInvalidActivity)
	case a.DistanceKm != nil && *a.DistanceKm < 0:
		return fmt.Errorf("%w: negative distance", ErrInvalidActivity)
	case a.Date.IsZero():
		return fmt.Errorf("%w: date missing", ErrInvalidActivity)
	}
	return nil
}

// derive flags the activity as a PR when it is the longest of its type.
// Activities without a distance never are.
func (s *Service) derive(ctx context.Context, a *Activity) error {
	a.IsPr = false
	if a.DistanceKm == nil || *a.DistanceKm <= 0 {
		return nil
	}

	longest, err := s.repo.LongestDistance(ctx, a.UserID, a.ActivityType, a.ID)
	if err != nil {
		return fmt.Errorf("longest distance: %w", err)
	}
	a.IsPr = *a.DistanceKm > longest
	return nil
}

func (s *Service) written(userID, op string) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(userID)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterRecordWrites.WithLabelValues("cardio", op).Inc()
	}
}

func (s *Service) Add(ctx context.Context, a Activity) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.cardio.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	a.ID = 0
	if err := validate(&a); err != nil {
		return nil, err
	}
	if err := s.derive(ctx, &a); err != nil {
		return nil, err
	}

	added, err := s.repo.Add(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("add cardio activity: %w", err)
	}
	span.SetAttributes(attribute.Bool("is_pr", added.IsPr))

	s.written(a.UserID, "add")
	return added, nil
}

func (s *Service) Update(ctx context.Context, a Activity) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.cardio.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", a.ID))

	existing, err := s.repo.Get(ctx, a.UserID, a.ID)
	if err != nil {
		return nil, err
	}
	if err := validate(&a); err != nil {
		return nil, err
	}
	if err := s.derive(ctx, &a); err != nil {
		return nil, err
	}
	a.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, &a); err != nil {
		return nil, err
	}

	s.written(a.UserID, "update")
	return &a, nil
}

func (s *Service) Delete(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.cardio.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.written(userID, "delete")
	return nil
}

func (s *Service) Get(ctx context.Context, userID string, id int) (*Activity, error) {
	return s.repo.Get(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string, from *pkg.Date) ([]Activity, error) {
	return s.repo.List(ctx, userID, from)
}
