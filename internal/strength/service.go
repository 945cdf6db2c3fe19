package strength

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

var ErrInvalidRecord = errors.New("invalid strength record")

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=strength_test

type recordsRepo interface {
	Add(ctx context.Context, record Record) (*Record, error)
	Update(ctx context.Context, record *Record) error
	Delete(ctx context.Context, userID string, id int) error
	Get(ctx context.Context, userID string, id int) (*Record, error)
	List(ctx context.Context, userID string, from *pkg.Date) ([]Record, error)
	BestEstimated1RM(ctx context.Context, userID, exercise string, excludeID int) (float64, error)
}

// statsInvalidator drops statistics derived from a user's older data.
type statsInvalidator interface {
	Invalidate(userID string)
}

// Service owns the write path of strength records: it derives the
// estimated 1RM and the PR flag before anything is stored.
type Service struct {
	repo           recordsRepo
	invalidator    statsInvalidator
	metricsManager *metrics.Manager
}

func NewService(repo recordsRepo, invalidator statsInvalidator, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		invalidator:    invalidator,
		metricsManager: metricsManager,
	}
}

func validate(r *Record) error {
	r.Exercise = strings.TrimSpace(r.Exercise)
	switch {
	case r.Exercise == "":
		return fmt.Errorf("%w: exercise empty", ErrInvalidRecord)
	case r.Weight <= 0:
		return fmt.Errorf("%w: weight must be positive", ErrInvalidRecord)
	case r.Reps < 1:
		return fmt.Errorf("%w: reps must be at least 1", ErrInvalidRecord)
	case r.Sets != nil && *r.Sets < 1:
		return fmt.Errorf("%w: sets must be at least 1", ErrInvalidRecord)
	case r.Date.IsZero():
		return fmt.Errorf("%w: date missing", ErrInvalidRecord)
	}
	return nil
}

func (s *Service) derive(ctx context.Context, r *Record) error {
	est := Estimate1RM(r.Weight, r.Reps)
	r.Estimated1RM = &est

	best, err := s.repo.BestEstimated1RM(ctx, r.UserID, r.Exercise, r.ID)
	if err != nil {
		return fmt.Errorf("best estimated 1rm: %w", err)
	}
	r.IsPr = est > best
	return nil
}

func (s *Service) written(userID, op string) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(userID)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterRecordWrites.WithLabelValues("strength", op).Inc()
	}
}

func (s *Service) Add(ctx context.Context, record Record) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.strength.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	record.ID = 0
	if err := validate(&record); err != nil {
		return nil, err
	}
	if err := s.derive(ctx, &record); err != nil {
		return nil, err
	}

	added, err := s.repo.Add(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("add strength record: %w", err)
	}
	span.SetAttributes(attribute.Bool("is_pr", added.IsPr))

	s.written(record.UserID, "add")
	return added, nil
}

func (s *Service) Update(ctx context.Context, record Record) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.strength.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", record.ID))

	existing, err := s.repo.Get(ctx, record.UserID, record.ID)
	if err != nil {
		return nil, err
	}
	if err := validate(&record); err != nil {
		return nil, err
	}
	if err := s.derive(ctx, &record); err != nil {
		return nil, err
	}
	record.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, &record); err != nil {
		return nil, err
	}

	s.written(record.UserID, "update")
	return &record, nil
}

func (s *Service) Delete(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.strength.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.written(userID, "delete")
	return nil
}

func (s *Service) Get(ctx context.Context, userID string, id int) (*Record, error) {
	return s.repo.Get(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string, from *pkg.Date) ([]Record, error) {
	return s.repo.List(ctx, userID, from)
}
