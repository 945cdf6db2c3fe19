package body

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/xtrack/server/internal/telemetry/metrics"
	"github.com/xtrack/server/internal/telemetry/tracing"
	"github.com/xtrack/server/pkg"
)

var ErrInvalidEntry = errors.New("invalid body entry")

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=body_test

type bodyRepo interface {
	UpsertMetric(ctx context.Context, metric Metric) error
	DeleteMetric(ctx context.Context, userID string, date pkg.Date) error
	ListMetrics(ctx context.Context, userID string, from *pkg.Date) ([]Metric, error)
	UpsertMeasurement(ctx context.Context, measurement Measurement) error
	DeleteMeasurement(ctx context.Context, userID string, date pkg.Date) error
	ListMeasurements(ctx context.Context, userID string, from *pkg.Date) ([]Measurement, error)
}

type statsInvalidator interface {
	Invalidate(userID string)
}

type Service struct {
	repo           bodyRepo
	invalidator    statsInvalidator
	metricsManager *metrics.Manager
}

func NewService(repo bodyRepo, invalidator statsInvalidator, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		invalidator:    invalidator,
		metricsManager: metricsManager,
	}
}

func positive(name string, v *float64) error {
	if v != nil && *v <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidEntry, name)
	}
	return nil
}

func validateMetric(m Metric) error {
	if m.Date.IsZero() {
		return fmt.Errorf("%w: date missing", ErrInvalidEntry)
	}
	if m.Empty() {
		return fmt.Errorf("%w: no readings", ErrInvalidEntry)
	}
	if m.BodyFatPercent != nil && (*m.BodyFatPercent < 0 || *m.BodyFatPercent > 100) {
		return fmt.Errorf("%w: body fat out of range", ErrInvalidEntry)
	}
	if m.RestingHR != nil && *m.RestingHR <= 0 {
		return fmt.Errorf("%w: resting hr must be positive", ErrInvalidEntry)
	}
	return multierr.Combine(
		positive("weight", m.Weight),
		positive("muscle mass", m.MuscleMassKg),
		positive("vo2 max", m.VO2Max),
	)
}

func validateMeasurement(m Measurement) error {
	if m.Date.IsZero() {
		return fmt.Errorf("%w: date missing", ErrInvalidEntry)
	}
	if m.Empty() {
		return fmt.Errorf("%w: no measurements", ErrInvalidEntry)
	}
	return multierr.Combine(
		positive("chest", m.ChestCm),
		positive("waist", m.WaistCm),
		positive("hips", m.HipsCm),
		positive("arm", m.ArmCm),
		positive("thigh", m.ThighCm),
		positive("neck", m.NeckCm),
	)
}

func (s *Service) written(userID, kind, op string) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(userID)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterRecordWrites.WithLabelValues(kind, op).Inc()
	}
}

func (s *Service) SaveMetric(ctx context.Context, m Metric) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.body.metric.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateMetric(m); err != nil {
		return err
	}
	if err := s.repo.UpsertMetric(ctx, m); err != nil {
		return fmt.Errorf("save body metric: %w", err)
	}

	s.written(m.UserID, "body_metric", "upsert")
	return nil
}

func (s *Service) DeleteMetric(ctx context.Context, userID string, date pkg.Date) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.body.metric.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.DeleteMetric(ctx, userID, date); err != nil {
		return err
	}

	s.written(userID, "body_metric", "delete")
	return nil
}

func (s *Service) ListMetrics(ctx context.Context, userID string, from *pkg.Date) ([]Metric, error) {
	return s.repo.ListMetrics(ctx, userID, from)
}

func (s *Service) SaveMeasurement(ctx context.Context, m Measurement) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.body.measurement.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateMeasurement(m); err != nil {
		return err
	}
	if err := s.repo.UpsertMeasurement(ctx, m); err != nil {
		return fmt.Errorf("save body measurement: %w", err)
	}

	s.written(m.UserID, "body_measurement", "upsert")
	return nil
}

func (s *Service) DeleteMeasurement(ctx context.Context, userID string, date pkg.Date) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.body.measurement.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.DeleteMeasurement(ctx, userID, date); err != nil {
		return err
	}

	s.written(userID, "body_measurement", "delete")
	return nil
}

func (s *Service) ListMeasurements(ctx context.Context, userID string, from *pkg.Date) ([]Measurement, error) {
	return s.repo.ListMeasurements(ctx, userID, from)
}
