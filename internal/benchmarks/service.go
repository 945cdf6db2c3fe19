package benchmarks

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

var ErrInvalidScale = errors.New("invalid benchmark scale")

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=benchmarks_test

type resultsRepo interface {
	Catalog(ctx context.Context) ([]Benchmark, error)
	GetBenchmark(ctx context.Context, id int) (*Benchmark, error)
	AddResult(ctx context.Context, result Result) (*Result, error)
	UpdateResult(ctx context.Context, result *Result) error
	DeleteResult(ctx context.Context, userID string, id int) error
	GetResult(ctx context.Context, userID string, id int) (*Result, error)
	ListResults(ctx context.Context, userID string, from *pkg.Date) ([]Result, error)
	BestResult(ctx context.Context, userID string, benchmarkID int, upTo pkg.Date, excludeID int) (*int, *float64, error)
}

type statsInvalidator interface {
	Invalidate(userID string)
}

// Service owns the write path of benchmark results: the raw result is parsed
// against the benchmark type and compared with the user's best attempt.
type Service struct {
	repo           resultsRepo
	invalidator    statsInvalidator
	metricsManager *metrics.Manager
}

func NewService(repo resultsRepo, invalidator statsInvalidator, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		invalidator:    invalidator,
		metricsManager: metricsManager,
	}
}

func (s *Service) Catalog(ctx context.Context) ([]Benchmark, error) {
	return s.repo.Catalog(ctx)
}

func (s *Service) prepare(ctx context.Context, r *Result) error {
	if r.Scale == "" {
		r.Scale = ScaleRX
	}
	if !r.Scale.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidScale, r.Scale)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("%w: date missing", ErrInvalidResult)
	}
	r.Result = strings.TrimSpace(r.Result)

	benchmark, err := s.repo.GetBenchmark(ctx, r.BenchmarkID)
	if err != nil {
		return err
	}
	r.Benchmark = benchmark

	r.ResultSeconds, r.ResultNumeric, err = ParseResult(benchmark.Type, r.Result)
	if err != nil {
		return err
	}

	bestSeconds, bestNumeric, err := s.repo.BestResult(ctx, r.UserID, r.BenchmarkID, r.Date, r.ID)
	if err != nil {
		return fmt.Errorf("best result: %w", err)
	}
	r.IsPr = Beats(benchmark.Type, r.ResultSeconds, r.ResultNumeric, bestSeconds, bestNumeric)
	return nil
}

func (s *Service) written(userID, op string) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(userID)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterRecordWrites.WithLabelValues("benchmarks", op).Inc()
	}
}

func (s *Service) AddResult(ctx context.Context, result Result) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.benchmarks.result.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("benchmark.id", result.BenchmarkID))

	result.ID = 0
	if err := s.prepare(ctx, &result); err != nil {
		return nil, err
	}

	added, err := s.repo.AddResult(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("add benchmark result: %w", err)
	}
	span.SetAttributes(attribute.Bool("is_pr", added.IsPr))

	s.written(result.UserID, "add")
	return added, nil
}

func (s *Service) UpdateResult(ctx context.Context, result Result) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.benchmarks.result.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", result.ID))

	existing, err := s.repo.GetResult(ctx, result.UserID, result.ID)
	if err != nil {
		return nil, err
	}
	if err := s.prepare(ctx, &result); err != nil {
		return nil, err
	}
	result.CreatedAt = existing.CreatedAt

	if err := s.repo.UpdateResult(ctx, &result); err != nil {
		return nil, err
	}

	s.written(result.UserID, "update")
	return &result, nil
}

func (s *Service) DeleteResult(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.benchmarks.result.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.DeleteResult(ctx, userID, id); err != nil {
		return err
	}

	s.written(userID, "delete")
	return nil
}

func (s *Service) GetResult(ctx context.Context, userID string, id int) (*Result, error) {
	return s.repo.GetResult(ctx, userID, id)
}

func (s *Service) ListResults(ctx context.Context, userID string, from *pkg.Date) ([]Result, error) {
	return s.repo.ListResults(ctx, userID, from)
}
