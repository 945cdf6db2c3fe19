package stats

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/xtrack/server/internal/benchmarks"
	"github.com/xtrack/server/internal/body"
	"github.com/xtrack/server/internal/cardio"
	"github.com/xtrack/server/internal/strength"
	"github.com/xtrack/server/internal/telemetry/metrics"
	"github.com/xtrack/server/internal/telemetry/tracing"
	"github.com/xtrack/server/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=stats_test

type benchmarkResultsFetcher interface {
	ListResults(ctx context.Context, userID string, from *pkg.Date) ([]benchmarks.Result, error)
}

type strengthFetcher interface {
	List(ctx context.Context, userID string, from *pkg.Date) ([]strength.Record, error)
}

type bodyFetcher interface {
	ListMetrics(ctx context.Context, userID string, from *pkg.Date) ([]body.Metric, error)
	ListMeasurements(ctx context.Context, userID string, from *pkg.Date) ([]body.Measurement, error)
}

type cardioFetcher interface {
	List(ctx context.Context, userID string, from *pkg.Date) ([]cardio.Activity, error)
}

type ServiceParams struct {
	Benchmarks     benchmarkResultsFetcher
	Strength       strengthFetcher
	Body           bodyFetcher
	Cardio         cardioFetcher
	Cache          *ReportCache
	MetricsManager *metrics.Manager
}

// Service fetches a user's records and derives the statistics views.
type Service struct {
	benchmarks     benchmarkResultsFetcher
	strength       strengthFetcher
	body           bodyFetcher
	cardio         cardioFetcher
	cache          *ReportCache
	metricsManager *metrics.Manager

	// Now can be replaced in tests
	Now func() time.Time
}

func NewService(params ServiceParams) *Service {
	return &Service{
		benchmarks:     params.Benchmarks,
		strength:       params.Strength,
		body:           params.Body,
		cardio:         params.Cardio,
		cache:          params.Cache,
		metricsManager: params.MetricsManager,
		Now:            time.Now,
	}
}

// Invalidate is called after every write of the user's records.
func (s *Service) Invalidate(userID string) {
	if s.cache != nil {
		s.cache.Bump(userID)
	}
}

func (s *Service) cacheResult(result string) {
	if s.metricsManager != nil {
		s.metricsManager.CounterStatsCache.WithLabelValues(result).Inc()
	}
}

func (s *Service) observeFetch(source string, begin time.Time) {
	if s.metricsManager != nil {
		s.metricsManager.HistogramStatsFetchRecord.WithLabelValues(source).Observe(time.Since(begin).Seconds())
	}
}

// Report returns the statistics for the range. The four record sources are
// fetched concurrently; any failure cancels the others and no derivation runs.
func (s *Service) Report(ctx context.Context, userID string, rng TimeRange) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.report")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("range", string(rng)))

	var gen uint64
	if s.cache != nil {
		gen = s.cache.Generation(userID)
		if report, ok := s.cache.Get(userID, rng, gen); ok {
			s.cacheResult("hit")
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return report, nil
		}
		s.cacheResult("miss")
	}

	now := s.Now()
	from := rng.From(now)

	var in Input
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer s.observeFetch("benchmarks", time.Now())
		results, err := s.benchmarks.ListResults(gCtx, userID, &from)
		if err != nil {
			return fmt.Errorf("fetch benchmark results: %w", err)
		}
		in.Results = results
		return nil
	})
	g.Go(func() error {
		defer s.observeFetch("strength", time.Now())
		records, err := s.strength.List(gCtx, userID, &from)
		if err != nil {
			return fmt.Errorf("fetch strength records: %w", err)
		}
		in.Records = records
		return nil
	})
	g.Go(func() error {
		defer s.observeFetch("body_metrics", time.Now())
		bodyMetrics, err := s.body.ListMetrics(gCtx, userID, &from)
		if err != nil {
			return fmt.Errorf("fetch body metrics: %w", err)
		}
		in.Metrics = bodyMetrics
		return nil
	})
	g.Go(func() error {
		defer s.observeFetch("body_measurements", time.Now())
		measurements, err := s.body.ListMeasurements(gCtx, userID, &from)
		if err != nil {
			return fmt.Errorf("fetch body measurements: %w", err)
		}
		in.Measurements = measurements
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	begin := time.Now()
	report := BuildReport(in, rng, now)
	if s.metricsManager != nil {
		s.metricsManager.HistogramStatsDerivation.Observe(time.Since(begin).Seconds())
	}

	if s.cache != nil {
		s.cacheResult(string(s.cache.Put(userID, rng, gen, report)))
	}

	return report, nil
}

// Dashboard uses the complete history of the user.
func (s *Service) Dashboard(ctx context.Context, userID string) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		results []benchmarks.Result
		records []strength.Record
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		results, err = s.benchmarks.ListResults(gCtx, userID, nil)
		if err != nil {
			return fmt.Errorf("fetch benchmark results: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.strength.List(gCtx, userID, nil)
		if err != nil {
			return fmt.Errorf("fetch strength records: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dashboard := BuildDashboard(results, records)
	return &dashboard, nil
}

func (s *Service) Cardio(ctx context.Context, userID string) (_ *CardioSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.cardio")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	activities, err := s.cardio.List(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch cardio activities: %w", err)
	}

	summary := SummarizeCardio(activities, s.Now())
	return &summary, nil
}
