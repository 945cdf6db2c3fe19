package benchmarks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/xtrack/server/internal/telemetry/tracing"
	"github.com/xtrack/server/pkg"
)

var (
	ErrBenchmarkNotFound = errors.New("benchmark not found")
	ErrResultNotFound    = errors.New("benchmark result not found")
)

const resultSelect = `SELECT r.id, r.user_id, r.benchmark_id, r.result, r.result_seconds, r.result_numeric,
		r.scale, r.date, r.is_pr, r.notes, r.created_at,
		b.id, b.name, b.category, b.type, b.description
	FROM benchmark_result r
	JOIN benchmark b ON b.id = r.benchmark_id`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Catalog lists every benchmark definition, grouped by category.
func (r *Repo) Catalog(ctx context.Context) (_ []Benchmark, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.benchmarks.catalog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, name, category, type, description FROM benchmark ORDER BY category, name;`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	catalog := make([]Benchmark, 0)
	for rows.Next() {
		var (
			b   Benchmark
			typ string
		)
		if err := rows.Scan(&b.ID, &b.Name, &b.Category, &typ, &b.Description); err != nil {
			return nil, err
		}
		b.Type = Type(typ)
		catalog = append(catalog, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (r *Repo) GetBenchmark(ctx context.Context, id int) (_ *Benchmark, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.benchmarks.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var (
		b   Benchmark
		typ string
	)
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, category, type, description FROM benchmark WHERE id = $1;`,
		id,
	).Scan(&b.ID, &b.Name, &b.Category, &typ, &b.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBenchmarkNotFound
		}
		return nil, err
	}
	b.Type = Type(typ)
	return &b, nil
}

func (r *Repo) AddResult(ctx context.Context, result Result) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.benchmarks.result.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO benchmark_result
				(user_id, benchmark_id, result, result_seconds, result_numeric, scale, date, is_pr, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at;`,
		result.UserID, result.BenchmarkID, result.Result, result.ResultSeconds, result.ResultNumeric,
		string(result.Scale), result.Date.Time, result.IsPr, result.Notes,
	).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}

	span.SetAttributes(attribute.Int("result.id", result.ID))
	return &result, nil
}

func (r *Repo) UpdateResult(ctx context.Context, result *Result) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.benchmarks.result.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", result.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE benchmark_result
			SET benchmark_id = $1, result = $2, result_seconds = $3, result_numeric = $4,
				scale = $5, date = $6, is_pr = $7, notes = $8
			WHERE id = $9 AND user_id = $10;`,
		result.BenchmarkID, result.Result, result.ResultSeconds, result.ResultNumeric,
		string(result.Scale), result.Date.Time, result.IsPr, result.Notes, result.ID, result.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrResultNotFound
	}
	return nil
}

func (r *Repo) DeleteResult(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.benchmarks.result.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM benchmark_result WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrResultNotFound
	}
	return nil
}

func (r *Repo) GetResult(ctx context.Context, userID string, id int) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.benchmarks.result.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(ctx, resultSelect+` WHERE r.id = $1 AND r.user_id = $2;`, id, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results, err := r.rows2results(rows)
	if err != nil {
		return nil, err
	}
	if len(results) != 1 {
		return nil, ErrResultNotFound
	}
	return &results[0], nil
}

// ListResults returns the user's results dated on or after from (all when
// nil), newest first, each joined with its benchmark.
func (r *Repo) ListResults(ctx context.Context, userID string, from *pkg.Date) (_ []Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.benchmarks.result.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if from != nil {
		span.SetAttributes(attribute.String("from", from.String()))
	}

	rows, err := r.db.Query(
		ctx,
		resultSelect+`
			WHERE r.user_id = $1
			AND ($2::date IS NULL OR r.date >= $2)
			ORDER BY r.date DESC, r.id DESC;`,
		userID, pkg.TimeOrNil(from),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	results, err := r.rows2results(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2results: %w", err)
	}
	return results, nil
}

// BestResult returns the fastest time and the highest numeric score the user
// logged for the benchmark up to and including the given date, ignoring the
// result excludeID. Both are nil when there is nothing to compare against.
func (r *Repo) BestResult(ctx context.Context, userID string, benchmarkID int, upTo pkg.Date, excludeID int) (_ *int, _ *float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.benchmarks.result.best")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("benchmark.id", benchmarkID))

	var (
		bestSeconds *int
		bestNumeric *float64
	)
	err = r.db.QueryRow(
		ctx,
		`SELECT MIN(result_seconds), MAX(result_numeric) FROM benchmark_result
			WHERE user_id = $1 AND benchmark_id = $2 AND date <= $3 AND id <> $4;`,
		userID, benchmarkID, upTo.Time, excludeID,
	).Scan(&bestSeconds, &bestNumeric)
	if err != nil {
		return nil, nil, err
	}
	return bestSeconds, bestNumeric, nil
}

func (r *Repo) rows2results(rows pgx.Rows) ([]Result, error) {
	results := make([]Result, 0)
	for rows.Next() {
		var (
			res   Result
			b     Benchmark
			scale string
			typ   string
			date  time.Time
		)
		if err := rows.Scan(
			&res.ID, &res.UserID, &res.BenchmarkID, &res.Result, &res.ResultSeconds, &res.ResultNumeric,
			&scale, &date, &res.IsPr, &res.Notes, &res.CreatedAt,
			&b.ID, &b.Name, &b.Category, &typ, &b.Description,
		); err != nil {
			return nil, err
		}
		res.Scale = Scale(scale)
		b.Type = Type(typ)
		res.Date = pkg.DateOf(date)
		res.Benchmark = &b
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
