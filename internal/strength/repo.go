package strength

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

var ErrRecordNotFound = errors.New("strength record not found")

const recordColumns = `id, user_id, exercise, weight, reps, sets, estimated_1rm, date, is_pr, notes, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, record Record) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.strength.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO strength_record
				(user_id, exercise, weight, reps, sets, estimated_1rm, date, is_pr, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at;`,
		record.UserID, record.Exercise, record.Weight, record.Reps, record.Sets,
		record.Estimated1RM, record.Date.Time, record.IsPr, record.Notes,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}

	span.SetAttributes(attribute.Int("record.id", record.ID))
	return &record, nil
}

func (r *Repo) Update(ctx context.Context, record *Record) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.strength.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", record.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE strength_record
			SET exercise = $1, weight = $2, reps = $3, sets = $4, estimated_1rm = $5, date = $6, is_pr = $7, notes = $8
			WHERE id = $9 AND user_id = $10;`,
		record.Exercise, record.Weight, record.Reps, record.Sets, record.Estimated1RM,
		record.Date.Time, record.IsPr, record.Notes, record.ID, record.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.strength.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM strength_record WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, userID string, id int) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.strength.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+recordColumns+` FROM strength_record WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := r.rows2records(rows)
	if err != nil {
		return nil, err
	}
	if len(records) != 1 {
		return nil, ErrRecordNotFound
	}
	return &records[0], nil
}

// List returns the user's records dated on or after from (all when nil),
// newest first.
func (r *Repo) List(ctx context.Context, userID string, from *pkg.Date) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.strength.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if from != nil {
		span.SetAttributes(attribute.String("from", from.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+recordColumns+` FROM strength_record
			WHERE user_id = $1
			AND ($2::date IS NULL OR date >= $2)
			ORDER BY date DESC, id DESC;`,
		userID, pkg.TimeOrNil(from),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	records, err := r.rows2records(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2records: %w", err)
	}
	return records, nil
}

// BestEstimated1RM is the highest estimated 1RM the user logged for the
// exercise, ignoring the record excludeID. Zero when there is none.
func (r *Repo) BestEstimated1RM(ctx context.Context, userID, exercise string, excludeID int) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.strength.best")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exercise))

	var best float64
	err = r.db.QueryRow(
		ctx,
		`SELECT COALESCE(MAX(COALESCE(estimated_1rm, weight)), 0) FROM strength_record
			WHERE user_id = $1 AND exercise = $2 AND id <> $3;`,
		userID, exercise, excludeID,
	).Scan(&best)
	if err != nil {
		return 0, err
	}
	return best, nil
}

func (r *Repo) rows2records(rows pgx.Rows) ([]Record, error) {
	records := make([]Record, 0)
	for rows.Next() {
		var rec Record
		var date time.Time
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Exercise, &rec.Weight, &rec.Reps, &rec.Sets,
			&rec.Estimated1RM, &date, &rec.IsPr, &rec.Notes, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.Date = pkg.DateOf(date)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
