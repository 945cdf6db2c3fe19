package body

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/xtrack/server/internal/telemetry/tracing"
	"github.com/xtrack/server/pkg"
)

var ErrMetricNotFound = errors.New("body entry not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// UpsertMetric stores the readings of one day, replacing what was stored
// for the same user and date.
func (r *Repo) UpsertMetric(ctx context.Context, m Metric) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.metric.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", m.Date.String()))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO body_metric (user_id, date, weight, body_fat_percent, muscle_mass_kg, resting_hr, vo2_max, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (user_id, date) DO UPDATE
			SET weight = EXCLUDED.weight, body_fat_percent = EXCLUDED.body_fat_percent,
				muscle_mass_kg = EXCLUDED.muscle_mass_kg, resting_hr = EXCLUDED.resting_hr,
				vo2_max = EXCLUDED.vo2_max, notes = EXCLUDED.notes;`,
		m.UserID, m.Date.Time, m.Weight, m.BodyFatPercent, m.MuscleMassKg, m.RestingHR, m.VO2Max, m.Notes,
	)
	if err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}

func (r *Repo) DeleteMetric(ctx context.Context, userID string, date pkg.Date) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.metric.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM body_metric WHERE user_id = $1 AND date = $2`, userID, date.Time)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMetricNotFound
	}
	return nil
}

// ListMetrics returns the user's readings dated on or after from (all when
// nil), newest first.
func (r *Repo) ListMetrics(ctx context.Context, userID string, from *pkg.Date) (_ []Metric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.metric.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, date, weight, body_fat_percent, muscle_mass_kg, resting_hr, vo2_max, notes
			FROM body_metric
			WHERE user_id = $1
			AND ($2::date IS NULL OR date >= $2)
			ORDER BY date DESC;`,
		userID, pkg.TimeOrNil(from),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	metrics := make([]Metric, 0)
	for rows.Next() {
		var (
			m    Metric
			date time.Time
		)
		if err := rows.Scan(
			&m.UserID, &date, &m.Weight, &m.BodyFatPercent, &m.MuscleMassKg, &m.RestingHR, &m.VO2Max, &m.Notes,
		); err != nil {
			return nil, err
		}
		m.Date = pkg.DateOf(date)
		metrics = append(metrics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return metrics, nil
}

func (r *Repo) UpsertMeasurement(ctx context.Context, m Measurement) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.measurement.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", m.Date.String()))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO body_measurement (user_id, date, chest_cm, waist_cm, hips_cm, arm_cm, thigh_cm, neck_cm)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (user_id, date) DO UPDATE
			SET chest_cm = EXCLUDED.chest_cm, waist_cm = EXCLUDED.waist_cm, hips_cm = EXCLUDED.hips_cm,
				arm_cm = EXCLUDED.arm_cm, thigh_cm = EXCLUDED.thigh_cm, neck_cm = EXCLUDED.neck_cm;`,
		m.UserID, m.Date.Time, m.ChestCm, m.WaistCm, m.HipsCm, m.ArmCm, m.ThighCm, m.NeckCm,
	)
	if err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}

func (r *Repo) DeleteMeasurement(ctx context.Context, userID string, date pkg.Date) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.measurement.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM body_measurement WHERE user_id = $1 AND date = $2`, userID, date.Time)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMetricNotFound
	}
	return nil
}

func (r *Repo) ListMeasurements(ctx context.Context, userID string, from *pkg.Date) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.measurement.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, date, chest_cm, waist_cm, hips_cm, arm_cm, thigh_cm, neck_cm
			FROM body_measurement
			WHERE user_id = $1
			AND ($2::date IS NULL OR date >= $2)
			ORDER BY date DESC;`,
		userID, pkg.TimeOrNil(from),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	measurements := make([]Measurement, 0)
	for rows.Next() {
		var (
			m    Measurement
			date time.Time
		)
		if err := rows.Scan(
			&m.UserID, &date, &m.ChestCm, &m.WaistCm, &m.HipsCm, &m.ArmCm, &m.ThighCm, &m.NeckCm,
		); err != nil {
			return nil, err
		}
		m.Date = pkg.DateOf(date)
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return measurements, nil
}
