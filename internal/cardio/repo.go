package cardio

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

var ErrActivityNotFound = errors.New("cardio activity not found")

const activityColumns = `id, user_id, activity_type, name, date, duration_minutes, distance_km, elevation_gain_m,
	avg_heart_rate, max_heart_rate, avg_power_watts, stroke_rate, calories_burned, total_calories,
	is_pr, notes, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, a Activity) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cardio.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO cardio_activity
				(user_id, activity_type, name, date, duration_minutes, distance_km, elevation_gain_m,
				 avg_heart_rate, max_heart_rate, avg_power_watts, stroke_rate, calories_burned, total_calories,
				 is_pr, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING id, created_at;`,
		a.UserID, string(a.ActivityType), a.Name, a.Date.Time, a.DurationMinutes, a.DistanceKm, a.ElevationGainM,
		a.AvgHeartRate, a.MaxHeartRate, a.AvgPowerWatts, a.StrokeRate, a.CaloriesBurned, a.TotalCalories,
		a.IsPr, a.Notes,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}

	span.SetAttributes(attribute.Int("activity.id", a.ID))
	return &a, nil
}

func (r *Repo) Update(ctx context.Context, a *Activity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cardio.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", a.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE cardio_activity
			SET activity_type = $1, name = $2, date = $3, duration_minutes = $4, distance_km = $5,
				elevation_gain_m = $6, avg_heart_rate = $7, max_heart_rate = $8, avg_power_watts = $9,
				stroke_rate = $10, calories_burned = $11, total_calories = $12, is_pr = $13, notes = $14
			WHERE id = $15 AND user_id = $16;`,
		string(a.ActivityType), a.Name, a.Date.Time, a.DurationMinutes, a.DistanceKm,
		a.ElevationGainM, a.AvgHeartRate, a.MaxHeartRate, a.AvgPowerWatts,
		a.StrokeRate, a.CaloriesBurned, a.TotalCalories, a.IsPr, a.Notes,
		a.ID, a.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrActivityNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cardio.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM cardio_activity WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrActivityNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, userID string, id int) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cardio.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+activityColumns+` FROM cardio_activity WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities, err := r.rows2activities(rows)
	if err != nil {
		return nil, err
	}
	if len(activities) != 1 {
		return nil, ErrActivityNotFound
	}
	return &activities[0], nil
}

// List returns the user's activities dated on or after from (all when nil),
// newest first.
func (r *Repo) List(ctx context.Context, userID string, from *pkg.Date) (_ []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cardio.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if from != nil {
		span.SetAttributes(attribute.String("from", from.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+activityColumns+` FROM cardio_activity
			WHERE user_id = $1
			AND ($2::date IS NULL OR date >= $2)
			ORDER BY date DESC, id DESC;`,
		userID, pkg.TimeOrNil(from),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	activities, err := r.rows2activities(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2activities: %w", err)
	}
	return activities, nil
}

// LongestDistance is the longest distance the user covered in one activity of
// the given type, ignoring excludeID. Zero when there is none.
func (r *Repo) LongestDistance(ctx context.Context, userID string, activityType ActivityType, excludeID int) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cardio.longest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("activity_type", string(activityType)))

	var longest float64
	err = r.db.QueryRow(
		ctx,
		`SELECT COALESCE(MAX(distance_km), 0) FROM cardio_activity
			WHERE user_id = $1 AND activity_type = $2 AND id <> $3;`,
		userID, string(activityType), excludeID,
	).Scan(&longest)
	if err != nil {
		return 0, err
	}
	return longest, nil
}

func (r *Repo) rows2activities(rows pgx.Rows) ([]Activity, error) {
	activities := make([]Activity, 0)
	for rows.Next() {
		var (
			a            Activity
			activityType string
			date         time.Time
		)
		if err := rows.Scan(
			&a.ID, &a.UserID, &activityType, &a.Name, &date, &a.DurationMinutes, &a.DistanceKm, &a.ElevationGainM,
			&a.AvgHeartRate, &a.MaxHeartRate, &a.AvgPowerWatts, &a.StrokeRate, &a.CaloriesBurned, &a.TotalCalories,
			&a.IsPr, &a.Notes, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		a.ActivityType = ActivityType(activityType)
		a.Date = pkg.DateOf(date)
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return activities, nil
}
