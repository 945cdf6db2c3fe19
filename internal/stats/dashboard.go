package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/xtrack/server/internal/benchmarks"
	"github.com/xtrack/server/internal/body"
	"github.com/xtrack/server/internal/cardio"
	"github.com/xtrack/server/internal/strength"
	"github.com/xtrack/server/pkg"
)

type ActivityItem struct {
	Kind      PRKind    `json:"kind"`
	Name      string    `json:"name"`
	Detail    string    `json:"detail"`
	Date      pkg.Date  `json:"date"`
	IsPr      bool      `json:"isPr"`
	CreatedAt time.Time `json:"createdAt"`
}

type LiftBest struct {
	Exercise     string  `json:"exercise"`
	Estimated1RM float64 `json:"estimated1RM"`
}

type Dashboard struct {
	TotalPRs       int            `json:"totalPRs"`
	StrengthPRs    int            `json:"strengthPRs"`
	RecentActivity []ActivityItem `json:"recentActivity"`
	MainLiftBests  []LiftBest     `json:"mainLiftBests"`
}

type CardioSummary struct {
	TotalActivities int     `json:"totalActivities"`
	TotalPRs        int     `json:"totalPRs"`
	ThisWeek        int     `json:"thisWeek"`
	TotalDistanceKm float64 `json:"totalDistanceKm"`
}

// BodySnapshot holds the latest known value of each body reading.
// A value stays nil when it was never recorded.
type BodySnapshot struct {
	Weight         *float64  `json:"weight,omitempty"`
	BodyFatPercent *float64  `json:"bodyFatPercent,omitempty"`
	RestingHR      *int      `json:"restingHr,omitempty"`
	VO2Max         *float64  `json:"vo2Max,omitempty"`
	WaistCm        *float64  `json:"waistCm,omitempty"`
	ChestCm        *float64  `json:"chestCm,omitempty"`
	LastUpdated    *pkg.Date `json:"lastUpdated,omitempty"`
}

// BuildDashboard summarizes all-time PRs, the latest created entries and the
// best estimated 1RM of every main lift (0 when never logged).
func BuildDashboard(results []benchmarks.Result, records []strength.Record) Dashboard {
	d := Dashboard{
		RecentActivity: make([]ActivityItem, 0, RecentActivityLimit),
		MainLiftBests:  make([]LiftBest, 0, len(MainLifts)),
	}

	activity := make([]ActivityItem, 0, len(results)+len(records))
	for _, r := range results {
		if r.IsPr {
			d.TotalPRs++
		}
		activity = append(activity, ActivityItem{
			Kind:      KindBenchmark,
			Name:      r.Name(),
			Detail:    r.Result,
			Date:      r.Date,
			IsPr:      r.IsPr,
			CreatedAt: r.CreatedAt,
		})
	}

	best := make(map[string]float64)
	for _, r := range records {
		if r.IsPr {
			d.TotalPRs++
			d.StrengthPRs++
		}
		if v := liftValue(r); v > best[r.Exercise] {
			best[r.Exercise] = v
		}
		activity = append(activity, ActivityItem{
			Kind:      KindStrength,
			Name:      r.Exercise,
			Detail:    fmt.Sprintf("%gkg x %d", r.Weight, r.Reps),
			Date:      r.Date,
			IsPr:      r.IsPr,
			CreatedAt: r.CreatedAt,
		})
	}

	sort.SliceStable(activity, func(i, j int) bool {
		return activity[i].CreatedAt.After(activity[j].CreatedAt)
	})
	if len(activity) > RecentActivityLimit {
		activity = activity[:RecentActivityLimit]
	}
	d.RecentActivity = append(d.RecentActivity, activity...)

	for _, lift := range MainLifts {
		d.MainLiftBests = append(d.MainLiftBests, LiftBest{
			Exercise:     lift,
			Estimated1RM: best[lift],
		})
	}
	return d
}

// SummarizeCardio counts activities, PRs, activities of the current week
// (weeks start on Sunday) and the total distance covered.
func SummarizeCardio(activities []cardio.Activity, now time.Time) CardioSummary {
	today := pkg.DateOf(now)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))

	var s CardioSummary
	var distance float64
	for _, a := range activities {
		s.TotalActivities++
		if a.IsPr {
			s.TotalPRs++
		}
		if !a.Date.Time.Before(weekStart) {
			s.ThisWeek++
		}
		if a.DistanceKm != nil {
			distance += *a.DistanceKm
		}
	}
	s.TotalDistanceKm = round1(distance)
	return s
}

// LatestBody picks, for every reading, the most recent row that has it.
func LatestBody(metrics []body.Metric, measurements []body.Measurement) BodySnapshot {
	var snap BodySnapshot
	var weightAt, fatAt, hrAt, vo2At, waistAt, chestAt pkg.Date

	newer := func(d pkg.Date, at *pkg.Date) bool {
		if at.IsZero() || d.After(*at) {
			*at = d
			return true
		}
		return false
	}

	for _, m := range metrics {
		if m.Weight != nil && newer(m.Date, &weightAt) {
			snap.Weight = copyOf(m.Weight)
		}
		if m.BodyFatPercent != nil && newer(m.Date, &fatAt) {
			snap.BodyFatPercent = copyOf(m.BodyFatPercent)
		}
		if m.RestingHR != nil && newer(m.Date, &hrAt) {
			snap.RestingHR = copyOf(m.RestingHR)
		}
		if m.VO2Max != nil && newer(m.Date, &vo2At) {
			snap.VO2Max = copyOf(m.VO2Max)
		}
	}
	for _, m := range measurements {
		if m.WaistCm != nil && newer(m.Date, &waistAt) {
			snap.WaistCm = copyOf(m.WaistCm)
		}
		if m.ChestCm != nil && newer(m.Date, &chestAt) {
			snap.ChestCm = copyOf(m.ChestCm)
		}
	}

	var last pkg.Date
	for _, d := range []pkg.Date{weightAt, fatAt, hrAt, vo2At, waistAt, chestAt} {
		if d.After(last) {
			last = d
		}
	}
	if !last.IsZero() {
		snap.LastUpdated = &last
	}
	return snap
}

func copyOf[T any](p *T) *T {
	v := *p
	return &v
}
