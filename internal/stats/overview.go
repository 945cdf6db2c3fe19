package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/xtrack/server/internal/benchmarks"
	"github.com/xtrack/server/internal/strength"
	"github.com/xtrack/server/pkg"
)

type Overview struct {
	TotalWorkouts      int     `json:"totalWorkouts"`
	TotalPRs           int     `json:"totalPRs"`
	AvgWorkoutsPerWeek float64 `json:"avgWorkoutsPerWeek"`
}

type ProgressPoint struct {
	Session      int      `json:"session"`
	Estimated1RM float64  `json:"estimated1RM"`
	Date         pkg.Date `json:"date"`
}

type LiftProgress struct {
	Exercise string          `json:"exercise"`
	Label    string          `json:"label"`
	Points   []ProgressPoint `json:"points"`
}

type BenchmarkPoint struct {
	Attempt int      `json:"attempt"`
	Minutes float64  `json:"minutes"`
	Date    pkg.Date `json:"date"`
}

type BenchmarkProgress struct {
	Benchmark string           `json:"benchmark"`
	Points    []BenchmarkPoint `json:"points"`
}

type PRKind string

const (
	KindBenchmark PRKind = "benchmark"
	KindStrength  PRKind = "strength"
)

type PRHighlight struct {
	Kind  PRKind   `json:"kind"`
	Name  string   `json:"name"`
	Value string   `json:"value"`
	Date  pkg.Date `json:"date"`
}

// WorkoutOverview summarizes the training volume of the given records.
// The average per week spans from the first logged date to today, at least one week.
func WorkoutOverview(results []benchmarks.Result, records []strength.Record, now time.Time) Overview {
	ov := Overview{TotalWorkouts: len(results) + len(records)}

	var first pkg.Date
	track := func(d pkg.Date, isPr bool) {
		if isPr {
			ov.TotalPRs++
		}
		if first.IsZero() || d.Before(first) {
			first = d
		}
	}
	for _, r := range results {
		track(r.Date, r.IsPr)
	}
	for _, r := range records {
		track(r.Date, r.IsPr)
	}

	if ov.TotalWorkouts == 0 {
		return ov
	}

	weeks := 1.0
	days := now.Sub(first.Time).Hours() / 24
	if w := math.Ceil(days / 7); w > 1 {
		weeks = w
	}
	ov.AvgWorkoutsPerWeek = round1(float64(ov.TotalWorkouts) / weeks)
	return ov
}

// StrengthProgress builds a date ordered 1RM series per lift.
// Lifts without records are omitted.
func StrengthProgress(records []strength.Record, lifts []string) []LiftProgress {
	series := make([]LiftProgress, 0, len(lifts))
	for _, lift := range lifts {
		var liftRecords []strength.Record
		for _, r := range records {
			if r.Exercise == lift {
				liftRecords = append(liftRecords, r)
			}
		}
		if len(liftRecords) == 0 {
			continue
		}
		sort.SliceStable(liftRecords, func(i, j int) bool {
			return liftRecords[i].Date.Before(liftRecords[j].Date)
		})

		points := make([]ProgressPoint, len(liftRecords))
		for i, r := range liftRecords {
			points[i] = ProgressPoint{
				Session:      i + 1,
				Estimated1RM: liftValue(r),
				Date:         r.Date,
			}
		}
		label := lift
		if words := strings.Fields(lift); len(words) > 0 {
			label = words[0]
		}
		series = append(series, LiftProgress{
			Exercise: lift,
			Label:    label,
			Points:   points,
		})
	}
	return series
}

// BenchmarkTimeProgress builds a date ordered series of finishing times in
// minutes for each named benchmark. Only timed results are used.
func BenchmarkTimeProgress(results []benchmarks.Result, names []string) []BenchmarkProgress {
	series := make([]BenchmarkProgress, 0, len(names))
	for _, name := range names {
		var timed []benchmarks.Result
		for _, r := range results {
			if r.Name() == name && r.ResultSeconds != nil {
				timed = append(timed, r)
			}
		}
		if len(timed) == 0 {
			continue
		}
		sort.SliceStable(timed, func(i, j int) bool {
			return timed[i].Date.Before(timed[j].Date)
		})

		points := make([]BenchmarkPoint, len(timed))
		for i, r := range timed {
			points[i] = BenchmarkPoint{
				Attempt: i + 1,
				Minutes: round2(float64(*r.ResultSeconds) / 60),
				Date:    r.Date,
			}
		}
		series = append(series, BenchmarkProgress{Benchmark: name, Points: points})
	}
	return series
}

// RecentPRs merges PR flagged benchmark results and strength records,
// newest first. Entries on the same date keep their input order, benchmarks first.
func RecentPRs(results []benchmarks.Result, records []strength.Record, limit int) []PRHighlight {
	prs := make([]PRHighlight, 0)
	for _, r := range results {
		if !r.IsPr {
			continue
		}
		prs = append(prs, PRHighlight{
			Kind:  KindBenchmark,
			Name:  r.Name(),
			Value: r.Result,
			Date:  r.Date,
		})
	}
	for _, r := range records {
		if !r.IsPr {
			continue
		}
		prs = append(prs, PRHighlight{
			Kind:  KindStrength,
			Name:  r.Exercise,
			Value: fmt.Sprintf("%gkg", r.Weight),
			Date:  r.Date,
		})
	}

	sort.SliceStable(prs, func(i, j int) bool {
		return prs[i].Date.After(prs[j].Date)
	})
	if limit >= 0 && len(prs) > limit {
		prs = prs[:limit]
	}
	return prs
}
