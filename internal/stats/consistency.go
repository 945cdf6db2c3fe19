package stats

import (
	"math"
	"sort"

	"github.com/xtrack/server/internal/benchmarks"
	"github.com/xtrack/server/internal/strength"
)

// ConsistencyScore rates how even the weekly training frequency is, 0-100.
// It is 100 - 50 x the coefficient of variation of workouts per active week,
// clamped to [0, 100]. Weeks without workouts are not counted.
func ConsistencyScore(results []benchmarks.Result, records []strength.Record) int {
	perWeek := make(map[string]int)
	for _, r := range results {
		perWeek[WeekKey(r.Date.Time)]++
	}
	for _, r := range records {
		perWeek[WeekKey(r.Date.Time)]++
	}
	if len(perWeek) == 0 {
		return 0
	}

	var sum float64
	for _, c := range perWeek {
		sum += float64(c)
	}
	mean := sum / float64(len(perWeek))

	var variance float64
	for _, c := range perWeek {
		d := float64(c) - mean
		variance += d * d
	}
	variance /= float64(len(perWeek))

	cv := math.Sqrt(variance) / mean
	score := 100 - cv*50
	return round(math.Max(0, math.Min(100, score)))
}

// ImprovementRate is the average percentage change between the first and the
// last lift of every exercise logged at least twice. Exercises whose first
// value is zero cannot express a relative change and are left out.
func ImprovementRate(records []strength.Record) int {
	byExercise := make(map[string][]strength.Record)
	for _, r := range records {
		byExercise[r.Exercise] = append(byExercise[r.Exercise], r)
	}

	var total float64
	qualifying := 0
	for _, group := range byExercise {
		if len(group) < 2 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})

		first := liftValue(group[0])
		last := liftValue(group[len(group)-1])
		if first <= 0 {
			continue
		}
		total += (last - first) / first * 100
		qualifying++
	}

	if qualifying == 0 {
		return 0
	}
	return round(total / float64(qualifying))
}
