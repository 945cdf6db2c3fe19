package stats

import (
	"github.com/xtrack/server/internal/body"
	"github.com/xtrack/server/internal/strength"
)

type LiftRatio struct {
	Absolute float64 `json:"absolute"`
	Ratio    float64 `json:"ratio"`
}

// LatestBodyweight is the weight of the most recent metric that has one,
// DefaultBodyweightKg otherwise.
func LatestBodyweight(metrics []body.Metric) float64 {
	var latest *body.Metric
	for i := range metrics {
		m := &metrics[i]
		if m.Weight == nil || *m.Weight <= 0 {
			continue
		}
		if latest == nil || m.Date.After(latest.Date) {
			latest = m
		}
	}
	if latest == nil {
		return DefaultBodyweightKg
	}
	return *latest.Weight
}

// StrengthToBodyweight relates the most recent record of each key lift to
// the latest body weight. Lifts never logged are absent from the result.
// On equal dates the record listed first wins.
func StrengthToBodyweight(records []strength.Record, metrics []body.Metric) map[string]LiftRatio {
	bodyweight := LatestBodyweight(metrics)

	latest := make(map[string]strength.Record)
	for _, r := range records {
		if !isKeyLift(r.Exercise) {
			continue
		}
		prev, ok := latest[r.Exercise]
		if !ok || r.Date.After(prev.Date) {
			latest[r.Exercise] = r
		}
	}

	ratios := make(map[string]LiftRatio, len(latest))
	for exercise, r := range latest {
		value := liftValue(r)
		ratios[exercise] = LiftRatio{
			Absolute: value,
			Ratio:    round2(value / bodyweight),
		}
	}
	return ratios
}

func isKeyLift(exercise string) bool {
	for _, l := range KeyLifts {
		if l == exercise {
			return true
		}
	}
	return false
}
