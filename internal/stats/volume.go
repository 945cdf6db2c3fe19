package stats

import (
	"sort"
	"time"

	"github.com/xtrack/server/internal/strength"
)

type WeekVolume struct {
	Week   string  `json:"week"`
	Volume float64 `json:"volume"`
}

type IntensityBucket struct {
	Zone       string `json:"zone"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

func volumeOf(r strength.Record) float64 {
	sets := DefaultSets
	if r.Sets != nil && *r.Sets > 0 {
		sets = *r.Sets
	}
	return r.Weight * float64(r.Reps) * float64(sets)
}

// VolumeLoadPerWeek sums weight x reps x sets per ISO week, ordered by week.
func VolumeLoadPerWeek(records []strength.Record) []WeekVolume {
	byWeek := make(map[string]float64)
	for _, r := range records {
		byWeek[WeekKey(r.Date.Time)] += volumeOf(r)
	}

	weeks := make([]WeekVolume, 0, len(byWeek))
	for week, volume := range byWeek {
		weeks = append(weeks, WeekVolume{Week: week, Volume: volume})
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].Week < weeks[j].Week
	})

	return weeks
}

// CurrentWeekVolume is the volume of the ISO week containing now.
func CurrentWeekVolume(records []strength.Record, now time.Time) float64 {
	current := WeekKey(now)
	var volume float64
	for _, r := range records {
		if WeekKey(r.Date.Time) == current {
			volume += volumeOf(r)
		}
	}
	return volume
}

// IntensityDistribution buckets records by weight as a percentage of their
// estimated 1RM. Records without an estimate are not counted in any zone but
// still weigh in the total, so percentages are relative to all records.
func IntensityDistribution(records []strength.Record) []IntensityBucket {
	counts := make([]int, len(intensityZones))
	for _, r := range records {
		if r.Estimated1RM == nil || *r.Estimated1RM <= 0 {
			continue
		}
		pct := r.Weight / *r.Estimated1RM * 100
		for i, zone := range intensityZones {
			if pct >= zone.min && pct < zone.max {
				counts[i]++
				break
			}
		}
	}

	buckets := make([]IntensityBucket, len(intensityZones))
	for i, zone := range intensityZones {
		buckets[i] = IntensityBucket{
			Zone:       zone.label,
			Count:      counts[i],
			Percentage: percentOf(counts[i], len(records)),
		}
	}
	return buckets
}
