package stats

import (
	"sort"
	"time"

	"github.com/xtrack/server/internal/benchmarks"
	"github.com/xtrack/server/internal/strength"
)

const uncategorized = "Uncategorized"

type CategoryShare struct {
	Category   string `json:"category"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type WeekdayShare struct {
	Day        int    `json:"day"` // 0 = Sunday
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type MovementCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type BestPeriod struct {
	Month string `json:"month"`
	PRs   int    `json:"prs"`
}

type MonthCount struct {
	Month    string `json:"month"`
	Workouts int    `json:"workouts"`
}

// CategoryDistribution counts benchmark results per benchmark category, in
// order of first appearance. Results without a joined benchmark are grouped
// as "Uncategorized".
func CategoryDistribution(results []benchmarks.Result) []CategoryShare {
	if len(results) == 0 {
		return []CategoryShare{}
	}

	var order []string
	counts := make(map[string]int)
	for _, r := range results {
		category := uncategorized
		if r.Benchmark != nil && r.Benchmark.Category != "" {
			category = r.Benchmark.Category
		}
		if counts[category] == 0 {
			order = append(order, category)
		}
		counts[category]++
	}

	shares := make([]CategoryShare, 0, len(order))
	for _, c := range order {
		shares = append(shares, CategoryShare{
			Category:   c,
			Count:      counts[c],
			Percentage: percentOf(counts[c], len(results)),
		})
	}
	return shares
}

// WeekdayDistribution returns seven entries, Sunday first, or none when
// there are no records at all.
func WeekdayDistribution(results []benchmarks.Result, records []strength.Record) []WeekdayShare {
	total := len(results) + len(records)
	if total == 0 {
		return []WeekdayShare{}
	}

	var counts [7]int
	for _, r := range results {
		counts[r.Date.Weekday()]++
	}
	for _, r := range records {
		counts[r.Date.Weekday()]++
	}

	shares := make([]WeekdayShare, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		shares[day] = WeekdayShare{
			Day:        int(day),
			Name:       day.String()[:3],
			Count:      counts[day],
			Percentage: percentOf(counts[day], total),
		}
	}
	return shares
}

// DominantMovements ranks exercise and benchmark names by how often they
// were logged. Equal counts are ordered by name.
func DominantMovements(records []strength.Record, results []benchmarks.Result, limit int) []MovementCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Exercise]++
	}
	for _, r := range results {
		if name := r.Name(); name != "" {
			counts[name]++
		}
	}

	movements := make([]MovementCount, 0, len(counts))
	for name, c := range counts {
		movements = append(movements, MovementCount{Name: name, Count: c})
	}
	sort.Slice(movements, func(i, j int) bool {
		if movements[i].Count != movements[j].Count {
			return movements[i].Count > movements[j].Count
		}
		return movements[i].Name < movements[j].Name
	})

	if limit >= 0 && len(movements) > limit {
		movements = movements[:limit]
	}
	return movements
}

// BestPerformancePeriod is the month with the most PRs. The earliest month
// wins a tie. Zero value when nothing was flagged as a PR.
func BestPerformancePeriod(records []strength.Record, results []benchmarks.Result) BestPeriod {
	perMonth := make(map[string]int)
	for _, r := range records {
		if r.IsPr {
			perMonth[MonthKey(r.Date.Time)]++
		}
	}
	for _, r := range results {
		if r.IsPr {
			perMonth[MonthKey(r.Date.Time)]++
		}
	}

	var best BestPeriod
	for month, prs := range perMonth {
		if prs > best.PRs || (prs == best.PRs && month < best.Month) {
			best = BestPeriod{Month: month, PRs: prs}
		}
	}
	return best
}

// MonthlyActivity counts benchmark and strength entries per calendar month.
func MonthlyActivity(results []benchmarks.Result, records []strength.Record) []MonthCount {
	perMonth := make(map[string]int)
	for _, r := range results {
		perMonth[MonthKey(r.Date.Time)]++
	}
	for _, r := range records {
		perMonth[MonthKey(r.Date.Time)]++
	}

	months := make([]MonthCount, 0, len(perMonth))
	for month, c := range perMonth {
		months = append(months, MonthCount{Month: month, Workouts: c})
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})
	return months
}
