package stats

import (
	"github.com/xtrack/server/internal/benchmarks"
	"github.com/xtrack/server/internal/strength"
)

type PatternShare struct {
	Pattern    string `json:"pattern"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type GroupStrength struct {
	Group      string `json:"group"`
	Average1RM int    `json:"average1RM"`
	Records    int    `json:"records"`
}

// MovementPatterns counts how often each movement pattern was trained.
// A record is credited to every pattern it matches, so percentages are
// relative to the number of records and may add up to more than 100.
// Patterns that were never trained are left out.
func MovementPatterns(records []strength.Record, results []benchmarks.Result) []PatternShare {
	total := len(records) + len(results)
	if total == 0 {
		return []PatternShare{}
	}

	counts := make(map[string]int)
	for _, r := range records {
		for _, p := range matchingRules(r.Exercise, MovementPatternRules) {
			counts[p]++
		}
	}
	for _, r := range results {
		for _, p := range BenchmarkPatternOverrides[r.Name()] {
			counts[p]++
		}
	}

	shares := make([]PatternShare, 0, len(counts))
	for _, rule := range MovementPatternRules {
		c := counts[rule.Name]
		if c == 0 {
			continue
		}
		shares = append(shares, PatternShare{
			Pattern:    rule.Name,
			Count:      c,
			Percentage: percentOf(c, total),
		})
	}
	return shares
}

// StrengthBalance averages the lift value per muscle group, in rule order.
func StrengthBalance(records []strength.Record) []GroupStrength {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		for _, g := range matchingRules(r.Exercise, MuscleGroupRules) {
			sums[g] += liftValue(r)
			counts[g]++
		}
	}

	groups := make([]GroupStrength, 0, len(counts))
	for _, rule := range MuscleGroupRules {
		c := counts[rule.Name]
		if c == 0 {
			continue
		}
		groups = append(groups, GroupStrength{
			Group:      rule.Name,
			Average1RM: round(sums[rule.Name] / float64(c)),
			Records:    c,
		})
	}
	return groups
}
