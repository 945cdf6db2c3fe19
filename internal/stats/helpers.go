package stats

import (
	"math"
	"strings"

	"github.com/xtrack/server/internal/strength"
)

func round(v float64) int {
	return int(math.Round(v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// percentOf returns count/total as a rounded percentage, 0 for an empty total.
func percentOf(count, total int) int {
	if total <= 0 {
		return 0
	}
	return round(float64(count) / float64(total) * 100)
}

// liftValue is the estimated 1RM, or the lifted weight when no estimate exists.
func liftValue(r strength.Record) float64 {
	if r.Estimated1RM != nil {
		return *r.Estimated1RM
	}
	return r.Weight
}

func matchingRules(name string, rules []KeywordRule) []string {
	var matched []string
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(name, kw) {
				matched = append(matched, rule.Name)
				break
			}
		}
	}
	return matched
}
