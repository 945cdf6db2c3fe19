package benchmarks

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidResult = errors.New("invalid benchmark result")

var firstNumberRegex = regexp.MustCompile(`\d+(\.\d+)?`)

// ParseResult turns the raw result a user typed into its sortable form:
// seconds for Time benchmarks ("mm:ss" or "h:mm:ss"), otherwise the first
// number found in the string ("5+12" rounds -> 5).
func ParseResult(t Type, raw string) (seconds *int, numeric *float64, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil, fmt.Errorf("%w: empty", ErrInvalidResult)
	}

	if t == TypeTime {
		secs, err := parseClock(raw)
		if err != nil {
			return nil, nil, err
		}
		return &secs, nil, nil
	}

	match := firstNumberRegex.FindString(raw)
	if match == "" {
		return nil, nil, fmt.Errorf("%w: no number in %q", ErrInvalidResult, raw)
	}
	n, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidResult, err)
	}
	return nil, &n, nil
}

func parseClock(raw string) (int, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: time must be mm:ss or h:mm:ss, got %q", ErrInvalidResult, raw)
	}

	values := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("%w: bad time component %q", ErrInvalidResult, p)
		}
		// everything after the leading component is base 60
		if i > 0 && v >= 60 {
			return 0, fmt.Errorf("%w: time component %q out of range", ErrInvalidResult, p)
		}
		values[i] = v
	}

	if len(values) == 2 {
		return values[0]*60 + values[1], nil
	}
	return values[0]*3600 + values[1]*60 + values[2], nil
}

// Beats reports whether the candidate result is better than the current best.
// Lower is better for Time benchmarks, higher for everything else.
func Beats(t Type, candSeconds *int, candNumeric *float64, bestSeconds *int, bestNumeric *float64) bool {
	if t == TypeTime {
		if candSeconds == nil {
			return false
		}
		return bestSeconds == nil || *candSeconds < *bestSeconds
	}
	if candNumeric == nil {
		return false
	}
	return bestNumeric == nil || *candNumeric > *bestNumeric
}
