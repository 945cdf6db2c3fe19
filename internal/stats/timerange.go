package stats

import (
	"fmt"
	"time"

	"github.com/xtrack/server/pkg"
)

type TimeRange string

const (
	RangeMonth       TimeRange = "1m"
	RangeThreeMonths TimeRange = "3m"
	RangeSixMonths   TimeRange = "6m"
	RangeYear        TimeRange = "1y"
	RangeAll         TimeRange = "all"

	DefaultRange = RangeSixMonths
)

// allTimeStart is the lower bound used for RangeAll.
var allTimeStart = pkg.NewDate(2020, time.January, 1)

func ParseTimeRange(s string) (TimeRange, error) {
	switch r := TimeRange(s); r {
	case "":
		return DefaultRange, nil
	case RangeMonth, RangeThreeMonths, RangeSixMonths, RangeYear, RangeAll:
		return r, nil
	default:
		return "", fmt.Errorf("unknown time range: %q", s)
	}
}

// From is the first calendar date included in the range ending today.
func (r TimeRange) From(now time.Time) pkg.Date {
	today := pkg.DateOf(now)
	switch r {
	case RangeMonth:
		return pkg.DateOf(today.AddDate(0, -1, 0))
	case RangeThreeMonths:
		return pkg.DateOf(today.AddDate(0, -3, 0))
	case RangeYear:
		return pkg.DateOf(today.AddDate(-1, 0, 0))
	case RangeAll:
		return allTimeStart
	default:
		return pkg.DateOf(today.AddDate(0, -6, 0))
	}
}
