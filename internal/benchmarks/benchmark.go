package benchmarks

import (
	"time"

	"github.com/xtrack/server/pkg"
)

type Type string

const (
	TypeTime   Type = "Time"
	TypeRounds Type = "Rounds"
	TypeReps   Type = "Reps"
	TypeLoad   Type = "Load"
)

type Scale string

const (
	ScaleRX      Scale = "RX"
	ScaleRXPlus  Scale = "RX+"
	ScaleScaled  Scale = "Scaled"
	ScaleMasters Scale = "Masters"
)

func (s Scale) Valid() bool {
	switch s {
	case ScaleRX, ScaleRXPlus, ScaleScaled, ScaleMasters:
		return true
	}
	return false
}

// Benchmark is a named reference workout (Fran, Murph, ...).
type Benchmark struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Type        Type   `json:"type"`
	Description string `json:"description,omitempty"`
}

// Result is one attempt at a benchmark. ResultSeconds is set for Time
// benchmarks, ResultNumeric for the others.
type Result struct {
	ID            int        `json:"id"`
	UserID        string     `json:"userId"`
	BenchmarkID   int        `json:"benchmarkId"`
	Result        string     `json:"result"`
	ResultSeconds *int       `json:"resultSeconds,omitempty"`
	ResultNumeric *float64   `json:"resultNumeric,omitempty"`
	Scale         Scale      `json:"scale"`
	Date          pkg.Date   `json:"date"`
	IsPr          bool       `json:"isPr"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	Benchmark     *Benchmark `json:"benchmark,omitempty"`
}

// Name is the joined benchmark name, empty when the join is absent.
func (r Result) Name() string {
	if r.Benchmark == nil {
		return ""
	}
	return r.Benchmark.Name
}
