package strength

import (
	"time"

	"github.com/xtrack/server/pkg"
)

// Record is one logged strength set group, e.g. Back Squat 5x3 @ 120 kg.
// Estimated1RM and IsPr are derived on write, see Service.
type Record struct {
	ID           int       `json:"id"`
	UserID       string    `json:"userId"`
	Exercise     string    `json:"exercise"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	Sets         *int      `json:"sets,omitempty"`
	Estimated1RM *float64  `json:"estimated1RM,omitempty"`
	Date         pkg.Date  `json:"date"`
	IsPr         bool      `json:"isPr"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Exercises is the catalog offered to clients when logging a lift.
var Exercises = []string{
	"Back Squat",
	"Front Squat",
	"Overhead Squat",
	"Deadlift",
	"Sumo Deadlift",
	"Bench Press",
	"Overhead Press",
	"Push Press",
	"Push Jerk",
	"Clean",
	"Power Clean",
	"Hang Clean",
	"Jerk",
	"Split Jerk",
	"Clean & Jerk",
	"Snatch",
	"Power Snatch",
	"Bent Over Row",
	"Pull-ups",
	"Strict Pull-ups",
}
