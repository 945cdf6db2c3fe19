package stats

import "math"

const (
	// DefaultSets is used for volume when a record has no set count.
	DefaultSets = 1
	// DefaultBodyweightKg is used for ratios when no body weight was logged.
	DefaultBodyweightKg = 70.0

	DominantMovementsLimit = 5
	RecentPRsLimit         = 10
	RecentActivityLimit    = 5
)

// KeyLifts get a strength to bodyweight ratio. Matched by exact name.
var KeyLifts = []string{
	"Back Squat",
	"Front Squat",
	"Deadlift",
	"Bench Press",
	"Overhead Press",
	"Clean",
	"Snatch",
}

// MainLifts get a progress series and appear on the dashboard.
var MainLifts = []string{
	"Back Squat",
	"Deadlift",
	"Bench Press",
	"Overhead Press",
}

// FamousBenchmarks get a progress series.
var FamousBenchmarks = []string{"Fran", "Helen", "Grace", "Murph", "DT"}

type intensityZone struct {
	label    string
	min, max float64
}

// Percentages below 60 are folded into the lowest zone.
var intensityZones = []intensityZone{
	{label: "Low", min: math.Inf(-1), max: 70},
	{label: "Moderate", min: 70, max: 80},
	{label: "High", min: 80, max: 90},
	{label: "Max", min: 90, max: math.Inf(1)},
}

// KeywordRule credits a category when any keyword is a case-sensitive
// substring of a movement name. A name may match several rules.
type KeywordRule struct {
	Name     string
	Keywords []string
}

var MovementPatternRules = []KeywordRule{
	{Name: "Squat Pattern", Keywords: []string{"Squat", "Thruster", "Wall Ball", "Pistol"}},
	{Name: "Hinge Pattern", Keywords: []string{"Deadlift", "Clean", "Snatch", "Swing", "Good Morning"}},
	{Name: "Push Pattern", Keywords: []string{"Press", "Push", "Jerk", "Dip", "Handstand"}},
	{Name: "Pull Pattern", Keywords: []string{"Pull", "Row", "Chin", "Muscle-up", "Rope Climb"}},
	{Name: "Olympic Lifts", Keywords: []string{"Clean", "Snatch", "Jerk"}},
	{Name: "Monostructural", Keywords: []string{"Run", "Rowing", "Bike", "SkiErg", "Swim"}},
}

// BenchmarkPatternOverrides classifies named benchmarks, whose names carry
// no movement keywords. Benchmarks not listed here are not credited.
var BenchmarkPatternOverrides = map[string][]string{
	"Grace":  {"Olympic Lifts"},
	"Isabel": {"Olympic Lifts"},
	"Randy":  {"Olympic Lifts"},
	"DT":     {"Olympic Lifts"},
	"Murph":  {"Monostructural"},
	"Helen":  {"Monostructural"},
	"Jackie": {"Monostructural"},
}

var MuscleGroupRules = []KeywordRule{
	{Name: "Legs", Keywords: []string{"Squat", "Lunge", "Pistol"}},
	{Name: "Posterior Chain", Keywords: []string{"Deadlift", "Good Morning", "Hip Thrust"}},
	{Name: "Chest", Keywords: []string{"Bench Press", "Dip", "Push-up"}},
	{Name: "Shoulders", Keywords: []string{"Overhead Press", "Push Press", "Jerk", "Shoulder Press"}},
	{Name: "Back", Keywords: []string{"Row", "Pull", "Chin"}},
	{Name: "Olympic", Keywords: []string{"Clean", "Snatch"}},
}
