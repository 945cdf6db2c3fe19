package stats

import (
	"time"

	"github.com/xtrack/server/internal/benchmarks"
	"github.com/xtrack/server/internal/body"
	"github.com/xtrack/server/internal/strength"
	"github.com/xtrack/server/pkg"
)

// Input is a point in time snapshot of one user's records.
type Input struct {
	Results      []benchmarks.Result
	Records      []strength.Record
	Metrics      []body.Metric
	Measurements []body.Measurement
}

// Report is everything the statistics page shows for one time range.
type Report struct {
	Range       TimeRange `json:"range"`
	From        pkg.Date  `json:"from"`
	GeneratedAt time.Time `json:"generatedAt"`

	Overview          Overview          `json:"overview"`
	VolumePerWeek     []WeekVolume      `json:"volumePerWeek"`
	CurrentWeekVolume float64           `json:"currentWeekVolume"`
	Intensity         []IntensityBucket `json:"intensity"`
	ConsistencyScore  int               `json:"consistencyScore"`
	ImprovementRate   int               `json:"improvementRate"`

	MovementPatterns     []PatternShare       `json:"movementPatterns"`
	StrengthBalance      []GroupStrength      `json:"strengthBalance"`
	StrengthToBodyweight map[string]LiftRatio `json:"strengthToBodyweight"`
	Bodyweight           float64              `json:"bodyweight"`

	CategoryDistribution []CategoryShare `json:"categoryDistribution"`
	WeekdayDistribution  []WeekdayShare  `json:"weekdayDistribution"`
	DominantMovements    []MovementCount `json:"dominantMovements"`
	BestPeriod           BestPeriod      `json:"bestPeriod"`
	MonthlyActivity      []MonthCount    `json:"monthlyActivity"`

	StrengthProgress  []LiftProgress      `json:"strengthProgress"`
	BenchmarkProgress []BenchmarkProgress `json:"benchmarkProgress"`
	RecentPRs         []PRHighlight       `json:"recentPRs"`
	Body              BodySnapshot        `json:"body"`
}

// BuildReport runs every derivation over the snapshot. It never fails;
// empty input yields zero values.
func BuildReport(in Input, rng TimeRange, now time.Time) *Report {
	return &Report{
		Range:       rng,
		From:        rng.From(now),
		GeneratedAt: now,

		Overview:          WorkoutOverview(in.Results, in.Records, now),
		VolumePerWeek:     VolumeLoadPerWeek(in.Records),
		CurrentWeekVolume: CurrentWeekVolume(in.Records, now),
		Intensity:         IntensityDistribution(in.Records),
		ConsistencyScore:  ConsistencyScore(in.Results, in.Records),
		ImprovementRate:   ImprovementRate(in.Records),

		MovementPatterns:     MovementPatterns(in.Records, in.Results),
		StrengthBalance:      StrengthBalance(in.Records),
		StrengthToBodyweight: StrengthToBodyweight(in.Records, in.Metrics),
		Bodyweight:           LatestBodyweight(in.Metrics),

		CategoryDistribution: CategoryDistribution(in.Results),
		WeekdayDistribution:  WeekdayDistribution(in.Results, in.Records),
		DominantMovements:    DominantMovements(in.Records, in.Results, DominantMovementsLimit),
		BestPeriod:           BestPerformancePeriod(in.Records, in.Results),
		MonthlyActivity:      MonthlyActivity(in.Results, in.Records),

		StrengthProgress:  StrengthProgress(in.Records, MainLifts),
		BenchmarkProgress: BenchmarkTimeProgress(in.Results, FamousBenchmarks),
		RecentPRs:         RecentPRs(in.Results, in.Records, RecentPRsLimit),
		Body:              LatestBody(in.Metrics, in.Measurements),
	}
}
