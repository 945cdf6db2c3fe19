package cardio

import (
	"time"

	"github.com/xtrack/server/pkg"
)

type ActivityType string

const (
	TypeRun         ActivityType = "run"
	TypeBike        ActivityType = "bike"
	TypeRower       ActivityType = "rower"
	TypeSkiErg      ActivityType = "skierg"
	TypeAssaultBike ActivityType = "assault_bike"
	TypeEchoBike    ActivityType = "echo_bike"
	TypeAirBike     ActivityType = "air_bike"
	TypeSwim        ActivityType = "swim"
	TypeOther       ActivityType = "other"
)

var activityTypes = map[ActivityType]bool{
	TypeRun:         true,
	TypeBike:        true,
	TypeRower:       true,
	TypeSkiErg:      true,
	TypeAssaultBike: true,
	TypeEchoBike:    true,
	TypeAirBike:     true,
	TypeSwim:        true,
	TypeOther:       true,
}

func (t ActivityType) Valid() bool {
	return activityTypes[t]
}

type Activity struct {
	ID              int          `json:"id"`
	UserID          string       `json:"userId"`
	ActivityType    ActivityType `json:"activityType"`
	Name            string       `json:"name"`
	Date            pkg.Date     `json:"date"`
	DurationMinutes int          `json:"durationMinutes"`
	DistanceKm      *float64     `json:"distanceKm,omitempty"`
	ElevationGainM  *int         `json:"elevationGainM,omitempty"`
	AvgHeartRate    *int         `json:"avgHeartRate,omitempty"`
	MaxHeartRate    *int         `json:"maxHeartRate,omitempty"`
	AvgPowerWatts   *int         `json:"avgPowerWatts,omitempty"`
	StrokeRate      *int         `json:"strokeRate,omitempty"`
	CaloriesBurned  *int         `json:"caloriesBurned,omitempty"`
	TotalCalories   *int         `json:"totalCalories,omitempty"`
	IsPr            bool         `json:"isPr"`
	Notes           *string      `json:"notes,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
}
