package body

import (
	"github.com/xtrack/server/pkg"
)

// Metric is one day of body composition / recovery readings.
// At most one per user and date.
type Metric struct {
	UserID         string   `json:"userId"`
	Date           pkg.Date `json:"date"`
	Weight         *float64 `json:"weight,omitempty"`
	BodyFatPercent *float64 `json:"bodyFatPercent,omitempty"`
	MuscleMassKg   *float64 `json:"muscleMassKg,omitempty"`
	RestingHR      *int     `json:"restingHr,omitempty"`
	VO2Max         *float64 `json:"vo2Max,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// Measurement holds tape measurements in centimetres, one per user and date.
type Measurement struct {
	UserID  string   `json:"userId"`
	Date    pkg.Date `json:"date"`
	ChestCm *float64 `json:"chestCm,omitempty"`
	WaistCm *float64 `json:"waistCm,omitempty"`
	HipsCm  *float64 `json:"hipsCm,omitempty"`
	ArmCm   *float64 `json:"armCm,omitempty"`
	ThighCm *float64 `json:"thighCm,omitempty"`
	NeckCm  *float64 `json:"neckCm,omitempty"`
}

func (m Metric) Empty() bool {
	return m.Weight == nil && m.BodyFatPercent == nil && m.MuscleMassKg == nil &&
		m.RestingHR == nil && m.VO2Max == nil
}

func (m Measurement) Empty() bool {
	return m.ChestCm == nil && m.WaistCm == nil && m.HipsCm == nil &&
		m.ArmCm == nil && m.ThighCm == nil && m.NeckCm == nil
}
