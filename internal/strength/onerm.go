package strength

import "math"

// Estimate1RM uses the Epley formula. A single rep is its own max.
func Estimate1RM(weight float64, reps int) float64 {
	if reps <= 1 {
		return weight
	}
	est := weight * (1 + float64(reps)/30)
	return math.Round(est*10) / 10
}
