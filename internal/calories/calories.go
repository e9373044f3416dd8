// ABOUTME: MET-based calorie estimation for logged workouts.
// ABOUTME: A rough stand-in; the engine only needs a plausible kcal figure.
package calories

import (
	"math"

	"github.com/harperreed/fitquest/internal/models"
)

// metByIntensity maps effort level to a representative MET value.
var metByIntensity = map[models.Intensity]float64{
	models.IntensityLow:    3.5,
	models.IntensityMedium: 6.0,
	models.IntensityHigh:   9.0,
}

// Estimate returns the estimated kcal burned for a session:
// MET x body weight (kg) x duration (hours), rounded to one decimal.
func Estimate(intensity models.Intensity, durationMinutes int, weightKg float64) float64 {
	met, ok := metByIntensity[intensity]
	if !ok {
		met = metByIntensity[models.IntensityMedium]
	}
	kcal := met * weightKg * float64(durationMinutes) / 60
	return math.Round(kcal*10) / 10
}
