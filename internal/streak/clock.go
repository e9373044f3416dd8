// ABOUTME: Clock abstraction supplying "today" to the streak engine.
// ABOUTME: Injected so gap resolution is deterministic under simulated dates.
package streak

import "github.com/harperreed/fitquest/internal/models"

// Clock supplies the current calendar day.
type Clock interface {
	Today() models.Day
}

type systemClock struct{}

func (systemClock) Today() models.Day {
	return models.Today()
}

// SystemClock returns a Clock backed by the local wall clock.
func SystemClock() Clock {
	return systemClock{}
}
