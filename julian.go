package orrery

import (
	"time"

	"github.com/soniakeys/meeus/julian"
)

// julianDate returns the Julian Date corresponding to epochStart plus
// elapsedSeconds of simulated time, for consumers that want to log or
// display an astronomical date rather than a bare seconds counter.
// This is purely additive: it never feeds back into the cadence
// algorithm's time_elapsed bookkeeping.
func julianDate(epochStart time.Time, elapsedSeconds float64) float64 {
	return julian.TimeToJD(epochStart.Add(time.Duration(elapsedSeconds * float64(time.Second))))
}
