package orrery

import (
	"math"
	"testing"
	"time"
)

func TestJulianDateAdvancesWithElapsedSeconds(t *testing.T) {
	epoch := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
	jd0 := julianDate(epoch, 0)
	jd1 := julianDate(epoch, SecondsPerDay)
	if math.Abs((jd1-jd0)-1) > 1e-6 {
		t.Fatalf("one day of elapsed time moved the Julian Date by %f, want 1", jd1-jd0)
	}
}
