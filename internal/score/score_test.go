package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreBoundsScenario(t *testing.T) {
	in := Inputs{
		MinVisibilityMiles: 1,
		MaxDistanceM:       1.5 * 1609.344,
		ActualFOVDeg:       60,
		MinFieldOfViewDeg:   60,
		WalkMinutes:        0,
		MaxWalkMinutes:     30,
		ElevationM:         500,
	}
	got := Compute(in)
	want := 0.4 + 0.3 + 0.2 + 0.1*math.Tanh(1)
	assert.InDelta(t, want, got, 1e-9)
	assert.InDelta(t, 0.976, got, 1e-3)
}

func TestScoreClampedAtOne(t *testing.T) {
	in := Inputs{
		MinVisibilityMiles: 1,
		MaxDistanceM:       1000000,
		ActualFOVDeg:       360,
		MinFieldOfViewDeg:   60,
		WalkMinutes:        0,
		MaxWalkMinutes:     30,
		ElevationM:         5000,
	}
	got := Compute(in)
	assert.LessOrEqual(t, got, 1.0+1e-9)
}

func TestScoreZeroFloor(t *testing.T) {
	in := Inputs{
		MinVisibilityMiles: 1,
		MaxDistanceM:       0,
		ActualFOVDeg:       0,
		MinFieldOfViewDeg:   60,
		WalkMinutes:        60,
		MaxWalkMinutes:     30,
		ElevationM:         0,
	}
	got := Compute(in)
	assert.GreaterOrEqual(t, got, 0.0)
}
