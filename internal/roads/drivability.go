package roads

import (
	"math"

	"github.com/sytelus/highpoint/internal/geoutil"
)

// drivingDetourFactor is the fixed multiplier applied to straight-line
// distance to approximate real road travel without a routing graph
// (spec.md §4.4, Open Question 3 — kept fixed, not user-configurable).
const drivingDetourFactor = 1.35

// Options configures the drivability decision (spec.md §6.1).
type Options struct {
	WalkingSpeedKmh float64
	DrivingSpeedKmh float64
	MaxWalkMinutes  float64
	MaxDriveMinutes *float64 // nil when unbound
}

// Result is DrivabilityResult from spec.md §3.
type Result struct {
	Access          AccessPoint
	WalkMinutes     float64
	DriveMinutes    *float64
	DriveDistanceKm *float64
}

// EstimateDrivingTimeMinutes approximates driving time from (originX,
// originY) to (roadX, roadY) as straight-line distance scaled by the fixed
// detour factor, divided by speed. No routing, no road graph (spec.md §4.4).
func EstimateDrivingTimeMinutes(originX, originY, roadX, roadY, drivingSpeedKmh float64) float64 {
	dx, dy := roadX-originX, roadY-originY
	distanceKm := math.Hypot(dx, dy) / geoutil.MetersPerKilometer
	return (distanceKm * drivingDetourFactor) / drivingSpeedKmh * 60
}

// Evaluate computes the nearest access point for (candidateX, candidateY)
// and applies the accept/reject rule from spec.md §4.4: reject when walking
// exceeds MaxWalkMinutes, or when MaxDriveMinutes is set and exceeded.
// observerX, observerY is the query's resolved UTM origin (spec.md §4.5
// step 1) — distinct from the candidate, since drive time is estimated from
// the observer to the access point, not from the candidate to its own
// nearest road. Returns ok=false when the candidate must be rejected or the
// network is empty.
func Evaluate(network *Network, candidateX, candidateY, observerX, observerY float64, opt Options) (Result, bool) {
	access, found := NearestAccessPoint(network, candidateX, candidateY, opt.WalkingSpeedKmh)
	if !found {
		return Result{}, false
	}
	if access.WalkMinutes > opt.MaxWalkMinutes {
		return Result{}, false
	}

	driveMinutes := EstimateDrivingTimeMinutes(observerX, observerY, access.X, access.Y, opt.DrivingSpeedKmh)
	if opt.MaxDriveMinutes != nil && driveMinutes > *opt.MaxDriveMinutes {
		return Result{}, false
	}

	driveDistanceKm := driveMinutes / 60 * opt.DrivingSpeedKmh

	return Result{
		Access:          access,
		WalkMinutes:     access.WalkMinutes,
		DriveMinutes:    &driveMinutes,
		DriveDistanceKm: &driveDistanceKm,
	}, true
}
