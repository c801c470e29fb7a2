// Package visibility casts the azimuth ray fan used to score a candidate
// viewpoint: discrete ray marching against a bilinear-sampled terrain grid,
// a uniform foreground-obstruction-belt clearance model, and a running
// max-slope horizon tracker. Grounded on the teacher's
// detour.NavMeshQuery.Raycast (arl/go-detour's query.go): march along a
// ray, track the furthest admissible hit, terminate on exiting the
// navigable surface — here, the "surface" is the terrain raster and the
// "hit" is whichever terrain cell last raised the skyline.
package visibility

import (
	"math"

	"github.com/arl/assertgo"
	"github.com/arl/math32"

	"github.com/sytelus/highpoint/internal/geoutil"
	"github.com/sytelus/highpoint/internal/statutil"
	"github.com/sytelus/highpoint/internal/terrain"
)

// Options configures the ray fan (spec.md §4.3/§6.1).
type Options struct {
	ObserverEyeHeightM float64
	ObstructionStartM  float64
	ObstructionHeightM float64
	MaxVisibilityKm    float64
	MinVisibilityMiles float64
	MinFieldOfViewDeg  float64
	AzimuthDeg         float64
	RaysFullCircle     int
}

// DefaultOptions returns the spec-prescribed defaults.
func DefaultOptions() Options {
	return Options{
		ObserverEyeHeightM: 1.8,
		ObstructionStartM:  30,
		ObstructionHeightM: 0,
		MaxVisibilityKm:    10,
		MinVisibilityMiles: 1,
		MinFieldOfViewDeg:  60,
		AzimuthDeg:         0,
		RaysFullCircle:     36,
	}
}

// RaySample is one azimuth's ray trace result.
type RaySample struct {
	AzimuthDeg   float64
	DistanceM    float64
	ClearanceMet bool
}

// Metrics is VisibilityMetrics from spec.md §3.
type Metrics struct {
	MaxDistanceM      float64
	MeanDistanceM     float64
	MedianDistanceM   float64
	ActualFOVDeg      float64
	Rays              []RaySample
	RaysWithClearance int
	TotalRays         int
}

// RayTableMap exposes the azimuth->distance ray table as a map, per
// spec.md §3's (azimuth_deg -> distance_m) description.
func (m Metrics) RayTableMap() map[float64]float64 {
	out := make(map[float64]float64, len(m.Rays))
	for _, r := range m.Rays {
		out[r.AzimuthDeg] = r.DistanceM
	}
	return out
}

// Point is a bare world-space elevation sample, used as the viewer origin.
type Point struct {
	X, Y      float64
	Elevation float64
}

// Compute casts opt.RaysFullCircle azimuth rays from origin across grid and
// reduces them into Metrics, per spec.md §4.3.
func Compute(grid *terrain.Grid, origin Point, opt Options) Metrics {
	assert.True(opt.RaysFullCircle > 0, "visibility.Compute: RaysFullCircle must be positive")

	cellSize := grid.CellSize()
	maxSteps := 0
	if cellSize > 0 {
		maxSteps = int(math.Floor(opt.MaxVisibilityKm * 1000 / cellSize))
	}
	dropRequired := math.Max(0, opt.ObstructionHeightM-opt.ObserverEyeHeightM)
	viewerHeight := origin.Elevation + opt.ObserverEyeHeightM
	bounds := grid.WorldBounds()

	rays := make([]RaySample, opt.RaysFullCircle)
	step := 360.0 / float64(opt.RaysFullCircle)

	maxDistance := 0.0
	raysWithClearance := 0

	for i := 0; i < opt.RaysFullCircle; i++ {
		azimuthDeg := geoutil.NormalizeAzimuth(step * float64(i))
		sample := castRay(grid, origin, azimuthDeg, cellSize, maxSteps, dropRequired, viewerHeight, opt, bounds)
		rays[i] = sample
		if sample.DistanceM > maxDistance {
			maxDistance = sample.DistanceM
		}
		if sample.ClearanceMet {
			raysWithClearance++
		}
	}

	sector := geoutil.NewSector(opt.AzimuthDeg, opt.MinFieldOfViewDeg)
	requiredM := opt.MinVisibilityMiles * geoutil.MetersPerMile

	var sectorDistances []float64
	meetingCount := 0
	for _, r := range rays {
		if !sector.Contains(r.AzimuthDeg) {
			continue
		}
		sectorDistances = append(sectorDistances, r.DistanceM)
		if r.DistanceM >= requiredM {
			meetingCount++
		}
	}

	mean, median := statutil.MeanAndMedian(sectorDistances)
	actualFOV := float64(meetingCount) * (360.0 / float64(opt.RaysFullCircle))

	return Metrics{
		MaxDistanceM:      maxDistance,
		MeanDistanceM:     mean,
		MedianDistanceM:   median,
		ActualFOVDeg:      actualFOV,
		Rays:              rays,
		RaysWithClearance: raysWithClearance,
		TotalRays:         opt.RaysFullCircle,
	}
}

// castRay marches a single azimuth ray. See spec.md §4.3 for the full
// per-ray contract: clearance phase within ObstructionStartM, post-belt
// phase beyond it, running max-slope horizon tracking, and NaN/out-of-grid
// termination semantics.
func castRay(grid *terrain.Grid, origin Point, azimuthDeg float64, cellSize float64, maxSteps int,
	dropRequired, viewerHeight float64, opt Options, bounds terrain.Bounds) RaySample {

	thetaRad := float32(azimuthDeg * math.Pi / 180)
	dirX := float64(math32.Sin(thetaRad))
	dirY := float64(math32.Cos(thetaRad))

	clearanceMet := dropRequired == 0
	maxSlope := math.Inf(-1)
	visibleDistance := 0.0

	for k := 1; k <= maxSteps; k++ {
		distance := float64(k) * cellSize
		wx := origin.X + float64(k)*cellSize*dirX
		wy := origin.Y + float64(k)*cellSize*dirY

		if !bounds.Contains(wx, wy) {
			break
		}

		sampleElev := grid.SampleBilinear(wx, wy)
		if math.IsNaN(float64(sampleElev)) {
			continue
		}

		if distance <= opt.ObstructionStartM {
			if !clearanceMet && origin.Elevation-float64(sampleElev) >= dropRequired {
				clearanceMet = true
			}
			continue
		}

		if !clearanceMet {
			visibleDistance = opt.ObstructionStartM
			break
		}

		obstacleHeight := float64(sampleElev) + opt.ObstructionHeightM
		slope := (obstacleHeight - viewerHeight) / distance
		if slope > maxSlope {
			maxSlope = slope
			visibleDistance = distance
		}
	}

	if !clearanceMet {
		visibleDistance = math.Min(visibleDistance, opt.ObstructionStartM)
	}

	return RaySample{AzimuthDeg: azimuthDeg, DistanceM: visibleDistance, ClearanceMet: clearanceMet}
}
