// Package candidates extracts scenic-viewpoint candidates from a terrain
// grid: a smoothed local-maximum scan, prominence and slope filtering, and
// deterministic spatial clustering of survivors. Grounded on the teacher's
// region/chunky-mesh spatial-binning shape (arl/go-detour's
// recast.region.go flood scans and recast.chunkytrimesh.go bucketing),
// adapted from triangle bins to terrain-cell bins.
package candidates

import (
	"math"

	"github.com/arl/assertgo"
	"github.com/arl/math32"

	"github.com/sytelus/highpoint/internal/terrain"
)

// Candidate is a surviving terrain cell: a local maximum with adequate
// prominence and slope (spec.md §3 TerrainCandidate).
type Candidate struct {
	X, Y      float64
	Elevation float32
	Row, Col  int
}

// Options configures extraction (spec.md §4.2).
type Options struct {
	Neighborhood   int     // odd, default 3
	MinProminenceM float64 // default 10
	MinSlopeDeg    float64 // default 2
	ClusterGridM   float64 // default 250
}

// DefaultOptions returns the spec-prescribed defaults.
func DefaultOptions() Options {
	return Options{
		Neighborhood:   3,
		MinProminenceM: 10,
		MinSlopeDeg:    2,
		ClusterGridM:   250,
	}
}

// Extract runs the full extraction pipeline: smooth, local-max, prominence
// filter, slope filter, emit, cluster. An empty grid yields an empty slice.
func Extract(g *terrain.Grid, opt Options) []Candidate {
	assert.True(opt.Neighborhood > 0 && opt.Neighborhood%2 == 1, "candidates.Extract: neighborhood must be odd and positive")

	w, h := g.Width(), g.Height()
	if w == 0 || h == 0 {
		return nil
	}

	raw := make([]float32, w*h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			raw[row*w+col] = g.At(row, col)
		}
	}
	smoothed := gaussianSmooth(raw, w, h, 1.0)

	half := opt.Neighborhood / 2
	dx, dy := g.Resolution()

	var survivors []Candidate
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			sv := smoothed[row*w+col]
			if math.IsNaN(float64(sv)) {
				continue
			}
			if !isLocalMax(smoothed, w, h, row, col, half, sv) {
				continue
			}

			rawMin, rawAtCell := windowRawStats(raw, w, h, row, col, half)
			if math.IsNaN(float64(rawAtCell)) {
				continue
			}
			prominence := float64(rawAtCell) - rawMin
			if prominence < opt.MinProminenceM {
				continue
			}

			slopeDeg := slopeDegrees(raw, w, h, row, col, dx, dy)
			if slopeDeg < opt.MinSlopeDeg {
				continue
			}

			x, y := g.PixelToWorld(float64(col)+0.5, float64(row)+0.5)
			survivors = append(survivors, Candidate{X: x, Y: y, Elevation: rawAtCell, Row: row, Col: col})
		}
	}

	return cluster(survivors, opt.ClusterGridM)
}

// isLocalMax reports whether the smoothed value at (row,col) equals the max
// over a (2*half+1)^2 window centered on it.
func isLocalMax(smoothed []float32, w, h, row, col, half int, center float32) bool {
	for r := row - half; r <= row+half; r++ {
		if r < 0 || r >= h {
			continue
		}
		for c := col - half; c <= col+half; c++ {
			if c < 0 || c >= w {
				continue
			}
			v := smoothed[r*w+c]
			if math.IsNaN(float64(v)) {
				continue
			}
			if v > center {
				return false
			}
		}
	}
	return true
}

// windowRawStats returns the minimum raw elevation in the window (NaN
// entries ignored) and the raw elevation at the center cell, clamping the
// window at raster edges.
func windowRawStats(raw []float32, w, h, row, col, half int) (minV float64, center float32) {
	center = raw[row*w+col]
	minV = math.Inf(1)
	for r := row - half; r <= row+half; r++ {
		if r < 0 || r >= h {
			continue
		}
		for c := col - half; c <= col+half; c++ {
			if c < 0 || c >= w {
				continue
			}
			v := raw[r*w+c]
			if math.IsNaN(float64(v)) {
				continue
			}
			if float64(v) < minV {
				minV = float64(v)
			}
		}
	}
	return minV, center
}

// slopeDegrees computes the centered-difference gradient at (row,col),
// scaled by pixel size, and returns the slope in degrees.
func slopeDegrees(raw []float32, w, h, row, col int, dx, dy float64) float64 {
	cL, cR := col-1, col+1
	if cL < 0 {
		cL = 0
	}
	if cR >= w {
		cR = w - 1
	}
	rU, rD := row-1, row+1
	if rU < 0 {
		rU = 0
	}
	if rD >= h {
		rD = h - 1
	}

	zL, zR := float64(raw[row*w+cL]), float64(raw[row*w+cR])
	zU, zD := float64(raw[rU*w+col]), float64(raw[rD*w+col])
	if math.IsNaN(zL) || math.IsNaN(zR) || math.IsNaN(zU) || math.IsNaN(zD) {
		return 0
	}

	stepX := float64(cR-cL) * dx
	stepY := float64(rD-rU) * dy
	if stepX == 0 || stepY == 0 {
		return 0
	}

	gx := (zR - zL) / stepX
	gy := (zD - zU) / stepY

	slopeRad := math32.Atan(math32.Hypot(float32(gx), float32(gy)))
	return float64(slopeRad) * 180 / math.Pi
}
