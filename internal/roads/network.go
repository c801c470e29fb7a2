// Package roads implements nearest-point-on-polyline search and the
// walking/driving drivability estimate used to accept or reject a
// candidate viewpoint. Grounded on the teacher's
// detour.dtFindNearestPolyQuery / closestPointOnPoly (arl/go-detour's
// polyquery.go, query.go): "keep the closest candidate found so far,
// ties broken by iteration order" is the same shape, here walked over
// polyline segments instead of navmesh polygons, using gogeo's Vec3 for
// the projection arithmetic.
package roads

import (
	"math"

	"github.com/arl/assertgo"
	"github.com/arl/gogeo/f32/d3"

	"github.com/sytelus/highpoint/internal/geoutil"
)

// Vertex is a single (x,y) road-network vertex in the query CRS.
type Vertex struct {
	X, Y float64
}

// Polyline is an ordered sequence of vertices, length >= 2 (spec.md §3).
type Polyline []Vertex

// Network is an ordered set of polylines sharing a CRS (spec.md §3
// RoadNetwork). It is built once per query and never mutated.
type Network struct {
	Polylines []Polyline
	CRS       string
}

// AccessPoint is the nearest projection of a query point onto the network
// (spec.md §3 RoadAccessPoint).
type AccessPoint struct {
	X, Y        float64
	DistanceM   float64
	WalkMinutes float64
}

// NearestAccessPoint finds the closest point on any segment of any polyline
// in the network to (px, py). Ties are broken by polyline-then-segment
// order (spec.md §4.4). Returns ok=false for an empty network.
func NearestAccessPoint(network *Network, px, py, walkingSpeedKmh float64) (AccessPoint, bool) {
	assert.True(walkingSpeedKmh > 0, "roads.NearestAccessPoint: walkingSpeedKmh must be positive")

	p := d3.NewVec3XYZ(float32(px), float32(py), 0)

	bestDistSqr := math.Inf(1)
	var bestX, bestY float64
	found := false

	for _, line := range network.Polylines {
		for i := 0; i+1 < len(line); i++ {
			start := line[i]
			end := line[i+1]
			cx, cy := closestPointOnSegment(p, start, end)
			dx, dy := px-cx, py-cy
			d2 := dx*dx + dy*dy
			if !found || d2 < bestDistSqr {
				bestDistSqr = d2
				bestX, bestY = cx, cy
				found = true
			}
		}
	}

	if !found {
		return AccessPoint{}, false
	}

	distance := math.Sqrt(bestDistSqr)
	walkMinutes := (distance / geoutil.MetersPerKilometer) / walkingSpeedKmh * 60

	return AccessPoint{X: bestX, Y: bestY, DistanceM: distance, WalkMinutes: walkMinutes}, true
}

// closestPointOnSegment projects p onto segment [start,end], clamped to the
// segment. A degenerate (zero-length) segment returns start, per spec.md
// §4.4 and §7's degenerate-geometry clause.
func closestPointOnSegment(p d3.Vec3, start, end Vertex) (x, y float64) {
	s := d3.NewVec3XYZ(float32(start.X), float32(start.Y), 0)
	e := d3.NewVec3XYZ(float32(end.X), float32(end.Y), 0)

	seg := e.Sub(s)
	lenSqr := seg.Dot2D(seg)
	if lenSqr == 0 {
		return start.X, start.Y
	}

	toP := p.Sub(s)
	t := toP.Dot2D(seg) / lenSqr
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	proj := s.SAdd(seg, t)
	return float64(proj.X()), float64(proj.Y())
}
