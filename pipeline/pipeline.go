// Package pipeline orchestrates the full viewpoint search: candidate
// extraction, per-candidate visibility and drivability, lat/lon
// back-conversion, scoring, and ranking (spec.md §4.5). Grounded on the
// teacher's top-level build orchestration (arl-go-detour's
// recast.go/solomesh builder functions): a sequence of named,
// RunContext-timed stages feeding a single result set.
package pipeline

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/sytelus/highpoint/internal/candidates"
	"github.com/sytelus/highpoint/internal/config"
	"github.com/sytelus/highpoint/internal/geoutil"
	"github.com/sytelus/highpoint/internal/roads"
	"github.com/sytelus/highpoint/internal/runctx"
	"github.com/sytelus/highpoint/internal/score"
	"github.com/sytelus/highpoint/internal/status"
	"github.com/sytelus/highpoint/internal/terrain"
	"github.com/sytelus/highpoint/internal/visibility"
)

// ViewpointResult is the per-candidate output record (spec.md §3, §6.3),
// supplemented with a diagnostic UUID (spec.md supplement, not consulted by
// ranking or acceptance).
type ViewpointResult struct {
	ID string

	CandidateLatDeg float64
	CandidateLonDeg float64
	ElevationM      float64

	Visibility  visibility.Metrics
	Drivability roads.Result

	AccessLatDeg     float64
	AccessLonDeg     float64
	AccessElevationM float64

	DistanceFromOriginMiles float64
	Score                   float64
}

// Run executes the full pipeline described in spec.md §4.5: resolve the
// observer's UTM zone, extract and cluster candidates, evaluate visibility
// and drivability for each, discard rejects, convert coordinates back to
// lat/lon, score, stable-sort descending, and truncate to
// cfg.Output.ResultsLimit.
//
// grid and network are assumed already reprojected to the observer's UTM
// zone by the caller (spec.md §6.1/§6.4/§9 "push all reprojection to the
// external loader"). Before any stage runs, Run validates cfg and returns
// a status.InvalidInput error for an empty road network or for an observer
// whose projected position lies outside the grid's extent.
func Run(rc *runctx.RunContext, cfg config.AppConfig, grid *terrain.Grid, network *roads.Network) ([]ViewpointResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if network == nil || len(network.Polylines) == 0 {
		return nil, fmt.Errorf("pipeline: empty road network: %w", status.InvalidInput)
	}

	rc.StartTimer(runctx.TimerTotal)
	defer rc.StopTimer(runctx.TimerTotal)

	zone := geoutil.ZoneForLonLat(cfg.Observer.LongitudeDeg, cfg.Observer.LatitudeDeg)
	rc.Progressf("resolved observer UTM zone %d (EPSG:%d)", zone.Number, zone.EPSG())

	originX, originY := zone.FromLatLon(cfg.Observer.LatitudeDeg, cfg.Observer.LongitudeDeg)
	if !grid.WorldBounds().Contains(originX, originY) {
		return nil, fmt.Errorf("pipeline: observer outside the DEM: %w", status.InvalidInput)
	}

	rc.StartTimer(runctx.TimerExtract)
	cands := candidates.Extract(grid, candidates.Options{
		Neighborhood:   cfg.Terrain.Neighborhood,
		MinProminenceM: cfg.Terrain.MinProminenceM,
		MinSlopeDeg:    cfg.Terrain.MinSlopeDeg,
		ClusterGridM:   cfg.Terrain.ClusterGridM,
	})
	rc.StopTimer(runctx.TimerExtract)
	rc.Progressf("extracted %d candidates", len(cands))

	if len(cands) == 0 {
		rc.Warningf("no candidates survived extraction")
		return nil, nil
	}

	visOpt := visibility.Options{
		ObserverEyeHeightM: cfg.Visibility.ObserverEyeHeightM,
		ObstructionStartM:  cfg.Visibility.ObstructionStartM,
		ObstructionHeightM: cfg.Visibility.ObstructionHeightM,
		MaxVisibilityKm:    cfg.Terrain.MaxVisibilityKm,
		MinVisibilityMiles: cfg.Visibility.MinVisibilityMiles,
		MinFieldOfViewDeg:  cfg.Visibility.MinFieldOfViewDeg,
		AzimuthDeg:         cfg.Visibility.AzimuthDeg,
		RaysFullCircle:     cfg.Visibility.RaysFullCircle,
	}
	roadOpt := roads.Options{
		WalkingSpeedKmh: cfg.Roads.WalkingSpeedKmh,
		DrivingSpeedKmh: cfg.Roads.DrivingSpeedKmh,
		MaxWalkMinutes:  cfg.Roads.MaxWalkMinutes,
		MaxDriveMinutes: cfg.Roads.MaxDriveMinutes,
	}

	results := make([]ViewpointResult, 0, len(cands))
	for _, cand := range cands {
		rc.StartTimer(runctx.TimerVisibility)
		metrics := visibility.Compute(grid, visibility.Point{X: cand.X, Y: cand.Y, Elevation: float64(cand.Elevation)}, visOpt)
		rc.StopTimer(runctx.TimerVisibility)

		rc.StartTimer(runctx.TimerRoads)
		drivability, accepted := roads.Evaluate(network, cand.X, cand.Y, originX, originY, roadOpt)
		rc.StopTimer(runctx.TimerRoads)
		if !accepted {
			continue
		}

		candLat, candLon := zone.ToLatLon(cand.X, cand.Y)
		accessLat, accessLon := zone.ToLatLon(drivability.Access.X, drivability.Access.Y)
		accessElevation := float64(grid.SampleBilinear(drivability.Access.X, drivability.Access.Y))

		distanceMiles := geoutil.GreatCircleDistanceMeters(cfg.Observer.LatitudeDeg, cfg.Observer.LongitudeDeg, candLat, candLon) / geoutil.MetersPerMile

		rc.StartTimer(runctx.TimerScore)
		s := score.Compute(score.Inputs{
			MaxDistanceM:       metrics.MaxDistanceM,
			ActualFOVDeg:       metrics.ActualFOVDeg,
			MinFieldOfViewDeg:  cfg.Visibility.MinFieldOfViewDeg,
			MinVisibilityMiles: cfg.Visibility.MinVisibilityMiles,
			WalkMinutes:        drivability.WalkMinutes,
			MaxWalkMinutes:     cfg.Roads.MaxWalkMinutes,
			ElevationM:         float64(cand.Elevation),
		})
		rc.StopTimer(runctx.TimerScore)

		results = append(results, ViewpointResult{
			ID:                      uuid.NewString(),
			CandidateLatDeg:         candLat,
			CandidateLonDeg:         candLon,
			ElevationM:              float64(cand.Elevation),
			Visibility:              metrics,
			Drivability:             drivability,
			AccessLatDeg:            accessLat,
			AccessLonDeg:            accessLon,
			AccessElevationM:        accessElevation,
			DistanceFromOriginMiles: distanceMiles,
			Score:                   s,
		})
	}

	if len(results) == 0 {
		rc.Warningf("all candidates rejected by drivability")
		return nil, nil
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	limit := cfg.Output.ResultsLimit
	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results, nil
}
