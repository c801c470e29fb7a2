package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sytelus/highpoint/internal/config"
	"github.com/sytelus/highpoint/internal/geoutil"
	"github.com/sytelus/highpoint/internal/roads"
	"github.com/sytelus/highpoint/internal/runctx"
	"github.com/sytelus/highpoint/internal/terrain"
)

// coneGrid builds a grid with a single raised cone at its center, tilted
// slightly east so the apex has a non-zero centered-difference slope (~11
// deg) and prominent enough (42 m over its 3x3 window) to survive the
// prominence filter, sitting in UTM zone 12N near the observer below.
func coneGrid(size int, cell float64, originEasting, originNorthing float64) *terrain.Grid {
	elevations := make([]float32, size*size)
	cx, cy := size/2, size/2
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			dr, dc := float64(row-cy), float64(col-cx)
			dist := dr*dr + dc*dc
			elevations[row*size+col] = float32(100 + 80.0/(1+dist*0.5) + 2*dc)
		}
	}
	transform := terrain.Affine{
		A: cell, B: 0, C: originEasting - float64(size/2)*cell,
		D: 0, E: -cell, F: originNorthing + float64(size/2)*cell,
	}
	return terrain.New(size, size, elevations, transform, "EPSG:32612")
}

func TestRunProducesRankedResults(t *testing.T) {
	cfg := config.Default()
	cfg.Observer.LatitudeDeg = 39.0
	cfg.Observer.LongitudeDeg = -108.5
	cfg.Terrain.MaxVisibilityKm = 2
	cfg.Visibility.RaysFullCircle = 16
	cfg.Visibility.ObstructionHeightM = 0
	cfg.Roads.MaxWalkMinutes = 120

	zone := geoutil.ZoneForLonLat(cfg.Observer.LongitudeDeg, cfg.Observer.LatitudeDeg)
	originE, originN := zone.FromLatLon(cfg.Observer.LatitudeDeg, cfg.Observer.LongitudeDeg)

	grid := coneGrid(41, 10, originE, originN)
	network := &roads.Network{Polylines: []roads.Polyline{
		{{X: originE - 500, Y: originN}, {X: originE + 500, Y: originN}},
	}, CRS: "EPSG:32612"}

	rc := runctx.New(true)
	results, err := Run(rc, cfg, grid, network)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i].Score, results[i-1].Score)
	}
	for _, r := range results {
		assert.NotEmpty(t, r.ID)
		assert.GreaterOrEqual(t, r.Score, 0.0)
	}
}

func TestRunRejectsEmptyNetwork(t *testing.T) {
	cfg := config.Default()
	grid := coneGrid(11, 10, 0, 0)
	rc := runctx.New(false)
	_, err := Run(rc, cfg, grid, &roads.Network{})
	require.Error(t, err)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Observer.LatitudeDeg = 999
	grid := coneGrid(11, 10, 0, 0)
	network := &roads.Network{Polylines: []roads.Polyline{{{X: 0, Y: 0}, {X: 10, Y: 0}}}}
	rc := runctx.New(false)
	_, err := Run(rc, cfg, grid, network)
	require.Error(t, err)
}
