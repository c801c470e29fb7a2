package candidates

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sytelus/highpoint/internal/terrain"
)

func gridOf(w, h int, px float64, fn func(row, col int) float32) *terrain.Grid {
	elev := make([]float32, w*h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			elev[row*w+col] = fn(row, col)
		}
	}
	t := terrain.Affine{A: px, B: 0, C: 0, D: 0, E: -px, F: float64(h) * px}
	return terrain.New(w, h, elev, t, "EPSG:32613")
}

func TestExtractEmptyGrid(t *testing.T) {
	g := terrain.New(0, 0, nil, terrain.Affine{A: 1, E: -1}, "EPSG:32613")
	got := Extract(g, DefaultOptions())
	assert.Empty(t, got)
}

func TestExtractFlatGridYieldsNoCandidates(t *testing.T) {
	g := gridOf(20, 20, 10, func(row, col int) float32 { return 100 })
	got := Extract(g, DefaultOptions())
	assert.Empty(t, got) // zero slope, zero prominence everywhere
}

func TestExtractSinglePeak(t *testing.T) {
	// a cone-shaped hill with a clear apex, tilted slightly east so the
	// centered-difference slope at the apex is non-zero: apex 200, 3x3
	// window minimum 182 (prominence 18 m), gradient 4 m / 20 m (~11 deg)
	g := gridOf(21, 21, 10, func(row, col int) float32 {
		dr, dc := float64(row-10), float64(col-10)
		dist := dr*dr + dc*dc
		return float32(200 - dist*8 + dc*2)
	})
	got := Extract(g, DefaultOptions())
	assert.NotEmpty(t, got)
}

func TestClusterKeepsHighestPerBin(t *testing.T) {
	in := []Candidate{
		{X: 10, Y: 10, Elevation: 100},
		{X: 20, Y: 20, Elevation: 150},
		{X: 260, Y: 10, Elevation: 90},
	}
	out := cluster(in, 250)
	assert.Len(t, out, 2)
	for _, c := range out {
		if c.X < 250 {
			assert.Equal(t, float32(150), c.Elevation)
		}
	}
}

func TestClusteringGridScenario(t *testing.T) {
	// 10 candidates on (0..900, 0..900), monotonically increasing
	// elevation, 250m bins -> 4x4 = 16 bins touched at most.
	var in []Candidate
	elev := float32(100)
	for i := 0; i < 10; i++ {
		in = append(in, Candidate{X: float64(i * 100), Y: float64(i * 100), Elevation: elev})
		elev++
	}
	out := cluster(in, 250)
	assert.LessOrEqual(t, len(out), 16)
}

func TestReflectIndex(t *testing.T) {
	assert.Equal(t, 0, reflectIndex(-1, 5))
	assert.Equal(t, 1, reflectIndex(-2, 5))
	assert.Equal(t, 4, reflectIndex(5, 5))
	assert.Equal(t, 2, reflectIndex(2, 5))
}
