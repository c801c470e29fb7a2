package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDEM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dem.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"width": 2, "height": 2, "crs": "EPSG:32613",
		"elevations": [100, 110, 120, 130],
		"transform": {"a": 10, "b": 0, "c": 0, "d": 0, "e": -10, "f": 20}
	}`), 0o644))

	grid, err := LoadDEM(path)
	require.NoError(t, err)
	assert.Equal(t, 2, grid.Width())
	assert.Equal(t, 2, grid.Height())
	assert.Equal(t, "EPSG:32613", grid.CRS())
}

func TestLoadRoads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roads.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"crs": "EPSG:32613",
		"polylines": [[[0,0],[100,0]], [[50,-50],[50,50]]]
	}`), 0o644))

	net, err := LoadRoads(path)
	require.NoError(t, err)
	require.Len(t, net.Polylines, 2)
	assert.Equal(t, 100.0, net.Polylines[0][1].X)
}
