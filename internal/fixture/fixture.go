// Package fixture loads small JSON test fixtures for the CLI's "search"
// subcommand. Real dataset acquisition, raster I/O, and vector I/O are
// external collaborators per spec.md §1/§6.2; this package exists only so
// the CLI has something concrete to read in the absence of that loader,
// and is never imported by the core packages (candidates, terrain,
// visibility, roads, score, pipeline).
package fixture

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sytelus/highpoint/internal/roads"
	"github.com/sytelus/highpoint/internal/terrain"
)

// demFixture mirrors terrain.Grid's constructor arguments in JSON form.
type demFixture struct {
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Elevations  []float32 `json:"elevations"`
	CRS         string    `json:"crs"`
	Transform   struct {
		A, B, C, D, E, F float64
	} `json:"transform"`
}

// LoadDEM reads a JSON-encoded fixture into a terrain.Grid.
func LoadDEM(path string) (*terrain.Grid, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading DEM %s: %w", path, err)
	}
	var f demFixture
	if err := json.Unmarshal(buf, &f); err != nil {
		return nil, fmt.Errorf("fixture: parsing DEM %s: %w", path, err)
	}
	transform := terrain.Affine{A: f.Transform.A, B: f.Transform.B, C: f.Transform.C, D: f.Transform.D, E: f.Transform.E, F: f.Transform.F}
	return terrain.New(f.Width, f.Height, f.Elevations, transform, f.CRS), nil
}

// roadsFixture is a flattened list of polylines: each a sequence of [x,y]
// vertex pairs, already reduced from any MultiLineString by the external
// loader per spec.md §6.2.
type roadsFixture struct {
	CRS       string        `json:"crs"`
	Polylines [][][2]float64 `json:"polylines"`
}

// LoadRoads reads a JSON-encoded fixture into a roads.Network.
func LoadRoads(path string) (*roads.Network, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading roads %s: %w", path, err)
	}
	var f roadsFixture
	if err := json.Unmarshal(buf, &f); err != nil {
		return nil, fmt.Errorf("fixture: parsing roads %s: %w", path, err)
	}

	net := &roads.Network{CRS: f.CRS}
	for _, line := range f.Polylines {
		poly := make(roads.Polyline, len(line))
		for i, v := range line {
			poly[i] = roads.Vertex{X: v[0], Y: v[1]}
		}
		net.Polylines = append(net.Polylines, poly)
	}
	return net, nil
}
