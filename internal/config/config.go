// Package config loads and validates AppConfig, the read-only settings
// object constructed once per invocation (spec.md §3, §6.1). Grounded on
// cmd/recast/cmd/utils.go's unmarshalYAMLFile and cmd/recast/cmd/config.go's
// prefilled-settings-file generation: YAML in, a nested struct out, unknown
// keys rejected at load time (spec.md §9's "statically describe the option
// set ... reject unknown options at load time").
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/sytelus/highpoint/internal/status"
)

// ObserverConfig is the query origin (spec.md §6.1 observer.*).
type ObserverConfig struct {
	LatitudeDeg  float64 `yaml:"latitude"`
	LongitudeDeg float64 `yaml:"longitude"`
	AltitudeM    float64 `yaml:"altitude_m"`
}

// TerrainConfig controls DEM selection and ray-march limits.
type TerrainConfig struct {
	SearchRadiusKm  float64 `yaml:"search_radius_km"`
	ResolutionScale float64 `yaml:"resolution_scale"`
	MaxVisibilityKm float64 `yaml:"max_visibility_km"`
	ClusterGridM    float64 `yaml:"cluster_grid_m"`
	Neighborhood    int     `yaml:"neighborhood"`
	MinProminenceM  float64 `yaml:"min_prominence_m"`
	MinSlopeDeg     float64 `yaml:"min_slope_deg"`
}

// RoadsConfig controls the walking/driving accept-reject decision.
type RoadsConfig struct {
	WalkingSpeedKmh float64  `yaml:"walking_speed_kmh"`
	DrivingSpeedKmh float64  `yaml:"driving_speed_kmh"`
	MaxWalkMinutes  float64  `yaml:"max_walk_minutes"`
	MaxDriveMinutes *float64 `yaml:"max_drive_minutes,omitempty"`
}

// VisibilityConfig controls the ray engine's obstruction model and sector.
type VisibilityConfig struct {
	ObserverEyeHeightM float64 `yaml:"observer_eye_height_m"`
	ObstructionStartM  float64 `yaml:"obstruction_start_m"`
	ObstructionHeightM float64 `yaml:"obstruction_height_m"`
	MinVisibilityMiles float64 `yaml:"min_visibility_miles"`
	MinFieldOfViewDeg  float64 `yaml:"min_field_of_view_deg"`
	AzimuthDeg         float64 `yaml:"azimuth_deg"`
	RaysFullCircle     int     `yaml:"rays_full_circle"`
}

// OutputConfig controls result-set shaping.
type OutputConfig struct {
	ResultsLimit int `yaml:"results_limit"`
}

// AppConfig is the full set of recognized options (spec.md §6.1).
type AppConfig struct {
	Observer   ObserverConfig   `yaml:"observer"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Roads      RoadsConfig      `yaml:"roads"`
	Visibility VisibilityConfig `yaml:"visibility"`
	Output     OutputConfig     `yaml:"output"`
}

// Default returns the teacher-style prefilled configuration written by
// WriteDefault. The extraction fields (neighborhood, min_prominence_m,
// min_slope_deg, cluster_grid_m) match candidates.DefaultOptions; every
// other field is a fixed working value inside its declared range, not the
// range midpoint.
func Default() AppConfig {
	return AppConfig{
		Observer: ObserverConfig{
			LatitudeDeg:  0,
			LongitudeDeg: 0,
			AltitudeM:    0,
		},
		Terrain: TerrainConfig{
			SearchRadiusKm:  10,
			ResolutionScale: 1,
			MaxVisibilityKm: 50,
			ClusterGridM:    250,
			Neighborhood:    3,
			MinProminenceM:  10,
			MinSlopeDeg:     2,
		},
		Roads: RoadsConfig{
			WalkingSpeedKmh: 4.8,
			DrivingSpeedKmh: 40,
			MaxWalkMinutes:  30,
		},
		Visibility: VisibilityConfig{
			ObserverEyeHeightM: 1.8,
			ObstructionStartM:  30,
			ObstructionHeightM: 0,
			MinVisibilityMiles: 1,
			MinFieldOfViewDeg:  60,
			AzimuthDeg:         0,
			RaysFullCircle:     72,
		},
		Output: OutputConfig{
			ResultsLimit: 20,
		},
	}
}

// Load reads and validates an AppConfig from a YAML file at path. Unknown
// keys are rejected (yaml.UnmarshalStrict), matching spec.md §9's
// statically-described option set.
func Load(path string) (AppConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.UnmarshalStrict(buf, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("config: parsing %s: %w: %w", path, status.InvalidInput, err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// WriteDefault writes the default configuration to path in YAML form,
// prefilled the way the teacher's `recast config FILE` subcommand does.
func WriteDefault(path string) error {
	buf, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("config: marshaling defaults: %w", err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

// bound describes one validated field: its name (for error messages), its
// value, and the interval it must fall within. The interval is closed on
// both ends unless maxExclusive is set, in which case value == max fails.
type bound struct {
	name         string
	value        float64
	min, max     float64
	maxExclusive bool
}

func (b bound) check() error {
	if b.value < b.min || b.value > b.max || (b.maxExclusive && b.value == b.max) {
		if b.maxExclusive {
			return fmt.Errorf("config: %s = %v out of range [%v, %v): %w", b.name, b.value, b.min, b.max, status.OutOfRange)
		}
		return fmt.Errorf("config: %s = %v out of range [%v, %v]: %w", b.name, b.value, b.min, b.max, status.OutOfRange)
	}
	return nil
}

// Validate enforces every declared bound from spec.md §6.1. It returns the
// first violation found, wrapping status.InvalidInput or status.OutOfRange
// so callers can distinguish structural problems from bounds problems via
// errors.Is.
func (c AppConfig) Validate() error {
	bounds := []bound{
		{name: "observer.latitude", value: c.Observer.LatitudeDeg, min: -90, max: 90},
		{name: "observer.longitude", value: c.Observer.LongitudeDeg, min: -180, max: 180},
		{name: "observer.altitude_m", value: c.Observer.AltitudeM, min: 0, max: 1e9},
		{name: "terrain.search_radius_km", value: c.Terrain.SearchRadiusKm, min: 1, max: 1e6},
		{name: "terrain.resolution_scale", value: c.Terrain.ResolutionScale, min: 0.1, max: 4.0},
		{name: "terrain.max_visibility_km", value: c.Terrain.MaxVisibilityKm, min: 1, max: 1e6},
		{name: "terrain.cluster_grid_m", value: c.Terrain.ClusterGridM, min: 50, max: 1e6},
		{name: "roads.walking_speed_kmh", value: c.Roads.WalkingSpeedKmh, min: 0.5, max: 10},
		{name: "roads.driving_speed_kmh", value: c.Roads.DrivingSpeedKmh, min: 5, max: 150},
		{name: "roads.max_walk_minutes", value: c.Roads.MaxWalkMinutes, min: 1, max: 180},
		{name: "visibility.observer_eye_height_m", value: c.Visibility.ObserverEyeHeightM, min: 0.5, max: 3},
		{name: "visibility.obstruction_start_m", value: c.Visibility.ObstructionStartM, min: 0, max: 1e6},
		{name: "visibility.obstruction_height_m", value: c.Visibility.ObstructionHeightM, min: 0, max: 1e6},
		{name: "visibility.min_visibility_miles", value: c.Visibility.MinVisibilityMiles, min: 0.1, max: 1e6},
		{name: "visibility.min_field_of_view_deg", value: c.Visibility.MinFieldOfViewDeg, min: 1, max: 360},
		{name: "visibility.azimuth_deg", value: c.Visibility.AzimuthDeg, min: 0, max: 360, maxExclusive: true},
		{name: "visibility.rays_full_circle", value: float64(c.Visibility.RaysFullCircle), min: 8, max: 720},
		{name: "output.results_limit", value: float64(c.Output.ResultsLimit), min: 1, max: 100},
	}
	for _, b := range bounds {
		if err := b.check(); err != nil {
			return err
		}
	}
	if c.Terrain.Neighborhood%2 == 0 {
		return fmt.Errorf("config: terrain.neighborhood = %d must be odd: %w", c.Terrain.Neighborhood, status.InvalidInput)
	}
	if c.Roads.MaxDriveMinutes != nil {
		if *c.Roads.MaxDriveMinutes < 1 || *c.Roads.MaxDriveMinutes > 600 {
			return fmt.Errorf("config: roads.max_drive_minutes = %v out of range [1, 600]: %w", *c.Roads.MaxDriveMinutes, status.OutOfRange)
		}
	}
	return nil
}
