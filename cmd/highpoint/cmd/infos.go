package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sytelus/highpoint/internal/config"
	"github.com/sytelus/highpoint/internal/geoutil"
)

var infosConfigPath string

var infosCmd = &cobra.Command{
	Use:   "infos",
	Short: "print the effective configuration and resolved UTM zone",
	Long: `Read a settings file, validate it, and print the effective
configuration along with the UTM zone/EPSG code that the observer resolves
to, before running a full search.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(infosConfigPath)
		if err != nil {
			return err
		}

		zone := geoutil.ZoneForLonLat(cfg.Observer.LongitudeDeg, cfg.Observer.LatitudeDeg)
		fmt.Printf("observer: lat=%.5f lon=%.5f altitude_m=%.1f\n",
			cfg.Observer.LatitudeDeg, cfg.Observer.LongitudeDeg, cfg.Observer.AltitudeM)
		fmt.Printf("utm zone: %d%s (EPSG:%d)\n", zone.Number, hemisphereLabel(zone.Northern), zone.EPSG())
		fmt.Printf("terrain: search_radius_km=%.1f resolution_scale=%.2f max_visibility_km=%.1f cluster_grid_m=%.0f\n",
			cfg.Terrain.SearchRadiusKm, cfg.Terrain.ResolutionScale, cfg.Terrain.MaxVisibilityKm, cfg.Terrain.ClusterGridM)
		fmt.Printf("visibility: eye_height_m=%.1f obstruction_start_m=%.1f obstruction_height_m=%.1f rays=%d min_fov_deg=%.0f\n",
			cfg.Visibility.ObserverEyeHeightM, cfg.Visibility.ObstructionStartM, cfg.Visibility.ObstructionHeightM,
			cfg.Visibility.RaysFullCircle, cfg.Visibility.MinFieldOfViewDeg)
		fmt.Printf("roads: walking_speed_kmh=%.1f driving_speed_kmh=%.1f max_walk_minutes=%.0f\n",
			cfg.Roads.WalkingSpeedKmh, cfg.Roads.DrivingSpeedKmh, cfg.Roads.MaxWalkMinutes)
		fmt.Printf("output: results_limit=%d\n", cfg.Output.ResultsLimit)
		return nil
	},
}

func hemisphereLabel(northern bool) string {
	if northern {
		return "N"
	}
	return "S"
}

func init() {
	RootCmd.AddCommand(infosCmd)
	infosCmd.Flags().StringVar(&infosConfigPath, "config", "highpoint.yml", "settings file")
}
