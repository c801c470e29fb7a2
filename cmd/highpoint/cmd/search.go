package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sytelus/highpoint/internal/config"
	"github.com/sytelus/highpoint/internal/fixture"
	"github.com/sytelus/highpoint/internal/runctx"
	"github.com/sytelus/highpoint/pipeline"
)

var (
	searchConfigPath string
	searchDEMPath    string
	searchRoadsPath  string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "run the viewpoint search pipeline",
	Long: `Run the full viewpoint search: extract candidates from the DEM,
evaluate visibility and drivability for each, score and rank the survivors.

DEM and road network are read from small JSON fixtures (--dem, --roads);
real dataset acquisition and raster/vector parsing are external concerns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(searchConfigPath)
		if err != nil {
			return err
		}
		grid, err := fixture.LoadDEM(searchDEMPath)
		if err != nil {
			return err
		}
		network, err := fixture.LoadRoads(searchRoadsPath)
		if err != nil {
			return err
		}

		rc := runctx.New(true)
		results, err := pipeline.Run(rc, cfg, grid, network)
		if err != nil {
			return err
		}

		for _, msg := range rc.Messages() {
			fmt.Printf("[%s] %s\n", msg.Category, msg.Text)
		}
		fmt.Printf("total: %s\n", rc.Elapsed(runctx.TimerTotal))

		if len(results) == 0 {
			fmt.Println("no viewpoints found")
			return nil
		}
		for i, r := range results {
			fmt.Printf("%2d. score=%.3f lat=%.5f lon=%.5f elev=%.1fm fov=%.0fdeg walk=%.1fmin id=%s\n",
				i+1, r.Score, r.CandidateLatDeg, r.CandidateLonDeg, r.ElevationM,
				r.Visibility.ActualFOVDeg, r.Drivability.WalkMinutes, r.ID)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&searchConfigPath, "config", "highpoint.yml", "settings file")
	searchCmd.Flags().StringVar(&searchDEMPath, "dem", "", "DEM fixture (JSON, required)")
	searchCmd.Flags().StringVar(&searchRoadsPath, "roads", "", "road network fixture (JSON, required)")
	searchCmd.MarkFlagRequired("dem")
	searchCmd.MarkFlagRequired("roads")
}
