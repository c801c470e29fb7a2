package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sytelus/highpoint/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "write a settings file prefilled with default values",
	Long: `Write a YAML settings file prefilled with default values for every
recognized option.

If FILE is not provided, 'highpoint.yml' is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "highpoint.yml"
		if len(args) >= 1 {
			path = args[0]
		}

		ok, err := confirmIfExists(path, fmt.Sprintf("file '%s' already exists, overwrite? [y/N]", path))
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if !ok {
			fmt.Println("aborted by user")
			return nil
		}

		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("settings written to '%s'\n", path)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
