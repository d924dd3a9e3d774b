package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/viktor-yakubiv/lp/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage lptimetable configuration",
	Long:  "View or edit your local configuration settings (schedule address, output, MongoDB, semester start).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false
		set := func(flag string, dst *string) {
			if cmd.Flags().Changed(flag) {
				*dst, _ = cmd.Flags().GetString(flag)
				changed = true
			}
		}
		set("set-base-url", &cfg.BaseURL)
		set("set-output", &cfg.Output)
		set("set-mongo", &cfg.MongoURI)
		set("set-semester-start", &cfg.SemesterStart)

		if changed {
			if cfg.SemesterStart != "" {
				if _, err := cfg.ParseSemesterStart(); err != nil {
					return err
				}
			}
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✅ Configuration saved")
			return nil
		}

		// If no flags are given, print the effective configuration
		path, err := config.Path()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", path, data)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-base-url", "", "Set the schedule page address")
	configCmd.Flags().String("set-output", "", "Set the default output path")
	configCmd.Flags().String("set-mongo", "", "Set the MongoDB URI results are stored in")
	configCmd.Flags().String("set-semester-start", "", "Set the first day of the semester, "+time.DateOnly)
}
