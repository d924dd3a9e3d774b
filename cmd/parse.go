package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/viktor-yakubiv/lp/pkg/config"
	"github.com/viktor-yakubiv/lp/pkg/exporter"
	"github.com/viktor-yakubiv/lp/pkg/logger"
	"github.com/viktor-yakubiv/lp/pkg/runner"
	"github.com/viktor-yakubiv/lp/pkg/scraper"
	"github.com/viktor-yakubiv/lp/pkg/store"
	"github.com/viktor-yakubiv/lp/pkg/timetable"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse the timetables of all or selected groups",
	Long: `Fetch the timetable of every group (or of the selected institutes and group)
and write the results as JSON to stdout, a combined file, per-group files or MongoDB.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		applyParseFlags(cmd, cfg)

		log := logger.New(cmd.ErrOrStderr(), logLevel(cmd), cfg.Pretty)
		client := newClient(cfg)
		ctx := cmd.Context()

		institutes, _ := cmd.Flags().GetStringSlice("institute")
		group, _ := cmd.Flags().GetString("group")

		var targets []scraper.Target
		if group != "" {
			if len(institutes) != 1 {
				return fmt.Errorf("--group needs exactly one --institute")
			}
			targets = []scraper.Target{{Institute: institutes[0], Group: group}}
		} else {
			log.Info("Fetching group list from\n  %s", cfg.BaseURL)
			fetch := func() { targets, err = client.FetchTargets(ctx, institutes...) }
			if log.Level() == logger.LevelNormal {
				_ = spinner.New().
					Title("Fetching institutes and groups...").
					Context(ctx).
					Action(fetch).
					Run()
			} else {
				fetch()
			}
			if err != nil {
				return fmt.Errorf("failed to fetch group list: %w", err)
			}
		}
		log.Data("Fetched groups:", targets)

		sinks := []runner.Sink{&exporter.JSONWriter{
			Path:   cfg.Output,
			Multi:  cfg.Multi || (cfg.Iterative && cfg.Output != ""),
			Pretty: cfg.Pretty,
			Stdout: cmd.OutOrStdout(),
		}}

		if cfg.MongoURI != "" {
			db, err := store.Open(ctx, cfg.MongoURI)
			if err != nil {
				return err
			}
			defer db.Close()
			sinks = append(sinks, db)
		}

		r := &runner.Runner{
			Source:    client,
			Parser:    timetable.NewParser(timetable.DefaultVocabulary()),
			Sinks:     sinks,
			Log:       log,
			Iterative: cfg.Iterative,
		}

		report, err := r.Run(ctx, targets)
		if err != nil {
			return err
		}
		if len(report.Failures) > 0 {
			return fmt.Errorf("%d of %d groups failed: %w", len(report.Failures), len(targets), report.Err())
		}
		return nil
	},
}

// applyParseFlags overrides config values with the flags given on the command line.
func applyParseFlags(cmd *cobra.Command, cfg *config.AppConfig) {
	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.Output, _ = flags.GetString("file")
	}
	if flags.Changed("iterative") {
		cfg.Iterative, _ = flags.GetBool("iterative")
	}
	if flags.Changed("multi") {
		cfg.Multi, _ = flags.GetBool("multi")
	}
	if flags.Changed("pretty") {
		cfg.Pretty, _ = flags.GetBool("pretty")
	}
	if flags.Changed("mongo") {
		cfg.MongoURI, _ = flags.GetString("mongo")
	}
	if flags.Changed("base-url") {
		cfg.BaseURL, _ = flags.GetString("base-url")
	}
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("file", "f", "", "output results to the file path; with --multi or --iterative, a directory for '{institute}_{group}.json' files")
	parseCmd.Flags().BoolP("iterative", "i", false, "write every group's result right after parsing it")
	parseCmd.Flags().BoolP("multi", "m", false, "write one file per group; works only when --file is passed")
	parseCmd.Flags().BoolP("quiet", "q", false, "suppress all logs except errors")
	parseCmd.Flags().BoolP("verbose", "v", false, "log all fetched values; ignored with --quiet")
	parseCmd.Flags().Bool("pretty", false, "indent JSON output and logged values")
	parseCmd.Flags().StringSlice("institute", nil, "parse only the groups of these institutes")
	parseCmd.Flags().String("group", "", "parse only this group (needs a single --institute)")
	parseCmd.Flags().String("mongo", "", "also store results in MongoDB at this URI")
	parseCmd.Flags().String("base-url", "", "schedule page address")
}
