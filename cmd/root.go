package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/viktor-yakubiv/lp/pkg/config"
	"github.com/viktor-yakubiv/lp/pkg/logger"
	"github.com/viktor-yakubiv/lp/pkg/scraper"
)

var rootCmd = &cobra.Command{
	Use:   "lptimetable",
	Short: "Parses Lviv Polytechnic National University's timetables",
	Long: `lptimetable fetches the students schedule of Lviv Polytechnic National University
and converts every group's timetable into JSON records of lessons, teachers and themes.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newClient(cfg *config.AppConfig) *scraper.Client {
	return scraper.NewClient(scraper.Options{
		BaseURL:  cfg.BaseURL,
		Timeout:  cfg.Timeout,
		Interval: cfg.RequestInterval,
	})
}

// logLevel maps the -q/-v flags of a command to a logger level; quiet wins.
func logLevel(cmd *cobra.Command) logger.Level {
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")
	switch {
	case quiet:
		return logger.LevelQuiet
	case verbose:
		return logger.LevelVerbose
	default:
		return logger.LevelNormal
	}
}
