package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/viktor-yakubiv/lp/pkg/config"
	"github.com/viktor-yakubiv/lp/pkg/exporter"
	"github.com/viktor-yakubiv/lp/pkg/scraper"
	"github.com/viktor-yakubiv/lp/pkg/timetable"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Directly export a group's timetable to an ICS file",
	Long:  `Export the timetable of one group to an ICS calendar with an event for every lesson of the semester.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		institute, _ := cmd.Flags().GetString("institute")
		group, _ := cmd.Flags().GetString("group")
		output, _ := cmd.Flags().GetString("output")
		weeks, _ := cmd.Flags().GetInt("weeks")
		subgroup, _ := cmd.Flags().GetInt("subgroup")
		if institute == "" {
			institute = cfg.SavedInstitute
		}
		if group == "" {
			group = cfg.SavedGroup
		}
		if institute == "" || group == "" {
			return fmt.Errorf("--institute and --group are required (or pick them with the interactive command)")
		}

		if start, _ := cmd.Flags().GetString("semester-start"); start != "" {
			cfg.SemesterStart = start
		}
		semesterStart, err := cfg.ParseSemesterStart()
		if err != nil {
			return err
		}

		client := newClient(cfg)
		target := scraper.Target{Institute: institute, Group: group}
		var result *timetable.Result

		_ = spinner.New().
			Title(fmt.Sprintf("Exporting timetable for group %s to %s...", group, output)).
			Context(cmd.Context()).
			Action(func() {
				result, err = client.FetchTimetable(cmd.Context(), timetable.NewParser(timetable.DefaultVocabulary()), target)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch timetable: %w", err)
		}

		if len(result.Lessons) == 0 {
			return fmt.Errorf("no lessons found for group %s", target)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		err = exporter.GenerateICS(result, exporter.ICSOptions{
			SemesterStart: semesterStart,
			Weeks:         weeks,
			Subgroup:      subgroup,
		}, file)
		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully exported %d lessons to %s\n", len(result.Lessons), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("institute", "", "Institute code (defaults to the saved one)")
	exportCmd.Flags().StringP("group", "g", "", "Group code (defaults to the saved one)")
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	exportCmd.Flags().String("semester-start", "", "First day of the semester, "+time.DateOnly)
	exportCmd.Flags().Int("weeks", 16, "Number of weeks in the semester")
	exportCmd.Flags().Int("subgroup", 0, "Keep only this subgroup's lessons (0 keeps all)")
}
