package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/viktor-yakubiv/lp/pkg/config"
	"github.com/viktor-yakubiv/lp/pkg/exporter"
	"github.com/viktor-yakubiv/lp/pkg/scraper"
	"github.com/viktor-yakubiv/lp/pkg/timetable"
)

var accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Pick an institute and group interactively",
	Long:  `Browse institutes and groups, then print (or save) the chosen group's timetable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		client := newClient(cfg)

		fmt.Fprintln(cmd.ErrOrStderr(), accentStyle.Render("Lviv Polytechnic timetable"))

		var institutes []scraper.Option
		_ = spinner.New().
			Title("Fetching institutes...").
			Context(ctx).
			Action(func() { institutes, err = client.FetchInstitutes(ctx) }).
			Run()
		if err != nil {
			return fmt.Errorf("failed to fetch institutes: %w", err)
		}

		institute := cfg.SavedInstitute
		if err := huh.NewSelect[string]().
			Title("Select your institute").
			Options(huhOptions(institutes)...).
			Value(&institute).
			Filtering(true).
			Height(12).
			Run(); err != nil {
			return err
		}

		var groups []scraper.Option
		_ = spinner.New().
			Title(fmt.Sprintf("Fetching groups of %s...", institute)).
			Context(ctx).
			Action(func() { groups, err = client.FetchGroups(ctx, institute) }).
			Run()
		if err != nil {
			return err
		}
		if len(groups) == 0 {
			return fmt.Errorf("institute %s lists no groups", institute)
		}

		group := cfg.SavedGroup
		save := true
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Select your group").
					Description("Start typing to filter.").
					Options(huhOptions(groups)...).
					Value(&group).
					Filtering(true).
					Height(12),
				huh.NewConfirm().
					Title("Remember this group?").
					Value(&save),
			),
		).Run(); err != nil {
			return err
		}

		target := scraper.Target{Institute: institute, Group: group}
		var result *timetable.Result
		_ = spinner.New().
			Title(fmt.Sprintf("Fetching timetable for group %s...", target)).
			Context(ctx).
			Action(func() {
				result, err = client.FetchTimetable(ctx, timetable.NewParser(timetable.DefaultVocabulary()), target)
			}).
			Run()
		if err != nil {
			return err
		}

		if save {
			cfg.SavedInstitute, cfg.SavedGroup = institute, group
			if err := config.Save(cfg); err != nil {
				return err
			}
		}

		w := &exporter.JSONWriter{Path: cfg.Output, Pretty: true, Stdout: cmd.OutOrStdout()}
		return w.WriteResult(ctx, result)
	},
}

func huhOptions(options []scraper.Option) []huh.Option[string] {
	out := make([]huh.Option[string], 0, len(options))
	for _, opt := range options {
		label := opt.Value
		if opt.Caption != "" && opt.Caption != opt.Value {
			label = fmt.Sprintf("%s (%s)", opt.Value, opt.Caption)
		}
		out = append(out, huh.NewOption(label, opt.Value))
	}
	return out
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
