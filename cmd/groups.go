package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/viktor-yakubiv/lp/pkg/config"
	"github.com/viktor-yakubiv/lp/pkg/exporter"
	"github.com/viktor-yakubiv/lp/pkg/scraper"
)

var groupsCmd = &cobra.Command{
	Use:   "groups [institute]",
	Short: "List institutes, or the groups of an institute",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		var options []scraper.Option
		title := "Fetching institutes..."
		if len(args) == 1 {
			title = fmt.Sprintf("Fetching groups of %s...", args[0])
		}

		_ = spinner.New().
			Title(title).
			Context(cmd.Context()).
			Action(func() {
				if len(args) == 1 {
					options, err = client.FetchGroups(cmd.Context(), args[0])
				} else {
					options, err = client.FetchInstitutes(cmd.Context())
				}
			}).
			Run()
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return exporter.Encode(cmd.OutOrStdout(), options, true)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, opt := range options {
			fmt.Fprintf(w, "%s\t%s\n", opt.Value, opt.Caption)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(groupsCmd)
	groupsCmd.Flags().Bool("json", false, "print the list as JSON")
}
