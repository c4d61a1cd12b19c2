package cmd

import (
	"fmt"

	"github.com/jinyuli/uvm/src/internal/runtime"
	"github.com/jinyuli/uvm/src/internal/tui"
	"github.com/jinyuli/uvm/src/internal/ui"
	"github.com/spf13/cobra"
)

var (
	listLocal  bool
	listFilter string
	listVendor string
)

var listCmd = &cobra.Command{
	Use:     "list <language>",
	Aliases: []string{"ls"},
	Short:   "List available or installed versions",
	Long: `List the published versions of a language with their installed state.

Examples:
  uvm list go
  uvm list node --filter 20
  uvm list java --vendor corretto
  uvm list go --local           # Installed versions only, no network`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(args[0], listVendor)
		if err != nil {
			return err
		}
		lang := m.Language()
		opts := runtime.ListOptions{LocalOnly: listLocal, Filter: listFilter}

		var versions []runtime.ListedVersion
		fetch := func() error {
			var err error
			versions, err = m.List(cmd.Context(), opts)
			return err
		}
		if listLocal {
			err = fetch()
		} else {
			err = ui.WithSpinner(fmt.Sprintf("Fetching %s versions...", lang.DisplayName()), fetch)
		}
		if err != nil {
			return describeError(lang.Name(), err)
		}

		if len(versions) == 0 {
			if listLocal {
				ui.Info("No %s versions installed", lang.DisplayName())
				ui.Info("Install one with: uvm install %s <version>", lang.Name())
			} else {
				ui.Info("No %s versions found", lang.DisplayName())
			}
			return nil
		}

		title := lang.DisplayName() + " versions"
		if listLocal {
			title = "Installed " + title
		}
		ui.Println("%s", tui.VersionTable(title, versions).Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listLocal, "local", false, "Only list installed versions")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Only list versions containing this text")
	addVendorFlag(listCmd, &listVendor)
}
