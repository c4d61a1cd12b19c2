package cmd

import (
	"path/filepath"

	"github.com/jinyuli/uvm/src/internal/runtime"
	"github.com/jinyuli/uvm/src/internal/tui"
	"github.com/jinyuli/uvm/src/internal/ui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current [language]",
	Short: "Show the version in use",
	Long: `Show the version the current link of a language points at, or of every
language when none is given.

Examples:
  uvm current
  uvm current go`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names := runtime.List()
		if len(args) == 1 {
			lang, err := lookupLanguage(args[0])
			if err != nil {
				return err
			}
			names = []string{lang.Name()}
		}

		rows := make([]tui.CurrentRow, 0, len(names))
		for _, name := range names {
			m, err := newManager(name, "")
			if err != nil {
				return err
			}
			row := tui.CurrentRow{Language: m.Language().DisplayName()}
			if version, ok := m.Current(); ok {
				row.Version = version
				row.Path = filepath.Join(m.Dirs().Versions, version)
			}
			rows = append(rows, row)
		}

		if len(args) == 1 && rows[0].Version == "" {
			ui.Info("No %s version is in use", rows[0].Language)
			return nil
		}
		if len(args) == 0 && !lo.SomeBy(rows, func(r tui.CurrentRow) bool { return r.Version != "" }) {
			ui.Info("No version is in use")
			ui.Info("Install one with: uvm install <language> <version>")
			return nil
		}

		ui.Println("%s", tui.CurrentTable(rows).Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(currentCmd)
}
