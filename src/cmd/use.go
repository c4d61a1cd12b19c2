package cmd

import (
	"github.com/jinyuli/uvm/src/internal/runtime"
	"github.com/jinyuli/uvm/src/internal/ui"
	"github.com/spf13/cobra"
)

var useVendor string

var useCmd = &cobra.Command{
	Use:   "use <language> <version>",
	Short: "Switch the current version",
	Long: `Point the current link of a language at an installed version.

Examples:
  uvm use go 1.21.5
  uvm use node 20.10.0
  uvm use java 21 --vendor corretto`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(args[0], useVendor)
		if err != nil {
			return err
		}
		lang := m.Language()
		name := m.InstalledName(args[1])

		outcome, err := m.Use(args[1])
		if err != nil {
			return describeError(lang.Name(), err)
		}

		switch outcome {
		case runtime.UseAlreadyInUse:
			ui.Info("%s %s is already in use", lang.DisplayName(), ui.HighlightVersion(name))
		case runtime.UseSuccessNeedsPathHint:
			ui.Success("Now using %s %s", lang.DisplayName(), ui.HighlightVersion(name))
			ui.Info("%s", lang.EnvHint(m.Dirs()))
		default:
			ui.Success("Now using %s %s", lang.DisplayName(), ui.HighlightVersion(name))
		}
		return nil
	},
}

var unuseCmd = &cobra.Command{
	Use:   "unuse <language>",
	Short: "Stop using any version of a language",
	Long: `Remove the current link of a language. Installed versions are kept.

Example:
  uvm unuse node`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(args[0], "")
		if err != nil {
			return err
		}
		lang := m.Language()

		current, ok := m.Current()
		if !ok {
			ui.Info("No %s version is in use", lang.DisplayName())
			return nil
		}
		if err := m.Unuse(); err != nil {
			return err
		}
		ui.Success("Stopped using %s %s", lang.DisplayName(), ui.HighlightVersion(current))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(unuseCmd)
	addVendorFlag(useCmd, &useVendor)
}
