package cmd

import (
	"github.com/jinyuli/uvm/src/internal/runtime"
	"github.com/jinyuli/uvm/src/internal/ui"
	"github.com/spf13/cobra"
)

var (
	uninstallYes    bool
	uninstallVendor string
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <language> <version>",
	Short: "Remove an installed version",
	Long: `Remove an installed version of a language.

When the version is the current one, the current link is removed as well.

Examples:
  uvm uninstall go 1.21.5
  uvm uninstall java corretto-21.0.1.12.1
  uvm uninstall node 20.10.0 --yes`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUninstall(args[0], args[1])
	},
}

func runUninstall(language, version string) error {
	m, err := newManager(language, uninstallVendor)
	if err != nil {
		return err
	}
	lang := m.Language()
	name := m.InstalledName(version)

	if _, err := m.VersionPath(version); err != nil {
		ui.Warning("%s %s is not installed", lang.DisplayName(), name)
		return nil
	}

	if current, ok := m.Current(); ok && current == name {
		ui.Warning("%s %s is the current version", lang.DisplayName(), name)
	}
	if !uninstallYes && !ui.Confirm("Remove "+lang.DisplayName()+" "+name+"?", false) {
		ui.Info("Uninstall canceled")
		return nil
	}

	outcome, err := m.Uninstall(version)
	if err != nil {
		return err
	}
	if outcome == runtime.UninstallNotInstalled {
		ui.Warning("%s %s is not installed", lang.DisplayName(), name)
		return nil
	}

	ui.Success("Removed %s %s", lang.DisplayName(), ui.HighlightVersion(name))
	return nil
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
	uninstallCmd.Flags().BoolVarP(&uninstallYes, "yes", "y", false, "Skip confirmation prompt")
	addVendorFlag(uninstallCmd, &uninstallVendor)
}
