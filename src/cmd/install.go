package cmd

import (
	"github.com/jinyuli/uvm/src/internal/runtime"
	"github.com/jinyuli/uvm/src/internal/ui"
	"github.com/spf13/cobra"
)

var (
	installNoUse  bool
	installVendor string
)

var installCmd = &cobra.Command{
	Use:   "install <language> <version>",
	Short: "Install a language version",
	Long: `Install a version of a language and make it the current version.

The version is an exact version or a range: "1.21" picks the newest 1.21.x,
"~20.10" the newest 20.10.x. Archives are verified against their published
checksum before they are unpacked.

Examples:
  uvm install go 1.21.5
  uvm install node 20
  uvm install java 21 --vendor corretto
  uvm install go 1.22 --no-use`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd, args[0], args[1])
	},
}

func runInstall(cmd *cobra.Command, language, version string) error {
	m, err := newManager(language, installVendor)
	if err != nil {
		return err
	}
	lang := m.Language()

	ui.Progress("Resolving %s %s...", lang.DisplayName(), version)
	result, err := m.Install(cmd.Context(), version, runtime.InstallOptions{NoUse: installNoUse})
	if err != nil {
		ui.Debug("Installation failed: %v", err)
		return describeError(lang.Name(), err)
	}

	switch result.Outcome {
	case runtime.InstallAlreadyInstalled:
		ui.Info("%s %s is already installed", lang.DisplayName(), ui.HighlightVersion(result.Name))
		ui.Info("Switch to it with: uvm use %s %s", lang.Name(), result.Name)
	case runtime.InstallSuccessNeedsPathHint:
		ui.Success("Installed %s %s", lang.DisplayName(), ui.HighlightVersion(result.Name))
		ui.Info("%s", lang.EnvHint(m.Dirs()))
	default:
		ui.Success("Installed %s %s", lang.DisplayName(), ui.HighlightVersion(result.Name))
		if installNoUse {
			ui.Info("Switch to it with: uvm use %s %s", lang.Name(), result.Name)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().BoolVar(&installNoUse, "no-use", false, "Do not make the installed version current")
	addVendorFlag(installCmd, &installVendor)
}
