package cmd

import (
	"path/filepath"

	"github.com/jinyuli/uvm/src/internal/constants"
	"github.com/jinyuli/uvm/src/internal/runtime"
	"github.com/jinyuli/uvm/src/internal/ui"
	"github.com/spf13/cobra"
)

var (
	venvDir    string
	venvVendor string
)

var venvCmd = &cobra.Command{
	Use:   "venv <language> <version>",
	Short: "Create a virtual environment for an installed version",
	Long: `Create a directory linking an installed version together with activate and
deactivate scripts that put it on PATH for the current shell only.

Examples:
  uvm venv go 1.21.5
  uvm venv node 20.10.0 --dir .node-env
  source .venv/activate.sh`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(args[0], venvVendor)
		if err != nil {
			return err
		}
		lang := m.Language()
		name := m.InstalledName(args[1])

		outcome, err := m.CreateEnv(args[1], venvDir)
		if err != nil {
			return describeError(lang.Name(), err)
		}

		if outcome == runtime.EnvAlreadyConfigured {
			ui.Info("%s already uses %s %s", venvDir, lang.DisplayName(), ui.HighlightVersion(name))
			return nil
		}

		ui.Success("Created %s with %s %s", venvDir, lang.DisplayName(), ui.HighlightVersion(name))
		scripts := lang.Scripts(m.GOOS())
		if len(scripts) > 0 {
			ui.Info("Activate it with: %s", activateCommand(m.GOOS(), filepath.Join(venvDir, scripts[0].Name)))
		}
		return nil
	},
}

func activateCommand(goos, script string) string {
	if goos == constants.OSWindows {
		return ". " + script
	}
	return "source " + script
}

func init() {
	rootCmd.AddCommand(venvCmd)
	venvCmd.Flags().StringVar(&venvDir, "dir", constants.DefaultEnvDir, "Directory of the virtual environment")
	addVendorFlag(venvCmd, &venvVendor)
}
