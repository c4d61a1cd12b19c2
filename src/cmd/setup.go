package cmd

import (
	"github.com/jinyuli/uvm/src/internal/path"
	"github.com/jinyuli/uvm/src/internal/runtime"
	"github.com/jinyuli/uvm/src/internal/ui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup <language>",
	Short: "Add a language's current version to your shell environment",
	Long: `Persist the PATH entries and variables that make the current version of a
language visible in new shells.

On Windows this updates the user environment in the registry. Elsewhere a
block is appended to the configuration file of the detected shell (bash, zsh
or fish) after confirmation.

Example:
  uvm setup go`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(args[0], "")
		if err != nil {
			return err
		}
		lang := m.Language()

		block := shellBlock(lang.Name(), lang.ShellEnv(m.Dirs()))
		ui.Debug("Setup block for %s: %+v", lang.Name(), block)

		if err := path.Setup(block); err != nil {
			return err
		}
		if _, ok := m.Current(); !ok {
			ui.Info("No %s version is in use yet: uvm use %s <version>", lang.DisplayName(), lang.Name())
		}
		return nil
	},
}

// shellBlock converts a language environment into the block persisted by
// the path package
func shellBlock(language string, env runtime.ShellEnv) path.Block {
	return path.Block{
		Language: language,
		Vars: lo.Map(env.Vars, func(v runtime.EnvVar, _ int) path.Var {
			return path.Var{Name: v.Name, Value: v.Value}
		}),
		Path: env.Path,
	}
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
