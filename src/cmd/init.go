package cmd

import (
	"github.com/jinyuli/uvm/src/internal/config"
	"github.com/jinyuli/uvm/src/internal/runtime"
	"github.com/jinyuli/uvm/src/internal/ui"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the uvm directories",
	Long: `Create the uvm home directory with the data, cache and log folders of every
supported language. Other commands create what they need on demand, so this is
only required to inspect or pre-provision the layout.

Example:
  uvm init`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.Header("Initializing uvm...")
		paths := config.DefaultPaths()

		err := ui.WithSpinner("Creating directories...", func() error {
			return paths.EnsureDirectories(runtime.List()...)
		})
		if err != nil {
			return err
		}

		ui.Info("Home: %s", ui.Highlight(paths.Root))
		ui.Info("Data: %s", ui.Highlight(paths.Data))
		ui.Success("uvm initialized successfully!")
		ui.Info("\nNext steps:")
		ui.Info("  1. Run: uvm install <language> <version>")
		ui.Info("  2. Run: uvm setup <language>")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
