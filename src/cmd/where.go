package cmd

import (
	"github.com/jinyuli/uvm/src/internal/ui"
	"github.com/spf13/cobra"
)

var whereVendor string

var whereCmd = &cobra.Command{
	Use:   "where <language> [version]",
	Short: "Show the installation directory of a version",
	Long: `Display the full path of an installed version.

If no version is given, shows the location of the current version.

Examples:
  uvm where go 1.21.5
  uvm where java 21.0.1 --vendor corretto
  uvm where node              # Shows the current version location`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(args[0], whereVendor)
		if err != nil {
			return err
		}
		lang := m.Language()

		var version string
		if len(args) == 1 {
			current, ok := m.Current()
			if !ok {
				ui.Warning("No %s version is in use", lang.DisplayName())
				ui.Info("Specify a version: uvm where %s <version>", lang.Name())
				return nil
			}
			ui.Debug("Using current version: %s", current)
			version = current
		} else {
			version = args[1]
		}

		dir, err := m.VersionPath(version)
		if err != nil {
			return describeError(lang.Name(), err)
		}

		// Plain output so the path can be captured by scripts
		ui.Println("%s", dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whereCmd)
	addVendorFlag(whereCmd, &whereVendor)
}
