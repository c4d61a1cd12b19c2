package cmd

import (
	"github.com/jinyuli/uvm/src/internal/catalog"
	"github.com/jinyuli/uvm/src/internal/config"
	"github.com/jinyuli/uvm/src/internal/runtime"
	"github.com/jinyuli/uvm/src/internal/ui"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the catalog cache",
	Long: `Version catalogs are cached for an hour. Use --refresh on any command to
bypass the cache once, or clear it entirely.

Examples:
  uvm cache clear
  uvm cache clear node`,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [language]",
	Short: "Remove cached catalogs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := config.DefaultPaths()

		names := runtime.List()
		if len(args) == 1 {
			lang, err := lookupLanguage(args[0])
			if err != nil {
				return err
			}
			names = []string{lang.Name()}
		}

		for _, name := range names {
			dir := paths.LanguageCache(name)
			ui.Debug("Clearing %s", dir)
			if err := catalog.ClearCache(dir); err != nil {
				return err
			}
		}

		ui.Success("Cleared the catalog cache")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
