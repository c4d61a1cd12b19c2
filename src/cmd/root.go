// Package cmd implements the CLI commands for uvm
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/jinyuli/uvm/src/internal/config"
	"github.com/jinyuli/uvm/src/internal/tui"
	"github.com/jinyuli/uvm/src/internal/ui"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	refresh bool
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "uvm",
	Short:         "Universal Version Manager",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.CheckVerboseEnv()
		if verbose {
			ui.SetVerbose(true)
		}
		if err := ui.InitLogging(config.DefaultPaths().Log); err != nil {
			ui.Warning("Logging disabled: %v", err)
		}
		ui.Debug("uvm %s: %v", Version, os.Args[1:])
	},
}

// Execute runs the command line and exits non-zero when a command fails
func Execute() {
	// Check for --version or -v flag before Cobra parses
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-v" {
			versionCmd.Run(versionCmd, []string{})
			return
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	ui.CloseLogging()

	if err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	// Hide the completion command until we implement it
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output for debugging")
	rootCmd.PersistentFlags().BoolVar(&refresh, "refresh", false, "Ignore cached catalogs and fetch them again")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Abort HTTP requests that take longer than this, e.g. 10m (0 never aborts)")

	// Set custom usage and help functions with TUI table for commands
	rootCmd.SetUsageFunc(customUsage)
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != rootCmd && cmd.Long != "" {
			fmt.Println(cmd.Long)
			fmt.Println()
		}
		_ = customUsage(cmd)
	})
}

func customUsage(cmd *cobra.Command) error {
	if cmd != rootCmd {
		fmt.Printf("Usage:\n  %s\n", cmd.UseLine())
		if cmd.HasAvailableSubCommands() {
			table := tui.NewTable("Command", "Description")
			for _, c := range cmd.Commands() {
				if c.IsAvailableCommand() {
					table.AddRow(c.Name(), c.Short)
				}
			}
			fmt.Printf("\n%s\n", table.Render())
		}
		if cmd.HasAvailableLocalFlags() {
			fmt.Printf("\nFlags:\n%s", cmd.LocalFlags().FlagUsages())
		}
		return nil
	}

	const tableWidth = 95 // Consistent width for all tables

	headerTable := tui.NewTable("")
	headerTable.SetTitle(cmd.Short)
	headerTable.HideHeader()
	headerTable.SetMinWidth(tableWidth)
	headerTable.AddRow("uvm installs and switches versions of Go, Node.js and Java (OpenJDK, Corretto)")
	headerTable.AddRow("side by side, with per-project virtual environments on Windows, MacOS and Linux.")

	fmt.Println(headerTable.Render())
	fmt.Println()

	table := tui.NewTable("Command", "Description")
	table.SetTitle("Available Commands")
	table.SetMinWidth(tableWidth)

	for _, c := range cmd.Commands() {
		// Skip hidden commands and completion
		if c.Hidden || c.Name() == "completion" || c.Name() == "help" {
			continue
		}
		table.AddRow(c.Name(), c.Short)
	}

	fmt.Println(table.Render())
	fmt.Println()
	fmt.Println(tui.RenderMuted("Global flags: --verbose, --refresh, --timeout"))

	return nil
}
