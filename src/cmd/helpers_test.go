package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jinyuli/uvm/src/internal/config"
	"github.com/jinyuli/uvm/src/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	_ "github.com/jinyuli/uvm/src/runtimes/golang"
	_ "github.com/jinyuli/uvm/src/runtimes/java"
	_ "github.com/jinyuli/uvm/src/runtimes/node"
)

// setupHome points UVM_HOME at a fresh directory for one test
func setupHome(t *testing.T) *config.Paths {
	t.Helper()

	root := t.TempDir()
	t.Setenv(config.HomeEnvVar, root)
	t.Setenv("UVM_VERBOSE", "")
	config.ResetPathsCache()
	t.Cleanup(config.ResetPathsCache)
	t.Cleanup(ui.CloseLogging)

	return config.DefaultPaths()
}

// fakeInstall creates an installed version directory with a bin folder
func fakeInstall(t *testing.T, paths *config.Paths, language, name string) string {
	t.Helper()

	dir := filepath.Join(paths.Language(language).Versions, name)
	if err := os.MkdirAll(filepath.Join(dir, "bin"), 0755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
	return dir
}

// executeCommand runs the root command with args and returns what it
// printed on stdout and stderr
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var out bytes.Buffer
	restoreOut := ui.SetOutput(&out, &out)
	defer restoreOut()
	restoreIn := ui.SetInput(strings.NewReader(stdin))
	defer restoreIn()

	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// resetFlags restores every flag to its default between runs, since
// cobra keeps parsed values on the package-level commands
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
