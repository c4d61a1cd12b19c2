package cmd

import (
	"fmt"
	goruntime "runtime"

	"github.com/jinyuli/uvm/src/internal/tui"
	"github.com/spf13/cobra"
)

// Version can be set at build time using ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the uvm version",
	Long:  `Display the current version of uvm.`,
	Run: func(cmd *cobra.Command, args []string) {
		content := fmt.Sprintf("uvm %s %s", tui.RenderVersion(Version),
			tui.RenderMuted(goruntime.GOOS+"/"+goruntime.GOARCH))
		fmt.Println(tui.RenderInfoBox(content))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
