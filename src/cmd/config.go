package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/jinyuli/uvm/src/internal/config"
	"github.com/jinyuli/uvm/src/internal/download"
	"github.com/jinyuli/uvm/src/internal/ui"
	"github.com/spf13/cobra"
)

var (
	configSetProxy   string
	configSetDataDir string
	configKeyProxy   bool
	configKeyDataDir bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change uvm settings",
	Long: `Manage the global settings stored in the uvm config file.

Keys:
  proxy      HTTP(S) proxy used for every download
  data_dir   directory holding installed versions

Per-language proxies, mirrors and the default Java vendor are edited
directly in the file under [go], [node] and [java].

Examples:
  uvm config get
  uvm config get proxy
  uvm config set proxy http://127.0.0.1:7890
  uvm config set --data-dir /opt/uvm
  uvm config del --proxy`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print settings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		keys := selectedKeys(args)
		if len(keys) == 0 {
			keys = config.SettingKeys
		}
		for _, key := range keys {
			value, err := settings.Get(key)
			if err != nil {
				return err
			}
			if len(keys) == 1 {
				ui.Println("%s", value)
				continue
			}
			ui.Println("%s = %q", key, value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key value]",
	Short: "Change a setting",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || len(args) == 2 {
			return nil
		}
		return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		values := map[string]string{}
		if len(args) == 2 {
			values[args[0]] = args[1]
		}
		if cmd.Flags().Changed("proxy") {
			values[config.KeyProxy] = configSetProxy
		}
		if cmd.Flags().Changed("data-dir") {
			values[config.KeyDataDir] = configSetDataDir
		}
		if len(values) == 0 {
			return fmt.Errorf("nothing to set: give a key and value, --proxy or --data-dir")
		}

		settings, err := loadSettings()
		if err != nil {
			return err
		}
		for key, value := range values {
			if key == config.KeyDataDir && value != "" {
				abs, err := filepath.Abs(value)
				if err != nil {
					return fmt.Errorf("invalid data_dir %q: %w", value, err)
				}
				value = abs
			}
			if key == config.KeyProxy && value != "" {
				if _, err := download.NewClient(value); err != nil {
					return err
				}
			}
			if err := settings.Set(key, value); err != nil {
				return err
			}
			ui.Success("Set %s to %s", key, ui.Highlight(value))
		}
		return saveSettings(settings)
	},
}

var configDelCmd = &cobra.Command{
	Use:     "del [key]",
	Aliases: []string{"delete"},
	Short:   "Reset a setting to its default",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := selectedKeys(args)
		if len(keys) == 0 {
			return fmt.Errorf("nothing to delete: give a key, --proxy or --data-dir")
		}

		settings, err := loadSettings()
		if err != nil {
			return err
		}
		for _, key := range keys {
			if err := settings.Delete(key); err != nil {
				return err
			}
			ui.Success("Removed %s", key)
		}
		return saveSettings(settings)
	},
}

// selectedKeys merges a positional key with the --proxy and --data-dir
// switches
func selectedKeys(args []string) []string {
	var keys []string
	if len(args) == 1 {
		keys = append(keys, args[0])
	}
	if configKeyProxy {
		keys = append(keys, config.KeyProxy)
	}
	if configKeyDataDir {
		keys = append(keys, config.KeyDataDir)
	}
	return keys
}

func loadSettings() (*config.Settings, error) {
	return config.LoadSettings(config.DefaultPaths().Config)
}

func saveSettings(settings *config.Settings) error {
	path := config.DefaultPaths().Config
	if err := settings.Save(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	ui.Debug("Saved settings to %s", path)
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd, configSetCmd, configDelCmd)

	configSetCmd.Flags().StringVar(&configSetProxy, "proxy", "", "Proxy URL, e.g. http://127.0.0.1:7890")
	configSetCmd.Flags().StringVar(&configSetDataDir, "data-dir", "", "Directory holding installed versions")

	for _, c := range []*cobra.Command{configGetCmd, configDelCmd} {
		c.Flags().BoolVar(&configKeyProxy, "proxy", false, "Select the proxy setting")
		c.Flags().BoolVar(&configKeyDataDir, "data-dir", false, "Select the data_dir setting")
	}
}
