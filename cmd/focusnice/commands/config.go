package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Display the configuration "focusnice run" would use with the given flags
and FOCUSNICE_* environment variables. focusnice has no configuration
file, so this is the whole truth.`,
	Example: `  # Show effective configuration as YAML (default)
  focusnice config

  # Show effective configuration as JSON
  focusnice config --format json

  # What would an absolute adjustment look like?
  focusnice config --set -5`,
	RunE: runConfig,
}

var configFormat string

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVarP(&configFormat, "format", "f", "yaml", "output format (yaml or json)")
	configCmd.Flags().IntVar(&runRaise, "raise", -1, "niceness delta added to the focused process")
	configCmd.Flags().IntVar(&runSet, "set", 0, "absolute niceness applied to the focused process")
	configCmd.Flags().BoolVar(&runAPI, "api", false, "serve the read-only status API")
	configCmd.Flags().IntVar(&runAPIPort, "api-port", 8089, "status API port")
	configCmd.MarkFlagsMutuallyExclusive("raise", "set")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := buildRunConfig(cmd)
	if err != nil {
		return err
	}

	switch configFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(cfg)
	case "yaml":
		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(2)
		return encoder.Encode(cfg)
	default:
		return fmt.Errorf("unsupported format: %s (use 'yaml' or 'json')", configFormat)
	}
}
