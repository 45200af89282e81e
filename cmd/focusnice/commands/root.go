package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/focusnice/focusnice/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "focusnice",
	Short: "focusnice - scheduling priority for the focused X11 window",
	Long: `focusnice watches the X11 root window for focus changes and adjusts the
scheduling priority (niceness) of whichever process owns the focused
window, restoring the previous priority when focus moves away.

Raising priority beyond the default requires permission to use negative
nice levels; grant it per user or group in /etc/security/limits.conf,
for example:

  username        -       nice            -10

Run it inside the X session you want adjusted. There is no configuration
file: everything is flags and FOCUSNICE_* environment variables.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(viper.GetString("log_level"), viper.GetBool("log_json"))
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "emit structured JSON logs instead of console output")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_json", rootCmd.PersistentFlags().Lookup("log-json"))

	viper.SetEnvPrefix("FOCUSNICE")
	viper.AutomaticEnv()
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
