package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/focusnice/focusnice/internal/api"
	"github.com/focusnice/focusnice/internal/config"
	"github.com/focusnice/focusnice/internal/focus"
	"github.com/focusnice/focusnice/internal/logger"
	"github.com/focusnice/focusnice/internal/priority"
	"github.com/focusnice/focusnice/internal/x11"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Watch focus changes and adjust process priority",
	Long: `Run the focus watcher. On every focus change the previously adjusted
process is restored first, then the newly focused window's owner is
adjusted. On SIGINT/SIGTERM/SIGHUP the adjustment is reverted before the
process terminates with the signal's conventional status.`,
	Example: `  # Raise the focused process by one niceness step (default)
  focusnice run

  # Raise by 10 steps
  focusnice run --raise -10

  # Pin the focused process to an absolute niceness
  focusnice run --set -5

  # Expose the read-only status API on localhost
  focusnice run --api --api-port 8089`,
	RunE: runRun,
}

var (
	runRaise   int
	runSet     int
	runAPI     bool
	runAPIPort int
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&runRaise, "raise", -1, "niceness delta added to the focused process")
	runCmd.Flags().IntVar(&runSet, "set", 0, "absolute niceness applied to the focused process")
	runCmd.Flags().BoolVar(&runAPI, "api", false, "serve the read-only status API")
	runCmd.Flags().IntVar(&runAPIPort, "api-port", 8089, "status API port")
	runCmd.MarkFlagsMutuallyExclusive("raise", "set")
}

func buildRunConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	cfg.LogLevel = viper.GetString("log_level")
	cfg.LogJSON = viper.GetBool("log_json")

	if cmd.Flags().Changed("set") {
		cfg.Priority = config.Priority{Mode: config.ModeAbsolute, Value: runSet}
	} else {
		cfg.Priority = config.Priority{Mode: config.ModeAdditive, Value: runRaise}
	}
	cfg.API.Enabled = runAPI
	cfg.API.Port = runAPIPort

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("run")

	cfg, err := buildRunConfig(cmd)
	if err != nil {
		return err
	}

	client, err := x11.Dial()
	if err != nil {
		return fmt.Errorf("failed to open display: %w", err)
	}
	defer client.Close()

	ctl := priority.UnixController{}
	store := priority.NewStore(ctl)
	// If the event loop dies (connection loss), put the adjusted process
	// back before reporting the error. Signal exits bypass this defer;
	// they restore in the handler below.
	defer store.Restore()
	handler := focus.NewHandler(client, store, ctl, cfg.Priority)

	// The loop below never returns on its own, so the only exit path is a
	// termination signal: restore the adjusted process, then re-raise the
	// signal with its default disposition so the exit status is the
	// conventional one.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		sig := <-sigChan
		store.Restore()
		signal.Reset(sig)
		if s, ok := sig.(syscall.Signal); ok {
			syscall.Kill(os.Getpid(), s)
		} else {
			os.Exit(1)
		}
	}()

	if cfg.API.Enabled {
		server := api.NewServer(handler, store, cfg)
		go func() {
			if err := server.Start(cfg.API.Port); err != nil {
				log.Error().Err(err).Msg("status API stopped")
			}
		}()
	}

	switch cfg.Priority.Mode {
	case config.ModeAbsolute:
		log.Info().Int("niceness", cfg.Priority.Value).Msg("pinning focused process niceness")
	default:
		log.Info().Int("delta", cfg.Priority.Value).Msg("adjusting focused process niceness")
	}

	// Adjust whatever is focused right now before any event arrives.
	handler.HandleFocusChange()

	return client.Watch(handler.HandleFocusChange)
}
