package commands

import (
	"testing"

	"github.com/focusnice/focusnice/internal/config"
)

func TestBuildRunConfigAdditiveDefault(t *testing.T) {
	runRaise = -1
	cfg, err := buildRunConfig(runCmd)
	if err != nil {
		t.Fatalf("buildRunConfig() error: %v", err)
	}
	if cfg.Priority.Mode != config.ModeAdditive || cfg.Priority.Value != -1 {
		t.Errorf("priority = %+v, want additive -1", cfg.Priority)
	}
}

func TestBuildRunConfigAbsolute(t *testing.T) {
	if err := runCmd.Flags().Set("set", "-5"); err != nil {
		t.Fatalf("setting flag: %v", err)
	}
	cfg, err := buildRunConfig(runCmd)
	if err != nil {
		t.Fatalf("buildRunConfig() error: %v", err)
	}
	if cfg.Priority.Mode != config.ModeAbsolute || cfg.Priority.Value != -5 {
		t.Errorf("priority = %+v, want absolute -5", cfg.Priority)
	}
}

func TestBuildRunConfigRejectsBadAbsolute(t *testing.T) {
	if err := runCmd.Flags().Set("set", "-50"); err != nil {
		t.Fatalf("setting flag: %v", err)
	}
	if _, err := buildRunConfig(runCmd); err == nil {
		t.Error("expected an out-of-range absolute niceness to be rejected")
	}
}
