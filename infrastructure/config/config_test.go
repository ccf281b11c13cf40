package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
)

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	BindFlags(cmd)
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	c, err := Load(newTestCommand(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Addr != ":8080" || c.Locale != "en" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.SessionTTL != 2*time.Hour || c.PurgeInterval != 5*time.Minute {
		t.Fatalf("unexpected durations: %+v", c)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	yaml := "addr: \":7000\"\nlocale: de\nsession-ttl: 30m\n"
	if err := os.WriteFile(filepath.Join(dir, "companysite.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("COMPANYSITE_LOCALE", "nl")

	c, err := Load(newTestCommand(t, "--addr", ":9000"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Addr != ":9000" {
		t.Fatalf("expected flag to win for addr, got %q", c.Addr)
	}
	if c.Locale != "nl" {
		t.Fatalf("expected env to win for locale, got %q", c.Locale)
	}
	if c.SessionTTL != 30*time.Minute {
		t.Fatalf("expected file value for session-ttl, got %s", c.SessionTTL)
	}
}

func TestLoadExplicitMissingConfigFails(t *testing.T) {
	chdir(t, t.TempDir())
	if _, err := Load(newTestCommand(t, "--config", "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	chdir(t, t.TempDir())
	if _, err := Load(newTestCommand(t, "--session-ttl", "0s")); err == nil {
		t.Fatalf("expected error for zero session ttl")
	}
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := (Config{LogLevel: in}).SlogLevel(); got != want {
			t.Fatalf("level %q: expected %v, got %v", in, want, got)
		}
	}
}

// chdir changes the working directory for the duration of the test, like
// testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
