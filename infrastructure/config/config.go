package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "companysite"

// Config is the runtime configuration of the site server.
type Config struct {
	Addr          string        `mapstructure:"addr"`
	Locale        string        `mapstructure:"locale"`
	SessionTTL    time.Duration `mapstructure:"session-ttl"`
	PurgeInterval time.Duration `mapstructure:"purge-interval"`
	LogLevel      string        `mapstructure:"log-level"`
}

// Defaults are applied before any file, environment or flag value.
func Defaults() map[string]any {
	return map[string]any{
		"addr":           ":8080",
		"locale":         "en",
		"session-ttl":    "2h",
		"purge-interval": "5m",
		"log-level":      "info",
	}
}

// BindFlags registers one flag per config key on cmd.
func BindFlags(cmd *cobra.Command) {
	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().String("locale", "en", "fallback locale for page labels")
	cmd.Flags().Duration("session-ttl", 2*time.Hour, "idle lifetime of a view session")
	cmd.Flags().Duration("purge-interval", 5*time.Minute, "how often expired view sessions are dropped")
	cmd.Flags().String("log-level", "info", "debug, info, warn or error")
	cmd.Flags().String("config", "", "path to a companysite.yaml file")
}

func configDirs() []string {
	var dirs []string
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, "companysite"))
	}
	if runtime.GOOS == "windows" {
		dirs = append(dirs, filepath.Join(os.Getenv("ProgramData"), "companysite"))
	} else {
		dirs = append(dirs, "/etc/companysite")
	}
	return append(dirs, ".")
}

// Load resolves the configuration from defaults, companysite.yaml, the
// COMPANYSITE_* environment and the flags of cmd, in increasing precedence.
func Load(cmd *cobra.Command) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName("companysite")
	v.SetConfigType("yaml")
	if path, err := cmd.Flags().GetString("config"); err == nil && path != "" {
		v.SetConfigFile(path)
	}
	for _, dir := range configDirs() {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, fmt.Errorf("bind flags: %w", err)
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	if c.SessionTTL <= 0 {
		return c, fmt.Errorf("session-ttl must be positive, got %s", c.SessionTTL)
	}
	if c.PurgeInterval <= 0 {
		return c, fmt.Errorf("purge-interval must be positive, got %s", c.PurgeInterval)
	}
	return c, nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
