package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all venman settings
type Config struct {
	Home           string               `mapstructure:"home"` // Registry root; empty means ~/venman
	PackageManager PackageManagerConfig `mapstructure:",squash"`
	Shell          string               `mapstructure:"shell"` // Shell used for activation (POSIX only)
	Log            LogConfig            `mapstructure:"log"`
	Spinner        SpinnerConfig        `mapstructure:"spinner"`
}

// PackageManagerConfig selects the environment backend and its binaries
type PackageManagerConfig struct {
	Backend string `mapstructure:"backend"` // "venv" or "uv"
	Python  string `mapstructure:"python"`  // Interpreter for the venv backend; empty tries python3 then python
	UvPath  string `mapstructure:"uv_path"` // Custom uv binary path (optional)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Format string `mapstructure:"format"` // "json" or "text"
	Level  string `mapstructure:"level"`  // "debug", "info", "warn", "error"
}

// SpinnerConfig holds progress indicator settings
type SpinnerConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// Dir returns the directory searched for config.yaml (~/.config/venman or
// platform equivalent). VENMAN_CONFIG_DIR overrides it (for testing).
func Dir() (string, error) {
	if dir := os.Getenv("VENMAN_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "venman"), nil
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("home", "")
	v.SetDefault("backend", "venv")
	v.SetDefault("python", "")
	v.SetDefault("uv_path", "")
	v.SetDefault("shell", "bash")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.level", "warn")
	v.SetDefault("spinner.interval", 80*time.Millisecond)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := Dir(); err == nil {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("VENMAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.PackageManager.Backend != "venv" && cfg.PackageManager.Backend != "uv" {
		return nil, fmt.Errorf("unsupported backend %q (want venv or uv)", cfg.PackageManager.Backend)
	}
	if cfg.Spinner.Interval <= 0 {
		cfg.Spinner.Interval = 80 * time.Millisecond
	}

	return &cfg, nil
}
