package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Player struct {
		ProcessName string `mapstructure:"process_name"`
		Executable  string `mapstructure:"executable"`
	} `mapstructure:"player"`
	Launch struct {
		Enabled     bool          `mapstructure:"enabled"`
		Warmup      time.Duration `mapstructure:"warmup"`
		SearchRoots []string      `mapstructure:"search_roots"`
	} `mapstructure:"launch"`
	UI struct {
		Color string `mapstructure:"color"`
	} `mapstructure:"ui"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	StrictExit bool `mapstructure:"strict_exit"`
}

const (
	defaultProcessName = "spotify"
	defaultWarmup      = 3 * time.Second
	defaultColor       = "4"
	defaultLogLevel    = "warn"
	maxWarmup          = time.Minute
)

// SafeConfig wraps Config with thread-safe access
type SafeConfig struct {
	mu  sync.RWMutex
	cfg Config
}

// Get returns a copy of the current config (thread-safe read)
func (sc *SafeConfig) Get() Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.cfg
}

// Set updates the config (thread-safe write)
func (sc *SafeConfig) Set(cfg Config) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.cfg = cfg
}

type configError struct {
	field   string
	message string
}

func (e configError) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.message)
}

// newViper returns a viper instance with every default set
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("player.process_name", defaultProcessName)
	v.SetDefault("player.executable", defaultExecutable)
	v.SetDefault("launch.enabled", true)
	v.SetDefault("launch.warmup", defaultWarmup)
	v.SetDefault("launch.search_roots", []string{})
	v.SetDefault("ui.color", defaultColor)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("strict_exit", false)
	return v
}

// configDir follows XDG: $XDG_CONFIG_HOME/spotifyctl, falling back to ~/.config
func configDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, "spotifyctl")
}

// loadConfig layers defaults, config file, SPOTIFYCTL_* env vars and flags.
// A missing config file is fine; a broken one is reported through warn.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet, warn io.Writer) Config {
	if file, _ := flags.GetString("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir := configDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix("SPOTIFYCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file found but had errors
			fmt.Fprintf(warn, "Warning: Error reading config file: %v\n", err)
		}
	}

	// Command-line flags take precedence when explicitly set
	_ = v.BindPFlag("ui.color", flags.Lookup("color"))
	_ = v.BindPFlag("launch.warmup", flags.Lookup("warmup"))
	if noLaunch, _ := flags.GetBool("no-launch"); noLaunch {
		v.Set("launch.enabled", false)
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		v.Set("log.level", "debug")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(warn, "Warning: Error parsing config: %v\n", err)
	}

	if errs := validateConfig(&cfg); len(errs) > 0 {
		printConfigWarnings(warn, errs)
		applyDefaultsForInvalidFields(&cfg, errs)
	}
	return cfg
}

// watchConfig keeps sc up to date with the config file and signals changed
// after every successful reload.
func watchConfig(v *viper.Viper, sc *SafeConfig, changed chan<- struct{}) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		var newCfg Config
		if err := v.Unmarshal(&newCfg); err != nil {
			return
		}
		if errs := validateConfig(&newCfg); len(errs) > 0 {
			applyDefaultsForInvalidFields(&newCfg, errs)
		}
		sc.Set(newCfg)
		select {
		case changed <- struct{}{}:
		default:
			// Channel full, skip notification
		}
	})
	v.WatchConfig()
}

// validateConfig returns one configError per invalid field
func validateConfig(cfg *Config) []error {
	var errs []error

	if strings.TrimSpace(cfg.Player.ProcessName) == "" {
		errs = append(errs, configError{field: "player.process_name", message: "must not be empty"})
	}
	if strings.TrimSpace(cfg.Player.Executable) == "" {
		errs = append(errs, configError{field: "player.executable", message: "must not be empty"})
	} else if strings.ContainsAny(cfg.Player.Executable, `/\`) {
		errs = append(errs, configError{field: "player.executable", message: fmt.Sprintf("must be a file name, not a path (got %q)", cfg.Player.Executable)})
	}
	if cfg.Launch.Warmup < 0 || cfg.Launch.Warmup > maxWarmup {
		errs = append(errs, configError{field: "launch.warmup", message: fmt.Sprintf("must be between 0 and %s (got %s)", maxWarmup, cfg.Launch.Warmup)})
	}
	if !isValidColor(cfg.UI.Color) {
		errs = append(errs, configError{field: "ui.color", message: fmt.Sprintf("invalid color format '%s'", cfg.UI.Color)})
	}
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, configError{field: "log.level", message: fmt.Sprintf("unknown level '%s'", cfg.Log.Level)})
	}

	return errs
}

// applyDefaultsForInvalidFields resets every field named in errs
func applyDefaultsForInvalidFields(cfg *Config, errs []error) {
	for _, err := range errs {
		ce, ok := err.(configError)
		if !ok {
			continue
		}
		switch ce.field {
		case "player.process_name":
			cfg.Player.ProcessName = defaultProcessName
		case "player.executable":
			cfg.Player.Executable = defaultExecutable
		case "launch.warmup":
			cfg.Launch.Warmup = defaultWarmup
		case "ui.color":
			cfg.UI.Color = defaultColor
		case "log.level":
			cfg.Log.Level = defaultLogLevel
		}
	}
}

func printConfigWarnings(w io.Writer, errs []error) {
	for _, err := range errs {
		fmt.Fprintf(w, "Warning: invalid config %v, using default\n", err)
	}
}

// isValidColor accepts ANSI codes 0-255 and #RGB / #RRGGBB hex colors
func isValidColor(color string) bool {
	if color == "" {
		return false
	}
	if color[0] == '#' {
		hex := color[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		for _, c := range hex {
			if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
				return false
			}
		}
		return true
	}
	if len(color) > 3 {
		return false
	}
	n, err := strconv.Atoi(color)
	return err == nil && n >= 0 && n <= 255 && !strings.HasPrefix(color, "+")
}
