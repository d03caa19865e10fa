package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Picker   PickerConfig
	Blocked  BlockedConfig
	UI       UIConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// PickerConfig holds the mode flags handed to the calendar.
type PickerConfig struct {
	Range                             bool
	BlockRangeWhenBlockedDateInPeriod bool `mapstructure:"block_range_when_blocked_date_in_period"`
	// NotifyBlocked controls whether taps on blocked days reach the host.
	NotifyBlocked bool `mapstructure:"notify_blocked"`
}

// BlockedConfig lists the sources of unselectable days besides the database.
type BlockedConfig struct {
	Dates []string
	// Rules are RRULE strings, e.g. "FREQ=WEEKLY;BYDAY=SA,SU".
	Rules []string
	// ICS lists iCalendar files whose events block the days they cover.
	ICS []string `mapstructure:"ics"`
	// Refresh is a cron expression for reloading the sources.
	Refresh       string
	HorizonMonths int `mapstructure:"horizon_months"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
	Timezone   string
}

// LogConfig controls where the TUI writes its log; empty disables it.
type LogConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix CALPICK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "calpick", "calpick.db"))
	v.SetDefault("picker.range", true)
	v.SetDefault("picker.block_range_when_blocked_date_in_period", false)
	v.SetDefault("picker.notify_blocked", true)
	v.SetDefault("blocked.dates", []string{})
	v.SetDefault("blocked.rules", []string{})
	v.SetDefault("blocked.ics", []string{})
	v.SetDefault("blocked.refresh", "*/15 * * * *")
	v.SetDefault("blocked.horizon_months", 24)
	v.SetDefault("ui.date_format", "Mon 02 Jan 2006")
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("log.path", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CALPICK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "calpick"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CALPICK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the picker flags to the config file, creating it if needed.
// Other keys keep what the file holds; defaults and env overrides are not
// written.
func Save(cfg Config) error {
	path := os.Getenv("CALPICK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "calpick", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	v.Set("picker.range", cfg.Picker.Range)
	v.Set("picker.block_range_when_blocked_date_in_period", cfg.Picker.BlockRangeWhenBlockedDateInPeriod)
	v.Set("picker.notify_blocked", cfg.Picker.NotifyBlocked)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
