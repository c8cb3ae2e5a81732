// Package config provides Viper-based hierarchical configuration: built-in
// defaults, then an optional YAML config file, then TALLY_-prefixed
// environment variables, with a .env file loaded first via godotenv.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"data" yaml:"data"`

	Ledger struct {
		DefaultRepaymentDays int `mapstructure:"default_repayment_days" yaml:"default_repayment_days"`
	} `mapstructure:"ledger" yaml:"ledger"`

	Reminder struct {
		IntervalSeconds int `mapstructure:"interval_seconds" yaml:"interval_seconds"`
	} `mapstructure:"reminder" yaml:"reminder"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`
}

// ReminderInterval returns the configured scan interval as a duration.
func (c *Config) ReminderInterval() time.Duration {
	return time.Duration(c.Reminder.IntervalSeconds) * time.Second
}

var envOnce sync.Once

// LoadEnv loads environment variables from a .env file if one exists in the
// current or parent directory. Safe to call more than once.
func LoadEnv() {
	envOnce.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}

// Initialize builds the configuration with hierarchical loading.
func Initialize() (*Config, error) {
	LoadEnv()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.tallybook")
	v.AddConfigPath(".tallybook")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TALLY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars; a broken config file
			// should not brick the CLI.
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("data.file", defaultDataFile())
	v.SetDefault("ledger.default_repayment_days", 7)
	v.SetDefault("reminder.interval_seconds", 60)
	v.SetDefault("csv.delimiter", ",")
}

func defaultDataFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tallybook.yaml"
	}
	return filepath.Join(home, ".tallybook", "ledger.yaml")
}
