package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the tracker reads,
// e.g. TRACKER_SIMULATOR_DELAY or TRACKER_LOG_LEVEL.
const EnvPrefix = "TRACKER"

const (
	DefaultDelay    = 500 * time.Millisecond
	DefaultSeed     = int64(0)
	DefaultLogLevel = "warn"
)

type Config struct {
	Simulator SimulatorConfig `mapstructure:"simulator"`
	Log       LogConfig       `mapstructure:"log"`
}

type SimulatorConfig struct {
	Delay time.Duration `mapstructure:"delay"` // pause between rounds
	Seed  int64         `mapstructure:"seed"`  // random seed, 0 seeds from the clock
}

// Options defines the logger configuration options.
type LogConfig struct {
	Level       string `mapstructure:"level"`       // log level: "debug", "info", "warn", "error"
	Format      string `mapstructure:"format"`      // log format: "json" or "console"
	OutputFile  string `mapstructure:"output_file"` // file path to store logs (optional)
	Environment string `mapstructure:"environment"` // environment: "dev" or "prod"
}

// Load loads application configuration using Viper.
// Sources in increasing priority: defaults, config.yaml, .env / environment
// variables, command-line flags parsed from args.
func Load(args []string) (*Config, error) {
	v := viper.New()

	v.SetDefault("simulator.delay", DefaultDelay)
	v.SetDefault("simulator.seed", DefaultSeed)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output_file", "")
	v.SetDefault("log.environment", "dev")

	flags := pflag.NewFlagSet("tracker", pflag.ContinueOnError)
	configFile := flags.String("config", "", "path to a config file")
	flags.Duration("delay", DefaultDelay, "pause between update rounds")
	flags.Int64("seed", DefaultSeed, "random seed for reproducible runs (0 = time based)")
	flags.String("log-level", DefaultLogLevel, "log level: debug, info, warn, error")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := bindFlags(v, flags, flagKeys); err != nil {
		return nil, err
	}

	// .env only feeds the process environment; a missing file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	// Support environment variables with dot notation (e.g., TRACKER_SIMULATOR_SEED)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		v.SetConfigName("config") // config.yaml
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if ex, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Join(filepath.Dir(ex), "../config"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if *configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Simulator.Delay < 0 {
		return nil, fmt.Errorf("simulator.delay must not be negative, got %s", cfg.Simulator.Delay)
	}

	return &cfg, nil
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"simulator.delay": "delay",
	"simulator.seed":  "seed",
	"log.level":       "log-level",
}

// bindFlags binds config keys to their flag names. Only flags set on the
// command line take precedence over the other sources.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag %q to %s: %w", name, key, err)
		}
	}
	return nil
}
