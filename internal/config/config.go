// Package config loads runtime settings from a config file, the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = ".todo"
	envPrefix  = "TODO"
)

// MemoryFile as data.file keeps tasks in memory for the session only.
const MemoryFile = ":memory:"

// Config is the full set of runtime settings.
type Config struct {
	Data  DataConfig `mapstructure:"data"`
	Log   LogConfig  `mapstructure:"log"`
	Color bool       `mapstructure:"color"`
}

// DataConfig locates the backing task file.
type DataConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

// Ephemeral reports whether tasks should not be written to disk.
func (d DataConfig) Ephemeral() bool {
	return d.File == MemoryFile
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data.file", "tasks.json")
	v.SetDefault("log.level", "warn")
	v.SetDefault("color", true)
}

// Load reads settings into a Config. Sources, lowest precedence first:
// defaults, the config file (.todo.yaml in the working directory or
// $HOME), a .env file, then TODO_* environment variables.
func Load(v *viper.Viper) (Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if v.ConfigFileUsed() == "" {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
