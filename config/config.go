package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	Log    LogConfig    `mapstructure:"log"`
	Stream StreamConfig `mapstructure:"stream"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type StreamConfig struct {
	// QueueWarnDepth logs a warning when a subscription's pending queue
	// crosses this depth. Zero disables the warning.
	QueueWarnDepth int `mapstructure:"queue_warn_depth"`
}

// LoadConfig reads the optional yaml file and the ORGANIZER_* environment,
// environment winning. An empty configFile falls back to organizer.yaml in
// the working directory if present.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.address", "127.0.0.1:10321")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("db.path", "organizer.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("stream.queue_warn_depth", 1024)

	v.SetEnvPrefix("ORGANIZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("organizer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
