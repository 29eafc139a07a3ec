package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the configuration for the application.
type Config struct {
	// ContainerName is the name of the Docker container running n8n.
	ContainerName string `mapstructure:"container_name"`
	// RestartWaitSeconds is how long to wait after a container restart
	// before reporting success. There is no readiness probe; this is a
	// fixed grace period for n8n to come back up.
	RestartWaitSeconds int `mapstructure:"restart_wait_seconds"`
	// LogTailLines is the number of container log lines fetched during
	// troubleshooting.
	LogTailLines int `mapstructure:"log_tail_lines"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ContainerName:      "n8n",
		RestartWaitSeconds: 15,
		LogTailLines:       50,
	}
}

// LoadConfig loads the configuration from the optional config file and the
// environment. The N8N_CONTAINER_NAME environment variable overrides the
// container name; a missing config file is not an error.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	defaults := DefaultConfig()
	v.SetDefault("container_name", defaults.ContainerName)
	v.SetDefault("restart_wait_seconds", defaults.RestartWaitSeconds)
	v.SetDefault("log_tail_lines", defaults.LogTailLines)

	v.SetEnvPrefix("n8n")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if strings.TrimSpace(config.ContainerName) == "" {
		config.ContainerName = defaults.ContainerName
	}
	return &config, nil
}

// configDir returns the path to the application's configuration directory.
func configDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".n8nops"), nil
}
