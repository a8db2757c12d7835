package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// AppName names the per-user configuration directory.
const AppName = "ansiconsole"

// GetAppDir returns the OS-appropriate application directory, creating it
// if needed. userConfigDir is injected for testability.
func GetAppDir(userConfigDir func() (string, error)) (string, error) {
	configDir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	appDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(appDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return appDir, nil
}

// Load loads the configuration from configPath, or from config.yaml in the
// application directory when configPath is empty. A missing file yields the
// default configuration. Empty file paths are filled in relative to the
// application directory.
func Load(configPath string, userConfigDir func() (string, error)) (*Config, error) {
	appDir, err := GetAppDir(userConfigDir)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		configPath = filepath.Join(appDir, "config.yaml")
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.Console.HistoryFile == "" {
		cfg.Console.HistoryFile = filepath.Join(appDir, "history.tmp")
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(appDir, "session.log")
	}
	return &cfg, nil
}

// setDefaults configures Viper default values matching NewDefaultConfig.
func setDefaults(v *viper.Viper) {
	d := NewDefaultConfig()
	v.SetDefault("console.color", d.Console.Color)
	v.SetDefault("console.prompt", d.Console.Prompt)
	v.SetDefault("console.history_file", d.Console.HistoryFile)
	v.SetDefault("console.history_limit", d.Console.HistoryLimit)
	v.SetDefault("console.transcript", d.Console.Transcript)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}
