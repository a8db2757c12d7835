// Package config holds the console configuration and loads it from YAML.
package config

// Config represents the complete console configuration.
type Config struct {
	Console ConsoleConfig `yaml:"console" mapstructure:"console"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// ConsoleConfig holds interactive console settings.
type ConsoleConfig struct {
	// Color mode: auto, always, never
	Color string `yaml:"color" mapstructure:"color"`

	// Prompt shown before user input
	Prompt string `yaml:"prompt" mapstructure:"prompt"`

	// Readline history file; empty means <config dir>/history.tmp
	HistoryFile string `yaml:"history_file" mapstructure:"history_file"`

	// Number of history entries kept
	HistoryLimit int `yaml:"history_limit" mapstructure:"history_limit"`

	// Optional plain text transcript of every console reply
	Transcript string `yaml:"transcript" mapstructure:"transcript"`
}

// LogConfig holds session log settings.
type LogConfig struct {
	// Log file; empty means <config dir>/session.log
	File string `yaml:"file" mapstructure:"file"`

	// Level: debug, info, warn, error
	Level string `yaml:"level" mapstructure:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Console: ConsoleConfig{
			Color:        "auto",
			Prompt:       "ansi>",
			HistoryLimit: 500,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
