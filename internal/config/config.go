// Package config loads the optional YAML configuration of listingproc.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "listingproc.yaml"

// Config represents the application configuration.
type Config struct {
	Queue   QueueConfig   `yaml:"queue"`
	Hash    HashConfig    `yaml:"hash"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// QueueConfig locates the reference queue.
type QueueConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`
}

// HashConfig controls how hash region digests are computed.
type HashConfig struct {
	Mode      string        `yaml:"mode"` // "exec" or "builtin"
	Shell     string        `yaml:"shell"`
	ScriptDir string        `yaml:"script_dir"`
	Timeout   time.Duration `yaml:"timeout"`
	// Scripts maps a hashing dialect to a script file name in ScriptDir.
	Scripts map[string]string `yaml:"scripts"`
}

// LoggingConfig selects the log level and handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Queue: QueueConfig{
			Backend: "file",
			Path:    "header.tmp",
		},
		Hash: HashConfig{
			Mode:      string(HashModeExec),
			Shell:     "sh",
			ScriptDir: "../content/contest",
			Timeout:   10 * time.Second,
			Scripts: map[string]string{
				"hash":     "hash.sh",
				"hash-cpp": "hash-cpp.sh",
			},
		},
		Logging: LoggingConfig{
			Level:  string(LogLevelInfo),
			Format: string(LogFormatText),
		},
	}
}

// Load loads configuration from configPath on top of Defaults. A missing file
// is not an error. Environment variables are expanded before decoding.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	cfg := Defaults()
	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expandedData), cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").
			WithContext("path", configPath).
			Build()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Init writes the default configuration to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ValidationError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath)).Build()
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal config").Build()
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
