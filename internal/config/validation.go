package config

import (
	"fmt"
	"strings"

	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
	"git.home.luguber.info/inful/listingproc/internal/refqueue"
)

// Validate checks enum values and required settings.
func (c *Config) Validate() error {
	if _, err := refqueue.ParseBackend(c.Queue.Backend); err != nil {
		return invalid("queue.backend", fmt.Sprintf("unknown backend %q, valid options: %s",
			c.Queue.Backend, strings.Join(refqueue.ValidBackends(), ", ")))
	}
	if strings.TrimSpace(c.Queue.Path) == "" {
		return invalid("queue.path", "path cannot be empty")
	}

	if _, ok := hashModeNormalizer.Lookup(c.Hash.Mode); !ok {
		return invalid("hash.mode", fmt.Sprintf("unknown mode %q, valid options: %s",
			c.Hash.Mode, strings.Join(hashModeNormalizer.ValidKeys(), ", ")))
	}
	if NormalizeHashMode(c.Hash.Mode) == HashModeExec {
		if c.Hash.Shell == "" {
			return invalid("hash.shell", "shell cannot be empty in exec mode")
		}
		if c.Hash.Timeout <= 0 {
			return invalid("hash.timeout", "timeout must be positive")
		}
	}

	if _, ok := logLevelNormalizer.Lookup(c.Logging.Level); !ok && c.Logging.Level != "" {
		return invalid("logging.level", fmt.Sprintf("unknown level %q", c.Logging.Level))
	}
	if _, ok := logFormatNormalizer.Lookup(c.Logging.Format); !ok && c.Logging.Format != "" {
		return invalid("logging.format", fmt.Sprintf("unknown format %q", c.Logging.Format))
	}
	return nil
}

func invalid(field, msg string) error {
	return ferrors.ConfigError(field + ": " + msg).
		WithContext("field", field).
		Build()
}
