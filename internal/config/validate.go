package config

import (
	"fmt"
	"strings"
	"unicode"
)

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

var validLogFormats = map[string]bool{
	"text": true,
	"json": true,
}

// Validate checks the config and returns all problems found. Values that
// would break generation are clamped to safe defaults; every clamp is
// reported so the caller can log it, but none prevents startup.
func (c *Config) Validate() []error {
	var errs []error

	if c.DefaultHostname == "" {
		errs = append(errs, fmt.Errorf("default_hostname is empty, using %q", Default().DefaultHostname))
		c.DefaultHostname = Default().DefaultHostname
	}
	for _, r := range c.DefaultHostname {
		if unicode.IsControl(r) {
			errs = append(errs, fmt.Errorf("default_hostname contains control characters, using %q", Default().DefaultHostname))
			c.DefaultHostname = Default().DefaultHostname
			break
		}
	}

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Errorf("unknown log_level %q, using info", c.LogLevel))
		c.LogLevel = "info"
	}
	if !validLogFormats[strings.ToLower(c.LogFormat)] {
		errs = append(errs, fmt.Errorf("unknown log_format %q, using text", c.LogFormat))
		c.LogFormat = "text"
	}

	if c.BatchWorkers < 1 {
		errs = append(errs, fmt.Errorf("batch_workers %d is below minimum 1, clamping", c.BatchWorkers))
		c.BatchWorkers = 1
	} else if c.BatchWorkers > 64 {
		errs = append(errs, fmt.Errorf("batch_workers %d exceeds maximum 64, clamping", c.BatchWorkers))
		c.BatchWorkers = 64
	}

	if c.OutputDir == "" {
		c.OutputDir = "."
	}

	return errs
}
