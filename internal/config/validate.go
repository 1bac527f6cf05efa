package config

import "fmt"

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validTimeouts = map[int]bool{10: true, 30: true, 60: true}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Database.Path == "" {
		errs = append(errs, "database.path: required")
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if t := c.Instances.DefaultTimeoutSeconds; t != 0 && !validTimeouts[t] {
		errs = append(errs, fmt.Sprintf("instances.default_timeout_seconds: must be 10, 30 or 60; got %d", t))
	}

	return errs
}
