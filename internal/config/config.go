// Package config reads timber's process-level configuration from the
// environment.
package config

import "os"

// Config holds timber configuration.
type Config struct {
	// Verbosity is a severity name ("debug".."fatal"). Empty when the
	// environment does not set one; the flag default then applies.
	Verbosity string
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Verbosity: os.Getenv("TIMBER_VERBOSITY"),
	}
}
