package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TIMBER_VERBOSITY", "")
	cfg := Load()
	assert.Equal(t, "", cfg.Verbosity)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TIMBER_VERBOSITY", "debug")
	cfg := Load()
	assert.Equal(t, "debug", cfg.Verbosity)
}
