package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaultsBackendToPostgres(t *testing.T) {
	t.Setenv("QUERYC_BACKEND", "")
	t.Setenv("QUERYC_DSN", "")
	t.Setenv("QUERYC_DEBUG", "")

	cfg := LoadConfig()

	assert.Equal(t, "postgres", cfg.Backend)
	assert.False(t, cfg.Debug)
}

func TestLoadConfigReadsDebugFlag(t *testing.T) {
	t.Setenv("QUERYC_BACKEND", "sqlite")
	t.Setenv("QUERYC_DEBUG", "true")

	cfg := LoadConfig()

	assert.Equal(t, "sqlite", cfg.Backend)
	assert.True(t, cfg.Debug)
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "oracle"}
	assert.Error(t, cfg.Validate())
}

func TestValidateAcceptsKnownBackends(t *testing.T) {
	for _, b := range []string{"postgres", "mysql", "sqlite"} {
		cfg := &Config{Backend: b}
		assert.NoError(t, cfg.Validate())
	}
}
