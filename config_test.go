package stitch

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("STITCH_INITIAL_CAPACITY", "64")
	t.Setenv("STITCH_ARCHETYPE_CAPACITY", "16")
	t.Setenv("STITCH_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "debug", InitialCapacity: 64, ArchetypeCapacity: 16}, cfg)
}

func TestConfigOptions(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{LogLevel: "debug", ArchetypeCapacity: 16}
	opts, err := cfg.Options(&buf)
	require.NoError(t, err)

	w := NewWorld(opts...)
	assert.Equal(t, 16, w.archetypeCapacity)
	assert.Equal(t, defaultInitialCapacity, cap(w.entities.records))
	assert.Contains(t, buf.String(), `"module":"stitch"`)
}

func TestConfigOptionsWithoutLogLevel(t *testing.T) {
	opts, err := Config{}.Options(io.Discard)
	require.NoError(t, err)

	w := NewWorld(opts...)
	assert.Equal(t, defaultArchetypeCapacity, w.archetypeCapacity)
}

func TestConfigOptionsInvalidLevel(t *testing.T) {
	_, err := Config{LogLevel: "loud"}.Options(io.Discard)
	assert.ErrorContains(t, err, "invalid log level")
}
