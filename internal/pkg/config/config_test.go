package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetEnv(t *testing.T) {
	t.Helper()
	env = newEnv()
	t.Cleanup(func() { env = newEnv() })
}

func TestInitConfig_EnvironmentOverridesFile(t *testing.T) {
	resetEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "loadboard.env")
	content := "APP_NAME=from-file\nSERVER_PORT=9090\nEVENTS_BROKER=nsq\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("APP_ENV", "local")
	t.Setenv("APP_NAME", "")
	t.Setenv("EVENTS_BROKER", "")
	t.Setenv("SERVER_PORT", "7070")

	cfg := InitConfig(path)

	assert.Equal(t, "from-file", cfg.App.Name)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "nsq", cfg.Events.Broker)
}

func TestInitConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	resetEnv(t)

	t.Setenv("APP_ENV", "local")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOADS_GEO_INDEX_KEY", "")

	cfg := InitConfig(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "loads:available:geo", cfg.Loads.GeoIndexKey)
	assert.Equal(t, uint(6), cfg.Loads.GeohashPrecision)
}

func TestInitConfig_GeohashPrecisionOutOfRange(t *testing.T) {
	tests := []struct {
		value string
		want  uint
	}{
		{value: "13", want: 6},
		{value: "-1", want: 6},
		{value: "0", want: 6},
		{value: "12", want: 12},
		{value: "1", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			resetEnv(t)
			t.Setenv("APP_ENV", "production")
			t.Setenv("LOADS_GEOHASH_PRECISION", tt.value)

			cfg := InitConfig("")

			assert.Equal(t, tt.want, cfg.Loads.GeohashPrecision)
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	resetEnv(t)

	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_FLOAT", "2.5")
	t.Setenv("TEST_BAD_FLOAT", "abc")

	assert.Equal(t, 42, GetEnvAsInt("TEST_INT", 1))
	assert.Equal(t, 1, GetEnvAsInt("TEST_BAD_INT", 1))
	assert.True(t, GetEnvAsBool("TEST_BOOL", false))
	assert.Equal(t, 2.5, GetEnvAsFloat("TEST_FLOAT", 0))
	assert.Equal(t, 9.0, GetEnvAsFloat("TEST_BAD_FLOAT", 9))
	assert.Equal(t, "fallback", GetEnv("TEST_UNSET_KEY", "fallback"))
}
