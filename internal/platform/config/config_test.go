package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pet-care-info/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "CARE_DATA", "FACTS_DATA", "IMAGE_TIMEOUT", "DATASET_TIMEOUT",
		"ALLOW_PATH_INPUT", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME"} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, DefaultCareData, cfg.CareData)
	assert.Equal(t, DefaultFactsData, cfg.FactsData)
	assert.Equal(t, 5*time.Second, cfg.ImageTimeout)
	assert.Equal(t, 10*time.Second, cfg.DatasetTimeout)
	assert.False(t, cfg.AllowPathInput)
	assert.Equal(t, logger.Info, cfg.Log.Level)
	assert.Equal(t, logger.FormatText, cfg.Log.Format)
	assert.Equal(t, DefaultAppName, cfg.Log.App)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("CARE_DATA", "https://example.com/care.xlsx")
	t.Setenv("IMAGE_TIMEOUT", "1500ms")
	t.Setenv("ALLOW_PATH_INPUT", "true")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "https://example.com/care.xlsx", cfg.CareData)
	assert.Equal(t, 1500*time.Millisecond, cfg.ImageTimeout)
	assert.True(t, cfg.AllowPathInput)
	assert.Equal(t, logger.FormatJSON, cfg.Log.Format)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]string{
		"IMAGE_TIMEOUT":    "soon",
		"DATASET_TIMEOUT":  "-1s",
		"ALLOW_PATH_INPUT": "maybe",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := FromEnv()
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv no pisa variables ya definidas, así que se quita la vacía
	require.NoError(t, os.Unsetenv("FACTS_DATA"))
	t.Cleanup(func() { _ = os.Unsetenv("FACTS_DATA") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FACTS_DATA=facts.csv\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "facts.csv", cfg.FactsData)

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err, "a missing env file is not an error")
}
