package support

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(values map[string]string) Lookup {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func usesDefaults(t *testing.T) {
	cfg, err := ConfigFrom(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Empty(t, cfg.StaticPaths)
}

func readsEnvironment(t *testing.T) {
	cfg, err := ConfigFrom(lookupFrom(map[string]string{
		"COUNTER_ADDR":            ":8080",
		"COUNTER_API_URL":         "http://counter.internal",
		"COUNTER_LOG_LEVEL":       "debug",
		"COUNTER_PAGE_CACHE_SIZE": "3",
		"COUNTER_STATIC_PATHS":    "0, 1,,2",
		"COUNTER_FETCH_TIMEOUT":   "2s",
		"COUNTER_TRACE_EXPORTER":  "otlp",
		"COUNTER_OTLP_HEADERS":    "x-team=abc, x-dataset = counter",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://counter.internal", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.PageCacheSize)
	assert.Equal(t, []string{"0", "1", "2"}, cfg.StaticPaths)
	assert.Equal(t, 2*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "otlp", cfg.TraceExporter)
	assert.Equal(t, map[string]string{"x-team": "abc", "x-dataset": "counter"}, cfg.OTLPHeaders)
}

func readsStaticPathsAsExtras(t *testing.T) {
	cfg, err := ConfigFrom(lookupFrom(map[string]string{"COUNTER_STATIC_PATHS": ""}))
	require.NoError(t, err)
	assert.Empty(t, cfg.StaticPaths)

	cfg, err = ConfigFrom(lookupFrom(map[string]string{"COUNTER_STATIC_PATHS": "5"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, cfg.StaticPaths)
}

func rejectsInvalidValues(t *testing.T) {
	for key, value := range map[string]string{
		"COUNTER_PAGE_CACHE_SIZE": "lots",
		"COUNTER_FETCH_TIMEOUT":   "soon",
		"COUNTER_OTLP_HEADERS":    "novalue",
	} {
		_, err := ConfigFrom(lookupFrom(map[string]string{key: value}))
		assert.Error(t, err, key)
	}
}

func loadsEnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "counter.env")
	require.NoError(t, os.WriteFile(file, []byte("COUNTER_TEST_ONLY_ADDR=:9999\n"), 0o600))
	defer os.Unsetenv("COUNTER_TEST_ONLY_ADDR")

	require.NoError(t, LoadEnv(file))
	assert.Equal(t, ":9999", os.Getenv("COUNTER_TEST_ONLY_ADDR"))

	assert.Error(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func buildsLogger(t *testing.T) {
	var out bytes.Buffer
	log := NewLogger(&out, Config{LogLevel: "warn"})

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func rejectsUnknownExporter(t *testing.T) {
	_, _, err := TracerProvider(context.Background(), Config{TraceExporter: "carrier-pigeon"})
	assert.Error(t, err)
}

func installsNoopProvider(t *testing.T) {
	tracing, cleanup, err := TracerProvider(context.Background(), Config{TraceExporter: "none"})
	require.NoError(t, err)
	defer cleanup()

	assert.NotNil(t, tracing.Provider)
	assert.NoError(t, tracing.Flush(context.Background()))
}

func flushesConsoleExporter(t *testing.T) {
	tracing, cleanup, err := TracerProvider(context.Background(), Config{TraceExporter: "console"})
	require.NoError(t, err)
	defer cleanup()

	assert.NoError(t, tracing.Flush(context.Background()))
}

func TestConfig(t *testing.T) {
	t.Run("uses defaults", usesDefaults)
	t.Run("reads the environment", readsEnvironment)
	t.Run("reads static paths as extras", readsStaticPathsAsExtras)
	t.Run("rejects invalid values", rejectsInvalidValues)
	t.Run("loads an env file", loadsEnvFile)
	t.Run("builds a logger", buildsLogger)
	t.Run("rejects an unknown exporter", rejectsUnknownExporter)
	t.Run("installs a noop provider", installsNoopProvider)
	t.Run("flushes the console exporter", flushesConsoleExporter)
}
