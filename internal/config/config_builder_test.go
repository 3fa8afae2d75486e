package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier source
// is not overwritten by a later one, while zero fields are filled.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "2.0.0", TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("WORKERS_PUSH_DEBOUNCE", "1s")

	b := newConfigBuilder().withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, time.Second, b.configs[0].Workers.PushDebounce)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("WORKERS_PUSH_DEBOUNCE", "not-a-duration")

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_PathFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "from-json"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-json", b.configs[1].App.Version)
}

func TestWithJSON_ExplicitPathTakesPrecedence(t *testing.T) {
	explicit := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "explicit"}})

	b := newConfigBuilder().withJSONPath(explicit)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "explicit", b.configs[1].App.Version)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder().withJSONPath("/does/not/exist.json").withJSON()
	assert.Error(t, b.err)
}

// ── entry points ──────────────────────────────────────────────────────────────

func TestGetStructuredConfig_FlagsAndDefaults(t *testing.T) {
	cfg, err := GetStructuredConfig([]string{
		"-d", "postgres://u:p@localhost/db",
		"-token-sign-key", "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "prompt-keeper", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
}

func TestGetStructuredConfig_EnvBeatsFlags(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")

	cfg, err := GetStructuredConfig([]string{"-d", "postgres://flag", "-token-sign-key", "k"})
	require.NoError(t, err)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
}

func TestGetStructuredConfig_MissingDSN(t *testing.T) {
	_, err := GetStructuredConfig([]string{"-token-sign-key", "k"})
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig("")
	require.NoError(t, err)

	assert.Equal(t, "prompt-keeper.db", cfg.Storage.DSN)
	assert.Equal(t, DefaultPushDebounce, cfg.Workers.PushDebounce)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.False(t, cfg.HasRemote())
}

func TestGetClientConfig_FromJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"local": map[string]any{"dsn": "/tmp/p.db"}},
		"adapter": map[string]any{"http_address": "localhost:8080"},
		"workers": map[string]any{"push_debounce": "500ms"},
	})

	cfg, err := GetClientConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/p.db", cfg.Storage.DSN)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 500*time.Millisecond, cfg.Workers.PushDebounce)
	assert.True(t, cfg.HasRemote())
}
