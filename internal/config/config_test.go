package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads, for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"STUDYFLOW_CONFIG", "PORT", "DB_PATH", "STATIC_PATH",
		"GEMINI_API_KEY", "API_KEY", "GEMINI_MODEL", "AI_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	// Keep a stray .env in the package dir from leaking in.
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "studyflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
  database_path: /var/lib/studyflow/db.sqlite
ai:
  model: gemini-from-file
  timeout: 45s
logging:
  level: debug
`), 0o644))

	t.Setenv("STUDYFLOW_CONFIG", path)
	t.Setenv("GEMINI_MODEL", "gemini-from-env")
	t.Setenv("API_KEY", "legacy-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/var/lib/studyflow/db.sqlite", cfg.Server.DatabasePath)
	assert.Equal(t, "gemini-from-env", cfg.AI.Model)
	assert.Equal(t, "legacy-key", cfg.AI.APIKey)
	assert.Equal(t, "debug", cfg.Logging.Level)

	timeout, err := cfg.AI.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, timeout)
}

func TestGeminiKeyWinsOverLegacyKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "legacy")
	t.Setenv("GEMINI_API_KEY", "primary")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "primary", cfg.AI.APIKey)
}

func TestDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides a set variable, even an empty one.
	os.Unsetenv("DB_PATH")
	t.Cleanup(func() { os.Unsetenv("DB_PATH") })
	require.NoError(t, os.WriteFile(".env", []byte("DB_PATH=/tmp/from-dotenv.db\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-dotenv.db", cfg.Server.DatabasePath)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad port", map[string]string{"PORT": "eighty"}},
		{"port out of range", map[string]string{"PORT": "70000"}},
		{"bad timeout", map[string]string{"AI_TIMEOUT": "soon"}},
		{"negative timeout", map[string]string{"AI_TIMEOUT": "-5s"}},
		{"missing file", map[string]string{"STUDYFLOW_CONFIG": "/does/not/exist.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
