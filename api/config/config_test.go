package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingVars = []string{EnvHTTPPort, EnvGRPCPort, EnvEnvFile, EnvPageTitle, EnvLogLevel, EnvLogFormat, EnvTestValue}

// isolateEnv unsets every variable LoadConfig reads and restores them after the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, k := range settingVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// chdir moves into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolateEnv(t)
	chdir(t, t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPPort, cfg.HTTPPort)
	assert.Equal(t, DefaultGRPCPort, cfg.GRPCPort)
	assert.Equal(t, DefaultPageTitle, cfg.PageTitle)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Empty(t, cfg.EnvFile)
	assert.Equal(t, ":8080", cfg.HTTPAddr())
	assert.Equal(t, ":50051", cfg.GRPCAddr())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	isolateEnv(t)
	chdir(t, t.TempDir())
	t.Setenv(EnvHTTPPort, "9090")
	t.Setenv(EnvGRPCPort, "9091")
	t.Setenv(EnvPageTitle, "Staging")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "text")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "9091", cfg.GRPCPort)
	assert.Equal(t, "Staging", cfg.PageTitle)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfig_FindsDotenvInParent(t *testing.T) {
	isolateEnv(t)
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	envPath := filepath.Join(root, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("PORT=7070\nTEST_ENV_VALUE=from-dotenv\n"), 0o600))
	chdir(t, nested)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.HTTPPort)
	assert.Equal(t, "from-dotenv", os.Getenv(EnvTestValue))

	// macOS temp dirs resolve through /private, so compare by file identity
	want, err := os.Stat(envPath)
	require.NoError(t, err)
	got, err := os.Stat(cfg.DotenvPath)
	require.NoError(t, err)
	assert.True(t, os.SameFile(want, got))
}

func TestLoadConfig_DotenvDoesNotOverrideProcessEnv(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7070\n"), 0o600))
	chdir(t, dir)
	t.Setenv(EnvHTTPPort, "6060")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "6060", cfg.HTTPPort)
}

func TestLoadConfig_InvalidSettings(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"log level", EnvLogLevel, "verbose"},
		{"log format", EnvLogFormat, "xml"},
		{"missing env file", EnvEnvFile, filepath.Join(os.TempDir(), "definitely-not-here.env")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			chdir(t, t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
