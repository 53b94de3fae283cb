package config

import (
	"os"
	"path/filepath"
	"testing"

	gconfig "github.com/Laisky/go-config/v2"
	"github.com/stretchr/testify/require"
)

func resetSettings(t *testing.T) {
	t.Helper()
	gconfig.Shared.Set(KeyAPIBaseURL, "")
	gconfig.Shared.Set(KeyAPITimeout, "")
}

func TestLoadFromFileMissing(t *testing.T) {
	resetSettings(t)

	require.NoError(t, LoadFromFile(""))
	require.NoError(t, LoadFromFile(filepath.Join(t.TempDir(), "absent.yml")))

	SetDefaults()
	require.Equal(t, DefaultAPIBaseURL, APIBaseURL())
	require.Empty(t, APITimeout())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "settings.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"settings:\n  api:\n    base_url: https://qa.example.com/\n    timeout: 20s\n"), 0o600))

	require.NoError(t, LoadFromFile(cfgPath))
	require.Equal(t, dir, gconfig.Shared.GetString("cfg_dir"))
}

func TestLoadEnvOverrides(t *testing.T) {
	resetSettings(t)
	gconfig.Shared.Set(KeyAPIBaseURL, "https://from-file.example.com")

	t.Setenv(EnvAPIBaseURL, " http://env.example.com:9000/ ")
	t.Setenv(EnvAPITimeout, "3s")

	LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	SetDefaults()
	require.Equal(t, "http://env.example.com:9000", APIBaseURL())
	require.Equal(t, "3s", APITimeout())
}

func TestLoadEnvDotEnvFile(t *testing.T) {
	resetSettings(t)

	// godotenv never overrides variables that are already set
	t.Setenv(EnvAPITimeout, "")
	require.NoError(t, os.Unsetenv(EnvAPITimeout))
	t.Setenv(EnvAPIBaseURL, "")
	require.NoError(t, os.Unsetenv(EnvAPIBaseURL))

	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(EnvAPIBaseURL+"=http://dotenv.example.com\n"), 0o600))

	LoadEnv(envPath)
	t.Cleanup(func() { _ = os.Unsetenv(EnvAPIBaseURL) })

	require.Equal(t, "http://dotenv.example.com", APIBaseURL())
}
