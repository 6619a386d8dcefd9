package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"client"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "http://127.0.0.1:5000", cfg.ServerEndpointAddr)
	require.Equal(t, "account.db", cfg.DatabaseFilePath)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", "https://api.example.org", "-l", "debug")

	cfg := LoadConfig()
	require.Equal(t, "https://api.example.org", cfg.ServerEndpointAddr)
	require.Equal(t, "account.db", cfg.DatabaseFilePath)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	path := writeConfig(t, `{"server_endpoint_addr": "https://json.example.org", "log_level": "warn"}`)
	withArgs(t, "-c", path, "-a", "https://flag.example.org")

	cfg := LoadConfig()
	require.Equal(t, "https://flag.example.org", cfg.ServerEndpointAddr)
	require.Equal(t, "warn", cfg.LogLevel)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
