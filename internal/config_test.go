package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HOST", "PORT", "NUMBER_OF_WORKERS", "BASE_DIR", "LOG_LEVEL", "CHUNK_SIZE_KB",
	"BADGER_FILEPATH", "AUDIT_BUFFER_SIZE", "AUDIT_RETENTION", "ACCESS_LOG",
	"READ_HEADER_TIMEOUT", "SHUTDOWN_TIMEOUT", "DEBUG_PORT",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	clearEnv(t)

	config, err := LoadConfig()
	req.NoError(err)

	req.Equal("0.0.0.0", config.Host)
	req.Equal(8085, config.Port)
	req.Equal(4, config.NumberOfWorkers)
	req.Equal("INFO", config.LogLevel)
	req.Equal(64, config.ChunkSizeKb)
	req.Equal(720*time.Hour, config.AuditRetention)
	req.Equal(15*time.Second, config.ShutdownTimeout)
	req.Empty(config.AccessLog)
	req.Equal(defaultBaseDirName, filepath.Base(config.BaseDir))
	req.True(filepath.IsAbs(config.BaseDir))
	req.Equal("0.0.0.0:8085", config.Address())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	req := require.New(t)
	clearEnv(t)
	base := t.TempDir()
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("BASE_DIR", base)
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("AUDIT_RETENTION", "0s")

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal(base, config.BaseDir)
	req.Equal("DEBUG", config.LogLevel)
	req.Zero(config.AuditRetention)
	req.Equal("127.0.0.1:9000", config.Address())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"Port out of range", "PORT", "70000"},
		{"Port not a number", "PORT", "http"},
		{"Unknown log level", "LOG_LEVEL", "VERBOSE"},
		{"No workers", "NUMBER_OF_WORKERS", "0"},
		{"Empty chunks", "CHUNK_SIZE_KB", "0"},
		{"Zero shutdown timeout", "SHUTDOWN_TIMEOUT", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}

func TestConfig_Address_IPv6(t *testing.T) {
	require.Equal(t, "[::1]:8085", Config{Host: "::1", Port: 8085}.Address())
}
