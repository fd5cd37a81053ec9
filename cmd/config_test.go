package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_SSLMODE", "KAFKA_HOST", "DISPATCH_SCHEDULE"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Empty(t, cfg.KafkaHost)
	assert.Empty(t, cfg.DispatchSchedule)
}

func TestLoadConfig_EnvFileAndEnvironment(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_NAME=backoffice\nHTTP_PORT=9000\n"), 0o600))
	t.Setenv("DB_NAME", "")
	t.Setenv("HTTP_PORT", "8181")
	require.NoError(t, os.Unsetenv("DB_NAME"))

	cfg := LoadConfig(envFile)

	assert.Equal(t, "backoffice", cfg.DBName)
	assert.Equal(t, "8181", cfg.HTTPPort)
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "app",
		DBPassword: "secret",
		DBName:     "backoffice",
		DBSslMode:  "disable",
	}

	assert.Equal(t, "host=db port=5433 user=app password=secret dbname=backoffice sslmode=disable", cfg.DSN())
}
