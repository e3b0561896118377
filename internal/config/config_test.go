package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the YAML file", func(t *testing.T) {
		// Given: a config file choosing the sqlite driver
		path := writeConfig(t, `
log-level: debug
storage:
  driver: sqlite
  slot: weekend
  sqlite-path: /tmp/latix-test.db
redis:
  host: cache
  port: "6380"
`)

		// When: it is loaded
		conf, err := Load(path)

		// Then: file values win over defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, DriverSQLite, conf.Storage.Driver)
		assert.Equal(t, "weekend", conf.Storage.Slot)
		assert.Equal(t, "/tmp/latix-test.db", conf.Storage.SQLitePath)
		assert.Equal(t, ".", conf.Storage.FileDir)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  driver: sqlite\n")
		t.Setenv("LATIX_STORAGE_DRIVER", "redis")
		t.Setenv("LATIX_REDIS_PORT", "7000")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, DriverRedis, conf.Storage.Driver)
		assert.Equal(t, "localhost:7000", conf.Redis.GetRedisAddr())
	})

	t.Run("Defaults without a file", func(t *testing.T) {
		conf, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, DriverFile, conf.Storage.Driver)
		assert.Equal(t, "latix", conf.Storage.Slot)
		assert.Equal(t, "latix.db", conf.Storage.SQLitePath)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

		require.Error(t, err)
	})
}
