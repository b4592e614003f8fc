package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

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
	t.Run("Fills defaults for missing keys", func(t *testing.T) {
		// Given: a config that only sets the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)

		// Then: everything else falls back to the defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "3000", conf.HTTPPort)
		assert.Equal(t, StorageFile, conf.Storage.Driver)
		assert.Equal(t, "historico_jogos.json", conf.Storage.HistoryPath)
		assert.Equal(t, 4, conf.Tree.MaxDepth)
		assert.Equal(t, time.Second, conf.Replay.MoveDelay)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads nested sections", func(t *testing.T) {
		path := writeConfig(t, `
http-port: "8080"
storage:
  driver: redis
redis:
  host: cache
  port: "6380"
tree:
  max-depth: 2
replay:
  move-delay: 250ms
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, StorageRedis, conf.Storage.Driver)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 2, conf.Tree.MaxDepth)
		assert.Equal(t, 250*time.Millisecond, conf.Replay.MoveDelay)
	})

	t.Run("Rejects an unknown storage driver", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  driver: sqlite\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sqlite")
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}

	for level, expected := range cases {
		conf := &Config{LogLevel: level}

		assert.Equal(t, expected, conf.SlogLevel(), level)
	}
}
