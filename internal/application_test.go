package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/latix/internal/apperror"
	"github.com/rocketscienceinc/latix/internal/config"
	"github.com/rocketscienceinc/latix/internal/entity"
)

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()

	dir := t.TempDir()

	return &config.Config{
		LogLevel: "info",
		Storage: config.Storage{
			Driver:     driver,
			Slot:       "latix",
			FileDir:    dir,
			SQLitePath: filepath.Join(dir, "latix.db"),
		},
	}
}

func TestRunApp(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, driver := range []string{config.DriverFile, config.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			// Given: a session that saves after one move
			var out bytes.Buffer
			in := strings.NewReader("4b\n4c\ns\nr\no\nq\n")

			// When: the app runs it
			err := RunApp(context.Background(), logger, testConfig(t, driver), in, &out)

			// Then: save and open both succeed
			require.NoError(t, err)
			assert.Contains(t, out.String(), "saving game [DONE]")
			assert.Contains(t, out.String(), "opening game [DONE]")
		})
	}

	t.Run("Unknown driver", func(t *testing.T) {
		err := RunApp(context.Background(), logger, testConfig(t, "tape"), strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, apperror.ErrUnknownDriver)
	})

	t.Run("Redis without host", func(t *testing.T) {
		err := RunApp(context.Background(), logger, testConfig(t, config.DriverRedis), strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, ErrAddrNotFound)
	})
}

func TestNewSaveRepository(t *testing.T) {
	ctx := context.Background()
	conf := testConfig(t, config.DriverSQLite)

	saveRepo, closeStorage, err := newSaveRepository(ctx, conf)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, closeStorage())
	}()

	// Given: a snapshot written through the configured store
	snapshot := entity.NewGameSession().Snapshot()
	require.NoError(t, saveRepo.Save(ctx, conf.Storage.Slot, snapshot))

	// When: it is read back
	loaded, err := saveRepo.Load(ctx, conf.Storage.Slot)

	// Then: it matches
	require.NoError(t, err)
	assert.Equal(t, snapshot, loaded)
}
