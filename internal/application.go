package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/latix/internal/apperror"
	"github.com/rocketscienceinc/latix/internal/config"
	"github.com/rocketscienceinc/latix/internal/repository"
	"github.com/rocketscienceinc/latix/internal/repository/storage"
	"github.com/rocketscienceinc/latix/internal/usecase"
	"github.com/rocketscienceinc/latix/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the console game until the player quits or a signal arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	saveRepo, closeStorage, err := newSaveRepository(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open %s storage: %w", conf.Storage.Driver, err)
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	log.Info("Storage ready", "driver", conf.Storage.Driver, "slot", conf.Storage.Slot)

	gameManager := usecase.NewGameManager(logger, saveRepo, conf.Storage.Slot)
	consoleServer := console.New(logger, gameManager, in, out)

	if err = consoleServer.Start(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console closed, shutting down")

	return nil
}

func newSaveRepository(ctx context.Context, conf *config.Config) (repository.SaveRepository, func() error, error) {
	switch conf.Storage.Driver {
	case config.DriverFile:
		saveRepo, err := repository.NewFileSaveRepository(conf.Storage.FileDir)
		if err != nil {
			return nil, nil, err
		}

		return saveRepo, func() error { return nil }, nil

	case config.DriverRedis:
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisSaveRepository(redisStorage.Connection), redisStorage.Close, nil

	case config.DriverSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.Storage.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteSaveRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownDriver, conf.Storage.Driver)
	}
}
