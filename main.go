package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	app "github.com/rocketscienceinc/latix/internal"
	"github.com/rocketscienceinc/latix/internal/config"
)

// main - is the entry point of the application. It parses flags, initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	// a missing .env is fine, the environment and config.yml still apply
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	cmd := &cli.Command{
		Name:  "latix",
		Usage: "two-player Latix on a 9x9 board, played from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yml",
				Usage:   "path to the YAML config file",
				Sources: cli.EnvVars("LATIX_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error; overrides the config file",
			},
			&cli.StringFlag{
				Name:  "driver",
				Usage: "save storage: file, redis or sqlite; overrides the config file",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	conf, err := initConfig(cmd.String("config"), cmd.IsSet("config"))
	if err != nil {
		return err
	}

	if level := cmd.String("log-level"); level != "" {
		conf.LogLevel = level
	}

	if driver := cmd.String("driver"); driver != "" {
		conf.Storage.Driver = driver
	}

	logger := initLogger(conf)

	return app.RunApp(ctx, logger, conf, os.Stdin, os.Stdout)
}

// initialize config. The default config file is optional.
func initConfig(path string, explicit bool) (*config.Config, error) {
	if !filepath.IsAbs(path) {
		baseDir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}

		path = filepath.Join(baseDir, path)
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !explicit {
		path = ""
	}

	conf, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return conf, nil
}

// initialize logger. Logs go to stderr, the board owns stdout.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
