package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

// main - is the entry point of the application. It parses flags, loads the configuration and plays one game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		humanMark  string
	)

	cmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Play tic-tac-toe against the console",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := initConfig(configPath)
			if cmd.Flags().Changed("log-level") {
				conf.LogLevel = logLevel
			}
			if cmd.Flags().Changed("human-mark") {
				conf.HumanMark = humanMark
			}

			logger, closeLog := initLogger(conf)
			defer closeLog()

			if err := app.RunApp(logger, conf, os.Stdin, os.Stdout); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigPath(), "path to the config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	cmd.Flags().StringVar(&humanMark, "human-mark", "X", "mark the human plays with: X or O")

	return cmd
}

func defaultConfigPath() string {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return filepath.Join(baseDir, "./config.yml")
}

// initialize config.
func initConfig(path string) *config.Config {
	return config.MustLoad(path)
}

// initialize logger. Logs go to stderr unless a log file is configured so they stay off the board.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
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

	var (
		writer  io.Writer = os.Stderr
		closeFn           = func() {}
	)

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}
		writer = file
		closeFn = func() { _ = file.Close() }
	}

	return slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level})), closeFn
}
