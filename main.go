package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-solver/internal"
	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
//
// Usage: tictactoe-solver [-config path] [-serve] [<x-auto 0|1> <o-auto 0|1> <objective w|l|t|n>]
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "config.yml", "path to the config file")
	serveMode := flag.Bool("serve", false, "serve the analysis API instead of playing")
	flag.Parse()

	conf := initConfig(*configPath, *serveMode, flag.Args())
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig(path string, serveMode bool, args []string) *config.Config {
	conf := config.MustLoad(path)
	conf.ApplyArgs(args)

	if serveMode {
		conf.Mode = config.ModeServe
	}

	if err := conf.Validate(); err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}

	return conf
}

// initialize logger. The board owns stdout while playing, so logs go to stderr.
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
