package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solver/internal/terminal"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solver/transport/rest"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
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

	advisor := usecase.NewAdvisor(logger, nil)

	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		analysisRepo := repository.NewAnalysisRepository(redisStorage.Connection, conf.Redis.TTL)
		advisor = usecase.NewAdvisor(logger, analysisRepo)
	}

	if conf.Mode == config.ModeServe {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)

		return serve(ctx, logger, conf, advisor)
	}

	return play(ctx, logger, conf, advisor)
}

func serve(ctx context.Context, logger *slog.Logger, conf *config.Config, advisor *usecase.Advisor) error {
	if err := rest.New(logger, conf.HTTPPort, advisor).Start(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func play(ctx context.Context, logger *slog.Logger, conf *config.Config, advisor *usecase.Advisor) error {
	objective, err := conf.ParseObjective()
	if err != nil {
		return err
	}

	session, err := terminal.Open(logger, os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}

	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			logger.Error("could not restore terminal", "error", closeErr)
		}
	}()

	players := tictactoe.Players{XAuto: conf.XAuto, OAuto: conf.OAuto}
	controller := tictactoe.NewGameController(logger, advisor, session, session, players, objective)

	result, err := controller.Play(ctx)
	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	session.RenderResult(result)

	return nil
}
