package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/rest"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/websocket"
)

// RunApp - runs the HTTP server until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := NotifyContext(log)
	defer cancel()

	historyRepo, closeRepo, err := NewHistoryRepository(ctx, logger, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close history storage", "error", err)
		}
	}()

	historyService := service.NewHistoryService(logger, historyRepo)
	matchService := service.NewMatchService(logger, historyService)

	router := rest.NewRouter(logger, rest.Options{
		History:      historyService,
		Matches:      matchService,
		Socket:       websocket.New(logger, matchService, conf.Replay.MoveDelay),
		StaticDir:    conf.StaticDir,
		MaxTreeDepth: conf.Tree.MaxDepth,
	})

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage.Driver)

	if err = rest.New(logger, conf.HTTPPort, router).Start(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// NotifyContext returns a context canceled on SIGINT or SIGTERM.
func NotifyContext(log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()

	return ctx, cancel
}

// NewHistoryRepository opens the backend selected by storage.driver. The returned func releases it.
func NewHistoryRepository(
	ctx context.Context, logger *slog.Logger, conf *config.Config,
) (repository.HistoryRepository, func() error, error) {
	switch conf.Storage.Driver {
	case config.StorageRedis:
		client, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisHistoryRepository(logger, client), client.Close, nil
	case config.StorageFile, "":
		return repository.NewFileHistoryRepository(logger, conf.Storage.HistoryPath), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}
}
