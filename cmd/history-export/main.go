package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-minimax/internal"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/archive"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

func main() {
	configPath := flag.String("config", "./config.yml", "path to the YAML configuration file")
	outPath := flag.String("out", "data/historico.parquet", "parquet file to write")
	flag.Parse()

	if err := run(*configPath, *outPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, outPath string) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: conf.SlogLevel()}))

	ctx, cancel := app.NotifyContext(logger)
	defer cancel()

	historyRepo, closeRepo, err := app.NewHistoryRepository(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	records, err := service.NewHistoryService(logger, historyRepo).List(ctx)
	if err != nil {
		return err
	}

	if err = archive.WriteParquet(outPath, records); err != nil {
		return err
	}

	logger.Info("history exported", "records", len(records), "out", outPath)

	return nil
}
