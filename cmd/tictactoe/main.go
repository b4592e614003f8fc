package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	app "github.com/rocketscienceinc/tictactoe-minimax/internal"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/cli"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

func main() {
	configPath := flag.String("config", "./config.yml", "path to the YAML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// the terminal belongs to the board, so logs go to a file
	logFile, err := os.OpenFile(conf.CLI.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: conf.SlogLevel()}))

	ctx, cancel := app.NotifyContext(logger)
	defer cancel()

	historyRepo, closeRepo, err := app.NewHistoryRepository(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	matches := service.NewMatchService(logger, service.NewHistoryService(logger, historyRepo))

	program := tea.NewProgram(cli.New(ctx, matches, conf.Replay.MoveDelay), tea.WithContext(ctx))
	if _, err = program.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}

	return nil
}
