package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type fileHistory struct {
	logger *slog.Logger
	path   string

	mu sync.Mutex
}

// NewFileHistoryRepository stores the whole history as one indented JSON array at path.
func NewFileHistoryRepository(logger *slog.Logger, path string) HistoryRepository {
	return &fileHistory{
		logger: logger.With("component", "file-history", "path", path),
		path:   path,
	}
}

func (that *fileHistory) Append(ctx context.Context, record *entity.GameRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	records := that.load()
	records = append(records, *record)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err = writeAtomic(that.path, data); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}

	return nil
}

func (that *fileHistory) List(ctx context.Context) ([]entity.GameRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return that.load(), nil
}

// load treats a missing or unreadable file as an empty history.
func (that *fileHistory) load() []entity.GameRecord {
	data, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []entity.GameRecord{}
	}

	if err != nil {
		that.logger.Warn("could not read history, starting empty", "error", err)
		return []entity.GameRecord{}
	}

	var records []entity.GameRecord
	if err = json.Unmarshal(data, &records); err != nil {
		that.logger.Warn("history file is corrupt, starting empty", "error", err)
		return []entity.GameRecord{}
	}

	if records == nil {
		return []entity.GameRecord{}
	}

	return records
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return nil
}
