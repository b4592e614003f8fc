package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type HistoryService interface {
	Append(ctx context.Context, record *entity.GameRecord) (*entity.GameRecord, error)
	List(ctx context.Context) ([]entity.GameRecord, error)
}

type historyRepo interface {
	Append(ctx context.Context, record *entity.GameRecord) error
	List(ctx context.Context) ([]entity.GameRecord, error)
}

type historyService struct {
	logger *slog.Logger
	repo   historyRepo

	now   func() time.Time
	newID func() string
}

func NewHistoryService(logger *slog.Logger, repo historyRepo) HistoryService {
	return &historyService{
		logger: logger.With("component", "history-service"),
		repo:   repo,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Append validates the record, fills in a missing id and date, and stores it.
func (that *historyService) Append(ctx context.Context, record *entity.GameRecord) (*entity.GameRecord, error) {
	if record == nil {
		return nil, fmt.Errorf("%w: empty record", apperror.ErrInvalidRecord)
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	stored := *record
	if stored.ID == "" {
		stored.ID = that.newID()
	}

	if stored.Date.IsZero() {
		stored.Date = that.now().UTC()
	}

	if err := that.repo.Append(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not save record: %w", err)
	}

	that.logger.Debug("record saved", "id", stored.ID, "tipo", stored.Kind, "resultado", stored.Result)

	return &stored, nil
}

// List returns records in the order they were appended.
func (that *historyService) List(ctx context.Context) ([]entity.GameRecord, error) {
	records, err := that.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list history: %w", err)
	}

	return records, nil
}
