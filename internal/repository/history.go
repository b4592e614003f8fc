package repository

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// HistoryRepository keeps finished matches in the order they were appended.
type HistoryRepository interface {
	Append(ctx context.Context, record *entity.GameRecord) error
	List(ctx context.Context) ([]entity.GameRecord, error)
}
