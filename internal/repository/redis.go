package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const historyKey = "history"

type redisHistory struct {
	logger *slog.Logger
	client *redis.Client
}

// NewRedisHistoryRepository keeps one JSON document per match in a redis list.
func NewRedisHistoryRepository(logger *slog.Logger, client *redis.Client) HistoryRepository {
	return &redisHistory{
		logger: logger.With("component", "redis-history"),
		client: client,
	}
}

func (that *redisHistory) Append(ctx context.Context, record *entity.GameRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal record: %w", err)
	}

	if err = that.client.RPush(ctx, historyKey, recordJSON).Err(); err != nil {
		return fmt.Errorf("failed to push record: %w", err)
	}

	return nil
}

func (that *redisHistory) List(ctx context.Context) ([]entity.GameRecord, error) {
	entries, err := that.client.LRange(ctx, historyKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	records := make([]entity.GameRecord, 0, len(entries))
	for i, entry := range entries {
		var record entity.GameRecord
		if err = json.Unmarshal([]byte(entry), &record); err != nil {
			that.logger.Warn("skipping undecodable record", "index", i, "error", err)
			continue
		}

		records = append(records, record)
	}

	return records, nil
}
