package repository

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func newRecord(id string) *entity.GameRecord {
	return &entity.GameRecord{
		ID:          id,
		Kind:        entity.KindAIvsAI,
		Date:        time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Result:      entity.ResultX,
		FinalBoard:  entity.Board{entity.PlayerX, entity.PlayerX, entity.PlayerX, entity.PlayerO, entity.PlayerO},
		Actions:     []entity.Action{{Player: entity.PlayerX, Position: 0}},
		FirstPlayer: entity.PlayerX,
	}
}

func TestFileHistoryRepository(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Missing file lists as empty", func(t *testing.T) {
		// Given: a path nobody wrote to yet
		repo := NewFileHistoryRepository(logger, filepath.Join(t.TempDir(), "historico_jogos.json"))

		// When: listing
		records, err := repo.List(ctx)

		// Then: an empty, non-nil history comes back
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("Appends in order and writes indented JSON", func(t *testing.T) {
		// Given: an empty history file
		path := filepath.Join(t.TempDir(), "historico_jogos.json")
		repo := NewFileHistoryRepository(logger, path)

		// When: appending two records
		require.NoError(t, repo.Append(ctx, newRecord("a")))
		require.NoError(t, repo.Append(ctx, newRecord("b")))

		// Then: both are listed in append order
		records, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "a", records[0].ID)
		assert.Equal(t, "b", records[1].ID)
		assert.Equal(t, *newRecord("a"), records[0])

		// Then: the document is a two space indented array
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "[\n  {\n    \"id\": \"a\""))

		var raw []map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.Len(t, raw, 2)
	})

	t.Run("Corrupt file is treated as empty and replaced on append", func(t *testing.T) {
		// Given: a file that is not a JSON array
		path := filepath.Join(t.TempDir(), "historico_jogos.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
		repo := NewFileHistoryRepository(logger, path)

		// When: listing and then appending
		records, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)

		require.NoError(t, repo.Append(ctx, newRecord("fresh")))

		// Then: the file now holds only the new record
		records, err = repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "fresh", records[0].ID)
	})

	t.Run("Reads the document written by the browser screens", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "historico_jogos.json")
		require.NoError(t, os.WriteFile(path, []byte(`[
  {
    "tipo": "IAxHumano",
    "primeiroJogador": "X",
    "acoes": [{"jogador": "X", "posicao": 4}],
    "tabuleiroFinal": [null, null, null, null, "X", null, null, null, null],
    "resultado": null,
    "data": "2024-05-01T10:00:00.000Z"
  }
]`), 0o600))
		repo := NewFileHistoryRepository(logger, path)

		records, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, entity.KindAIvsHuman, records[0].Kind)
		assert.Equal(t, entity.PlayerX, records[0].FinalBoard[4])
	})

	t.Run("Concurrent appends are all kept", func(t *testing.T) {
		repo := NewFileHistoryRepository(logger, filepath.Join(t.TempDir(), "historico_jogos.json"))

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, repo.Append(ctx, newRecord("")))
			}()
		}
		wg.Wait()

		records, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 10)
	})

	t.Run("Write failure is reported", func(t *testing.T) {
		// Given: a path inside a directory that does not exist
		repo := NewFileHistoryRepository(logger, filepath.Join(t.TempDir(), "missing", "historico_jogos.json"))

		// When: appending
		err := repo.Append(ctx, newRecord("a"))

		// Then: the error reaches the caller
		require.Error(t, err)
	})
}
