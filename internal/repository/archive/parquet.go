package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const schemaName = "match_history_v1"

// MatchRow is one finished match flattened for columnar analysis.
// Board is nine characters in row-major order with '-' for empty cells.
// Players and Positions are parallel: the i-th move was Players[i] on Positions[i].
type MatchRow struct {
	ID          string   `parquet:"id,optional"`
	Kind        string   `parquet:"tipo,dict"`
	PlayedAtMS  int64    `parquet:"data_ms"`
	Result      string   `parquet:"resultado,dict,optional"`
	FirstPlayer string   `parquet:"primeiro_jogador,dict,optional"`
	Board       string   `parquet:"tabuleiro_final"`
	Moves       int32    `parquet:"jogadas"`
	Players     []string `parquet:"jogadores"`
	Positions   []int32  `parquet:"posicoes"`
}

func NewMatchRow(record entity.GameRecord) MatchRow {
	row := MatchRow{
		ID:          record.ID,
		Kind:        string(record.Kind),
		PlayedAtMS:  record.Date.UnixMilli(),
		Result:      string(record.Result),
		FirstPlayer: string(record.FirstPlayer),
		Board:       compactBoard(record.FinalBoard),
		Moves:       int32(len(record.Actions)),
		Players:     make([]string, 0, len(record.Actions)),
		Positions:   make([]int32, 0, len(record.Actions)),
	}

	for _, action := range record.Actions {
		row.Players = append(row.Players, string(action.Player))
		row.Positions = append(row.Positions, int32(action.Position))
	}

	return row
}

func compactBoard(board entity.Board) string {
	var sb strings.Builder

	for _, cell := range board {
		if cell == entity.Empty {
			sb.WriteByte('-')
			continue
		}
		sb.WriteString(string(cell))
	}

	return sb.String()
}

// WriteParquet writes one row per record to outPath through a temp file and rename.
func WriteParquet(outPath string, records []entity.GameRecord) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	rows := make([]MatchRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, NewMatchRow(record))
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", schemaName),
	); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}

	return nil
}

// ReadParquet loads every row of a file written by WriteParquet.
func ReadParquet(path string) ([]MatchRow, error) {
	rows, err := parquet.ReadFile[MatchRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}

	return rows, nil
}
