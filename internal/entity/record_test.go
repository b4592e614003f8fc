package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

func TestGameRecord_JSON(t *testing.T) {
	t.Run("Decodes a stored history entry", func(t *testing.T) {
		// Given: an entry written by the AI vs AI screen
		data := []byte(`{
			"tipo": "IAxIA",
			"primeiroJogador": "X",
			"acoes": [{"jogador": "X", "posicao": 0}, {"jogador": "O", "posicao": 4}],
			"tabuleiroFinal": ["X", null, null, null, "O", null, null, null, null],
			"resultado": null,
			"data": "2024-05-01T12:30:00.000Z"
		}`)

		// When: decoding it
		var record GameRecord
		err := json.Unmarshal(data, &record)

		// Then: every field is populated
		require.NoError(t, err)
		assert.Equal(t, KindAIvsAI, record.Kind)
		assert.Equal(t, PlayerX, record.FirstPlayer)
		assert.Equal(t, []Action{{PlayerX, 0}, {PlayerO, 4}}, record.Actions)
		assert.Equal(t, ResultUndetermined, record.Result)
		assert.Equal(t, time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), record.Date)
		require.NoError(t, record.Validate())
	})

	t.Run("Encodes a draw and omits missing optional fields", func(t *testing.T) {
		record := GameRecord{
			Kind:   KindAIvsHuman,
			Date:   time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
			Result: ResultDraw,
		}

		data, err := json.Marshal(record)

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"tipo": "IAxHumano",
			"data": "2024-05-01T12:30:00Z",
			"resultado": "Empate",
			"tabuleiroFinal": [null,null,null,null,null,null,null,null,null],
			"acoes": null
		}`, string(data))
	})

	t.Run("Rejects an unknown result", func(t *testing.T) {
		var record GameRecord
		err := json.Unmarshal([]byte(`{"tipo":"IAxIA","resultado":"Y"}`), &record)

		require.ErrorIs(t, err, apperror.ErrInvalidRecord)
	})
}

func TestGameRecord_Validate(t *testing.T) {
	valid := func() GameRecord {
		return GameRecord{
			Kind:       KindAIvsAI,
			FinalBoard: Board{PlayerX},
			Actions:    []Action{{Player: PlayerX, Position: 0}},
		}
	}

	t.Run("Accepts a well formed record", func(t *testing.T) {
		record := valid()

		assert.NoError(t, record.Validate())
	})

	t.Run("Requires tipo", func(t *testing.T) {
		record := valid()
		record.Kind = ""

		err := record.Validate()

		require.ErrorIs(t, err, apperror.ErrInvalidRecord)
		assert.Contains(t, err.Error(), "tipo is required")
	})

	t.Run("Rejects unknown tipo", func(t *testing.T) {
		record := valid()
		record.Kind = "online"

		require.ErrorIs(t, record.Validate(), apperror.ErrInvalidRecord)
	})

	t.Run("Rejects actions outside the grid", func(t *testing.T) {
		record := valid()
		record.Actions = append(record.Actions, Action{Player: PlayerO, Position: 9})

		require.ErrorIs(t, record.Validate(), apperror.ErrInvalidRecord)
	})

	t.Run("Rejects actions without a player", func(t *testing.T) {
		record := valid()
		record.Actions = []Action{{Position: 3}}

		require.ErrorIs(t, record.Validate(), apperror.ErrInvalidRecord)
	})

	t.Run("Rejects a corrupted board", func(t *testing.T) {
		record := valid()
		record.FinalBoard[2] = "?"

		err := record.Validate()

		require.ErrorIs(t, err, apperror.ErrInvalidRecord)
		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})
}
