package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Result is the outcome of a board. Only ResultUndetermined is non-terminal.
type Result string

const (
	ResultUndetermined Result = ""
	ResultX            Result = "X"
	ResultO            Result = "O"
	ResultDraw         Result = "Empate"
)

func (that Result) IsTerminal() bool {
	return that != ResultUndetermined
}

// Winner returns the winning mark, or Empty for a draw or an ongoing game.
func (that Result) Winner() Mark {
	switch that {
	case ResultX:
		return PlayerX
	case ResultO:
		return PlayerO
	default:
		return Empty
	}
}

func (that Result) MarshalJSON() ([]byte, error) {
	if that == ResultUndetermined {
		return []byte("null"), nil
	}

	return json.Marshal(string(that))
}

func (that *Result) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*that = ResultUndetermined
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: result must be a string or null", apperror.ErrInvalidRecord)
	}

	switch result := Result(raw); result {
	case ResultUndetermined, ResultX, ResultO, ResultDraw:
		*that = result
		return nil
	default:
		return fmt.Errorf("%w: unknown result %q", apperror.ErrInvalidRecord, raw)
	}
}
