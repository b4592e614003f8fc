package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Mark is the content of a board cell and, for X and O, the identity of a player.
type Mark string

const (
	Empty   Mark = ""
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the player moving after this one. Empty stays Empty.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// MarshalJSON encodes an empty cell as null, the way stored boards look.
func (that Mark) MarshalJSON() ([]byte, error) {
	if that == Empty {
		return []byte("null"), nil
	}

	return json.Marshal(string(that))
}

func (that *Mark) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*that = Empty
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: mark must be a string or null", apperror.ErrInvalidPlayer)
	}

	mark := Mark(raw)
	if mark != Empty && !mark.IsPlayer() {
		return fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidPlayer, raw)
	}

	*that = mark

	return nil
}
