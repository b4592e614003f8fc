package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// MatchKind tells who played a stored game.
type MatchKind string

const (
	KindAIvsAI    MatchKind = "IAxIA"
	KindAIvsHuman MatchKind = "IAxHumano"
)

func (that MatchKind) IsValid() bool {
	return that == KindAIvsAI || that == KindAIvsHuman
}

// Action is one ply of a stored game.
type Action struct {
	Player   Mark `json:"jogador"`
	Position int  `json:"posicao"`
}

// GameRecord is one entry of the match history document.
type GameRecord struct {
	ID          string    `json:"id,omitempty"`
	Kind        MatchKind `json:"tipo"`
	Date        time.Time `json:"data"`
	Result      Result    `json:"resultado"`
	FinalBoard  Board     `json:"tabuleiroFinal"`
	Actions     []Action  `json:"acoes"`
	FirstPlayer Mark      `json:"primeiroJogador,omitempty"`
}

func (that *GameRecord) Validate() error {
	if that.Kind == "" {
		return fmt.Errorf("%w: tipo is required", apperror.ErrInvalidRecord)
	}

	if !that.Kind.IsValid() {
		return fmt.Errorf("%w: unknown tipo %q", apperror.ErrInvalidRecord, string(that.Kind))
	}

	if that.FirstPlayer != Empty && !that.FirstPlayer.IsPlayer() {
		return fmt.Errorf("%w: unknown primeiroJogador %q", apperror.ErrInvalidRecord, string(that.FirstPlayer))
	}

	if err := that.FinalBoard.Validate(); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidRecord, err)
	}

	for i, action := range that.Actions {
		if !action.Player.IsPlayer() {
			return fmt.Errorf("%w: action %d has no player", apperror.ErrInvalidRecord, i)
		}

		if action.Position < 0 || action.Position >= BoardSize {
			return fmt.Errorf("%w: action %d targets cell %d", apperror.ErrInvalidRecord, i, action.Position)
		}
	}

	return nil
}
