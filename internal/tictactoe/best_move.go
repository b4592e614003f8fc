package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Move is the engine's choice for the player to move.
type Move struct {
	Position int `json:"posicao"`
	Score    int `json:"pontuacao"`
}

// BestMove picks the move for player. A finished board has no move and yields ErrGameAlreadyOver.
func BestMove(board entity.Board, player entity.Mark) (Move, error) {
	if err := validatePosition(board, player); err != nil {
		return Move{}, err
	}

	if result := board.TerminalResult(); result.IsTerminal() {
		return Move{}, fmt.Errorf("%w: result %s", apperror.ErrGameAlreadyOver, describeResult(result))
	}

	outcome, err := Search(board, player)
	if err != nil {
		return Move{}, fmt.Errorf("search failed: %w", err)
	}

	return Move{Position: outcome.Move, Score: outcome.Score}, nil
}

func describeResult(result entity.Result) string {
	if result == entity.ResultDraw {
		return "draw"
	}

	return string(result) + " wins"
}
