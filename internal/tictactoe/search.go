package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	// WinScore is the value of a win found at the search root; each ply of delay costs one point.
	WinScore = 10

	// NoMove marks an Outcome computed on a terminal board.
	NoMove = -1
)

// Outcome is the minimax value of a position from X's point of view and the move that reaches it.
type Outcome struct {
	Score int
	Move  int
}

// Stats counts the work done by one search.
type Stats struct {
	Nodes int
}

// Search returns the optimal move for player on board under perfect play by both sides.
// X maximizes, O minimizes; among equal scores the lowest cell index wins.
func Search(board entity.Board, player entity.Mark) (Outcome, error) {
	outcome, _, err := SearchWithStats(board, player)
	return outcome, err
}

func SearchWithStats(board entity.Board, player entity.Mark) (Outcome, Stats, error) {
	if err := validatePosition(board, player); err != nil {
		return Outcome{Move: NoMove}, Stats{}, err
	}

	var stats Stats
	outcome := alphaBeta(board, player, 0, math.MinInt, math.MaxInt, &stats)

	return outcome, stats, nil
}

func validatePosition(board entity.Board, player entity.Mark) error {
	if err := board.Validate(); err != nil {
		return err
	}

	if !player.IsPlayer() {
		return fmt.Errorf("%w: %q cannot be the player to move", apperror.ErrInvalidPlayer, string(player))
	}

	return nil
}

// terminalScore scores a finished board found depth plies below the root.
func terminalScore(result entity.Result, depth int) int {
	switch result {
	case entity.ResultX:
		return WinScore - depth
	case entity.ResultO:
		return -(WinScore - depth)
	default:
		return 0
	}
}

func alphaBeta(board entity.Board, player entity.Mark, depth, alpha, beta int, stats *Stats) Outcome {
	stats.Nodes++

	if result := board.TerminalResult(); result.IsTerminal() {
		return Outcome{Score: terminalScore(result, depth), Move: NoMove}
	}

	maximizing := player == entity.PlayerX

	best := Outcome{Score: math.MaxInt, Move: NoMove}
	if maximizing {
		best.Score = math.MinInt
	}

	for _, pos := range board.LegalMoves() {
		// pos comes from LegalMoves and player was validated, so the move cannot fail.
		child, _ := board.ApplyMove(pos, player)
		score := alphaBeta(child, player.Opponent(), depth+1, alpha, beta, stats).Score

		if maximizing {
			if score > best.Score {
				best = Outcome{Score: score, Move: pos}
			}
			alpha = max(alpha, score)
		} else {
			if score < best.Score {
				best = Outcome{Score: score, Move: pos}
			}
			beta = min(beta, score)
		}

		if beta <= alpha {
			break
		}
	}

	return best
}
