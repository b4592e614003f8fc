package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const BoardSize = 9

// WinCombos lists the 3 rows, 3 columns and 2 diagonals of the grid.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

var positionLabels = [BoardSize]string{
	"top-left corner", "top", "top-right corner",
	"left", "center", "right",
	"bottom-left corner", "bottom", "bottom-right corner",
}

// Board is a 3x3 grid in row-major order. It is a value: every transform returns a new Board.
type Board [BoardSize]Mark

// ParseBoard is the only way to turn an arbitrary cell sequence into a Board.
func ParseBoard(cells []Mark) (Board, error) {
	var board Board

	if len(cells) != BoardSize {
		return Board{}, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, BoardSize, len(cells))
	}

	copy(board[:], cells)

	if err := board.Validate(); err != nil {
		return Board{}, err
	}

	return board, nil
}

func (that Board) Validate() error {
	for i, cell := range that {
		if cell != Empty && !cell.IsPlayer() {
			return fmt.Errorf("%w: cell %d holds %q", apperror.ErrInvalidBoard, i, string(cell))
		}
	}

	return nil
}

// TerminalResult reports the winner, a draw, or ResultUndetermined. A winning line outranks a full board.
func (that Board) TerminalResult() Result {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != Empty && a == b && b == c {
			return Result(a)
		}
	}

	for _, cell := range that {
		if cell == Empty {
			return ResultUndetermined
		}
	}

	return ResultDraw
}

// LegalMoves returns the empty cells in ascending order.
func (that Board) LegalMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			moves = append(moves, i)
		}
	}

	return moves
}

// ApplyMove returns a copy of the board with player placed at pos.
func (that Board) ApplyMove(pos int, player Mark) (Board, error) {
	if pos < 0 || pos >= BoardSize {
		return that, fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, pos)
	}

	if !player.IsPlayer() {
		return that, fmt.Errorf("%w: %q cannot move", apperror.ErrInvalidMove, string(player))
	}

	if that[pos] != Empty {
		return that, fmt.Errorf("%w: cell %d is already occupied", apperror.ErrInvalidMove, pos)
	}

	next := that
	next[pos] = player

	return next, nil
}

func (that Board) MovesMade() int {
	count := 0
	for _, cell := range that {
		if cell != Empty {
			count++
		}
	}

	return count
}

// String renders the grid one row per line with '-' for empty cells.
func (that Board) String() string {
	var sb strings.Builder

	for i, cell := range that {
		if cell == Empty {
			sb.WriteByte('-')
		} else {
			sb.WriteString(string(cell))
		}

		if (i+1)%3 == 0 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var cells []Mark
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidBoard, err)
	}

	board, err := ParseBoard(cells)
	if err != nil {
		return err
	}

	*that = board

	return nil
}

// PositionLabel names a cell for people reading a move list.
func PositionLabel(pos int) string {
	if pos < 0 || pos >= BoardSize {
		return fmt.Sprintf("cell %d", pos)
	}

	return positionLabels[pos]
}
