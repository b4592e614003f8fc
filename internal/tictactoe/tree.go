package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// TreeNode is one vertex of a display tree. Parent is -1 and Move is NoMove on the root.
type TreeNode struct {
	ID       int           `json:"id"`
	Parent   int           `json:"pai"`
	Depth    int           `json:"profundidade"`
	Board    entity.Board  `json:"tabuleiro"`
	ToMove   entity.Mark   `json:"jogadorAtual"`
	Move     int           `json:"jogada"`
	Result   entity.Result `json:"resultado"`
	Children []int         `json:"filhos"`
}

// Tree is an arena of nodes indexed by ID; Nodes[0] is the root.
type Tree struct {
	Depth int        `json:"profundidade"`
	Nodes []TreeNode `json:"nos"`
}

func (that *Tree) Root() TreeNode {
	return that.Nodes[0]
}

// BuildTree expands every legal continuation of board up to depth plies for display.
// It is unrelated to Search, which never materializes nodes.
func BuildTree(board entity.Board, player entity.Mark, depth int) (*Tree, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidDepth, depth)
	}

	if err := validatePosition(board, player); err != nil {
		return nil, err
	}

	tree := &Tree{Depth: depth}
	tree.expand(-1, board, player, NoMove, 0)

	return tree, nil
}

func (that *Tree) expand(parent int, board entity.Board, toMove entity.Mark, move, depth int) int {
	id := len(that.Nodes)
	result := board.TerminalResult()

	that.Nodes = append(that.Nodes, TreeNode{
		ID:       id,
		Parent:   parent,
		Depth:    depth,
		Board:    board,
		ToMove:   toMove,
		Move:     move,
		Result:   result,
		Children: []int{},
	})

	if result.IsTerminal() || depth == that.Depth {
		return id
	}

	for _, pos := range board.LegalMoves() {
		child, _ := board.ApplyMove(pos, toMove)
		childID := that.expand(id, child, toMove.Opponent(), pos, depth+1)
		that.Nodes[id].Children = append(that.Nodes[id].Children, childID)
	}

	return id
}
