package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func TestBuildTree(t *testing.T) {
	t.Run("Node counts grow with every ply", func(t *testing.T) {
		cases := []struct {
			depth int
			nodes int
		}{
			{depth: 0, nodes: 1},
			{depth: 1, nodes: 10},
			{depth: 2, nodes: 82},
		}

		for _, tc := range cases {
			// When: expanding the empty board
			tree, err := BuildTree(entity.Board{}, x, tc.depth)

			// Then: the arena holds every continuation
			require.NoError(t, err)
			assert.Len(t, tree.Nodes, tc.nodes, "depth %d", tc.depth)
		}
	})

	t.Run("Links parents and children by id", func(t *testing.T) {
		// Given: a one ply tree
		tree, err := BuildTree(entity.Board{}, x, 1)
		require.NoError(t, err)

		// Then: the root points at nine children, each one cell filled by X
		root := tree.Root()
		assert.Equal(t, -1, root.Parent)
		assert.Equal(t, NoMove, root.Move)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, root.Children)

		for _, id := range root.Children {
			node := tree.Nodes[id]
			assert.Equal(t, 0, node.Parent)
			assert.Equal(t, 1, node.Depth)
			assert.Equal(t, o, node.ToMove)
			assert.Equal(t, x, node.Board[node.Move])
			assert.Empty(t, node.Children)
		}
	})

	t.Run("Terminal nodes are leaves", func(t *testing.T) {
		// Given: X wins on the next move at cell 2
		board := entity.Board{x, x, e, o, o, e, e, e, e}

		// When: expanding deeper than the game lasts at that branch
		tree, err := BuildTree(board, x, 3)
		require.NoError(t, err)

		// Then: the winning child has no children
		winning := tree.Nodes[tree.Root().Children[0]]
		assert.Equal(t, 2, winning.Move)
		assert.Equal(t, entity.ResultX, winning.Result)
		assert.Empty(t, winning.Children)
	})

	t.Run("Terminal root has no children", func(t *testing.T) {
		board := entity.Board{x, o, x, x, o, o, o, x, x}

		tree, err := BuildTree(board, o, 4)

		require.NoError(t, err)
		assert.Len(t, tree.Nodes, 1)
		assert.Equal(t, entity.ResultDraw, tree.Root().Result)
	})

	t.Run("Negative depth is rejected", func(t *testing.T) {
		_, err := BuildTree(entity.Board{}, x, -1)

		require.ErrorIs(t, err, apperror.ErrInvalidDepth)
	})
}
