package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustPlay applies a sequence of cell indices, failing on any rejection.
func mustPlay(t *testing.T, g *Game, cells ...int) {
	t.Helper()
	for _, c := range cells {
		require.True(t, g.Play(c), "play at %d rejected", c)
	}
}

func TestNewGameInitialState(t *testing.T) {
	g := New()

	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 0, g.CurrentMove())
	assert.Equal(t, Board{}, g.CurrentBoard())
	assert.Equal(t, X, g.NextPlayer())
	assert.Equal(t, Ascending, g.Order())
	assert.Equal(t, "Next Player: X", g.Status())
}

func TestPlayAlternatesMarks(t *testing.T) {
	g := New()

	mustPlay(t, g, 4)
	assert.Equal(t, X, g.CurrentBoard()[4])
	assert.Equal(t, O, g.NextPlayer())
	assert.Equal(t, "Next Player: O", g.Status())

	mustPlay(t, g, 0)
	assert.Equal(t, O, g.CurrentBoard()[0])
	assert.Equal(t, X, g.NextPlayer())
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 2, g.CurrentMove())
}

func TestPlayOccupiedCellIsNoOp(t *testing.T) {
	g := New()
	mustPlay(t, g, 0)
	before := g.CurrentBoard()

	assert.False(t, g.Play(0))

	assert.Equal(t, before, g.CurrentBoard())
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 1, g.CurrentMove())
	assert.Equal(t, O, g.NextPlayer())
}

func TestPlayOffBoardIsNoOp(t *testing.T) {
	g := New()

	assert.False(t, g.Play(-1))
	assert.False(t, g.Play(9))
	assert.Equal(t, 1, g.Len())
}

func TestPlayAfterWinIsNoOp(t *testing.T) {
	g := New()
	// X takes the top row.
	mustPlay(t, g, 0, 3, 1, 4, 2)
	require.Equal(t, X, g.Verdict().Winner)
	before := g.CurrentBoard()

	assert.False(t, g.Play(8))

	assert.Equal(t, before, g.CurrentBoard())
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, 5, g.CurrentMove())
}

func TestJumpToMovesPointerOnly(t *testing.T) {
	g := New()
	mustPlay(t, g, 0, 4, 8)

	g.JumpTo(1)

	assert.Equal(t, 1, g.CurrentMove())
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, Board{0: X}, g.CurrentBoard())
	assert.Equal(t, O, g.NextPlayer())
}

func TestJumpToOutOfRangePanics(t *testing.T) {
	g := New()
	mustPlay(t, g, 0)

	assert.Panics(t, func() { g.JumpTo(2) })
	assert.Panics(t, func() { g.JumpTo(-1) })
}

func TestPlayAfterJumpDiscardsFuture(t *testing.T) {
	g := New()
	mustPlay(t, g, 0, 4, 8, 2)
	require.Equal(t, 5, g.Len())

	g.JumpTo(2)
	mustPlay(t, g, 5)

	// History is truncated to [0..2] plus the new entry; the discarded
	// branch is gone and the pointer sits on the new last entry.
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 3, g.CurrentMove())
	want := Board{0: X, 4: O, 5: X}
	assert.Equal(t, want, g.CurrentBoard())
}

func TestMoverParityRecomputedAfterJump(t *testing.T) {
	g := New()
	mustPlay(t, g, 0, 4, 8)

	g.JumpTo(0)
	require.Equal(t, X, g.NextPlayer())
	mustPlay(t, g, 8)

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, Board{8: X}, g.CurrentBoard())
}

func TestToggleOrderIsOwnInverse(t *testing.T) {
	g := New()
	mustPlay(t, g, 0, 4)
	before := g.MoveList()
	board := g.CurrentBoard()

	g.ToggleOrder()
	assert.Equal(t, Descending, g.Order())
	reversed := g.MoveList()
	require.Len(t, reversed, 3)
	assert.Equal(t, 2, reversed[0].Index)
	assert.Equal(t, 0, reversed[2].Index)

	g.ToggleOrder()
	assert.Equal(t, Ascending, g.Order())
	assert.Equal(t, before, g.MoveList())

	// Toggling never touches the game itself.
	assert.Equal(t, board, g.CurrentBoard())
	assert.Equal(t, 2, g.CurrentMove())
}

func TestMoveListLabels(t *testing.T) {
	g := New()
	mustPlay(t, g, 4, 2)
	g.JumpTo(1)

	items := g.MoveList()
	require.Len(t, items, 3)

	assert.Equal(t, "Go to game start", items[0].Label)
	assert.False(t, items[0].Current)

	assert.Equal(t, "You are at move #1", items[1].Label)
	assert.True(t, items[1].Current)

	assert.Equal(t, "Go to move #2 (0,2)", items[2].Label)
	assert.False(t, items[2].Current)
}

func TestMoveListMarksGameStartAsCurrent(t *testing.T) {
	g := New()
	mustPlay(t, g, 0)
	g.JumpTo(0)

	items := g.MoveList()

	assert.Equal(t, "You are at move #0", items[0].Label)
	assert.True(t, items[0].Current)
}

func TestFullGameToWinAndBranch(t *testing.T) {
	g := New()

	mustPlay(t, g, 0) // X
	assert.Equal(t, "Next Player: O", g.Status())
	assert.False(t, g.Play(0)) // duplicate, no-op

	mustPlay(t, g, 4, 1, 5, 2) // O, X, O, X -> X wins the top row

	v := g.Verdict()
	require.Equal(t, X, v.Winner)
	assert.Equal(t, [3]int{0, 1, 2}, v.Line)
	assert.Equal(t, "Winner: X", g.Status())
	assert.False(t, g.Play(3))

	// Time travel to the start and branch: parity restarts with X.
	g.JumpTo(0)
	mustPlay(t, g, 8)
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, Board{8: X}, g.CurrentBoard())
	assert.Equal(t, "Next Player: O", g.Status())
}

func TestDrawGame(t *testing.T) {
	g := New()
	// X O X / X O O / O X X with no completed line.
	mustPlay(t, g, 0, 1, 2, 4, 3, 5, 7, 6, 8)

	v := g.Verdict()
	assert.True(t, v.Draw)
	assert.Equal(t, Empty, v.Winner)
	assert.Equal(t, "It's a draw!!", g.Status())
	assert.Equal(t, 10, g.Len())
}
