package domain

import "fmt"

// Order is the display order of the move navigator. It is a view preference
// and never affects game semantics.
type Order uint8

const (
	Ascending Order = iota
	Descending
)

// entry is one history snapshot: the board after a ply and the move that
// produced it. The initial entry has no move.
type entry struct {
	board Board
	move  *Move
}

// Game holds the linear history of board snapshots, the active move pointer,
// and the move-list display preference. The next mover is derived from the
// pointer (X when it is even), never stored, so it cannot drift.
type Game struct {
	history []entry
	current int
	order   Order
}

// New returns a game with an empty board and X to move.
func New() *Game {
	return &Game{history: []entry{{}}}
}

// CurrentMove returns the active history index.
func (g *Game) CurrentMove() int { return g.current }

// Len returns the number of history entries.
func (g *Game) Len() int { return len(g.history) }

// CurrentBoard returns the board snapshot at the active history index.
func (g *Game) CurrentBoard() Board { return g.history[g.current].board }

// NextPlayer returns the mark that moves from the current position.
func (g *Game) NextPlayer() Cell {
	if g.current%2 == 0 {
		return X
	}
	return O
}

// Verdict classifies the current board.
func (g *Game) Verdict() Verdict { return Evaluate(g.CurrentBoard()) }

// Play places the next mover's mark at index (0..8) on the current board and
// reports whether the move was applied. A play on a decided board, an
// occupied cell, or an index off the board is rejected with no state change.
// A successful play discards any history beyond the current entry: time
// travel followed by a play starts a fresh branch and the old future is gone.
func (g *Game) Play(index int) bool {
	if index < 0 || index > 8 {
		return false
	}
	board := g.CurrentBoard()
	if Evaluate(board).Winner != Empty || board[index] != Empty {
		return false
	}
	board[index] = g.NextPlayer()
	g.history = append(g.history[:g.current+1], entry{
		board: board,
		move:  &Move{Row: index / 3, Col: index % 3},
	})
	g.current = len(g.history) - 1
	return true
}

// JumpTo moves the active pointer to history entry i without touching the
// history itself. The index must refer to an existing entry; callers own
// that contract.
func (g *Game) JumpTo(i int) {
	if i < 0 || i >= len(g.history) {
		panic(fmt.Sprintf("domain: jump to move %d outside history of length %d", i, len(g.history)))
	}
	g.current = i
}

// ToggleOrder flips the move-list display order.
func (g *Game) ToggleOrder() {
	if g.order == Ascending {
		g.order = Descending
	} else {
		g.order = Ascending
	}
}

// Order returns the current move-list display order.
func (g *Game) Order() Order { return g.order }

// Status returns the status line for the current position.
func (g *Game) Status() string {
	switch v := g.Verdict(); {
	case v.Winner != Empty:
		return "Winner: " + v.Winner.String()
	case v.Draw:
		return "It's a draw!!"
	default:
		return "Next Player: " + g.NextPlayer().String()
	}
}

// MoveItem describes one history entry for the move navigator.
type MoveItem struct {
	Index   int
	Label   string
	Current bool // the active entry; rendered as a marker, not a link
}

// MoveList returns one item per history entry, labelled for navigation. The
// active entry is marked instead of offered as a jump target. The sequence
// is reversed when the display order is Descending.
func (g *Game) MoveList() []MoveItem {
	items := make([]MoveItem, len(g.history))
	for i, e := range g.history {
		it := MoveItem{Index: i}
		switch {
		case i == g.current:
			it.Current = true
			it.Label = fmt.Sprintf("You are at move #%d", i)
		case i == 0:
			it.Label = "Go to game start"
		default:
			it.Label = fmt.Sprintf("Go to move #%d (%d,%d)", i, e.move.Row, e.move.Col)
		}
		items[i] = it
	}
	if g.order == Descending {
		for l, r := 0, len(items)-1; l < r; l, r = l+1, r-1 {
			items[l], items[r] = items[r], items[l]
		}
	}
	return items
}
