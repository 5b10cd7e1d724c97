package domain

// Cell represents a board cell state.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

// String returns the display symbol for the cell, empty string for Empty.
func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Board is a fixed 3x3 board stored row-major (index = row*3 + col).
type Board [9]Cell

// Move identifies the cell written by the ply that produced a snapshot.
type Move struct {
	Row int
	Col int
}

// winLines holds the 8 winning triples in canonical order: rows top to
// bottom, columns left to right, then both diagonals.
var winLines = [8][3]int{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// Verdict classifies a board: a winner with its line, a draw, or ongoing.
type Verdict struct {
	Winner Cell   // Empty unless a line is complete
	Line   [3]int // meaningful only when Winner != Empty
	Draw   bool
}

// Over reports whether the position is decided (won or drawn).
func (v Verdict) Over() bool { return v.Winner != Empty || v.Draw }

// Evaluate classifies b. The first uniformly marked triple in canonical
// order wins and is reported with its cell indices; a full board with no
// triple is a draw; anything else is an ongoing game.
func Evaluate(b Board) Verdict {
	for _, ln := range winLines {
		if b[ln[0]] != Empty && b[ln[0]] == b[ln[1]] && b[ln[1]] == b[ln[2]] {
			return Verdict{Winner: b[ln[0]], Line: ln}
		}
	}
	for _, c := range b {
		if c == Empty {
			return Verdict{}
		}
	}
	return Verdict{Draw: true}
}
