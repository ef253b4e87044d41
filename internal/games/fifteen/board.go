package fifteen

import (
	"math/rand"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

// Side is the board dimension.
const Side = 4

// Cells is the number of slots on the board.
const Cells = Side * Side

// Empty marks the blank slot.
const Empty = 0

// Board holds the tiles in row-major order. Exactly one slot is Empty and
// every value 1..15 appears exactly once.
type Board [Cells]int

// State is one position of a puzzle round.
type State struct {
	Board   Board
	Moves   int
	Seconds int
	Won     bool
}

// Solved returns the goal configuration: 1..15 followed by the blank.
func Solved() Board {
	var b Board
	for i := 0; i < Cells-1; i++ {
		b[i] = i + 1
	}
	b[Cells-1] = Empty
	return b
}

// InitBoard returns a uniform random permutation of the 16 slots
// (Fisher-Yates). Half of these boards cannot be solved.
func InitBoard(rng *rand.Rand) Board {
	b := Solved()
	for i := Cells - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		b[i], b[j] = b[j], b[i]
	}
	return b
}

// ShuffleSolvable scrambles the solved board with a random walk of legal
// slides, so the result is always solvable. The walk never undoes the
// previous slide and never stops on the solved board.
func ShuffleSolvable(rng *rand.Rand, moves int) Board {
	b := Solved()
	last := -1
	for n := 0; n < moves || (moves > 0 && IsWin(b)); n++ {
		empty := EmptyIndex(b)
		var options []int
		for _, idx := range Neighbors(empty) {
			if idx != last {
				options = append(options, idx)
			}
		}
		pick := options[rng.Intn(len(options))]
		b[empty], b[pick] = b[pick], b[empty]
		last = empty
	}
	return b
}

// EmptyIndex returns the slot holding the blank, or -1 if there is none.
func EmptyIndex(b Board) int {
	for i, v := range b {
		if v == Empty {
			return i
		}
	}
	return -1
}

// Neighbors returns the slots one step away from index in the same row or column.
func Neighbors(index int) []int {
	if index < 0 || index >= Cells {
		return nil
	}
	row, col := index/Side, index%Side
	var out []int
	if row > 0 {
		out = append(out, index-Side)
	}
	if row < Side-1 {
		out = append(out, index+Side)
	}
	if col > 0 {
		out = append(out, index-1)
	}
	if col < Side-1 {
		out = append(out, index+1)
	}
	return out
}

// IsMovable reports whether the tile at index is adjacent to the blank.
func IsMovable(b Board, index int) bool {
	if index < 0 || index >= Cells {
		return false
	}
	empty := EmptyIndex(b)
	if empty < 0 || index == empty {
		return false
	}
	dr := core.Abs(index/Side - empty/Side)
	dc := core.Abs(index%Side - empty%Side)
	return dr+dc == 1
}

// ApplyMove slides the tile at index into the blank. An illegal index
// returns s unchanged.
func ApplyMove(s State, index int) State {
	if !IsMovable(s.Board, index) {
		return s
	}
	next := s
	empty := EmptyIndex(next.Board)
	next.Board[empty], next.Board[index] = next.Board[index], next.Board[empty]
	next.Moves++
	next.Won = IsWin(next.Board)
	return next
}

// IsWin reports whether the board is in the solved order.
func IsWin(b Board) bool {
	return b == Solved()
}

// IsSolvable applies the 4x4 parity rule: with the blank on an odd row
// counted from the bottom the inversion count must be even, otherwise odd.
func IsSolvable(b Board) bool {
	inversions := 0
	for i := 0; i < Cells; i++ {
		if b[i] == Empty {
			continue
		}
		for j := i + 1; j < Cells; j++ {
			if b[j] != Empty && b[j] < b[i] {
				inversions++
			}
		}
	}
	rowFromBottom := Side - EmptyIndex(b)/Side
	if rowFromBottom%2 == 1 {
		return inversions%2 == 0
	}
	return inversions%2 == 1
}

// Valid reports whether b holds exactly one blank and each of 1..15 once.
func Valid(b Board) bool {
	var seen [Cells]bool
	for _, v := range b {
		if v < 0 || v >= Cells || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
