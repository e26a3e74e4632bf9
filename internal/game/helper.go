package game

import "fmt"

// WinCombos lists the eight winning lines as row-major cell indexes.
var WinCombos = [8][3]int{
	// Rows
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},

	// Columns
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},

	// Diagonals
	{0, 4, 8},
	{2, 4, 6},
}

// Position is a zero-based board coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PositionFromIndex maps a row-major index 0..8 to a position.
func PositionFromIndex(idx int) Position {
	return Position{Row: idx / Size, Col: idx % Size}
}

// PositionFromCell maps a human cell number 1..9 to a position.
func PositionFromCell(cell int) Position {
	return PositionFromIndex(cell - 1)
}

func (p Position) Index() int {
	return p.Row*Size + p.Col
}

// Cell is the 1-based cell number shown to humans.
func (p Position) Cell() int {
	return p.Index() + 1
}

func (p Position) InBounds() bool {
	return p.Row >= BorderMin && p.Row <= BorderMax && p.Col >= BorderMin && p.Col <= BorderMax
}

// String renders the position 1-based as "row - col".
func (p Position) String() string {
	return fmt.Sprintf("%d - %d", p.Row+1, p.Col+1)
}

// At returns the mark stored at p.
func (b Board) At(p Position) PlayerMark {
	return b[p.Row][p.Col]
}

// CheckWinner returns the mark owning the first complete line, or None.
func CheckWinner(board Board) PlayerMark {
	for _, combo := range WinCombos {
		a := board.At(PositionFromIndex(combo[0]))
		if a == None {
			continue
		}
		if a == board.At(PositionFromIndex(combo[1])) && a == board.At(PositionFromIndex(combo[2])) {
			return a
		}
	}
	return None
}

func IsBoardFull(board Board) bool {
	for r := range Size {
		for c := range Size {
			if board[r][c] == None {
				return false
			}
		}
	}
	return true
}

// FreePositions lists the empty cells in row-major order.
func FreePositions(board Board) []Position {
	free := make([]Position, 0, Cells)
	for r := range Size {
		for c := range Size {
			if board[r][c] == None {
				free = append(free, Position{Row: r, Col: c})
			}
		}
	}
	return free
}

// BoardArrayToSlice converts a board into nested slices for JSON output.
func BoardArrayToSlice(board Board) [][]PlayerMark {
	out := make([][]PlayerMark, Size)
	for i := range Size {
		out[i] = make([]PlayerMark, Size)
		copy(out[i], board[i][:])
	}
	return out
}
