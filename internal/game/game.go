package game

import (
	"errors"
	"math/rand/v2"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string
type GameResult string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Game results
	InProgress GameResult = ""
	XWins      GameResult = "X"
	OWins      GameResult = "O"
	Draw       GameResult = "Draw"

	// Board boundaries
	BorderMin = 0
	BorderMax = 2

	Size  = 3
	Cells = Size * Size
)

var (
	ErrGameFinished = errors.New("game already finished")
	ErrOutOfBounds  = errors.New("invalid move")
	ErrCellOccupied = errors.New("cell already occupied")
)

// Board is a 3x3 grid addressed as Board[row][col].
type Board [Size][Size]PlayerMark

type Game struct {
	Board       Board
	CurrentTurn PlayerMark
	Winner      PlayerMark
	Moves       int
}

// NewGame returns an empty game where first moves first.
func NewGame(first PlayerMark) *Game {
	return &Game{
		Board:       Board{},
		CurrentTurn: first,
		Winner:      None,
	}
}

// Opponent returns the other player's mark. None has no opponent.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}

// Valid reports whether m is X or O.
func (m PlayerMark) Valid() bool {
	return m == PlayerX || m == PlayerO
}

func (g *Game) Move(row, col int) error {
	if g.IsOver() {
		return ErrGameFinished
	}
	if row < BorderMin || row > BorderMax || col < BorderMin || col > BorderMax {
		return ErrOutOfBounds
	}
	if g.Board[row][col] != None {
		return ErrCellOccupied
	}

	g.Board[row][col] = g.CurrentTurn
	g.CurrentTurn = g.CurrentTurn.Opponent()
	g.Moves++

	g.Winner = CheckWinner(g.Board)
	return nil
}

// IsDraw checks if the game is a draw.
func (g *Game) IsDraw() bool {
	return g.Winner == None && IsBoardFull(g.Board)
}

// IsOver reports whether the game has a winner or no empty cell is left.
func (g *Game) IsOver() bool {
	return g.Winner != None || IsBoardFull(g.Board)
}

func (g *Game) Result() GameResult {
	switch {
	case g.Winner != None:
		return GameResult(g.Winner)
	case IsBoardFull(g.Board):
		return Draw
	default:
		return InProgress
	}
}

// BoardAsStrings converts the game board to a dynamic slice of slices.
func (g *Game) BoardAsStrings() [][]PlayerMark {
	return BoardArrayToSlice(g.Board)
}

// RandomlyChooseFirstPlayer returns X or O with equal probability.
func RandomlyChooseFirstPlayer() PlayerMark {
	if rand.IntN(2) == 0 {
		return PlayerX
	}
	return PlayerO
}

// RandomPosition returns one of the nine cells uniformly.
func RandomPosition() Position {
	return PositionFromIndex(rand.IntN(Cells))
}
