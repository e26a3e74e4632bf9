package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckWinner(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  PlayerMark
	}{
		{
			name:  "No winner - empty board",
			board: Board{},
			want:  None,
		},
		{
			name: "No winner - partial board",
			board: Board{
				{PlayerX, None, None},
				{None, PlayerO, None},
				{None, None, None},
			},
			want: None,
		},
		{
			name: "X wins - first row",
			board: Board{
				{PlayerX, PlayerX, PlayerX},
				{None, PlayerO, None},
				{None, None, PlayerO},
			},
			want: PlayerX,
		},
		{
			name: "O wins - third row",
			board: Board{
				{PlayerX, None, PlayerX},
				{None, PlayerX, None},
				{PlayerO, PlayerO, PlayerO},
			},
			want: PlayerO,
		},
		{
			name: "O wins - second column",
			board: Board{
				{PlayerX, PlayerO, None},
				{PlayerX, PlayerO, None},
				{None, PlayerO, None},
			},
			want: PlayerO,
		},
		{
			name: "X wins - main diagonal",
			board: Board{
				{PlayerX, None, None},
				{None, PlayerX, None},
				{None, None, PlayerX},
			},
			want: PlayerX,
		},
		{
			name: "O wins - anti-diagonal",
			board: Board{
				{None, None, PlayerO},
				{None, PlayerO, None},
				{PlayerO, None, None},
			},
			want: PlayerO,
		},
		{
			name: "No winner - full board (draw)",
			board: Board{
				{PlayerX, PlayerO, PlayerX},
				{PlayerX, PlayerO, PlayerO},
				{PlayerO, PlayerX, PlayerX},
			},
			want: None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckWinner(tt.board); got != tt.want {
				t.Errorf("CheckWinner() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWinCombosCoverEveryLine(t *testing.T) {
	for i, combo := range WinCombos {
		var board Board
		for _, idx := range combo {
			p := PositionFromIndex(idx)
			board[p.Row][p.Col] = PlayerO
		}
		assert.Equal(t, PlayerO, CheckWinner(board), "combo %d %v", i, combo)
	}
}

func TestIsBoardFull(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{
			name:  "Empty board is not full",
			board: Board{},
			want:  false,
		},
		{
			name: "Partial board is not full",
			board: Board{
				{PlayerX, None, None},
				{None, PlayerO, None},
				{None, None, None},
			},
			want: false,
		},
		{
			name: "Full board is full",
			board: Board{
				{PlayerX, PlayerO, PlayerX},
				{PlayerX, PlayerO, PlayerO},
				{PlayerO, PlayerX, PlayerX},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBoardFull(tt.board); got != tt.want {
				t.Errorf("IsBoardFull() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFreePositions(t *testing.T) {
	board := Board{
		{PlayerX, None, PlayerO},
		{None, PlayerX, None},
		{PlayerO, PlayerO, None},
	}
	want := []Position{{0, 1}, {1, 0}, {1, 2}, {2, 2}}
	if diff := cmp.Diff(want, FreePositions(board)); diff != "" {
		t.Errorf("FreePositions() mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, FreePositions(Board{}), Cells)
}

func TestPositionConversions(t *testing.T) {
	for idx := range Cells {
		p := PositionFromIndex(idx)
		assert.True(t, p.InBounds())
		assert.Equal(t, idx, p.Index())
		assert.Equal(t, idx+1, p.Cell())
		assert.Equal(t, p, PositionFromCell(idx+1))
	}
	assert.Equal(t, Position{Row: 1, Col: 2}, PositionFromIndex(5))
	assert.Equal(t, "2 - 3", Position{Row: 1, Col: 2}.String())
	assert.False(t, Position{Row: 3, Col: 0}.InBounds())
}

func TestGameMove(t *testing.T) {
	g := NewGame(PlayerX)

	require.NoError(t, g.Move(1, 1))
	assert.Equal(t, PlayerX, g.Board[1][1])
	assert.Equal(t, PlayerO, g.CurrentTurn)
	assert.Equal(t, 1, g.Moves)

	assert.ErrorIs(t, g.Move(1, 1), ErrCellOccupied)
	assert.ErrorIs(t, g.Move(-1, 0), ErrOutOfBounds)
	assert.ErrorIs(t, g.Move(0, 3), ErrOutOfBounds)
	assert.Equal(t, PlayerO, g.CurrentTurn, "rejected moves must not flip the turn")
}

func TestGameWinAndFinish(t *testing.T) {
	g := NewGame(PlayerX)
	moves := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}
	for _, m := range moves {
		require.NoError(t, g.Move(m[0], m[1]))
	}

	assert.Equal(t, PlayerX, g.Winner)
	assert.True(t, g.IsOver())
	assert.False(t, g.IsDraw())
	assert.Equal(t, XWins, g.Result())
	assert.ErrorIs(t, g.Move(2, 2), ErrGameFinished)
}

func TestGameDraw(t *testing.T) {
	g := NewGame(PlayerX)
	// X O X / X O O / O X X
	moves := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 0}, {2, 2}}
	for _, m := range moves {
		require.NoError(t, g.Move(m[0], m[1]))
	}

	assert.True(t, g.IsDraw())
	assert.True(t, g.IsOver())
	assert.Equal(t, Draw, g.Result())
	assert.Equal(t, Cells, g.Moves)
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, None, None.Opponent())
	assert.False(t, None.Valid())
}

func TestBoardAsStrings(t *testing.T) {
	g := NewGame(PlayerO)
	require.NoError(t, g.Move(2, 0))

	got := g.BoardAsStrings()
	want := [][]PlayerMark{{"", "", ""}, {"", "", ""}, {PlayerO, "", ""}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BoardAsStrings() mismatch (-want +got):\n%s", diff)
	}
}

func TestRandomlyChooseFirstPlayer(t *testing.T) {
	// Not a statistical test, only checks both marks show up.
	seenX := false
	seenO := false
	for i := 0; i < 100; i++ {
		player := RandomlyChooseFirstPlayer()
		if player != PlayerX && player != PlayerO {
			t.Errorf("RandomlyChooseFirstPlayer() returned invalid player: %v", player)
		}
		if player == PlayerX {
			seenX = true
		}
		if player == PlayerO {
			seenO = true
		}
	}

	if !seenX || !seenO {
		t.Errorf("RandomlyChooseFirstPlayer() did not return both PlayerX and PlayerO over 100 runs. Seen X: %v, Seen O: %v", seenX, seenO)
	}
}

func TestRandomPositionStaysOnBoard(t *testing.T) {
	for i := 0; i < 200; i++ {
		p := RandomPosition()
		if !p.InBounds() {
			t.Fatalf("RandomPosition() = %+v, off the board", p)
		}
	}
}
