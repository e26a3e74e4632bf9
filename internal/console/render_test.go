package console

import (
	"bytes"
	"context"
	"testing"

	"ctchen222/Tic-Tac-Toe/internal/events"
	"ctchen222/Tic-Tac-Toe/internal/game"
	"ctchen222/Tic-Tac-Toe/internal/player"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	X = game.PlayerX
	O = game.PlayerO
	E = game.None
)

func TestBoard_Bots(t *testing.T) {
	r := NewTextRenderer(&bytes.Buffer{}, Plain())
	board := game.Board{
		{X, E, O},
		{E, X, E},
		{E, E, O},
	}

	want := "     1   2   3\n" +
		"   +---+---+---+\n" +
		" 1 | X |   | O |\n" +
		"   +---+---+---+\n" +
		" 2 |   | X |   |\n" +
		"   +---+---+---+\n" +
		" 3 |   |   | O |\n" +
		"   +---+---+---+\n" +
		"\n"

	if diff := cmp.Diff(want, r.Board(board)); diff != "" {
		t.Errorf("Board() mismatch (-want +got):\n%s", diff)
	}
}

func TestBoard_HumanShowsCellNumbers(t *testing.T) {
	r := NewTextRenderer(&bytes.Buffer{}, Plain(), WithHuman(O))
	board := game.Board{
		{X, E, E},
		{E, O, E},
		{E, E, E},
	}

	got := r.Board(board)
	assert.Contains(t, got, " 1 | X | 2 | 3 |\n")
	assert.Contains(t, got, " 2 | 4 | O | 6 |\n")
	assert.Contains(t, got, " 3 | 7 | 8 | 9 |\n")
}

func TestTextRenderer_BotGame(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, Plain())
	ctx := context.Background()

	var board game.Board
	board[1][1] = O
	require.NoError(t, r.Handle(ctx, events.Event{Type: events.GameStarted}))
	assert.Empty(t, buf.String())

	require.NoError(t, r.Handle(ctx, events.Event{
		Type:     events.MoveMade,
		Board:    board,
		Mark:     O,
		Position: game.Position{Row: 1, Col: 1},
	}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\"O\" chose position 2 - 2\n\n     1   2   3\n")), buf.String())

	tests := []struct {
		name   string
		winner game.PlayerMark
		want   string
	}{
		{name: "X wins", winner: X, want: "\"X\" won!\n"},
		{name: "O wins", winner: O, want: "\"O\" won!\n"},
		{name: "Draw", winner: E, want: "Draw! Duh.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			require.NoError(t, r.Handle(ctx, events.Event{Type: events.GameOver, Winner: tt.winner, Draw: tt.winner == E}))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestTextRenderer_HumanResults(t *testing.T) {
	tests := []struct {
		name   string
		human  game.PlayerMark
		winner game.PlayerMark
		want   string
	}{
		{name: "Human wins as O", human: O, winner: O, want: "Congratulations, you won!\n"},
		{name: "Bot wins against O", human: O, winner: X, want: "Sorry, the bot won.\n"},
		{name: "Human wins as X", human: X, winner: X, want: "Congratulations, you won!\n"},
		{name: "Draw", human: X, winner: E, want: "A draw!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewTextRenderer(&buf, Plain(), WithHuman(tt.human))
			require.NoError(t, r.Handle(context.Background(), events.Event{Type: events.GameOver, Winner: tt.winner}))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestTextRenderer_RejectedAndWelcome(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, Plain(), WithHuman(O))

	require.NoError(t, r.Welcome())
	require.NoError(t, r.Handle(context.Background(), events.Event{Type: events.MoveRejected, Reason: "cell already occupied"}))
	assert.Equal(t, "Welcome to Tic Tac Toe\n\nIncorrect move, try again please.\n", buf.String())

	buf.Reset()
	require.NoError(t, NewTextRenderer(&buf, Plain()).Welcome())
	assert.Equal(t, "Welcome to Tic Tac Toe - bot VS bot!\n\n", buf.String())
}

func TestTextRenderer_Scoreboard(t *testing.T) {
	x := player.NewPlayer("bot-x", "X bot", player.KindBot, nil)
	o := player.NewPlayer("bot-o", "O bot", player.KindBot, nil)

	score := events.NewScoreboard()
	score.Record("")
	score.Record("bot-x")
	score.Record("")

	var buf bytes.Buffer
	r := NewTextRenderer(&buf, Plain(), WithPlayers(x, o))
	require.NoError(t, r.Handle(context.Background(), events.Event{Type: events.MatchOver, Score: score}))
	assert.Equal(t, "\nScore after 3 games: X bot 1, O bot 0, draws 2\n", buf.String())

	buf.Reset()
	single := events.NewScoreboard()
	single.Record("")
	require.NoError(t, r.Handle(context.Background(), events.Event{Type: events.MatchOver, Score: single}))
	assert.Empty(t, buf.String())
}

func TestTextRenderer_OpeningShowsBoardOnly(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, Plain())

	var board game.Board
	board[2][1] = X
	require.NoError(t, r.Handle(context.Background(), events.Event{
		Type:     events.MoveMade,
		Board:    board,
		Mark:     X,
		Position: game.Position{Row: 2, Col: 1},
		Opening:  true,
	}))

	assert.Equal(t, r.Board(board), buf.String())
	assert.NotContains(t, buf.String(), "chose position")
}
