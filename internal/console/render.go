package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ctchen222/Tic-Tac-Toe/internal/events"
	"ctchen222/Tic-Tac-Toe/internal/game"
	"ctchen222/Tic-Tac-Toe/internal/player"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode selects the wording of the text output.
type Mode int

const (
	ModeBots Mode = iota
	ModeHuman
)

const (
	msgWelcomeBots  = "Welcome to Tic Tac Toe - bot VS bot!"
	msgWelcomeHuman = "Welcome to Tic Tac Toe"
	msgBotsDraw     = "Draw! Duh."
	msgHumanWon     = "Congratulations, you won!"
	msgBotWon       = "Sorry, the bot won."
	msgHumanDraw    = "A draw!"
	msgIncorrect    = "Incorrect move, try again please."
)

var (
	colorX    = lipgloss.Color("#e53935")
	colorO    = lipgloss.Color("#2196F3")
	colorHint = lipgloss.Color("#6c7a89")
)

// TextRenderer prints the board and game messages for a person watching.
type TextRenderer struct {
	w     io.Writer
	mode  Mode
	human game.PlayerMark
	names map[string]string
	order []string

	xStyle    lipgloss.Style
	oStyle    lipgloss.Style
	hintStyle lipgloss.Style
}

// TextOption configures a TextRenderer.
type TextOption func(*TextRenderer)

// Plain disables colours and text attributes.
func Plain() TextOption {
	return func(t *TextRenderer) {
		t.setProfile(termenv.Ascii)
	}
}

// WithHuman switches to human wording, seen from the side playing mark.
func WithHuman(mark game.PlayerMark) TextOption {
	return func(t *TextRenderer) {
		t.mode = ModeHuman
		t.human = mark
	}
}

// WithPlayers names the players on the scoreboard, in the given order.
func WithPlayers(players ...*player.Player) TextOption {
	return func(t *TextRenderer) {
		for _, p := range players {
			t.names[p.ID] = p.String()
			t.order = append(t.order, p.ID)
		}
	}
}

// NewTextRenderer creates a renderer writing to w. Colours follow the terminal behind w.
func NewTextRenderer(w io.Writer, opts ...TextOption) *TextRenderer {
	t := &TextRenderer{
		w:     w,
		mode:  ModeBots,
		names: make(map[string]string),
	}
	t.setRenderer(lipgloss.NewRenderer(w))
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *TextRenderer) setRenderer(r *lipgloss.Renderer) {
	t.xStyle = r.NewStyle().Foreground(colorX).Bold(true)
	t.oStyle = r.NewStyle().Foreground(colorO).Bold(true)
	t.hintStyle = r.NewStyle().Foreground(colorHint).Faint(true)
}

func (t *TextRenderer) setProfile(p termenv.Profile) {
	r := lipgloss.NewRenderer(t.w)
	r.SetColorProfile(p)
	t.setRenderer(r)
}

// Welcome prints the banner for the renderer's mode.
func (t *TextRenderer) Welcome() error {
	banner := msgWelcomeBots
	if t.mode == ModeHuman {
		banner = msgWelcomeHuman
	}
	_, err := fmt.Fprintf(t.w, "%s\n\n", banner)
	return err
}

// Handle implements events.Listener.
func (t *TextRenderer) Handle(_ context.Context, e events.Event) error {
	var b strings.Builder

	switch e.Type {
	case events.GameStarted:
		if t.mode == ModeHuman {
			b.WriteString(t.Board(e.Board))
		}
	case events.MoveMade:
		if !e.Opening {
			fmt.Fprintf(&b, "%q chose position %s\n\n", string(e.Mark), e.Position)
		}
		b.WriteString(t.Board(e.Board))
	case events.MoveRejected:
		b.WriteString(msgIncorrect + "\n")
	case events.GameOver:
		b.WriteString(t.result(e) + "\n")
	case events.MatchOver:
		if e.Score != nil && e.Score.Games > 1 {
			b.WriteString("\n" + t.scoreboard(e.Score) + "\n")
		}
	}

	if b.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(t.w, b.String())
	return err
}

func (t *TextRenderer) result(e events.Event) string {
	if t.mode == ModeBots {
		if e.Winner == game.None {
			return msgBotsDraw
		}
		return fmt.Sprintf("%q won!", string(e.Winner))
	}

	switch e.Winner {
	case game.None:
		return msgHumanDraw
	case t.human:
		return msgHumanWon
	default:
		return msgBotWon
	}
}

func (t *TextRenderer) scoreboard(s *events.Scoreboard) string {
	parts := make([]string, 0, len(t.order)+1)
	for _, id := range t.order {
		parts = append(parts, fmt.Sprintf("%s %d", t.names[id], s.Wins[id]))
	}
	parts = append(parts, fmt.Sprintf("draws %d", s.Draws))
	return fmt.Sprintf("Score after %d games: %s", s.Games, strings.Join(parts, ", "))
}

const (
	boardHeader = "     1   2   3"
	boardRule   = "   +---+---+---+"
)

// Board draws b as a grid with row and column numbers. In human mode
// empty cells show the number to type to play there.
func (t *TextRenderer) Board(b game.Board) string {
	var sb strings.Builder
	sb.WriteString(boardHeader + "\n")
	sb.WriteString(boardRule + "\n")
	for row := range game.Size {
		fmt.Fprintf(&sb, " %d |", row+1)
		for col := range game.Size {
			sb.WriteString(" " + t.cell(b, game.Position{Row: row, Col: col}) + " |")
		}
		sb.WriteString("\n" + boardRule + "\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

func (t *TextRenderer) cell(b game.Board, p game.Position) string {
	switch b.At(p) {
	case game.PlayerX:
		return t.xStyle.Render("X")
	case game.PlayerO:
		return t.oStyle.Render("O")
	}
	if t.mode == ModeHuman {
		return t.hintStyle.Render(strconv.Itoa(p.Cell()))
	}
	return " "
}
