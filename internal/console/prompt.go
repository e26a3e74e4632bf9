package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"ctchen222/Tic-Tac-Toe/internal/game"
	"ctchen222/Tic-Tac-Toe/internal/validator"
)

const (
	QuestionStartFirst = "Do you want to start first? (Y/N) "
	QuestionPlayAgain  = "Do you want to play again? (Y/N) "

	movePrompt = "Your move (1-9): "
)

// Prompter asks questions on out and reads the answers line by line from in.
type Prompter struct {
	in    *bufio.Scanner
	out   io.Writer
	once  sync.Once
	lines chan inputLine
}

type inputLine struct {
	text string
	err  error
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// scan feeds lines to p.lines until input ends. It runs at most one line
// ahead of the reader.
func (p *Prompter) scan() {
	defer close(p.lines)
	for p.in.Scan() {
		p.lines <- inputLine{text: p.in.Text()}
	}
	err := io.EOF
	if scanErr := p.in.Err(); scanErr != nil {
		err = fmt.Errorf("read input: %w", scanErr)
	}
	p.lines <- inputLine{err: err}
}

// readLine returns the next trimmed line, io.EOF once input is exhausted,
// or the context error as soon as ctx is done, even while input is blocked.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.once.Do(func() {
		p.lines = make(chan inputLine, 1)
		go p.scan()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

// AskYesNo repeats question until the answer is y, yes, n or no.
func (p *Prompter) AskYesNo(ctx context.Context, question string) (bool, error) {
	for {
		if _, err := io.WriteString(p.out, question); err != nil {
			return false, err
		}
		answer, err := p.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// Human reads moves typed as cell numbers 1..9.
// It implements the player.MoveSource interface.
type Human struct {
	prompter *Prompter
}

func NewHuman(p *Prompter) *Human {
	return &Human{prompter: p}
}

// NextMove asks until the user names an empty cell.
func (h *Human) NextMove(ctx context.Context, board game.Board, mark game.PlayerMark) (game.Position, error) {
	for {
		if _, err := io.WriteString(h.prompter.out, movePrompt); err != nil {
			return game.Position{}, err
		}
		line, err := h.prompter.readLine(ctx)
		if err != nil {
			return game.Position{}, err
		}

		pos, err := parseCell(line, board)
		if err != nil {
			slog.DebugContext(ctx, "Rejected input", "input", line, "mark", mark, "error", err)
			if _, err := io.WriteString(h.prompter.out, msgIncorrect+"\n"); err != nil {
				return game.Position{}, err
			}
			continue
		}
		return pos, nil
	}
}

func parseCell(line string, board game.Board) (game.Position, error) {
	cell, err := strconv.Atoi(line)
	if err != nil {
		return game.Position{}, fmt.Errorf("not a number: %q", line)
	}
	if err := validator.GetValidator().Var(cell, "min=1,max=9"); err != nil {
		return game.Position{}, game.ErrOutOfBounds
	}
	pos := game.PositionFromCell(cell)
	if board.At(pos) != game.None {
		return game.Position{}, game.ErrCellOccupied
	}
	return pos, nil
}
