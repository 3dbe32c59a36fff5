package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"plunder/internal/game"
)

// LineInput is a game.Input that reads one answer per line, for pipes,
// scripts and dumb terminals. End of input aborts the session with io.EOF.
type LineInput struct {
	sc *bufio.Scanner
	w  io.Writer
}

func NewLineInput(r io.Reader, w io.Writer) *LineInput {
	return &LineInput{sc: bufio.NewScanner(r), w: w}
}

func (in *LineInput) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(in.w, prompt)
	if !in.sc.Scan() {
		if err := in.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return in.sc.Text(), nil
}

// readIndex parses a 1-based menu number into a 0-based index; anything
// unparseable becomes -1.
func (in *LineInput) readIndex(ctx context.Context, prompt string) (int, error) {
	line, err := in.readLine(ctx, prompt)
	if err != nil {
		return -1, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1, nil
	}
	return n - 1, nil
}

func (in *LineInput) PlayerName(ctx context.Context) (string, error) {
	return in.readLine(ctx, "Enter your pirate's name: ")
}

func (in *LineInput) ChooseLocation(ctx context.Context, lv *game.Level, p *game.Player) (int, error) {
	fmt.Fprintln(in.w)
	for i, loc := range lv.Locations {
		fmt.Fprintf(in.w, "%d. %s%s\n", i+1, loc.Name, LocationMark(loc, p))
	}
	return in.readIndex(ctx, "Choose a town to loot (enter number): ")
}

func (in *LineInput) ChooseItem(ctx context.Context, p *game.Player, _ *game.Adversary) (int, error) {
	fmt.Fprintln(in.w, "\nChoose your weapon:")
	for i, it := range p.Items() {
		fmt.Fprintf(in.w, "%d. %s\n", i+1, ItemLabel(it))
	}
	return in.readIndex(ctx, "Enter weapon number: ")
}

func (in *LineInput) ChooseAction(ctx context.Context, p *game.Player, _ *game.Adversary) (string, error) {
	fmt.Fprintln(in.w, "\nYour turn! What do you do?")
	fmt.Fprintf(in.w, "1. Attack with %s\n", p.Equipped())
	fmt.Fprintln(in.w, "2. Try to flee")
	return in.readLine(ctx, "Enter your choice: ")
}

// LocationMark is the menu suffix for a location's progress.
func LocationMark(loc *game.Location, p *game.Player) string {
	switch {
	case loc.Finished(p):
		return " [LOOTED]"
	case p.Visited(loc.Name):
		return " [VISITED]"
	default:
		return ""
	}
}

// ItemLabel describes an item with its stats.
func ItemLabel(it game.Item) string {
	return fmt.Sprintf("%s (Damage: %d, Accuracy: %.0f%%)", it, it.Damage(), it.Accuracy()*100)
}
