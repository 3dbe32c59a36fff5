// Package tui answers the game's questions with small inline bubbletea
// programs, one per prompt, so narration keeps scrolling in the terminal
// between them.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"plunder/internal/console"
	"plunder/internal/game"
)

// ErrQuit is returned when the player presses Ctrl+C at a prompt.
var ErrQuit = errors.New("player quit")

// Input is a game.Input backed by bubbletea prompts.
type Input struct {
	// Placeholder is shown in the empty name prompt.
	Placeholder string
	Options     []tea.ProgramOption
}

func (in *Input) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, in.Options...)
	final, err := tea.NewProgram(m, opts...).Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}

func (in *Input) menu(ctx context.Context, title string, options []string, cursor int) (int, error) {
	final, err := in.run(ctx, newMenu(title, options, cursor))
	if err != nil {
		return -1, err
	}
	m, ok := final.(menuModel)
	if !ok {
		return -1, fmt.Errorf("prompt: unexpected model %T", final)
	}
	if m.quit {
		return -1, ErrQuit
	}
	return m.chosen, nil
}

func (in *Input) PlayerName(ctx context.Context) (string, error) {
	placeholder := in.Placeholder
	if placeholder == "" {
		placeholder = game.DefaultName
	}
	final, err := in.run(ctx, newTextPrompt("Enter your pirate's name:", placeholder))
	if err != nil {
		return "", err
	}
	m, ok := final.(textModel)
	if !ok {
		return "", fmt.Errorf("prompt: unexpected model %T", final)
	}
	if m.quit {
		return "", ErrQuit
	}
	return m.Value(), nil
}

func (in *Input) ChooseLocation(ctx context.Context, lv *game.Level, p *game.Player) (int, error) {
	return in.menu(ctx, "Choose a town to loot:", locationOptions(lv, p), firstUnfinished(lv, p))
}

func (in *Input) ChooseItem(ctx context.Context, p *game.Player, _ *game.Adversary) (int, error) {
	items := p.Items()
	options := make([]string, len(items))
	cursor := 0
	for i, it := range items {
		options[i] = console.ItemLabel(it)
		if it == p.Equipped() {
			cursor = i
		}
	}
	return in.menu(ctx, "Choose your weapon:", options, cursor)
}

func (in *Input) ChooseAction(ctx context.Context, p *game.Player, foe *game.Adversary) (string, error) {
	title := "Your turn! What do you do?"
	if foe != nil {
		title = fmt.Sprintf("Your turn against the %s! What do you do?", foe.Name)
	}
	idx, err := in.menu(ctx, title, []string{"Attack with " + p.Equipped().String(), "Try to flee"}, 0)
	if err != nil {
		return "", err
	}
	switch idx {
	case 0:
		return game.Attack.String(), nil
	case 1:
		return game.Flee.String(), nil
	default:
		return "", nil
	}
}

func locationOptions(lv *game.Level, p *game.Player) []string {
	options := make([]string, len(lv.Locations))
	for i, loc := range lv.Locations {
		options[i] = loc.Name + console.LocationMark(loc, p)
	}
	return options
}

func firstUnfinished(lv *game.Level, p *game.Player) int {
	for i, loc := range lv.Locations {
		if !loc.Finished(p) {
			return i
		}
	}
	return 0
}
