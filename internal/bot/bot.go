// Package bot plays the game without a human: it always heads for the next
// unfinished location, carries the item with the best expected damage and
// runs when it gets too hurt.
package bot

import (
	"context"

	"plunder/internal/game"
)

// Autopilot is a game.Input.
type Autopilot struct {
	Name string
	// FleeBelow makes the bot try to flee while its health is under this
	// value. Zero means it never flees.
	FleeBelow int
}

func (a *Autopilot) PlayerName(ctx context.Context) (string, error) {
	return a.Name, ctx.Err()
}

func (a *Autopilot) ChooseLocation(ctx context.Context, lv *game.Level, p *game.Player) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	for i, loc := range lv.Locations {
		if !loc.Finished(p) {
			return i, nil
		}
	}
	return 0, nil
}

func (a *Autopilot) ChooseItem(ctx context.Context, p *game.Player, _ *game.Adversary) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	best, bestScore := -1, -1.0
	for i, it := range p.Items() {
		if s := Expected(it); s > bestScore {
			best, bestScore = i, s
		}
	}
	return best, nil
}

func (a *Autopilot) ChooseAction(ctx context.Context, p *game.Player, _ *game.Adversary) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.Health() < a.FleeBelow {
		return game.Flee.String(), nil
	}
	return game.Attack.String(), nil
}

// Expected is the average damage per swing of an item.
func Expected(it game.Item) float64 { return float64(it.Damage()) * it.Accuracy() }
