package game

import (
	"context"
	"errors"
)

// scriptedDice replays queued outcomes. An exhausted queue falls back to
// the unlucky default: misses, no crit, no escape, no stash, the lowest
// amount (or the highest with amountMax), kind potion and index 0.
type scriptedDice struct {
	hits      []bool
	crits     []bool
	flees     []bool
	amounts   []int
	stashes   []bool
	kinds     []StashKind
	picks     []int
	amountMax bool

	hitChances  []float64
	critChances []float64
	fleeChances []float64
	ranges      [][2]int
	pickSizes   []int
}

func pop[T any](q *[]T, fallback T) T {
	if len(*q) == 0 {
		return fallback
	}
	v := (*q)[0]
	*q = (*q)[1:]
	return v
}

func (d *scriptedDice) HitRoll(accuracy float64) bool {
	d.hitChances = append(d.hitChances, accuracy)
	return pop(&d.hits, false)
}

func (d *scriptedDice) CriticalRoll(chance float64) bool {
	d.critChances = append(d.critChances, chance)
	return pop(&d.crits, false)
}

func (d *scriptedDice) FleeRoll(chance float64) bool {
	d.fleeChances = append(d.fleeChances, chance)
	return pop(&d.flees, false)
}

func (d *scriptedDice) TreasureAmount(lo, hi int) int {
	d.ranges = append(d.ranges, [2]int{lo, hi})
	fallback := lo
	if d.amountMax {
		fallback = hi
	}
	return pop(&d.amounts, fallback)
}

func (d *scriptedDice) StashRoll(float64) bool { return pop(&d.stashes, false) }

func (d *scriptedDice) StashKind() StashKind { return pop(&d.kinds, StashPotion) }

func (d *scriptedDice) ItemPick(n int) int {
	d.pickSizes = append(d.pickSizes, n)
	return pop(&d.picks, 0)
}

var errScriptDone = errors.New("script exhausted")

// scriptedInput answers from queues and fails once a queue runs dry.
type scriptedInput struct {
	name      string
	locations []int
	items     []int
	actions   []string

	itemPrompts   int
	actionPrompts int
}

func (in *scriptedInput) PlayerName(context.Context) (string, error) { return in.name, nil }

func (in *scriptedInput) ChooseLocation(context.Context, *Level, *Player) (int, error) {
	if len(in.locations) == 0 {
		return 0, errScriptDone
	}
	return pop(&in.locations, 0), nil
}

func (in *scriptedInput) ChooseItem(context.Context, *Player, *Adversary) (int, error) {
	in.itemPrompts++
	return pop(&in.items, -1), nil
}

func (in *scriptedInput) ChooseAction(context.Context, *Player, *Adversary) (string, error) {
	in.actionPrompts++
	if len(in.actions) == 0 {
		return "", errScriptDone
	}
	return pop(&in.actions, ""), nil
}

// attackForever always attacks.
type attackForever struct{ scriptedInput }

func (attackForever) ChooseAction(context.Context, *Player, *Adversary) (string, error) {
	return "attack", nil
}

type recorder struct {
	events []Event
}

func (r *recorder) Present(ev Event) { r.events = append(r.events, ev) }

func eventsOf[T Event](r *recorder) []T {
	var out []T
	for _, ev := range r.events {
		if v, ok := ev.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func repeat[T any](v T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}
