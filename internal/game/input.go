package game

import (
	"context"
	"strings"
)

// Input supplies the player's decisions. Invalid answers are never errors:
// an out-of-range index or unknown action is handled by the caller as a
// no-op. A returned error aborts the session.
type Input interface {
	PlayerName(ctx context.Context) (string, error)
	// ChooseLocation returns a 0-based index into level.Locations.
	ChooseLocation(ctx context.Context, level *Level, p *Player) (int, error)
	// ChooseItem returns a 0-based index into p.Items(); anything out of
	// range keeps the equipped item.
	ChooseItem(ctx context.Context, p *Player, foe *Adversary) (int, error)
	// ChooseAction returns the raw action text, see ParseAction.
	ChooseAction(ctx context.Context, p *Player, foe *Adversary) (string, error)
}

// Action is a declared battle action.
type Action int

const (
	NoAction Action = iota
	Attack
	Flee
)

func (a Action) String() string {
	switch a {
	case Attack:
		return "attack"
	case Flee:
		return "flee"
	default:
		return "none"
	}
}

// ParseAction maps raw input onto an Action. Menu numbers are accepted
// alongside the words.
func ParseAction(s string) Action {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "attack", "a", "1":
		return Attack
	case "flee", "f", "2":
		return Flee
	default:
		return NoAction
	}
}

func trimName(s string) string { return strings.TrimSpace(s) }
