package game

import (
	"context"
)

// FleeChance is the probability of escaping an encounter.
const FleeChance = 0.40

// Outcome is the terminal state of one encounter.
type Outcome int

const (
	Unresolved Outcome = iota
	PlayerWon
	PlayerFled
	PlayerDefeated
)

func (o Outcome) String() string {
	switch o {
	case PlayerWon:
		return "won"
	case PlayerFled:
		return "fled"
	case PlayerDefeated:
		return "defeated"
	default:
		return "unresolved"
	}
}

// Engine resolves encounters and location visits. It holds the session's
// collaborators and no game state of its own.
type Engine struct {
	Dice  Roller
	Input Input
	Out   Presenter
}

func (e *Engine) present(ev Event) {
	if e.Out != nil {
		e.Out.Present(ev)
	}
}

// ResolveEncounter fights foe until one side drops or the player escapes.
// The context is checked between rounds; on cancellation the encounter
// stops with Unresolved and the context error.
func (e *Engine) ResolveEncounter(ctx context.Context, p *Player, foe *Adversary) (Outcome, error) {
	for p.Alive() && foe.Alive() {
		if err := ctx.Err(); err != nil {
			return Unresolved, err
		}
		e.present(RoundStarted{PlayerHealth: p.Health(), Adversary: foe.Name, AdversaryHealth: foe.Health()})

		if err := e.chooseItem(ctx, p, foe); err != nil {
			return Unresolved, err
		}
		raw, err := e.Input.ChooseAction(ctx, p, foe)
		if err != nil {
			return Unresolved, err
		}

		switch ParseAction(raw) {
		case Attack:
			e.playerAttack(p, foe)
		case Flee:
			escaped := e.Dice.FleeRoll(FleeChance)
			e.present(FleeAttempted{Escaped: escaped})
			if escaped {
				return PlayerFled, nil
			}
		default:
			e.present(Hesitated{})
		}

		// a felled adversary gets no counter-attack
		if !foe.Alive() {
			break
		}
		e.adversaryAttack(p, foe)
	}
	if !p.Alive() {
		return PlayerDefeated, nil
	}
	return PlayerWon, nil
}

// chooseItem offers a switch only when there is something to switch to.
func (e *Engine) chooseItem(ctx context.Context, p *Player, foe *Adversary) error {
	items := p.Items()
	if len(items) <= 1 {
		return nil
	}
	idx, err := e.Input.ChooseItem(ctx, p, foe)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(items) {
		e.present(ItemEquipped{Item: p.Equipped()})
		return nil
	}
	changed := items[idx] != p.Equipped()
	p.Equip(items[idx])
	e.present(ItemEquipped{Item: p.Equipped(), Changed: changed})
	return nil
}

func (e *Engine) playerAttack(p *Player, foe *Adversary) {
	it := p.Equipped()
	ev := PlayerStruck{Adversary: foe.Name, Item: it}
	if e.Dice.HitRoll(it.Accuracy()) {
		foe.TakeDamage(it.Damage())
		ev.Hit = true
		ev.Damage = it.Damage()
	}
	ev.Remaining = foe.Health()
	e.present(ev)
}

func (e *Engine) adversaryAttack(p *Player, foe *Adversary) {
	ev := AdversaryStruck{Adversary: foe.Name}
	if e.Dice.HitRoll(foe.Accuracy) {
		dmg := foe.Damage
		if foe.Variant == Elite && e.Dice.CriticalRoll(foe.CritChance) {
			dmg *= foe.CritMultiplier
			ev.Critical = true
		}
		p.TakeDamage(dmg)
		ev.Hit = true
		ev.Damage = dmg
	}
	ev.Health = p.Health()
	e.present(ev)
}
