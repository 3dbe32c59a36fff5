package game

import (
	"context"
)

const (
	StashChance  = 0.40
	PotionHeal   = 30
	BonusGoldMin = 50
	BonusGoldMax = 100
)

// LootOutcome summarises how a visit ended.
type LootOutcome int

const (
	LootAborted LootOutcome = iota
	// LootPlundered: every adversary beaten and the treasure taken.
	LootPlundered
	// LootFled: the player escaped an encounter; the location stays as it was.
	LootFled
	// LootSuccumbed: an obstacle killed the player before any fight.
	LootSuccumbed
	// LootDefeated: the player fell in battle.
	LootDefeated
)

func (o LootOutcome) String() string {
	switch o {
	case LootPlundered:
		return "plundered"
	case LootFled:
		return "fled"
	case LootSuccumbed:
		return "succumbed"
	case LootDefeated:
		return "defeated"
	default:
		return "aborted"
	}
}

// LootReport describes one visit.
type LootReport struct {
	Location string
	Outcome  LootOutcome
	Defeated int
	Reward   int

	Stash bool
	Kind  StashKind
	// Item and ItemGranted are set for StashItem; ItemGranted is false
	// when the item was already owned.
	Item        Item
	ItemGranted bool
	Healed      int
	BonusGold   int
}

// LootLocation runs one visit: obstacles, then each adversary in order,
// then the reward. It stops at the first flee or death.
func (e *Engine) LootLocation(ctx context.Context, p *Player, loc *Location) (LootReport, error) {
	rep := LootReport{Location: loc.Name}
	p.MarkVisited(loc.Name)
	e.present(VisitStarted{Location: loc.Name, Treasure: loc.Treasure, Minimum: loc.MinToLoot})

	for _, ob := range loc.Obstacles {
		if !p.Alive() {
			break
		}
		p.TakeDamage(ob.Damage)
		e.present(ObstacleTriggered{
			Obstacle: ob.Name,
			Damage:   ob.Damage,
			Health:   p.Health(),
			Wounded:  p.Alive() && p.Health() < MaxHealth/2,
		})
	}
	if !p.Alive() {
		rep.Outcome = LootSuccumbed
		e.present(Succumbed{Location: loc.Name})
		return rep, nil
	}

	foes := loc.spawn()
	for len(foes) > 0 {
		foe := foes[0]
		e.present(AdversaryAppeared{Name: foe.Name, Health: foe.Health(), Variant: foe.Variant})
		out, err := e.ResolveEncounter(ctx, p, foe)
		if err != nil {
			return rep, err
		}
		e.present(EncounterEnded{Adversary: foe.Name, Outcome: out})
		switch out {
		case PlayerFled:
			rep.Outcome = LootFled
			return rep, nil
		case PlayerDefeated:
			rep.Outcome = LootDefeated
			return rep, nil
		}
		rep.Defeated++
		foes = foes[1:]
	}

	rep.Reward = e.Dice.TreasureAmount(loc.MinToLoot, loc.Treasure)
	loc.recordLoot(rep.Reward)
	p.AddTreasure(rep.Reward)
	e.present(TreasureLooted{Location: loc.Name, Amount: rep.Reward, Total: p.Treasure()})

	e.hiddenStash(p, &rep)
	rep.Outcome = LootPlundered
	return rep, nil
}

func (e *Engine) hiddenStash(p *Player, rep *LootReport) {
	if !e.Dice.StashRoll(StashChance) {
		return
	}
	rep.Stash = true
	rep.Kind = e.Dice.StashKind()
	e.present(StashFound{Kind: rep.Kind})

	switch rep.Kind {
	case StashPotion:
		rep.Healed = p.Heal(PotionHeal)
		e.present(Healed{Amount: rep.Healed, Health: p.Health()})
	case StashItem:
		items := Catalog()
		rep.Item = items[e.Dice.ItemPick(len(items))]
		rep.ItemGranted = p.Acquire(rep.Item)
		e.present(ItemGranted{Item: rep.Item, AlreadyOwned: !rep.ItemGranted})
	case StashGold:
		rep.BonusGold = e.Dice.TreasureAmount(BonusGoldMin, BonusGoldMax)
		p.AddTreasure(rep.BonusGold)
		e.present(BonusGold{Amount: rep.BonusGold, Total: p.Treasure()})
	}
}
