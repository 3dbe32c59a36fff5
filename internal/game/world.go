package game

// Location is the session's mutable view of a LocationSpec. Looted
// treasure persists across visits for the whole session.
type Location struct {
	LocationSpec

	looted int
}

// Looted returns the amount recorded by the last successful plunder.
func (l *Location) Looted() int { return l.looted }

// Sufficient reports whether the location counts as sufficiently looted.
func (l *Location) Sufficient() bool { return l.looted >= l.MinToLoot }

// Finished reports whether p has both visited and sufficiently looted l.
func (l *Location) Finished(p *Player) bool {
	return p.Visited(l.Name) && l.Sufficient()
}

func (l *Location) recordLoot(amount int) { l.looted = amount }

// spawn instantiates fresh adversaries from the templates, in order.
func (l *Location) spawn() []*Adversary {
	foes := make([]*Adversary, 0, len(l.Adversaries))
	for _, t := range l.Adversaries {
		foes = append(foes, t.Spawn())
	}
	return foes
}

type Level struct {
	Number    int
	Locations []*Location
}

// Complete reports whether every location is visited and sufficiently
// looted.
func (lv *Level) Complete(p *Player) bool {
	for _, loc := range lv.Locations {
		if !loc.Finished(p) {
			return false
		}
	}
	return true
}

// NewLevels instantiates the campaign into fresh session state. The
// campaign itself is never mutated.
func NewLevels(c *Campaign) []*Level {
	levels := make([]*Level, 0, len(c.Levels))
	for i, def := range c.Levels {
		lv := &Level{Number: def.Number}
		if lv.Number == 0 {
			lv.Number = i + 1
		}
		for _, ls := range def.Locations {
			lv.Locations = append(lv.Locations, &Location{LocationSpec: ls})
		}
		levels = append(levels, lv)
	}
	return levels
}
