package game

const (
	MaxHealth    = 100
	StartingItem = Cutlass
)

// Player is the session's single mutable combatant. Health stays within
// [0, MaxHealth] and treasure never decreases.
type Player struct {
	Name string

	health   int
	treasure int
	equipped Item
	owned    map[Item]bool
	visited  map[string]bool
	route    []string
}

func NewPlayer(name string) *Player {
	return &Player{
		Name:     name,
		health:   MaxHealth,
		equipped: StartingItem,
		owned:    map[Item]bool{StartingItem: true},
		visited:  map[string]bool{},
	}
}

func (p *Player) Health() int { return p.health }
func (p *Player) Treasure() int { return p.treasure }
func (p *Player) Equipped() Item { return p.equipped }
func (p *Player) Alive() bool { return p.health > 0 }

// TakeDamage lowers health by d, flooring at zero. Negative d is ignored.
func (p *Player) TakeDamage(d int) {
	if d <= 0 {
		return
	}
	p.health = max(p.health-d, 0)
}

// Heal raises health by n, capped at MaxHealth, and returns the amount
// actually restored. A defeated player cannot be healed.
func (p *Player) Heal(n int) int {
	if n <= 0 || !p.Alive() {
		return 0
	}
	before := p.health
	p.health = min(p.health+n, MaxHealth)
	return p.health - before
}

// AddTreasure adds n to the hoard. Non-positive amounts are ignored.
func (p *Player) AddTreasure(n int) {
	if n > 0 {
		p.treasure += n
	}
}

func (p *Player) Owns(it Item) bool { return p.owned[it] }

// Acquire adds it to the owned set. It returns false, changing nothing,
// when the item is already owned or not in the catalog.
func (p *Player) Acquire(it Item) bool {
	if !it.Valid() || p.owned[it] {
		return false
	}
	p.owned[it] = true
	return true
}

// Equip switches the equipped item; only owned items can be equipped.
func (p *Player) Equip(it Item) bool {
	if !p.owned[it] {
		return false
	}
	p.equipped = it
	return true
}

// Items returns the owned items in catalog order.
func (p *Player) Items() []Item {
	var items []Item
	for _, it := range Catalog() {
		if p.owned[it] {
			items = append(items, it)
		}
	}
	return items
}

// Missing returns the catalog items not yet owned, in catalog order.
func (p *Player) Missing() []Item {
	var items []Item
	for _, it := range Catalog() {
		if !p.owned[it] {
			items = append(items, it)
		}
	}
	return items
}

// MarkVisited records a visit and reports whether it was the first one.
func (p *Player) MarkVisited(location string) bool {
	if p.visited[location] {
		return false
	}
	p.visited[location] = true
	p.route = append(p.route, location)
	return true
}

func (p *Player) Visited(location string) bool { return p.visited[location] }

// Route lists visited locations in order of first visit.
func (p *Player) Route() []string {
	return append([]string(nil), p.route...)
}
