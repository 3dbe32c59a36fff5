package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Item is an entry of the fixed weapon catalog. Items are compared by
// identity; their stats never change during a game.
type Item int

const (
	Cutlass Item = iota
	Pistol
	Blunderbuss
	Cannon
)

type itemStats struct {
	name     string
	damage   int
	accuracy float64
}

var catalog = [...]itemStats{
	Cutlass:     {"cutlass", 15, 0.75},
	Pistol:      {"pistol", 30, 0.65},
	Blunderbuss: {"blunderbuss", 50, 0.45},
	Cannon:      {"cannon", 100, 0.25},
}

// Catalog returns every item in catalog order.
func Catalog() []Item {
	items := make([]Item, len(catalog))
	for i := range catalog {
		items[i] = Item(i)
	}
	return items
}

// Valid reports whether it names a catalog entry.
func (it Item) Valid() bool { return it >= 0 && int(it) < len(catalog) }

func (it Item) Damage() int {
	if !it.Valid() {
		return 0
	}
	return catalog[it].damage
}

func (it Item) Accuracy() float64 {
	if !it.Valid() {
		return 0
	}
	return catalog[it].accuracy
}

func (it Item) String() string {
	if !it.Valid() {
		return fmt.Sprintf("item(%d)", int(it))
	}
	return catalog[it].name
}

// Variant is the closed set of adversary behaviours.
type Variant int

const (
	Basic Variant = iota
	Elite
)

func (v Variant) String() string {
	switch v {
	case Basic:
		return "basic"
	case Elite:
		return "elite"
	default:
		return "unknown"
	}
}

// UnmarshalYAML accepts "basic" or "elite" (case-insensitive); an empty
// value means basic.
func (v *Variant) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "basic":
		*v = Basic
	case "elite":
		*v = Elite
	default:
		return fmt.Errorf("line %d: unknown adversary variant %q", node.Line, s)
	}
	return nil
}

const (
	DefaultCritChance     = 0.20
	DefaultCritMultiplier = 2
)

// AdversaryTemplate is the read-only content definition of an adversary.
// Encounters never fight a template directly; see Spawn.
type AdversaryTemplate struct {
	Name           string  `yaml:"name"`
	Health         int     `yaml:"health"`
	Damage         int     `yaml:"damage"`
	Accuracy       float64 `yaml:"accuracy"`
	Variant        Variant `yaml:"variant"`
	CritChance     float64 `yaml:"critChance"`
	CritMultiplier int     `yaml:"critMultiplier"`
}

// Spawn clones the template into a fresh encounter instance.
func (t AdversaryTemplate) Spawn() *Adversary {
	a := &Adversary{
		Name:     t.Name,
		health:   max(t.Health, 0),
		Damage:   max(t.Damage, 0),
		Accuracy: t.Accuracy,
		Variant:  t.Variant,
	}
	if t.Variant == Elite {
		a.CritChance = t.CritChance
		if a.CritChance == 0 {
			a.CritChance = DefaultCritChance
		}
		a.CritMultiplier = t.CritMultiplier
		if a.CritMultiplier == 0 {
			a.CritMultiplier = DefaultCritMultiplier
		}
	}
	return a
}

// Adversary is one encounter's opponent. It is discarded once the
// encounter ends.
type Adversary struct {
	Name           string
	Damage         int
	Accuracy       float64
	Variant        Variant
	CritChance     float64
	CritMultiplier int

	health int
}

func (a *Adversary) Health() int { return a.health }

func (a *Adversary) Alive() bool { return a.health > 0 }

// TakeDamage lowers health by d, flooring at zero. Negative d is ignored.
func (a *Adversary) TakeDamage(d int) {
	if d <= 0 {
		return
	}
	a.health = max(a.health-d, 0)
}

// Obstacle is an environmental hazard. It always hits.
type Obstacle struct {
	Name   string `yaml:"name"`
	Damage int    `yaml:"damage"`
}

// LocationSpec is the content definition of a location.
type LocationSpec struct {
	Name        string              `yaml:"name"`
	Scenery     string              `yaml:"scenery"`
	Treasure    int                 `yaml:"treasure"`
	MinToLoot   int                 `yaml:"minToLoot"`
	Obstacles   []Obstacle          `yaml:"obstacles"`
	Adversaries []AdversaryTemplate `yaml:"adversaries"`
}

// LevelSpec is the content definition of a level.
type LevelSpec struct {
	Number    int            `yaml:"number"`
	Locations []LocationSpec `yaml:"locations"`
}

// Campaign is the static content dataset: an ordered list of levels.
type Campaign struct {
	Title       string      `yaml:"title"`
	DefaultName string      `yaml:"defaultName"`
	Levels      []LevelSpec `yaml:"levels"`
}
