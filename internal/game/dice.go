package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// StashKind is the reward found in a hidden stash.
type StashKind int

const (
	StashPotion StashKind = iota
	StashItem
	StashGold

	stashKinds = 3
)

func (k StashKind) String() string {
	switch k {
	case StashPotion:
		return "potion"
	case StashItem:
		return "item"
	case StashGold:
		return "gold"
	default:
		return "unknown"
	}
}

// Roller is the single source of every probabilistic outcome. A session
// owns exactly one, so a fixed seed replays the whole game.
type Roller interface {
	// HitRoll reports whether an attack with the given accuracy lands.
	HitRoll(accuracy float64) bool
	// CriticalRoll reports whether a landed hit is critical.
	CriticalRoll(chance float64) bool
	// FleeRoll reports whether an escape attempt succeeds.
	FleeRoll(chance float64) bool
	// TreasureAmount draws uniformly from [lo, hi], both inclusive.
	TreasureAmount(lo, hi int) int
	// StashRoll reports whether a hidden stash turns up.
	StashRoll(chance float64) bool
	// StashKind draws one of the equally likely stash rewards.
	StashKind() StashKind
	// ItemPick draws an index in [0, n). n must be positive.
	ItemPick(n int) int
}

// RandRoller is the production Roller backed by a seeded PCG source.
type RandRoller struct {
	rng *rand.Rand
}

// NewRoller returns a Roller that is deterministic for a given seed.
func NewRoller(seed uint64) *RandRoller {
	return &RandRoller{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func (r *RandRoller) chance(p float64) bool { return r.rng.Float64() < p }

func (r *RandRoller) HitRoll(accuracy float64) bool { return r.chance(accuracy) }
func (r *RandRoller) CriticalRoll(chance float64) bool { return r.chance(chance) }
func (r *RandRoller) FleeRoll(chance float64) bool { return r.chance(chance) }
func (r *RandRoller) StashRoll(chance float64) bool { return r.chance(chance) }

func (r *RandRoller) TreasureAmount(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.IntN(hi-lo+1)
}

func (r *RandRoller) StashKind() StashKind { return StashKind(r.rng.IntN(stashKinds)) }

func (r *RandRoller) ItemPick(n int) int {
	if n <= 1 {
		return 0
	}
	return r.rng.IntN(n)
}
