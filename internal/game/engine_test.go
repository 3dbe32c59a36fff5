package game

import (
	"context"
	"errors"
	"testing"
)

func testEngine(d *scriptedDice, in Input) (*Engine, *recorder) {
	rec := &recorder{}
	return &Engine{Dice: d, Input: in, Out: rec}, rec
}

func TestResolveEncounter_FirstHitWins(t *testing.T) {
	d := &scriptedDice{hits: []bool{true}}
	in := &scriptedInput{actions: []string{"attack"}}
	e, rec := testEngine(d, in)
	p := NewPlayer("x")
	foe := AdversaryTemplate{Name: "Deckhand", Health: 10, Damage: 5, Accuracy: 0}.Spawn()

	out, err := e.ResolveEncounter(context.Background(), p, foe)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out != PlayerWon {
		t.Errorf("Expected PlayerWon, got %s", out)
	}
	if foe.Health() != 0 {
		t.Errorf("Expected adversary at 0, got %d", foe.Health())
	}
	if p.Health() != MaxHealth {
		t.Errorf("Expected player untouched, got %d", p.Health())
	}
	// only the player's roll; the adversary never acts
	if len(d.hitChances) != 1 || d.hitChances[0] != Cutlass.Accuracy() {
		t.Errorf("Expected a single roll at cutlass accuracy, got %v", d.hitChances)
	}
	if n := len(eventsOf[AdversaryStruck](rec)); n != 0 {
		t.Errorf("Expected no counter-attack, got %d", n)
	}
	struck := eventsOf[PlayerStruck](rec)
	if len(struck) != 1 || !struck[0].Hit || struck[0].Damage != 15 || struck[0].Remaining != 0 {
		t.Errorf("Unexpected strike events %+v", struck)
	}
}

func TestResolveEncounter_MissThenAdversaryActs(t *testing.T) {
	// round 1: player misses, adversary hits; round 2: player hits twice over
	d := &scriptedDice{hits: []bool{false, true, true, false, true}}
	in := &scriptedInput{actions: []string{"1", "a", "attack"}}
	e, _ := testEngine(d, in)
	p := NewPlayer("x")
	foe := AdversaryTemplate{Name: "Town Guard", Health: 30, Damage: 10, Accuracy: 0.7}.Spawn()

	out, err := e.ResolveEncounter(context.Background(), p, foe)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out != PlayerWon {
		t.Errorf("Expected PlayerWon, got %s", out)
	}
	if p.Health() != 90 {
		t.Errorf("Expected one adversary hit (90), got %d", p.Health())
	}
	if in.actionPrompts != 3 {
		t.Errorf("Expected 3 rounds, got %d", in.actionPrompts)
	}
	want := []float64{0.75, 0.7, 0.75, 0.7, 0.75}
	if len(d.hitChances) != len(want) {
		t.Fatalf("Expected rolls %v, got %v", want, d.hitChances)
	}
	for i := range want {
		if d.hitChances[i] != want[i] {
			t.Errorf("roll %d: expected accuracy %.2f, got %.2f", i, want[i], d.hitChances[i])
		}
	}
}

func TestResolveEncounter_Flee(t *testing.T) {
	d := &scriptedDice{flees: []bool{false, true}}
	in := &scriptedInput{actions: []string{"flee", "flee"}}
	e, rec := testEngine(d, in)
	p := NewPlayer("x")
	foe := AdversaryTemplate{Name: "Town Guard", Health: 40, Damage: 10, Accuracy: 1}.Spawn()

	out, err := e.ResolveEncounter(context.Background(), p, foe)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out != PlayerFled {
		t.Errorf("Expected PlayerFled, got %s", out)
	}
	if foe.Health() != 40 {
		t.Errorf("Expected adversary to keep its health, got %d", foe.Health())
	}
	for _, c := range d.fleeChances {
		if c != FleeChance {
			t.Errorf("Expected flee chance %.2f, got %.2f", FleeChance, c)
		}
	}
	// the failed attempt still lets the adversary swing (miss by default)
	if n := len(eventsOf[AdversaryStruck](rec)); n != 1 {
		t.Errorf("Expected exactly one adversary turn, got %d", n)
	}
	attempts := eventsOf[FleeAttempted](rec)
	if len(attempts) != 2 || attempts[0].Escaped || !attempts[1].Escaped {
		t.Errorf("Unexpected flee events %+v", attempts)
	}
}

func TestResolveEncounter_InvalidActionIsNoOp(t *testing.T) {
	d := &scriptedDice{hits: []bool{true, true}}
	in := &scriptedInput{actions: []string{"dance", "attack"}}
	e, rec := testEngine(d, in)
	p := NewPlayer("x")
	foe := AdversaryTemplate{Name: "Crab", Health: 5, Damage: 7, Accuracy: 1}.Spawn()

	out, err := e.ResolveEncounter(context.Background(), p, foe)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out != PlayerWon {
		t.Errorf("Expected PlayerWon, got %s", out)
	}
	if n := len(eventsOf[Hesitated](rec)); n != 1 {
		t.Errorf("Expected one hesitation, got %d", n)
	}
	if p.Health() != 93 {
		t.Errorf("Expected the adversary to act after the no-op turn (93), got %d", p.Health())
	}
}

func TestResolveEncounter_EliteCritical(t *testing.T) {
	d := &scriptedDice{hits: []bool{false, true}, crits: []bool{true}}
	in := &scriptedInput{actions: []string{"attack"}}
	e, rec := testEngine(d, in)
	p := NewPlayer("x")
	foe := AdversaryTemplate{Name: "Swamp Mercenary", Health: 60, Damage: 20, Accuracy: 0.65, Variant: Elite}.Spawn()

	_, err := e.ResolveEncounter(context.Background(), p, foe)
	if !errors.Is(err, errScriptDone) {
		t.Fatalf("Expected the script to run out, got %v", err)
	}
	if p.Health() != 60 {
		t.Errorf("Expected doubled damage (60 left), got %d", p.Health())
	}
	if len(d.critChances) != 1 || d.critChances[0] != DefaultCritChance {
		t.Errorf("Expected one crit roll at %.2f, got %v", DefaultCritChance, d.critChances)
	}
	struck := eventsOf[AdversaryStruck](rec)
	if len(struck) != 1 || !struck[0].Critical || struck[0].Damage != 40 {
		t.Errorf("Unexpected adversary events %+v", struck)
	}
}

func TestResolveEncounter_BasicNeverCrits(t *testing.T) {
	d := &scriptedDice{hits: []bool{false, true}, crits: []bool{true}}
	in := &scriptedInput{actions: []string{"attack"}}
	e, _ := testEngine(d, in)
	p := NewPlayer("x")
	foe := AdversaryTemplate{Name: "Soldier", Health: 60, Damage: 20, Accuracy: 0.65}.Spawn()

	_, _ = e.ResolveEncounter(context.Background(), p, foe)
	if len(d.critChances) != 0 {
		t.Errorf("Expected no crit roll for a basic adversary, got %v", d.critChances)
	}
	if p.Health() != 80 {
		t.Errorf("Expected base damage only (80), got %d", p.Health())
	}
}

func TestResolveEncounter_PlayerDefeated(t *testing.T) {
	d := &scriptedDice{hits: []bool{false, true}}
	in := &scriptedInput{actions: []string{"attack"}}
	e, _ := testEngine(d, in)
	p := NewPlayer("x")
	foe := AdversaryTemplate{Name: "The Mad King", Health: 500, Damage: 150, Accuracy: 0.9}.Spawn()

	out, err := e.ResolveEncounter(context.Background(), p, foe)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out != PlayerDefeated {
		t.Errorf("Expected PlayerDefeated, got %s", out)
	}
	if p.Health() != 0 {
		t.Errorf("Expected health clamped to 0, got %d", p.Health())
	}
}

func TestResolveEncounter_SwitchItem(t *testing.T) {
	d := &scriptedDice{hits: []bool{true, false, true}}
	in := &scriptedInput{items: []int{1, 7}, actions: []string{"attack", "attack"}}
	e, rec := testEngine(d, in)
	p := NewPlayer("x")
	p.Acquire(Pistol)
	foe := AdversaryTemplate{Name: "Guard", Health: 45, Damage: 1, Accuracy: 0.5}.Spawn()

	out, err := e.ResolveEncounter(context.Background(), p, foe)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out != PlayerWon {
		t.Errorf("Expected PlayerWon, got %s", out)
	}
	if p.Equipped() != Pistol {
		t.Errorf("Expected pistol to stay equipped after an invalid choice, got %s", p.Equipped())
	}
	if d.hitChances[0] != Pistol.Accuracy() {
		t.Errorf("Expected first roll at pistol accuracy, got %.2f", d.hitChances[0])
	}
	equips := eventsOf[ItemEquipped](rec)
	if len(equips) != 2 || !equips[0].Changed || equips[1].Changed {
		t.Errorf("Unexpected equip events %+v", equips)
	}
}

func TestResolveEncounter_SingleItemSkipsPrompt(t *testing.T) {
	d := &scriptedDice{hits: []bool{true}}
	in := &scriptedInput{actions: []string{"attack"}}
	e, _ := testEngine(d, in)

	_, _ = e.ResolveEncounter(context.Background(), NewPlayer("x"), AdversaryTemplate{Name: "Rat", Health: 1}.Spawn())
	if in.itemPrompts != 0 {
		t.Errorf("Expected no item prompt with one item, got %d", in.itemPrompts)
	}
}

func TestResolveEncounter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e, _ := testEngine(&scriptedDice{}, &scriptedInput{actions: []string{"attack"}})
	foe := AdversaryTemplate{Name: "Rat", Health: 1}.Spawn()

	out, err := e.ResolveEncounter(ctx, NewPlayer("x"), foe)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if out != Unresolved || foe.Health() != 1 {
		t.Errorf("Expected nothing resolved, got %s with foe at %d", out, foe.Health())
	}
}

func TestParseAction(t *testing.T) {
	tests := map[string]Action{
		"attack":  Attack,
		" ATTACK": Attack,
		"1":       Attack,
		"flee":    Flee,
		"F":       Flee,
		"2":       Flee,
		"":        NoAction,
		"3":       NoAction,
		"parley":  NoAction,
	}
	for in, want := range tests {
		if got := ParseAction(in); got != want {
			t.Errorf("ParseAction(%q) = %s, expected %s", in, got, want)
		}
	}
}
