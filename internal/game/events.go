package game

// Presenter receives narration. It only observes; nothing it does feeds
// back into game state.
type Presenter interface {
	Present(Event)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(Event)

func (f PresenterFunc) Present(ev Event) { f(ev) }

// Discard drops every event.
var Discard Presenter = PresenterFunc(func(Event) {})

// Presenters fans events out to each non-nil presenter in order.
func Presenters(ps ...Presenter) Presenter {
	return PresenterFunc(func(ev Event) {
		for _, p := range ps {
			if p != nil {
				p.Present(ev)
			}
		}
	})
}

// Event is the closed set of narration events.
type Event interface {
	event()
}

type SessionStarted struct {
	Player string
	Title  string
}

type LevelEntered struct {
	Number int
}

// LocationStatus is one row of the location menu.
type LocationStatus struct {
	Name    string
	Visited bool
	Looted  bool
}

// StatusReport is a snapshot shown before each location choice.
type StatusReport struct {
	Player    string
	Health    int
	Treasure  int
	Equipped  Item
	Level     int
	Locations []LocationStatus
}

type SelectionInvalid struct {
	Choice int
	Max    int
}

type LocationAlreadyLooted struct {
	Location string
}

type VisitStarted struct {
	Location string
	Treasure int
	Minimum  int
}

type ObstacleTriggered struct {
	Obstacle string
	Damage   int
	Health   int
	// Wounded is set when the player survives below half health.
	Wounded bool
}

type Succumbed struct {
	Location string
}

type AdversaryAppeared struct {
	Name    string
	Health  int
	Variant Variant
}

type RoundStarted struct {
	PlayerHealth    int
	Adversary       string
	AdversaryHealth int
}

type ItemEquipped struct {
	Item    Item
	Changed bool
}

type PlayerStruck struct {
	Adversary string
	Item      Item
	Hit       bool
	Damage    int
	Remaining int
}

type FleeAttempted struct {
	Escaped bool
}

type Hesitated struct{}

type AdversaryStruck struct {
	Adversary string
	Hit       bool
	Critical  bool
	Damage    int
	Health    int
}

type EncounterEnded struct {
	Adversary string
	Outcome   Outcome
}

type TreasureLooted struct {
	Location string
	Amount   int
	Total    int
}

type StashFound struct {
	Kind StashKind
}

type Healed struct {
	Amount int
	Health int
	// Rest is set for the level-completion rest, unset for potions.
	Rest bool
}

type ItemGranted struct {
	Item         Item
	AlreadyOwned bool
	LevelReward  bool
}

// NoItemsLeft means a level reward found the player already owning the
// whole catalog.
type NoItemsLeft struct{}

type BonusGold struct {
	Amount int
	Total  int
}

type LevelCompleted struct {
	Number int
	Last   bool
}

type GameOver struct {
	Result   Result
	Player   string
	Treasure int
}

func (SessionStarted) event()        {}
func (LevelEntered) event()          {}
func (StatusReport) event()          {}
func (SelectionInvalid) event()      {}
func (LocationAlreadyLooted) event() {}
func (VisitStarted) event()          {}
func (ObstacleTriggered) event()     {}
func (Succumbed) event()             {}
func (AdversaryAppeared) event()     {}
func (RoundStarted) event()          {}
func (ItemEquipped) event()          {}
func (PlayerStruck) event()          {}
func (FleeAttempted) event()         {}
func (Hesitated) event()             {}
func (AdversaryStruck) event()       {}
func (EncounterEnded) event()        {}
func (TreasureLooted) event()        {}
func (StashFound) event()            {}
func (Healed) event()                {}
func (ItemGranted) event()           {}
func (NoItemsLeft) event()           {}
func (BonusGold) event()             {}
func (LevelCompleted) event()        {}
func (GameOver) event()              {}
