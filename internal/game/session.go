package game

import (
	"context"
	"errors"
	"fmt"
)

// RestHeal is restored after completing a level that is not the last.
const RestHeal = 50

var (
	ErrNoPlayer    = errors.New("session not started")
	ErrSessionOver = errors.New("session is over")
)

// Result is the session-level state.
type Result int

const (
	Playing Result = iota
	Victory
	Defeat
)

func (r Result) String() string {
	switch r {
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return "playing"
	}
}

// VisitStatus reports what a location selection did.
type VisitStatus int

const (
	// VisitInvalid: the selection named no location; nothing changed.
	VisitInvalid VisitStatus = iota
	// VisitRejected: the location is already visited and sufficiently looted.
	VisitRejected
	// VisitDone: the looting sequence ran.
	VisitDone
)

// Session is one playthrough: the player, the session's copy of the
// campaign and the progression through its levels. It is not safe for
// concurrent use.
type Session struct {
	Engine
	Campaign *Campaign
	Player   *Player
	Levels   []*Level

	current int
	result  Result
}

// NewSession instantiates a fresh world from c. The engine's Roller and
// Input are required; a nil presenter discards narration.
func NewSession(c *Campaign, dice Roller, in Input, out Presenter) *Session {
	if out == nil {
		out = Discard
	}
	return &Session{
		Engine:   Engine{Dice: dice, Input: in, Out: out},
		Campaign: c,
		Levels:   NewLevels(c),
	}
}

func (s *Session) Result() Result { return s.result }

// Level returns the level in progress, or nil once every level is done.
func (s *Session) Level() *Level {
	if s.current >= len(s.Levels) {
		return nil
	}
	return s.Levels[s.current]
}

// Start asks for the player's name and enters the first level.
func (s *Session) Start(ctx context.Context) error {
	if s.Player != nil {
		return nil
	}
	raw, err := s.Input.PlayerName(ctx)
	if err != nil {
		return fmt.Errorf("player name: %w", err)
	}
	s.Player = NewPlayer(s.Campaign.PlayerName(raw))
	s.present(SessionStarted{Player: s.Player.Name, Title: s.Campaign.Title})
	if lv := s.Level(); lv != nil {
		s.present(LevelEntered{Number: lv.Number})
	}
	s.settle()
	return nil
}

// Visit selects the location at idx in the current level and, unless the
// selection is invalid or rejected, runs the looting sequence there.
func (s *Session) Visit(ctx context.Context, idx int) (VisitStatus, LootReport, error) {
	if s.Player == nil {
		return VisitInvalid, LootReport{}, ErrNoPlayer
	}
	if s.result != Playing {
		return VisitInvalid, LootReport{}, ErrSessionOver
	}
	lv := s.Level()
	if idx < 0 || idx >= len(lv.Locations) {
		s.present(SelectionInvalid{Choice: idx + 1, Max: len(lv.Locations)})
		return VisitInvalid, LootReport{}, nil
	}
	loc := lv.Locations[idx]
	if loc.Finished(s.Player) {
		s.present(LocationAlreadyLooted{Location: loc.Name})
		return VisitRejected, LootReport{}, nil
	}

	rep, err := s.LootLocation(ctx, s.Player, loc)
	if err != nil {
		return VisitDone, rep, fmt.Errorf("loot %s: %w", loc.Name, err)
	}
	s.settle()
	return VisitDone, rep, nil
}

// Play drives the session to a terminal result. The context is checked
// between location choices and between combat rounds.
func (s *Session) Play(ctx context.Context) (Result, error) {
	if err := s.Start(ctx); err != nil {
		return s.result, err
	}
	for s.result == Playing {
		if err := ctx.Err(); err != nil {
			return s.result, err
		}
		lv := s.Level()
		s.present(s.status(lv))
		idx, err := s.Input.ChooseLocation(ctx, lv, s.Player)
		if err != nil {
			return s.result, fmt.Errorf("choose location: %w", err)
		}
		if _, _, err := s.Visit(ctx, idx); err != nil {
			return s.result, err
		}
	}
	return s.result, nil
}

func (s *Session) status(lv *Level) StatusReport {
	rep := StatusReport{
		Player:   s.Player.Name,
		Health:   s.Player.Health(),
		Treasure: s.Player.Treasure(),
		Equipped: s.Player.Equipped(),
		Level:    lv.Number,
	}
	for _, loc := range lv.Locations {
		visited := s.Player.Visited(loc.Name)
		rep.Locations = append(rep.Locations, LocationStatus{
			Name:    loc.Name,
			Visited: visited,
			Looted:  visited && loc.Sufficient(),
		})
	}
	return rep
}

// settle applies every transition the current state allows: defeat, level
// completion with its rewards, and victory after the last level.
func (s *Session) settle() {
	for s.result == Playing {
		if !s.Player.Alive() {
			s.finish(Defeat)
			return
		}
		lv := s.Level()
		if lv == nil {
			s.finish(Victory)
			return
		}
		if !lv.Complete(s.Player) {
			return
		}
		last := s.current == len(s.Levels)-1
		s.present(LevelCompleted{Number: lv.Number, Last: last})
		if !last {
			s.levelReward()
		}
		s.current++
		if next := s.Level(); next != nil {
			s.present(LevelEntered{Number: next.Number})
		}
	}
}

func (s *Session) levelReward() {
	missing := s.Player.Missing()
	if len(missing) == 0 {
		s.present(NoItemsLeft{})
	} else {
		it := missing[s.Dice.ItemPick(len(missing))]
		s.Player.Acquire(it)
		s.present(ItemGranted{Item: it, LevelReward: true})
	}
	healed := s.Player.Heal(RestHeal)
	s.present(Healed{Amount: healed, Health: s.Player.Health(), Rest: true})
}

func (s *Session) finish(r Result) {
	s.result = r
	s.present(GameOver{Result: r, Player: s.Player.Name, Treasure: s.Player.Treasure()})
}
