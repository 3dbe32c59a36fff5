// Package sim plays many autopilot sessions in parallel and summarises how
// a campaign treats its pirates.
package sim

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/sync/errgroup"

	"plunder/internal/bot"
	"plunder/internal/game"
	"plunder/internal/session"
)

// Run is the outcome of one simulated session.
type Run struct {
	ID       string
	Seed     uint64
	Result   game.Result
	Treasure int
	Health   int
	// Level is the deepest level reached; a victory counts every level.
	Level  int
	Visits int
}

type Options struct {
	Runs      int
	Workers   int
	Seed      uint64
	FleeBelow int
	Name      string
}

// Simulate plays opt.Runs sessions of c, run i seeded with opt.Seed+i, and
// puts each Run into store.
func Simulate(ctx context.Context, c *game.Campaign, opt Options, store session.Store[Run]) error {
	if c == nil {
		return errors.New("no campaign")
	}
	if opt.Runs < 0 || opt.Workers < 0 {
		return fmt.Errorf("runs (%d) and workers (%d) must not be negative", opt.Runs, opt.Workers)
	}
	workers := opt.Workers
	if workers == 0 {
		workers = 1
	}
	name := opt.Name
	if name == "" {
		name = "Autopilot"
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < opt.Runs; i++ {
		seed := opt.Seed + uint64(i)
		g.Go(func() error {
			r, err := playOne(gctx, c, seed, &bot.Autopilot{Name: name, FleeBelow: opt.FleeBelow})
			if err != nil {
				return fmt.Errorf("run seed %d: %w", seed, err)
			}
			r.ID = store.NewID()
			return store.Put(gctx, r.ID, r)
		})
	}
	return g.Wait()
}

func playOne(ctx context.Context, c *game.Campaign, seed uint64, in game.Input) (Run, error) {
	s := game.NewSession(c, game.NewRoller(seed), in, nil)
	result, err := s.Play(ctx)
	if err != nil {
		return Run{}, err
	}
	r := Run{
		Seed:     seed,
		Result:   result,
		Treasure: s.Player.Treasure(),
		Health:   s.Player.Health(),
		Level:    len(s.Levels),
		Visits:   len(s.Player.Route()),
	}
	if lv := s.Level(); lv != nil {
		r.Level = lv.Number
	}
	return r, nil
}

// Summary aggregates runs.
type Summary struct {
	Runs         int
	Victories    int
	AvgTreasure  float64
	BestTreasure int
	BestSeed     uint64
	// Deepest counts runs by the deepest level they reached.
	Deepest map[int]int
}

func (s Summary) VictoryRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Victories) / float64(s.Runs)
}

func Summarize(runs []Run) Summary {
	s := Summary{Runs: len(runs), Deepest: map[int]int{}}
	total := 0
	for i, r := range runs {
		if r.Result == game.Victory {
			s.Victories++
		}
		total += r.Treasure
		if i == 0 || r.Treasure > s.BestTreasure {
			s.BestTreasure, s.BestSeed = r.Treasure, r.Seed
		}
		s.Deepest[r.Level]++
	}
	if len(runs) > 0 {
		s.AvgTreasure = float64(total) / float64(len(runs))
	}
	return s
}

// Table renders the summary for a terminal.
func (s Summary) Table() string {
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500")).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#5F5F87"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers("Metric", "Value").
		Row("Runs", strconv.Itoa(s.Runs)).
		Row("Victories", fmt.Sprintf("%d (%.1f%%)", s.Victories, s.VictoryRate()*100)).
		Row("Average treasure", fmt.Sprintf("%.1f", s.AvgTreasure)).
		Row("Best treasure", fmt.Sprintf("%d (seed %d)", s.BestTreasure, s.BestSeed))

	levels := make([]int, 0, len(s.Deepest))
	for lv := range s.Deepest {
		levels = append(levels, lv)
	}
	sort.Ints(levels)
	for _, lv := range levels {
		t.Row(fmt.Sprintf("Ended on level %d", lv), strconv.Itoa(s.Deepest[lv]))
	}
	return t.String()
}
