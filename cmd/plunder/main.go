package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"plunder/internal/config"
	"plunder/internal/console"
	"plunder/internal/content"
	"plunder/internal/game"
	"plunder/internal/mapgen"
	"plunder/internal/tui"
)

// namedInput skips the name prompt when the name came from flags or env.
type namedInput struct {
	game.Input
	name string
}

func (n namedInput) PlayerName(context.Context) (string, error) { return n.name, nil }

func main() {
	log.SetFlags(0)
	log.SetPrefix("plunder: ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	flag.StringVar(&cfg.CampaignPath, "campaign", cfg.CampaignPath, "campaign YAML file (default built-in)")
	flag.StringVar(&cfg.MapPath, "map", cfg.MapPath, "write a PDF chart of the voyage to this file")
	flag.BoolVar(&cfg.Plain, "plain", cfg.Plain, "line based prompts instead of menus")
	flag.StringVar(&cfg.Name, "name", cfg.Name, "pirate name (skips the prompt)")
	flag.Parse()

	campaign, err := content.Load(cfg.CampaignPath)
	if err != nil {
		log.Fatal(err)
	}
	seed := cfg.Seed
	if seed == 0 {
		if seed, err = game.NewSeed(); err != nil {
			log.Fatal(err)
		}
	}

	var in game.Input
	if !cfg.Plain && isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
		in = &tui.Input{Placeholder: campaign.PlayerName("")}
	} else {
		in = console.NewLineInput(os.Stdin, os.Stdout)
	}
	if cfg.Name != "" {
		in = namedInput{Input: in, name: cfg.Name}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := game.NewSession(campaign, game.NewRoller(seed), in, console.NewNarrator(os.Stdout))
	_, err = s.Play(ctx)
	switch {
	case errors.Is(err, tui.ErrQuit), errors.Is(err, context.Canceled):
		fmt.Println("\nYou abandon ship. Farewell!")
	case errors.Is(err, io.EOF):
		log.Println("input closed before the voyage ended")
	case err != nil:
		log.Fatal(err)
	}

	if cfg.MapPath != "" && s.Player != nil {
		if err := writeChart(cfg.MapPath, s, campaign.Title); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Voyage chart written to %s (seed %d)\n", cfg.MapPath, seed)
	}
}

func writeChart(path string, s *game.Session, title string) error {
	b, err := mapgen.Generate(s.Levels, s.Player, title)
	if err != nil {
		return err
	}
	if b == nil {
		return errors.New("no voyage to chart")
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
