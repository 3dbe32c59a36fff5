package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"plunder/internal/config"
	"plunder/internal/content"
	"plunder/internal/game"
	"plunder/internal/session"
	"plunder/internal/sim"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("simulate: ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	flag.IntVar(&cfg.SimRuns, "runs", cfg.SimRuns, "number of sessions to play")
	flag.IntVar(&cfg.SimWorkers, "workers", cfg.SimWorkers, "sessions played at once")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the first run (0 picks one)")
	flag.IntVar(&cfg.SimFleeBelow, "flee-below", cfg.SimFleeBelow, "autopilot flees while health is below this")
	flag.StringVar(&cfg.CampaignPath, "campaign", cfg.CampaignPath, "campaign YAML file (default built-in)")
	flag.Parse()

	campaign, err := content.Load(cfg.CampaignPath)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Seed == 0 {
		if cfg.Seed, err = game.NewSeed(); err != nil {
			log.Fatal(err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store := session.NewMemoryStore[sim.Run]()
	start := time.Now()
	err = sim.Simulate(ctx, campaign, sim.Options{
		Runs:      cfg.SimRuns,
		Workers:   cfg.SimWorkers,
		Seed:      cfg.Seed,
		FleeBelow: cfg.SimFleeBelow,
		Name:      cfg.Name,
	}, store)
	if err != nil {
		log.Fatal(err)
	}
	runs, err := store.List(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("played %d runs from seed %d in %s", len(runs), cfg.Seed, time.Since(start).Round(time.Millisecond))
	fmt.Println(sim.Summarize(runs).Table())
}
