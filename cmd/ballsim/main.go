package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ballpit/engine/internal/config"
	"github.com/ballpit/engine/internal/physics"
	"github.com/ballpit/engine/internal/scenario"
	"github.com/ballpit/engine/internal/sim"
)

// pathList collects a repeatable -scenario flag.
type pathList []string

func (p *pathList) String() string {
	return strings.Join(*p, ",")
}

func (p *pathList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

type result struct {
	name   string
	report sim.Report
}

func main() {
	cfg := config.Load()

	var paths pathList
	flag.Var(&paths, "scenario", "path to a YAML scenario (repeatable)")
	ticks := flag.Int("ticks", 0, "override the tick limit of every scenario")
	asJSON := flag.Bool("json", false, "print final ball snapshots as JSON")
	parallel := flag.Int("parallel", cfg.Parallel, "max scenarios run concurrently")
	flag.Parse()

	scenarios, err := loadScenarios(paths, cfg)
	if err != nil {
		log.Fatalf("Failed to load scenarios: %v", err)
	}
	if *ticks > 0 {
		for _, s := range scenarios {
			s.Ticks = *ticks
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := make([]result, len(scenarios))
	g, gctx := errgroup.WithContext(ctx)
	if *parallel > 0 {
		g.SetLimit(*parallel)
	}
	for i, s := range scenarios {
		g.Go(func() error {
			world, err := s.Build()
			if err != nil {
				return fmt.Errorf("%s: %w", s.Name, err)
			}
			log.Printf("[SIM] Running %s: %d %s balls in %vx%v for up to %d ticks",
				s.Name, len(s.Balls), s.Regime, s.Width, s.Height, s.Ticks)

			report, err := world.Run(gctx, s.Ticks, s.StopWhenSettled)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Name, err)
			}
			results[i] = result{name: s.Name, report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	for _, r := range results {
		log.Printf("[SIM] %s: ticks=%d settled=%t energy=%.6f digest=%016x",
			r.name, r.report.Ticks, r.report.Settled, r.report.Energy, r.report.Digest)
		if *asJSON {
			out, err := json.MarshalIndent(r.report, "", "  ")
			if err != nil {
				log.Fatalf("Failed to encode report for %s: %v", r.name, err)
			}
			fmt.Println(string(out))
		}
	}
}

// loadScenarios reads every scenario file, or builds the demo scenario from
// the environment when none is given.
func loadScenarios(paths []string, cfg *config.Config) ([]*scenario.Scenario, error) {
	if len(paths) == 0 {
		log.Printf("[SCENARIO] No scenario given, generating %d %s balls (seed=%d)", cfg.Balls, cfg.Regime, cfg.Seed)
		s, err := scenario.Random("demo", physics.Regime(strings.ToUpper(cfg.Regime)),
			cfg.Width, cfg.Height, cfg.Balls, cfg.Radius, cfg.MaxSpeed, cfg.Seed)
		if err != nil {
			return nil, err
		}
		s.Ticks = cfg.Ticks
		s.StopWhenSettled = cfg.StopWhenSettled
		return []*scenario.Scenario{s}, nil
	}

	scenarios := make([]*scenario.Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := scenario.LoadFile(p)
		if err != nil {
			return nil, err
		}
		if s.Ticks == 0 {
			s.Ticks = cfg.Ticks
		}
		log.Printf("[SCENARIO] Loaded %s (%d balls)", s.Name, len(s.Balls))
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}
