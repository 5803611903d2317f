// Package sweep runs the same starting board under several rule sets and
// seeds in parallel and reports how each population evolves.
package sweep

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"lifeca/internal/core"
	"lifeca/internal/life"
	"lifeca/internal/logging"
	"lifeca/internal/rules"
)

// Options describes a sweep. Every combination of Rules and Seeds becomes one
// scenario run for Generations steps on a board built from Board.
type Options struct {
	Board       life.Config
	Generations int
	Workers     int
	Rules       []rules.ID
	Seeds       []int64
	Logger      *slog.Logger
}

// Result is the outcome of one scenario.
type Result struct {
	Rule     rules.RuleSet `json:"-"`
	RuleSlug string        `json:"rule"`
	Seed     int64         `json:"seed"`

	// Population holds the alive count before the first step followed by
	// one entry per generation.
	Population []int `json:"population"`
	Initial    int   `json:"initial"`
	Final      int   `json:"final"`
	Peak       int   `json:"peak"`

	// StableAt is the first generation identical to its predecessor, or -1.
	StableAt int `json:"stable_at"`
	// ExtinctAt is the first generation with no alive cells, or -1.
	ExtinctAt int `json:"extinct_at"`
}

// Run executes every scenario, at most Workers at a time, and returns the
// results ordered by rule then seed. The first failing scenario cancels the
// rest.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Generations < 0 {
		return nil, fmt.Errorf("generations must be non-negative, got %d", opts.Generations)
	}
	if len(opts.Rules) == 0 {
		for _, r := range rules.All() {
			opts.Rules = append(opts.Rules, r.ID)
		}
	}
	if len(opts.Seeds) == 0 {
		opts.Seeds = []int64{opts.Board.Seed}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	results := make([]Result, len(opts.Rules)*len(opts.Seeds))
	log.Info("sweep started", "scenarios", len(results), "workers", workers, "generations", opts.Generations)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, id := range opts.Rules {
		for j, seed := range opts.Seeds {
			idx := i*len(opts.Seeds) + j
			cfg := opts.Board
			cfg.Rule = id
			cfg.Seed = seed
			g.Go(func() error {
				res, err := runScenario(ctx, cfg, opts.Generations)
				if err != nil {
					return fmt.Errorf("rule %d seed %d: %w", id, seed, err)
				}
				results[idx] = res
				logging.Trace(log, "scenario finished", "rule", res.Rule.Slug, "seed", seed, "final", res.Final)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Info("sweep finished", "scenarios", len(results), "elapsed", time.Since(start).Round(time.Millisecond))
	return results, nil
}

func runScenario(ctx context.Context, cfg life.Config, generations int) (Result, error) {
	e, err := life.New(cfg)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Rule:       e.Rule(),
		RuleSlug:   e.Rule().Slug,
		Seed:       cfg.Seed,
		Population: make([]int, 0, generations+1),
		StableAt:   -1,
		ExtinctAt:  -1,
	}
	res.Initial = e.Population()
	res.Population = append(res.Population, res.Initial)
	res.Peak = res.Initial
	if res.Initial == 0 {
		res.ExtinctAt = 0
	}

	prev := core.Snapshot(e.View())
	for gen := 1; gen <= generations; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		e.Step()
		pop := e.Population()
		res.Population = append(res.Population, pop)
		res.Peak = max(res.Peak, pop)
		if pop == 0 && res.ExtinctAt < 0 {
			res.ExtinctAt = gen
		}
		if res.StableAt < 0 {
			cur := core.Snapshot(e.View())
			if slices.Equal(prev, cur) {
				res.StableAt = gen
			}
			prev = cur
		}
	}
	res.Final = res.Population[len(res.Population)-1]
	return res, nil
}

// WriteTable prints one row per result.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RULE\tNOTATION\tSEED\tINITIAL\tPEAK\tFINAL\tSTABLE\tEXTINCT")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
			r.Rule.Slug, r.Rule.Notation(), r.Seed, r.Initial, r.Peak, r.Final, genOrDash(r.StableAt), genOrDash(r.ExtinctAt))
	}
	return tw.Flush()
}

func genOrDash(g int) string {
	if g < 0 {
		return "-"
	}
	return fmt.Sprint(g)
}
