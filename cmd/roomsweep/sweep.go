package main

import (
	"context"
	"fmt"
	"sort"

	"roomgen/pkg/gen/walker"

	"golang.org/x/sync/errgroup"
)

type paramSet struct {
	cfg walker.Config
}

func (p paramSet) String() string {
	c := p.cfg
	return fmt.Sprintf("target=%.2f spawn=%.2f prune=%.2f turn=%.2f agents=%d strategy=%s",
		c.TargetOpenFraction, c.SpawnChance, c.PruneChance, c.ChangeDirectionChance, c.MaxAgents, c.SpawnStrategy)
}

type scenarioResult struct {
	params     paramSet
	meanIters  float64
	worstIters int
	meanOpen   float64
	capped     int
	runs       int
}

func (r scenarioResult) String() string {
	return fmt.Sprintf("iters mean=%.1f worst=%d open=%.3f capped=%d/%d %s",
		r.meanIters, r.worstIters, r.meanOpen, r.capped, r.runs, r.params)
}

func buildSets(w, h int) []paramSet {
	base := walker.DefaultConfig()
	base.Width = w
	base.Height = h

	var sets []paramSet
	for _, target := range []float64{0.35, 0.45, 0.55} {
		for _, spawn := range []float64{0.05, 0.15, 0.3} {
			for _, prune := range []float64{0.05, 0.1} {
				for _, strategy := range []walker.SpawnStrategy{walker.SpawnCorners, walker.SpawnClone} {
					cfg := base
					cfg.TargetOpenFraction = target
					cfg.SpawnChance = spawn
					cfg.PruneChance = prune
					cfg.SpawnStrategy = strategy
					sets = append(sets, paramSet{cfg: cfg})
				}
			}
		}
	}
	return sets
}

// sweep runs every set across seeds on a bounded pool. Each worker owns the
// generators it builds.
func sweep(ctx context.Context, sets []paramSet, seeds, workers int) ([]scenarioResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]scenarioResult, len(sets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, set := range sets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runScenario(set, seeds)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(set paramSet, seeds int) (scenarioResult, error) {
	res := scenarioResult{params: set}
	var totalIters, totalOpen float64
	for seed := 0; seed < seeds; seed++ {
		cfg := set.cfg
		cfg.Seed = int64(seed)
		gen, err := walker.New(cfg)
		if err != nil {
			return scenarioResult{}, fmt.Errorf("%s: %w", set, err)
		}
		grid := gen.GenerateGrid()
		stats := gen.Stats()
		totalIters += float64(stats.Iterations)
		totalOpen += grid.OpenFraction()
		if stats.Iterations > res.worstIters {
			res.worstIters = stats.Iterations
		}
		if !stats.TargetReached {
			res.capped++
		}
		res.runs++
	}
	if res.runs > 0 {
		res.meanIters = totalIters / float64(res.runs)
		res.meanOpen = totalOpen / float64(res.runs)
	}
	return res, nil
}

// rank orders results by fewest mean iterations; capped runs sort last.
func rank(all []scenarioResult) {
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].capped != all[j].capped {
			return all[i].capped < all[j].capped
		}
		return all[i].meanIters < all[j].meanIters
	})
}
