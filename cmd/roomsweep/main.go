// Command roomsweep measures how the walker parameters affect the number of
// iterations needed to reach the target open fraction.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"roomgen/internal/telemetry"
)

func main() {
	width := flag.Int("w", 96, "grid width")
	height := flag.Int("h", 64, "grid height")
	seeds := flag.Int("seeds", 8, "seeds per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "number of results to print")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger, err := telemetry.NewLogger(os.Stderr, *logLevel, "text")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	sets := buildSets(*width, *height)
	logger.Info("sweeping", "sets", len(sets), "seeds", *seeds, "workers", *workers)

	start := time.Now()
	results, err := sweep(context.Background(), sets, *seeds, *workers)
	if err != nil {
		logger.Error("sweep failed", "err", err)
		os.Exit(1)
	}
	rank(results)

	fmt.Printf("Top %d of %d parameter sets (elapsed %s):\n", min(*top, len(results)), len(results), time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, results[i])
	}
	for _, res := range results {
		if res.capped > 0 {
			logger.Warn("iteration cap hit", "params", res.params.String(), "runs", res.capped)
		}
	}
}
