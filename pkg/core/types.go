package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a generated grid.
type Size struct {
	W int
	H int
}

// Generator is the lifecycle shared by every layout algorithm.
//
// GenerateGrid restarts the algorithm from scratch and returns a snapshot of
// the finished grid. NextIteration refines the existing grid by one step, or
// behaves like GenerateGrid when nothing has been generated yet. Returned
// grids are copies; mutating them does not affect the generator.
type Generator interface {
	Name() string
	Size() Size
	GenerateGrid() *Grid
	NextIteration() *Grid
}

// Stats summarises the most recent run of a generator.
type Stats struct {
	Iterations   int
	OpenCells    int
	OpenFraction float64
	Agents       int
	// TargetReached is false when a walker exhausted its iteration cap.
	TargetReached bool
}

// StatsProvider is implemented by generators that report run statistics.
type StatsProvider interface {
	Stats() Stats
}

// Factory constructs a Generator from flag-style key/value pairs.
type Factory func(cfg map[string]string) (Generator, error)

var generators = map[string]Factory{}

// Register adds a generator factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	generators[name] = f
}

// Names returns the registered generator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New looks up a registered factory and builds a generator with it.
func New(name string, cfg map[string]string) (Generator, error) {
	f, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator %q", name)
	}
	return f(cfg)
}
