// Package registry provides a global registry for curve generator factories.
// Curve families register themselves in init() functions, allowing the CLI
// and viewers to discover and instantiate curves without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/fractals/internal/core"
)

// Generator is the interface every curve family implements.
// Generators are pure: no rendering, no timing, no I/O.
type Generator interface {
	// ID returns a unique identifier for this curve (e.g., "koch", "dragon").
	// Used for CLI commands, file names and render history.
	ID() string

	// Title returns a human-readable name for display (e.g., "Koch Curve").
	Title() string

	// Generate returns the segment sequence of the requested level and
	// leaves the generator back at level 0, so calls are independent.
	Generate(level int) ([]core.Segment, error)

	// Level returns the generation index of the current internal state.
	Level() int
}

// Info contains metadata and defaults for a registered curve.
type Info struct {
	ID              string
	Title           string
	DefaultLevel    int     // Level used when none is requested
	InitLength      float64 // Length of the seed segments
	DefaultColormap string  // Colormap used when none is requested
}

// Factory creates a new generator whose seed segments have the given length.
type Factory func(initLength float64) Generator

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a curve factory to the registry.
// Typically called from a curve package's init() function.
// Panics if a curve with the same ID is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: curve %q already registered", info.ID))
	}

	// Fill the title from a throwaway instance when the caller left it empty
	if info.Title == "" {
		info.Title = f(info.InitLength).Title()
	}

	entries[info.ID] = entry{info: info, factory: f}
}

// List returns information about all registered curves, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the metadata of a registered curve.
func Lookup(id string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a new generator by its ID. A non-positive initLength
// selects the curve's registered default.
// Returns a configuration error if the curve ID is not registered.
func Create(id string, initLength float64) (Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown curve %q: %w", id, core.ErrConfig)
	}
	if initLength <= 0 {
		initLength = e.info.InitLength
	}

	return e.factory(initLength), nil
}

// Exists checks if a curve with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
