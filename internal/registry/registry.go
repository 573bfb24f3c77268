// Package registry provides a global registry for game frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and launch them without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/BlueyDragon/mdn-breakout-game/internal/config"
	"github.com/BlueyDragon/mdn-breakout-game/internal/core"
)

// ErrUnknownFrontend is returned by Create for unregistered names.
var ErrUnknownFrontend = errors.New("unknown frontend")

// Options carries everything a frontend needs to run a session.
type Options struct {
	Config  config.BreakoutConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Frontend presents the game on some output device and feeds it input.
// The game logic itself lives in the breakout package; a frontend only
// schedules ticks, maps keys and draws snapshots.
type Frontend interface {
	// Name returns the identifier used on the command line (e.g., "tui").
	Name() string

	// Description returns a one-line human-readable summary.
	Description() string

	// Run plays sessions until the user quits or ctx is canceled.
	Run(ctx context.Context, opts Options) error
}

// Info contains metadata about a registered frontend.
type Info struct {
	Name        string
	Description string
}

// Factory is a function that creates a new frontend instance.
type Factory func() Frontend

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered frontends, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a frontend by name.
func Create(name string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownFrontend, name)
	}

	return f(), nil
}

// Exists checks if a frontend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
