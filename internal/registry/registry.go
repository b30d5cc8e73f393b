// Package registry keeps the game factories known to the platform.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tile-launcher/internal/core"
)

// Game is the interface every playable game implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

// Registry maps game IDs to factories. It is safe for concurrent use,
// which the SSH server relies on.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a game. Panics if the ID is already taken.
func (r *Registry) Register(info GameInfo, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	r.entries[info.ID] = entry{info: info, factory: f}
}

// List returns all registered games sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GameInfo, 0, len(r.entries))
	for _, e := range r.entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Info returns the metadata of a registered game.
func (r *Registry) Info(id string) (GameInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	return e.info, ok
}

// Create instantiates a new game by its ID.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	_, ok := r.Info(id)
	return ok
}

var global = New()

// Register adds a game to the global registry.
func Register(info GameInfo, f Factory) { global.Register(info, f) }

// List returns the games of the global registry.
func List() []GameInfo { return global.List() }

// Info looks a game up in the global registry.
func Info(id string) (GameInfo, bool) { return global.Info(id) }

// Create instantiates a game from the global registry.
func Create(id string) (Game, error) { return global.Create(id) }

// Exists checks the global registry.
func Exists(id string) bool { return global.Exists(id) }
