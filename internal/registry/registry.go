// Package registry provides a global registry of level factories.
// Level packages register themselves in init() functions, allowing drivers
// to discover and instantiate levels without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID          string
	Title       string
	Scheme      platformer.ControlScheme
	Checkpoints int
}

// Factory returns a fresh copy of a level definition.
type Factory func() platformer.LevelDefinition

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]LevelInfo)
	mu        sync.RWMutex
)

// Register adds a level factory to the registry.
// Panics if a level with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}

	factories[id] = f

	def := f()
	title := def.Name
	if title == "" {
		title = id
	}
	infos[id] = LevelInfo{
		ID:          id,
		Title:       title,
		Scheme:      def.Scheme,
		Checkpoints: len(def.Checkpoints),
	}
}

// List returns information about all registered levels, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Definition returns a fresh copy of a registered level.
func Definition(id string) (platformer.LevelDefinition, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return platformer.LevelDefinition{}, fmt.Errorf("registry: unknown level %q", id)
	}
	return f(), nil
}

// Create instantiates a new game for a registered level.
func Create(id string, params platformer.Params) (*platformer.Game, error) {
	def, err := Definition(id)
	if err != nil {
		return nil, err
	}
	return platformer.NewGame(def, params)
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
