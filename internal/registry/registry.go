// Package registry provides a global registry of board variants.
// Variants register themselves in init() functions, allowing the CLI
// to discover and apply them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/match3/internal/config"
)

// Variant is a named preset applied on top of the loaded configuration.
type Variant interface {
	// ID returns a unique identifier (e.g., "classic", "mini").
	// Used for CLI flags and run history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description summarizes the board in one line.
	Description() string

	// Apply overrides the parts of cfg this variant controls.
	Apply(cfg *config.Config)
}

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a variant.
type Factory func() Variant

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]VariantInfo)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from a variant's init() function.
// Panics if a variant with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	v := f()
	infos[id] = VariantInfo{ID: id, Title: v.Title(), Description: v.Description()}
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new variant by its ID.
// Returns an error if the variant ID is not registered.
func Create(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
