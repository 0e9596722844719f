package conf

import (
	"fmt"
	"maps"
	"slices"
)

// MarkerKey is the sentinel key identifying a compound or section as
// the serialized form of a registered object type. Its value is the
// type alias.
const MarkerKey = "=="

// Serializable is the capability a value implements to be embedded in
// a tag tree as a typed object.
type Serializable interface {
	// SerialAlias returns the registered type alias written under
	// MarkerKey.
	SerialAlias() string
	// Serialize returns the object's exported key/value pairs.
	// Values must belong to the config value universe.
	Serialize() map[string]any
}

// Factory rehydrates an object from its exported data. The section
// holds everything the serialized form carried except MarkerKey.
type Factory func(data *Section) (Serializable, error)

// Registry maps type aliases to factories. Populate it during startup
// and treat it as frozen afterwards; lookups do not lock.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register binds alias to factory. Registering an alias twice fails
// with a CollisionError and leaves the first binding intact.
func (r *Registry) Register(alias string, factory Factory) error {
	if alias == "" {
		return fmt.Errorf("empty alias")
	}
	if factory == nil {
		return fmt.Errorf("nil factory for alias %q", alias)
	}
	if _, ok := r.factories[alias]; ok {
		return &CollisionError{Alias: alias}
	}
	r.factories[alias] = factory
	return nil
}

func (r *Registry) Lookup(alias string) (Factory, bool) {
	f, ok := r.factories[alias]
	return f, ok
}

func (r *Registry) Aliases() []string {
	return slices.Sorted(maps.Keys(r.factories))
}

// CollisionError reports a duplicate alias registration.
type CollisionError struct {
	Alias string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("alias %q is already registered", e.Alias)
}
