// Package codec converts between tag trees and config values.
//
// Decode maps a tag.Node to a config value (see package conf for the
// value universe) and Encode maps a config value to a freshly built
// tag.Node. Both are pure and synchronous; a failure anywhere in a
// subtree aborts the whole call without partial writes to the
// destination.
//
// A Codec carries the object registry used to rehydrate marker-tagged
// compounds and the recursion depth cap. Construct one per process
// after registration completes; it is safe for concurrent use.
package codec

import "github.com/mineworks/tagconf/conf"

// DefaultMaxDepth caps recursion on decode and encode. Trees this
// deep are hostile or corrupt, not data.
const DefaultMaxDepth = 512

type Codec struct {
	registry *conf.Registry
	maxDepth int

	// keepSerialized makes Decode leave marker-tagged compounds as
	// plain sections instead of invoking the registry. Tooling uses
	// this to view and rewrite trees it has no factories for.
	keepSerialized bool
}

type Option func(*Codec)

// WithRegistry sets the object registry consulted for marker-tagged
// compounds.
func WithRegistry(r *conf.Registry) Option {
	return func(c *Codec) { c.registry = r }
}

// WithMaxDepth overrides the recursion depth cap.
func WithMaxDepth(n int) Option {
	return func(c *Codec) { c.maxDepth = n }
}

// KeepSerialized disables object rehydration on decode; marker-tagged
// compounds come back as plain sections with MarkerKey intact.
func KeepSerialized() Option {
	return func(c *Codec) { c.keepSerialized = true }
}

func New(opts ...Option) *Codec {
	c := &Codec{
		registry: conf.NewRegistry(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the codec's object registry.
func (c *Codec) Registry() *conf.Registry {
	return c.registry
}
