// Package customdata owns the subset of a tag tree or config map
// that is not reserved by the typed item model.
//
// A View wraps a section holding only custom keys. Views are created
// on demand and never cached: once the backing tree mutates through
// another path, an old view silently diverges from it. That contract
// is the caller's to keep; the package does not enforce it.
//
// Views are not safe for concurrent mutation. Callers serialize
// access per item instance.
package customdata
