// Package nbtio reads and writes the binary persistence format for
// tag trees.
//
// The layout is the classic named-tag encoding: a one-byte kind id,
// a length-prefixed name, then the payload; compounds repeat that
// triple until a terminator id, lists carry one element id and a
// count. All integers are big-endian. Files are often gzip-compressed;
// ReadFile sniffs the gzip magic and decompresses transparently.
//
// Strings are encoded as plain UTF-8. Readers guard against hostile
// input: unknown kind ids, negative lengths, and nesting past the
// depth cap all fail with typed errors instead of crashing or
// allocating unboundedly.
package nbtio
