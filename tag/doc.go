// Package tag provides the node tree for persisted item data.
//
// A Node is a recursive tagged union over the kinds the persistence
// layer can store: fixed-width integers (byte, short, int, long),
// floats (float, double), strings, byte and int arrays, homogeneous
// lists, and compounds (ordered name/value maps).
//
// # Structure constraints
//
// For CompoundType nodes, Names[i] is the key for the value at
// Values[i]; the two slices always have the same length and a name
// appears at most once. Compounds preserve insertion order.
//
// For ListType nodes, Elem records the element kind for the whole
// list. Every element must be of that kind; Append enforces this. An
// empty list has Elem == EndType until the first element fixes it.
//
// Nodes do not share children. Clone performs a deep copy, and the
// constructors for array kinds copy their input slices, so a tree
// never aliases caller memory.
package tag
