// Package value provides the dynamically typed attribute values used
// throughout the graph engine.
//
// Every attribute and metadata slot on a node, edge, or graph holds a
// [Value]: a tagged union of string, int64, float64, bool, null, list, and
// string-keyed map. Equality is structural ([Value.Equal]), which gives the
// change-detection layer and edge filters well-defined comparison semantics
// without reflection.
//
// The JSON encoding is externally tagged (see json.go) so that integer and
// floating-point values keep their types across save/load round trips.
package value
