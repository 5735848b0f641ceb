// Package codec serializes graphs to and from portable representations.
//
// Two container formats are supported: an indented JSON document and a
// compact binary format with optional half-precision float narrowing. Both
// share the same acyclic intermediate form (Graph, Node, Edge) produced by
// FromGraph and consumed by ToGraph, so a graph round-trips identically
// through either format apart from the lossy f16 mode.
package codec
