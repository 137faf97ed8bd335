// Package skippath implements an on-demand JSON-path evaluator.
//
// Given a raw JSON byte buffer and a compiled path, it locates every
// matching sub-value by skipping forward through the bytes, validating
// just enough structure to find value boundaries, without ever building
// a full document tree. Results are byte slices that borrow from the
// input buffer.
//
// The package is split the way the algorithm it implements is layered:
// word-at-a-time byte primitives (skip_space, skip_string, skip_container,
// ...) underlie a value skipper, which underlies key/index lookup
// operators, which underlie the path driver that walks a compiled [Path].
// Textual path compilation, DOM re-parsing of a matched slice, and
// serialization back to text live in the sibling compile, domtree, and
// serialize packages; none of that machinery is needed by the scanner
// itself.
package skippath
