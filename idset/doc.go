// Package idset provides the numeric-identifier primitives shared by the
// sampling pipeline: the ID value type, the duplicate-free Set, and parsing
// of raw textual tokens into IDs.
//
// Conventions:
//   - An identifier is an int64; it carries no meaning beyond identity.
//   - Float-convertible tokens ("7", "7.0", "7.9") are accepted and truncated
//     toward zero, matching the tolerant loaders this engine replaces.
//     Anything else is ErrInvalidIdentifier.
//   - Sets are map-backed and unordered; Sorted() yields the canonical
//     ascending order every deterministic consumer must use.
//   - Set operations return fresh sets; receivers are never mutated except
//     by the explicit Add.
package idset
