// Package order implements the position-consistency primitives for
// sectioned collections: validation, reindexing, intra-list reorder,
// cross-list move, drop-target validation, and bounded snapshot history.
//
// ARCHITECTURE:
//
// Pure Functions Only:
// Every operation takes a collection and returns a new collection or a
// computed result. No operation mutates a caller-supplied slice or record
// in place. This makes snapshots safe to keep for wholesale rollback.
//
// Determinism:
// Reindex sorts by (position, id) so even corrupt input with duplicate
// positions produces one canonical output. No randomness, no map-order
// dependence.
//
// Error model:
//   - Index-range and precondition violations are programmer errors,
//     returned as *Error with a structural code and never retried.
//   - Data-integrity problems (duplicate or invalid positions) are never
//     raised by the primitives that repair them; ValidatePositions reports
//     them as a non-error diagnostic Report.
//   - Drop-target failures originate from untrusted UI gesture data and
//     carry their own codes plus enough context for precise messaging.
package order
