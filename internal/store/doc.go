// Package store provides SQLite-backed durable storage for normalized
// recipes. It is the persistence boundary of the ordering engine: callers
// run raw documents through schema validation and normalization, apply
// edit operations in memory, and hand the result here.
//
// # Contract with the core
//
//   - Only normalized recipes are persisted. UNIQUE(recipe_id, kind, ord)
//     and UNIQUE(section_id, position) enforce the position invariants at
//     rest; a save of unnormalized data fails rather than corrupting.
//   - Saves replace the stored recipe wholesale inside one transaction,
//     matching the last-write-wins merge policy.
//   - Reads return data in canonical order: sections by (ord, id), items
//     by (position, id).
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity (cascaded deletes)
package store
