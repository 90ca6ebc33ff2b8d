// Package collection provides the canonical data model for sectioned
// ordered collections.
//
// This package contains type definitions only. All other internal packages
// import collection; collection imports nothing internal. This keeps the
// data model the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Positions and orders are non-negative integers; every operation in
//     the ordering packages leaves them contiguous from 0
//   - Domain payload fields (Name, Amount, Content) are opaque to the
//     ordering logic and carried through unchanged
//   - All records are plain values; operations copy, never mutate in place
package collection
