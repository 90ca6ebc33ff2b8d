// Package testutil provides deterministic generators for reproducible
// tests and golden snapshot comparison.
package testutil

import (
	"fmt"
	"sync"
)

// DeterministicIDs is a thread-safe sequential identifier generator for
// tests. Production code generates UUIDs; scenarios and golden tests
// inject this instead so the same input always yields identical output.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex.
type DeterministicIDs struct {
	mu     sync.Mutex
	prefix string
	seq    int
}

// NewDeterministicIDs creates a generator producing "<prefix>-000001",
// "<prefix>-000002", ...
func NewDeterministicIDs(prefix string) *DeterministicIDs {
	return &DeterministicIDs{prefix: prefix}
}

// Next returns the next identifier in sequence.
func (g *DeterministicIDs) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return fmt.Sprintf("%s-%06d", g.prefix, g.seq)
}

// Count returns how many identifiers have been generated.
func (g *DeterministicIDs) Count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seq
}

// Reset restarts the sequence. After Reset the next call to Next returns
// "<prefix>-000001" again, enabling scenario reuse.
func (g *DeterministicIDs) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq = 0
}
