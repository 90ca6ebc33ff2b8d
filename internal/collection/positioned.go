package collection

// Positioned is the minimal capability the ordering operations need:
// an identifier, a position, and a way to produce a copy with only the
// position changed. Item and Section both satisfy it, so reindex, reorder,
// move, and merge work uniformly over ingredient-like and instruction-like
// records without reflection.
//
// The self-referential constraint (T's methods return T) is what lets the
// generic operations stay pure: WithPos returns a shallow copy, never
// mutating the receiver.
type Positioned[T any] interface {
	// Key returns the record's unique identifier. Used as the stable
	// tie-break when sorting corrupt or duplicated positions.
	Key() string

	// Pos returns the record's current position value.
	Pos() int

	// WithPos returns a shallow copy of the record with only the
	// position field set to p.
	WithPos(p int) T
}

// Key implements Positioned for Item.
func (it Item) Key() string { return it.ID }

// Pos implements Positioned for Item.
func (it Item) Pos() int { return it.Position }

// WithPos implements Positioned for Item. Value receiver: the returned
// copy shares no mutable state with the caller's record.
func (it Item) WithPos(p int) Item {
	it.Position = p
	return it
}

// Key implements Positioned for Section.
func (s Section) Key() string { return s.ID }

// Pos implements Positioned for Section. A section's position is its Order.
func (s Section) Pos() int { return s.Order }

// WithPos implements Positioned for Section. The Items slice is shared by
// the copy; ordering operations never mutate items in place, so the shared
// backing array is safe.
func (s Section) WithPos(p int) Section {
	s.Order = p
	return s
}
