package invaders

// Roster is the ordered set of live adversaries. Removal rebuilds the
// backing slice, so a Snapshot taken before a removal stays intact.
type Roster struct {
	items []*Adversary
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{}
}

// Add appends an adversary.
func (r *Roster) Add(a *Adversary) {
	r.items = append(r.items, a)
}

// Remove drops a from the roster and reports whether it was present.
// Removing an absent adversary is a no-op.
func (r *Roster) Remove(a *Adversary) bool {
	idx := -1
	for i, item := range r.items {
		if item == a {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	next := make([]*Adversary, 0, len(r.items)-1)
	next = append(next, r.items[:idx]...)
	next = append(next, r.items[idx+1:]...)
	r.items = next
	return true
}

// Len returns the number of live adversaries.
func (r *Roster) Len() int {
	return len(r.items)
}

// Snapshot returns the adversaries in insertion order. Later removals do
// not affect the returned slice.
func (r *Roster) Snapshot() []*Adversary {
	return r.items
}

// Clear empties the roster.
func (r *Roster) Clear() {
	r.items = nil
}
