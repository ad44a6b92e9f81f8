package sim

import (
	"github.com/google/uuid"

	"github.com/derbysim/derbysim/sim/playbyplay"
)

// PenaltyBox is the persistent set of skaters owing or serving penalty time.
// Entries are keyed by skater identity and kept in insertion order so that
// fielding and jam-end reconciliation visit them deterministically.
//
// Invariant: an identity appears at most once.
type PenaltyBox struct {
	order   []uuid.UUID
	entries map[uuid.UUID]JamSkater
}

// NewPenaltyBox returns an empty box.
func NewPenaltyBox() *PenaltyBox {
	return &PenaltyBox{entries: make(map[uuid.UUID]JamSkater)}
}

// Add inserts s. It returns false, leaving the box unchanged, if s is already
// present.
func (b *PenaltyBox) Add(s JamSkater) bool {
	if _, ok := b.entries[s.ID()]; ok {
		return false
	}
	b.order = append(b.order, s.ID())
	b.entries[s.ID()] = s
	return true
}

// Update replaces the snapshot of an existing entry. Absent skaters are ignored.
func (b *PenaltyBox) Update(s JamSkater) {
	if _, ok := b.entries[s.ID()]; ok {
		b.entries[s.ID()] = s
	}
}

// Remove deletes id from the box and reports whether it was present.
func (b *PenaltyBox) Remove(id uuid.UUID) bool {
	if _, ok := b.entries[id]; !ok {
		return false
	}
	delete(b.entries, id)
	for i, o := range b.order {
		if o == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether id is in the box.
func (b *PenaltyBox) Contains(id uuid.UUID) bool {
	_, ok := b.entries[id]
	return ok
}

// Get returns the snapshot for id.
func (b *PenaltyBox) Get(id uuid.UUID) (JamSkater, bool) {
	s, ok := b.entries[id]
	return s, ok
}

// Len returns the number of skaters in the box.
func (b *PenaltyBox) Len() int {
	return len(b.order)
}

// Skaters returns copies of every entry in insertion order.
func (b *PenaltyBox) Skaters() []JamSkater {
	out := make([]JamSkater, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.entries[id])
	}
	return out
}

// ForSide returns the entries belonging to side, in insertion order.
func (b *PenaltyBox) ForSide(side playbyplay.Side) []JamSkater {
	var out []JamSkater
	for _, id := range b.order {
		if s := b.entries[id]; s.Side == side {
			out = append(out, s)
		}
	}
	return out
}
