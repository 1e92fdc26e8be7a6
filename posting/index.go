// Package posting implements the inverted index from folded q-gram hash to
// the list of left-stream factor IDs it occurs in.
package posting

import "github.com/hroptatyr/qgjoin/strpool"

const initListCap = 64

// Backend stores posting lists keyed by a q-gram hash. Append and List must
// both preserve arrival order and permit duplicate (hash, factor) pairs:
// duplicates are meaningful, they count repeated occurrences of the same
// q-gram within one left line.
type Backend interface {
	// Append records that factor f produced q-gram hash h.
	Append(h uint32, f strpool.FactorID)
	// List returns the posting list for h in arrival order. The returned
	// slice must not be mutated by the caller.
	List(h uint32) []strpool.FactorID
	// Len returns the posting-list length for h without materializing it.
	Len(h uint32) int
}

// Array is the default backend: a flat slice of posting lists indexed
// directly by q-gram hash, sized 2^width. It trades memory for the
// simplest possible Append/List.
type Array struct {
	lists [][]strpool.FactorID
}

// NewArray allocates an Array backend sized for the given hash width in
// bits (2^width slots).
func NewArray(width uint) *Array {
	return &Array{lists: make([][]strpool.FactorID, 1<<width)}
}

func (a *Array) Append(h uint32, f strpool.FactorID) {
	if a.lists[h] == nil {
		a.lists[h] = make([]strpool.FactorID, 0, initListCap)
	}
	a.lists[h] = append(a.lists[h], f)
}

func (a *Array) List(h uint32) []strpool.FactorID { return a.lists[h] }

func (a *Array) Len(h uint32) int { return len(a.lists[h]) }

// Slots returns the total number of hash slots, used by qgstat's full
// address-space enumeration.
func (a *Array) Slots() int { return len(a.lists) }
