package posting

import (
	farm "github.com/dgryski/go-farm"

	"github.com/hroptatyr/qgjoin/strpool"
)

// maxCollisions bounds linear-probe search length before a resize is forced;
// grounded on fusion/kmer_index.go's own probe-length cap.
const maxCollisions = 64

const initHashedBuckets = 1024

// Hashed is the drop-in hash-map substitution for Array that spec.md §9
// explicitly invites: a vanilla linear-probing hash table keyed by
// farm.Hash64WithSeed(nil, uint64(hash)) instead of the hash itself, so the
// bucket count can stay far smaller than 2^width.
type Hashed struct {
	buckets []hashedBucket
	mask    uint64
	n       int
}

type hashedBucket struct {
	used bool
	key  uint32
	list []strpool.FactorID
}

// NewHashed allocates an empty Hashed backend.
func NewHashed() *Hashed {
	return &Hashed{
		buckets: make([]hashedBucket, initHashedBuckets),
		mask:    initHashedBuckets - 1,
	}
}

func farmOf(h uint32) uint64 {
	return farm.Hash64WithSeed(nil, uint64(h))
}

func (idx *Hashed) Append(h uint32, f strpool.FactorID) {
	if idx.n*2 >= len(idx.buckets) {
		idx.grow()
	}
	b := idx.find(h, true)
	b.list = append(b.list, f)
}

func (idx *Hashed) List(h uint32) []strpool.FactorID {
	b := idx.find(h, false)
	if b == nil {
		return nil
	}
	return b.list
}

func (idx *Hashed) Len(h uint32) int {
	return len(idx.List(h))
}

// find locates the bucket for h, probing linearly from its farm-hash slot.
// When insert is true and no bucket exists yet, it claims the first free
// slot and returns it.
func (idx *Hashed) find(h uint32, insert bool) *hashedBucket {
	start := farmOf(h) & idx.mask
	for i := uint64(0); i <= maxCollisions && i < uint64(len(idx.buckets)); i++ {
		slot := (start + i) & idx.mask
		b := &idx.buckets[slot]
		if b.used && b.key == h {
			return b
		}
		if !b.used {
			if !insert {
				return nil
			}
			b.used = true
			b.key = h
			idx.n++
			return b
		}
	}
	if insert {
		idx.grow()
		return idx.find(h, insert)
	}
	return nil
}

func (idx *Hashed) grow() {
	old := idx.buckets
	idx.buckets = make([]hashedBucket, len(old)*2)
	idx.mask = uint64(len(idx.buckets) - 1)
	idx.n = 0
	for _, b := range old {
		if !b.used {
			continue
		}
		nb := idx.find(b.key, true)
		nb.list = b.list
	}
}
