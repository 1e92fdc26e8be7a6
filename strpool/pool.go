// Package strpool implements the append-only string pool and dense factor
// IDs shared by the matcher and the posting index: left-stream lines are
// interned once, in order, and thereafter addressed by a 1-based FactorID
// instead of by their bytes.
package strpool

// FactorID is a 1-based dense identifier assigned in interning order.
// 0 is reserved to mean "no factor."
type FactorID uint32

const (
	initPoolCap    = 4096
	initOffsetsCap = 512
)

// Pool is an append-only byte buffer plus a parallel offsets array: factor i
// occupies pool[offsets[i-1]:offsets[i]]. offsets[0] is always 0 and is
// never overwritten; offsets is non-decreasing by construction.
type Pool struct {
	buf     []byte
	offsets []uint32
}

// New returns an empty Pool, ready to intern factor 1 onward.
func New() *Pool {
	p := &Pool{
		buf:     make([]byte, 0, initPoolCap),
		offsets: make([]uint32, 1, initOffsetsCap),
	}
	p.offsets[0] = 0
	return p
}

// Intern appends b to the pool and returns its new FactorID. The pool never
// shrinks; it grows by append's own amortized growth.
func (p *Pool) Intern(b []byte) FactorID {
	p.buf = append(p.buf, b...)
	p.offsets = append(p.offsets, uint32(len(p.buf)))
	return FactorID(len(p.offsets) - 1)
}

// Lookup returns the bytes interned under id. The returned slice aliases the
// pool's backing array and must not be retained past the next Intern call
// that could trigger a reallocation; callers that need to keep it should
// copy.
func (p *Pool) Lookup(id FactorID) []byte {
	return p.buf[p.offsets[id-1]:p.offsets[id]]
}

// Len returns the number of interned factors.
func (p *Pool) Len() int {
	return len(p.offsets) - 1
}
