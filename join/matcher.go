// Package join implements QGJ, the q-gram approximate line matcher: a left
// stream is indexed by its folded 5-grams, then each right-stream line is
// scored against every left factor that shares a long consecutive run of
// matching q-gram positions.
package join

import (
	"math"

	"github.com/hroptatyr/qgjoin/bitrun"
	"github.com/hroptatyr/qgjoin/fold"
	"github.com/hroptatyr/qgjoin/posting"
	"github.com/hroptatyr/qgjoin/strpool"
)

// DefaultIleave is the interleave width the qgjoin command uses (a 25-bit
// hash); BuildIndex and NewWorkspace accept any other width.
const DefaultIleave = 5

// Index is the built left-side state: interned factors plus their posting
// lists. It is read-only once BuildIndex returns.
type Index struct {
	Pool    *strpool.Pool
	Posting posting.Backend
	Ileave  uint
}

// BuildIndex interns each left line (in order, assigning dense FactorIDs)
// and records its q-grams in backend. Backend must already be sized or able
// to grow for the given ileave's hash width.
func BuildIndex(lines [][]byte, backend posting.Backend, ileave uint) *Index {
	pool := strpool.New()
	ex := fold.NewExtractor(ileave)

	for _, line := range lines {
		f := pool.Intern(line)
		ex.Reset(line)
		for {
			g, ok := ex.Next()
			if !ok {
				break
			}
			backend.Append(uint32(g), f)
		}
	}
	return &Index{Pool: pool, Posting: backend, Ileave: ileave}
}

// Match is one (factor, score) result for a right-side line: factor won a
// longest-matching-run tie at the reported score.
type Match struct {
	Factor strpool.FactorID
	Score  int
}

// Workspace holds the per-right-line scratch buffers (qc, cc, the winning
// set, and the line's own q-gram sequence) so repeated calls to Match don't
// reallocate. It must be sized with NewWorkspace for the Index it is used
// against.
type Workspace struct {
	qc      []uint64
	cc      []uint64
	x       []uint32
	winners []int
	ex      *fold.Extractor
	idx     *Index
}

// NewWorkspace allocates scratch state sized for idx's current factor
// count. Call it once after BuildIndex, before the right-stream loop.
func NewWorkspace(idx *Index) *Workspace {
	n := idx.Pool.Len()
	return &Workspace{
		qc:  make([]uint64, n),
		cc:  make([]uint64, n/64+1),
		ex:  fold.NewExtractor(idx.Ileave),
		idx: idx,
	}
}

// Match scores line against the indexed left factors and returns the
// winning set, or nil if the line fails the scoring gate (spec.md §4.4).
//
// A right line longer than 64 q-grams is accepted: position i sets bit
// i mod 64 of qc, so positions 64 and beyond wrap onto already-used bits, per the original's
// documented saturation behavior (spec.md §4.4, §9) — this is carried over
// verbatim, not "fixed," since changing it would change which lines match.
func (w *Workspace) Match(line []byte) []Match {
	for i := range w.qc {
		w.qc[i] = 0
	}
	for i := range w.cc {
		w.cc[i] = 0
	}

	w.x = w.x[:0]
	w.ex.Reset(line)
	for {
		g, ok := w.ex.Next()
		if !ok {
			break
		}
		w.x = append(w.x, uint32(g))
	}
	n := len(w.x)
	if n == 0 {
		return nil
	}

	var nq int
	for i, y := range w.x {
		bit := uint64(1) << uint(i%64)
		list := w.idx.Posting.List(y)
		for _, f := range list {
			w.qc[f-1] |= bit
		}
		nq += len(list)
	}

	for _, y := range w.x {
		list := w.idx.Posting.List(y)
		for _, f := range list {
			k := int(f) - 1
			w.cc[k/64] |= 1 << uint(k%64)
		}
	}

	max := 3
	w.winners = w.winners[:0]
	for i := range w.cc {
		c := w.cc[i]
		for j := 0; c != 0; c, j = c>>1, j+1 {
			if c&1 == 0 {
				continue
			}
			k := 64*i + j
			s := bitrun.LongestRun(w.qc[k])
			if s < max {
				continue
			}
			if s > max {
				max = s
				w.winners = w.winners[:0]
			}
			w.winners = append(w.winners, k)
		}
	}

	ncode := n // equivalent to ctzll(1<<n) = n, per spec.md §4.4 step 5
	sco := float64(max) / float64(ncode)
	ref := float64(ncode) / math.Sqrt(float64(nq))

	gateFail := max < 3
	max--
	if gateFail || sco+ref < 1 {
		return nil
	}

	out := make([]Match, len(w.winners))
	for i, k := range w.winners {
		out[i] = Match{Factor: strpool.FactorID(k + 1), Score: max}
	}
	return out
}
