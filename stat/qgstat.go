// Package stat implements QGSTAT: it builds the same q-gram index as QGJ's
// left pass, then reports how many times each distinct q-gram was recorded
// (its posting-list length, which counts repeats within one line).
package stat

import (
	"github.com/hroptatyr/qgjoin/fold"
	"github.com/hroptatyr/qgjoin/posting"
	"github.com/hroptatyr/qgjoin/strpool"
)

// MinLineLen is the shortest input line QGSTAT will intern. Shorter lines
// cannot contribute a single 5-gram, and the original rejects them before
// interning rather than let them occupy a dead factor slot.
const MinLineLen = 5

// Entry is one non-empty posting-list slot: a decoded q-gram token and the
// number of times it was recorded (counting repeats within one line).
type Entry struct {
	QGram string
	Count int
}

// Build interns each line at least MinLineLen bytes long and records its
// q-grams in backend, using the given interleave width.
func Build(lines [][]byte, backend posting.Backend, ileave uint) *strpool.Pool {
	pool := strpool.New()
	ex := fold.NewExtractor(ileave)

	for _, line := range lines {
		if len(line) < MinLineLen {
			continue
		}
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
	return pool
}

// Dump walks every hash slot in an Array backend in ascending order and
// returns an Entry for each non-empty one. It is the full-address-space
// enumeration spec.md calls for; a Hashed backend has no fixed address
// space to walk in order, so Dump only accepts Array.
func Dump(backend *posting.Array) []Entry {
	var out []Entry
	for h := 0; h < backend.Slots(); h++ {
		n := backend.Len(uint32(h))
		if n == 0 {
			continue
		}
		out = append(out, Entry{QGram: fold.Decode(fold.QGram(h)), Count: n})
	}
	return out
}
