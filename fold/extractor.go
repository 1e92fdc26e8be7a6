package fold

// codeMask keeps the full 5-bit folded code (values 1..27, or the all-ones
// separator sentinel) regardless of Ileave: only the left-shift width
// varies with Ileave, not the width of the code being mixed in. At
// Ileave<5 this deliberately makes consecutive codes' bits overlap in x —
// that overlap is the "interleave" the rolling hash is named for, not a
// bug to be tidied away.
const codeMask = 0x1f

// Extractor turns a line into its sequence of q-gram hashes using a rolling
// window over the folded alphabet. It is stateful, lazy, and single-use per
// line: call Reset before each line, then Next until it returns false.
//
// The rolling hash shifts x left by Ileave bits and XORs in the new code
// every admitted byte, then masks to the hash width (Width(ileave)) so the
// window holds exactly the last q codes' worth of bits.
type Extractor struct {
	ileave uint
	mask   uint32 // (1<<Width(ileave))-1

	line []byte
	pos  int

	x       uint32
	j       int
	condens bool
}

// NewExtractor builds an Extractor for the given interleave parameter
// (3, 4, or 5 bits per folded code).
func NewExtractor(ileave uint) *Extractor {
	return &Extractor{
		ileave: ileave,
		mask:   (1 << Width(ileave)) - 1,
	}
}

// Reset prepares the extractor to scan a new line. The line slice must
// remain valid and unmodified until the following Reset call.
func (e *Extractor) Reset(line []byte) {
	e.line = line
	e.pos = 0
	e.x = 0
	e.j = 0
	e.condens = true
}

// Next returns the next non-degenerate q-gram hash, or false when the line
// is exhausted. A contiguous run of separator bytes (space/hyphen/underscore)
// condenses to a single boundary code, so "foo  bar" and "foo-bar" fold to
// the same q-grams: only the first separator of a run is admitted into the
// window (as the all-ones sentinel code), the rest are dropped. An ignored
// byte (punctuation outside the separator set) is admitted as a zero code
// when it does not fall inside a separator run, and dropped when it does.
// Zero-valued windows are silently skipped: they arise only before the
// first q codes have been shifted in, or when a full window's bits happen
// to cancel out to zero.
func (e *Extractor) Next() (QGram, bool) {
	for e.pos < len(e.line) {
		b := e.line[e.pos]
		e.pos++
		h := foldTable[b]

		if h > 0 || !e.condens {
			e.x = (e.x<<e.ileave ^ (uint32(h) & codeMask)) & e.mask
			e.j++
			e.condens = h < 0
			if e.j >= q && e.x != 0 {
				return QGram(e.x), true
			}
			continue
		}
		e.condens = h < 0
	}
	return 0, false
}
