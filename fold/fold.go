// Package fold implements the byte-folding scheme shared by qgjoin and
// qgstat: every byte collapses to a 5-bit alphabet code, a visually-similar
// digit, or a separator sentinel, so that case, punctuation, and common
// digit/letter confusions wash out before q-grams are built.
package fold

// QGram is a packed hash of q consecutive folded codes. Hash width depends
// on Ileave: 15 bits at Ileave=3, 20 at Ileave=4, 25 at Ileave=5. The value 0
// is reserved to mean "degenerate window, skip" and is never emitted by
// Extractor.
type QGram uint32

// q is the window length in folded code points. Fixed at 5 throughout the
// suite; only Ileave varies.
const q = 5

// foldTable maps a byte to its folded code: 1..27 for a real alphabet code,
// a negative value for a separator (space, hyphen, underscore), 0 to ignore
// the byte entirely.
var foldTable [256]int8

func init() {
	for c := byte('A'); c <= 'Z'; c++ {
		foldTable[c] = int8(c-'A') + 1
		foldTable[c+('a'-'A')] = int8(c-'A') + 1
	}
	digitFold := map[byte]byte{
		'0': 'O', '1': 'I', '2': 'Z', '4': 'A',
		'5': 'S', '6': 'G', '7': 'T', '8': 'B', '9': 'Q',
	}
	for d, letter := range digitFold {
		foldTable[d] = foldTable[letter]
	}
	foldTable['3'] = 27
	for _, sep := range []byte{' ', '-', '_'} {
		foldTable[sep] = -1
	}
}

// Fold returns the folded code for b: >0 for a real code, <0 for a
// separator, 0 to ignore.
func Fold(b byte) int8 { return foldTable[b] }

// Width returns the hash width in bits for the given interleave parameter.
func Width(ileave uint) uint { return ileave * q }

// Decode renders a QGram back to its 5-character token, extracting 5-bit
// groups most-significant first and rendering each as code+'@' (so code 1
// decodes to 'A'). This is only meaningful for the Ileave=5, width-25
// encoding that qgstat uses; it is still well-defined (if lossy) for
// narrower widths, since the low bits of each group are preserved.
func Decode(g QGram) string {
	buf := make([]byte, q)
	x := uint32(g)
	for i := q - 1; i >= 0; i-- {
		buf[i] = byte(x&0x1f) + '@'
		x >>= 5
	}
	return string(buf)
}
