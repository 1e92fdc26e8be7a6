package join

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hroptatyr/qgjoin/fold"
	"github.com/hroptatyr/qgjoin/posting"
	"github.com/hroptatyr/qgjoin/strpool"
)

// testIleave keeps the posting array small (2^15 slots) instead of the
// production DefaultIleave's 2^25, since tests only ever index a handful
// of short lines.
const testIleave = 3

func buildTestIndex(t *testing.T, lines ...string) *Index {
	t.Helper()
	raw := make([][]byte, len(lines))
	for i, l := range lines {
		raw[i] = []byte(l)
	}
	return BuildIndex(raw, posting.NewArray(fold.Width(testIleave)), testIleave)
}

func TestMatchFindsIdenticalLine(t *testing.T) {
	idx := buildTestIndex(t, "the quick brown fox jumps over the lazy dog")
	ws := NewWorkspace(idx)

	matches := ws.Match([]byte("the quick brown fox jumps over the lazy dog"))
	require.NotEmpty(t, matches)
	assert.Equal(t, strpool.FactorID(1), matches[0].Factor)
}

func TestMatchRejectsUnrelatedShortLine(t *testing.T) {
	idx := buildTestIndex(t, "the quick brown fox jumps over the lazy dog")
	ws := NewWorkspace(idx)

	matches := ws.Match([]byte("zzzzz"))
	assert.Empty(t, matches)
}

func TestMatchIsStableAcrossRepeatedCalls(t *testing.T) {
	idx := buildTestIndex(t, "alpha bravo charlie delta echo", "foxtrot golf hotel india juliet")
	ws := NewWorkspace(idx)

	first := ws.Match([]byte("alpha bravo charlie delta echo"))
	second := ws.Match([]byte("foxtrot golf hotel india juliet"))
	third := ws.Match([]byte("alpha bravo charlie delta echo"))

	require.NotEmpty(t, first)
	require.NotEmpty(t, third)
	assert.Equal(t, first, third)
	if len(second) > 0 {
		assert.NotEqual(t, first[0].Factor, second[0].Factor)
	}
}
