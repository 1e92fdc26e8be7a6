package fold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldCaseInsensitive(t *testing.T) {
	for c := byte('A'); c <= 'Z'; c++ {
		assert.Equal(t, Fold(c), Fold(c+('a'-'A')), "byte %q", c)
	}
}

func TestFoldDigitsMatchVisuallySimilarLetters(t *testing.T) {
	cases := map[byte]byte{
		'0': 'O', '1': 'I', '2': 'Z', '4': 'A',
		'5': 'S', '6': 'G', '7': 'T', '8': 'B', '9': 'Q',
	}
	for digit, letter := range cases {
		assert.Equal(t, Fold(letter), Fold(digit), "digit %q vs letter %q", digit, letter)
	}
	assert.Equal(t, int8(27), Fold('3'))
}

func TestFoldSeparatorsAreNegative(t *testing.T) {
	for _, b := range []byte{' ', '-', '_'} {
		assert.Less(t, Fold(b), int8(0))
	}
}

func TestFoldIgnoredBytesAreZero(t *testing.T) {
	assert.Equal(t, int8(0), Fold('!'))
	assert.Equal(t, int8(0), Fold('\t'))
}

func TestExtractorSameTextDifferentCaseYieldsSameQGrams(t *testing.T) {
	lower := extractAll(t, "hello world", 5)
	upper := extractAll(t, "HELLO WORLD", 5)
	assert.Equal(t, lower, upper)
}

func TestExtractorCondensesSeparatorRuns(t *testing.T) {
	spaced := extractAll(t, "foo  bar", 5)
	hyphen := extractAll(t, "foo-bar", 5)
	under := extractAll(t, "foo_bar", 5)
	assert.Equal(t, spaced, hyphen)
	assert.Equal(t, spaced, under)
}

func TestExtractorShortLineYieldsNoQGrams(t *testing.T) {
	got := extractAll(t, "abc", 5)
	assert.Empty(t, got)
}

func TestExtractorNeverEmitsZero(t *testing.T) {
	for _, line := range []string{"aaaaa", "hello world", "-----", "a-b-c-d-e"} {
		for _, g := range extractAll(t, line, 5) {
			require.NotEqual(t, QGram(0), g, "line %q", line)
		}
	}
}

func extractAll(t *testing.T, line string, ileave uint) []QGram {
	t.Helper()
	ex := NewExtractor(ileave)
	ex.Reset([]byte(line))
	var out []QGram
	for {
		g, ok := ex.Next()
		if !ok {
			break
		}
		out = append(out, g)
	}
	return out
}
