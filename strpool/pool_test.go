package strpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternAssignsDenseIDsStartingAtOne(t *testing.T) {
	p := New()

	id1 := p.Intern([]byte("alpha"))
	id2 := p.Intern([]byte("beta"))
	id3 := p.Intern([]byte("gamma"))

	assert.Equal(t, FactorID(1), id1)
	assert.Equal(t, FactorID(2), id2)
	assert.Equal(t, FactorID(3), id3)
	assert.Equal(t, 3, p.Len())
}

func TestLookupReturnsInternedBytes(t *testing.T) {
	p := New()
	id := p.Intern([]byte("hello world"))

	require.Equal(t, "hello world", string(p.Lookup(id)))
}

func TestLookupDistinguishesAdjacentFactors(t *testing.T) {
	p := New()
	a := p.Intern([]byte("foo"))
	b := p.Intern([]byte("barbaz"))
	c := p.Intern([]byte(""))

	assert.Equal(t, "foo", string(p.Lookup(a)))
	assert.Equal(t, "barbaz", string(p.Lookup(b)))
	assert.Equal(t, "", string(p.Lookup(c)))
}

func TestOffsetsStartAtZeroAndNeverShrink(t *testing.T) {
	p := New()
	require.Equal(t, uint32(0), p.offsets[0])

	for i := 0; i < 600; i++ {
		p.Intern([]byte{byte(i)})
	}
	require.Equal(t, uint32(0), p.offsets[0])
	assert.Equal(t, 600, p.Len())

	prev := p.offsets[0]
	for _, off := range p.offsets[1:] {
		assert.GreaterOrEqual(t, off, prev)
		prev = off
	}
}
