package backend_test

import (
	"testing"

	"github.com/badu/charfilter"
	"github.com/badu/charfilter/backend"
	"gotest.tools/v3/assert"
)

func TestBuiltinASCIIRoundTrip(t *testing.T) {
	b, err := (backend.Builtin{}).Load("ASCII", charfilter.T94)
	assert.NilError(t, err)

	for code := 0; code < 94; code++ {
		r, ok := b.Decode(code)
		assert.Assert(t, ok)

		got, ok := b.Encode(r)
		assert.Assert(t, ok)
		assert.Equal(t, got, code)
	}
}

func TestBuiltinISO88599Override(t *testing.T) {
	b, err := (backend.Builtin{}).Load("ISO8859-9", charfilter.T96)
	assert.NilError(t, err)

	r, ok := b.Decode(0xD0 - 0xA0)
	assert.Assert(t, ok)
	assert.Equal(t, r, rune('Ğ'))
}

func TestPosixIdentityWithinASCII(t *testing.T) {
	b, err := (backend.Posix{}).Load("whatever", charfilter.T94)
	assert.NilError(t, err)

	r, ok := b.Decode(0)
	assert.Assert(t, ok)
	assert.Equal(t, r, rune(0x21))

	_, ok = b.Decode(93) // 0x21+93 = 0x7E, still ASCII
	assert.Assert(t, ok)
}

func TestParsePriorityFillsMissingDefaults(t *testing.T) {
	order, err := backend.ParsePriority([]string{"posix"})
	assert.NilError(t, err)
	assert.Equal(t, order[0], backend.Posix)
	assert.Equal(t, len(order), 4)
}

func TestParsePriorityRejectsDuplicates(t *testing.T) {
	_, err := backend.ParsePriority([]string{"posix", "posix"})
	assert.ErrorContains(t, err, "duplicate")
}

func TestParsePriorityRejectsUnknownToken(t *testing.T) {
	_, err := backend.ParsePriority([]string{"nope"})
	assert.ErrorContains(t, err, "unknown")
}

func TestChainFallsBackToPosix(t *testing.T) {
	chain := backend.NewChain([]backend.Name{backend.Posix}, nil)
	b, err := chain.Load("anything", charfilter.T94)
	assert.NilError(t, err)
	_, ok := b.Decode(0)
	assert.Assert(t, ok)
}

func TestLibraryISO88591RoundTrip(t *testing.T) {
	b, err := (backend.Library{}).Load("ISO8859-1", charfilter.T96)
	assert.NilError(t, err)

	code, ok := b.Encode(0xE9) // é
	assert.Assert(t, ok)
	r, ok := b.Decode(code)
	assert.Assert(t, ok)
	assert.Equal(t, r, rune(0xE9))
}
