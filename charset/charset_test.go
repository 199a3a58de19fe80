package charset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/badu/charfilter"
	"github.com/badu/charfilter/backend"
	"gotest.tools/v3/assert"
)

func newTestRegistry() *Registry {
	chain := backend.NewChain(backend.DefaultPriority, nil)
	return New(chain)
}

func TestGetByNameResolvesBuiltinASCII(t *testing.T) {
	r := newTestRegistry()
	cs := r.GetByName("ASCII", charfilter.T94)
	assert.Assert(t, !cs.Unknown())

	code, ok := cs.Encode('A')
	assert.Assert(t, ok)
	got, ok := cs.Decode(code)
	assert.Assert(t, ok)
	assert.Equal(t, got, rune('A'))
}

func TestGetByNameCachesResult(t *testing.T) {
	r := newTestRegistry()
	a := r.GetByName("ASCII", charfilter.T94)
	b := r.GetByName("ASCII", charfilter.T94)
	assert.Equal(t, a, b)
}

func TestGetByNameUnknownFallsBackToSentinel(t *testing.T) {
	r := newTestRegistry()
	// No backend can ever resolve this, even with posix: the code space is
	// T9494 and the name matches nothing in any table.
	cs := r.GetByName("totally-bogus-charset-name", charfilter.T9494)
	assert.Assert(t, cs.Unknown())
}

func TestGetByNameFallsThroughToOtherCodecTier(t *testing.T) {
	r := newTestRegistry()
	cs := r.GetByName("SJIS", charfilter.T9494)
	assert.Assert(t, !cs.Unknown())
	assert.Equal(t, cs.Kind, charfilter.TOther)
	assert.Assert(t, cs.Other() != nil)
}

func TestGetByNameBig5NeverRoutesToOtherCodec(t *testing.T) {
	r := newTestRegistry()
	cs := r.GetByName("Big5", charfilter.T94192)
	assert.Assert(t, !cs.Unknown())
	assert.Assert(t, cs.Kind != charfilter.TOther)
	assert.Assert(t, cs.Other() == nil)
}

func TestGetByNameJohabExcludedFromOtherCodecTier(t *testing.T) {
	r := newTestRegistry()
	cs := r.GetByName("JOHAB", charfilter.T9494)
	assert.Assert(t, cs.Unknown())
}

func TestGetByDesignatorUnknownFinal(t *testing.T) {
	r := newTestRegistry()
	cs := r.GetByDesignator('Z', charfilter.T94)
	assert.Assert(t, cs.Unknown())
	assert.Equal(t, cs.Final, byte('Z'))
}

func TestCandidateNamesIncludesPrefixRewrite(t *testing.T) {
	names := candidateNames("ISO-8859-1")
	found := false
	for _, n := range names {
		if n == "ISO 8859-1" {
			found = true
		}
	}
	assert.Assert(t, found)
}

func TestSameNameIgnoresPunctuationAndCase(t *testing.T) {
	assert.Assert(t, sameName("ISO-8859-1", "iso88591"))
	assert.Assert(t, sameName("ISO_8859/1", "ISO 8859 1"))
}

func TestStripEuroSuffix(t *testing.T) {
	stripped, had := stripEuroSuffix("ISO-8859-15@euro")
	assert.Assert(t, had)
	assert.Equal(t, stripped, "ISO-8859-15")
}

func TestMatchLocaleCharsetEUCJP(t *testing.T) {
	st, ok := MatchLocaleCharset("eucJP")
	assert.Assert(t, ok)
	assert.Equal(t, st.GL, 0)
	assert.Equal(t, st.GR, 1)
	assert.Equal(t, st.G1, "JIS X 0208")
}

func TestResolveLocaleFromAliasFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locale.alias")
	assert.NilError(t, os.WriteFile(path, []byte("en_US: en_US.ISO8859-1\n"), 0o644))

	charset := ResolveLocale(path, "en_US")
	assert.Equal(t, charset, "ISO8859-1")
}

func TestResolveLocaleFallsBackToASCII(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_CTYPE", "")
	t.Setenv("LANG", "")
	charset := ResolveLocale("", "C")
	assert.Equal(t, charset, "US-ASCII")
}
