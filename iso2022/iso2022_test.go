package iso2022

import (
	"testing"

	"github.com/badu/charfilter"
	"github.com/badu/charfilter/backend"
	"github.com/badu/charfilter/charset"
	"gotest.tools/v3/assert"
)

func newTestRegistry() *charset.Registry {
	return charset.New(backend.NewChain(backend.DefaultPriority, nil))
}

// Scenario 1: locale C, output pump, ASCII bytes pass straight through.
func TestScenarioASCIIPassThrough(t *testing.T) {
	st, ok := charset.MatchLocaleCharset("C")
	assert.Assert(t, ok)
	s := NewState(newTestRegistry())
	s.ApplyLocale(st)

	out := NewOutput(s).Decode(nil, []byte{0x41, 0x42, 0x43})
	assert.DeepEqual(t, out, []byte("ABC"))
}

// Scenario 2: locale ISO8859-1, output pump, 0xE9 (Latin-1 é) -> UTF-8 C3 A9.
func TestScenarioISO8859OutputDecode(t *testing.T) {
	st, ok := charset.MatchLocaleCharset("ISO8859-1")
	assert.Assert(t, ok)
	s := NewState(newTestRegistry())
	s.ApplyLocale(st)

	out := NewOutput(s).Decode(nil, []byte{0xE9})
	assert.DeepEqual(t, out, []byte{0xC3, 0xA9})
}

// Scenario 3: locale ISO8859-1, input pump, UTF-8 C3 A9 -> 0xE9 to the child.
func TestScenarioISO8859InputEncode(t *testing.T) {
	st, ok := charset.MatchLocaleCharset("ISO8859-1")
	assert.Assert(t, ok)
	s := NewState(newTestRegistry())
	s.ApplyLocale(st)

	out := NewInput(s).Encode(nil, []byte{0xC3, 0xA9})
	assert.DeepEqual(t, out, []byte{0xE9})
}

// Scenario 4: output pump with no locale applied, designate JIS X 0208 into
// G0 with the short escape form then decode the GL pair 0x24 0x22
// (hiragana あ).
func TestScenarioEUCJPShortFormDesignation(t *testing.T) {
	s := NewState(newTestRegistry())
	out := NewOutput(s).Decode(nil, []byte{0x1B, 0x24, 0x42, 0x24, 0x22})
	assert.DeepEqual(t, out, []byte{0xE3, 0x81, 0x82})
}

// Scenario 5: locale UTF-8, both pumps are identity at the byte level.
func TestScenarioUTF8Identity(t *testing.T) {
	st, ok := charset.MatchLocaleCharset("UTF-8")
	assert.Assert(t, ok)

	in := []byte("hello, \xe3\x81\x82 world")

	outState := NewState(newTestRegistry())
	outState.ApplyLocale(st)
	assert.DeepEqual(t, NewOutput(outState).Decode(nil, in), in)

	inState := NewState(newTestRegistry())
	inState.ApplyLocale(st)
	assert.DeepEqual(t, NewInput(inState).Encode(nil, in), in)
}

// Scenario 6: locale eucJP with single-shifts enabled, input pump given
// U+FF71 (half-width katakana), expects SS2 + the EUC-style high-bit byte
// (8E B1), not a locking shift, since single-shifts win for one character.
func TestScenarioEUCJPSingleShiftEncode(t *testing.T) {
	r := newTestRegistry()
	g2 := r.GetByName("JISX0208:G2", charfilter.T94)
	assert.Assert(t, !g2.Unknown())

	s := NewState(r)
	s.G[2] = g2
	s.GL, s.GR = 0, 1
	s.Flags.GenerateSingle = true
	s.Flags.GRAfterSingle = true

	out := NewInput(s).Encode(nil, []byte("ｱ"))
	assert.DeepEqual(t, out, []byte{0x8E, 0xB1})
}

// Designation idempotence: applying the same designation sequence twice
// leaves state identical to applying it once.
func TestDesignationIdempotence(t *testing.T) {
	s := NewState(newTestRegistry())
	seq := []byte{0x1B, 0x28, 0x42} // ESC ( B: ASCII into G0
	NewOutput(s).Decode(nil, seq)
	first := s.G[0]

	NewOutput(s).Decode(nil, seq)
	second := s.G[0]

	assert.Equal(t, first, second)
}

// Single-shift locality: after one character following SS2, the next byte
// uses the persistent GL/GR cursor, not the single-shift slot again.
func TestSingleShiftLocality(t *testing.T) {
	r := newTestRegistry()
	ascii := r.GetByName("ASCII", charfilter.T94)
	latin1 := r.GetByName("ISO8859-1", charfilter.T96)
	assert.Assert(t, !latin1.Unknown())

	s := NewState(r)
	s.G[0] = ascii
	s.G[2] = latin1
	s.GL, s.GR = 0, 0

	// SS2 (0x8E), then 0xE9 (decoded via G2/Latin-1 under the single shift),
	// then 0x41 (decoded via GL/ASCII since the shift only covered one byte).
	out := NewOutput(s).Decode(nil, []byte{0x8E, 0xE9, 0x41})
	assert.DeepEqual(t, out, append([]byte{0xC3, 0xA9}, 'A'))
}

// Single-shift locality, double-byte: a single-shifted double-byte
// character must decode its trailing byte against the single-shifted slot
// too, not fall back to GL/GR after the lead byte consumes the shift.
func TestSingleShiftLocalityDoubleByte(t *testing.T) {
	r := newTestRegistry()
	ascii := r.GetByName("ASCII", charfilter.T94)
	jisx0208 := r.GetByName("JISX0208", charfilter.T9494)
	assert.Assert(t, !jisx0208.Unknown())
	assert.Assert(t, jisx0208.Kind.DoubleByte())

	s := NewState(r)
	s.G[0] = ascii
	s.G[3] = jisx0208
	s.GL, s.GR = 0, 0

	// SS3 (0x8F), then the GL-range pair 0x24 0x22 (hiragana あ, same pair
	// TestScenarioEUCJPShortFormDesignation decodes via a G0 designation)
	// decoded whole via G3 under the single shift, then 0x41 decoded via
	// the persistent GL/ASCII cursor since the shift only covered one
	// character.
	out := NewOutput(s).Decode(nil, []byte{0x8F, 0x24, 0x22, 0x41})
	assert.DeepEqual(t, out, append([]byte{0xE3, 0x81, 0x82}, 'A'))
}

// Pass-through degradation: a byte stream with no escape sequences and no
// designated GL charset passes through unchanged.
func TestPassThroughDegradation(t *testing.T) {
	s := NewState(newTestRegistry())
	s.G[0] = nil
	in := []byte("plain ascii, no shifts 123")

	out := NewOutput(s).Decode(nil, in)
	assert.DeepEqual(t, out, in)
}

// Buffer independence: splitting input into two chunks at an arbitrary
// point and concatenating the two pump invocations equals pumping the
// whole input at once -- exercised across an escape sequence split midway
// and a double-byte character split between its two bytes.
func TestBufferIndependence(t *testing.T) {
	whole := []byte{0x1B, 0x24, 0x42, 0x24, 0x22, 0x24, 0x24}

	full := NewOutput(NewState(newTestRegistry())).Decode(nil, whole)

	for cut := 0; cut <= len(whole); cut++ {
		o := NewOutput(NewState(newTestRegistry()))
		got := o.Decode(nil, whole[:cut])
		got = o.Decode(got, whole[cut:])
		assert.DeepEqual(t, got, full)
	}
}
