// Package iso2022 implements the bidirectional ISO 2022 / ECMA-35 byte pump
// (spec.md §4.1): the stateful interpreter that consumes escape sequences,
// maintains four designated character sets plus GL/GR cursors, applies
// single- and locking-shifts, and translates between the child's legacy
// encoding and UTF-8.
//
// There is no single original-source file this package is grounded on --
// the reference implementation's iso2022.c was not part of the retrieval
// pack -- so its design follows this specification's own state/operation
// breakdown directly, in the same per-direction-state, byte-buffer-in/
// byte-buffer-out shape the rest of this module's packages use.
package iso2022

import (
	"github.com/badu/charfilter"
	"github.com/badu/charfilter/charset"
	"github.com/badu/charfilter/codec"
)

// Flags holds the per-direction interpretation toggles from spec.md §4.1
// and §6. Output-direction fields disable pieces of ISO 2022 interpretation
// on decode; input-direction fields control how the encoder expresses a
// non-GL/GR code point.
type Flags struct {
	// Output-direction (+oss/+ols/+osl/+ot).
	DisableSingleShift  bool
	DisableLockingShift bool
	DisableSelect       bool
	PassThrough         bool

	// Input-direction (-k7/-kls/+kss/+kssgr).
	SevenBit          bool
	GenerateLockShift bool
	GenerateSingle    bool
	GRAfterSingle     bool
}

// State is the per-direction ISO 2022 state: four designated slots, the
// GL/GR cursors, a one-shot single-shift override, an optional "other"
// codec in place of G0..G3, and the escape-sequence assembly buffer (spec.md
// §3 "ISO 2022 state").
type State struct {
	Registry *charset.Registry

	G      [4]*charset.Charset
	GL, GR int

	// SingleShift names the slot (2 or 3) that overrides GL/GR for the
	// next decodable character only, or -1 when none is pending.
	SingleShift int

	Flags Flags

	// Other is non-nil when this direction is driven by a non-ISO-2022
	// codec instead of G0..G3; State.Other and ISO 2022 designation
	// handling are mutually exclusive for a direction (spec.md §3).
	Other codec.Codec

	escape []byte
}

// NewState builds a State with GL/GR defaulted to G0/G2, the "C" locale's
// cursor pair (charset/locale.go's localeCharsets table). G0..G3 start
// empty; ApplyLocale or a designation escape installs the charsets.
func NewState(registry *charset.Registry) *State {
	return &State{
		Registry:    registry,
		GL:          0,
		GR:          2,
		SingleShift: -1,
	}
}

// ApplyLocale installs a resolved charset.LocaleState's GL/GR cursors and
// G0..G3 designations (or Other codec) into s.
func (s *State) ApplyLocale(st charset.LocaleState) {
	s.GL = st.GL
	s.GR = st.GR
	names := [4]string{st.G0, st.G1, st.G2, st.G3}
	for i, name := range names {
		if name == "" {
			continue
		}
		s.G[i] = s.Registry.GetByName(name, kindFor(name, i))
	}
	if st.Other != "" {
		if c, ok := codec.New(st.Other); ok {
			s.Other = c
		}
	}
}

// kindFor resolves the kind a slot name should load as: charset.ShapeOf's
// name-derived answer when the name is one of localeCharsets' known
// designations, since eucJP/eucKR/eucCN/GB2312/eucTW/Big5 all put a
// genuinely double-byte set -- JIS X 0208, KSC 5601, GB 2312,
// CNS11643-1/2/3, Big 5 -- into G1 or beyond, not just G0. kindForSlot's
// slot-position guess is only a fallback for names ShapeOf doesn't
// recognise; guessing from slot position alone would ask
// backend.Loader.Load for the wrong shape for those names and either fail
// outright or build a single-byte table out of a double-byte encoding.
func kindFor(name string, slot int) charfilter.Kind {
	if k, ok := charset.ShapeOf(name); ok {
		return k
	}
	return kindForSlot(slot)
}

// kindForSlot guesses the charset kind a slot name should resolve to absent
// any better information: G0 is conventionally 94-code, the others
// 96-code. kindFor prefers charset.ShapeOf's answer over this guess
// whenever the name is recognised.
func kindForSlot(slot int) charfilter.Kind {
	if slot == 0 {
		return charfilter.T94
	}
	return charfilter.T96
}

// SetDesignation resolves name against s.Registry using its known shape (or
// the conventional kind for slot, absent one) and installs it into
// G[slot], for CLI-level -g0..-g3/-kg0..-kg3 overrides (spec.md §6) applied
// on top of a locale's defaults.
func (s *State) SetDesignation(slot int, name string) {
	if name == "" {
		return
	}
	s.G[slot] = s.Registry.GetByName(name, kindFor(name, slot))
}

// SetCursors overrides the active GL/GR slots, for the -gl/-gr/-kgl/-kgr
// CLI flags.
func (s *State) SetCursors(gl, gr int) {
	s.GL = gl
	s.GR = gr
}

// activeSlot returns the G-slot index that decodes the next byte, honouring
// any pending single-shift before falling back to GL/GR based on which side
// of the 0x80 boundary b falls.
func (s *State) activeSlot(b byte) int {
	if s.SingleShift >= 0 {
		slot := s.SingleShift
		s.SingleShift = -1
		return slot
	}
	if b&0x80 != 0 {
		return s.GR
	}
	return s.GL
}

// Reset clears the escape-assembly buffer and any pending single-shift,
// used when the pump is about to install a completely new locale state
// (e.g. on renegotiation) rather than continue decoding under the old one.
func (s *State) Reset() {
	s.escape = s.escape[:0]
	s.SingleShift = -1
}
