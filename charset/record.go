// Package charset implements the name/final-byte → Charset registry
// (spec.md §4.2): an append-only cache in front of the code-mapping
// backends, an alias-normalising name resolver, and the locale → charset
// name database used by package iso2022's escape sequence handling and the
// locale resolver.
package charset

import (
	"github.com/badu/charfilter"
	"github.com/badu/charfilter/backend"
	"github.com/badu/charfilter/codec"
)

// Charset is a resolved, cacheable character set: a name, its shape, and
// either the backend instance that performs code <-> rune translation or,
// for a name that only resolves through the "other" codec registry tier
// (spec.md §4.2), the streaming codec instead. Its fields do not change
// after construction, with one exception: GetByDesignator sets Final on a
// cached record whose Final is still 0. Two designation sequences that
// resolve to the same name share one Charset.
type Charset struct {
	Name  string
	Final byte // ISO 2022 final byte, 0 for "other"-kind entries
	Kind  charfilter.Kind
	back  backend.Backend
	other codec.Codec
}

// Decode translates a code position to UCS-4 via the underlying backend. An
// unknown-sentinel Charset (back == nil) always fails, which is how the
// registry represents "no mapping ever available" without a nil Charset. A
// Charset resolved through the other-codec tier (Kind == TOther) has no
// code-position backend either -- codec.Codec is driven byte-at-a-time via
// PushByte/Forward, not Decode(code) -- so this also fails for it; callers
// that need an "other" codec's translation go through Other() instead.
func (c *Charset) Decode(code int) (rune, bool) {
	if c.back == nil {
		return 0, false
	}
	return c.back.Decode(code)
}

// Encode translates a UCS-4 code point to a code position.
func (c *Charset) Encode(r rune) (int, bool) {
	if c.back == nil {
		return 0, false
	}
	return c.back.Encode(r)
}

// Other returns the non-ISO-2022 codec this Charset resolved to through the
// other-codec fallback tier, or nil for a backend-backed or sentinel
// Charset.
func (c *Charset) Other() codec.Codec {
	return c.other
}

// Unknown reports whether this is one of the four "could not resolve"
// sentinels rather than a genuine backend- or other-codec-backed charset.
func (c *Charset) Unknown() bool {
	return c.back == nil && c.other == nil
}

// unknownSentinel builds a "no mapping available" placeholder in one of
// four named shapes (charset.c's Unknown94Charset/Unknown96Charset/
// Unknown9494Charset/Unknown9696Charset): identity-shaped in name only, with
// no backing backend, so Decode/Encode always fail but callers never
// receive a nil *Charset (spec.md §4.2: "Never returns null"). Each call
// allocates a new record; the placeholders are not shared.
func unknownSentinel(kind charfilter.Kind) *Charset {
	name := "unknown"
	switch kind {
	case charfilter.T94:
		name = "unknown-94"
	case charfilter.T96:
		name = "unknown-96"
	case charfilter.T9494:
		name = "unknown-9494"
	case charfilter.T9696:
		name = "unknown-9696"
	}
	return &Charset{Name: name, Kind: kind}
}
