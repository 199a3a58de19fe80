package codec

import "golang.org/x/text/encoding/traditionalchinese"

// Big5HKSCS decodes the Big5-HKSCS double-byte encoding: lead 0xA1..0xFE,
// trail 0x40..0x7E or 0xA1..0xFE (spec.md §4.4), falling back to ASCII for
// single bytes below 0x80.
//
// golang.org/x/text only ships the base Big5 table (traditionalchinese.Big5),
// not the Hong Kong Supplementary Character Set extension; characters in the
// HKSCS-only region decode via the same byte-shape rules but fall through to
// "no mapping", same as any other code point the registry's backends cannot
// resolve (spec.md §7: unassigned-in-locale is not a fatal condition).
type Big5HKSCS struct {
	lead byte
	have bool
}

func (b *Big5HKSCS) Init() bool {
	b.have = false
	return true
}

func (b *Big5HKSCS) Name() string { return "BIG5-HKSCS" }

func (b *Big5HKSCS) Forward(code rune) rune { return code }

func isBig5Trail(b byte) bool {
	return (b >= 0x40 && b <= 0x7E) || (b >= 0xA1 && b <= 0xFE)
}

func (b *Big5HKSCS) PushByte(c byte) (rune, Status) {
	if !b.have {
		if c < 0x80 {
			return rune(c), Emit
		}
		if c >= 0xA1 && c <= 0xFE {
			b.lead = c
			b.have = true
			return 0, NeedMore
		}
		return 0, Invalid
	}

	lead := b.lead
	b.have = false

	if !isBig5Trail(c) {
		return 0, Invalid
	}

	r, ok := decodeVia(traditionalchinese.Big5, []byte{lead, c})
	if !ok {
		return 0, Invalid
	}
	return r, Emit
}

func (b *Big5HKSCS) Reverse(code rune) ([]byte, bool) {
	if code < 0x80 {
		return []byte{byte(code)}, true
	}
	return encodeVia(traditionalchinese.Big5, code)
}
