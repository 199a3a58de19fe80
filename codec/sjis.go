package codec

import "golang.org/x/text/encoding/japanese"

// SJIS decodes Shift-JIS, split between JIS X 0201 (single-byte: ASCII plus
// half-width katakana 0xA1..0xDF) and JIS X 0208 (double-byte, lead ranges
// 0x81..0x9F and 0xE0..0xFC), per spec.md §4.4. The two sub-mappings are
// owned independently in luit's C implementation (aux_sjis.x0208mapping vs
// x0201mapping); golang.org/x/text/encoding/japanese.ShiftJIS already
// multiplexes both inside one Decoder, so this codec just needs to know how
// many bytes to buffer before handing a complete sequence to it.
type SJIS struct {
	lead byte
	have bool
}

func (s *SJIS) Init() bool {
	s.have = false
	return true
}

func (s *SJIS) Name() string { return "SJIS" }

func (s *SJIS) Forward(code rune) rune { return code }

func isSJISLead(b byte) bool {
	return (b >= 0x81 && b <= 0x9F) || (b >= 0xE0 && b <= 0xFC)
}

func (s *SJIS) PushByte(b byte) (rune, Status) {
	if !s.have {
		if isSJISLead(b) {
			s.lead = b
			s.have = true
			return 0, NeedMore
		}
		// Single-byte: ASCII range or JIS X 0201 half-width katakana.
		r, ok := decodeVia(japanese.ShiftJIS, []byte{b})
		if !ok {
			return 0, Invalid
		}
		return r, Emit
	}

	lead := s.lead
	s.have = false

	r, ok := decodeVia(japanese.ShiftJIS, []byte{lead, b})
	if !ok {
		return 0, Invalid
	}
	return r, Emit
}

func (s *SJIS) Reverse(code rune) ([]byte, bool) {
	return encodeVia(japanese.ShiftJIS, code)
}
