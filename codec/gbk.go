package codec

import "golang.org/x/text/encoding/simplifiedchinese"

// GBK decodes the two-byte GBK encoding: lead byte 0x81..0xFE combined with
// trail byte 0x40..0xFE excluding 0x7F (spec.md §4.4), falling back to plain
// ASCII for single bytes below 0x80.
type GBK struct {
	lead byte
	have bool
}

func (g *GBK) Init() bool {
	g.have = false
	return true
}

func (g *GBK) Name() string { return "GBK" }

func (g *GBK) Forward(code rune) rune { return code }

func (g *GBK) PushByte(b byte) (rune, Status) {
	if !g.have {
		if b < 0x80 {
			return rune(b), Emit
		}
		if b >= 0x81 && b <= 0xFE {
			g.lead = b
			g.have = true
			return 0, NeedMore
		}
		return 0, Invalid
	}

	lead := g.lead
	g.have = false

	if b == 0x7F || b < 0x40 || b > 0xFE {
		return 0, Invalid
	}

	r, ok := decodeVia(simplifiedchinese.GBK, []byte{lead, b})
	if !ok {
		return 0, Invalid
	}
	return r, Emit
}

func (g *GBK) Reverse(code rune) ([]byte, bool) {
	if code < 0x80 {
		return []byte{byte(code)}, true
	}
	return encodeVia(simplifiedchinese.GBK, code)
}
