package codec

import "golang.org/x/text/encoding/simplifiedchinese"

// GB18030 decodes the GB18030 encoding: a two-byte form shaped like GBK, and
// a four-byte form (lead1 0x81..0xFE, lead2 0x30..0x39, lead3 0x81..0xFE,
// lead4 0x30..0x39) whose linear index addresses the Unicode supplementary
// planes, per spec.md §4.4. golang.org/x/text/encoding/simplifiedchinese.GB18030
// implements the full linearization; this codec only needs to buffer the
// right number of bytes before handing a complete sequence to it.
type GB18030 struct {
	buf [4]byte
	n   int
}

func (g *GB18030) Init() bool {
	g.n = 0
	return true
}

func (g *GB18030) Name() string { return "GB18030" }

func (g *GB18030) Forward(code rune) rune { return code }

func (g *GB18030) PushByte(b byte) (rune, Status) {
	switch g.n {
	case 0:
		if b < 0x80 {
			return rune(b), Emit
		}
		if b >= 0x81 && b <= 0xFE {
			g.buf[0] = b
			g.n = 1
			return 0, NeedMore
		}
		return 0, Invalid
	case 1:
		g.buf[1] = b
		switch {
		case b >= 0x30 && b <= 0x39:
			// Four-byte form: need two more bytes.
			g.n = 2
			return 0, NeedMore
		case b == 0x7F || b < 0x40:
			g.n = 0
			return 0, Invalid
		case b <= 0xFE:
			// Two-byte form, GBK-shaped.
			g.n = 0
			r, ok := decodeVia(simplifiedchinese.GB18030, g.buf[:2])
			if !ok {
				return 0, Invalid
			}
			return r, Emit
		default:
			g.n = 0
			return 0, Invalid
		}
	case 2:
		if b < 0x81 || b > 0xFE {
			g.n = 0
			return 0, Invalid
		}
		g.buf[2] = b
		g.n = 3
		return 0, NeedMore
	default: // g.n == 3
		g.n = 0
		if b < 0x30 || b > 0x39 {
			return 0, Invalid
		}
		g.buf[3] = b
		r, ok := decodeVia(simplifiedchinese.GB18030, g.buf[:4])
		if !ok {
			return 0, Invalid
		}
		return r, Emit
	}
}

func (g *GB18030) Reverse(code rune) ([]byte, bool) {
	if code < 0x80 {
		return []byte{byte(code)}, true
	}
	return encodeVia(simplifiedchinese.GB18030, code)
}
