package codec

import "unicode/utf8"

// UTF8 is the "other" codec for the UTF-8 locale case (spec.md §4.4): at
// that point the filter degrades to straight pass-through at the byte
// level, but it is still modeled as an "other" codec so the pump's
// push-byte contract is uniform across all five non-ISO-2022 encodings.
type UTF8 struct {
	buf [utf8.UTFMax]byte
	n   int
}

func (u *UTF8) Init() bool {
	u.n = 0
	return true
}

func (u *UTF8) Name() string { return "UTF-8" }

func (u *UTF8) Forward(code rune) rune { return code }

// PushByte accumulates bytes until utf8.DecodeRune reports a complete,
// valid rune. Overlong sequences and lone surrogate halves are rejected by
// unicode/utf8 itself (DecodeRune returns RuneError with size 1 for those),
// matching spec.md §4.1's "dropped on the input side" rule generalized to
// decoding.
func (u *UTF8) PushByte(b byte) (rune, Status) {
	if u.n >= len(u.buf) {
		// Should not happen: a valid lead byte caps continuation length
		// at utf8.UTFMax-1, but guard against runaway continuation bytes.
		u.n = 0
		return 0, Invalid
	}
	u.buf[u.n] = b
	u.n++

	if !utf8.FullRune(u.buf[:u.n]) {
		return 0, NeedMore
	}

	r, size := utf8.DecodeRune(u.buf[:u.n])
	u.n = 0
	if r == utf8.RuneError && size <= 1 {
		return 0, Invalid
	}
	return r, Emit
}

func (u *UTF8) Reverse(code rune) ([]byte, bool) {
	if code < 0 || code > utf8.MaxRune || (code >= 0xD800 && code <= 0xDFFF) {
		return nil, false
	}
	buf := make([]byte, utf8.RuneLen(code))
	n := utf8.EncodeRune(buf, code)
	return buf[:n], true
}
