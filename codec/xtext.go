package codec

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

// decodeVia runs raw (a complete native-encoding byte sequence) through enc's
// decoder and returns the single resulting rune. This is the shared glue
// between luit's byte-at-a-time "other" codec push-byte state machines and
// golang.org/x/text/encoding's buffer-oriented Transformer, used by GBK,
// SJIS, Big5-HKSCS and GB18030 below.
func decodeVia(enc encoding.Encoding, raw []byte) (rune, bool) {
	dst := make([]byte, 8)
	dec := enc.NewDecoder()
	n, _, err := dec.Transform(dst, raw, true)
	if err != nil || n == 0 {
		return 0, false
	}
	r, size := utf8.DecodeRune(dst[:n])
	if r == utf8.RuneError && size <= 1 {
		return 0, false
	}
	return r, true
}

// encodeVia runs a single rune through enc's encoder and returns the native
// byte sequence, or ok=false when the rune has no representation.
func encodeVia(enc encoding.Encoding, r rune) ([]byte, bool) {
	src := make([]byte, utf8.RuneLen(r))
	n := utf8.EncodeRune(src, r)

	dst := make([]byte, 8)
	encoder := enc.NewEncoder()
	nd, _, err := encoder.Transform(dst, src[:n], true)
	if err != nil || nd == 0 {
		return nil, false
	}
	// golang.org/x/text encoders fall back to the encoding's substitution
	// byte (commonly 0x1A or '?') rather than erroring for unmapped runes;
	// luit instead treats that as "no mapping" so the input-direction pump
	// can silently drop the code point per spec.md §4.1.
	if nd == 1 && (dst[0] == 0x1A || dst[0] == '?') && r != rune(dst[0]) {
		return nil, false
	}
	out := make([]byte, nd)
	copy(out, dst[:nd])
	return out, true
}
