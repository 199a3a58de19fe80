// Package charfilter holds the handful of types shared by every package in
// this module: the charset kind taxonomy, the terminal size type used by the
// resize plumbing, and the module-wide sentinel errors.
package charfilter

// Kind classifies the shape of a character set, per the ISO 2022 /
// ECMA-35 taxonomy plus the "other" (non-ISO-2022) and "failed" tombstone
// cases used by the charset registry cache.
type Kind int

const (
	// Failed marks a cache entry that was attempted and could not be
	// loaded; lookups skip it but keep it around to short-circuit retries.
	Failed Kind = iota
	// T94 is a 94-codepoint set (GL 0x21..0x7E).
	T94
	// T96 is a 96-codepoint set (GR 0xA0..0xFF).
	T96
	// T128 is a full 128-codepoint set with no ISO 2022 final byte.
	T128
	// T9494 is a 94x94 two-byte set (e.g. JIS X 0208).
	T9494
	// T9696 is a 96x96 two-byte set.
	T9696
	// T94192 is a 94x192 set (Big5's shape).
	T94192
	// TOther marks a non-ISO-2022 multibyte encoding (UTF-8, GBK, SJIS,
	// BIG5-HKSCS, GB18030) driven by the codec package instead of G0..G3.
	TOther
)

// String renders the kind the way the original reporting commands do
// ("94 codes", "96x96 codes", ...).
func (k Kind) String() string {
	switch k {
	case T94:
		return "94 codes"
	case T96:
		return "96 codes"
	case T128:
		return "128 codes"
	case T9494:
		return "94x94 codes"
	case T9696:
		return "96x96 codes"
	case T94192:
		return "94x192 codes"
	case TOther:
		return "other"
	default:
		return "failed"
	}
}

// Regular reports whether the kind passes control characters unchanged, at
// least in the first byte. Every kind except T128 is regular.
func (k Kind) Regular() bool {
	return k != T128
}

// DoubleByte reports whether a character in this kind spans two bytes on
// the wire (row*width+col code addressing, width 94, 96 or 192) rather
// than one.
func (k Kind) DoubleByte() bool {
	switch k {
	case T9494, T9696, T94192:
		return true
	default:
		return false
	}
}
