// Package codec implements the "other" (non-ISO-2022) multibyte encodings:
// UTF-8, GBK, SJIS, Big5-HKSCS and GB18030 (spec.md §4.4). Each codec owns a
// small per-session parser state for incomplete multibyte sequences, fed one
// byte at a time by the ISO 2022 pump when a direction's state has an
// "other" codec installed instead of G0..G3 designations.
//
// Table data for GBK, SJIS and Big5-HKSCS/GB18030 is sourced from
// golang.org/x/text/encoding's simplifiedchinese/traditionalchinese/japanese
// packages rather than hand-rolled tables, continuing the teacher's own
// choice (badu-term/encoding/encoding.go) to lean on golang.org/x/text for
// East Asian encodings instead of carrying megabytes of static tables.
package codec

// Status is the result of pushing one byte into a Codec's decoder.
type Status int

const (
	// NeedMore means the byte was consumed but no character is complete
	// yet; call PushByte again with the next byte.
	NeedMore Status = iota
	// Emit means a character completed; Codec.PushByte's rune return is
	// the decoded UCS-4 value.
	Emit
	// Invalid means the byte sequence so far cannot be completed into a
	// valid character; the codec has reset its internal state and the
	// byte(s) consumed since the last Emit/fresh start should be dropped
	// (spec.md §7: malformed input is silently dropped, never fatal).
	Invalid
)

// Codec is the uniform interface every "other" encoding implements:
// {init, decode-step, reverse, push-byte} from spec.md §4.4.
type Codec interface {
	// Init allocates any forward/reverse mappings and zeroes the parser
	// state. Returns false if the codec's backing tables could not be
	// loaded (mirrors luit's OtherCharsetRec.init returning 0 on failure).
	Init() bool

	// PushByte advances the decoder with one byte from the child. When it
	// returns Emit, r is the decoded UCS-4 code point.
	PushByte(b byte) (r rune, status Status)

	// Forward is an identity-shaped hook kept for symmetry with ISO 2022
	// charsets' recode function; "other" codecs decode straight to UCS-4
	// in PushByte, so Forward just returns its argument unchanged.
	Forward(code rune) rune

	// Reverse encodes a UCS-4 code point back into this codec's native
	// byte sequence, for the input (user -> child) direction. ok is false
	// when the code point has no representation in this encoding.
	Reverse(u rune) (encoded []byte, ok bool)

	// Name is the canonical name used in the "other" charset registry and
	// in locale-charset table entries (UTF-8, GBK, SJIS, BIG5-HKSCS,
	// GB18030).
	Name() string
}

// New constructs a fresh, initialized Codec for the given canonical name,
// or (nil, false) if name does not match one of the five "other" encodings.
func New(name string) (Codec, bool) {
	var c Codec
	switch name {
	case "UTF-8":
		c = &UTF8{}
	case "GBK":
		c = &GBK{}
	case "SJIS":
		c = &SJIS{}
	case "BIG5-HKSCS":
		c = &Big5HKSCS{}
	case "GB18030":
		c = &GB18030{}
	default:
		return nil, false
	}
	if !c.Init() {
		return nil, false
	}
	return c, true
}

// Names lists the canonical "other" codec names, in the order luit's own
// otherCharsets table declares them (charset.c).
func Names() []string {
	return []string{"GBK", "UTF-8", "SJIS", "BIG5-HKSCS", "GB18030"}
}
