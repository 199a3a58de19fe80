package backend

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"

	"github.com/badu/charfilter"
)

// Single-shift bytes recognised when a library encoding's multibyte output
// is EUC-style: an initial SS2/SS3 marks a shift into a composite set's G2
// or G3 part (spec.md §4.3), the canonical case being EUC-JP where the G1
// part (JIS X 0208) lives alongside a G2 part (half-width katakana) reached
// through 0x8E.
const (
	ss2 = 0x8E
	ss3 = 0x8F
)

var (
	libraryOnce     sync.Once
	libraryRegistry map[string]encoding.Encoding
)

// initLibraryRegistry mirrors badu-term/encoding/encoding.go's Register():
// the same golang.org/x/text charmap/japanese/korean/simplifiedchinese/
// traditionalchinese tables, keyed by the canonical names luit's own
// charset.c table and locale database use rather than xterm's Go-idiomatic
// spellings.
func initLibraryRegistry() {
	libraryRegistry = map[string]encoding.Encoding{
		"iso8859-1":  charmap.ISO8859_1,
		"iso8859-2":  charmap.ISO8859_2,
		"iso8859-3":  charmap.ISO8859_3,
		"iso8859-4":  charmap.ISO8859_4,
		"iso8859-5":  charmap.ISO8859_5,
		"iso8859-6":  charmap.ISO8859_6,
		"iso8859-7":  charmap.ISO8859_7,
		"iso8859-8":  charmap.ISO8859_8,
		"iso8859-9":  charmap.ISO8859_9,
		"iso8859-10": charmap.ISO8859_10,
		"iso8859-13": charmap.ISO8859_13,
		"iso8859-14": charmap.ISO8859_14,
		"iso8859-15": charmap.ISO8859_15,
		"iso8859-16": charmap.ISO8859_16,
		"koi8-r":     charmap.KOI8R,
		"koi8-u":     charmap.KOI8U,
		"cp437":      charmap.CodePage437,
		"cp850":      charmap.CodePage850,
		"cp852":      charmap.CodePage852,
		"cp866":      charmap.CodePage866,
		"cp1250":     charmap.Windows1250,
		"cp1251":     charmap.Windows1251,
		"cp1252":     charmap.Windows1252,
		"cp1255":     charmap.Windows1255,

		"eucjp":     japanese.EUCJP,
		"shiftjis":  japanese.ShiftJIS,
		"iso2022jp": japanese.ISO2022JP,
		// EUC-JP, not ISO-2022-JP: the latter is a stateful, mode-switching
		// encoding, so running single runes through its Transform in
		// isolation intersperses escape-sequence bytes into what should be
		// a flat 2-byte table. EUC-JP encodes the same JIS X 0208 plane as
		// a stateless high-bit-set pair, which is what buildDoubleByte's
		// one-rune-at-a-time probing needs.
		"jisx0208": japanese.EUCJP,

		"euckr":   korean.EUCKR,
		"ksc5601": korean.EUCKR,

		"gb18030": simplifiedchinese.GB18030,
		"gb2312":  simplifiedchinese.HZGB2312,
		"gbk":     simplifiedchinese.GBK,

		"big5": traditionalchinese.Big5,
	}
}

// nameVariants produces the case and punctuation permutations the library
// backend probes before giving up on a name (spec.md §4.2/§4.3): upper,
// lower and original case, crossed with every `-` removed, every `-` turned
// into a space, or a `-` inserted before the first digit run that does not
// already follow one.
func nameVariants(name string) []string {
	cases := []string{name, strings.ToUpper(name), strings.ToLower(name)}
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, c := range cases {
		add(c)
		add(strings.ReplaceAll(c, "-", ""))
		add(strings.ReplaceAll(c, "-", " "))
		add(insertHyphenBeforeDigits(c))
	}
	return out
}

func insertHyphenBeforeDigits(s string) string {
	for i, r := range s {
		if i > 0 && unicode.IsDigit(r) && !unicode.IsDigit(rune(s[i-1])) && s[i-1] != '-' {
			return s[:i] + "-" + s[i:]
		}
	}
	return s
}

func lookupEncoding(name string) (encoding.Encoding, bool) {
	libraryOnce.Do(initLibraryRegistry)
	for _, v := range nameVariants(name) {
		if enc, ok := libraryRegistry[strings.ToLower(v)]; ok {
			return enc, true
		}
	}
	return nil, false
}

type libraryBackend struct {
	name    string
	kind    charfilter.Kind
	forward map[int]rune
	reverse map[rune]int
}

func (l *libraryBackend) Name() string          { return l.name }
func (l *libraryBackend) Kind() charfilter.Kind { return l.kind }

func (l *libraryBackend) Decode(code int) (rune, bool) {
	r, ok := l.forward[code]
	return r, ok
}

func (l *libraryBackend) Encode(r rune) (int, bool) {
	code, ok := l.reverse[r]
	return code, ok
}

// Library is the Loader backed by golang.org/x/text: for single-byte kinds
// it runs every candidate byte through the decoder directly; for double-byte
// kinds it enumerates UCS-4 and encodes forward, treating a 2-byte EUC-style
// result (high bits toggled into 0x20..0x7F) as the code position and an
// initial SS2/SS3 byte as a shift into a composite G2/G3 part (spec.md
// §4.3), which this backend surfaces as its own pseudo-charset named
// "<name>:G2"/"<name>:G3" rather than folding it into the primary table.
type Library struct{}

func (Library) Load(name string, kind charfilter.Kind) (Backend, error) {
	base, part := splitComposite(name)
	enc, ok := lookupEncoding(base)
	if !ok {
		return nil, fmt.Errorf("backend: no library encoding for %q", name)
	}

	switch kind {
	case charfilter.T94, charfilter.T96, charfilter.T128:
		return buildSingleByte(name, kind, enc, part)
	case charfilter.T9494, charfilter.T9696, charfilter.T94192:
		return buildDoubleByte(name, kind, enc, part)
	default:
		return nil, fmt.Errorf("backend: library cannot serve kind %v for %q", kind, name)
	}
}

// splitComposite recognises the "<name>:G2"/"<name>:G3" pseudo-names this
// backend emits for EUC composite parts.
func splitComposite(name string) (base string, part byte) {
	if i := strings.LastIndex(name, ":G"); i >= 0 && i == len(name)-3 {
		switch name[len(name)-1] {
		case '2':
			return name[:i], ss2
		case '3':
			return name[:i], ss3
		}
	}
	return name, 0
}

func byteRangeFor(kind charfilter.Kind) (lo, hi int) {
	switch kind {
	case charfilter.T94:
		return 0x21, 0x7E
	case charfilter.T96:
		return 0xA0, 0xFF
	case charfilter.T128:
		return 0x80, 0xFF
	}
	return 0, -1
}

// buildSingleByte probes every byte in kind's column range through enc's
// decoder and records the 0-based code position each one decodes to. When
// part is ss2/ss3 (the "<name>:G2"/"<name>:G3" composite pseudo-charsets,
// spec.md §4.3) for a composite part that is itself single-byte under the
// host encoding (EUC-JP's half-width katakana G2), the probe byte is
// prefixed with the single-shift byte and taken from the encoding's actual
// high-bit-set wire range (0xA1..0xFE) regardless of kind's own GL/GR
// shape, since EUC always transmits a shifted part with the high bit set.
func buildSingleByte(name string, kind charfilter.Kind, enc encoding.Encoding, part byte) (Backend, error) {
	dec := enc.NewDecoder()
	forward := make(map[int]rune)
	reverse := make(map[rune]int)
	dst := make([]byte, 8)

	record := func(probe []byte, code int) {
		n, _, err := dec.Transform(dst, probe, true)
		if err != nil || n == 0 {
			return
		}
		r, size := utf8.DecodeRune(dst[:n])
		if r == utf8.RuneError && size <= 1 {
			return
		}
		forward[code] = r
		if _, dup := reverse[r]; !dup {
			reverse[r] = code
		}
	}

	if part != 0 {
		for b := 0xA1; b <= 0xFE; b++ {
			record([]byte{part, byte(b)}, (b&0x7F)-0x21)
		}
	} else {
		lo, hi := byteRangeFor(kind)
		for b := lo; b <= hi; b++ {
			record([]byte{byte(b)}, b-lo)
		}
	}

	if len(forward) == 0 {
		return nil, fmt.Errorf("backend: library encoding for %q produced no mappings", name)
	}
	return &libraryBackend{name: name, kind: kind, forward: forward, reverse: reverse}, nil
}

// buildDoubleByte enumerates all of Unicode (skipping surrogate halves),
// encodes each rune with enc, and keeps results that decode as a genuine
// 2-byte sequence in the requested kind's code space -- or, when part is
// ss2/ss3, results whose encoded form starts with that single-shift byte,
// with the shift byte stripped before indexing.
func buildDoubleByte(name string, kind charfilter.Kind, enc encoding.Encoding, part byte) (Backend, error) {
	width := 94
	if kind == charfilter.T9696 {
		width = 96
	} else if kind == charfilter.T94192 {
		width = 192
	}
	base := byte(0x21)
	if kind == charfilter.T9696 {
		base = 0xA1
	}

	encoder := enc.NewEncoder()
	forward := make(map[int]rune)
	reverse := make(map[rune]int)
	src := make([]byte, utf8.UTFMax)
	dst := make([]byte, 8)

	for r := rune(0); r <= unicode.MaxRune; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		n := utf8.EncodeRune(src, r)
		nd, _, err := encoder.Transform(dst, src[:n], true)
		if err != nil || nd == 0 {
			continue
		}
		encoded := dst[:nd]

		if part != 0 {
			if len(encoded) < 3 || encoded[0] != part {
				continue
			}
			encoded = encoded[1:]
		} else if len(encoded) != 2 {
			continue
		}

		row := encoded[0] &^ 0x80
		var code int
		if kind == charfilter.T94192 {
			// Big5-style trail bytes: 0x40..0x7E are columns 0..62 and
			// 0xA1..0xFE columns 63..156, the layout doubleByteCode decodes.
			trail := encoded[1]
			switch {
			case row < base || row > 0x7E:
				continue
			case trail >= 0x40 && trail <= 0x7E:
				code = int(row-base)*width + int(trail-0x40)
			case trail >= 0xA1 && trail <= 0xFE:
				code = int(row-base)*width + int(trail-0xA1) + 63
			default:
				continue
			}
		} else {
			col := encoded[1] &^ 0x80
			if row < base || col < base {
				continue
			}
			code = int(row-base)*width + int(col-base)
		}
		forward[code] = r
		if _, dup := reverse[r]; !dup {
			reverse[r] = code
		}
	}
	if len(forward) == 0 {
		return nil, fmt.Errorf("backend: library encoding for %q produced no double-byte mappings", name)
	}
	return &libraryBackend{name: name, kind: kind, forward: forward, reverse: reverse}, nil
}
