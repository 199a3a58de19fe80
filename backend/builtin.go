package backend

import (
	"fmt"
	"strings"

	"github.com/badu/charfilter"
)

// builtinEntry is one static {encoding-name, [(source, target)*], length}
// record (spec.md §4.3). Most single-byte sets the builtin backend knows
// about are identity maps from their code position onto a Unicode block
// starting at base, so only the exceptions need explicit pairs.
type builtinEntry struct {
	name      string
	kind      charfilter.Kind
	length    int
	base      rune
	overrides map[int]rune
}

// builtinTable is the minimum set of charsets luit can always resolve with
// no external data: plain ASCII and ISO 8859-1, the two sets every other
// fontenc/.enc/library lookup ultimately degrades to, plus ISO 8859-9 as
// Latin-1 with the Turkish overrides (charset.c's
// Unknown94Charset/Unknown96Charset sentinels serve the same "never return
// null" role one level further down, in package charset).
var builtinTable = []builtinEntry{
	{
		name:   "ASCII",
		kind:   charfilter.T94,
		length: 94,
		base:   0x21,
	},
	{
		name:   "ISO8859-1",
		kind:   charfilter.T96,
		length: 96,
		base:   0xA0,
	},
	{
		// Turkish ISO 8859-9 differs from Latin-1 in six positions
		// (badu-term/encoding/encoding.go carries the same override set).
		name:   "ISO8859-9",
		kind:   charfilter.T96,
		length: 96,
		base:   0xA0,
		overrides: map[int]rune{
			0xD0 - 0xA0: 'Ğ',
			0xDD - 0xA0: 'İ',
			0xDE - 0xA0: 'Ş',
			0xF0 - 0xA0: 'ğ',
			0xFD - 0xA0: 'ı',
			0xFE - 0xA0: 'ş',
		},
	},
}

type builtinBackend struct {
	entry   builtinEntry
	reverse map[rune]int
}

func newBuiltinBackend(e builtinEntry) *builtinBackend {
	reverse := make(map[rune]int, e.length)
	for code := 0; code < e.length; code++ {
		reverse[e.base+rune(code)] = code
	}
	for code, r := range e.overrides {
		delete(reverse, e.base+rune(code))
		reverse[r] = code
	}
	return &builtinBackend{entry: e, reverse: reverse}
}

func (b *builtinBackend) Name() string         { return b.entry.name }
func (b *builtinBackend) Kind() charfilter.Kind { return b.entry.kind }

func (b *builtinBackend) Decode(code int) (rune, bool) {
	if code < 0 || code >= b.entry.length {
		return 0, false
	}
	if r, ok := b.entry.overrides[code]; ok {
		return r, true
	}
	return b.entry.base + rune(code), true
}

func (b *builtinBackend) Encode(r rune) (int, bool) {
	code, ok := b.reverse[r]
	return code, ok
}

// Builtin is the Loader for the static in-binary tables.
type Builtin struct{}

func (Builtin) Load(name string, kind charfilter.Kind) (Backend, error) {
	for _, e := range builtinTable {
		if strings.EqualFold(e.name, name) && e.kind == kind {
			return newBuiltinBackend(e), nil
		}
	}
	return nil, fmt.Errorf("backend: no built-in table for %q", name)
}
