package backend

import (
	"fmt"

	"github.com/badu/charfilter"
)

// posixBackend is the trivial fallback named in the default priority list
// (spec.md §4.3): identity over 0x21..0x7E (codes 0..93), no mapping
// otherwise. It never fails
// to load, so it is always last in a priority chain and guarantees a lookup
// always terminates.
type posixBackend struct {
	name string
}

func (p posixBackend) Name() string         { return p.name }
func (p posixBackend) Kind() charfilter.Kind { return charfilter.T94 }

func (p posixBackend) Decode(code int) (rune, bool) {
	if code < 0 || code > 93 {
		return 0, false
	}
	r := rune(0x21 + code)
	if r > 127 {
		return 0, false
	}
	return r, true
}

func (p posixBackend) Encode(r rune) (int, bool) {
	if r < 0x21 || r > 0x7E {
		return 0, false
	}
	return int(r - 0x21), true
}

// Posix is the Loader for the trivial fallback. It only ever answers for
// the 94-code shape: an ASCII-range identity map has no sensible reading
// as a double-byte or full-128 table, so other kinds fail through it
// rather than silently succeeding with a meaningless mapping.
type Posix struct{}

func (Posix) Load(name string, kind charfilter.Kind) (Backend, error) {
	if kind != charfilter.T94 {
		return nil, fmt.Errorf("backend: posix fallback only serves 94-code sets, not %v", kind)
	}
	return posixBackend{name: name}, nil
}
