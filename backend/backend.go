// Package backend implements the three interchangeable code-mapping
// providers behind a uniform interface (spec.md §4.3): built-in tables, the
// ".enc" font-encoding file format, and golang.org/x/text as the
// character-conversion library, plus a trivial ASCII-only fallback.
//
// The registry (package charset) consults these in a configurable priority
// order and caches the first backend that resolves a given charset name.
package backend

import "github.com/badu/charfilter"

// Name identifies one of the four priority tokens accepted by -prefer
// (spec.md §6).
type Name string

const (
	Builtin Name = "builtin"
	Fontenc Name = "fontenc"
	Iconv   Name = "iconv"
	Posix   Name = "posix"
)

// Backend maps between a charset's internal code position and UCS-4. The
// code position's meaning depends on Kind(): for T94/T96 it is 0..93/0..95
// (added to 0x21 or 0xA0 by the caller); for the double-byte kinds it is a
// flat row*width+col index over the charset's two-dimensional table.
type Backend interface {
	// Name is the canonical charset name this backend instance serves.
	Name() string

	// Kind reports the charset's code-point shape, which determines how
	// the ISO 2022 pump maps bytes to and from code positions.
	Kind() charfilter.Kind

	// Decode returns the UCS-4 value at the given code position.
	Decode(code int) (r rune, ok bool)

	// Encode returns the code position holding r, if any.
	Encode(r rune) (code int, ok bool)
}

// Loader looks up or constructs a Backend for a charset name. Each of the
// three providers (and the posix fallback) implements Loader; the charset
// registry tries them in priority order and keeps the first success.
type Loader interface {
	Load(name string, kind charfilter.Kind) (Backend, error)
}
