package backend

import (
	"fmt"

	"github.com/badu/charfilter"
)

// DefaultPriority is the order spec.md §4.3 names: ".enc" lookup first,
// then built-in tables, then the conversion library, then the trivial
// ASCII-only fallback.
var DefaultPriority = []Name{Fontenc, Builtin, Iconv, Posix}

// ParsePriority turns the comma-separated -prefer token list into a full
// ordering: duplicates are an error, and any of the four names missing from
// tokens is appended in DefaultPriority order (spec.md §6).
func ParsePriority(tokens []string) ([]Name, error) {
	seen := make(map[Name]bool, len(tokens))
	var out []Name
	for _, t := range tokens {
		n := Name(t)
		if !validName(n) {
			return nil, fmt.Errorf("backend: unknown -prefer token %q", t)
		}
		if seen[n] {
			return nil, fmt.Errorf("backend: duplicate -prefer token %q", t)
		}
		seen[n] = true
		out = append(out, n)
	}
	for _, n := range DefaultPriority {
		if !seen[n] {
			out = append(out, n)
			seen[n] = true
		}
	}
	return out, nil
}

func validName(n Name) bool {
	switch n {
	case Builtin, Fontenc, Iconv, Posix:
		return true
	}
	return false
}

// Chain composes the three providers and the fallback behind a single
// Loader, trying each enabled backend in priority order and keeping the
// first success (spec.md §4.3 "Priority and composition"). A name that
// fails every backend in the chain is the caller's (package charset's)
// signal to cache an "unknown" sentinel and stop retrying it.
type Chain struct {
	order   []Name
	fontenc Loader
	builtin Loader
	library Loader
	posix   Loader
}

// NewChain builds a Chain for the given priority order. fontencDirs is the
// search path passed to the Fontenc loader; pass nil to use
// DefaultFontencDirs().
func NewChain(order []Name, fontencDirs []string) *Chain {
	if fontencDirs == nil {
		fontencDirs = DefaultFontencDirs()
	}
	return &Chain{
		order:   order,
		fontenc: Fontenc{Dirs: fontencDirs},
		builtin: Builtin{},
		library: Library{},
		posix:   Posix{},
	}
}

func (c *Chain) loaderFor(n Name) Loader {
	switch n {
	case Fontenc:
		return c.fontenc
	case Builtin:
		return c.builtin
	case Iconv:
		return c.library
	case Posix:
		return c.posix
	}
	return nil
}

// Load tries each backend in priority order, returning the first success.
// Per-backend failures are not reported to the caller individually; package
// charset is responsible for caching a "failed" record so this chain is not
// re-run for the same name on every lookup.
func (c *Chain) Load(name string, kind charfilter.Kind) (Backend, error) {
	var lastErr error
	for _, n := range c.order {
		loader := c.loaderFor(n)
		if loader == nil {
			continue
		}
		b, err := loader.Load(name, kind)
		if err != nil {
			lastErr = err
			continue
		}
		return b, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("backend: no backend configured")
	}
	return nil, fmt.Errorf("backend: all backends failed for %q: %w", name, lastErr)
}
