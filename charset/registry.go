package charset

import (
	"sync"

	"github.com/badu/charfilter"
	"github.com/badu/charfilter/backend"
	"github.com/badu/charfilter/codec"
)

// otherTierExcluded names designations that must never fall through to the
// other-codec tier even though a same-spelled "other" codec exists,
// grounded on charset.c's isOtherCharset special-casing "Big5" and "JOHAB"
// by name. This package's own locale table (locale.go) designates bare
// "Big5" as the ISO-2022 94x192 "Big 5" set (G1 of the Big5 locale), not
// the BIG5-HKSCS other codec -- that one only shows up under the distinct
// "Big5-HKSCS" locale name -- so a lookup of "Big5" (e.g. a -g1 override
// typed without the space) must keep resolving through the ISO-2022
// backend chain, coming back as unknown only if that chain cannot load it,
// rather than be silently redirected to BIG5-HKSCS. JOHAB has no backing codec in this module at all; it is
// excluded for the same reason the original excludes it from
// isOtherCharset's normal matching.
var otherTierExcluded = map[string]bool{
	fold("Big5"):  true,
	fold("JOHAB"): true,
}

// Registry is the process-wide charset cache (spec.md §4.2). Entries are
// appended, never removed or mutated, once added; this trades the
// C implementation's singly linked cache list (whose nodes are freed only
// at process exit anyway) for a slice-backed arena that is simpler to
// reason about under Go's garbage collector while keeping the same
// "cache, then backends, in priority order" lookup discipline and the same
// "retain failed attempts to short-circuit retries" behaviour (spec.md §7).
type Registry struct {
	mu      sync.Mutex
	entries []*Charset
	chain   *backend.Chain
}

// New builds a Registry backed by chain. Pass backend.NewChain(order, nil)
// for the default order and search path, or a Chain built with another
// order or fontenc search path.
func New(chain *backend.Chain) *Registry {
	return &Registry{chain: chain}
}

// GetByDesignator returns the Charset an ISO 2022 designation sequence
// names, resolving the (final byte, kind) pair to a canonical name via
// registeredDesignators and then running the same cache/backend-chain
// lookup GetByName does. Never returns nil: an unrecognised final byte, or
// total backend failure, yields the matching "unknown" sentinel (spec.md
// §4.1 "Unknown designator final: bind sentinel and continue").
func (r *Registry) GetByDesignator(final byte, kind charfilter.Kind) *Charset {
	name, ok := registeredDesignators[designatorKey{final, kind}]
	if !ok {
		cs := unknownSentinel(kind)
		cs.Final = final
		return cs
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	cs := r.resolveByName(name, kind)
	if cs.Final == 0 {
		cs.Final = final
	}
	return cs
}

// GetByName resolves name to a Charset, trying the cache, then each
// candidate name expansion against the backend chain in priority order,
// then the "other" codec registry (spec.md §4.2). Returns the
// "unknown 94-code" sentinel if every attempt fails.
func (r *Registry) GetByName(name string, kind charfilter.Kind) *Charset {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolveByName(name, kind)
}

// resolveByName is GetByName's body, factored out so GetByDesignator can
// call it while already holding r.mu.
func (r *Registry) resolveByName(name string, kind charfilter.Kind) *Charset {
	for _, e := range r.entries {
		if sameName(e.Name, name) {
			// A prior genuine success: return it. A prior failure
			// (e.Kind == Failed) short-circuits the whole backend scan
			// per spec.md §7 "subsequent lookups skip it" -- return the
			// unknown sentinel directly instead of retrying every backend.
			if e.Kind == charfilter.Failed {
				return unknownSentinel(charfilter.T94)
			}
			return e
		}
	}

	for _, candidate := range candidateNames(name) {
		if b, err := r.chain.Load(candidate, kind); err == nil {
			// Trust the backend's own Kind() over the requested kind: a
			// caller that guessed wrong (iso2022.kindFor falls back to a
			// slot-position guess for unrecognised names) still gets a
			// Charset whose Kind matches what was actually built, so
			// output.go's cs.Kind.DoubleByte() dispatch stays correct.
			cs := &Charset{Name: name, Kind: b.Kind(), back: b}
			r.entries = append(r.entries, cs)
			return cs
		}
	}

	if cs, ok := r.resolveOther(name); ok {
		r.entries = append(r.entries, cs)
		return cs
	}

	r.entries = append(r.entries, &Charset{Name: name, Kind: charfilter.Failed})
	return unknownSentinel(charfilter.T94)
}

// resolveOther tries name against the "other" (non-ISO-2022) codec
// registry, the fallback tier getByName's documented lookup order ends
// with once the cache and every backend have failed (spec.md §4.2:
// "cache, ... backends ..., then the 'other' codec registry"). Package
// codec's Names/New are exact-spelling; candidateNames/sameName bridge the
// same case/whitespace/hyphen/underscore/slash-insensitive matching the
// backend tier gets.
func (r *Registry) resolveOther(name string) (*Charset, bool) {
	if otherTierExcluded[fold(name)] {
		return nil, false
	}
	for _, candidate := range candidateNames(name) {
		for _, known := range codec.Names() {
			if !sameName(candidate, known) {
				continue
			}
			c, ok := codec.New(known)
			if !ok {
				continue
			}
			return &Charset{Name: name, Kind: charfilter.TOther, other: c}, true
		}
	}
	return nil, false
}

// AllKnown enumerates every non-failed, non-sentinel registered charset,
// for the -list diagnostic (spec.md §4.2 "allKnown").
func (r *Registry) AllKnown() []*Charset {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Charset, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Kind == charfilter.Failed || e.Unknown() {
			continue
		}
		out = append(out, e)
	}
	return out
}
