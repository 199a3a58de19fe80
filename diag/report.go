// Package diag implements the filter's out-of-scope-for-the-core but
// user-visible diagnostic surface: the charset.c reportCharsets()-style
// listing behind -list (and -list-builtin/-list-fontenc/-list-iconv), and
// the gopsutil-based host summary behind -list-system that the original
// never had.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/badu/charfilter/charset"
)

// slotLabels are the locale table's field labels in the order charset.c's
// reportCharsets prints G0..G3.
var slotLabels = [4]string{"G0", "G1", "G2", "G3"}

// Report renders the two-section text reportCharsets() prints: every known
// locale-derived designation set, then every charset the registry has
// actually resolved so far (spec.md §4.2's AllKnown, "not all may be
// available" since a backend can still fail at resolution time).
func Report(r *charset.Registry) string {
	var b strings.Builder

	b.WriteString("Known locale encodings:\n\n")
	for _, name := range charset.KnownLocaleNames() {
		st, _ := charset.MatchLocaleCharset(name)
		if st.Other != "" {
			fmt.Fprintf(&b, "  %s (non-ISO-2022 encoding)\n", st.Other)
			continue
		}
		fmt.Fprintf(&b, "  %s: GL -> G%d, GR -> G%d", name, st.GL, st.GR)
		slots := [4]string{st.G0, st.G1, st.G2, st.G3}
		for i, g := range slots {
			if g != "" {
				fmt.Fprintf(&b, ", %s: %s", slotLabels[i], g)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n\nKnown charsets (not all may be available):\n\n")
	known := r.AllKnown()
	sort.Slice(known, func(i, j int) bool { return known[i].Name < known[j].Name })
	for _, cs := range known {
		fmt.Fprintf(&b, "  %s: %s\n", cs.Name, cs.Kind)
	}

	return b.String()
}
