package charset

import (
	"strings"
)

// prefixRewrites is the small table of prefix rewrites tried during name
// resolution (spec.md §4.2), grounded on charset.c's matchLocaleCharset
// prefixes[] table.
var prefixRewrites = []struct{ from, to string }{
	{"ISO-", "ISO "},
	{"DEC ", "DEC-"},
	{"IBM-CP", "CP "},
	{"IBM", "CP "},
	{"MICROSOFT-CP", "CP "},
	{"MICROSOFT", "CP "},
	{"CP-", "CP "},
	{"ANSI", "CP "},
}

// libraryAliases is the small library-name alias table (spec.md §4.2).
var libraryAliases = map[string]string{
	"ISO646.1973-0":   "US-ASCII",
	"IBM-CP437":       "CP437",
	"GB2312.1980-0":   "GB2312",
	"JISX0208.1990-0": "JIS X 0208",
	"KSC5601.1987-0":  "KSC 5601",
	"BIG5.ETEN-0":     "Big 5",
}

// fold strips the characters name comparison is insensitive to: embedded
// whitespace, hyphens, underscores and slashes, then lower-cases the rest
// (spec.md §4.2: "ignores embedded whitespace, hyphens, underscores, and
// slashes").
func fold(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch r {
		case ' ', '-', '_', '/':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// sameName reports whether a and b denote the same charset name under the
// registry's case/whitespace/hyphen/underscore/slash-insensitive comparison.
func sameName(a, b string) bool {
	return fold(a) == fold(b)
}

// stripEuroSuffix removes a trailing "@euro" from a locale-derived name and
// reports whether it did. Its only caller, candidateNames, discards that
// report, so the strip happens silently: no warning is logged for it.
func stripEuroSuffix(name string) (stripped string, hadSuffix bool) {
	const suffix = "@euro"
	if idx := strings.LastIndex(strings.ToLower(name), suffix); idx >= 0 && idx == len(name)-len(suffix) {
		return name[:idx], true
	}
	return name, false
}

// candidateNames expands name into the full sequence of variants the
// registry tries, in order, before giving up (spec.md §4.2): the name
// verbatim, prefix rewrites, a ":GR" suffixed form, library aliases, and
// case/punctuation permutations.
func candidateNames(name string) []string {
	name, _ = stripEuroSuffix(name)

	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	add(name)

	for _, rw := range prefixRewrites {
		if strings.HasPrefix(strings.ToUpper(name), rw.from) {
			add(rw.to + name[len(rw.from):])
		}
	}

	add(name + ":GR")

	if alias, ok := libraryAliases[strings.ToUpper(name)]; ok {
		add(alias)
	}

	base := append([]string(nil), out...)
	for _, c := range base {
		add(strings.ToUpper(c))
		add(strings.ToLower(c))
		add(removeAlphaDigitDelimiter(c))
		add(insertDelimiter(c))
		add(strings.ReplaceAll(c, "-", " "))
	}

	return out
}

// removeAlphaDigitDelimiter drops a single delimiter sitting between a
// letter and a following digit run, e.g. "ISO-8859-1" -> "ISO8859-1".
func removeAlphaDigitDelimiter(s string) string {
	for i := 1; i < len(s)-1; i++ {
		if (s[i] == '-' || s[i] == ' ' || s[i] == '_') && isAlpha(s[i-1]) && isDigit(s[i+1]) {
			return s[:i] + s[i+1:]
		}
	}
	return s
}

// insertDelimiter inserts a "-" between a letter run and a following digit
// run, e.g. "CP437" -> "CP-437".
func insertDelimiter(s string) string {
	for i := 1; i < len(s); i++ {
		if isAlpha(s[i-1]) && isDigit(s[i]) {
			return s[:i] + "-" + s[i:]
		}
	}
	return s
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
