package charset

import (
	"bufio"
	"os"
	"strings"
)

// ResolveLocale turns a locale identifier into a charset name (spec.md
// §4.5), grounded on parser.c's resolveLocale/parseTwoTokenLine and on
// badu-term/core/charset_unix.go's environment-variable fallback (this
// module has no cgo nl_langinfo binding, so step 3 below reads LC_ALL/
// LC_CTYPE/LANG directly instead, the same data nl_langinfo ultimately
// derives from on a POSIX host).
//
// aliasPath may be empty, in which case step 2 is skipped.
func ResolveLocale(aliasPath, locale string) string {
	resolved, found := lookupAlias(aliasPath, locale)
	if !found {
		resolved = locale
	}

	if !found || !hasEncoding(resolved) {
		if locale != "C" && locale != "POSIX" && locale != "US-ASCII" {
			if improved := envCodeset(); improved != "" {
				resolved = improved
			}
		}
	}

	if charset, ok := splitEncoding(resolved); ok {
		return charset
	}
	return "US-ASCII"
}

// hasEncoding reports whether the last "." in locale introduces a
// non-empty suffix, the same shape-check parser.c's has_encoding performs
// before trusting an alias-file right column as a final answer.
func hasEncoding(locale string) bool {
	_, ok := splitEncoding(locale)
	return ok
}

// splitEncoding extracts the charset suffix after the last '.' in a
// locale string (spec.md §4.5 step 2: "the suffix after the last dot is
// the charset").
func splitEncoding(locale string) (string, bool) {
	dot := strings.LastIndex(locale, ".")
	if dot < 0 || dot == len(locale)-1 {
		return "", false
	}
	suffix := locale[dot+1:]
	if idx := strings.Index(suffix, "@"); idx >= 0 {
		suffix = suffix[:idx]
	}
	return suffix, suffix != ""
}

// envCodeset is this module's stand-in for nl_langinfo(CODESET): the POSIX
// convention of consulting LC_ALL, LC_CTYPE and LANG in order (spec.md §6
// "Environment"), same precedence and dot-suffix extraction as
// badu-term/core/charset_unix.go's getCharset.
func envCodeset() string {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		if v == "POSIX" || v == "C" {
			return "US-ASCII"
		}
		if charset, ok := splitEncoding(v); ok {
			return charset
		}
		return ""
	}
	return ""
}

// lookupAlias scans a locale-alias file for a line whose first token equals
// locale, repeating the lookup (spec.md §4.5 step 2: "otherwise the whole
// right column is the resolved locale and the process repeats") until the
// right column contains a '.', or the file runs out.
func lookupAlias(path, locale string) (string, bool) {
	if path == "" {
		return "", false
	}
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	table := parseAliasFile(f)

	current := locale
	found := false
	for i := 0; i < len(table)+1; i++ {
		next, ok := table[current]
		if !ok {
			break
		}
		found = true
		current = next
		if strings.Contains(current, ".") {
			break
		}
	}
	return current, found
}

// parseAliasFile reads "first second" lines (spec.md §6): two tokens per
// line, an optional trailing colon on the first token, '#' begins a
// comment, and quoted strings are honoured so a token may contain spaces.
func parseAliasFile(f *os.File) map[string]string {
	table := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens := tokenizeAliasLine(line)
		if len(tokens) < 2 {
			continue
		}
		first := strings.TrimSuffix(tokens[0], ":")
		table[first] = tokens[1]
	}
	return table
}

func tokenizeAliasLine(line string) []string {
	var tokens []string
	var cur strings.Builder
	inQuote := false
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
		case r == ' ' || r == '\t':
			if inQuote {
				cur.WriteRune(r)
			} else {
				flush()
			}
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}
