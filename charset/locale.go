package charset

// LocaleState is the designation set a locale name resolves to: initial
// GL/GR cursor positions and the four G-slot charset names, or a single
// non-ISO-2022 codec name when the locale is one of the "other" encodings
// (spec.md §4.5, mirroring charset.c's LocaleCharsetRec).
type LocaleState struct {
	GL, GR         int
	G0, G1, G2, G3 string
	Other          string
}

// localeCharsets mirrors charset.c's static localeCharsets[] table: for each
// known locale-derived charset name, the initial GL/GR cursors and G0..G3
// designations (or, for the five non-ISO-2022 encodings, an Other codec
// name instead).
var localeCharsets = []struct {
	name  string
	state LocaleState
}{
	{"C", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-1"}},
	{"POSIX", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-1"}},
	{"US-ASCII", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-1"}},

	{"ISO8859-1", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-1"}},
	{"ISO8859-2", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-2"}},
	{"ISO8859-3", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-3"}},
	{"ISO8859-4", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-4"}},
	{"ISO8859-5", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-5"}},
	{"ISO8859-6", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-6"}},
	{"ISO8859-7", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-7"}},
	{"ISO8859-8", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-8"}},
	{"ISO8859-9", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-9"}},
	{"ISO8859-10", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-10"}},
	{"ISO8859-11", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-11"}},
	{"TIS620", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-11"}},
	{"ISO8859-13", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-13"}},
	{"ISO8859-14", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-14"}},
	{"ISO8859-15", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-15"}},
	{"ISO8859-16", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "ISO 8859-16"}},

	{"KOI8-E", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "KOI8-E"}},
	{"KOI8-R", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "KOI8-R"}},
	{"KOI8-U", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "KOI8-U"}},
	{"KOI8-RU", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "KOI8-RU"}},
	{"CP1250", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "CP 1250"}},
	{"CP1251", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "CP 1251"}},
	{"CP1252", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "CP 1252"}},
	{"CP1255", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "CP 1255"}},
	{"CP437", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "CP 437"}},
	{"CP850", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "CP 850"}},
	{"CP852", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "CP 852"}},
	{"CP866", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "CP 866"}},
	{"TCVN", LocaleState{GL: 0, GR: 2, G0: "ASCII", G2: "TCVN"}},

	{"GB2312", LocaleState{GL: 0, GR: 1, G0: "ASCII", G1: "GB 2312"}},
	{"eucJP", LocaleState{GL: 0, GR: 1, G0: "ASCII", G1: "JIS X 0208", G2: "JIS X 0201:GR", G3: "JIS X 0212"}},
	{"eucKR", LocaleState{GL: 0, GR: 1, G0: "ASCII", G1: "KSC 5601"}},
	{"eucCN", LocaleState{GL: 0, GR: 1, G0: "ASCII", G1: "GB 2312"}},
	{"eucTW", LocaleState{GL: 0, GR: 1, G0: "ASCII", G1: "CNS11643-1", G2: "CNS11643-2", G3: "CNS11643-3"}},
	{"Big5", LocaleState{GL: 0, GR: 1, G0: "ASCII", G1: "Big 5"}},

	{"gbk", LocaleState{GL: 0, GR: 1, Other: "GBK"}},
	{"UTF-8", LocaleState{GL: 0, GR: 1, Other: "UTF-8"}},
	{"SJIS", LocaleState{GL: 0, GR: 1, Other: "SJIS"}},
	{"Big5-HKSCS", LocaleState{GL: 0, GR: 1, Other: "BIG5-HKSCS"}},
	{"gb18030", LocaleState{GL: 0, GR: 1, Other: "GB18030"}},
}

// MatchLocaleCharset resolves a charset name (already stripped of any
// "@euro" suffix by the caller) to its LocaleState, trying the name
// verbatim and then the prefix-rewrite table, exactly as
// charset.c's matchLocaleCharset does.
func MatchLocaleCharset(name string) (LocaleState, bool) {
	if st, ok := findLocaleCharset(name); ok {
		return st, true
	}
	for _, rw := range prefixRewrites {
		if len(name) > len(rw.from) && sameName(name[:len(rw.from)], rw.from) {
			if st, ok := findLocaleCharset(rw.to + name[len(rw.from):]); ok {
				return st, true
			}
		}
	}
	return LocaleState{}, false
}

// KnownLocaleNames returns every locale-derived charset name in table
// order, for the -list diagnostic (package diag).
func KnownLocaleNames() []string {
	names := make([]string, len(localeCharsets))
	for i, e := range localeCharsets {
		names[i] = e.name
	}
	return names
}

func findLocaleCharset(name string) (LocaleState, bool) {
	for _, e := range localeCharsets {
		if sameName(e.name, name) {
			return e.state, true
		}
	}
	return LocaleState{}, false
}
