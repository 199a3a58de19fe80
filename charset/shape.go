package charset

import "github.com/badu/charfilter"

// knownShapes maps a locale-table designation name (folded per fold's
// whitespace/hyphen/underscore/slash-insensitive rule) to the code-point
// shape it actually has, independent of which G-slot a locale happens to
// put it in. eucJP/eucKR/eucCN/GB2312/eucTW/Big5 all designate a
// genuinely double-byte set into G1 (and, for eucJP/eucTW, G2/G3 too) --
// JIS X 0208, KSC 5601, GB 2312, CNS11643-1/2/3, Big 5 -- so a slot-position
// guess that treats every non-G0 slot as T96 asks backend.Loader.Load for
// the wrong shape and either fails outright or builds a single-byte table
// out of a double-byte encoding. ShapeOf lets ApplyLocale/SetDesignation
// (package iso2022) look up the real shape by name first and fall back to
// the slot-position guess only for names this table doesn't know.
var knownShapes = map[string]charfilter.Kind{
	fold("ASCII"): charfilter.T94,

	fold("ISO 8859-1"):  charfilter.T96,
	fold("ISO 8859-2"):  charfilter.T96,
	fold("ISO 8859-3"):  charfilter.T96,
	fold("ISO 8859-4"):  charfilter.T96,
	fold("ISO 8859-5"):  charfilter.T96,
	fold("ISO 8859-6"):  charfilter.T96,
	fold("ISO 8859-7"):  charfilter.T96,
	fold("ISO 8859-8"):  charfilter.T96,
	fold("ISO 8859-9"):  charfilter.T96,
	fold("ISO 8859-10"): charfilter.T96,
	fold("ISO 8859-11"): charfilter.T96,
	fold("ISO 8859-13"): charfilter.T96,
	fold("ISO 8859-14"): charfilter.T96,
	fold("ISO 8859-15"): charfilter.T96,
	fold("ISO 8859-16"): charfilter.T96,
	fold("KOI8-E"):      charfilter.T96,
	fold("KOI8-R"):      charfilter.T96,
	fold("KOI8-U"):      charfilter.T96,
	fold("KOI8-RU"):     charfilter.T96,
	fold("CP 1250"):     charfilter.T96,
	fold("CP 1251"):     charfilter.T96,
	fold("CP 1252"):     charfilter.T96,
	fold("CP 1255"):     charfilter.T96,
	fold("CP 437"):      charfilter.T96,
	fold("CP 850"):      charfilter.T96,
	fold("CP 852"):      charfilter.T96,
	fold("CP 866"):      charfilter.T96,
	fold("TCVN"):        charfilter.T96,
	fold("JIS X 0201"):  charfilter.T96, // half-width katakana, eucJP's G2

	fold("GB 2312"):     charfilter.T9494,
	fold("JIS X 0208"):  charfilter.T9494,
	fold("JIS X 0212"):  charfilter.T9494,
	fold("KSC 5601"):    charfilter.T9494,
	fold("CNS11643-1"):  charfilter.T9494,
	fold("CNS11643-2"):  charfilter.T9494,
	fold("CNS11643-3"):  charfilter.T9494,

	fold("Big 5"): charfilter.T94192,
}

// ShapeOf reports the known code-point shape for a designation name,
// stripping a trailing ":GR"/":G2"/":G3" composite-part suffix first since
// those name the same underlying set as their base name. Names this table
// doesn't recognise return ok == false so the caller can fall back to
// guessing from slot position.
func ShapeOf(name string) (charfilter.Kind, bool) {
	if i := len(name) - 3; i >= 0 && name[i] == ':' && (name[i+1] == 'G') {
		switch name[i+2] {
		case 'R', '2', '3':
			name = name[:i]
		}
	}
	k, ok := knownShapes[fold(name)]
	return k, ok
}
