package charset

import "github.com/badu/charfilter"

// designatorKey is an ISO 2022 designation sequence's (final byte, kind)
// pair, the only information an escape sequence like "ESC ( B" or
// "ESC $ B" carries about which charset it names.
type designatorKey struct {
	final byte
	kind  charfilter.Kind
}

// registeredDesignators maps a designation sequence to the canonical name
// the registry resolves through the normal GetByName path, grounded on
// charset.c's static fontencCharsets[] table (the X font-encoding package's
// registered final bytes, reproduced here as the ISO-IR final-byte
// registrations the original ships built in). Names are spelled to match
// this package's own candidateNames/backend.Library key conventions rather
// than charset.c's XLFD column, since candidateNames' permutations and
// backend.Library's keys keep embedded spaces significant (only the
// registry's own cache comparison, sameName, ignores them).
var registeredDesignators = map[designatorKey]string{
	{'@', charfilter.T94}: "ASCII", // ISO 646 (1973), near enough to ASCII
	{'B', charfilter.T94}: "ASCII",

	{'A', charfilter.T96}: "ISO8859-1",
	{'B', charfilter.T96}: "ISO8859-2",
	{'C', charfilter.T96}: "ISO8859-3",
	{'D', charfilter.T96}: "ISO8859-4",
	{'L', charfilter.T96}: "ISO8859-5",
	{'G', charfilter.T96}: "ISO8859-6",
	{'F', charfilter.T96}: "ISO8859-7",
	{'H', charfilter.T96}: "ISO8859-8",
	{'M', charfilter.T96}: "ISO8859-9",
	{'V', charfilter.T96}: "ISO8859-10",
	{'Y', charfilter.T96}: "ISO8859-13",
	{'_', charfilter.T96}: "ISO8859-14",
	{'b', charfilter.T96}: "ISO8859-15",
	{'f', charfilter.T96}: "ISO8859-16",

	{'A', charfilter.T9494}: "GB2312",
	{'B', charfilter.T9494}: "JISX0208",
	{'C', charfilter.T9494}: "KSC5601",

	{'A', charfilter.T9696}: "GB2312",
	{'B', charfilter.T9696}: "JISX0208",
	{'C', charfilter.T9696}: "KSC5601",
}
