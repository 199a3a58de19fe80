// Package config collects the command-line surface (spec.md §6) into one
// immutable struct built once at startup, per the "Global configuration"
// design note in spec.md §9. Subsystems take plain constructor arguments
// (iso2022.NewState, charset.New); this struct is what cmd/luit threads
// through to build them from parsed flags.
package config

// Prefer is one token of the -prefer backend priority list.
type Prefer string

const (
	PreferBuiltin Prefer = "builtin"
	PreferFontEnc Prefer = "fontenc"
	PreferIconv   Prefer = "iconv"
	PreferPosix   Prefer = "posix"
)

// DefaultPriority is the order used when -prefer is not given: fontenc,
// then builtin, then the library backend, then the trivial ASCII fallback
// (the "posix" token in luit's own vocabulary), per spec.md §4.3.
var DefaultPriority = []Prefer{PreferFontEnc, PreferBuiltin, PreferIconv, PreferPosix}

// OutputFlags are the output-direction ISO 2022 interpretation toggles from
// spec.md §4.1 / §6 (+oss/+ols/+osl/+ot).
type OutputFlags struct {
	DisableSingleShift  bool // +oss
	DisableLockingShift bool // +ols
	DisableSelect       bool // +osl
	PassThrough         bool // +ot: disable all interpretation
}

// InputFlags are the input-direction designation/shift generation toggles
// from spec.md §4.1 / §6 (-k7/-kls/+kss/+kssgr).
type InputFlags struct {
	SevenBit          bool // -k7: force 7-bit output
	GenerateLockShift bool // -kls: emit locking shifts instead of defaulting to none
	GenerateSingle    bool // on by default; +kss clears it
	GRAfterSingle     bool // on by default; +kssgr clears it
}

// Designations are the initial G0..G3 bindings, by charset name, for one
// pump direction (-g0..-g3 for output, -kg0..-kg3 for input); empty strings
// mean "use the locale's default".
type Designations struct {
	G0, G1, G2, G3 string
	GL, GR         int // -gl/-gr or -kgl/-kgr: which slot 0..3 is active
}

// Config is the fully parsed, immutable command-line configuration.
type Config struct {
	Encoding     string // -encoding: override locale/charset detection
	AliasFile    string // -alias: override locale-alias file path
	Priority     []Prefer
	Output       Designations
	OutputFlags  OutputFlags
	Input        Designations
	InputFlags   InputFlags
	Converter    bool // -c: one-shot stdin/stdout converter
	ExitOnChild  bool // -x: kill the child once the shuttle loop returns (the loop ends on SIGCHLD either way)
	Verbosity    int  // -v/-vv
	ChildCommand []string
}

// Default returns a Config with luit's documented defaults: GL->G0,
// GR->G2, full ISO 2022 interpretation enabled in both directions, single
// shifts (not locking shifts) preferred on input, exit when the child dies.
func Default() Config {
	return Config{
		Priority: DefaultPriority,
		Output: Designations{
			GL: 0,
			GR: 2,
		},
		Input: Designations{
			GL: 0,
			GR: 2,
		},
		InputFlags: InputFlags{
			GenerateSingle: true,
			GRAfterSingle:  true,
		},
		ExitOnChild: true,
	}
}
