package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/badu/charfilter/config"
)

// reportCommand names one of the -list-*/-show-* diagnostics that exit
// immediately after printing, instead of starting the shuttle.
type reportCommand struct {
	kind string // "list-builtin", "show-fontenc", "list-system", ...
	arg  string // the charset name for a -show-* command, else empty
}

// parsedOptions is parseArgs's result: the immutable Config plus anything
// that isn't really configuration (a one-shot report request, the child's
// argv[0] override, help/version).
type parsedOptions struct {
	cfg       config.Config
	report    *reportCommand
	help      bool
	version   bool
	testOnly  bool // -t: initialize locale, skip the pty/shuttle entirely
	childName string
}

// parseArgs hand-walks args the way luit.c's parseOptions does: a flat
// scan with lookahead for each flag's parameter, '+'-prefixed boolean
// toggles alongside '-'-prefixed ones, and "--" (or the first bare word)
// ending option parsing and starting the child's argv. A real flag
// framework's parser cannot represent the '+' toggle convention, so this
// stays a hand-rolled loop over os.Args rather than flag.FlagSet (see
// DESIGN.md).
func parseArgs(args []string) (parsedOptions, error) {
	out := parsedOptions{cfg: config.Default()}

	arg := func(i *int, name string) (string, error) {
		*i++
		if *i >= len(args) {
			return "", fmt.Errorf("luit: -%s requires an argument", name)
		}
		return args[*i], nil
	}

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			out.cfg.ChildCommand = append(out.cfg.ChildCommand, args[i+1:]...)
			return out, nil
		case a == "-h":
			out.help = true
			return out, nil
		case a == "-V":
			out.version = true
			return out, nil
		case a == "-v":
			out.cfg.Verbosity++
		case a == "-vv":
			out.cfg.Verbosity += 2
		case a == "-c":
			out.cfg.Converter = true
		case a == "-x":
			out.cfg.ExitOnChild = true
		case a == "-t":
			out.testOnly = true
		case a == "-p":
			// Parent/child handshake: no-op here, this filter has no
			// separate setup phase the child needs to wait through.
		case a == "-encoding":
			v, err := arg(&i, "encoding")
			if err != nil {
				return out, err
			}
			out.cfg.Encoding = v
		case a == "-alias":
			v, err := arg(&i, "alias")
			if err != nil {
				return out, err
			}
			out.cfg.AliasFile = v
		case a == "-argv0":
			v, err := arg(&i, "argv0")
			if err != nil {
				return out, err
			}
			out.childName = v
		case a == "-prefer":
			v, err := arg(&i, "prefer")
			if err != nil {
				return out, err
			}
			priority, err := parsePreferList(v)
			if err != nil {
				return out, err
			}
			out.cfg.Priority = priority
		case a == "-g0" || a == "-g1" || a == "-g2" || a == "-g3":
			v, err := arg(&i, a[1:])
			if err != nil {
				return out, err
			}
			setSlot(&out.cfg.Output, int(a[2]-'0'), v)
		case a == "-kg0" || a == "-kg1" || a == "-kg2" || a == "-kg3":
			v, err := arg(&i, a[1:])
			if err != nil {
				return out, err
			}
			setSlot(&out.cfg.Input, int(a[3]-'0'), v)
		case a == "-gl" || a == "-gr":
			v, err := arg(&i, a[1:])
			if err != nil {
				return out, err
			}
			slot, err := parseSlotIndex(v)
			if err != nil {
				return out, err
			}
			if a == "-gl" {
				out.cfg.Output.GL = slot
			} else {
				out.cfg.Output.GR = slot
			}
		case a == "-kgl" || a == "-kgr":
			v, err := arg(&i, a[1:])
			if err != nil {
				return out, err
			}
			slot, err := parseSlotIndex(v)
			if err != nil {
				return out, err
			}
			if a == "-kgl" {
				out.cfg.Input.GL = slot
			} else {
				out.cfg.Input.GR = slot
			}
		case a == "-kls":
			out.cfg.InputFlags.GenerateLockShift = true
		case a == "-k7":
			out.cfg.InputFlags.SevenBit = true
		case a == "+kss":
			out.cfg.InputFlags.GenerateSingle = false
		case a == "+kssgr":
			out.cfg.InputFlags.GRAfterSingle = false
		case a == "+oss":
			out.cfg.OutputFlags.DisableSingleShift = true
		case a == "+ols":
			out.cfg.OutputFlags.DisableLockingShift = true
		case a == "+osl":
			out.cfg.OutputFlags.DisableSelect = true
		case a == "+ot":
			out.cfg.OutputFlags.PassThrough = true
		case a == "-list" || a == "-list-builtin" || a == "-list-fontenc" || a == "-list-iconv" || a == "-list-system":
			out.report = &reportCommand{kind: strings.TrimPrefix(a, "-")}
		case a == "-show-builtin" || a == "-show-fontenc" || a == "-show-iconv":
			v, err := arg(&i, a[1:])
			if err != nil {
				return out, err
			}
			out.report = &reportCommand{kind: strings.TrimPrefix(a, "-"), arg: v}
		case strings.HasPrefix(a, "-") && a != "-":
			return out, fmt.Errorf("luit: unknown option %q", a)
		default:
			out.cfg.ChildCommand = append(out.cfg.ChildCommand, args[i:]...)
			return out, nil
		}
	}
	return out, nil
}

// setSlot installs name into d's slot-th designation (-g0..-g3/-kg0..-kg3).
func setSlot(d *config.Designations, slot int, name string) {
	switch slot {
	case 0:
		d.G0 = name
	case 1:
		d.G1 = name
	case 2:
		d.G2 = name
	case 3:
		d.G3 = name
	}
}

func parseSlotIndex(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 3 {
		return 0, fmt.Errorf("luit: invalid slot %q, want 0-3", v)
	}
	return n, nil
}

// parsePreferList turns a comma-separated -prefer list into a config.Prefer
// ordering (plain string tokens with the same values as package backend's
// Name).
func parsePreferList(v string) ([]config.Prefer, error) {
	tokens := strings.Split(v, ",")
	seen := make(map[config.Prefer]bool, len(tokens))
	var out []config.Prefer
	for _, t := range tokens {
		p := config.Prefer(strings.TrimSpace(t))
		switch p {
		case config.PreferBuiltin, config.PreferFontEnc, config.PreferIconv, config.PreferPosix:
		default:
			return nil, fmt.Errorf("luit: unknown -prefer token %q", t)
		}
		if seen[p] {
			return nil, fmt.Errorf("luit: duplicate -prefer token %q", t)
		}
		seen[p] = true
		out = append(out, p)
	}
	for _, p := range config.DefaultPriority {
		if !seen[p] {
			out = append(out, p)
			seen[p] = true
		}
	}
	return out, nil
}
