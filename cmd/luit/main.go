// Command luit is the filter described by luit.c's main(): a locale-aware
// terminal character-set translator that either converts stdin to stdout
// (-c) or spawns a child behind a pty and shuttles its output/input through
// the ISO 2022 pump in both directions.
package main

import (
	"fmt"
	"os"

	"github.com/badu/charfilter/logging"
)

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if opts.help {
		printUsage(os.Stdout)
		return
	}
	if opts.version {
		fmt.Println("luit (charfilter)")
		return
	}

	logging.Init(nil)
	logging.SetVerbosity(opts.cfg.Verbosity)

	registry := buildRegistry(opts.cfg)

	if opts.report != nil {
		if err := runReport(registry, *opts.report); err != nil {
			logging.Fatal(err.Error(), nil)
		}
		return
	}

	out, in := buildStates(opts.cfg, registry)

	if opts.testOnly {
		return
	}

	if opts.cfg.Converter {
		if err := runConverter(out); err != nil {
			logging.Fatal("converter failed", map[string]interface{}{"error": err.Error()})
		}
		return
	}

	if err := runShuttle(opts.cfg, opts.childName, out, in); err != nil {
		logging.Fatal("shuttle failed", map[string]interface{}{"error": err.Error()})
	}
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "usage: luit [options] [--] [command [args]]")
	fmt.Fprintln(w, "  -c                      simple converter, stdin/stdout")
	fmt.Fprintln(w, "  -encoding name          use this encoding instead of the locale's")
	fmt.Fprintln(w, "  -alias file             locale alias file path")
	fmt.Fprintln(w, "  -prefer list            backend priority, comma separated")
	fmt.Fprintln(w, "  -g0..-g3, -gl, -gr      output-direction designations/cursors")
	fmt.Fprintln(w, "  -kg0..-kg3, -kgl, -kgr  input-direction designations/cursors")
	fmt.Fprintln(w, "  -kls/+kss/+kssgr/-k7    input shift generation toggles")
	fmt.Fprintln(w, "  +oss/+ols/+osl/+ot      output interpretation toggles")
	fmt.Fprintln(w, "  -list, -list-builtin, -list-fontenc, -list-iconv, -list-system")
	fmt.Fprintln(w, "  -show-builtin/-show-fontenc/-show-iconv name")
	fmt.Fprintln(w, "  -v                      increase verbosity")
	fmt.Fprintln(w, "  -x                      exit as soon as the child dies")
	fmt.Fprintln(w, "  -t                      initialize locale only, run nothing")
	fmt.Fprintln(w, "  -V                      show version")
	fmt.Fprintln(w, "  -h                      show this message")
}
