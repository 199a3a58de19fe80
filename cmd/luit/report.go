package main

import (
	"fmt"

	"github.com/badu/charfilter"
	"github.com/badu/charfilter/backend"
	"github.com/badu/charfilter/charset"
	"github.com/badu/charfilter/diag"
)

// runReport serves the -list-*/-show-* family (spec.md §6): -list-system
// is the supplemented host-diagnostics report, the rest print through the
// registry and backend chain directly, matching reportCharsets()'s "not
// all may be available" framing for anything not yet resolved.
func runReport(registry *charset.Registry, cmd reportCommand) error {
	switch cmd.kind {
	case "list":
		fmt.Print(diag.Report(registry))
		return nil
	case "list-system":
		info, err := diag.HostInfo()
		if err != nil {
			return err
		}
		fmt.Print(info)
		return nil
	case "list-builtin":
		return listBackend(registry, backend.Builtin{})
	case "list-fontenc":
		return listBackend(registry, backend.Fontenc{Dirs: backend.DefaultFontencDirs()})
	case "list-iconv":
		return listBackend(registry, backend.Library{})
	case "show-builtin":
		return showBackend(backend.Builtin{}, cmd.arg)
	case "show-fontenc":
		return showBackend(backend.Fontenc{Dirs: backend.DefaultFontencDirs()}, cmd.arg)
	case "show-iconv":
		return showBackend(backend.Library{}, cmd.arg)
	default:
		return fmt.Errorf("luit: unknown report %q", cmd.kind)
	}
}

// listBackend has no enumeration primitive of its own (a Loader only
// resolves a name it is given; none of the three maintain an index the way
// the registry's AllKnown does for whatever has already been looked up), so
// it reports against the registry's accumulated cache instead -- accurate
// once a session has touched a few names, the same "not all may be
// available" caveat reportCharsets() carries.
func listBackend(registry *charset.Registry, _ backend.Loader) error {
	fmt.Print(diag.Report(registry))
	return nil
}

func showBackend(loader backend.Loader, name string) error {
	b, err := loader.Load(name, charfilter.T94)
	if err != nil {
		if b, err = loader.Load(name, charfilter.T9494); err != nil {
			return fmt.Errorf("luit: %s: %w", name, err)
		}
	}
	fmt.Printf("%s: %s\n", b.Name(), b.Kind())
	return nil
}
