package main

import (
	"os"

	"github.com/badu/charfilter/backend"
	"github.com/badu/charfilter/charset"
	"github.com/badu/charfilter/config"
	"github.com/badu/charfilter/iso2022"
)

// buildRegistry converts config.Prefer's CLI-facing token type into
// backend.Name and assembles the shared Chain both pump directions'
// registries are built from.
func buildRegistry(cfg config.Config) *charset.Registry {
	order := make([]backend.Name, len(cfg.Priority))
	for i, p := range cfg.Priority {
		order[i] = backend.Name(p)
	}
	return charset.New(backend.NewChain(order, nil))
}

// resolveLocaleName picks the charset name driving both pumps' default
// designations: -encoding overrides, otherwise the locale environment via
// charset.ResolveLocale (spec.md §4.5).
func resolveLocaleName(cfg config.Config) string {
	if cfg.Encoding != "" {
		return cfg.Encoding
	}
	locale := os.Getenv("LC_ALL")
	if locale == "" {
		locale = os.Getenv("LC_CTYPE")
	}
	if locale == "" {
		locale = os.Getenv("LANG")
	}
	if locale == "" {
		locale = "C"
	}
	return charset.ResolveLocale(cfg.AliasFile, locale)
}

// buildStates resolves the locale once and builds the output (child->user)
// and input (user->child) iso2022.States from it, then layers the -g*/-kg*
// CLI overrides and the +oss/+ols/... flag toggles on top (spec.md §6).
func buildStates(cfg config.Config, registry *charset.Registry) (out, in *iso2022.State) {
	name := resolveLocaleName(cfg)
	locale, _ := charset.MatchLocaleCharset(name)

	out = iso2022.NewState(registry)
	out.ApplyLocale(locale)
	out.Flags = iso2022.Flags{
		DisableSingleShift:  cfg.OutputFlags.DisableSingleShift,
		DisableLockingShift: cfg.OutputFlags.DisableLockingShift,
		DisableSelect:       cfg.OutputFlags.DisableSelect,
		PassThrough:         cfg.OutputFlags.PassThrough,
	}
	applyDesignations(out, cfg.Output)

	in = iso2022.NewState(registry)
	in.ApplyLocale(locale)
	in.Flags = iso2022.Flags{
		SevenBit:          cfg.InputFlags.SevenBit,
		GenerateLockShift: cfg.InputFlags.GenerateLockShift,
		GenerateSingle:    cfg.InputFlags.GenerateSingle,
		GRAfterSingle:     cfg.InputFlags.GRAfterSingle,
	}
	applyDesignations(in, cfg.Input)

	return out, in
}

func applyDesignations(s *iso2022.State, d config.Designations) {
	s.SetDesignation(0, d.G0)
	s.SetDesignation(1, d.G1)
	s.SetDesignation(2, d.G2)
	s.SetDesignation(3, d.G3)
	s.SetCursors(d.GL, d.GR)
}
