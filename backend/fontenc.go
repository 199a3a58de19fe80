package backend

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/badu/charfilter"
)

// Fontenc loads charsets from a filesystem "encodings.dir" index and the
// ".enc" files it names (spec.md §4.3), mirroring the X11 fontenc library
// luit itself links against. Dirs lists the search path, tried in order;
// the first index that names the requested charset wins.
type Fontenc struct {
	Dirs []string
}

// DefaultFontencDirs is the conventional X11 font-encodings search path,
// overridable via the FONT_ENCODINGS_DIRECTORY environment variable
// (fontenc.c's FontEncDirectory), same precedence rule luit itself uses.
func DefaultFontencDirs() []string {
	if d := os.Getenv("FONT_ENCODINGS_DIRECTORY"); d != "" {
		return []string{d}
	}
	return []string{
		"/usr/share/fonts/X11/encodings",
		"/usr/share/X11/fonts/encodings",
		"/usr/lib/X11/fonts/encodings",
	}
}

func (f Fontenc) Load(name string, kind charfilter.Kind) (Backend, error) {
	for _, dir := range f.Dirs {
		path, err := findEncFile(dir, name)
		if err != nil {
			continue
		}
		data, err := parseEncFile(path)
		if err != nil {
			continue
		}
		return newFontencBackend(name, kind, data), nil
	}
	return nil, fmt.Errorf("backend: no .enc file found for %q", name)
}

// findEncFile reads dir/encodings.dir (a count line followed by
// "alias path" pairs, paths absolute or relative to dir) and returns the
// path whose alias matches name case-insensitively.
func findEncFile(dir, name string) (string, error) {
	idx, err := os.Open(filepath.Join(dir, "encodings.dir"))
	if err != nil {
		return "", err
	}
	defer idx.Close()

	scanner := bufio.NewScanner(idx)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if first {
			// First line is a record count; not needed for a linear scan.
			first = false
			if _, err := strconv.Atoi(line); err == nil {
				continue
			}
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		alias, path := fields[0], fields[1]
		if !strings.EqualFold(alias, name) {
			continue
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		return path, nil
	}
	return "", fmt.Errorf("backend: %q not found in %s/encodings.dir", name, dir)
}

type fontencData struct {
	name    string
	aliases []string
	first   int
	mapping map[int]rune
}

// parseEncFile reads a (possibly gzip-compressed) ".enc" file and extracts
// only the mapping named "unicode" (spec.md §4.3); other mapping blocks are
// skipped. Directive keywords are case-insensitive, per fontenc.c's
// getLineType/StrCaseCmp dispatch.
func parseEncFile(path string) (*fontencData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := openMaybeGzip(f)
	if err != nil {
		return nil, err
	}

	data := &fontencData{mapping: make(map[int]rune)}
	inUnicodeMapping := false
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		keyword := strings.ToUpper(fields[0])
		rest := fields[1:]

		switch keyword {
		case "STARTENCODING":
			if len(rest) > 0 {
				data.name = rest[0]
			}
		case "ALIAS":
			if len(rest) > 0 {
				data.aliases = append(data.aliases, rest[0])
			}
		case "SIZE":
			// Either "SIZE n" or "SIZE rows cols"; not needed once the
			// mapping itself carries absolute code values.
		case "FIRSTINDEX":
			if len(rest) > 0 {
				if n, err := strconv.Atoi(rest[0]); err == nil {
					data.first = n
				}
			}
		case "STARTMAPPING":
			inUnicodeMapping = len(rest) > 0 && strings.EqualFold(rest[0], "unicode")
		case "ENDMAPPING":
			inUnicodeMapping = false
		case "UNDEFINE":
			if inUnicodeMapping {
				for _, tok := range rest {
					if n, err := strconv.Atoi(tok); err == nil {
						delete(data.mapping, n)
					}
				}
			}
		case "ENDENCODING":
			return data, nil
		default:
			if inUnicodeMapping {
				parseMappingLine(data, fields)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return data, nil
}

// parseMappingLine handles a bare "<code> <ucs>" pair or a
// "<from> <to> <base>" range (spec.md §4.3), both expressed in the decimal
// or 0x-prefixed hex fontenc.c accepts.
func parseMappingLine(data *fontencData, fields []string) {
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 0, 32)
		if err != nil {
			return
		}
		nums = append(nums, int(n))
	}
	switch len(nums) {
	case 2:
		data.mapping[nums[0]] = rune(nums[1])
	case 3:
		from, to, base := nums[0], nums[1], nums[2]
		for code, u := from, base; code <= to; code, u = code+1, u+1 {
			data.mapping[code] = rune(u)
		}
	}
}

func openMaybeGzip(f *os.File) (io.Reader, error) {
	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err == nil && len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return gz, nil
	}
	return br, nil
}

type fontencBackend struct {
	name    string
	kind    charfilter.Kind
	first   int
	forward map[int]rune
	reverse map[rune]int
}

func newFontencBackend(name string, kind charfilter.Kind, data *fontencData) *fontencBackend {
	reverse := make(map[rune]int, len(data.mapping))
	for code, r := range data.mapping {
		if _, dup := reverse[r]; !dup {
			reverse[r] = code - data.first
		}
	}
	forward := make(map[int]rune, len(data.mapping))
	for code, r := range data.mapping {
		forward[code-data.first] = r
	}
	return &fontencBackend{name: name, kind: kind, first: data.first, forward: forward, reverse: reverse}
}

func (b *fontencBackend) Name() string          { return b.name }
func (b *fontencBackend) Kind() charfilter.Kind { return b.kind }

func (b *fontencBackend) Decode(code int) (rune, bool) {
	r, ok := b.forward[code]
	return r, ok
}

func (b *fontencBackend) Encode(r rune) (int, bool) {
	code, ok := b.reverse[r]
	return code, ok
}
