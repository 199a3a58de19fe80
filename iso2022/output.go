package iso2022

import (
	"unicode/utf8"

	"github.com/badu/charfilter"
	"github.com/badu/charfilter/codec"
)

const (
	esc = 0x1B
	si  = 0x0F
	so  = 0x0E
	ss2 = 0x8E
	ss3 = 0x8F
)

// Output is the child -> user direction pump: it owns a State and turns
// buffers of child bytes into UTF-8 for the user descriptor (spec.md §4.1
// "Output-direction contract").
type Output struct {
	*State

	// leadByte/leadSlot buffer the first byte of a double-byte character,
	// and the slot it resolved against, while the second is awaited: the
	// slot is resolved once, off the lead byte, and reused for the trail
	// byte so a pending single-shift (consumed by activeSlot's first call)
	// still covers the whole character, not just its first byte.
	leadByte byte
	leadSlot int
	haveLead bool
}

// NewOutput wraps state for the output direction.
func NewOutput(state *State) *Output {
	return &Output{State: state}
}

// Decode translates buf (child output) into UTF-8, appending to and
// returning dst. A truncated escape sequence at the end of buf is retained
// in o.State, and a double-byte lead in o's own lead fields, for completion
// on the next call.
func (o *Output) Decode(dst []byte, buf []byte) []byte {
	var runeBuf [utf8.UTFMax]byte

	emit := func(r rune) {
		n := utf8.EncodeRune(runeBuf[:], r)
		dst = append(dst, runeBuf[:n]...)
	}

	for _, b := range buf {
		if o.Other != nil {
			r, status := o.Other.PushByte(b)
			if status == codec.Emit {
				emit(o.Other.Forward(r))
			}
			continue
		}

		if o.Flags.PassThrough {
			dst = append(dst, b)
			continue
		}

		if len(o.escape) > 0 {
			o.escape = append(o.escape, b)
			switch o.stepEscape() {
			case escIncomplete:
				continue
			case escApplied:
				o.escape = o.escape[:0]
				continue
			case escInvalid:
				dst = append(dst, o.escape...)
				o.escape = o.escape[:0]
				continue
			}
		}

		switch b {
		case esc:
			o.escape = append(o.escape[:0], b)
			continue
		case si:
			if !o.Flags.DisableLockingShift {
				o.GL = 0
				continue
			}
		case so:
			if !o.Flags.DisableLockingShift {
				o.GL = 1
				continue
			}
		case ss2:
			if !o.Flags.DisableSingleShift {
				o.SingleShift = 2
				continue
			}
		case ss3:
			if !o.Flags.DisableSingleShift {
				o.SingleShift = 3
				continue
			}
		}

		// C0 controls and DEL sit outside the GL/GR coding space under
		// ECMA-35 and are always passed through unchanged, independent of
		// the active designation (a T128 set included, although
		// charfilter.Kind.Regular reports false for that kind).
		if b < 0x20 || b == 0x7F {
			emit(rune(b))
			continue
		}

		dst = o.decodeDataByte(dst, b, emit)
	}
	return dst
}

// decodeDataByte handles one byte that is not part of an escape sequence,
// buffering the lead byte of a double-byte character as needed. The G-slot
// is resolved once per character, on the lead byte: a single-shift names
// the slot for "the next decodable character" (spec.md §8), not just its
// first byte, so the trailing byte(s) of a double-byte character reuse the
// lead byte's slot instead of calling activeSlot again -- activeSlot
// clears State.SingleShift the first time it is consulted, so a second
// call mid-character would wrongly fall back to GL/GR.
func (o *Output) decodeDataByte(dst []byte, b byte, emit func(rune)) []byte {
	var slot int
	if o.haveLead {
		slot = o.leadSlot
	} else {
		slot = o.activeSlot(b)
	}
	cs := o.G[slot]
	if cs == nil {
		// No designation has ever been made for this slot: pass the byte
		// through unchanged rather than fabricate a mapping.
		o.haveLead = false
		dst = append(dst, b)
		return dst
	}

	if !cs.Kind.DoubleByte() {
		code, ok := singleByteCode(cs.Kind, b)
		if !ok {
			// Byte outside the set's code columns (0x20/0x7F or their GR
			// twins 0xA0/0xFF in a 94-code set, a C1 byte in a 96-code
			// set): drop the byte (spec.md §4.1 "Failure and boundary
			// conditions").
			return dst
		}
		if r, ok := cs.Decode(code); ok {
			emit(r)
		}
		return dst
	}

	if !o.haveLead {
		o.leadByte = b
		o.leadSlot = slot
		o.haveLead = true
		return dst
	}
	o.haveLead = false
	code, ok := doubleByteCode(cs.Kind, o.leadByte, b)
	if !ok {
		return dst
	}
	if r, ok := cs.Decode(code); ok {
		emit(r)
	}
	return dst
}

// singleByteCode maps a raw byte to a charset's 0-based code position
// according to its kind, or ok=false when the byte falls outside the kind's
// code columns. GL and GR bytes both map, with the high bit stripped for a
// 94-code set and set for a 96-code set, so a 94-code set rejects
// 0x20/0x7F and 0xA0/0xFF.
func singleByteCode(kind charfilter.Kind, b byte) (int, bool) {
	switch kind {
	case charfilter.T94:
		c := b &^ 0x80
		if c < 0x21 || c > 0x7E {
			return 0, false
		}
		return int(c - 0x21), true
	case charfilter.T96:
		c := b | 0x80
		if c < 0xA0 {
			return 0, false
		}
		return int(c - 0xA0), true
	case charfilter.T128:
		return int(b), true
	default:
		return 0, false
	}
}

// doubleByteCode flattens a two-byte sequence into this package's row*width
// + col addressing (the same convention package backend's library loader
// uses), or ok=false when either byte falls outside the kind's column
// range.
func doubleByteCode(kind charfilter.Kind, lead, trail byte) (int, bool) {
	switch kind {
	case charfilter.T9494, charfilter.T9696:
		width := 94
		base := byte(0x21)
		if kind == charfilter.T9696 {
			width = 96
			base = 0xA1
		}
		l, t := lead&^0x80, trail&^0x80
		if kind == charfilter.T9696 {
			l, t = lead|0x80, trail|0x80
		}
		if l < base || t < base {
			return 0, false
		}
		row := int(l - base)
		col := int(t - base)
		if row >= width || col >= width {
			return 0, false
		}
		return row*width + col, true
	case charfilter.T94192:
		l := lead &^ 0x80
		if l < 0x21 || l > 0x7E {
			return 0, false
		}
		row := int(l - 0x21)
		var col int
		switch {
		case trail >= 0x40 && trail <= 0x7E:
			col = int(trail - 0x40)
		case trail >= 0xA1 && trail <= 0xFE:
			col = int(trail-0xA1) + 63
		default:
			return 0, false
		}
		return row*192 + col, true
	default:
		return 0, false
	}
}
