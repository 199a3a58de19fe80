package iso2022

import (
	"unicode/utf8"

	"github.com/badu/charfilter"
	"github.com/badu/charfilter/charset"
)

// Input is the user -> child direction pump: UTF-8 keystrokes in, the
// child's legacy encoding out (spec.md §4.1 "Input-direction contract").
type Input struct {
	*State
	pending []byte // incomplete trailing UTF-8 sequence from the last call
}

// NewInput wraps state for the input direction.
func NewInput(state *State) *Input {
	return &Input{State: state}
}

// Encode translates buf (UTF-8 from the user) into the child's encoding,
// appending to and returning dst. When State.Other is set, each decoded rune
// goes through the codec's Reverse instead of the G0..G3 slots.
func (in *Input) Encode(dst []byte, buf []byte) []byte {
	if in.Other != nil {
		return in.encodeOther(dst, buf)
	}

	if len(in.pending) > 0 {
		buf = append(in.pending, buf...)
		in.pending = nil
	}

	for len(buf) > 0 {
		r, size := utf8.DecodeRune(buf)
		if r == utf8.RuneError && size <= 1 {
			if !utf8.FullRune(buf) {
				// Truncated multibyte sequence at the end of buf: retain
				// for the next call instead of treating it as invalid.
				in.pending = append(in.pending[:0], buf...)
				return dst
			}
			// Genuinely malformed UTF-8: drop the byte and resync
			// (spec.md §4.1 "dropped on the input side").
			buf = buf[1:]
			continue
		}
		dst = in.encodeRune(dst, r)
		buf = buf[size:]
	}
	return dst
}

func (in *Input) encodeOther(dst []byte, buf []byte) []byte {
	if len(in.pending) > 0 {
		buf = append(in.pending, buf...)
		in.pending = nil
	}
	for len(buf) > 0 {
		r, size := utf8.DecodeRune(buf)
		if r == utf8.RuneError && size <= 1 {
			if !utf8.FullRune(buf) {
				in.pending = append(in.pending[:0], buf...)
				return dst
			}
			buf = buf[1:]
			continue
		}
		if encoded, ok := in.Other.Reverse(r); ok {
			dst = append(dst, encoded...)
		}
		buf = buf[size:]
	}
	return dst
}

// encodeRune emits r using whichever of G0..G3 can represent it, per the
// slot search order and shift rules of spec.md §4.1.
func (in *Input) encodeRune(dst []byte, r rune) []byte {
	if r < 0x20 || r == 0x7F {
		return append(dst, byte(r))
	}
	if r > 0xFFFF && !isDoubleByteCapable(in.State) {
		return dst // no slot can ever represent a code this large
	}

	for _, slot := range in.searchOrder() {
		cs := in.G[slot]
		if cs == nil || cs.Unknown() {
			continue
		}
		code, ok := cs.Encode(r)
		if !ok {
			continue
		}
		switch {
		case slot == in.GL:
			return in.emitInSlot(dst, cs, code, false)
		case slot == in.GR && !in.Flags.SevenBit:
			return in.emitInSlot(dst, cs, code, true)
		default:
			return in.emitViaShift(dst, cs, slot, code)
		}
	}
	// No slot has a reverse mapping: silently dropped (spec.md §4.1).
	return dst
}

// searchOrder is GL, then GR, then the two remaining slots in index order
// (spec.md §4.1 "GL slot, GR slot, then the remaining slots").
func (in *Input) searchOrder() []int {
	order := make([]int, 0, 4)
	order = append(order, in.GL, in.GR)
	for i := 0; i < 4; i++ {
		if i != in.GL && i != in.GR {
			order = append(order, i)
		}
	}
	return order
}

func isDoubleByteCapable(s *State) bool {
	for _, cs := range s.G {
		if cs != nil && cs.Kind.DoubleByte() {
			return true
		}
	}
	return false
}

// emitInSlot appends code's byte form assuming it is already reachable
// through the active GL or GR cursor (useGR selects which).
func (in *Input) emitInSlot(dst []byte, cs *charset.Charset, code int, useGR bool) []byte {
	if cs.Kind.DoubleByte() {
		row, col := splitDoubleByteCode(cs.Kind, code)
		b1, b2 := rowColBytes(cs.Kind, row, col, useGR)
		return append(dst, b1, b2)
	}
	b := singleByteForCode(cs.Kind, code, useGR)
	return append(dst, b)
}

// emitViaShift emits code from a slot that is neither the active GL nor GR
// cursor, choosing a single-shift (SS2/SS3, or their 7-bit ESC N/ESC O
// forms) when enabled and the slot is G2/G3, else a locking shift into GL
// (SI/SO/ESC n/ESC o), else drops the code (spec.md §4.1).
func (in *Input) emitViaShift(dst []byte, cs *charset.Charset, slot, code int) []byte {
	if in.Flags.GenerateSingle && (slot == 2 || slot == 3) {
		if in.Flags.SevenBit {
			final := byte('N')
			if slot == 3 {
				final = 'O'
			}
			dst = append(dst, esc, final)
		} else if slot == 2 {
			dst = append(dst, ss2)
		} else {
			dst = append(dst, ss3)
		}
		useGR := in.Flags.GRAfterSingle && !in.Flags.SevenBit
		return in.emitInSlot(dst, cs, code, useGR)
	}

	if in.Flags.GenerateLockShift {
		dst = in.appendLockShiftToGL(dst, slot)
		in.GL = slot
		return in.emitInSlot(dst, cs, code, false)
	}

	return dst
}

// appendLockShiftToGL emits the control sequence that moves GL to slot:
// SI/SO for G0/G1, ESC n/ESC o (LS2/LS3) for G2/G3.
func (in *Input) appendLockShiftToGL(dst []byte, slot int) []byte {
	switch slot {
	case 0:
		return append(dst, si)
	case 1:
		return append(dst, so)
	case 2:
		return append(dst, esc, lsLS2)
	default:
		return append(dst, esc, lsLS3)
	}
}

// singleByteForCode renders a single-byte charset's 0-based code as a wire
// byte, mirroring output.go's singleByteCode in reverse: T94 sets live at
// 0x21+code (GL) or that same value with the high bit set (GR); T96 sets
// live at 0xA0+code (GR) or with the high bit stripped (GL, 7-bit mode).
func singleByteForCode(kind charfilter.Kind, code int, useGR bool) byte {
	if kind == charfilter.T96 {
		b := byte(0xA0 + code)
		if !useGR {
			b &^= 0x80
		}
		return b
	}
	b := byte(0x21 + code)
	if useGR {
		b |= 0x80
	}
	return b
}

// splitDoubleByteCode reverses the row*width+col flattening doubleByteCode
// (package output.go) and backend/library.go's double-byte loader use, for
// the kind's row/column width.
func splitDoubleByteCode(kind charfilter.Kind, code int) (row, col int) {
	width := doubleByteWidth(kind)
	return code / width, code % width
}

// rowColBytes is doubleByteCode's (output.go) inverse: it rebuilds the wire
// byte pair for a row/column pair under kind's addressing convention.
func rowColBytes(kind charfilter.Kind, row, col int, useGR bool) (byte, byte) {
	if kind == charfilter.T94192 {
		lead := byte(0x21 + row)
		if useGR {
			lead |= 0x80
		}
		if col < 63 {
			return lead, byte(0x40 + col)
		}
		return lead, byte(0xA1 + (col - 63))
	}
	base := byte(0x21)
	if useGR {
		base = 0xA1
	}
	return base + byte(row), base + byte(col)
}

// doubleByteWidth matches package backend's library-loader width convention:
// 94 for T9494, 96 for T9696, 192 for T94192.
func doubleByteWidth(kind charfilter.Kind) int {
	switch kind {
	case charfilter.T9696:
		return 96
	case charfilter.T94192:
		return 192
	default:
		return 94
	}
}
