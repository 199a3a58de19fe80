package iso2022

import "github.com/badu/charfilter"

// escStatus is the result of feeding one more byte into the pending escape
// buffer.
type escStatus int

const (
	escIncomplete escStatus = iota // needs more bytes
	escApplied                     // a complete, recognised sequence was applied
	escInvalid                     // buffered bytes do not form a sequence this state accepts
)

// ECMA-35 locking-shift finals, spec.md §4.1 ("ESC n, ESC o, ESC |, ESC },
// ESC ~ — locking shifts GL/GR to G2/G3"), filled out to the standard's full
// five-sequence set (LS1R also shifts GR, to G1).
const (
	lsLS2  = 'n' // GL <- G2
	lsLS3  = 'o' // GL <- G3
	lsLS3R = '|' // GR <- G3
	lsLS2R = '}' // GR <- G2
	lsLS1R = '~' // GR <- G1
)

// stepEscape advances the escape-assembly state machine by examining
// s.escape (which always starts with ESC, 0x1B). It returns escIncomplete
// while more bytes are needed, escApplied once a recognised sequence has
// taken effect, or escInvalid when the buffered bytes cannot be completed
// into one (the caller then passes them through as literal bytes, per
// spec.md §7's "malformed input is silently dropped/passed through, never
// fatal").
func (s *State) stepEscape() escStatus {
	e := s.escape
	if len(e) < 2 {
		return escIncomplete
	}

	switch e[1] {
	case '(':
		return s.designate(e, 2, 0, charfilter.T94)
	case ')':
		return s.designate(e, 2, 1, charfilter.T94)
	case '*':
		return s.designate(e, 2, 2, charfilter.T94)
	case '+':
		return s.designate(e, 2, 3, charfilter.T94)
	case '-':
		return s.designate(e, 2, 1, charfilter.T96)
	case '.':
		return s.designate(e, 2, 2, charfilter.T96)
	case '/':
		return s.designate(e, 2, 3, charfilter.T96)
	case '$':
		return s.stepDollar(e)
	case lsLS2:
		return s.applyLockingShift(true, 2)
	case lsLS3:
		return s.applyLockingShift(true, 3)
	case lsLS3R:
		return s.applyLockingShift(false, 3)
	case lsLS2R:
		return s.applyLockingShift(false, 2)
	case lsLS1R:
		return s.applyLockingShift(false, 1)
	case 'N':
		return s.applySingleShift(2)
	case 'O':
		return s.applySingleShift(3)
	default:
		return escInvalid
	}
}

// stepDollar handles the "ESC $ ..." family: 94x94 sets into G0..G3, 96x96
// sets into G1..G3, and the classic three-final short form "ESC $ F"
// (F in A, B, C) which designates 94x94 straight into G0 without an
// intermediate byte (spec.md §4.1).
func (s *State) stepDollar(e []byte) escStatus {
	if len(e) < 3 {
		return escIncomplete
	}
	switch e[2] {
	case '(':
		return s.designate(e, 3, 0, charfilter.T9494)
	case ')':
		return s.designate(e, 3, 1, charfilter.T9494)
	case '*':
		return s.designate(e, 3, 2, charfilter.T9494)
	case '+':
		return s.designate(e, 3, 3, charfilter.T9494)
	case '-':
		return s.designate(e, 3, 1, charfilter.T9696)
	case '.':
		return s.designate(e, 3, 2, charfilter.T9696)
	case '/':
		return s.designate(e, 3, 3, charfilter.T9696)
	case 'A', 'B', 'C':
		// Short form: e[2] is itself the final byte.
		if s.Flags.DisableSelect {
			return escInvalid
		}
		s.G[0] = s.Registry.GetByDesignator(e[2], charfilter.T9494)
		return escApplied
	default:
		return escInvalid
	}
}

// designate expects the final byte at e[finalIdx]; if not yet present it
// reports escIncomplete so the caller keeps buffering.
func (s *State) designate(e []byte, finalIdx, slot int, kind charfilter.Kind) escStatus {
	if len(e) <= finalIdx {
		return escIncomplete
	}
	if s.Flags.DisableSelect {
		return escInvalid
	}
	final := e[finalIdx]
	s.G[slot] = s.Registry.GetByDesignator(final, kind)
	return escApplied
}

func (s *State) applyLockingShift(gl bool, slot int) escStatus {
	if s.Flags.DisableLockingShift {
		return escInvalid
	}
	if gl {
		s.GL = slot
	} else {
		s.GR = slot
	}
	return escApplied
}

func (s *State) applySingleShift(slot int) escStatus {
	if s.Flags.DisableSingleShift {
		return escInvalid
	}
	s.SingleShift = slot
	return escApplied
}
