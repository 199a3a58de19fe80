package ptyio

import (
	"fmt"
	"os"

	"github.com/badu/charfilter"
)

// Terminal is the user-facing /dev/tty, opened read-write and switched to
// raw mode for the lifetime of the shuttle -- the Go shape of
// core/engine_*.go's internalStart/internalShutdown pair, generalized from
// that package's separate read-only/write-only fds to the single
// read-write fd a byte-shuttling filter needs.
type Terminal struct {
	file  *os.File
	saved *termState
}

// OpenTerminal opens /dev/tty and switches it to raw mode: no echo, no
// canonical line editing, no signal-generating keys, 8-bit clean, blocking
// single-byte reads (VMIN=1, VTIME=0), same flags core/engine_linux.go
// clears.
func OpenTerminal() (*Terminal, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("ptyio: open /dev/tty: %w", err)
	}
	saved, err := setRaw(f.Fd())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("ptyio: set raw mode: %w", err)
	}
	return &Terminal{file: f, saved: saved}, nil
}

// File returns the underlying fd for reading keystrokes and writing the
// decoded child output.
func (t *Terminal) File() *os.File { return t.file }

// Restore returns the terminal to the termios settings OpenTerminal found,
// then closes it -- internalShutdown's job, split per platform where
// Darwin's close-hangs-forever tty driver needs the close backgrounded.
func (t *Terminal) Restore() error {
	err := restore(t.file.Fd(), t.saved)
	if cerr := closeAfterRestore(t.file); err == nil {
		err = cerr
	}
	return err
}

// WinSize reads the terminal's current size as a WindowSize, the shape
// cmd/luit uses for the initial size propagation onto the pty master
// (Shuttle's SIGWINCH handling reads cols/rows directly instead).
func (t *Terminal) WinSize() (charfilter.WindowSize, error) {
	cols, rows, err := getWinSize(t.file.Fd())
	return charfilter.WindowSize{Cols: cols, Rows: rows}, err
}

// SetWinSize propagates size (read from the user's terminal at startup)
// onto another fd, typically a pty master, so the child sees the same
// size.
func SetWinSize(f *os.File, size charfilter.WindowSize) error {
	return setWinSize(f.Fd(), size.Cols, size.Rows)
}
