// +build linux

package ptyio

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

type termState struct {
	tio *unix.Termios
}

// openPTM allocates a pty pair through /dev/ptmx: unlock the slave
// (TIOCSPTLCK) and resolve its number (TIOCGPTN) to build /dev/pts/<n>,
// the glibc posix_openpt/grantpt/unlockpt/ptsname sequence without cgo.
func openPTM() (*os.File, string, error) {
	master, err := os.OpenFile("/dev/ptmx", os.O_RDWR, 0)
	if err != nil {
		return nil, "", err
	}

	if err := unix.IoctlSetInt(int(master.Fd()), unix.TIOCSPTLCK, 0); err != nil {
		master.Close()
		return nil, "", fmt.Errorf("unlock pty: %w", err)
	}

	n, err := unix.IoctlGetInt(int(master.Fd()), unix.TIOCGPTN)
	if err != nil {
		master.Close()
		return nil, "", fmt.Errorf("pty number: %w", err)
	}

	return master, "/dev/pts/" + strconv.Itoa(n), nil
}

func setRaw(fd uintptr) (*termState, error) {
	tio, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	if err != nil {
		return nil, err
	}
	saved := &termState{tio: tio}

	raw := &unix.Termios{
		Cflag: tio.Cflag,
		Oflag: tio.Oflag,
		Iflag: tio.Iflag,
		Lflag: tio.Lflag,
		Cc:    tio.Cc,
	}
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(int(fd), unix.TCSETS, raw); err != nil {
		return nil, err
	}
	return saved, nil
}

func restore(fd uintptr, saved *termState) error {
	return unix.IoctlSetTermios(int(fd), unix.TCSETSF, saved.tio)
}

func closeAfterRestore(f *os.File) error {
	return f.Close()
}

func getWinSize(fd uintptr) (cols, rows int, err error) {
	wsz, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return -1, -1, err
	}
	return int(wsz.Col), int(wsz.Row), nil
}

func setWinSize(fd uintptr, cols, rows int) error {
	return unix.IoctlSetWinsize(int(fd), unix.TIOCSWINSZ, &unix.Winsize{
		Row: uint16(rows),
		Col: uint16(cols),
	})
}

// pushLineDiscipline is a no-op on Linux: TIOCGPTN's slave is already a
// fully formed line discipline, unlike Solaris's STREAMS-based pty(7D).
func pushLineDiscipline(f *os.File) error {
	return nil
}
