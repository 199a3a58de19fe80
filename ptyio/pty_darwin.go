// +build darwin

package ptyio

// Darwin's tty driver is the same "doesn't wake up in poll/select reliably"
// driver core/engine_darwin.go works around: closeAfterRestore backgrounds
// the close exactly like that file's internalShutdown does, accepting the
// same possible fd/goroutine leak as the documented least-bad option.

import (
	"bytes"
	"fmt"
	"os"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

type termState syscall.Termios

// openPTM allocates a pty pair via /dev/ptmx's BSD ioctls: TIOCPTYGRANT
// fixes slave ownership/permissions, TIOCPTYUNLK unlocks it, TIOCPTYGNAME
// retrieves the slave's path into a fixed buffer.
func openPTM() (*os.File, string, error) {
	master, err := os.OpenFile("/dev/ptmx", os.O_RDWR, 0)
	if err != nil {
		return nil, "", err
	}

	fd := uintptr(master.Fd())
	if _, _, e := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(unix.TIOCPTYGRANT), 0); e != 0 {
		master.Close()
		return nil, "", fmt.Errorf("grant pty: %w", e)
	}
	if _, _, e := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(unix.TIOCPTYUNLK), 0); e != 0 {
		master.Close()
		return nil, "", fmt.Errorf("unlock pty: %w", e)
	}

	var buf [128]byte
	if _, _, e := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(unix.TIOCPTYGNAME), uintptr(unsafe.Pointer(&buf[0]))); e != 0 {
		master.Close()
		return nil, "", fmt.Errorf("pty name: %w", e)
	}
	name := string(buf[:bytes.IndexByte(buf[:], 0)])

	return master, name, nil
}

func setRaw(fd uintptr) (*termState, error) {
	var saved termState
	if _, _, e := syscall.Syscall6(syscall.SYS_IOCTL, fd, uintptr(syscall.TIOCGETA), uintptr(unsafe.Pointer(&saved)), 0, 0, 0); e != 0 {
		return nil, e
	}

	raw := saved
	raw.Iflag &^= syscall.IGNBRK | syscall.BRKINT | syscall.PARMRK | syscall.ISTRIP | syscall.INLCR | syscall.IGNCR | syscall.ICRNL | syscall.IXON
	raw.Oflag &^= syscall.OPOST
	raw.Lflag &^= syscall.ECHO | syscall.ECHONL | syscall.ICANON | syscall.ISIG | syscall.IEXTEN
	raw.Cflag &^= syscall.CSIZE | syscall.PARENB
	raw.Cflag |= syscall.CS8
	raw.Cc[syscall.VMIN] = 1
	raw.Cc[syscall.VTIME] = 0

	if _, _, e := syscall.Syscall6(syscall.SYS_IOCTL, fd, uintptr(syscall.TIOCSETA), uintptr(unsafe.Pointer(&raw)), 0, 0, 0); e != 0 {
		return nil, e
	}
	return &saved, nil
}

func restore(fd uintptr, saved *termState) error {
	if _, _, e := syscall.Syscall6(syscall.SYS_IOCTL, fd, uintptr(syscall.TIOCSETAF), uintptr(unsafe.Pointer(saved)), 0, 0, 0); e != 0 {
		return e
	}
	return nil
}

func closeAfterRestore(f *os.File) error {
	go func() {
		f.Close()
	}()
	return nil
}

func getWinSize(fd uintptr) (cols, rows int, err error) {
	var dim [4]uint16
	if _, _, e := syscall.Syscall6(syscall.SYS_IOCTL, fd, uintptr(syscall.TIOCGWINSZ), uintptr(unsafe.Pointer(&dim[0])), 0, 0, 0); e != 0 {
		return -1, -1, e
	}
	return int(dim[1]), int(dim[0]), nil
}

func setWinSize(fd uintptr, cols, rows int) error {
	dim := [4]uint16{uint16(rows), uint16(cols), 0, 0}
	if _, _, e := syscall.Syscall6(syscall.SYS_IOCTL, fd, uintptr(syscall.TIOCSWINSZ), uintptr(unsafe.Pointer(&dim[0])), 0, 0, 0); e != 0 {
		return e
	}
	return nil
}

// pushLineDiscipline is a no-op on Darwin: the BSD pty driver's slave needs
// no STREAMS module pushes, unlike Solaris's pty(7D).
func pushLineDiscipline(f *os.File) error {
	return nil
}
