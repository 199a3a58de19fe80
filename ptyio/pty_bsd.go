// +build freebsd netbsd openbsd dragonfly

package ptyio

import (
	"fmt"
	"os"
	"strconv"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

type termState syscall.Termios

// openPTM mirrors the Linux path (TIOCGPTN against /dev/ptmx) since modern
// FreeBSD's devfs exposes the same multiplexer/TIOCGPTN pair; unlike Linux
// there is no separate lock to clear.
func openPTM() (*os.File, string, error) {
	master, err := os.OpenFile("/dev/ptmx", os.O_RDWR, 0)
	if err != nil {
		return nil, "", err
	}

	n, err := unix.IoctlGetInt(int(master.Fd()), unix.TIOCGPTN)
	if err != nil {
		master.Close()
		return nil, "", fmt.Errorf("pty number: %w", err)
	}

	return master, "/dev/pts/" + strconv.Itoa(n), nil
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
	return f.Close()
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

// pushLineDiscipline is a no-op on the BSDs: their pty driver's slave needs
// no STREAMS module pushes, unlike Solaris's pty(7D).
func pushLineDiscipline(f *os.File) error {
	return nil
}
