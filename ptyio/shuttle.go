package ptyio

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/badu/charfilter/iso2022"
	"github.com/badu/charfilter/logging"
)

// Shuttle copies bytes between user and child, translating each direction
// through its iso2022.State, until ctx is cancelled, the child's fd hits
// EOF, or a read fails. This is the Go shape of sys.c's waitForInput() plus
// the per-direction read/convert/write loop luit.c's main() drives around
// it, collapsed into one blocking unix.Select call per iteration rather
// than goroutines per direction, keeping translation strictly ordered the
// way a single ISO 2022 state machine requires.
func Shuttle(ctx context.Context, user, child *os.File, in, out *iso2022.State) error {
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)

	chld := make(chan os.Signal, 1)
	signal.Notify(chld, syscall.SIGCHLD)
	defer signal.Stop(chld)

	userFd := int(user.Fd())
	childFd := int(child.Fd())
	nfd := userFd
	if childFd > nfd {
		nfd = childFd
	}

	inPump := iso2022.NewInput(in)
	outPump := iso2022.NewOutput(out)

	buf := make([]byte, 4096)
	var translated []byte
	childExited := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-winch:
			// cols/rows stay in the platform getWinSize/setWinSize pair's
			// native shape here; charfilter.WindowSize is the public
			// Terminal.WinSize()/SetWinSize() shape used outside this
			// package (cmd/luit's initial size propagation).
			if cols, rows, err := getWinSize(user.Fd()); err == nil {
				if err := setWinSize(child.Fd(), cols, rows); err != nil {
					logging.Warning("propagate window size", map[string]interface{}{"error": err.Error()})
				}
			}
			continue
		case <-chld:
			// Acted on next iteration, not here: a read on childFd still
			// drains whatever the child wrote before exiting.
			childExited = true
			continue
		default:
		}

		rset := &unix.FdSet{}
		fdSet(rset, userFd)
		fdSet(rset, childFd)

		n, err := unix.Select(nfd+1, rset, nil, nil, nil)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return err
		}
		if n == 0 {
			continue
		}

		if fdIsSet(rset, userFd) {
			nr, err := user.Read(buf)
			if err != nil {
				return err
			}
			translated = inPump.Encode(translated[:0], buf[:nr])
			if len(translated) > 0 {
				if _, err := child.Write(translated); err != nil {
					return err
				}
			}
		}

		if fdIsSet(rset, childFd) {
			nr, err := child.Read(buf)
			if err != nil || nr == 0 {
				return err
			}
			translated = outPump.Decode(translated[:0], buf[:nr])
			if len(translated) > 0 {
				if _, err := user.Write(translated); err != nil {
					return err
				}
			}
		}

		if childExited {
			return nil
		}
	}
}

// fdSet/fdIsSet assume a 64-bit FdSet word (true on every 64-bit target
// this package's build tags cover); 32-bit platforms would need a 32-wide
// shift instead.
func fdSet(set *unix.FdSet, fd int) {
	set.Bits[fd/64] |= 1 << (uint(fd) % 64)
}

func fdIsSet(set *unix.FdSet, fd int) bool {
	return set.Bits[fd/64]&(1<<(uint(fd)%64)) != 0
}
