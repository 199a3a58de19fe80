// Package ptyio owns the pty allocation, raw-mode terminal setup and
// SIGWINCH/SIGCHLD plumbing luit.c's sys.c covers, and the select(2)-based
// two-fd byte shuttle that replaces sys.c's waitForInput(). Pty allocation
// and raw-mode get/set are split per build tag across pty_linux.go,
// pty_darwin.go, pty_bsd.go and pty_solaris.go, mirroring the same
// four-way split badu-term/core uses for engine_linux.go, engine_darwin.go,
// engine_bsd.go and engine_solaris.go.
package ptyio

import (
	"fmt"
	"os"
)

// Pty is an allocated pseudo-terminal pair: Master is the controlling end
// this process reads/writes, Name is the slave device path the child
// process opens as its controlling terminal.
type Pty struct {
	Master *os.File
	Name   string
}

// Open allocates a new pty pair, grounded on sys.c's getPty(): open the
// multiplexer device, grant and unlock the slave, and resolve its path.
func Open() (*Pty, error) {
	master, name, err := openPTM()
	if err != nil {
		return nil, fmt.Errorf("ptyio: allocate pty: %w", err)
	}
	return &Pty{Master: master, Name: name}, nil
}

// OpenSlave opens the slave side of p, the device the child process should
// use for its stdin/stdout/stderr and controlling terminal.
func (p *Pty) OpenSlave() (*os.File, error) {
	slave, err := os.OpenFile(p.Name, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("ptyio: open slave %s: %w", p.Name, err)
	}
	if err := pushLineDiscipline(slave); err != nil {
		slave.Close()
		return nil, fmt.Errorf("ptyio: line discipline %s: %w", p.Name, err)
	}
	return slave, nil
}

// Close releases the master end. The slave, once opened by the child, is
// the child's to close.
func (p *Pty) Close() error {
	return p.Master.Close()
}
