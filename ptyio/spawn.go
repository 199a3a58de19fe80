package ptyio

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// Spawn starts path as the pty's controlling process: its stdin/stdout/
// stderr are the pty slave, it gets its own session (Setsid) and that
// slave becomes its controlling terminal (Setctty), the Go shape of
// luit.c's runChild() fork/setsid/TIOCSCTTY/execvp sequence, minus the
// explicit fork since os/exec already does that. argv is the full argument
// vector the child sees, including argv[0] -- which need not equal path,
// to support -argv0.
func Spawn(pty *Pty, path string, argv []string, env []string) (*exec.Cmd, error) {
	slave, err := pty.OpenSlave()
	if err != nil {
		return nil, err
	}
	defer slave.Close()

	cmd := &exec.Cmd{
		Path: path,
		Args: argv,
		Env:  env,
		SysProcAttr: &syscall.SysProcAttr{
			Setsid:  true,
			Setctty: true,
		},
		Stdin:  slave,
		Stdout: slave,
		Stderr: slave,
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("ptyio: start %s: %w", path, err)
	}
	return cmd, nil
}

// LookPath resolves name against PATH, falling back to the caller's shell
// (luit.c defaults the child command to the user's $SHELL, the same
// fallback a bare luit invocation with no command uses).
func LookPath(name string) (string, error) {
	if name == "" {
		if sh := os.Getenv("SHELL"); sh != "" {
			name = sh
		} else {
			name = "/bin/sh"
		}
	}
	return exec.LookPath(name)
}
