package main

import (
	"context"
	"fmt"

	"github.com/badu/charfilter/config"
	"github.com/badu/charfilter/iso2022"
	"github.com/badu/charfilter/ptyio"
)

// runShuttle is luit.c's main() pty path: allocate a pty, put the user's
// terminal in raw mode, fork the child behind the slave, then run the byte
// shuttle until the child exits or the user's terminal goes away.
func runShuttle(cfg config.Config, childName string, out, in *iso2022.State) error {
	term, err := ptyio.OpenTerminal()
	if err != nil {
		return fmt.Errorf("luit: %w", err)
	}
	defer term.Restore()

	pty, err := ptyio.Open()
	if err != nil {
		return fmt.Errorf("luit: %w", err)
	}
	defer pty.Close()

	if size, err := term.WinSize(); err == nil {
		_ = ptyio.SetWinSize(pty.Master, size)
	}

	path, argv := childCommand(cfg, childName)
	cmd, err := ptyio.Spawn(pty, path, argv, nil)
	if err != nil {
		return fmt.Errorf("luit: %w", err)
	}

	ctx := context.Background()
	shuttleErr := ptyio.Shuttle(ctx, term.File(), pty.Master, in, out)

	if cfg.ExitOnChild {
		_ = cmd.Process.Kill()
	}
	cmd.Wait()

	return shuttleErr
}

// childCommand resolves the command to run: the user's explicit argv, or
// $SHELL/a Bourne shell as luit.c falls back to when none is given.
// childName (-argv0) overrides argv[0] only, not the executable looked up.
func childCommand(cfg config.Config, childName string) (path string, args []string) {
	if len(cfg.ChildCommand) == 0 {
		resolved, err := ptyio.LookPath("")
		if err != nil {
			resolved = "/bin/sh"
		}
		return resolved, []string{argv0(resolved, childName)}
	}
	resolved, err := ptyio.LookPath(cfg.ChildCommand[0])
	if err != nil {
		resolved = cfg.ChildCommand[0]
	}
	name := argv0(resolved, childName)
	return resolved, append([]string{name}, cfg.ChildCommand[1:]...)
}

func argv0(path, override string) string {
	if override != "" {
		return override
	}
	return path
}
