package main

import (
	"io"
	"os"

	"github.com/badu/charfilter/iso2022"
)

// runConverter is the -c path: a plain stdin -> stdout copy through the
// output-direction pump, no pty, no child process, the Go shape of
// luit.c's condom()/convert() split for "-c" in main().
func runConverter(out *iso2022.State) error {
	pump := iso2022.NewOutput(out)
	buf := make([]byte, 4096)
	var dst []byte
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			dst = pump.Decode(dst[:0], buf[:n])
			if len(dst) > 0 {
				if _, werr := os.Stdout.Write(dst); werr != nil {
					return werr
				}
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}
