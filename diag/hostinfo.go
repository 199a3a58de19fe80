package diag

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// HostInfo is the -list-system report: a plain-text host summary (OS,
// kernel, uptime, total/available memory) a modern rewrite plausibly adds
// for support-ticket triage, continuing the teacher's own gopsutil use in
// playground/keys/main.go for a CPU/mem readout. Not present in luit.c,
// which never introspects the host it runs on.
func HostInfo() (string, error) {
	hi, err := host.Info()
	if err != nil {
		return "", fmt.Errorf("diag: host info: %w", err)
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return "", fmt.Errorf("diag: memory info: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Host: %s (%s %s)\n", hi.Hostname, hi.Platform, hi.PlatformVersion)
	fmt.Fprintf(&b, "Kernel: %s %s\n", hi.KernelVersion, hi.KernelArch)
	fmt.Fprintf(&b, "Uptime: %d seconds\n", hi.Uptime)
	fmt.Fprintf(&b, "Memory: %.1f MiB total, %.1f MiB available\n",
		float64(vm.Total)/(1024*1024), float64(vm.Available)/(1024*1024))
	return b.String(), nil
}
