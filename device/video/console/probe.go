package console

import (
	"haldenos/kernel/cpu"
	"haldenos/kernel/hal/multiboot"
)

// ProbeFn checks for the presence of console hardware and returns a device
// for it or nil if nothing was found.
type ProbeFn func() Device

var (
	portWriteByteFn      = cpu.PortWriteByte
	getFramebufferInfoFn = multiboot.GetFramebufferInfo

	probes = [...]ProbeFn{
		probeForVgaTextConsole,
	}
)

// HWProbes returns the probe functions that the hal package uses to detect
// console hardware. The returned slice aliases a static array.
func HWProbes() []ProbeFn {
	return probes[:]
}
