package tty

// ProbeFn checks for the presence of a terminal and returns a device for it
// or nil if none is available.
type ProbeFn func() Device

var (
	// vt is the statically allocated terminal returned by the probe.
	vt = VT{cursorX: 1, cursorY: 1}

	probes = [...]ProbeFn{
		probeForVT,
	}
)

// HWProbes returns the probe functions that the hal package uses to detect
// TTY devices. The returned slice aliases a static array.
func HWProbes() []ProbeFn {
	return probes[:]
}

func probeForVT() Device {
	return &vt
}
