package keyboard

import (
	"haldenos/kernel"
	"haldenos/kernel/cpu"
	"haldenos/kernel/kfmt"
	"io"
)

const (
	dataPort   = 0x60
	statusPort = 0x64

	// statusOutputFull is set while the controller holds a byte for the
	// CPU in its output buffer.
	statusOutputFull = 1 << 0

	breakCodeBit = 0x80

	// drainLimit caps the number of stale bytes discarded at init.
	drainLimit = 16
)

var (
	portReadByteFn = cpu.PortReadByte

	// ps2 is the statically allocated controller returned by the probe.
	ps2 PS2

	probes = [...]ProbeFn{
		probeForPS2,
	}
)

// PS2 polls the legacy 8042 keyboard controller. Interrupts are never
// enabled; callers spin on the status register instead.
type PS2 struct {
	drained uint32
}

// HasData reports whether a scancode is waiting in the controller output
// buffer.
func (kbd *PS2) HasData() bool {
	return portReadByteFn(statusPort)&statusOutputFull != 0
}

// TryReadScancode returns the pending scancode if one is available.
func (kbd *PS2) TryReadScancode() (byte, bool) {
	if !kbd.HasData() {
		return 0, false
	}

	return portReadByteFn(dataPort), true
}

// ReadScancode blocks until the controller reports a scancode and returns it.
// The wait is unbounded.
func (kbd *PS2) ReadScancode() byte {
	for {
		if sc, ok := kbd.TryReadScancode(); ok {
			return sc
		}
	}
}

// DriverName returns the name of this driver.
func (kbd *PS2) DriverName() string {
	return "ps2_keyboard"
}

// DriverVersion returns the version of this driver.
func (kbd *PS2) DriverVersion() (uint16, uint16, uint16) {
	return 0, 1, 0
}

// DriverInit discards any bytes left in the controller output buffer by the
// firmware so that the first read returns a fresh keystroke.
func (kbd *PS2) DriverInit(w io.Writer) *kernel.Error {
	kbd.drained = 0
	for ; kbd.drained < drainLimit; kbd.drained++ {
		if _, ok := kbd.TryReadScancode(); !ok {
			break
		}
	}

	if kbd.drained != 0 {
		kfmt.Fprintf(w, "discarded %d stale bytes\n", kbd.drained)
	}

	return nil
}

// HWProbes returns the probe functions that the hal package uses to detect
// keyboard controllers. The returned slice aliases a static array.
func HWProbes() []ProbeFn {
	return probes[:]
}

// probeForPS2 reports a controller unless the status port floats high, which
// is what an absent 8042 looks like on the ISA bus.
func probeForPS2() Device {
	if portReadByteFn(statusPort) == 0xff {
		return nil
	}

	return &ps2
}
