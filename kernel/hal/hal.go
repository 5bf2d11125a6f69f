package hal

import (
	"haldenos/device/keyboard"
	"haldenos/device/tty"
	"haldenos/device/video/console"
	"haldenos/kernel"
	"haldenos/kernel/kfmt"
	"io"
)

// managedDevices contains the devices discovered by the HAL.
type managedDevices struct {
	activeConsole  console.Device
	activeTTY      tty.Device
	activeKeyboard keyboard.Device
}

var (
	devices managedDevices

	consoleProbesFn  = console.HWProbes
	ttyProbesFn      = tty.HWProbes
	keyboardProbesFn = keyboard.HWProbes

	// logWriter tags driver init output with the driver name and version.
	logWriter kfmt.PrefixWriter
)

// ActiveTTY returns the currently active TTY.
func ActiveTTY() tty.Device {
	return devices.activeTTY
}

// ActiveKeyboard returns the keyboard used for shell input.
func ActiveKeyboard() keyboard.Device {
	return devices.activeKeyboard
}

// DetectHardware probes for consoles, terminals and keyboards, in that order,
// and initializes every device found. The first device of each kind that
// initializes becomes the active one. Once a console and a terminal are both
// active the terminal is attached to the console and kfmt output is
// redirected to it, so the keyboard probe already logs to the screen.
//
// Each device kind has its own typed probe list. Device values must never be
// converted from one interface type to another on this path: the runtime
// itab table is not populated in the kernel.
func DetectHardware() {
	logWriter.Sink = kfmt.GetOutputSink()

	for _, probeFn := range consoleProbesFn() {
		cons := probeFn()
		if cons == nil || !initDriver(cons.DriverName(), cons.DriverVersion, cons.DriverInit) {
			continue
		}

		if devices.activeConsole == nil {
			devices.activeConsole = cons
		}
	}

	for _, probeFn := range ttyProbesFn() {
		term := probeFn()
		if term == nil || !initDriver(term.DriverName(), term.DriverVersion, term.DriverInit) {
			continue
		}

		if devices.activeTTY == nil {
			devices.activeTTY = term
		}
	}

	if devices.activeConsole != nil && devices.activeTTY != nil {
		linkTTYToConsole()
	}

	for _, probeFn := range keyboardProbesFn() {
		kbd := probeFn()
		if kbd == nil || !initDriver(kbd.DriverName(), kbd.DriverVersion, kbd.DriverInit) {
			continue
		}

		if devices.activeKeyboard == nil {
			devices.activeKeyboard = kbd
		}
	}
}

// initDriver runs the init hook of a probed driver. The hook output and the
// outcome are logged with "[hal] name(major.minor.patch): " as the line
// prefix. It returns false if the driver failed to initialize.
func initDriver(name string, version func() (uint16, uint16, uint16), initFn func(io.Writer) *kernel.Error) bool {
	major, minor, patch := version()
	logWriter.SetPrefix("[hal] %s(%d.%d.%d): ", name, major, minor, patch)

	if err := initFn(&logWriter); err != nil {
		kfmt.Fprintf(&logWriter, "init failed: %s\n", err.Message)
		return false
	}

	kfmt.Fprintf(&logWriter, "initialized\n")
	return true
}

// linkTTYToConsole connects the active TTY device to the active console device
// and redirects kfmt output to it.
func linkTTYToConsole() {
	devices.activeTTY.AttachTo(devices.activeConsole)
	kfmt.SetOutputSink(ttyWriter{})
}

// ttyWriter forwards kfmt output to the active TTY.
type ttyWriter struct{}

func (ttyWriter) Write(p []byte) (int, error) {
	return devices.activeTTY.Write(p)
}
