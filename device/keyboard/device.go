package keyboard

import "haldenos/device"

// Device is implemented by keyboard drivers that deliver raw set-1 scancodes.
type Device interface {
	device.Driver

	// ReadScancode blocks until a scancode is available and returns it.
	ReadScancode() byte

	// TryReadScancode returns a pending scancode without blocking.
	TryReadScancode() (byte, bool)
}

// ProbeFn checks for the presence of a keyboard controller and returns a
// device for it or nil if none was found.
type ProbeFn func() Device
