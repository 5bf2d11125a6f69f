package tty

import (
	"haldenos/device"
	"haldenos/device/video/console"
	"io"
)

// Device is implemented by objects that can be used as a terminal device.
type Device interface {
	device.Driver
	io.Writer
	io.ByteWriter
	io.StringWriter

	// AttachTo connects a TTY to a console instance.
	AttachTo(console.Device)

	// Clear blanks the terminal using the current colors and moves the
	// cursor to the top-left corner.
	Clear()

	// EraseBack moves the cursor one column to the left and blanks the
	// character under it. It never moves the cursor to the previous line.
	EraseBack()

	// SetColor changes the colors used by subsequent writes.
	SetColor(fg, bg uint8)

	// ResetColor restores the default colors of the attached console.
	ResetColor()
}
