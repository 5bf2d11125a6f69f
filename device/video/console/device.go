package console

import "haldenos/device"

// The Device interface is implemented by objects that can function as system
// consoles.
type Device interface {
	device.Driver

	// Dimensions returns the width and height of the console in
	// characters.
	Dimensions() (uint32, uint32)

	// DefaultColors returns the default foreground and background colors
	// used by this console.
	DefaultColors() (fg, bg uint8)

	// Fill sets the contents of the specified rectangular region to the
	// requested color. Both x and y coordinates are 1-based (top-left
	// corner has coordinates 1,1).
	Fill(x, y, width, height uint32, fg, bg uint8)

	// Scroll moves the console contents up by the requested number of
	// lines. The caller is responsible for blanking the rows that were
	// uncovered at the bottom.
	Scroll(lines uint32)

	// Write a char to the specified location. Both x and y coordinates are
	// 1-based (top-left corner has coordinates 1,1).
	Write(ch byte, fg, bg uint8, x, y uint32)

	// SetCursor moves the blinking hardware cursor to the specified
	// location. Both x and y coordinates are 1-based.
	SetCursor(x, y uint32)
}
