package tty

import (
	"haldenos/device/video/console"
	"haldenos/kernel"
	"io"
)

// VT implements a terminal that writes straight through to a console device;
// the console framebuffer is its only backing store. The terminal interprets
// the following special characters:
//   - \r (carriage-return)
//   - \n (line-feed)
//   - \b (backspace; same as EraseBack)
//
// Every operation that moves the cursor also updates the console's hardware
// cursor.
type VT struct {
	cons console.Device

	// Terminal dimensions
	width  uint32
	height uint32

	defaultFg, curFg uint8
	defaultBg, curBg uint8
	cursorX          uint32
	cursorY          uint32
}

// AttachTo connects a TTY to a console instance.
func (t *VT) AttachTo(cons console.Device) {
	if cons == nil {
		return
	}

	t.cons = cons
	t.width, t.height = cons.Dimensions()
	t.defaultFg, t.defaultBg = cons.DefaultColors()
	t.curFg, t.curBg = t.defaultFg, t.defaultBg
	t.cursorX, t.cursorY = 1, 1
	t.syncCursor()
}

// Clear fills the terminal with blanks using the current colors and moves the
// cursor to (1, 1).
func (t *VT) Clear() {
	if t.cons == nil {
		return
	}

	t.cons.Fill(1, 1, t.width, t.height, t.curFg, t.curBg)
	t.cursorX, t.cursorY = 1, 1
	t.syncCursor()
}

// SetColor changes the colors used by subsequent writes.
func (t *VT) SetColor(fg, bg uint8) {
	t.curFg, t.curBg = fg, bg
}

// ResetColor restores the default colors of the attached console.
func (t *VT) ResetColor() {
	t.curFg, t.curBg = t.defaultFg, t.defaultBg
}

// Write implements io.Writer.
func (t *VT) Write(data []byte) (int, error) {
	for count, b := range data {
		err := t.WriteByte(b)
		if err != nil {
			return count, err
		}
	}

	return len(data), nil
}

// WriteString implements io.StringWriter. Ranging over the bytes of s avoids
// the []byte conversion.
func (t *VT) WriteString(s string) (int, error) {
	for count := 0; count < len(s); count++ {
		if err := t.WriteByte(s[count]); err != nil {
			return count, err
		}
	}

	return len(s), nil
}

// WriteByte implements io.ByteWriter.
func (t *VT) WriteByte(b byte) error {
	if t.cons == nil {
		return io.ErrClosedPipe
	}

	switch b {
	case '\r':
		t.cursorX = 1
	case '\n':
		t.lf()
	case '\b':
		t.EraseBack()
		return nil
	default:
		t.cons.Write(b, t.curFg, t.curBg, t.cursorX, t.cursorY)

		// Advance x position and handle wrapping when the cursor reaches
		// the end of the current line
		t.cursorX++
		if t.cursorX > t.width {
			t.lf()
		}
	}

	t.syncCursor()
	return nil
}

// EraseBack blanks the character to the left of the cursor and moves the
// cursor onto it. At the first column this is a no-op.
func (t *VT) EraseBack() {
	if t.cons == nil || t.cursorX <= 1 {
		return
	}

	t.cursorX--
	t.cons.Write(' ', t.curFg, t.curBg, t.cursorX, t.cursorY)
	t.syncCursor()
}

// lf moves the cursor to the start of the next line scrolling the console
// contents up by one line if the cursor is already on the last line.
func (t *VT) lf() {
	t.cursorX = 1

	if t.cursorY < t.height {
		t.cursorY++
		return
	}

	t.cons.Scroll(1)
	t.cons.Fill(1, t.height, t.width, 1, t.curFg, t.curBg)
	t.cursorY = t.height
}

func (t *VT) syncCursor() {
	t.cons.SetCursor(t.cursorX, t.cursorY)
}

// DriverName returns the name of this driver.
func (t *VT) DriverName() string {
	return "vt"
}

// DriverVersion returns the version of this driver.
func (t *VT) DriverVersion() (uint16, uint16, uint16) {
	return 0, 1, 0
}

// DriverInit initializes this driver.
func (t *VT) DriverInit(_ io.Writer) *kernel.Error { return nil }
