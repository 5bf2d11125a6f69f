package shell

import "haldenos/device/keyboard"

// ScancodeReader is implemented by keyboard devices that can be polled for
// raw set-1 scancodes.
type ScancodeReader interface {
	// ReadScancode blocks until a scancode is available.
	ReadScancode() byte
}

// Editor turns a stream of scancodes into command lines, echoing accepted
// characters to a terminal.
type Editor struct {
	src  ScancodeReader
	term Terminal
	line LineBuffer

	// lastScancode is the previous byte read from the keyboard, make or
	// break. A byte equal to it is discarded, which also swallows a fast
	// double press of the same key.
	lastScancode byte

	// Pace is invoked after every make code that gets past the filters
	// except Enter. It is nil when no pacing is required.
	Pace func()
}

// Attach connects the editor to its input device and echo terminal.
func (e *Editor) Attach(src ScancodeReader, term Terminal) {
	e.src = src
	e.term = term
}

// ReadLine polls the keyboard until Enter is pressed and returns the edited
// line. The returned slice aliases the editor buffer and is only valid until
// the next call.
func (e *Editor) ReadLine() []byte {
	e.line.Reset()

	for {
		sc := e.src.ReadScancode()
		if sc == e.lastScancode {
			continue
		}
		e.lastScancode = sc

		if keyboard.IsBreak(sc) {
			continue
		}

		ch, _ := keyboard.Translate(sc)
		switch {
		case ch == '\n':
			e.term.WriteByte('\n')
			return e.line.Bytes()
		case ch == '\b':
			if e.line.Backspace() {
				e.term.EraseBack()
			}
		case ch != 0:
			if e.line.Append(ch) {
				e.term.WriteByte(ch)
			}
		}

		if e.Pace != nil {
			e.Pace()
		}
	}
}
