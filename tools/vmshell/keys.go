package main

import (
	"bufio"
	"errors"
	"io"

	"haldenos/device/keyboard"
)

const (
	scancodeEnter     = 0x1c
	scancodeBackspace = 0x0e

	hostCtrlC = 0x03
	hostCtrlD = 0x04
	hostDEL   = 0x7f
)

// ErrInterrupted is reported when the host user presses Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

// hostKeyboard turns bytes read from the host into the set-1 make and break
// codes a PS/2 keyboard would deliver. Bytes without a key on the US layout
// are dropped.
//
// Once the input ends it keeps delivering Enter key presses so that a line
// being edited is terminated; Err then reports why the input ended.
type hostKeyboard struct {
	in      *bufio.Reader
	pending []byte
	err     error

	// lastCR is set after a carriage return so that the line feed of a
	// CRLF pair does not produce a second Enter.
	lastCR bool

	// onIdle is invoked before blocking on the host input.
	onIdle func()

	log Logger
}

func newHostKeyboard(in io.Reader, log Logger) *hostKeyboard {
	return &hostKeyboard{in: bufio.NewReader(in), log: log}
}

// ReadScancode implements shell.ScancodeReader.
func (k *hostKeyboard) ReadScancode() byte {
	for len(k.pending) == 0 {
		if k.err != nil {
			// Alternate break and make codes so the editor does not treat
			// the repeated Enter as key bounce.
			k.pending = append(k.pending, scancodeEnter|0x80, scancodeEnter)
			break
		}
		k.fill()
	}

	sc := k.pending[0]
	k.pending = k.pending[1:]
	return sc
}

// Err returns the reason the host input ended or nil while it is still open.
func (k *hostKeyboard) Err() error {
	return k.err
}

func (k *hostKeyboard) fill() {
	if k.in.Buffered() == 0 && k.onIdle != nil {
		k.onIdle()
	}

	b, err := k.in.ReadByte()
	if err != nil {
		k.err = err
		return
	}

	afterCR := k.lastCR
	k.lastCR = b == '\r'

	switch b {
	case hostCtrlC:
		k.err = ErrInterrupted
		return
	case hostCtrlD:
		k.err = io.EOF
		return
	case '\n':
		if !afterCR {
			k.press(scancodeEnter)
		}
		return
	case '\r':
		k.press(scancodeEnter)
		return
	case hostDEL, '\b':
		k.press(scancodeBackspace)
		return
	}

	sc, ok := keyboard.Scancode(b)
	if !ok {
		k.log.Debug("dropping host byte without a key", map[string]interface{}{"byte": b})
		return
	}
	k.press(sc)
}

func (k *hostKeyboard) press(sc byte) {
	k.pending = append(k.pending, sc, sc|0x80)
}
