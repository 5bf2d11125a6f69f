package main

import (
	"io"

	"github.com/gdamore/tcell/v2"
)

// pumpKeys turns tcell key events into the bytes a raw host terminal would
// send and writes them to w, one byte per key. It returns nil once the screen
// is finalized or after forwarding Ctrl-C or Ctrl-D.
func pumpKeys(screen tcell.Screen, w io.Writer) error {
	var buf [1]byte

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			b, ok := hostByte(ev)
			if !ok {
				continue
			}

			buf[0] = b
			if _, err := w.Write(buf[:]); err != nil {
				return err
			}

			if b == hostCtrlC || b == hostCtrlD {
				return nil
			}
		}
	}
}

// hostByte maps a key event to a host byte. Keys with no ASCII equivalent are
// reported as not ok.
func hostByte(ev *tcell.EventKey) (byte, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		if r := ev.Rune(); r < 0x80 {
			return byte(r), true
		}
	case tcell.KeyEnter:
		return '\n', true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return hostDEL, true
	case tcell.KeyCtrlC:
		return hostCtrlC, true
	case tcell.KeyCtrlD:
		return hostCtrlD, true
	}

	return 0, false
}
