package main

import (
	"io"
	"strings"

	"haldenos/kernel"
)

const (
	screenWidth  = 80
	screenHeight = 25

	defaultFg = 7
	defaultBg = 0
)

type cell struct {
	ch     byte
	fg, bg uint8
}

// Screen is an in-memory text mode console. It mirrors the VGA text console
// closely enough for the VT and the shell to run on top of it unmodified.
// Rows that scroll off the top are kept so that script runs can print a full
// transcript.
type Screen struct {
	width, height    uint32
	cells            []cell
	cursorX, cursorY uint32

	scrollback []string
}

// NewScreen returns a blank screen with the given dimensions in characters.
func NewScreen(width, height uint32) *Screen {
	s := &Screen{
		width:   width,
		height:  height,
		cells:   make([]cell, width*height),
		cursorX: 1,
		cursorY: 1,
	}
	s.Fill(1, 1, width, height, defaultFg, defaultBg)
	return s
}

// DriverName implements device.Driver.
func (s *Screen) DriverName() string {
	return "vmshell_screen"
}

// DriverVersion implements device.Driver.
func (s *Screen) DriverVersion() (uint16, uint16, uint16) {
	return 0, 1, 0
}

// DriverInit implements device.Driver.
func (s *Screen) DriverInit(_ io.Writer) *kernel.Error {
	return nil
}

// Dimensions implements console.Device.
func (s *Screen) Dimensions() (uint32, uint32) {
	return s.width, s.height
}

// DefaultColors implements console.Device.
func (s *Screen) DefaultColors() (uint8, uint8) {
	return defaultFg, defaultBg
}

// Fill implements console.Device. The region is clipped to the screen.
func (s *Screen) Fill(x, y, width, height uint32, fg, bg uint8) {
	if x == 0 || y == 0 || x > s.width || y > s.height {
		return
	}

	xEnd := min(x+width-1, s.width)
	yEnd := min(y+height-1, s.height)
	for fy := y; fy <= yEnd; fy++ {
		for fx := x; fx <= xEnd; fx++ {
			s.cells[s.offset(fx, fy)] = cell{' ', fg, bg}
		}
	}
}

// Scroll implements console.Device. Rows that leave the screen are appended
// to the scrollback.
func (s *Screen) Scroll(lines uint32) {
	if lines == 0 || lines > s.height {
		return
	}

	for y := uint32(1); y <= lines; y++ {
		s.scrollback = append(s.scrollback, s.Row(y))
	}
	copy(s.cells, s.cells[lines*s.width:])
}

// Write implements console.Device.
func (s *Screen) Write(ch byte, fg, bg uint8, x, y uint32) {
	if x == 0 || y == 0 || x > s.width || y > s.height {
		return
	}
	s.cells[s.offset(x, y)] = cell{ch, fg, bg}
}

// SetCursor implements console.Device.
func (s *Screen) SetCursor(x, y uint32) {
	if x == 0 || y == 0 || x > s.width || y > s.height {
		return
	}
	s.cursorX, s.cursorY = x, y
}

// Cursor returns the hardware cursor position.
func (s *Screen) Cursor() (uint32, uint32) {
	return s.cursorX, s.cursorY
}

// Row returns the text of row y without trailing blanks.
func (s *Screen) Row(y uint32) string {
	var sb strings.Builder
	for x := uint32(1); x <= s.width; x++ {
		sb.WriteByte(s.cells[s.offset(x, y)].ch)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Snapshot returns the visible rows with trailing blank rows removed.
func (s *Screen) Snapshot() []string {
	rows := make([]string, 0, s.height)
	for y := uint32(1); y <= s.height; y++ {
		rows = append(rows, s.Row(y))
	}
	return trimBlankRows(rows)
}

// Transcript returns every row that scrolled off the screen followed by the
// visible rows.
func (s *Screen) Transcript() []string {
	rows := append([]string(nil), s.scrollback...)
	return trimBlankRows(append(rows, s.Snapshot()...))
}

func (s *Screen) offset(x, y uint32) uint32 {
	return (y-1)*s.width + (x - 1)
}

func trimBlankRows(rows []string) []string {
	end := len(rows)
	for end > 0 && rows[end-1] == "" {
		end--
	}
	return rows[:end]
}
