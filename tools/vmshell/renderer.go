package main

import (
	"github.com/gdamore/tcell/v2"
)

//go:generate mockgen -source=renderer.go -destination=mock_renderer_test.go -package=main

// Renderer presents the contents of a Screen to the host.
type Renderer interface {
	Render(s *Screen) error
}

// vgaPalette maps the 16 VGA text colors to the matching ANSI palette
// entries. VGA swaps the red and blue bits relative to ANSI.
var vgaPalette = [16]int{
	0, 4, 2, 6, 1, 5, 3, 7,
	8, 12, 10, 14, 9, 13, 11, 15,
}

// vgaStyle returns the tcell style for a VGA attribute pair.
func vgaStyle(fg, bg uint8) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(vgaPalette[fg&0xf])).
		Background(tcell.PaletteColor(vgaPalette[bg&0xf]))
}

// tcellRenderer draws a Screen onto a tcell screen, one cell per character,
// and mirrors the hardware cursor.
type tcellRenderer struct {
	screen tcell.Screen
}

func newTcellRenderer(screen tcell.Screen) *tcellRenderer {
	return &tcellRenderer{screen: screen}
}

func (r *tcellRenderer) Render(s *Screen) error {
	for y := uint32(1); y <= s.height; y++ {
		for x := uint32(1); x <= s.width; x++ {
			c := s.cells[s.offset(x, y)]
			r.screen.SetContent(int(x-1), int(y-1), rune(c.ch), nil, vgaStyle(c.fg, c.bg))
		}
	}

	cx, cy := s.Cursor()
	r.screen.ShowCursor(int(cx-1), int(cy-1))
	r.screen.Show()
	return nil
}

// nopRenderer is used for script runs where only the final transcript is
// printed.
type nopRenderer struct{}

func (nopRenderer) Render(*Screen) error { return nil }
