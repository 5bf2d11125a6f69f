package console

import (
	"haldenos/kernel"
	"haldenos/kernel/hal/multiboot"
	"haldenos/kernel/kfmt"
	"io"
	"unsafe"
)

const (
	// Legacy VGA mode 0x3 settings used when the bootloader does not
	// report a framebuffer.
	defaultColumns    = 80
	defaultRows       = 25
	defaultFbPhysAddr = 0xb8000

	// CRT controller index and data ports.
	crtcIndexPort = 0x3d4
	crtcDataPort  = 0x3d5

	// CRT controller registers holding the cursor location.
	crtcCursorLocHigh = 0x0e
	crtcCursorLocLow  = 0x0f

	maxColorIndex = 15
)

var (
	// egaConsole is the statically allocated console instance returned by
	// the probe; there is no heap when the hal runs.
	egaConsole VgaTextConsole

	errNoFramebuffer = &kernel.Error{Module: "vga_text_console", Message: "framebuffer address not set"}
)

// VgaTextConsole implements an EGA-compatible 80x25 text console using VGA
// mode 0x3.
//
// Each character in the console framebuffer is represented using two bytes,
// a byte for the character ASCII code and a byte that encodes the foreground
// and background colors (4 bits for each).
//
// The default settings for the console are:
//   - light gray text (color 7) on black background (color 0).
//   - space as the clear character
type VgaTextConsole struct {
	width  uint32
	height uint32

	fbPhysAddr uintptr
	fb         []uint16

	defaultFg uint8
	defaultBg uint8
	clearChar uint16
}

// Init configures the console dimensions and framebuffer address. The
// framebuffer is not touched until DriverInit is invoked.
func (cons *VgaTextConsole) Init(columns, rows uint32, fbPhysAddr uintptr) {
	cons.width = columns
	cons.height = rows
	cons.fbPhysAddr = fbPhysAddr
	cons.fb = nil
	cons.clearChar = uint16(' ')

	// light gray text on black background
	cons.defaultFg = 7
	cons.defaultBg = 0
}

// Dimensions returns the console width and height in characters.
func (cons *VgaTextConsole) Dimensions() (uint32, uint32) {
	return cons.width, cons.height
}

// DefaultColors returns the default foreground and background colors
// used by this console.
func (cons *VgaTextConsole) DefaultColors() (fg uint8, bg uint8) {
	return cons.defaultFg, cons.defaultBg
}

// Fill sets the contents of the specified rectangular region to the requested
// color. Both x and y coordinates are 1-based.
func (cons *VgaTextConsole) Fill(x, y, width, height uint32, fg, bg uint8) {
	var (
		clr                  = (((uint16(bg) << 4) | uint16(fg)) << 8) | cons.clearChar
		rowOffset, colOffset uint32
	)

	// clip rectangle
	if x == 0 {
		x = 1
	} else if x >= cons.width {
		x = cons.width
	}

	if y == 0 {
		y = 1
	} else if y >= cons.height {
		y = cons.height
	}

	if x+width-1 > cons.width {
		width = cons.width - x + 1
	}

	if y+height-1 > cons.height {
		height = cons.height - y + 1
	}

	rowOffset = ((y - 1) * cons.width) + (x - 1)
	for ; height > 0; height, rowOffset = height-1, rowOffset+cons.width {
		for colOffset = rowOffset; colOffset < rowOffset+width; colOffset++ {
			cons.fb[colOffset] = clr
		}
	}
}

// Scroll moves every row up by lines rows, discarding the top rows. The
// uncovered bottom rows keep their old contents until the caller fills them.
func (cons *VgaTextConsole) Scroll(lines uint32) {
	if lines == 0 || lines > cons.height {
		return
	}

	copy(cons.fb, cons.fb[lines*cons.width:cons.height*cons.width])
}

// Write a char to the specified location. If fg or bg exceed the supported
// colors for this console, they will be set to their default value. Both x and
// y coordinates are 1-based
func (cons *VgaTextConsole) Write(ch byte, fg, bg uint8, x, y uint32) {
	if x < 1 || x > cons.width || y < 1 || y > cons.height {
		return
	}

	if fg > maxColorIndex {
		fg = cons.defaultFg
	}
	if bg > maxColorIndex {
		bg = cons.defaultBg
	}

	cons.fb[((y-1)*cons.width)+(x-1)] = (((uint16(bg) << 4) | uint16(fg)) << 8) | uint16(ch)
}

// SetCursor programs the CRT controller cursor location registers with the
// linear offset of (x, y). Both coordinates are 1-based; off-screen
// locations are ignored.
func (cons *VgaTextConsole) SetCursor(x, y uint32) {
	if x < 1 || x > cons.width || y < 1 || y > cons.height {
		return
	}

	pos := uint16((y-1)*cons.width + (x - 1))

	portWriteByteFn(crtcIndexPort, crtcCursorLocLow)
	portWriteByteFn(crtcDataPort, uint8(pos&0xff))
	portWriteByteFn(crtcIndexPort, crtcCursorLocHigh)
	portWriteByteFn(crtcDataPort, uint8(pos>>8))
}

// DriverName returns the name of this driver.
func (cons *VgaTextConsole) DriverName() string {
	return "vga_text_console"
}

// DriverVersion returns the version of this driver.
func (cons *VgaTextConsole) DriverVersion() (uint16, uint16, uint16) {
	return 0, 1, 0
}

// DriverInit initializes this driver. The framebuffer is identity-mapped so
// the physical address is used as-is.
func (cons *VgaTextConsole) DriverInit(w io.Writer) *kernel.Error {
	if cons.fbPhysAddr == 0 {
		return errNoFramebuffer
	}

	cons.fb = unsafe.Slice((*uint16)(unsafe.Pointer(cons.fbPhysAddr)), cons.width*cons.height)

	kfmt.Fprintf(w, "%dx%d text mode, framebuffer at 0x%x\n", cons.width, cons.height, cons.fbPhysAddr)

	return nil
}

// probeForVgaTextConsole checks for the presence of a vga text console. When
// the bootloader did not report a framebuffer the legacy 80x25 mode 0x3
// layout is assumed.
func probeForVgaTextConsole() Device {
	fbInfo := getFramebufferInfoFn()
	switch {
	case fbInfo == nil:
		egaConsole.Init(defaultColumns, defaultRows, defaultFbPhysAddr)
	case fbInfo.Type == multiboot.FramebufferTypeEGA:
		egaConsole.Init(fbInfo.Width, fbInfo.Height, uintptr(fbInfo.PhysAddr))
	default:
		return nil
	}

	return &egaConsole
}
