package kmain

import (
	"haldenos/device/keyboard"
	"haldenos/device/tty"
	"haldenos/kernel"
	"haldenos/kernel/cpu"
	"haldenos/kernel/hal"
	"haldenos/kernel/hal/multiboot"
	"haldenos/kernel/kfmt"
	"haldenos/kernel/sysinfo"
	"haldenos/shell"
)

// keyPaceIterations is the number of PAUSE iterations executed after each
// accepted key press.
const keyPaceIterations = 10000

var (
	errKmainReturned = &kernel.Error{Module: "kmain", Message: "Kmain returned"}
	errNoTTY         = &kernel.Error{Module: "kmain", Message: "no terminal detected"}
	errNoKeyboard    = &kernel.Error{Module: "kmain", Message: "no keyboard detected"}

	bootCmdLineValueFn = multiboot.BootCmdLineValue

	// Everything the shell needs is statically allocated as the kernel
	// never initializes a heap.
	info    sysinfo.Info
	session shell.Session
	term    terminal
	keys    keyboardReader
)

// Kmain is the only Go symbol that is visible (exported) from the rt0 initialization
// code. This function is invoked by the rt0 assembly code after setting up the GDT
// and setting up a a minimal g0 struct that allows Go code using the 4K stack
// allocated by the assembly code.
//
// The rt0 code passes the address of the multiboot info payload provided by the
// bootloader as well as the physical addresses for the kernel start/end.
//
// Kmain is not expected to return. If it does, the rt0 code will halt the CPU.
//
//go:noinline
func Kmain(multibootInfoPtr, _, _ uintptr) {
	// The keyboard is polled; no interrupt handlers are installed.
	cpu.DisableInterrupts()

	multiboot.SetInfoPtr(multibootInfoPtr)

	hal.DetectHardware()

	if term.dev = hal.ActiveTTY(); term.dev == nil {
		kfmt.Panic(errNoTTY)
	}

	if keys.dev = hal.ActiveKeyboard(); keys.dev == nil {
		kfmt.Panic(errNoKeyboard)
	}

	sysinfo.Probe(&info)
	variant, requested := selectVariant()

	session.Init(&term, &keys, variant, &info)
	session.SetPace(paceKeys)

	// Start clears the screen; the boot summary goes below the banner.
	session.Start()
	logBootSummary(variant, requested)
	session.Run()

	// Use kfmt.Panic instead of panic to prevent the compiler from
	// treating kfmt.Panic as dead-code and eliminating it.
	kfmt.Panic(errKmainReturned)
}

// selectVariant returns the shell requested by the "shell=" boot command line
// option, falling back to the extended shell. The second result is the
// requested name if it did not match any shell.
func selectVariant() (*shell.Variant, []byte) {
	name, ok := bootCmdLineValueFn("shell")
	if !ok {
		return &shell.Extended, nil
	}

	variant, ok := shell.VariantByName(name)
	if !ok {
		return &shell.Extended, name
	}

	return variant, nil
}

func logBootSummary(variant *shell.Variant, unknownShell []byte) {
	kfmt.Printf("[kmain] cpu: %s (%d cores)\n", info.Brand(), info.Cores)
	kfmt.Printf("[kmain] memory: %d KB\n", info.MemoryKB)
	kfmt.Printf("[kmain] disks: %d\n", info.Disks.Len())

	if unknownShell != nil {
		kfmt.Printf("[kmain] unknown shell %s; using %s\n", unknownShell, variant.Name)
	}
	kfmt.Printf("[kmain] starting %s shell\n\n", variant.Name)
}

func paceKeys() {
	cpu.SpinWait(keyPaceIterations)
}

// terminal exposes the active TTY to the shell. The shell receives a pointer
// to this struct rather than the tty.Device value: converting between the two
// interface types needs a runtime itab lookup.
type terminal struct {
	dev tty.Device
}

func (t *terminal) Write(p []byte) (int, error)       { return t.dev.Write(p) }
func (t *terminal) WriteByte(b byte) error            { return t.dev.WriteByte(b) }
func (t *terminal) WriteString(s string) (int, error) { return t.dev.WriteString(s) }
func (t *terminal) Clear()                            { t.dev.Clear() }
func (t *terminal) EraseBack()                        { t.dev.EraseBack() }
func (t *terminal) SetColor(fg, bg uint8)             { t.dev.SetColor(fg, bg) }
func (t *terminal) ResetColor()                       { t.dev.ResetColor() }

// keyboardReader exposes the active keyboard to the shell editor.
type keyboardReader struct {
	dev keyboard.Device
}

func (k *keyboardReader) ReadScancode() byte { return k.dev.ReadScancode() }
