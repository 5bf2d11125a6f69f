// Package shell implements the operator console: a line editor fed by raw
// keyboard scancodes and a table-driven command dispatcher. The code paths
// reachable from Session.Run never allocate.
package shell

import (
	"haldenos/kernel/kfmt"
	"haldenos/kernel/sysinfo"
	"io"
)

// Terminal is the output device used by the shell.
type Terminal interface {
	io.Writer
	io.ByteWriter
	io.StringWriter

	// Clear blanks the screen and homes the cursor.
	Clear()

	// EraseBack blanks the character left of the cursor without leaving
	// the current line.
	EraseBack()

	// SetColor and ResetColor control the colors of subsequent output.
	SetColor(fg, bg uint8)
	ResetColor()
}

// Session holds all state of a running shell.
type Session struct {
	term    Terminal
	out     output
	editor  Editor
	variant *Variant
	info    *sysinfo.Info
	cwd     string
}

// Init prepares the session for use. It may be called on a zero Session
// value; no memory is allocated.
func (s *Session) Init(term Terminal, src ScancodeReader, variant *Variant, info *sysinfo.Info) {
	s.term = term
	s.out.term = term
	s.editor.Attach(src, term)
	s.variant = variant
	s.info = info
	s.cwd = RootDir
}

// SetPace installs the delay invoked after each processed keystroke.
func (s *Session) SetPace(fn func()) {
	s.editor.Pace = fn
}

// Cwd returns the current directory.
func (s *Session) Cwd() string {
	return s.cwd
}

// Variant returns the active shell configuration.
func (s *Session) Variant() *Variant {
	return s.variant
}

// printf formats to the terminal. kfmt gets the concrete output wrapper, never
// the Terminal itself: converting a Terminal to io.Writer needs a runtime itab
// lookup.
func (s *Session) printf(format string, args ...interface{}) {
	kfmt.Fprintf(&s.out, format, args...)
}

// output adapts a Terminal to the io.Writer expected by kfmt.
type output struct {
	term Terminal
}

func (o *output) Write(p []byte) (int, error) {
	return o.term.Write(p)
}

// Start clears the screen and prints the variant banner.
func (s *Session) Start() {
	s.term.Clear()
	s.variant.Banner(s)
}

// Step prints the prompt, reads one line and executes it.
func (s *Session) Step() {
	s.variant.Prompt(s)
	s.Execute(s.editor.ReadLine())
}

// Run processes lines forever. Start is expected to have been called.
func (s *Session) Run() {
	for {
		s.Step()
	}
}

// Execute dispatches a single command line. Blank lines produce no output.
func (s *Session) Execute(line []byte) {
	line = trimSpaces(line)
	if len(line) == 0 {
		return
	}

	cmd, arg := s.variant.Lookup(line)
	if cmd == nil {
		s.variant.NotFound(s, line)
		return
	}

	cmd.Run(s, arg)
}
