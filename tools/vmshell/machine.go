package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"haldenos/device/tty"
	"haldenos/shell"
)

// Machine runs the kernel shell against a simulated screen and keyboard. The
// VT, the line editor and the dispatcher are the kernel's own packages; only
// the console and the keyboard controller are replaced.
type Machine struct {
	screen   *Screen
	vt       tty.VT
	kbd      *hostKeyboard
	session  shell.Session
	renderer Renderer
	log      Logger
}

// NewMachine wires a machine described by p that reads keystrokes from in and
// presents its screen through r.
func NewMachine(p Profile, in io.Reader, r Renderer, log Logger) (*Machine, error) {
	variant, err := p.ShellVariant()
	if err != nil {
		return nil, err
	}

	info, err := p.SystemInfo()
	if err != nil {
		return nil, err
	}

	m := &Machine{
		screen:   NewScreen(screenWidth, screenHeight),
		kbd:      newHostKeyboard(in, log),
		renderer: r,
		log:      log,
	}
	m.vt.AttachTo(m.screen)
	m.kbd.onIdle = m.render
	m.session.Init(&m.vt, m.kbd, variant, info)

	log.Info("machine ready", map[string]interface{}{
		"variant": variant.Name,
		"cores":   info.Cores,
		"memory":  info.MemoryKB,
		"disks":   info.Disks.Len(),
	})
	return m, nil
}

// Screen returns the simulated console.
func (m *Machine) Screen() *Screen {
	return m.screen
}

// Run boots the shell and processes lines until the input ends or ctx is
// cancelled. Reaching the end of the input is not an error.
func (m *Machine) Run(ctx context.Context) error {
	m.session.Start()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.session.Step()

		if err := m.kbd.Err(); err != nil {
			m.render()
			if errors.Is(err, io.EOF) {
				m.log.Debug("input closed", nil)
				return nil
			}
			return fmt.Errorf("read keyboard: %w", err)
		}
	}
}

func (m *Machine) render() {
	if err := m.renderer.Render(m.screen); err != nil {
		m.log.Error("render failed", err, nil)
	}
}
