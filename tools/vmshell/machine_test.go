package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
)

type recordedLog struct {
	level, msg string
	err        error
}

type recordingLogger struct {
	entries []recordedLog
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) {
	l.entries = append(l.entries, recordedLog{level: "debug", msg: msg})
}

func (l *recordingLogger) Info(msg string, _ map[string]interface{}) {
	l.entries = append(l.entries, recordedLog{level: "info", msg: msg})
}

func (l *recordingLogger) Warn(msg string, _ map[string]interface{}) {
	l.entries = append(l.entries, recordedLog{level: "warn", msg: msg})
}

func (l *recordingLogger) Error(msg string, err error, _ map[string]interface{}) {
	l.entries = append(l.entries, recordedLog{level: "error", msg: msg, err: err})
}

func TestMachineRun(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	renderer := NewMockRenderer(mockCtrl)

	m, err := NewMachine(hydrateDefaults(Profile{}), strings.NewReader("cd dev\nls\n"), renderer, discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	renderer.EXPECT().Render(m.Screen()).MinTimes(1).Return(nil)

	if err := m.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	exp := []string{
		"HaldenOS 1.0.0 - 64-bit",
		"Type 'help' for a list of commands",
		"",
		"root@halden-system:/# cd dev",
		"root@halden-system:/dev# ls",
		"sda",
		"tty0",
		"null",
		"zero",
		"root@halden-system:/dev#",
	}
	if diff := cmp.Diff(exp, m.Screen().Snapshot()); diff != "" {
		t.Fatalf("screen mismatch (-want +got):\n%s", diff)
	}
}

func TestMachineRunUnterminatedLine(t *testing.T) {
	m, err := NewMachine(Profile{Variant: "minimal"}, strings.NewReader("mkdir x"), nopRenderer{}, discardLogger())
	if err != nil {
		t.Fatal(err)
	}

	if err := m.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	rows := m.Screen().Snapshot()
	exp := []string{"bash# mkdir x", "mkdir: created directory 'x'"}
	if diff := cmp.Diff(exp, rows[len(rows)-2:]); diff != "" {
		t.Fatalf("screen mismatch (-want +got):\n%s", diff)
	}
}

func TestMachineRunInterrupted(t *testing.T) {
	m, err := NewMachine(hydrateDefaults(Profile{}), strings.NewReader("pwd\x03"), nopRenderer{}, discardLogger())
	if err != nil {
		t.Fatal(err)
	}

	if err := m.Run(context.Background()); !errors.Is(err, ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted; got %v", err)
	}
}

func TestMachineRunCancelled(t *testing.T) {
	m, err := NewMachine(hydrateDefaults(Profile{}), strings.NewReader("pwd\n"), nopRenderer{}, discardLogger())
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := m.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled; got %v", err)
	}
}

func TestMachineRenderFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	renderErr := errors.New("broken pipe")
	renderer := NewMockRenderer(mockCtrl)
	renderer.EXPECT().Render(gomock.Any()).AnyTimes().Return(renderErr)

	logger := new(recordingLogger)
	m, err := NewMachine(hydrateDefaults(Profile{}), strings.NewReader(""), renderer, logger)
	if err != nil {
		t.Fatal(err)
	}

	if err := m.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	var found bool
	for _, entry := range logger.entries {
		if entry.level == "error" && errors.Is(entry.err, renderErr) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the render failure to be logged; got %+v", logger.entries)
	}
}

func TestNewMachineErrors(t *testing.T) {
	if _, err := NewMachine(Profile{Variant: "full"}, strings.NewReader(""), nopRenderer{}, discardLogger()); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("expected ErrUnknownVariant; got %v", err)
	}

	p := hydrateDefaults(Profile{CPU: CPUProfile{Features: []string{"mmx"}}})
	if _, err := NewMachine(p, strings.NewReader(""), nopRenderer{}, discardLogger()); !errors.Is(err, ErrUnknownFeature) {
		t.Errorf("expected ErrUnknownFeature; got %v", err)
	}
}
