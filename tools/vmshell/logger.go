package main

import "log"

// Logger is the structured logger used by the simulator.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

// StdLogger is a lightweight implementation backed by Go's log package.
// Debug and Info messages are only emitted in verbose mode.
type StdLogger struct {
	verbose bool
	out     *log.Logger
}

// NewStdLogger creates a StdLogger writing to l.
func NewStdLogger(l *log.Logger, verbose bool) *StdLogger {
	return &StdLogger{verbose: verbose, out: l}
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	l.out.Println("[DEBUG]", msg, fields)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	l.out.Println("[INFO]", msg, fields)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	l.out.Println("[WARN]", msg, fields)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.out.Println("[ERROR]", msg, err, fields)
}
