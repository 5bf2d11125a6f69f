package kfmt

import "io"

// maxPrefixLen is the capacity of a PrefixWriter prefix. Longer prefixes are
// truncated.
const maxPrefixLen = 64

// PrefixWriter is an io.Writer that injects a prefix at the beginning of each
// line sent to Sink. The hal uses it to tag driver init output with the driver
// name and version.
type PrefixWriter struct {
	// Sink receives the prefixed output.
	Sink io.Writer

	prefix    [maxPrefixLen]byte
	prefixLen int

	// midLine is set once the prefix for the current line has been written.
	midLine bool
}

// SetPrefix formats the prefix using the Printf verbs and starts a new line.
// Output past maxPrefixLen bytes is dropped.
func (w *PrefixWriter) SetPrefix(format string, args ...interface{}) {
	w.prefixLen = 0
	w.midLine = false
	Fprintf((*prefixBuffer)(w), format, args...)
}

// Prefix returns the current prefix.
func (w *PrefixWriter) Prefix() []byte {
	return w.prefix[:w.prefixLen]
}

// Write sends p to the sink, one line at a time, writing the prefix before
// the first byte of every line. The returned count excludes prefix bytes.
func (w *PrefixWriter) Write(p []byte) (int, error) {
	var written int

	for len(p) != 0 {
		if !w.midLine {
			if _, err := w.Sink.Write(w.prefix[:w.prefixLen]); err != nil {
				return written, err
			}
			w.midLine = true
		}

		end := len(p)
		for i, b := range p {
			if b == '\n' {
				end = i + 1
				break
			}
		}

		n, err := w.Sink.Write(p[:end])
		written += n
		if err != nil {
			return written, err
		}

		w.midLine = p[end-1] != '\n'
		p = p[end:]
	}

	return written, nil
}

// prefixBuffer is the Fprintf target used by SetPrefix.
type prefixBuffer PrefixWriter

func (b *prefixBuffer) Write(p []byte) (int, error) {
	b.prefixLen += copy(b.prefix[b.prefixLen:], p)
	return len(p), nil
}
