package kfmt

import "io"

// bootLogSize holds the hal boot log: one prefixed line per driver init step
// and the kmain startup lines, 16 lines of 80 columns in total.
const bootLogSize = 16 * 80

// bootLog keeps output written before a TTY is linked. Once full, each write
// drops the oldest bytes.
type bootLog struct {
	data          [bootLogSize]byte
	start, length int
}

// Write implements io.Writer. It always accepts all of p.
func (l *bootLog) Write(p []byte) (int, error) {
	for _, b := range p {
		l.data[(l.start+l.length)%bootLogSize] = b
		if l.length < bootLogSize {
			l.length++
		} else {
			l.start = (l.start + 1) % bootLogSize
		}
	}

	return len(p), nil
}

// flush writes the buffered bytes to w, oldest first, and empties the log.
// Wrapped contents are written as two segments.
func (l *bootLog) flush(w io.Writer) {
	if l.length == 0 {
		return
	}

	end := l.start + l.length
	if end <= bootLogSize {
		w.Write(l.data[l.start:end])
	} else {
		w.Write(l.data[l.start:])
		w.Write(l.data[:end-bootLogSize])
	}

	l.start, l.length = 0, 0
}
