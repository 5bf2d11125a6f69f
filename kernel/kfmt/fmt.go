package kfmt

import (
	"io"
	"unsafe"
)

// numBufSize fits the digits and sign of any 64-bit integer.
const numBufSize = 32

const hexDigits = "0123456789abcdef"

var (
	errMissingArg   = []byte("%!(MISSING)")
	errWrongArgType = []byte("%!(WRONGTYPE)")
	errNoVerb       = []byte("%!(NOVERB)")
	errBadVerb      = []byte("(BADVERB)")
	errExtraArg     = []byte("%!(EXTRA)")

	numBuf  [numBufSize]byte
	charBuf [1]byte

	// earlyLog collects output until the hal links a TTY.
	earlyLog bootLog

	// outputSink receives Printf output. While nil, output goes to
	// earlyLog.
	outputSink io.Writer
)

// SetOutputSink makes w the target of Printf and writes any output collected
// by the boot log to it.
func SetOutputSink(w io.Writer) {
	outputSink = w
	if w != nil {
		earlyLog.flush(w)
	}
}

// GetOutputSink returns an io.Writer that forwards to the current Printf
// target. Writes made through it before a TTY is linked land in the boot log.
func GetOutputSink() io.Writer {
	return sinkWriter{}
}

type sinkWriter struct{}

func (sinkWriter) Write(p []byte) (int, error) {
	if outputSink != nil {
		return outputSink.Write(p)
	}
	return earlyLog.Write(p)
}

// Printf formats according to format and writes to the active TTY, or to the
// boot log if no TTY is linked yet. It never allocates.
//
// Supported verbs:
//
//	%s a string or byte slice
//	%c a single byte or ASCII rune
//	%d %x integers in base 10 and 16 (lower-case)
//	%% a literal percent sign
//
// A decimal width may precede the verb. Output shorter than the width is
// padded with spaces on the left, or on the right if the width starts with
// '-'. Right-aligned %x values are padded with zeroes.
func Printf(format string, args ...interface{}) {
	Fprintf(outputSink, format, args...)
}

// Fprintf behaves like Printf but writes to w.
func Fprintf(w io.Writer, format string, args ...interface{}) {
	var (
		argIndex  int
		width     int
		leftAlign bool
	)

	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			writeByte(w, format[i])
			continue
		}

		width, leftAlign = 0, false
		for i++; i < len(format); i++ {
			ch := format[i]
			if ch == '-' && width == 0 {
				leftAlign = true
				continue
			}
			if ch < '0' || ch > '9' {
				break
			}
			width = width*10 + int(ch-'0')
		}

		if i == len(format) {
			doWrite(w, errNoVerb)
			break
		}

		switch verb := format[i]; verb {
		case '%':
			writeByte(w, '%')
		case 's', 'c', 'd', 'x':
			if argIndex == len(args) {
				doWrite(w, errMissingArg)
				continue
			}

			fmtArg(w, verb, args[argIndex], width, leftAlign)
			argIndex++
		default:
			writeByte(w, '%')
			writeByte(w, '!')
			writeByte(w, verb)
			doWrite(w, errBadVerb)
		}
	}

	for ; argIndex < len(args); argIndex++ {
		doWrite(w, errExtraArg)
	}
}

func fmtArg(w io.Writer, verb byte, arg interface{}, width int, leftAlign bool) {
	switch verb {
	case 's':
		fmtString(w, arg, width, leftAlign)
	case 'c':
		fmtChar(w, arg)
	case 'd':
		fmtInt(w, arg, 10, width, leftAlign)
	case 'x':
		fmtInt(w, arg, 16, width, leftAlign)
	}
}

func fmtString(w io.Writer, arg interface{}, width int, leftAlign bool) {
	var n int
	switch v := arg.(type) {
	case string:
		n = len(v)
	case []byte:
		n = len(v)
	default:
		doWrite(w, errWrongArgType)
		return
	}

	if !leftAlign {
		writeRepeat(w, ' ', width-n)
	}

	switch v := arg.(type) {
	case string:
		// Converting v to a byte slice would allocate.
		for i := 0; i < len(v); i++ {
			writeByte(w, v[i])
		}
	case []byte:
		doWrite(w, v)
	}

	if leftAlign {
		writeRepeat(w, ' ', width-n)
	}
}

// fmtChar prints a byte. Runes outside the ASCII range print as '?'.
func fmtChar(w io.Writer, arg interface{}) {
	switch v := arg.(type) {
	case byte:
		writeByte(w, v)
	case rune:
		if v < 0 || v > 0x7f {
			v = '?'
		}
		writeByte(w, byte(v))
	default:
		doWrite(w, errWrongArgType)
	}
}

func fmtInt(w io.Writer, arg interface{}, base uint64, width int, leftAlign bool) {
	var (
		val uint64
		neg bool
	)

	switch v := arg.(type) {
	case uint8:
		val = uint64(v)
	case uint16:
		val = uint64(v)
	case uint32:
		val = uint64(v)
	case uint64:
		val = v
	case uint:
		val = uint64(v)
	case uintptr:
		val = uint64(v)
	case int8:
		val, neg = magnitude(int64(v))
	case int16:
		val, neg = magnitude(int64(v))
	case int32:
		val, neg = magnitude(int64(v))
	case int64:
		val, neg = magnitude(v)
	case int:
		val, neg = magnitude(int64(v))
	default:
		doWrite(w, errWrongArgType)
		return
	}

	pos := numBufSize
	for {
		pos--
		numBuf[pos] = hexDigits[val%base]
		val /= base
		if val == 0 {
			break
		}
	}

	padLen := width - (numBufSize - pos)
	if neg {
		padLen--
	}

	switch {
	case leftAlign:
		if neg {
			writeByte(w, '-')
		}
		doWrite(w, numBuf[pos:])
		writeRepeat(w, ' ', padLen)
	case base == 16:
		if neg {
			writeByte(w, '-')
		}
		writeRepeat(w, '0', padLen)
		doWrite(w, numBuf[pos:])
	default:
		writeRepeat(w, ' ', padLen)
		if neg {
			writeByte(w, '-')
		}
		doWrite(w, numBuf[pos:])
	}
}

// magnitude returns the absolute value of v and whether v is negative.
func magnitude(v int64) (uint64, bool) {
	if v < 0 {
		return uint64(-v), true
	}
	return uint64(v), false
}

func writeRepeat(w io.Writer, ch byte, count int) {
	for ; count > 0; count-- {
		writeByte(w, ch)
	}
}

func writeByte(w io.Writer, ch byte) {
	charBuf[0] = ch
	doWrite(w, charBuf[:])
}

// doWrite passes p to w through noEscape so the compiler does not move the
// callers' buffers to the heap.
func doWrite(w io.Writer, p []byte) {
	doRealWrite(w, noEscape(unsafe.Pointer(&p)))
}

func doRealWrite(w io.Writer, bufPtr unsafe.Pointer) {
	p := *(*[]byte)(bufPtr)
	if w != nil {
		w.Write(p)
	} else {
		earlyLog.Write(p)
	}
}

// noEscape returns p unchanged but hidden from escape analysis.
//
//go:nosplit
func noEscape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}
