package shell

// maxLineLen is the number of characters a command line can hold.
const maxLineLen = 255

// LineBuffer is a fixed-capacity byte buffer holding the line being edited.
// Appends beyond the capacity are dropped.
type LineBuffer struct {
	data   [maxLineLen + 1]byte
	length int
}

// Append adds ch to the end of the buffer. It returns false if the buffer is
// full.
func (b *LineBuffer) Append(ch byte) bool {
	if b.length >= maxLineLen {
		return false
	}

	b.data[b.length] = ch
	b.length++
	return true
}

// Backspace removes the last character. It returns false if the buffer was
// already empty.
func (b *LineBuffer) Backspace() bool {
	if b.length == 0 {
		return false
	}

	b.length--
	return true
}

// Reset empties the buffer.
func (b *LineBuffer) Reset() {
	b.length = 0
}

// Len returns the number of buffered characters.
func (b *LineBuffer) Len() int {
	return b.length
}

// Cap returns the maximum number of characters the buffer can hold.
func (b *LineBuffer) Cap() int {
	return maxLineLen
}

// Bytes returns the buffered characters. The slice aliases the buffer and is
// only valid until the next mutation.
func (b *LineBuffer) Bytes() []byte {
	return b.data[:b.length]
}
