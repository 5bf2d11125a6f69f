package keyboard

// keymapSize is the number of set-1 make codes covered by the US keymap.
const keymapSize = 89

// usKeymap maps set-1 make codes to their unshifted US QWERTY character.
// Modifier, function and unused keys map to 0.
var usKeymap = [keymapSize]byte{
	0x00: 0, 0, '1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '-', '=', '\b',
	0x0f: 0, 'q', 'w', 'e', 'r', 't', 'y', 'u', 'i', 'o', 'p', '[', ']', '\n',
	0x1d: 0, 'a', 's', 'd', 'f', 'g', 'h', 'j', 'k', 'l', ';', '\'', '`',
	0x2a: 0, '\\', 'z', 'x', 'c', 'v', 'b', 'n', 'm', ',', '.', '/', 0,
	0x37: 0, 0, ' ',
}

// Translate maps a make code to the character it produces. It returns false
// for break codes, codes outside the keymap and keys that do not produce a
// character. Enter yields '\n' and Backspace yields '\b'.
func Translate(scancode byte) (byte, bool) {
	if scancode >= keymapSize {
		return 0, false
	}

	ch := usKeymap[scancode]
	return ch, ch != 0
}

// Scancode performs the reverse lookup of Translate, returning the make code
// that produces ch.
func Scancode(ch byte) (byte, bool) {
	for sc := 0; sc < keymapSize; sc++ {
		if usKeymap[sc] == ch && ch != 0 {
			return byte(sc), true
		}
	}

	return 0, false
}

// IsBreak reports whether scancode is a key release event.
func IsBreak(scancode byte) bool {
	return scancode&breakCodeBit != 0
}
