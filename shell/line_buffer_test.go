package shell

import (
	"math/rand"
	"testing"
)

func TestLineBuffer(t *testing.T) {
	var buf LineBuffer

	if buf.Cap() != 255 {
		t.Fatalf("expected capacity 255; got %d", buf.Cap())
	}

	if buf.Backspace() {
		t.Fatal("expected Backspace on an empty buffer to be a no-op")
	}

	for i := 0; i < buf.Cap(); i++ {
		if !buf.Append('a' + byte(i%26)) {
			t.Fatalf("expected Append %d to succeed", i)
		}
	}

	if buf.Append('!') {
		t.Fatal("expected Append beyond capacity to fail")
	}

	if buf.Len() != 255 || buf.Bytes()[254] != 'a'+254%26 {
		t.Fatalf("expected buffer to hold 255 characters; got %d", buf.Len())
	}

	if !buf.Backspace() || buf.Len() != 254 {
		t.Fatalf("expected Backspace to remove the last character; len %d", buf.Len())
	}

	buf.Reset()
	if buf.Len() != 0 || len(buf.Bytes()) != 0 {
		t.Fatalf("expected Reset to empty the buffer; len %d", buf.Len())
	}
}

func TestLineBufferRandomEdits(t *testing.T) {
	var (
		buf   LineBuffer
		model int
		rng   = rand.New(rand.NewSource(42))
	)

	for i := 0; i < 10000; i++ {
		// Bias towards appends so the capacity is reached regularly
		if rng.Intn(4) == 0 {
			buf.Backspace()
			if model > 0 {
				model--
			}
		} else {
			buf.Append('x')
			if model < maxLineLen {
				model++
			}
		}

		if buf.Len() != model || buf.Len() < 0 || buf.Len() > buf.Cap() {
			t.Fatalf("[op %d] expected length %d within [0, %d]; got %d", i, model, buf.Cap(), buf.Len())
		}
	}
}
