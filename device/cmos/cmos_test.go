package cmos

import (
	"haldenos/kernel/cpu"
	"testing"
)

func mockCMOS(t *testing.T, regs map[uint8]uint8) {
	t.Cleanup(func() {
		portWriteByteFn = cpu.PortWriteByte
		portReadByteFn = cpu.PortReadByte
	})

	var selected uint8
	portWriteByteFn = func(port uint16, val uint8) {
		if port != indexPort {
			t.Errorf("unexpected write to port 0x%x", port)
		}
		selected = val
	}
	portReadByteFn = func(port uint16) uint8 {
		if port != dataPort {
			t.Errorf("unexpected read from port 0x%x", port)
		}
		return regs[selected]
	}
}

func TestMemoryKB(t *testing.T) {
	specs := []struct {
		regs  map[uint8]uint8
		expKB uint32
	}{
		// 64 MiB above the first MiB
		{map[uint8]uint8{0x17: 0x00, 0x18: 0xfc}, 0xfc00 + 1024},
		// primary pair empty; use POST registers
		{map[uint8]uint8{0x30: 0x00, 0x31: 0x7c}, 0x7c00 + 1024},
		// both populated; primary wins
		{map[uint8]uint8{0x17: 0x34, 0x18: 0x12, 0x30: 0xff, 0x31: 0xff}, 0x1234 + 1024},
		// nothing reported
		{map[uint8]uint8{}, 1024},
	}

	for specIndex, spec := range specs {
		mockCMOS(t, spec.regs)

		if got := MemoryKB(); got != spec.expKB {
			t.Errorf("[spec %d] expected MemoryKB to return %d; got %d", specIndex, spec.expKB, got)
		}
	}
}

func TestReadRegister(t *testing.T) {
	mockCMOS(t, map[uint8]uint8{0x0a: 0x26})

	if got := ReadRegister(0x0a); got != 0x26 {
		t.Fatalf("expected register 0x0a to read 0x26; got 0x%x", got)
	}
}
