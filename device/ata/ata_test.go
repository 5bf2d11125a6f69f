package ata

import (
	"haldenos/kernel/cpu"
	"testing"
)

type driveKey struct {
	ioBase uint16
	sel    uint8
}

// mockBus emulates the task file registers of both legacy channels.
type mockBus struct {
	drives   map[driveKey]uint32 // LBA28 sector counts
	status   map[driveKey]uint8  // status overrides
	selected map[uint16]uint8
	wordPos  map[uint16]int
	waits    int
}

func newMockBus() *mockBus {
	return &mockBus{
		drives:   make(map[driveKey]uint32),
		status:   make(map[driveKey]uint8),
		selected: make(map[uint16]uint8),
		wordPos:  make(map[uint16]int),
	}
}

func (b *mockBus) install(t *testing.T) {
	t.Cleanup(func() {
		portWriteByteFn = cpu.PortWriteByte
		portReadByteFn = cpu.PortReadByte
		portReadWordFn = cpu.PortReadWord
		spinWaitFn = cpu.SpinWait
	})

	portWriteByteFn = func(port uint16, val uint8) {
		base := port &^ 7
		switch port - base {
		case regDriveSelect:
			b.selected[base] = val
		case regCommand:
			if val != cmdIdentify {
				t.Errorf("unexpected command 0x%x written to port 0x%x", val, port)
			}
			b.wordPos[base] = 0
		}
	}

	portReadByteFn = func(port uint16) uint8 {
		base := port &^ 7
		key := driveKey{base, b.selected[base]}
		if st, ok := b.status[key]; ok {
			return st
		}
		if _, ok := b.drives[key]; ok {
			return 0x58 // DRDY | DSC | DRQ
		}
		return 0
	}

	portReadWordFn = func(port uint16) uint16 {
		base := port &^ 7
		key := driveKey{base, b.selected[base]}
		pos := b.wordPos[base]
		b.wordPos[base]++

		sectors := b.drives[key]
		switch pos {
		case wordLBA28Low:
			return uint16(sectors)
		case wordLBA28High:
			return uint16(sectors >> 16)
		}
		return 0xffff
	}

	spinWaitFn = func(iterations uint32) {
		if iterations != identifyWait {
			t.Errorf("expected SpinWait(%d); got SpinWait(%d)", identifyWait, iterations)
		}
		b.waits++
	}
}

func TestDetectDisks(t *testing.T) {
	specs := []struct {
		name     string
		drives   map[driveKey]uint32
		status   map[driveKey]uint8
		expNames []string
		expSizes []uint32
	}{
		{
			name:     "no drives",
			expNames: []string{"sda"},
			expSizes: []uint32{FallbackSizeMB},
		},
		{
			name: "primary master",
			drives: map[driveKey]uint32{
				{0x1f0, selectMaster}: 20 * 1024 * 2048, // 20 GiB
			},
			expNames: []string{"sda"},
			expSizes: []uint32{20480},
		},
		{
			name: "all slots",
			drives: map[driveKey]uint32{
				{0x1f0, selectMaster}: 2048 * 100,
				{0x1f0, selectSlave}:  2048 * 200,
				{0x170, selectMaster}: 2048 * 300,
				{0x170, selectSlave}:  0,
			},
			expNames: []string{"sda", "sdb", "sdc", "sdd"},
			expSizes: []uint32{100, 200, 300, FallbackSizeMB},
		},
		{
			name: "secondary only",
			drives: map[driveKey]uint32{
				{0x170, selectSlave}: 2048 * 64,
			},
			expNames: []string{"sda"},
			expSizes: []uint32{64},
		},
		{
			name: "floating bus and missing DRQ",
			drives: map[driveKey]uint32{
				{0x1f0, selectMaster}: 2048 * 100,
				{0x1f0, selectSlave}:  2048 * 200,
				{0x170, selectMaster}: 2048 * 300,
			},
			status: map[driveKey]uint8{
				{0x1f0, selectMaster}: 0xff,
				{0x170, selectMaster}: 0x50, // DRDY without DRQ (ATAPI)
			},
			expNames: []string{"sda"},
			expSizes: []uint32{200},
		},
	}

	for _, spec := range specs {
		t.Run(spec.name, func(t *testing.T) {
			bus := newMockBus()
			for k, v := range spec.drives {
				bus.drives[k] = v
			}
			for k, v := range spec.status {
				bus.status[k] = v
			}
			bus.install(t)

			table := DetectDisks()

			if bus.waits != len(slots) {
				t.Errorf("expected %d identify waits; got %d", len(slots), bus.waits)
			}

			if table.Len() != len(spec.expNames) {
				t.Fatalf("expected %d disks; got %d", len(spec.expNames), table.Len())
			}

			for i := range spec.expNames {
				d := table.Disk(i)
				if got := string(d.Name()); got != spec.expNames[i] {
					t.Errorf("[disk %d] expected name %q; got %q", i, spec.expNames[i], got)
				}
				if d.SizeMB != spec.expSizes[i] {
					t.Errorf("[disk %d] expected size %d MB; got %d", i, spec.expSizes[i], d.SizeMB)
				}
				if !d.Exists {
					t.Errorf("[disk %d] expected disk to exist", i)
				}
			}
		})
	}
}

func TestDiskTable(t *testing.T) {
	var table DiskTable

	if table.Disk(0) != nil || table.Disk(-1) != nil {
		t.Fatal("expected out of range lookups to return nil")
	}

	for i := 0; i < MaxDisks; i++ {
		if !table.Add(uint32(i)) {
			t.Fatalf("expected Add to succeed for disk %d", i)
		}
	}

	if table.Add(1) {
		t.Fatal("expected Add to fail once the table is full")
	}

	if table.Len() != MaxDisks {
		t.Fatalf("expected table length %d; got %d", MaxDisks, table.Len())
	}

	if got := string(table.Disk(MaxDisks - 1).Name()); got != "sdp" {
		t.Fatalf("expected last disk to be named sdp; got %q", got)
	}
}
