// Package ata enumerates legacy IDE drives by issuing IDENTIFY DEVICE to the
// master and slave slots of the primary and secondary channels.
package ata

import "haldenos/kernel/cpu"

const (
	// MaxDisks is the capacity of a DiskTable.
	MaxDisks = 16

	// FallbackSizeMB is reported for drives whose IDENTIFY data carries
	// no LBA28 sector count and for the placeholder disk returned when no
	// drive answers.
	FallbackSizeMB = 8192

	// Register offsets from the channel I/O base.
	regData        = 0
	regSectorCount = 2
	regLBALow      = 3
	regLBAMid      = 4
	regLBAHigh     = 5
	regDriveSelect = 6
	regCommand     = 7
	regStatus      = 7

	cmdIdentify = 0xec

	statusDRQ = 1 << 3

	selectMaster = 0xa0
	selectSlave  = 0xb0

	// identifyWait is the number of pause iterations granted to a drive
	// before its status register is sampled.
	identifyWait = 10000

	identifyWords = 256

	// IDENTIFY words holding the total number of LBA28 addressable
	// sectors (low word first).
	wordLBA28Low  = 60
	wordLBA28High = 61
)

var (
	portWriteByteFn = cpu.PortWriteByte
	portReadByteFn  = cpu.PortReadByte
	portReadWordFn  = cpu.PortReadWord
	spinWaitFn      = cpu.SpinWait

	// The four legacy drive slots in probe order.
	slots = [...]struct {
		ioBase uint16
		sel    uint8
	}{
		{0x1f0, selectMaster},
		{0x1f0, selectSlave},
		{0x170, selectMaster},
		{0x170, selectSlave},
	}
)

// Disk describes a detected drive.
type Disk struct {
	name    [8]byte
	nameLen uint8

	// SizeMB is the drive capacity in MiB.
	SizeMB uint32

	// Exists is set for every populated table entry.
	Exists bool
}

// Name returns the device name (sda, sdb, ...). The returned slice aliases
// the disk entry.
func (d *Disk) Name() []byte {
	return d.name[:d.nameLen]
}

func (d *Disk) setName(index int) {
	d.name[0], d.name[1], d.name[2] = 's', 'd', 'a'+byte(index)
	d.nameLen = 3
}

// DiskTable is a fixed-capacity list of detected disks.
type DiskTable struct {
	disks [MaxDisks]Disk
	count int
}

// Len returns the number of disks in the table.
func (t *DiskTable) Len() int {
	return t.count
}

// Disk returns the disk at index i or nil if i is out of range.
func (t *DiskTable) Disk(i int) *Disk {
	if i < 0 || i >= t.count {
		return nil
	}

	return &t.disks[i]
}

// Add appends a disk named after its position in the table. It returns
// false if the table is full.
func (t *DiskTable) Add(sizeMB uint32) bool {
	if t.count == MaxDisks {
		return false
	}

	d := &t.disks[t.count]
	d.setName(t.count)
	d.SizeMB = sizeMB
	d.Exists = true
	t.count++
	return true
}

// DetectDisks probes the four legacy drive slots. If no drive answers, the
// returned table holds a single sda entry of FallbackSizeMB so callers
// always have something to display.
func DetectDisks() DiskTable {
	var table DiskTable

	for _, slot := range slots {
		if sizeMB, ok := identify(slot.ioBase, slot.sel); ok {
			table.Add(sizeMB)
		}
	}

	if table.count == 0 {
		table.Add(FallbackSizeMB)
	}

	return table
}

// identify issues IDENTIFY DEVICE to the selected drive and returns its
// LBA28 capacity in MiB.
func identify(ioBase uint16, sel uint8) (uint32, bool) {
	portWriteByteFn(ioBase+regDriveSelect, sel)
	portWriteByteFn(ioBase+regSectorCount, 0)
	portWriteByteFn(ioBase+regLBALow, 0)
	portWriteByteFn(ioBase+regLBAMid, 0)
	portWriteByteFn(ioBase+regLBAHigh, 0)
	portWriteByteFn(ioBase+regCommand, cmdIdentify)

	spinWaitFn(identifyWait)

	status := portReadByteFn(ioBase + regStatus)
	if status == 0 || status == 0xff || status&statusDRQ == 0 {
		return 0, false
	}

	var lbaLow, lbaHigh uint16
	for i := 0; i < identifyWords; i++ {
		word := portReadWordFn(ioBase + regData)
		switch i {
		case wordLBA28Low:
			lbaLow = word
		case wordLBA28High:
			lbaHigh = word
		}
	}

	sectors := uint32(lbaHigh)<<16 | uint32(lbaLow)
	sizeMB := sectors / 2 / 1024
	if sizeMB == 0 {
		sizeMB = FallbackSizeMB
	}

	return sizeMB, true
}
