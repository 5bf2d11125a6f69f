// Package cmos reads the memory size recorded by the BIOS in the CMOS/RTC
// configuration RAM.
package cmos

import "haldenos/kernel/cpu"

const (
	indexPort = 0x70
	dataPort  = 0x71

	// Extended memory above 1 MiB in KiB as configured by the BIOS.
	regExtMemLow  = 0x17
	regExtMemHigh = 0x18

	// Extended memory above 1 MiB in KiB as found by POST.
	regPostExtMemLow  = 0x30
	regPostExtMemHigh = 0x31

	// The registers only count memory above the first MiB.
	lowMemoryKB = 1024
)

var (
	portWriteByteFn = cpu.PortWriteByte
	portReadByteFn  = cpu.PortReadByte
)

// ReadRegister returns the value of a CMOS register.
func ReadRegister(reg uint8) uint8 {
	portWriteByteFn(indexPort, reg)
	return portReadByteFn(dataPort)
}

// MemoryKB returns the installed memory in KiB. The BIOS configuration
// registers are consulted first, falling back to the POST registers when
// they read zero. The first MiB is always added on top.
func MemoryKB() uint32 {
	kb := readWord(regExtMemLow, regExtMemHigh)
	if kb == 0 {
		kb = readWord(regPostExtMemLow, regPostExtMemHigh)
	}

	return kb + lowMemoryKB
}

func readWord(lowReg, highReg uint8) uint32 {
	low := ReadRegister(lowReg)
	high := ReadRegister(highReg)
	return uint32(high)<<8 | uint32(low)
}
