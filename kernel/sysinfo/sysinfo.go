// Package sysinfo collects the hardware facts reported by the shell. The
// probes run once at boot; the shell only ever reads the result.
package sysinfo

import (
	"haldenos/device/ata"
	"haldenos/device/cmos"
	"haldenos/kernel/cpu"
)

var (
	vendorStringFn  = cpu.VendorString
	brandStringFn   = cpu.BrandString
	coreCountFn     = cpu.CoreCount
	isVirtualizedFn = cpu.IsVirtualized
	featuresFn      = cpu.Features
	memoryKBFn      = cmos.MemoryKB
	detectDisksFn   = ata.DetectDisks
)

// Info holds the results of the boot-time hardware probes.
type Info struct {
	vendor    [12]byte
	vendorLen int
	brand     [48]byte
	brandLen  int

	// Cores is the number of logical processors reported by CPUID.
	Cores uint32

	// Virtualized is set when CPUID reports a hypervisor.
	Virtualized bool

	// Features holds the vendor-specific CPU feature flags.
	Features cpu.FeatureSet

	// MemoryKB is the installed memory in KiB.
	MemoryKB uint32

	// Disks lists the detected drives; it is never empty.
	Disks ata.DiskTable
}

// Probe runs every hardware probe and stores the results in info.
func Probe(info *Info) {
	vendorStringFn(&info.vendor)
	info.vendorLen = len(info.vendor)
	info.brandLen = brandStringFn(&info.brand)
	info.Cores = coreCountFn()
	info.Virtualized = isVirtualizedFn()
	info.Features = featuresFn()
	info.MemoryKB = memoryKBFn()
	info.Disks = detectDisksFn()
}

// Vendor returns the 12-character CPUID vendor string.
func (info *Info) Vendor() []byte {
	return info.vendor[:info.vendorLen]
}

// Brand returns the processor brand string. CPUs without the extended brand
// leaves report their vendor string instead.
func (info *Info) Brand() []byte {
	if info.brandLen == 0 {
		return info.Vendor()
	}

	return info.brand[:info.brandLen]
}

// MemoryMB returns the installed memory in MiB.
func (info *Info) MemoryMB() uint32 {
	return info.MemoryKB / 1024
}

// SetCPU overrides the CPU identification strings. It is used by hosts that
// emulate a machine instead of probing one.
func (info *Info) SetCPU(vendor, brand string) {
	info.vendorLen = copy(info.vendor[:], vendor)
	info.brandLen = copy(info.brand[:], brand)
}
