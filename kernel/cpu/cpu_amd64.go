package cpu

var (
	cpuidFn = ID
)

// DisableInterrupts disables interrupt handling.
func DisableInterrupts()

// Halt stops instruction execution.
func Halt()

// Pause hints the CPU that the caller is inside a spin-wait loop.
func Pause()

// ID returns information about the CPU and its features. It
// is implemented as a CPUID instruction with EAX=leaf and ECX=0 and
// returns the values in EAX, EBX, ECX and EDX.
func ID(leaf uint32) (uint32, uint32, uint32, uint32)

// IsIntel returns true if the code is running on an Intel processor.
func IsIntel() bool {
	_, ebx, ecx, edx := cpuidFn(0)
	return ebx == 0x756e6547 && // "Genu"
		edx == 0x49656e69 && // "ineI"
		ecx == 0x6c65746e // "ntel"
}

// IsAMD returns true if the code is running on an AMD processor.
func IsAMD() bool {
	_, ebx, ecx, edx := cpuidFn(0)
	return ebx == 0x68747541 && // "Auth"
		edx == 0x69746e65 && // "enti"
		ecx == 0x444d4163 // "cAMD"
}

// IsVirtualized returns true if the hypervisor-present bit (CPUID.1:ECX[31])
// is set.
func IsVirtualized() bool {
	_, _, ecx, _ := cpuidFn(1)
	return ecx&(1<<31) != 0
}

// VendorString copies the 12-byte CPU vendor identification string into buf.
func VendorString(buf *[12]byte) {
	_, ebx, ecx, edx := cpuidFn(0)
	putRegister(buf[0:4], ebx)
	putRegister(buf[4:8], edx)
	putRegister(buf[8:12], ecx)
}

// BrandString copies the processor brand string (CPUID leaves
// 0x80000002-0x80000004) into buf and returns its length with any leading
// padding and trailing NUL bytes stripped. A zero length is returned if the
// CPU does not support the extended brand leaves.
func BrandString(buf *[48]byte) int {
	if maxExt, _, _, _ := cpuidFn(0x80000000); maxExt < 0x80000004 {
		return 0
	}

	for i := uint32(0); i < 3; i++ {
		eax, ebx, ecx, edx := cpuidFn(0x80000002 + i)
		off := i * 16
		putRegister(buf[off:off+4], eax)
		putRegister(buf[off+4:off+8], ebx)
		putRegister(buf[off+8:off+12], ecx)
		putRegister(buf[off+12:off+16], edx)
	}

	// Some vendors right-align the brand string using spaces
	start := 0
	for start < len(buf) && buf[start] == ' ' {
		start++
	}
	end := start
	for end < len(buf) && buf[end] != 0 {
		end++
	}
	copy(buf[:], buf[start:end])
	for i := end - start; i < len(buf); i++ {
		buf[i] = 0
	}

	return end - start
}

// CoreCount returns the number of logical processors reported by
// CPUID.1:EBX[23:16] when hyper-threading is advertised; 1 otherwise.
func CoreCount() uint32 {
	_, ebx, _, edx := cpuidFn(1)
	if edx&(1<<28) == 0 {
		return 1
	}

	if count := (ebx >> 16) & 0xff; count != 0 {
		return count
	}
	return 1
}

// putRegister stores reg into dst using little-endian byte order.
func putRegister(dst []byte, reg uint32) {
	dst[0] = byte(reg)
	dst[1] = byte(reg >> 8)
	dst[2] = byte(reg >> 16)
	dst[3] = byte(reg >> 24)
}

// PortWriteByte writes a uint8 value to the requested port.
func PortWriteByte(port uint16, val uint8)

// PortReadByte reads a uint8 value from the requested port.
func PortReadByte(port uint16) uint8

// PortReadWord reads a uint16 value from the requested port.
func PortReadWord(port uint16) uint16
