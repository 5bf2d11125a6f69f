package device

import (
	"haldenos/kernel"
	"io"
)

// Driver is an interface implemented by all drivers. Each device package
// declares its own device interface embedding Driver, together with a typed
// list of hardware probes that the hal walks during detection.
type Driver interface {
	// DriverName returns the name of the driver.
	DriverName() string

	// DriverVersion returns the driver version.
	DriverVersion() (major uint16, minor uint16, patch uint16)

	// DriverInit initializes the device driver. If the driver init code
	// needs to log some output, it can use the supplied io.Writer in
	// conjunction with a call to kfmt.Fprintf.
	DriverInit(io.Writer) *kernel.Error
}
