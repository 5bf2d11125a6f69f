package kfmt

import (
	"haldenos/kernel"
	"haldenos/kernel/cpu"
)

var (
	// cpuHaltFn is mocked by tests and is automatically inlined by the compiler.
	cpuHaltFn = cpu.Halt

	errUnknown = &kernel.Error{Module: "kernel", Message: "unknown error"}
)

// Panic prints err as a "[module] message" log line followed by a halt notice
// and stops the CPU. A nil err is reported as an unknown kernel error. Calls
// to Panic never return.
func Panic(err *kernel.Error) {
	if err == nil {
		err = errUnknown
	}

	Printf("\n[%s] %s\n", err.Module, err.Message)
	Printf("[%s] system halted\n", err.Module)

	cpuHaltFn()
}
