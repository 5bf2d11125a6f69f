package cpu

var pauseFn = Pause

// SpinWait busy-waits for the requested number of iterations, issuing a PAUSE
// hint on each one. It provides ordering and rough pacing only: the elapsed
// wall-clock time depends on the CPU and is not meaningful.
func SpinWait(iterations uint32) {
	for i := uint32(0); i < iterations; i++ {
		pauseFn()
	}
}
