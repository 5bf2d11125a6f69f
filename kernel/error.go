package kernel

// Error describes a kernel error. Kernel errors are declared as package-level
// pointers to Error values: the shell and driver paths run without a heap so
// errors.New and fmt.Errorf are not available to them.
type Error struct {
	// The module where the error occurred.
	Module string

	// The error message
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}
