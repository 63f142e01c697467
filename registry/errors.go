package registry

import "github.com/pkg/errors"

// Sentinel errors for the failures a generation run can report. Callers
// should test for them with errors.Is, since they are always returned
// wrapped with some context about where they were found.
var (
	// ErrStructural indicates that the input does not have the shape of a
	// grammar: a required field is missing, a value has the wrong type, or
	// an enumerant value uses the wrong variant for its operand kind.
	ErrStructural = errors.New("structural error")

	// ErrInvalidHexInt indicates a bit-flag value that either lacks the
	// "0x" prefix or is not valid hexadecimal.
	ErrInvalidHexInt = errors.New("invalid hex integer")

	// ErrMissingOpcodePrefix indicates a core instruction whose name does
	// not start with "Op".
	ErrMissingOpcodePrefix = errors.New("missing opcode prefix")

	// ErrSinkWrite indicates that the output writer refused the generated
	// text.
	ErrSinkWrite = errors.New("failed to write output")
)

func structuralf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrStructural, format, args...)
}
