package errors

import "fmt"

// MachineErrorKind distinguishes the handful of ways a machine step can
// go wrong at runtime, as opposed to CompilerError's parse/analysis-time
// diagnostics.
type MachineErrorKind string

const (
	// StackUnderflow is a Pop on an empty stack location. SAM/FCMC Pop has
	// no final interpretation, unlike a Lambda with an empty argument
	// stack, which is simply final.
	StackUnderflow MachineErrorKind = "stack_underflow"

	// UnknownLocation is a reference to a location the pre-run location
	// scan never registered. Should be unreachable for well-formed input.
	UnknownLocation MachineErrorKind = "unknown_location"

	// EnvUnderflow is a Variable lookup against an environment with no
	// ancestor binding for the name. KAM/SAM/FCMC treat this as a free
	// variable (not an error); no machine in this module raises this kind,
	// and there is no strict closed-term mode that does.
	EnvUnderflow MachineErrorKind = "env_underflow"

	// Deadlock is every live thread blocked on a channel Pop with no
	// thread able to make progress.
	Deadlock MachineErrorKind = "deadlock"
)

// MachineError is a runtime error raised by a machine's step function.
type MachineError struct {
	Kind     MachineErrorKind
	Location string // the location name involved, if any
	Detail   string
}

func (e *MachineError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Location)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// NewStackUnderflow builds a StackUnderflow error for the given location.
func NewStackUnderflow(location string) *MachineError {
	return &MachineError{Kind: StackUnderflow, Location: location}
}

// NewUnknownLocation builds an UnknownLocation error for the given location.
func NewUnknownLocation(location string) *MachineError {
	return &MachineError{Kind: UnknownLocation, Location: location}
}

// NewDeadlock builds a Deadlock error describing why no thread could progress.
func NewDeadlock(detail string) *MachineError {
	return &MachineError{Kind: Deadlock, Detail: detail}
}
