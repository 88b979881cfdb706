package errors

import (
	"calculi/internal/parser"
)

// FromParseError builds a CompilerError from a concrete-syntax parse error,
// for rendering by ErrorReporter in the caret-and-color format.
func FromParseError(e parser.ParseError) CompilerError {
	return CompilerError{
		Level:    Error,
		Code:     ErrorParse,
		Message:  e.Message,
		Position: e.Position,
		Length:   1,
	}
}

// FromScanError builds a CompilerError from a scanner error.
func FromScanError(e parser.ScanError) CompilerError {
	length := e.Length
	if length <= 0 {
		length = 1
	}
	return CompilerError{
		Level:    Error,
		Code:     ErrorScan,
		Message:  e.Message,
		Position: e.Position,
		Length:   length,
	}
}

// machineErrorCode maps a MachineErrorKind onto its error code.
func machineErrorCode(kind MachineErrorKind) string {
	switch kind {
	case StackUnderflow:
		return ErrorStackUnderflow
	case UnknownLocation:
		return ErrorUnknownLocation
	case EnvUnderflow:
		return ErrorEnvUnderflow
	case Deadlock:
		return ErrorDeadlock
	default:
		return ""
	}
}

// FromMachineError builds a CompilerError from a runtime MachineError. Machine
// errors have no source position, so Position is left zero-valued and
// ErrorReporter's caller should use FormatMachineError instead of FormatError
// when no source text is available to anchor a caret against.
func FromMachineError(e *MachineError) CompilerError {
	return CompilerError{
		Level:   Error,
		Code:    machineErrorCode(e.Kind),
		Message: e.Error(),
	}
}
