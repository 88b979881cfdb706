package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"calculi/internal/parser"
)

// ConvertDiagnostic turns a parse/scan failure from internal/parser into a
// single LSP diagnostic. Non-parser errors fall back to a diagnostic
// anchored at the start of the document.
func ConvertDiagnostic(err error) []protocol.Diagnostic {
	switch e := err.(type) {
	case parser.ParseError:
		return []protocol.Diagnostic{positionDiagnostic(e.Position, 5, e.Message, "parser")}
	case parser.ScanError:
		length := e.Length
		if length <= 0 {
			length = 3
		}
		return []protocol.Diagnostic{positionDiagnostic(e.Position, length, e.Message, "scanner")}
	default:
		return []protocol.Diagnostic{{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 0, Character: 1},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("machines"),
			Message:  err.Error(),
		}}
	}
}

func positionDiagnostic(pos parser.Position, length int, message, source string) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(pos.Line - 1),
				Character: uint32(pos.Column - 1),
			},
			End: protocol.Position{
				Line:      uint32(pos.Line - 1),
				Character: uint32(pos.Column - 1 + length),
			},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString(source),
		Message:  message,
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
