package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calculi/internal/parser"
)

func TestConvertDiagnosticFromParseError(t *testing.T) {
	diags := ConvertDiagnostic(parser.ParseError{Message: "expected '>'", Position: parser.Position{Line: 2, Column: 4}})
	require.Len(t, diags, 1)
	assert.Equal(t, uint32(1), diags[0].Range.Start.Line)
	assert.Equal(t, uint32(3), diags[0].Range.Start.Character)
	assert.Equal(t, "expected '>'", diags[0].Message)
}

func TestConvertDiagnosticFromScanError(t *testing.T) {
	diags := ConvertDiagnostic(parser.ScanError{Message: "bad char", Position: parser.Position{Line: 1, Column: 1}, Length: 2})
	require.Len(t, diags, 1)
	assert.Equal(t, uint32(2), diags[0].Range.End.Character)
}

func TestParseByExtensionDispatchesOnSuffix(t *testing.T) {
	_, err := parseByExtension("term.lam", `\x. x`)
	assert.NoError(t, err)

	_, err = parseByExtension("prog.sam", "[x].<y>.y")
	assert.NoError(t, err)

	_, err = parseByExtension("prog.fcmc", "*")
	assert.NoError(t, err)
}

func TestParseByExtensionReportsError(t *testing.T) {
	_, err := parseByExtension("prog.sam", "[x")
	assert.Error(t, err)
}
