package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"calculi/internal/term"
)

var lambdaParser = participle.MustBuild[lambdaExpr](
	participle.Lexer(lambdaLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseLambda parses the plain lambda-term concrete syntax (`\x. e`,
// juxtaposed application, parenthesized grouping) into a term.Term.
func ParseLambda(src string) (term.Term, error) {
	expr, err := lambdaParser.ParseString("", src)
	if err != nil {
		perr := ParseError{Message: fmt.Sprintf("parse error: %s", err)}
		if pe, ok := err.(participle.Error); ok {
			pos := pe.Position()
			perr.Position = Position{Line: pos.Line, Column: pos.Column, Offset: pos.Offset}
		}
		return nil, perr
	}
	return expr.toTerm(), nil
}
