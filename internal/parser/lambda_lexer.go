// Package parser SPDX-License-Identifier: Apache-2.0
package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// lambdaLexer tokenizes the plain lambda-term surface: `\x. e`,
// application by juxtaposition, parentheses for grouping.
var lambdaLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Backslash", `\\`, nil},
		{"Dot", `\.`, nil},
		{"LParen", `\(`, nil},
		{"RParen", `\)`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
