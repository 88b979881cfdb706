package parser

import (
	"calculi/internal/seqterm"
)

// ParseSequential parses the SAM concrete syntax: `*` (skip), a bare
// identifier (variable), `[pushed].next` (push), `<arg>.next` (pop), and
// `first;next` (sequencing, lowest precedence, right-associative).
func ParseSequential(src string) (seqterm.Term, error) {
	scanner := NewScanner(src)
	tokens := scanner.ScanTokens()
	if len(scanner.errors) > 0 {
		return nil, scanner.errors[0]
	}

	p := NewParser(tokens)
	t := p.parseSeq()
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return t, nil
}

// parseSeq parses `first;next`, binding looser than `.`-continuations.
func (p *Parser) parseSeq() seqterm.Term {
	first := p.parseSeqPrimary()
	if p.match(SEMICOLON) {
		next := p.parseSeq()
		return seqterm.Seq{First: first, Next: next}
	}
	return first
}

// parseSeqCont parses an optional `.next` continuation, defaulting to Skip.
func (p *Parser) parseSeqCont() seqterm.Term {
	if p.match(DOT) {
		return p.parseSeqPrimary()
	}
	return seqterm.Skip{}
}

func (p *Parser) parseSeqPrimary() seqterm.Term {
	switch {
	case p.match(STAR):
		return seqterm.Skip{}
	case p.match(LESS):
		arg := p.consume(IDENT, "expected identifier after '<'")
		p.consume(GREATER, "expected '>' to close pop")
		return seqterm.Pop{Arg: arg.Lexeme, Next: p.parseSeqCont()}
	case p.match(LBRACKET):
		pushed := p.parseSeq()
		p.consume(RBRACKET, "expected ']' to close push")
		return seqterm.Push{Pushed: pushed, Next: p.parseSeqCont()}
	case p.match(IDENT):
		return seqterm.Variable{Name: p.previous().Lexeme}
	default:
		p.errorAtCurrent("expected '*', an identifier, '[', or '<'")
		return seqterm.Skip{}
	}
}
