package parser

import (
	"strconv"
	"unicode"
)

// maxNumberLen bounds the digits accepted in one number so values always fit
// in an int.
const maxNumberLen = 9

// Lexer tokenizes one line of move input. Whitespace and commas separate
// tokens and are not returned.
type Lexer struct {
	input []rune
	pos   int
}

// NewLexer creates a lexer over line.
func NewLexer(line string) *Lexer {
	return &Lexer{input: []rune(line)}
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '?'
}

// NextToken returns the next token, or an EOFToken at the end of input.
func (l *Lexer) NextToken() Token {
	for l.pos < len(l.input) && isSeparator(l.input[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return Token{Type: EOFToken, Column: l.pos + 1}
	}

	start := l.pos
	r := l.input[l.pos]
	switch {
	case r >= '0' && r <= '9':
		for l.pos < len(l.input) && l.input[l.pos] >= '0' && l.input[l.pos] <= '9' {
			l.pos++
		}
		text := string(l.input[start:l.pos])
		if len(text) > maxNumberLen {
			return Token{Type: ErrorToken, Text: text, Column: start + 1}
		}
		n, _ := strconv.Atoi(text)
		return Token{Type: NumberToken, Text: text, Value: n, Column: start + 1}

	case isWordRune(r):
		for l.pos < len(l.input) && isWordRune(l.input[l.pos]) {
			l.pos++
		}
		return Token{Type: WordToken, Text: string(l.input[start:l.pos]), Column: start + 1}

	default:
		l.pos++
		return Token{Type: ErrorToken, Text: string(r), Column: start + 1}
	}
}

// Tokens returns every token of the line, excluding the final EOFToken.
func (l *Lexer) Tokens() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOFToken {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
