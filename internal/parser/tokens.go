// Package parser reads player move input and files of position diagrams.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	EOFToken    TokenType = iota
	NumberToken           // A run of decimal digits
	WordToken             // A run of letters, or '?'
	ErrorToken            // Any other character
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:    "EOF",
	NumberToken: "NUMBER",
	WordToken:   "WORD",
	ErrorToken:  "ERROR_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType
	Text string

	// Value holds the number for NumberToken
	Value int

	// Column is the 1-based position of the token in the input
	Column int
}
