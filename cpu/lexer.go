package cpu

import (
	"strings"
)

// token is a single lexical element of an instruction line.
type token struct {
	text   string
	column int
}

// isSeparator reports characters that are always a token on their own.
func isSeparator(ch byte) bool {
	return ch == '@' || ch == '=' || ch == ';'
}

// isWord reports characters that may appear in a mnemonic or number.
func isWord(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return true
	}
	return strings.IndexByte("_.$:+-&|!", ch) >= 0
}

// tokenize splits an instruction line into tokens.
// A '//' starts a comment running to the end of the line.
func tokenize(line string) (tokens []token, err error) {
	for n := 0; n < len(line); {
		ch := line[n]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			n++
		case ch == '/':
			if n+1 < len(line) && line[n+1] == '/' {
				return
			}
			err = &ErrMalformedLine{Line: line, Column: n + 1}
			return
		case isSeparator(ch):
			tokens = append(tokens, token{text: line[n : n+1], column: n + 1})
			n++
		case isWord(ch):
			start := n
			for n < len(line) && isWord(line[n]) {
				n++
			}
			tokens = append(tokens, token{text: line[start:n], column: start + 1})
		default:
			err = &ErrMalformedLine{Line: line, Column: n + 1}
			return
		}
	}

	return
}

// scanner walks a token list.
type scanner struct {
	tokens []token
	pos    int
}

// peek returns the current token text, or "" at the end of the line.
func (sc *scanner) peek() string {
	if sc.pos >= len(sc.tokens) {
		return ""
	}
	return sc.tokens[sc.pos].text
}

// next returns the current token text and advances.
func (sc *scanner) next() (text string) {
	text = sc.peek()
	if sc.pos < len(sc.tokens) {
		sc.pos++
	}
	return
}

// is reports whether the current token is text.
func (sc *scanner) is(text string) bool {
	return sc.pos < len(sc.tokens) && sc.tokens[sc.pos].text == text
}

// done reports whether all tokens have been consumed.
func (sc *scanner) done() bool {
	return sc.pos >= len(sc.tokens)
}
