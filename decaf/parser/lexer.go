package parser

import "fmt"

// Lexer tokenizes Decaf source text. It is a plain byte scanner; Decaf
// source is ASCII.
type Lexer struct {
	input []byte
	pos   int
	line  int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{input: input, line: 1}
}

// Tokenize scans the whole input and returns the resulting token queue.
// It stops at the first lexical error.
func Tokenize(input []byte) (*TokenQueue, error) {
	lexer := NewLexer(input)
	queue := NewTokenQueue()
	for {
		tok, err := lexer.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return queue, nil
		}
		queue.Add(*tok)
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
	}
	return ch
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
			continue
		}
		if ch == '/' && l.peekN(1) == '/' {
			for l.peek() != 0 && l.peek() != '\n' {
				l.advance()
			}
			continue
		}
		return
	}
}

// Next returns the next token, or nil at end of input.
func (l *Lexer) Next() (*Token, error) {
	l.skipWhitespaceAndComments()

	if l.pos >= len(l.input) {
		return nil, nil
	}

	line := l.line
	ch := l.peek()

	switch {
	case isLetter(ch):
		return l.scanIdentOrKeyword(line), nil
	case isDigit(ch):
		return l.scanNumber(line), nil
	case ch == '"':
		return l.scanString(line)
	default:
		return l.scanSymbol(line)
	}
}

func (l *Lexer) scanIdentOrKeyword(line int) *Token {
	start := l.pos
	for isLetter(l.peek()) || isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	text := string(l.input[start:l.pos])
	kind := TokenIdent
	if IsKeyword(text) {
		kind = TokenKeyword
	}
	return &Token{Kind: kind, Text: text, Line: line}
}

func (l *Lexer) scanNumber(line int) *Token {
	start := l.pos
	if l.peek() == '0' && (l.peekN(1) == 'x' || l.peekN(1) == 'X') {
		l.advance()
		l.advance()
		for isHexDigit(l.peek()) {
			l.advance()
		}
		return &Token{Kind: TokenHexLit, Text: string(l.input[start:l.pos]), Line: line}
	}
	for isDigit(l.peek()) {
		l.advance()
	}
	return &Token{Kind: TokenDecLit, Text: string(l.input[start:l.pos]), Line: line}
}

func (l *Lexer) scanString(line int) (*Token, error) {
	start := l.pos
	l.advance()
	for {
		ch := l.peek()
		if ch == 0 || ch == '\n' {
			return nil, fmt.Errorf("line %d: unterminated string literal", line)
		}
		if ch == '\\' {
			// Escapes stay verbatim in the token text.
			l.advance()
			l.advance()
			continue
		}
		l.advance()
		if ch == '"' {
			break
		}
	}
	return &Token{Kind: TokenStrLit, Text: string(l.input[start:l.pos]), Line: line}, nil
}

var twoCharSymbols = []string{"&&", "||", "==", "!=", "<=", ">="}

func (l *Lexer) scanSymbol(line int) (*Token, error) {
	for _, sym := range twoCharSymbols {
		if l.peek() == sym[0] && l.peekN(1) == sym[1] {
			l.advance()
			l.advance()
			return &Token{Kind: TokenSymbol, Text: sym, Line: line}, nil
		}
	}
	switch ch := l.peek(); ch {
	case '(', ')', '{', '}', '[', ']', ';', ',', '=',
		'+', '-', '*', '/', '%', '<', '>', '!':
		l.advance()
		return &Token{Kind: TokenSymbol, Text: string(ch), Line: line}, nil
	default:
		return nil, fmt.Errorf("line %d: unexpected character %q", line, ch)
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
