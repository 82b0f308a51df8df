package parser

import "fmt"

// ErrorCode classifies a syntax failure.
type ErrorCode int

const (
	UnexpectedEOF ErrorCode = iota
	UnexpectedToken
	InvalidType
	InvalidIdentifier
	InvalidOperator
	InvalidAssignment
	InvalidReturn
)

var errorCodeNames = map[ErrorCode]string{
	UnexpectedEOF:     "unexpected end of input",
	UnexpectedToken:   "unexpected token",
	InvalidType:       "invalid type",
	InvalidIdentifier: "invalid identifier",
	InvalidOperator:   "invalid operator",
	InvalidAssignment: "invalid assignment",
	InvalidReturn:     "invalid return",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "syntax error"
}

// SyntaxError is the single failure type of the parser. Line is 0 when no
// source position is available (end of input).
type SyntaxError struct {
	Code    ErrorCode
	Message string
	Line    int
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s on line %d", e.Message, e.Line)
	}
	return e.Message
}

// syntaxBreakOut carries a SyntaxError up the recursive-descent call chain.
// Grammar rules never recover from a sub-rule failure; the panic unwinds
// to Parse, which converts it back into an error return.
type syntaxBreakOut struct {
	err *SyntaxError
}

func bail(code ErrorCode, line int, format string, args ...any) {
	panic(syntaxBreakOut{err: &SyntaxError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
	}})
}
