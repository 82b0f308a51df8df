// Package parser provides lexical scanning and syntax analysis for the
// Decaf subset language.
//
// # Overview
//
// The lexer turns source bytes into a TokenQueue; the parser drains that
// queue with a single-token-lookahead recursive descent and produces an
// ast.Node tree:
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│   Parser    │
//	│  (bytes)    │     │ (TokenQueue)│     │  (ast.Node) │
//	└─────────────┘     └─────────────┘     └─────────────┘
//
// Parsing is strictly top-down and fail-fast: the first malformed construct
// aborts the whole parse with a *SyntaxError, and no partial tree is ever
// returned. There is no error recovery and no backtracking; every grammar
// rule consumes a contiguous prefix of the remaining tokens.
//
// # Grammar
//
// The accepted language is deliberately small:
//
//	program     = { vardecl | funcdecl } ;
//	vardecl     = type ident ";" ;
//	funcdecl    = "def" type ident "(" params ")" block ;
//	params      = [ type ident { "," type ident } ] ;
//	block       = "{" { vardecl } { assignment } terminator "}" ;
//	assignment  = ident "=" operand ";" ;
//	terminator  = ( "break" | "continue" | "return" [ operand ] ) ";" ;
//
// Expressions appear only as conditional guards and come in exactly three
// shapes: a negated boolean literal, a bare boolean literal, or a single
// binary operator between two operands. There is no operator precedence,
// no parenthesized sub-expression, and no function-call expression. Blocks
// accept an ordered prefix of declarations, an ordered prefix of
// assignments, and exactly one trailing terminator statement. These limits
// are part of the grammar, not accidents of the implementation.
//
// # Entry points
//
// Parse consumes a prepared TokenQueue; ParseSource tokenizes a byte slice
// first. Both return the program root node or a *SyntaxError describing
// the first failure and its source line.
package parser
