// Package format renders Decaf syntax trees for human and machine
// consumption.
package format

import "github.com/decaf-lang/decaf/decaf/ast"

// Encoder writes one AST to an output stream.
type Encoder interface {
	Encode(node *ast.Node) error
}
