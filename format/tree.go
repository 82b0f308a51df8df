package format

import (
	"io"

	"github.com/decaf-lang/decaf/decaf/ast"
)

// TreeEncoder writes the indented text dump of the AST.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(node *ast.Node) error {
	_, err := io.WriteString(e.w, node.String())
	return err
}
