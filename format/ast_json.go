package format

import (
	"encoding/json"
	"io"

	"github.com/decaf-lang/decaf/decaf/ast"
)

type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node *ast.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText(node *ast.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type jsonNode struct {
	Kind     string `json:"kind"`
	Line     int    `json:"line,omitempty"`
	Name     string `json:"name,omitempty"`
	Type     string `json:"type,omitempty"`
	Operator string `json:"operator,omitempty"`
	// Scalar for literals; nested node for assignment and return values.
	Value      any         `json:"value,omitempty"`
	Params     []jsonParam `json:"params,omitempty"`
	Left       *jsonNode   `json:"left,omitempty"`
	Right      *jsonNode   `json:"right,omitempty"`
	Operand    *jsonNode   `json:"operand,omitempty"`
	Condition  *jsonNode   `json:"condition,omitempty"`
	IfBlock    *jsonNode   `json:"ifBlock,omitempty"`
	ElseBlock  *jsonNode   `json:"elseBlock,omitempty"`
	Location   *jsonNode   `json:"location,omitempty"`
	Index      *jsonNode   `json:"index,omitempty"`
	Body       *jsonNode   `json:"body,omitempty"`
	Variables  []*jsonNode `json:"variables,omitempty"`
	Functions  []*jsonNode `json:"functions,omitempty"`
	Statements []*jsonNode `json:"statements,omitempty"`
}

type jsonParam struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func nodeToJSON(n *ast.Node) *jsonNode {
	if n == nil {
		return nil
	}

	jn := &jsonNode{
		Kind: n.Kind.String(),
		Line: n.Line,
	}

	switch n.Kind {
	case ast.KindProgram:
		jn.Variables = listToJSON(n.Variables)
		jn.Functions = listToJSON(n.Functions)
	case ast.KindVarDecl:
		jn.Name = n.Name
		jn.Type = n.Type.String()
	case ast.KindFuncDecl:
		jn.Name = n.Name
		jn.Type = n.Type.String()
		for _, p := range n.Params {
			jn.Params = append(jn.Params, jsonParam{Name: p.Name, Type: p.Type.String()})
		}
		jn.Body = nodeToJSON(n.Body)
	case ast.KindBlock:
		jn.Variables = listToJSON(n.Variables)
		jn.Statements = listToJSON(n.Statements)
	case ast.KindAssignment:
		jn.Location = nodeToJSON(n.Location)
		jn.Value = nodeToJSON(n.Value)
	case ast.KindConditional:
		jn.Condition = nodeToJSON(n.Condition)
		jn.IfBlock = nodeToJSON(n.IfBlock)
		jn.ElseBlock = nodeToJSON(n.ElseBlock)
	case ast.KindReturn:
		if n.Value != nil {
			jn.Value = nodeToJSON(n.Value)
		}
	case ast.KindBinaryOp:
		jn.Operator = n.BinaryOp.String()
		jn.Left = nodeToJSON(n.Left)
		jn.Right = nodeToJSON(n.Right)
	case ast.KindUnaryOp:
		jn.Operator = n.UnaryOp.String()
		jn.Operand = nodeToJSON(n.Operand)
	case ast.KindLocation:
		jn.Name = n.Name
		jn.Index = nodeToJSON(n.Index)
	case ast.KindLiteral:
		jn.Type = n.Type.String()
		// Pointers keep zero values ("0", "false", "") in the output.
		switch n.Type {
		case ast.TypeInt:
			value := n.IntValue
			jn.Value = &value
		case ast.TypeBool:
			value := n.BoolValue
			jn.Value = &value
		case ast.TypeStr:
			value := n.StrValue
			jn.Value = &value
		}
	}

	return jn
}

func listToJSON(nodes ast.NodeList) []*jsonNode {
	if len(nodes) == 0 {
		return nil
	}
	result := make([]*jsonNode, len(nodes))
	for i, node := range nodes {
		result[i] = nodeToJSON(node)
	}
	return result
}
