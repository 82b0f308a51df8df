package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the subtree as an indented dump, one node per line.
func (n *Node) String() string {
	var b strings.Builder
	n.writeIndent(&b, 0)
	return b.String()
}

func (n *Node) writeIndent(b *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		b.WriteString("  ")
	}
	b.WriteString(n.Kind.String())
	if label := n.label(); label != "" {
		b.WriteString(" ")
		b.WriteString(label)
	}
	if n.Line > 0 {
		fmt.Fprintf(b, " [line %d]", n.Line)
	}
	b.WriteString("\n")

	for _, child := range n.children() {
		child.writeIndent(b, indent+1)
	}
}

func (n *Node) label() string {
	switch n.Kind {
	case KindVarDecl:
		return n.Type.String() + " " + n.Name
	case KindFuncDecl:
		parts := make([]string, len(n.Params))
		for i, p := range n.Params {
			parts[i] = p.Type.String() + " " + p.Name
		}
		return fmt.Sprintf("%s %s(%s)", n.Type, n.Name, strings.Join(parts, ", "))
	case KindBinaryOp:
		return n.BinaryOp.String()
	case KindUnaryOp:
		return n.UnaryOp.String()
	case KindLocation:
		return n.Name
	case KindLiteral:
		switch n.Type {
		case TypeInt:
			return strconv.Itoa(n.IntValue)
		case TypeBool:
			return strconv.FormatBool(n.BoolValue)
		case TypeStr:
			return strconv.Quote(n.StrValue)
		}
	}
	return ""
}

func (n *Node) children() []*Node {
	var kids []*Node
	add := func(child *Node) {
		if child != nil {
			kids = append(kids, child)
		}
	}
	switch n.Kind {
	case KindProgram:
		kids = append(kids, n.Variables...)
		kids = append(kids, n.Functions...)
	case KindFuncDecl:
		add(n.Body)
	case KindBlock:
		kids = append(kids, n.Variables...)
		kids = append(kids, n.Statements...)
	case KindAssignment:
		add(n.Location)
		add(n.Value)
	case KindConditional:
		add(n.Condition)
		add(n.IfBlock)
		add(n.ElseBlock)
	case KindReturn:
		add(n.Value)
	case KindBinaryOp:
		add(n.Left)
		add(n.Right)
	case KindUnaryOp:
		add(n.Operand)
	case KindLocation:
		add(n.Index)
	}
	return kids
}
