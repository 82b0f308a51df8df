// Package ast defines the abstract syntax tree for Decaf programs.
//
// Nodes form a strict ownership tree: every factory takes ownership of the
// child nodes and lists passed to it, and a node is reachable from exactly
// one parent. Every node records the source line on which its construct
// began.
package ast

// Type is a declared Decaf type. TypeStr never appears in a declaration;
// it tags string literal nodes only.
type Type int

const (
	TypeVoid Type = iota
	TypeInt
	TypeBool
	TypeStr
)

var typeNames = map[Type]string{
	TypeVoid: "void",
	TypeInt:  "int",
	TypeBool: "bool",
	TypeStr:  "str",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

type BinaryOp int

const (
	OpOr BinaryOp = iota
	OpAnd
	OpEQ
	OpNEQ
	OpLT
	OpLE
	OpGE
	OpGT
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
)

var binaryOpNames = map[BinaryOp]string{
	OpOr:  "||",
	OpAnd: "&&",
	OpEQ:  "==",
	OpNEQ: "!=",
	OpLT:  "<",
	OpLE:  "<=",
	OpGE:  ">=",
	OpGT:  ">",
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpMod: "%",
}

func (op BinaryOp) String() string {
	if name, ok := binaryOpNames[op]; ok {
		return name
	}
	return "unknown"
}

type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpNot
)

func (op UnaryOp) String() string {
	switch op {
	case OpNeg:
		return "-"
	case OpNot:
		return "!"
	}
	return "unknown"
}

type NodeKind int

const (
	KindProgram NodeKind = iota
	KindVarDecl
	KindFuncDecl
	KindBlock
	KindAssignment
	KindConditional
	KindBreak
	KindContinue
	KindReturn
	KindBinaryOp
	KindUnaryOp
	KindLocation
	KindLiteral
)

var nodeKindNames = map[NodeKind]string{
	KindProgram:     "Program",
	KindVarDecl:     "VarDecl",
	KindFuncDecl:    "FuncDecl",
	KindBlock:       "Block",
	KindAssignment:  "Assignment",
	KindConditional: "Conditional",
	KindBreak:       "Break",
	KindContinue:    "Continue",
	KindReturn:      "Return",
	KindBinaryOp:    "BinaryOp",
	KindUnaryOp:     "UnaryOp",
	KindLocation:    "Location",
	KindLiteral:     "Literal",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Parameter is one (name, type) entry of a function's parameter list.
type Parameter struct {
	Name string
	Type Type
}

// ParameterList is an ordered parameter list; declaration order is
// semantically significant.
type ParameterList []Parameter

func (pl *ParameterList) Add(name string, t Type) {
	*pl = append(*pl, Parameter{Name: name, Type: t})
}

// NodeList is an ordered list of sibling nodes. Appending transfers
// ownership of the appended node to the list.
type NodeList []*Node

func (nl *NodeList) Add(node *Node) {
	if node != nil {
		*nl = append(*nl, node)
	}
}

// Node is a tagged AST node. Kind selects which of the remaining fields
// are meaningful; unused fields stay at their zero value.
type Node struct {
	Kind NodeKind
	Line int

	// VarDecl, FuncDecl, Location
	Name string
	// VarDecl: declared type; FuncDecl: return type; Literal: value type
	Type      Type
	IsArray   bool
	ArraySize int

	// Literal values, selected by Type
	IntValue  int
	BoolValue bool
	StrValue  string

	BinaryOp BinaryOp
	UnaryOp  UnaryOp

	Left      *Node // BinaryOp
	Right     *Node // BinaryOp
	Operand   *Node // UnaryOp
	Condition *Node // Conditional
	IfBlock   *Node // Conditional
	ElseBlock *Node // Conditional, nil when absent
	Location  *Node // Assignment left-hand side
	Value     *Node // Assignment right-hand side, Return value (nil for bare return)
	Index     *Node // Location array index, nil for scalar access
	Body      *Node // FuncDecl

	Params     ParameterList // FuncDecl
	Variables  NodeList      // Program, Block
	Functions  NodeList      // Program
	Statements NodeList      // Block
}

// NewProgram builds the root node from the ordered global variable and
// function lists. The root carries no source line of its own.
func NewProgram(variables, functions NodeList) *Node {
	return &Node{
		Kind:      KindProgram,
		Variables: variables,
		Functions: functions,
	}
}

func NewVarDecl(name string, t Type, isArray bool, arraySize int, line int) *Node {
	return &Node{
		Kind:      KindVarDecl,
		Line:      line,
		Name:      name,
		Type:      t,
		IsArray:   isArray,
		ArraySize: arraySize,
	}
}

func NewFuncDecl(name string, returnType Type, params ParameterList, body *Node, line int) *Node {
	return &Node{
		Kind:   KindFuncDecl,
		Line:   line,
		Name:   name,
		Type:   returnType,
		Params: params,
		Body:   body,
	}
}

func NewBlock(variables, statements NodeList, line int) *Node {
	return &Node{
		Kind:       KindBlock,
		Line:       line,
		Variables:  variables,
		Statements: statements,
	}
}

func NewAssignment(location, value *Node, line int) *Node {
	return &Node{
		Kind:     KindAssignment,
		Line:     line,
		Location: location,
		Value:    value,
	}
}

// NewConditional builds an if statement; elseBlock may be nil.
func NewConditional(condition, ifBlock, elseBlock *Node, line int) *Node {
	return &Node{
		Kind:      KindConditional,
		Line:      line,
		Condition: condition,
		IfBlock:   ifBlock,
		ElseBlock: elseBlock,
	}
}

func NewBreak(line int) *Node {
	return &Node{Kind: KindBreak, Line: line}
}

func NewContinue(line int) *Node {
	return &Node{Kind: KindContinue, Line: line}
}

// NewReturn builds a return statement; value is nil for a bare return.
func NewReturn(value *Node, line int) *Node {
	return &Node{Kind: KindReturn, Line: line, Value: value}
}

func NewBinaryOp(op BinaryOp, left, right *Node, line int) *Node {
	return &Node{
		Kind:     KindBinaryOp,
		Line:     line,
		BinaryOp: op,
		Left:     left,
		Right:    right,
	}
}

func NewUnaryOp(op UnaryOp, operand *Node, line int) *Node {
	return &Node{
		Kind:    KindUnaryOp,
		Line:    line,
		UnaryOp: op,
		Operand: operand,
	}
}

// NewLocation builds a variable reference; index may be nil for scalar
// access.
func NewLocation(name string, index *Node, line int) *Node {
	return &Node{Kind: KindLocation, Line: line, Name: name, Index: index}
}

func NewIntLiteral(value int, line int) *Node {
	return &Node{Kind: KindLiteral, Line: line, Type: TypeInt, IntValue: value}
}

func NewBoolLiteral(value bool, line int) *Node {
	return &Node{Kind: KindLiteral, Line: line, Type: TypeBool, BoolValue: value}
}

func NewStringLiteral(value string, line int) *Node {
	return &Node{Kind: KindLiteral, Line: line, Type: TypeStr, StrValue: value}
}
