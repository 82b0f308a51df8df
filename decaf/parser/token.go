package parser

type TokenKind int

const (
	TokenKeyword TokenKind = iota
	TokenIdent
	TokenSymbol
	TokenDecLit
	TokenHexLit
	TokenStrLit
)

var tokenKindNames = map[TokenKind]string{
	TokenKeyword: "keyword",
	TokenIdent:   "identifier",
	TokenSymbol:  "symbol",
	TokenDecLit:  "decimal literal",
	TokenHexLit:  "hex literal",
	TokenStrLit:  "string literal",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is one lexical token. Text is the exact source spelling; string
// literals keep their surrounding quotes.
type Token struct {
	Kind TokenKind
	Text string
	Line int
}

var keywords = map[string]bool{
	"int":      true,
	"bool":     true,
	"void":     true,
	"def":      true,
	"if":       true,
	"else":     true,
	"while":    true,
	"return":   true,
	"break":    true,
	"continue": true,
	"true":     true,
	"false":    true,
}

// IsKeyword reports whether ident is a reserved Decaf word.
func IsKeyword(ident string) bool {
	return keywords[ident]
}
