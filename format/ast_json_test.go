package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/decaf-lang/decaf/decaf/ast"
	"github.com/decaf-lang/decaf/decaf/parser"
)

func parseSource(t *testing.T, src string) *ast.Node {
	t.Helper()
	root, err := parser.ParseSource([]byte(src))
	if err != nil {
		t.Fatalf("parse %q: %s", src, err)
	}
	return root
}

func TestASTJSONEncoder(t *testing.T) {
	root := parseSource(t, "int g;\ndef bool f(int a) { a = 0; return false; }")

	var buf bytes.Buffer
	if err := NewASTJSONEncoder(&buf).Encode(root); err != nil {
		t.Fatalf("encode: %s", err)
	}

	var decoded struct {
		Kind      string `json:"kind"`
		Variables []struct {
			Kind string `json:"kind"`
			Name string `json:"name"`
			Type string `json:"type"`
			Line int    `json:"line"`
		} `json:"variables"`
		Functions []struct {
			Name   string `json:"name"`
			Type   string `json:"type"`
			Params []struct {
				Name string `json:"name"`
				Type string `json:"type"`
			} `json:"params"`
			Body struct {
				Statements []json.RawMessage `json:"statements"`
			} `json:"body"`
		} `json:"functions"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal: %s", err)
	}

	if decoded.Kind != "Program" {
		t.Errorf("kind: got %q, want Program", decoded.Kind)
	}
	if len(decoded.Variables) != 1 || decoded.Variables[0].Name != "g" ||
		decoded.Variables[0].Type != "int" || decoded.Variables[0].Line != 1 {
		t.Errorf("variables: got %+v", decoded.Variables)
	}
	if len(decoded.Functions) != 1 {
		t.Fatalf("functions: got %d, want 1", len(decoded.Functions))
	}
	fn := decoded.Functions[0]
	if fn.Name != "f" || fn.Type != "bool" {
		t.Errorf("function: got %+v", fn)
	}
	if len(fn.Params) != 1 || fn.Params[0].Name != "a" || fn.Params[0].Type != "int" {
		t.Errorf("params: got %+v", fn.Params)
	}
	if len(fn.Body.Statements) != 2 {
		t.Errorf("body statements: got %d, want 2", len(fn.Body.Statements))
	}
}

func TestASTJSONEncoderKeepsZeroValues(t *testing.T) {
	// "a = 0" and "return false" must keep their literal values in the
	// output even though they are Go zero values.
	root := parseSource(t, "def bool f() { return false; }")

	text, err := NewASTJSONEncoder(new(bytes.Buffer)).MarshalText(root)
	if err != nil {
		t.Fatalf("marshal: %s", err)
	}
	if !strings.Contains(string(text), `"value": false`) {
		t.Errorf("output missing bool literal value:\n%s", text)
	}
}

func TestTreeEncoder(t *testing.T) {
	root := parseSource(t, "def void main() { return; }")

	var buf bytes.Buffer
	if err := NewTreeEncoder(&buf).Encode(root); err != nil {
		t.Fatalf("encode: %s", err)
	}
	for _, want := range []string{"Program", "FuncDecl void main()", "Block", "Return"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("dump missing %q:\n%s", want, buf.String())
		}
	}
}
