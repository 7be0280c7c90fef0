package diagfmt

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/Neswisoft/ruby/internal/ast"
	"github.com/Neswisoft/ruby/internal/loader"
	"github.com/Neswisoft/ruby/internal/source"
)

func bigFromString(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad integer literal %q", s)
	}
	return n
}

// treeResult собирает результат разбора "xyz" вручную, без декодера.
func treeResult() *loader.ParseResult {
	src := source.New([]byte("xyz\n"))
	src.LineOffsets = []uint32{0}

	read := &ast.Node{
		Kind: ast.KindLocalVariableRead,
		Span: source.NewSpan(0, 3),
		Fields: []ast.Field{
			{Kind: ast.FieldConstant, Const: "xyz", ConstOK: true},
			{Kind: ast.FieldUint32, U32: 0},
		},
	}
	stmts := &ast.Node{
		Kind:   ast.KindStatements,
		Span:   source.NewSpan(0, 3),
		Fields: []ast.Field{{Kind: ast.FieldNodeList, Nodes: []*ast.Node{read}}},
	}
	root := &ast.Node{
		Kind: ast.KindProgram,
		Span: source.NewSpan(0, 3),
		Fields: []ast.Field{
			{Kind: ast.FieldConstantList, Consts: []string{"xyz"}},
			{Kind: ast.FieldNode, Node: stmts},
		},
	}
	dataSpan := source.NewSpan(0, 3)
	return &loader.ParseResult{
		Source:        src,
		Root:          root,
		Comments:      []ast.Comment{{Kind: ast.CommentInline, Span: source.NewSpan(0, 3)}},
		MagicComments: []ast.MagicComment{{KeySpan: source.NewSpan(0, 1), ValueSpan: source.NewSpan(2, 1)}},
		DataSpan:      &dataSpan,
	}
}

func TestFormatTreePretty(t *testing.T) {
	res := treeResult()

	var buf bytes.Buffer
	if err := FormatTreePretty(&buf, res, PrettyOpts{}); err != nil {
		t.Fatalf("FormatTreePretty() error: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"ProgramNode (span: 0-3)",
		`├─ locals: ["xyz"]`,
		"└─ statements: StatementsNode (span: 0-3)",
		"   └─ body[1]",
		"      └─ [0] LocalVariableReadNode (span: 0-3)",
		`         ├─ name: "xyz"`,
		"         └─ depth: 0",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("missing %q in output:\n%s", want, output)
		}
	}
}

func TestFormatTreePrettyNoRoot(t *testing.T) {
	res := &loader.ParseResult{Source: source.New(nil)}

	var buf bytes.Buffer
	if err := FormatTreePretty(&buf, res, PrettyOpts{}); err != nil {
		t.Fatalf("FormatTreePretty() error: %v", err)
	}
	if !strings.Contains(buf.String(), "<no tree>") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestFormatTreeJSON(t *testing.T) {
	res := treeResult()

	var buf bytes.Buffer
	if err := FormatTreeJSON(&buf, res, JSONOpts{}); err != nil {
		t.Fatalf("FormatTreeJSON() error: %v", err)
	}

	var out ParseOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Encoding != "UTF-8" || out.StartLine != 1 {
		t.Errorf("encoding = %q, start line = %d", out.Encoding, out.StartLine)
	}
	if out.Root == nil || out.Root.Kind != "ProgramNode" {
		t.Fatalf("root = %+v", out.Root)
	}
	if _, ok := out.Root.Fields["statements"]; !ok {
		t.Errorf("root fields = %v, want statements", out.Root.Fields)
	}
	if len(out.Comments) != 1 || out.Comments[0].Kind != "inline" {
		t.Errorf("comments = %+v", out.Comments)
	}
	if len(out.MagicComments) != 1 {
		t.Errorf("magic comments = %+v", out.MagicComments)
	}
	if out.Data == nil || out.Data.EndByte != 3 {
		t.Errorf("data = %+v", out.Data)
	}
}

func TestFieldJSONShapes(t *testing.T) {
	src := source.New([]byte("x"))

	tests := []struct {
		name  string
		field ast.Field
		check func(v any) bool
	}{
		{
			"absent optional node",
			ast.Field{Kind: ast.FieldOptionalNode},
			func(v any) bool { return v == nil },
		},
		{
			"absent optional constant",
			ast.Field{Kind: ast.FieldOptionalConstant},
			func(v any) bool { return v == nil },
		},
		{
			"integer rendered as string",
			ast.Field{Kind: ast.FieldInteger, Int: bigFromString(t, "123456789012345678901234567890")},
			func(v any) bool { return v == "123456789012345678901234567890" },
		},
		{
			"location",
			ast.Field{Kind: ast.FieldLocation, Span: source.NewSpan(1, 2), SpanOK: true},
			func(v any) bool {
				loc, ok := v.(LocationJSON)
				return ok && loc.StartByte == 1 && loc.EndByte == 3
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if v := fieldJSON(tc.field, src, JSONOpts{}); !tc.check(v) {
				t.Errorf("fieldJSON() = %#v", v)
			}
		})
	}
}
