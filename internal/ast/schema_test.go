package ast

import (
	"strings"
	"testing"
)

func TestValidateSchema(t *testing.T) {
	if err := ValidateSchema(); err != nil {
		t.Fatalf("ValidateSchema() = %v", err)
	}
}

func TestKindNamesUnique(t *testing.T) {
	seen := make(map[string]Kind, KindCount)
	for k := Kind(1); int(k) <= KindCount; k++ {
		name := k.String()
		if !strings.HasSuffix(name, "Node") {
			t.Errorf("kind %d name %q lacks Node suffix", k, name)
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("kinds %d and %d share the name %q", prev, k, name)
		}
		seen[name] = k
	}
}

func TestKindValid(t *testing.T) {
	if Kind(0).Valid() {
		t.Error("Kind(0) must be invalid, it is the reserved sentinel")
	}
	if !KindProgram.Valid() || !KindYield.Valid() {
		t.Error("schema kinds must be valid")
	}
	if Kind(KindCount + 1).Valid() {
		t.Errorf("Kind(%d) must be invalid", KindCount+1)
	}
	if got := Kind(0).String(); got != "Kind(0)" {
		t.Errorf("Kind(0).String() = %q", got)
	}
}

func TestSchemaShapes(t *testing.T) {
	cases := []struct {
		kind Kind
		want []FieldDef
	}{
		{KindProgram, []FieldDef{{"locals", FieldConstantList}, {"statements", FieldNode}}},
		{KindStatements, []FieldDef{{"body", FieldNodeList}}},
		{KindLocalVariableRead, []FieldDef{{"name", FieldConstant}, {"depth", FieldUint32}}},
		{KindFloat, []FieldDef{{"value", FieldDouble}}},
		{KindInteger, []FieldDef{{"flags", FieldFlags}, {"value", FieldInteger}}},
		{KindNumberedParameters, []FieldDef{{"maximum", FieldUint8}}},
		{KindTrue, []FieldDef{}},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			got, ok := Schema(tc.kind)
			if !ok {
				t.Fatalf("Schema(%v) missing", tc.kind)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("Schema(%v) has %d fields, want %d", tc.kind, len(got), len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("field %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}

	if _, ok := Schema(Kind(0)); ok {
		t.Error("Schema(0) must not resolve")
	}
}

func TestLengthHint(t *testing.T) {
	if !HasLengthHint(KindDef) {
		t.Error("DefNode carries a length hint")
	}
	for _, k := range []Kind{KindProgram, KindCall, KindStatements, Kind(0)} {
		if HasLengthHint(k) {
			t.Errorf("%v must not carry a length hint", k)
		}
	}
}

func TestNodeFieldLookup(t *testing.T) {
	n := &Node{
		Kind: KindLocalVariableRead,
		Fields: []Field{
			{Kind: FieldConstant, Const: "value"},
			{Kind: FieldUint32, U32: 2},
		},
	}
	f, ok := n.Field("depth")
	if !ok || f.U32 != 2 {
		t.Errorf(`Field("depth") = %+v, %v`, f, ok)
	}
	f, ok = n.Field("name")
	if !ok || f.Const != "value" {
		t.Errorf(`Field("name") = %+v, %v`, f, ok)
	}
	if _, ok := n.Field("no_such_field"); ok {
		t.Error("lookup of an undefined field must fail")
	}
}

func TestFieldKindString(t *testing.T) {
	cases := map[FieldKind]string{
		FieldNode:             "node",
		FieldOptionalNode:     "node?",
		FieldNodeList:         "node[]",
		FieldConstantList:     "constant[]",
		FieldDouble:           "double",
		FieldKind(0):          "field?",
		FieldKind(200):        "field?",
		FieldOptionalLocation: "location?",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("FieldKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
