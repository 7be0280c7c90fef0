package token

import (
	"testing"

	"github.com/Neswisoft/ruby/internal/source"
)

func TestTypeNamesComplete(t *testing.T) {
	seen := make(map[string]Type, TypeCount)
	for ty := Type(1); int(ty) <= TypeCount; ty++ {
		name := ty.String()
		if name == "" {
			t.Fatalf("type %d has no name", ty)
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("types %d and %d share the name %q", prev, ty, name)
		}
		seen[name] = ty
	}
}

func TestTypeValid(t *testing.T) {
	if Terminator.Valid() {
		t.Error("the stream terminator is not a token type")
	}
	if got := Terminator.String(); got != "Type(0)" {
		t.Errorf("Terminator.String() = %q", got)
	}
	if !EOF.Valid() || !EndMarker.Valid() {
		t.Error("schema types must be valid")
	}
	if Type(TypeCount + 1).Valid() {
		t.Errorf("Type(%d) must be invalid", TypeCount+1)
	}
}

func TestTypeStringSpotChecks(t *testing.T) {
	cases := map[Type]string{
		EOF:             "EOF",
		KeywordDef:      "KEYWORD_DEF",
		KeywordEncoding: "KEYWORD___ENCODING__",
		PipePipeEqual:   "PIPE_PIPE_EQUAL",
		UStarStar:       "USTAR_STAR",
		EndMarker:       "__END__",
	}
	for ty, want := range cases {
		if got := ty.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", ty, got, want)
		}
	}
}

func TestTokenClasses(t *testing.T) {
	tok := func(ty Type) Token {
		return Token{Type: ty, Span: source.NewSpan(0, 1)}
	}

	for _, ty := range []Type{KeywordAlias, KeywordDef, KeywordYield, KeywordLine} {
		if !tok(ty).IsKeyword() {
			t.Errorf("%v should be a keyword", ty)
		}
	}
	for _, ty := range []Type{Identifier, Label, Integer, EOF} {
		if tok(ty).IsKeyword() {
			t.Errorf("%v must NOT be a keyword", ty)
		}
	}

	for _, ty := range []Type{Float, FloatImaginary, Integer, IntegerRationalImaginary} {
		if !tok(ty).IsNumeric() {
			t.Errorf("%v should be numeric", ty)
		}
	}
	if tok(StringContent).IsNumeric() {
		t.Error("STRING_CONTENT must not be numeric")
	}

	if !tok(EOF).IsEOF() || tok(Newline).IsEOF() {
		t.Error("IsEOF must hold exactly for EOF")
	}
}
