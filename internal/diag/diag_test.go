package diag

import "testing"

func TestLevelStrings(t *testing.T) {
	errLevels := map[ErrorLevel]string{
		LevelFatal:    "fatal",
		LevelArgument: "argument",
		ErrorLevel(7): "UNKNOWN",
	}
	for l, want := range errLevels {
		if got := l.String(); got != want {
			t.Errorf("ErrorLevel(%d).String() = %q, want %q", l, got, want)
		}
	}

	warnLevels := map[WarningLevel]string{
		LevelDefault:    "default",
		LevelVerbose:    "verbose",
		WarningLevel(7): "UNKNOWN",
	}
	for l, want := range warnLevels {
		if got := l.String(); got != want {
			t.Errorf("WarningLevel(%d).String() = %q, want %q", l, got, want)
		}
	}
}

func TestTypeTables(t *testing.T) {
	if ErrorTypeCount() == 0 || WarningTypeCount() == 0 {
		t.Fatal("type tables must not be empty")
	}

	seen := make(map[string]struct{}, ErrorTypeCount())
	for i := 0; i < ErrorTypeCount(); i++ {
		ty := ErrorType(i)
		if !ty.Known() {
			t.Fatalf("ErrorType(%d) inside table must be known", i)
		}
		name := ty.String()
		if name == "" {
			t.Fatalf("ErrorType(%d) has empty name", i)
		}
		if _, dup := seen[name]; dup {
			t.Errorf("duplicate error type name %q", name)
		}
		seen[name] = struct{}{}
	}

	out := ErrorType(ErrorTypeCount())
	if out.Known() {
		t.Error("index past the table must be unknown")
	}
	if got := out.String(); got == "" {
		t.Error("unknown type must still render")
	}

	if got := WarningType(0).String(); got != "ambiguous_first_argument_minus" {
		t.Errorf("WarningType(0) = %q", got)
	}
	if WarningType(200).Known() {
		t.Error("WarningType(200) must be unknown")
	}
}
