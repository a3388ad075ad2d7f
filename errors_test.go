package hjson

import "testing"

func TestErrorFormatting(t *testing.T) {
	e := &Error{Kind: SyntaxError, Reason: "Bad string", Line: 3, Col: 5, Context: `{ a: "x`}
	want := `Bad string at line 3,5 >>> { a: "x`
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	te := typeMismatchError(Bool, String).(*Error)
	if te.Kind != TypeMismatch {
		t.Errorf("Kind = %v, want TypeMismatch", te.Kind)
	}
	if got := te.Error(); got == "" {
		t.Error("Error() returned empty string")
	}

	fe := fileError("permission denied").(*Error)
	if fe.Kind != FileError {
		t.Errorf("Kind = %v, want FileError", fe.Kind)
	}
	if got, want := fe.Error(), "file_error: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorWithPath(t *testing.T) {
	e := &Error{Kind: IndexOutOfBounds, Reason: "index 3 out of bounds", Path: "$.items"}
	want := "index_out_of_bounds: index 3 out of bounds ($.items)"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestKindStrings(t *testing.T) {
	tests := map[Kind]string{
		SyntaxError:      "syntax_error",
		TypeMismatch:     "type_mismatch",
		IndexOutOfBounds: "index_out_of_bounds",
		FileError:        "file_error",
		Kind(99):         "unknown_error",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
