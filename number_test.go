package hjson

import "testing"

// TestTryParseNumber checks which candidate tokens the number tokeniser
// accepts and which it rejects. TestNumberDisambiguationThroughDecode
// below checks that a document holding only such a token decodes to a
// numeric Value or a string Value accordingly.
func TestTryParseNumber(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"0", true},
		{"-0", true},
		{"42", true},
		{"-42", true},
		{"3.14", true},
		{"-3.14", true},
		{"1e10", true},
		{"1E10", true},
		{"1e+10", true},
		{"1.5e-10", true},
		{"01", false},    // leading zero
		{"-", false},     // bare sign
		{"1.", false},    // empty fraction
		{".5", false},    // no integer part; readTfnns wouldn't even try this
		{"1e", false},    // empty exponent
		{"1.2.3", false}, // trailing garbage
		{"", false},
		{"-1a", false},
	}

	for _, tt := range tests {
		_, ok := tryParseNumber(tt.in)
		if ok != tt.ok {
			t.Errorf("tryParseNumber(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}

func TestNumberDisambiguationThroughDecode(t *testing.T) {
	tests := []struct {
		in       string
		wantKind ValueKind
	}{
		{"42", Int64},
		{"-3.5", Double},
		{"01", String},
		{"1.2.3", String},
		{"-", String},
	}
	for _, tt := range tests {
		v, err := UnmarshalString(tt.in, DefaultOptions())
		if err != nil {
			t.Fatalf("Unmarshal(%q): %v", tt.in, err)
		}
		if v.Kind() != tt.wantKind {
			t.Errorf("Unmarshal(%q).Kind() = %v, want %v", tt.in, v.Kind(), tt.wantKind)
		}
	}
}
