package hjson

import "testing"

func TestReadQuotedEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"hi"`, "hi"},
		{`"a\"b"`, `a"b`},
		{`"a\\b"`, `a\b`},
		{`"tab\t"`, "tab\t"},
		{`"new\nline"`, "new\nline"},
		{`"A"`, "A"},
		{`""`, ""},
	}
	for _, tt := range tests {
		p := newTestParser(tt.in, Options{})
		v, err := p.readQuoted(p.sc.ch)
		if err != nil {
			t.Errorf("readQuoted(%q): %v", tt.in, err)
			continue
		}
		if v.strVal != tt.want {
			t.Errorf("readQuoted(%q) = %q, want %q", tt.in, v.strVal, tt.want)
		}
	}
}

func TestReadQuotedUnterminated(t *testing.T) {
	p := newTestParser(`"abc`, Options{})
	_, err := p.readQuoted(p.sc.ch)
	if err == nil {
		t.Fatal("want error for unterminated string, got nil")
	}
}

func TestReadQuotedNewlineInString(t *testing.T) {
	p := newTestParser("\"abc\ndef\"", Options{})
	_, err := p.readQuoted(p.sc.ch)
	if err == nil {
		t.Fatal("want error for bare newline in a quoted string, got nil")
	}
}

func TestReadQuotedBadEscape(t *testing.T) {
	p := newTestParser(`"a\qb"`, Options{})
	_, err := p.readQuoted(p.sc.ch)
	if err == nil {
		t.Fatal("want error for unrecognised escape, got nil")
	}
}

func TestReadMultilineStripsIndentAndFinalNewline(t *testing.T) {
	// Opener is at column 2 (0-indexed), so the indent to strip is 2
	// spaces from every subsequent line.
	in := "  '''\n  hello\n  world\n  '''"
	p := newTestParser(in, Options{})
	p.sc.seek(2) // position at the opening quote
	openerPos := p.sc.position()
	p.sc.advance()
	p.sc.advance()
	p.sc.advance()
	got, err := p.readMultiline(openerPos)
	if err != nil {
		t.Fatalf("readMultiline: %v", err)
	}
	if want := "hello\nworld"; got != want {
		t.Errorf("readMultiline = %q, want %q", got, want)
	}
}

func TestReadMultilineUnterminated(t *testing.T) {
	in := "'''\nhello"
	p := newTestParser(in, Options{})
	openerPos := p.sc.position()
	p.sc.advance()
	p.sc.advance()
	p.sc.advance()
	_, err := p.readMultiline(openerPos)
	if err == nil {
		t.Fatal("want error for unterminated multiline string, got nil")
	}
}

func TestReadKeynameUnquoted(t *testing.T) {
	p := newTestParser("foo: bar", Options{})
	name, err := p.readKeyname()
	if err != nil {
		t.Fatalf("readKeyname: %v", err)
	}
	if name != "foo" {
		t.Errorf("readKeyname = %q, want %q", name, "foo")
	}
	if p.sc.ch != ':' {
		t.Errorf("scanner left at %q, want ':'", p.sc.ch)
	}
}

func TestReadKeynameQuoted(t *testing.T) {
	p := newTestParser(`"a key": 1`, Options{})
	name, err := p.readKeyname()
	if err != nil {
		t.Fatalf("readKeyname: %v", err)
	}
	if name != "a key" {
		t.Errorf("readKeyname = %q, want %q", name, "a key")
	}
}

func TestReadKeynameInternalWhitespaceIsError(t *testing.T) {
	p := newTestParser("foo bar: 1", Options{})
	_, err := p.readKeyname()
	if err == nil {
		t.Fatal("want error for whitespace inside an unquoted key name, got nil")
	}
}

func TestReadKeynameTrailingWhitespaceOK(t *testing.T) {
	p := newTestParser("foo  : 1", Options{})
	name, err := p.readKeyname()
	if err != nil {
		t.Fatalf("readKeyname: %v", err)
	}
	if name != "foo" {
		t.Errorf("readKeyname = %q, want %q", name, "foo")
	}
}

func TestReadKeynameEmptyUnquotedIsError(t *testing.T) {
	p := newTestParser(": 1", Options{})
	_, err := p.readKeyname()
	if err == nil {
		t.Fatal("want error for empty unquoted key name, got nil")
	}
}

func TestReadKeynamePunctuatorIsError(t *testing.T) {
	p := newTestParser("[: 1", Options{})
	_, err := p.readKeyname()
	if err == nil {
		t.Fatal("want error when a punctuator appears where a key name is expected, got nil")
	}
}

func TestReadKeynameEOFIsError(t *testing.T) {
	p := newTestParser("foo", Options{})
	_, err := p.readKeyname()
	if err == nil {
		t.Fatal("want error for EOF while reading a key name, got nil")
	}
}
