package hjson

import "testing"

// Seed corpus drawn from the scenario-level tests: these exercise braces,
// brackets, quoteless values, triple-quoted strings, and comments, which
// gives the fuzzer a head start finding inputs near interesting syntax
// rather than starting purely from random bytes.
var fuzzSeeds = []string{
	"",
	"{}",
	"[]",
	"{a:1}",
	"a: 1\nb: 2\n",
	"# top\n{\n  // k\n  x: y\n}\n",
	"{a: b c # tail\n}",
	"{ a: \"unterminated",
	"[1,2,3,]",
	"{x: -7, y: 1.5}",
	"'''\nhello\nworld\n'''",
	"{t: true, f: false, n: null}",
}

func FuzzUnmarshal(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, in string) {
		if len(in) > 1<<12 {
			t.Skip("input too large")
		}

		v, err := UnmarshalString(in, DefaultOptions())
		if err != nil {
			return // invalid Hjson input is an expected outcome, not a crash
		}

		// A successful decode must never report positions before the
		// start of input, and Interface() must never panic on any value
		// the decoder itself produced.
		checkPositionsNonNegative(t, v)
		_ = v.Interface()
	})
}

func checkPositionsNonNegative(t *testing.T, v Value) {
	t.Helper()
	if v.PosItem < 0 {
		t.Fatalf("negative position on decoded value: PosItem=%d", v.PosItem)
	}
	switch v.Kind() {
	case Map:
		for _, key := range v.MapValue().Keys() {
			e, _ := v.MapValue().Get(key)
			checkPositionsNonNegative(t, *e)
		}
	case Vector:
		for _, e := range v.Elements() {
			checkPositionsNonNegative(t, e)
		}
	}
}
