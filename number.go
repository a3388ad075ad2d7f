package hjson

import "strconv"

// tryParseNumber is the numeric-literal tokeniser spec.md treats as an
// out-of-scope black box: readTfnns hands it a candidate token and takes
// whatever Value it returns, or falls back to treating the token as a
// string if it returns ok=false. It accepts the same grammar as a JSON
// number: an optional '-', an integer part ("0" or a non-zero digit
// followed by digits), an optional fractional part, and an optional
// exponent. Anything else is rejected so the caller can fall back to a
// quoteless string.
func tryParseNumber(s string) (Value, bool) {
	if s == "" {
		return Value{}, false
	}
	i := 0
	n := len(s)

	if s[i] == '-' {
		i++
	}
	if i >= n {
		return Value{}, false
	}

	intStart := i
	if s[i] == '0' {
		i++
	} else if isDigit(s[i]) {
		for i < n && isDigit(s[i]) {
			i++
		}
	} else {
		return Value{}, false
	}
	if i == intStart {
		return Value{}, false
	}

	isFloat := false

	if i < n && s[i] == '.' {
		isFloat = true
		i++
		fracStart := i
		for i < n && isDigit(s[i]) {
			i++
		}
		if i == fracStart {
			return Value{}, false
		}
	}

	if i < n && (s[i] == 'e' || s[i] == 'E') {
		isFloat = true
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expStart := i
		for i < n && isDigit(s[i]) {
			i++
		}
		if i == expStart {
			return Value{}, false
		}
	}

	if i != n {
		return Value{}, false
	}

	if !isFloat {
		if iv, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int64Value(iv), true
		}
		// Overflows int64 (e.g. a very long digit run): fall through to
		// float, matching a JSON decoder's usual behaviour for huge
		// integer literals.
	}

	fv, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, false
	}
	return DoubleValue(fv), true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
