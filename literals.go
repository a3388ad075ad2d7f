package hjson

import (
	"unicode/utf8"
)

// isPunctuator reports whether ch is one of the structural characters
// that can never begin a bare key name or a quoteless value.
func isPunctuator(ch byte) bool {
	switch ch {
	case '{', '}', '[', ']', ',', ':':
		return true
	default:
		return false
	}
}

// readQuoted reads a quoted string literal. The opening delimiter (ch ==
// quote) must still be current when this is called; it consumes through
// the closing delimiter. If quote is '\'' and the string immediately
// turns out to be the opener of a triple-quoted literal ('''), control
// is handed to readMultiline instead.
func (p *parser) readQuoted(quote byte) (Value, error) {
	openerPos := p.sc.position()
	p.sc.advance() // consume opening delimiter

	if quote == '\'' && p.sc.ch == '\'' && p.sc.peek(0) == '\'' {
		p.sc.advance() // second '
		p.sc.advance() // third '
		s, err := p.readMultiline(openerPos)
		if err != nil {
			return Value{}, err
		}
		return StringValue(s), nil
	}

	var buf []byte
	for {
		switch p.sc.ch {
		case 0:
			return Value{}, p.errorf("Bad string")
		case quote:
			p.sc.advance()
			return StringValue(string(buf)), nil
		case '\n', '\r':
			return Value{}, p.errorf("Bad string containing newline")
		case '\\':
			p.sc.advance()
			switch p.sc.ch {
			case '"':
				buf = append(buf, '"')
			case '\'':
				buf = append(buf, '\'')
			case '\\':
				buf = append(buf, '\\')
			case '/':
				buf = append(buf, '/')
			case 'b':
				buf = append(buf, '\b')
			case 'f':
				buf = append(buf, '\f')
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			case 'u':
				cp := 0
				for i := 0; i < 4; i++ {
					p.sc.advance()
					d, ok := hexDigit(p.sc.ch)
					if !ok {
						return Value{}, p.errorf("Bad \\u char %c", p.sc.ch)
					}
					cp = cp*16 + d
				}
				if cp >= 0x110000 {
					return Value{}, p.errorf("Bad \\u char %c", p.sc.ch)
				}
				var tmp [utf8.UTFMax]byte
				n := utf8.EncodeRune(tmp[:], rune(cp))
				buf = append(buf, tmp[:n]...)
			case 0:
				return Value{}, p.errorf("Bad string")
			default:
				return Value{}, p.errorf("Bad escape \\%c", p.sc.ch)
			}
			p.sc.advance()
		default:
			buf = append(buf, p.sc.ch)
			p.sc.advance()
		}
	}
}

func hexDigit(ch byte) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10, true
	default:
		return 0, false
	}
}

// readMultiline reads the body of a triple-quoted string, whose opening
// "'''" has just been consumed. openerPos is the position of the very
// first "'" of the opener, used to measure the indent width as the
// number of bytes between the start of that line and the opener.
func (p *parser) readMultiline(openerPos int) (string, error) {
	lineStart := openerPos
	for lineStart > 0 && p.sc.buf[lineStart-1] != '\n' {
		lineStart--
	}
	indent := openerPos - lineStart

	// Trailing inline whitespace and the mandatory newline after the
	// opener are not part of the string body.
	for isHorizSpace(p.sc.ch) {
		p.sc.advance()
	}
	if p.sc.ch == '\r' {
		p.sc.advance()
	}
	if p.sc.ch == '\n' {
		p.sc.advance()
	}

	var buf []byte
	atLineStart := true
	stripped := 0
	for {
		switch {
		case p.sc.ch == 0:
			return "", p.errorf("Bad multiline string")
		case p.sc.ch == '\'' && p.sc.peek(0) == '\'' && p.sc.peek(1) == '\'':
			p.sc.advance()
			p.sc.advance()
			p.sc.advance()
			if n := len(buf); n > 0 && buf[n-1] == '\n' {
				buf = buf[:n-1]
			}
			return string(buf), nil
		case p.sc.ch == '\r':
			p.sc.advance() // dropped unconditionally
		case p.sc.ch == '\n':
			buf = append(buf, '\n')
			p.sc.advance()
			atLineStart = true
			stripped = 0
		case atLineStart && isHorizSpace(p.sc.ch) && stripped < indent:
			stripped++
			p.sc.advance()
		default:
			atLineStart = false
			buf = append(buf, p.sc.ch)
			p.sc.advance()
		}
	}
}

// readKeyname reads an unquoted map key, ending at ':'. Internal
// whitespace (whitespace that is followed by more key characters before
// the ':') is an error pinned to the position of the first such
// whitespace; trailing whitespace before the ':' is not part of the key
// and is simply trivia consumed separately by the caller.
func (p *parser) readKeyname() (string, error) {
	if p.sc.ch == '"' || p.sc.ch == '\'' {
		v, err := p.readQuoted(p.sc.ch)
		if err != nil {
			return "", err
		}
		return v.strVal, nil
	}

	start := p.sc.position()
	var name []byte
	space := -1
	for {
		switch {
		case p.sc.ch == ':':
			if len(name) == 0 {
				return "", p.errorf("Found ':' but no key name (for an empty key name use quotes)")
			}
			if space >= 0 && space != len(name) {
				return "", p.errorfAt(start+space, "Found whitespace in your key name (use quotes to include)")
			}
			if space >= 0 {
				// Hand the trailing whitespace back to the caller's trivia read.
				p.sc.seek(start + space)
			}
			return string(name), nil
		case p.sc.ch == 0:
			return "", p.errorf("Found EOF while looking for a key name (check your syntax)")
		case p.sc.ch <= ' ':
			if space < 0 {
				space = len(name)
			}
			p.sc.advance()
		case isPunctuator(p.sc.ch):
			return "", p.errorf("Found '%c' where a key name was expected (check your syntax or use quotes if the key name includes {}[],: or whitespace)", p.sc.ch)
		default:
			name = append(name, p.sc.ch)
			p.sc.advance()
		}
	}
}

// readTfnns reads a quoteless value: true, false, null, a number, or (as
// the fallback) a bare string. This is the decisive algorithm behind
// Hjson's ergonomics (spec.md §4.3): a candidate token is accumulated up
// to the first top-level ',', '}', ']', end-of-line/EOF, or trailing
// comment marker; if the candidate parses as a keyword or number that
// wins, otherwise — and only if the terminator was actually end-of-line
// or EOF — it becomes a string. A ',', '}', or ']' is literal content
// inside a quoteless string and does not end it; a string-flavoured
// value keeps accumulating past it to the next real end-of-line.
func (p *parser) readTfnns() (Value, error) {
	if isPunctuator(p.sc.ch) {
		return Value{}, p.errorf("Found a punctuator character '%c' when expecting a quoteless string (check your syntax)", p.sc.ch)
	}

	startPos := p.sc.position()
	var chars []byte
	lastNonWS := 0
	valEnd := startPos
	for {
		ch0 := p.sc.ch
		chars = append(chars, ch0)
		p.sc.advance()
		if !isAnySpace(ch0) {
			lastNonWS = len(chars)
			// valEnd is the position right past the last non-whitespace
			// byte seen so far; whitespace beyond it is released back to
			// the trivia reader rather than becoming part of the value.
			valEnd = p.sc.position()
		}

		ch := p.sc.ch
		isEOL := ch == 0 || ch == '\n'
		isCloser := ch == ',' || ch == '}' || ch == ']'
		isCommentStart := ch == '#' || (ch == '/' && (p.sc.peek(0) == '/' || p.sc.peek(0) == '*'))
		if !(isEOL || isCloser || isCommentStart) {
			continue
		}

		val := string(chars[:lastNonWS])
		switch val {
		case "true":
			p.sc.seek(valEnd)
			return BoolValue(true), nil
		case "false":
			p.sc.seek(valEnd)
			return BoolValue(false), nil
		case "null":
			p.sc.seek(valEnd)
			return NullValue(), nil
		}
		if len(val) > 0 && (val[0] == '-' || isDigit(val[0])) {
			if n, ok := tryParseNumber(val); ok {
				p.sc.seek(valEnd)
				return n, nil
			}
		}
		if isEOL || isCommentStart {
			p.sc.seek(valEnd)
			return StringValue(val), nil
		}
		// A ',', '}', or ']' mid-line is literal content of a quoteless
		// string, not a terminator; keep scanning to the real end of
		// line or a comment marker.
	}
}
