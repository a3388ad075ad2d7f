package hjson

// commentSpan is the (start, end, hasComment) triple the trivia reader
// returns: start and end are byte offsets into the scanner's buffer
// bracketing the run of trivia that was consumed, and hasComment records
// whether any "interesting" trivia was seen, as configured by the
// decoder's Comments / WhitespaceAsComments options.
//
// Grounded on the comment/whitespace finite state machine in the
// teacher's standardizerBuffer.standardize (standardizer.go): that
// function rewrites comment bytes to spaces in place while walking the
// same three trivia shapes (line comment, block comment, plain
// whitespace) that this reader recognises; here the same shapes are
// recognised but the goal is to report a span instead of mutating bytes.
type commentSpan struct {
	start, end int
	hasComment bool
}

// text extracts the substring of buf the span covers.
func (c commentSpan) text(buf []byte) string {
	if c.start < 0 || c.end > len(buf) || c.start > c.end {
		return ""
	}
	return string(buf[c.start:c.end])
}

func isHorizSpace(ch byte) bool { return ch == ' ' || ch == '\t' }
func isAnySpace(ch byte) bool   { return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' }

// readTriviaMultiline skips any mix of ASCII whitespace (including
// newlines), '#' line comments, '//' line comments, and '/* ... */'
// block comments. Block comments may not be nested.
func (p *parser) readTriviaMultiline() commentSpan {
	start := p.sc.position()
	sawAny := false
	hasComment := false

loop:
	for {
		switch {
		case isAnySpace(p.sc.ch):
			sawAny = true
			p.sc.advance()
		case p.sc.ch == '#':
			sawAny = true
			if p.opts.Comments {
				hasComment = true
			}
			p.skipToEOL()
		case p.sc.ch == '/' && p.sc.peek(0) == '/':
			sawAny = true
			if p.opts.Comments {
				hasComment = true
			}
			p.sc.advance()
			p.sc.advance()
			p.skipToEOL()
		case p.sc.ch == '/' && p.sc.peek(0) == '*':
			sawAny = true
			if p.opts.Comments {
				hasComment = true
			}
			p.skipBlockComment()
		default:
			break loop
		}
	}

	end := p.sc.position()
	if sawAny && p.opts.WhitespaceAsComments {
		hasComment = true
	}
	return commentSpan{start: start, end: end, hasComment: hasComment}
}

// readTriviaLine is identical to readTriviaMultiline except that plain
// whitespace skipping stops at '\n': the newline itself is left for the
// next readTriviaMultiline call to pick up. A line comment's own
// terminating newline is consumed as part of the comment (it can't be
// anything else), but a bare newline that isn't part of a comment is
// never consumed here.
func (p *parser) readTriviaLine() commentSpan {
	start := p.sc.position()
	sawAny := false
	hasComment := false

loop:
	for {
		switch {
		case isHorizSpace(p.sc.ch):
			sawAny = true
			p.sc.advance()
		case p.sc.ch == '#':
			sawAny = true
			if p.opts.Comments {
				hasComment = true
			}
			p.skipToEOL()
			if p.sc.ch == '\n' {
				p.sc.advance()
			}
			break loop
		case p.sc.ch == '/' && p.sc.peek(0) == '/':
			sawAny = true
			if p.opts.Comments {
				hasComment = true
			}
			p.sc.advance()
			p.sc.advance()
			p.skipToEOL()
			if p.sc.ch == '\n' {
				p.sc.advance()
			}
			break loop
		case p.sc.ch == '/' && p.sc.peek(0) == '*':
			sawAny = true
			if p.opts.Comments {
				hasComment = true
			}
			p.skipBlockComment()
			// A block comment may itself span multiple lines; that does
			// not end this read, only a bare unconsumed '\n' does.
		default:
			break loop
		}
	}

	end := p.sc.position()
	if sawAny && p.opts.WhitespaceAsComments {
		hasComment = true
	}
	return commentSpan{start: start, end: end, hasComment: hasComment}
}

// skipToEOL advances past everything up to (but not including) the next
// '\n' or EOF.
func (p *parser) skipToEOL() {
	for p.sc.ch != 0 && p.sc.ch != '\n' {
		p.sc.advance()
	}
}

// skipBlockComment consumes a '/* ... */' comment. The opening '/*' must
// still be current (ch=='/' , peek(0)=='*') when called.
func (p *parser) skipBlockComment() {
	p.sc.advance() // '/'
	p.sc.advance() // '*'
	for {
		if p.sc.ch == 0 {
			return // unterminated block comment; caller treats EOF normally
		}
		if p.sc.ch == '*' && p.sc.peek(0) == '/' {
			p.sc.advance()
			p.sc.advance()
			return
		}
		p.sc.advance()
	}
}

// combineSpans concatenates two CommentSpan-derived strings in source
// order, matching invariant 4 of the decoder's data model: comment
// concatenation is associative and never drops bytes.
func combineSpans(a, b string) string { return a + b }
