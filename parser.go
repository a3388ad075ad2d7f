package hjson

import (
	"fmt"
	"io"
	"os"
)

// Options controls the decoder's recognised configuration, carried
// verbatim through to the parser.
type Options struct {
	// Comments, when true, makes the trivia reader flag '#', '//' and
	// '/* */' comments in its hasComment bookkeeping. It does not gate the
	// comment slots: each Value's four comment slots are filled from the
	// source trivia whether Comments is set or not.
	Comments bool

	// WhitespaceAsComments treats runs of plain whitespace the same as a
	// comment for the purpose of hasComment bookkeeping; setting it
	// forces Comments on as well.
	WhitespaceAsComments bool

	// DuplicateKeyException raises a syntax_error the second time a key
	// is seen in the same map.
	DuplicateKeyException bool

	// DuplicateKeyHandler, if set, is invoked once per key read at the
	// root level, before the uniqueness check, and may return a
	// different key (e.g. to rename one of two colliding keys instead of
	// erroring).
	DuplicateKeyHandler func(key string, root *Value) string
}

// DefaultOptions returns the options the package uses when none are
// given explicitly: comments retained, whitespace not treated as a
// comment, duplicate keys silently overwriting.
func DefaultOptions() Options {
	return Options{Comments: true}
}

// Unmarshal decodes Hjson source into a Value tree. A nil data slice
// decodes to an Undefined Value with no error, mirroring the reference
// decoder's treatment of a null input.
func Unmarshal(data []byte, opts Options) (Value, error) {
	if data == nil {
		return Value{}, nil
	}
	if opts.WhitespaceAsComments {
		opts.Comments = true
	}
	p := &parser{sc: newScanner(data), opts: opts}
	return p.decode()
}

// UnmarshalString is Unmarshal for a string input.
func UnmarshalString(text string, opts Options) (Value, error) {
	return Unmarshal([]byte(text), opts)
}

// DecodeFile reads path into memory, strips one trailing "\n", one
// trailing "\r", and any trailing NUL bytes, then decodes the result. A
// read failure is reported as a file_error, per the decoder's error
// taxonomy.
func DecodeFile(path string, opts Options) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, fileError(err.Error())
	}
	data = trimFileTrailer(data)
	return Unmarshal(data, opts)
}

// Decoder reads and decodes a single Hjson document from an io.Reader.
// Hjson has no natural streaming grammar (an unbraced root cannot be
// known complete until EOF), so Decode drains r into memory before
// parsing, same as DecodeFile does for a path.
type Decoder struct {
	r    io.Reader
	opts Options
}

// NewDecoder returns a Decoder that reads from r using opts.
func NewDecoder(r io.Reader, opts Options) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the remainder of the underlying Reader and decodes it.
func (d *Decoder) Decode() (Value, error) {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return Value{}, fileError(err.Error())
	}
	return Unmarshal(data, d.opts)
}

// trimFileTrailer drops one trailing '\n', then one trailing '\r', then
// any trailing NUL bytes, in that order, matching the file-reading
// convenience wrapper's contract.
func trimFileTrailer(data []byte) []byte {
	if n := len(data); n > 0 && data[n-1] == '\n' {
		data = data[:n-1]
	}
	if n := len(data); n > 0 && data[n-1] == '\r' {
		data = data[:n-1]
	}
	for n := len(data); n > 0 && data[n-1] == 0; n = len(data) {
		data = data[:n-1]
	}
	return data
}

// decode runs the root driver, retrying as a single bare scalar value if
// the first attempt failed and the document had no opening brace or
// bracket to match against. The retry re-raises the original error if it
// also fails, so a malformed object or array is never misreported as a
// malformed scalar.
func (p *parser) decode() (Value, error) {
	v, err := p.runRoot()
	if err == nil {
		return v, nil
	}
	if !p.rootWithoutBraces {
		return Value{}, err
	}

	origErr := err
	v2, err2 := p.runScalarFallback()
	if err2 != nil {
		return Value{}, origErr
	}
	return v2, nil
}

// runRoot implements the root driver: it decides whether the document is
// an explicit array, an explicit object, or a braceless object, drives
// the state machine to completion, and then requires the remainder of
// the input to be trivia only.
func (p *parser) runRoot() (Value, error) {
	root := &frame{isRoot: true}
	p.pushFrame(root)

	lt := p.readTriviaMultiline()
	root.initCommentBefore = lt.text(p.sc.buf)
	root.initPos = p.sc.position()

	switch p.sc.ch {
	case '[':
		p.pushState(stateVectorBegin)
	case '{':
		p.pushState(stateMapBegin)
	default:
		p.rootWithoutBraces = true
		p.pushState(stateMapBegin)
	}

	if err := p.run(); err != nil {
		return Value{}, err
	}
	return p.finishRoot()
}

// runScalarFallback resets the parser to the start of its buffer and
// parses a single bare value instead of an object, for documents that
// turn out to be a lone quoteless scalar rather than a braceless map.
func (p *parser) runScalarFallback() (Value, error) {
	p.sc.reset()
	p.states = nil
	p.frames = nil
	p.nextValueBefore = nil

	p.pushState(stateValueBegin)
	if err := p.run(); err != nil {
		return Value{}, err
	}
	return p.finishRoot()
}

// finishRoot reads any remaining trivia as the root value's trailing
// comment_after and requires the scanner to have reached true EOF.
func (p *parser) finishRoot() (Value, error) {
	f := p.frames[0]
	trailing := p.readTriviaMultiline()
	f.val.CommentAfter = combineSpans(f.val.CommentAfter, trailing.text(p.sc.buf))
	if p.sc.ch != 0 {
		return Value{}, p.errorf("Syntax error, found trailing characters")
	}
	return f.val, nil
}

// errorf builds a syntax_error located at the scanner's current position.
func (p *parser) errorf(format string, args ...interface{}) error {
	return p.errorfAt(p.sc.position(), format, args...)
}

// errorfAt builds a syntax_error located at pos: it reconstructs the
// (line, col) pair by scanning backwards to the previous newline and
// counting newlines to the start of the buffer, and includes up to 20
// bytes of source from the start of that line as context.
func (p *parser) errorfAt(pos int, format string, args ...interface{}) error {
	reason := fmt.Sprintf(format, args...)
	line, col, ctx := locate(p.sc.buf, pos)
	return &Error{Kind: SyntaxError, Reason: reason, Line: line, Col: col, Context: ctx}
}

func locate(buf []byte, pos int) (line, col int, context string) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(buf) {
		pos = len(buf)
	}

	lineStart := pos
	for lineStart > 0 && buf[lineStart-1] != '\n' {
		lineStart--
	}
	col = pos - lineStart + 1

	line = 1
	for i := 0; i < lineStart; i++ {
		if buf[i] == '\n' {
			line++
		}
	}

	end := lineStart + 20
	if end > len(buf) {
		end = len(buf)
	}
	return line, col, string(buf[lineStart:end])
}
