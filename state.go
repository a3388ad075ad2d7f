package hjson

// parseState is one of the explicit states spec.md's state machine steps
// through. There is no host-language recursion: a container value drives
// its children by pushing states onto parser.states and consulting
// parser.frames once they unwind.
type parseState int

const (
	stateValueBegin parseState = iota
	stateValueEnd
	stateVectorBegin
	stateVectorElemEnd
	stateMapBegin
	stateMapElemBegin
	stateMapElemEnd
)

// frame is the per-container scratch record that parallels the state
// stack. A frame is pushed once, by valueBegin (or, for the root frame of
// a braced or braceless root, by the root driver), and is not popped until
// its parent folds the completed value in (or, for the root frame, until
// the driver reads it out at the very end).
type frame struct {
	val Value

	// initCommentBefore and initPos are captured by valueBegin (or the root
	// driver, for its own frame) before it is known whether a scalar, a
	// vector, or a map is being built; whichever
	// state eventually finalises val copies them in.
	initCommentBefore string
	initPos           int

	isRoot        bool
	withoutBraces bool // only meaningful while val.Kind() == Map

	// Map bookkeeping: trivia attributed as the comment_before of the
	// next key to be read, and the in-flight key's own bookkeeping.
	nextKeyBefore string
	key           string
	keyPos        int
	keyTrivia     string
}

// parser drives the state machine over a single scanner.
type parser struct {
	sc   *scanner
	opts Options

	states []parseState
	frames []*frame

	// nextValueBefore, when non-nil, is trivia a container transition has
	// already read from the scanner on behalf of the child it is about to
	// push; valueBegin consumes it instead of reading its own, since the
	// scanner has already moved past those bytes. nil means valueBegin
	// must read its own leading trivia (the normal case for a map's
	// values, and for the very first value of a fallback scalar parse).
	nextValueBefore *string

	// rootWithoutBraces records, from the moment it is decided, whether
	// the document opened without a '{' or '['. It survives a failed
	// parse so the driver knows whether a bare-scalar retry is licensed.
	rootWithoutBraces bool
}

func (p *parser) pushState(s parseState) { p.states = append(p.states, s) }

func (p *parser) pushFrame(f *frame) { p.frames = append(p.frames, f) }

func (p *parser) popFrame() *frame {
	n := len(p.frames) - 1
	f := p.frames[n]
	p.frames = p.frames[:n]
	return f
}

func (p *parser) topFrame() *frame { return p.frames[len(p.frames)-1] }

func (p *parser) setNextValueBefore(s string) { p.nextValueBefore = &s }

// run drains the state stack, dispatching each popped state to its
// transition method, until empty or a transition reports an error.
func (p *parser) run() error {
	for len(p.states) > 0 {
		n := len(p.states) - 1
		st := p.states[n]
		p.states = p.states[:n]

		var err error
		switch st {
		case stateValueBegin:
			err = p.valueBegin()
		case stateValueEnd:
			err = p.valueEnd()
		case stateVectorBegin:
			err = p.vectorBegin()
		case stateVectorElemEnd:
			err = p.vectorElemEnd()
		case stateMapBegin:
			err = p.mapBegin()
		case stateMapElemBegin:
			err = p.mapElemBegin()
		case stateMapElemEnd:
			err = p.mapElemEnd()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// valueBegin starts parsing a single value: a scalar, a vector, or a map.
// It pushes a fresh frame for that value and dispatches on the first
// non-trivia byte to decide which.
func (p *parser) valueBegin() error {
	f := &frame{}
	p.pushFrame(f)

	var cbText string
	if p.nextValueBefore != nil {
		cbText = *p.nextValueBefore
		p.nextValueBefore = nil
	} else {
		cb := p.readTriviaMultiline()
		cbText = cb.text(p.sc.buf)
	}
	f.initCommentBefore = cbText
	f.initPos = p.sc.position()

	switch {
	case p.sc.ch == '{':
		p.pushState(stateMapBegin)
	case p.sc.ch == '[':
		p.pushState(stateVectorBegin)
	case p.sc.ch == '"' || p.sc.ch == '\'':
		v, err := p.readQuoted(p.sc.ch)
		if err != nil {
			return err
		}
		v.PosItem = f.initPos
		f.val = v
		p.pushState(stateValueEnd)
	case p.sc.ch == 0:
		return p.errorf("Found EOF where a value was expected (check your syntax)")
	default:
		v, err := p.readTfnns()
		if err != nil {
			return err
		}
		v.PosItem = f.initPos
		f.val = v
		p.pushState(stateValueEnd)
	}
	return nil
}

// valueEnd finalises the value built by the frame on top of the stack: it
// assigns the comment_before captured at the start of valueBegin and
// reads same-line trailing trivia as comment_after. The frame is left in
// place; it is the caller's job to decide when to pop and fold it in.
func (p *parser) valueEnd() error {
	f := p.topFrame()
	ca := p.readTriviaLine()
	f.val.CommentBefore = f.initCommentBefore
	f.val.CommentAfter = ca.text(p.sc.buf)
	return nil
}

// vectorBegin turns the frame's value into an empty Vector, consumes the
// '[', and either closes it immediately (recording interior trivia as
// comment_inside) or hands the first element's leading trivia off before
// pushing its ValueBegin.
func (p *parser) vectorBegin() error {
	f := p.topFrame()
	f.val = NewVector()
	f.val.PosItem = f.initPos

	p.sc.advance() // consume '['
	cb := p.readTriviaMultiline()
	if p.sc.ch == ']' {
		f.val.CommentInside = cb.text(p.sc.buf)
		p.sc.advance()
		p.pushState(stateValueEnd)
		return nil
	}
	if p.sc.ch == 0 {
		return p.errorf("End of input while parsing an array (check your syntax)")
	}

	p.setNextValueBefore(cb.text(p.sc.buf))
	p.pushState(stateVectorElemEnd)
	p.pushState(stateValueBegin)
	return nil
}

// vectorElemEnd runs once a vector element's own ValueEnd has completed.
// It decides whether the vector closes here or continues to another
// element, and either way attaches the trivia between elements to the
// right side of the boundary: trailing comment_after if the vector
// closes, or the next element's comment_before if it doesn't.
func (p *parser) vectorElemEnd() error {
	child := p.popFrame()
	f := p.topFrame()

	ci := p.readTriviaMultiline()
	ciText := ci.text(p.sc.buf)

	extra := ""
	if p.sc.ch == ',' {
		p.sc.advance()
		ex := p.readTriviaMultiline()
		extra = ex.text(p.sc.buf)
	}

	if p.sc.ch == ']' {
		child.val.CommentAfter = combineSpans(child.val.CommentAfter, combineSpans(ciText, extra))
		var elem Value
		elem.assignWithComments(child.val)
		f.val.pushBack(elem)
		p.sc.advance()
		p.pushState(stateValueEnd)
		return nil
	}
	if p.sc.ch == 0 {
		return p.errorf("End of input while parsing an array (check your syntax)")
	}

	var elem Value
	elem.assignWithComments(child.val)
	f.val.pushBack(elem)
	p.setNextValueBefore(ciText + extra)
	p.pushState(stateVectorElemEnd)
	p.pushState(stateValueBegin)
	return nil
}

// mapBegin turns the frame's value into an empty Map. A literal '{' is
// consumed and its interior trivia recorded as the pending comment_before
// of the first key; a braceless root instead reuses the leading trivia
// the root driver already captured, since there is no '{' to read past.
func (p *parser) mapBegin() error {
	f := p.topFrame()
	f.val = NewMap()
	f.val.PosItem = f.initPos

	if p.sc.ch == '{' {
		p.sc.advance()
		cb := p.readTriviaMultiline()
		f.nextKeyBefore = cb.text(p.sc.buf)
	} else {
		f.withoutBraces = true
		f.nextKeyBefore = f.initCommentBefore
	}

	if p.sc.ch == '}' && !f.withoutBraces {
		f.val.CommentInside = f.nextKeyBefore
		p.sc.advance()
		p.pushState(stateValueEnd)
		return nil
	}

	p.pushState(stateMapElemBegin)
	return nil
}

// mapElemBegin reads one key, up to and including the ':' that
// introduces its value, then pushes the value's ValueBegin.
func (p *parser) mapElemBegin() error {
	f := p.topFrame()

	if p.sc.ch == 0 {
		if !f.withoutBraces {
			return p.errorf("End of input while parsing an object (check your syntax)")
		}
		mv := f.val.MapValue()
		if mv.Len() == 0 {
			f.val.CommentInside = f.nextKeyBefore
		} else {
			keys := mv.Keys()
			last, _ := mv.Get(keys[len(keys)-1])
			last.CommentAfter = combineSpans(last.CommentAfter, f.nextKeyBefore)
		}
		p.pushState(stateValueEnd)
		return nil
	}

	keyPos := p.sc.position()
	key, err := p.readKeyname()
	if err != nil {
		return err
	}

	if f.isRoot && p.opts.DuplicateKeyHandler != nil {
		key = p.opts.DuplicateKeyHandler(key, &f.val)
	}
	if p.opts.DuplicateKeyException {
		if existing, ok := f.val.MapValue().Get(key); ok && existing.Defined() {
			return p.errorf("Found duplicate of key '%s'", key)
		}
	}

	kt := p.readTriviaMultiline()
	f.key = key
	f.keyPos = keyPos
	f.keyTrivia = kt.text(p.sc.buf)

	if p.sc.ch != ':' {
		return p.errorf("Expected ':' instead of '%c'", p.sc.ch)
	}
	p.sc.advance()

	p.pushState(stateMapElemEnd)
	p.pushState(stateValueBegin)
	return nil
}

// mapElemEnd is the map's counterpart to vectorElemEnd. It additionally
// folds the child's self-read comment_before (the trivia between ':' and
// the value, which valueBegin has no way of knowing belongs near the key
// instead) into CommentKey, then replaces it with the real entry-level
// comment_before this frame was holding for the key.
func (p *parser) mapElemEnd() error {
	child := p.popFrame()
	f := p.topFrame()

	child.val.CommentKey = combineSpans(f.keyTrivia, child.val.CommentBefore)
	child.val.CommentBefore = f.nextKeyBefore
	child.val.PosKey = f.keyPos
	key := f.key

	ci := p.readTriviaMultiline()
	ciText := ci.text(p.sc.buf)

	extra := ""
	if p.sc.ch == ',' {
		p.sc.advance()
		ex := p.readTriviaMultiline()
		extra = ex.text(p.sc.buf)
	}

	if p.sc.ch == '}' && !f.withoutBraces {
		child.val.CommentAfter = combineSpans(child.val.CommentAfter, combineSpans(ciText, extra))
		var entry Value
		entry.assignWithComments(child.val)
		f.val.MapValue().Set(key, entry)
		p.sc.advance()
		p.pushState(stateValueEnd)
		return nil
	}
	if p.sc.ch == 0 && !f.withoutBraces {
		return p.errorf("End of input while parsing an object (check your syntax)")
	}

	var entry Value
	entry.assignWithComments(child.val)
	f.val.MapValue().Set(key, entry)
	f.nextKeyBefore = ciText + extra
	p.pushState(stateMapElemBegin)
	return nil
}
