package arenajson

import (
	"strconv"
)

// handler receives the events of a parse. EndArray and EndObject carry the
// number of members of the closed container; an object member is a key
// event followed by its value.
type handler interface {
	String(s string) error
	Number(v float64) error
	Bool(v bool) error
	Null() error
	BeginArray() error
	EndArray(n int) error
	BeginObject() error
	EndObject(n int) error
}

// parser is a state machine validating the token stream of a lexer and
// forwarding it as events to a handler. Open containers are tracked on an
// explicit stack, so nesting depth does not consume call stack.
type parser struct {
	lex   *lexer
	out   handler
	prev  token
	cur   token
	back  bool
	stack []frame
}

// frame is an open array or object and the number of members seen so far.
type frame struct {
	typ   JSONType
	count int
}

type parseFunc func(p *parser) (parseFunc, error)

// parse reads all tokens of l and reports them to h.
func parse(l *lexer, h handler) error {
	p := &parser{lex: l, out: h}
	var err error
	for f := parseFunc(expectValue); f != nil && err == nil; f, err = f(p) {
	}
	return err
}

func (p *parser) next() token {
	if p.back {
		p.back = false
		return p.cur
	}
	p.prev, p.cur = p.cur, p.lex.next()
	return p.cur
}

// backup makes the last token returned by next available again.
func (p *parser) backup() {
	p.back = true
}

func (p *parser) fail(msg string, t token) error {
	return newParseError(msg, p.prev, t)
}

// valueDone counts a completed value in the innermost open container.
func (p *parser) valueDone() (parseFunc, error) {
	if n := len(p.stack); n > 0 {
		p.stack[n-1].count++
	}
	return expectDelim, nil
}

// parseFunc's

func expectValue(p *parser) (parseFunc, error) {
	t := p.next()
	var err error
	switch t.Type {
	case numberToken:
		num, perr := strconv.ParseFloat(t.Value, 64)
		if perr != nil {
			return nil, p.fail("number within float64 range", t)
		}
		err = p.out.Number(num)
	case stringToken:
		err = p.out.String(t.Value)
	case nullToken:
		err = p.out.Null()
	case trueToken:
		err = p.out.Bool(true)
	case falseToken:
		err = p.out.Bool(false)
	case arrayOToken:
		p.stack = append(p.stack, frame{typ: Array})
		return expectFirstValue, p.out.BeginArray()
	case objectOToken:
		p.stack = append(p.stack, frame{typ: Object})
		return expectFirstKey, p.out.BeginObject()
	default:
		return nil, p.fail("value", t)
	}
	if err != nil {
		return nil, err
	}
	return p.valueDone()
}

// expectFirstValue allows an array to close right after it was opened.
func expectFirstValue(p *parser) (parseFunc, error) {
	if t := p.next(); t.Type == arrayCToken {
		return p.close(t)
	}
	p.backup()
	return expectValue, nil
}

// expectFirstKey allows an object to close right after it was opened.
func expectFirstKey(p *parser) (parseFunc, error) {
	if t := p.next(); t.Type == objectCToken {
		return p.close(t)
	}
	p.backup()
	return expectKey, nil
}

func expectKey(p *parser) (parseFunc, error) {
	t := p.next()
	if t.Type != stringToken {
		return nil, p.fail("key", t)
	}
	if err := p.out.String(t.Value); err != nil {
		return nil, err
	}
	if t = p.next(); t.Type != colonToken {
		return nil, p.fail("colon", t)
	}
	return expectValue, nil
}

func expectDelim(p *parser) (parseFunc, error) {
	t := p.next()
	if len(p.stack) == 0 {
		if t.Type == eofToken {
			return nil, nil // all OK!
		}
		return nil, p.fail("end of input", t)
	}
	switch t.Type {
	case commaToken:
		if p.stack[len(p.stack)-1].typ == Object {
			return expectKey, nil
		}
		return expectValue, nil
	case arrayCToken, objectCToken:
		return p.close(t)
	default:
		return nil, p.fail("delimiter", t)
	}
}

// close pops the innermost container if t is its closing bracket.
func (p *parser) close(t token) (parseFunc, error) {
	top := p.stack[len(p.stack)-1]
	var err error
	switch {
	case top.typ == Array && t.Type == arrayCToken:
		p.stack = p.stack[:len(p.stack)-1]
		err = p.out.EndArray(top.count)
	case top.typ == Object && t.Type == objectCToken:
		p.stack = p.stack[:len(p.stack)-1]
		err = p.out.EndObject(top.count)
	case top.typ == Array:
		return nil, p.fail("array closing", t)
	default:
		return nil, p.fail("object closing", t)
	}
	if err != nil {
		return nil, err
	}
	return p.valueDone()
}
