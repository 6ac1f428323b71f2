package arenajson

import (
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Parse reads text as one JSON value and returns the root of its tree. The
// tree is stored in a new arena configured by opts.
func Parse(text string, opts ...Option) (Document, error) {
	d, err := newDocument(opts)
	if err != nil {
		return Document{}, errors.Wrap(err, "invalid config")
	}
	ref, err := d.parse(text, false)
	if err != nil {
		return Document{}, err
	}
	level.Debug(d.cfg.Logger).Log("msg", "parsed document", "bytes", len(text), "pages", d.arena.NumPages(), "in_use", d.arena.SizeInUse())
	return Document{doc: d, ref: ref}, nil
}

// ParseBytes is like Parse but takes the text as a byte slice.
func ParseBytes(data []byte, opts ...Option) (Document, error) {
	return Parse(string(data), opts...)
}

// Valid reports whether text is a single valid JSON value.
func Valid(text string) bool {
	return parse(newLexer(text), discard{}) == nil
}

// discard checks the syntax of a parse without building anything.
type discard struct{}

func (discard) String(string) error  { return nil }
func (discard) Number(float64) error { return nil }
func (discard) Bool(bool) error      { return nil }
func (discard) Null() error          { return nil }
func (discard) BeginArray() error    { return nil }
func (discard) EndArray(int) error   { return nil }
func (discard) BeginObject() error   { return nil }
func (discard) EndObject(int) error  { return nil }
