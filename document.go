package arenajson

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/d1ced/arenajson/internal/arena"
)

// Document is a handle to a node of a parsed JSON tree.
//
// Handles returned by At and Key share the arena of the document they were
// taken from and point into the same tree: a mutation through one handle is
// visible through every handle on the same node or an ancestor. The arena
// lives as long as any handle refers to it.
//
// A Document is not safe for concurrent use. All mutations of one tree must
// happen on a single goroutine; concurrent readers are fine only while no
// mutation is in flight.
type Document struct {
	doc *document
	ref arena.Ref
}

// document is the state shared by all handles on one tree.
type document struct {
	arena *arena.Arena
	cfg   Config
}

func newDocument(opts []Option) (*document, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNopLogger()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &document{arena: arena.New(cfg.arenaOptions()...), cfg: cfg}, nil
}

// parse builds text in the document's arena.
func (d *document) parse(text string, fragment bool) (arena.Ref, error) {
	ref, err := build(d.arena, text)
	d.cfg.Metrics.observeParse(fragment, len(text), err)
	if err != nil {
		level.Debug(d.cfg.Logger).Log("msg", "parse failed", "fragment", fragment, "bytes", len(text), "err", err)
		return 0, err
	}
	return ref, nil
}

func (d Document) node() node {
	if d.doc == nil {
		return node{}
	}
	return node{a: d.doc.arena, ref: d.ref}
}

func (d Document) with(n node) Document {
	return Document{doc: d.doc, ref: n.ref}
}

// Type returns the JSONType of the node. The zero Document has type Error.
func (d Document) Type() JSONType {
	return d.node().Type()
}

// At returns the element idx of an array.
func (d Document) At(idx int) (Document, error) {
	n, err := d.node().at(idx)
	if err != nil {
		return Document{}, err
	}
	return d.with(n), nil
}

// Key returns the value stored under name in an object.
func (d Document) Key(name string) (Document, error) {
	n, err := d.node().key(name)
	if err != nil {
		return Document{}, err
	}
	return d.with(n), nil
}

// AsDouble returns the value of a number.
func (d Document) AsDouble() (float64, error) {
	return d.node().asDouble()
}

// AsBool returns the value of a boolean.
func (d Document) AsBool() (bool, error) {
	return d.node().asBool()
}

// AsString returns a copy of the value of a string.
func (d Document) AsString() (string, error) {
	return d.node().asString()
}

// Size returns the number of elements of an array or members of an object.
func (d Document) Size() (int, error) {
	return d.node().size()
}

// Keys returns the member names of an object in insertion order.
func (d Document) Keys() ([]string, error) {
	return d.node().fields()
}

// Append parses text and appends it to an array.
func (d Document) Append(text string) error {
	ref, err := d.fragment(text)
	if err != nil {
		return errors.Wrap(err, "append")
	}
	return d.logged(d.node().append(ref))
}

// SetAt parses text and stores it as element idx of an array.
func (d Document) SetAt(idx int, text string) error {
	ref, err := d.fragment(text)
	if err != nil {
		return errors.Wrapf(err, "setAt(%d)", idx)
	}
	return d.logged(d.node().setAt(idx, ref))
}

// SetKey parses text and stores it under name in an object, replacing an
// existing member of that name.
func (d Document) SetKey(name, text string) error {
	ref, err := d.fragment(text)
	if err != nil {
		return errors.Wrapf(err, "setKey(%q)", name)
	}
	return d.logged(d.node().setKey(name, ref))
}

// RemoveAt deletes element idx of an array.
func (d Document) RemoveAt(idx int) error {
	return d.logged(d.node().removeAt(idx))
}

// RemoveKey deletes the member name of an object.
func (d Document) RemoveKey(name string) error {
	return d.logged(d.node().removeKey(name))
}

// fragment parses text into the arena of d. The fragment lives as long as
// the whole document.
func (d Document) fragment(text string) (arena.Ref, error) {
	if d.doc == nil {
		return 0, errors.Wrap(ErrNotAnArrayOrObject, "mutation of an empty Document")
	}
	return d.doc.parse(text, true)
}

func (d Document) logged(err error) error {
	if err != nil && d.doc != nil {
		level.Debug(d.doc.cfg.Logger).Log("msg", "mutation failed", "type", d.Type(), "err", err)
	}
	return err
}

// Serialize returns the document pretty-printed with four spaces per level.
func (d Document) Serialize() string {
	return string(prettyFormat.appendNode(nil, d.node(), 0))
}

// String formats the document as JSON with no whitespace.
func (d Document) String() string {
	return string(compactFormat.appendNode(nil, d.node(), 0))
}

// WriteTo writes the pretty-printed document to w.
func (d Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(prettyFormat.appendNode(nil, d.node(), 0))
	return int64(n), err
}

// MarshalJSON implements the json.Marshaler interface for Document.
func (d Document) MarshalJSON() ([]byte, error) {
	if d.Type() == Error {
		return nil, errors.New("marshal of an empty Document")
	}
	return compactFormat.appendNode(nil, d.node(), 0), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface for Document.
// The document gets a fresh arena with the default configuration.
func (d *Document) UnmarshalJSON(data []byte) error {
	m, err := ParseBytes(data)
	if err != nil {
		return err
	}
	*d = m
	return nil
}

// Value creates the Go representation of the document, like encoding/json
// does when decoding into an interface{}.
func (d Document) Value() (interface{}, error) {
	return d.node().Value()
}

// Stats describes the memory held by the arena of the document.
func (d Document) Stats() Stats {
	if d.doc == nil {
		return Stats{}
	}
	return d.doc.arena.Stats()
}

// Stats describes arena memory usage.
type Stats = arena.Stats

// Equal compares the documents and all their children. Object key order is
// ignored.
func Equal(a, b Document) bool {
	return eqNode(a.node(), b.node())
}
