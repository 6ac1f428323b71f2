package arenajson

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/d1ced/arenajson/internal/arena"
	"github.com/d1ced/arenajson/internal/container"
)

// JSONType is an enum for any JSON-types
type JSONType uint8

//go:generate stringer -type JSONType

// JSONTypes to compare nodes of a document with. The zero value signals
// invalid.
const (
	Error JSONType = iota
	Null
	Bool
	Number
	String
	Array
	Object
)

// Nodes are stored in the arena as one of the structs below. Each begins
// with its JSONType so the variant can be read before the payload:
//
//	JSONType	payload
//	Null		none
//	Bool		bool
//	Number		float64
//	String		container.Slice
//	Array		container.Sequence of node refs
//	Object		container.Map of node refs
type (
	nullNode struct {
		typ JSONType
	}
	boolNode struct {
		typ JSONType
		val bool
	}
	numberNode struct {
		typ JSONType
		val float64
	}
	stringNode struct {
		typ JSONType
		val container.Slice
	}
	arrayNode struct {
		typ   JSONType
		items container.Sequence[arena.Ref]
	}
	objectNode struct {
		typ    JSONType
		fields container.Map[arena.Ref]
	}
)

// node is a handle to a node stored in an arena. Nodes are owned by the
// arena collectively and are never freed one by one.
type node struct {
	a   *arena.Arena
	ref arena.Ref
}

func (n node) Type() JSONType {
	if n.a == nil || n.ref.IsNil() {
		return Error
	}
	return *arena.Get[JSONType](n.a, n.ref)
}

func (n node) child(ref arena.Ref) node {
	return node{a: n.a, ref: ref}
}

// constructors

func newNull(a *arena.Arena) (arena.Ref, error) {
	return arena.Make(a, nullNode{typ: Null})
}

func newBool(a *arena.Arena, v bool) (arena.Ref, error) {
	return arena.Make(a, boolNode{typ: Bool, val: v})
}

func newNumber(a *arena.Arena, v float64) (arena.Ref, error) {
	return arena.Make(a, numberNode{typ: Number, val: v})
}

func newString(a *arena.Arena, s string) (arena.Ref, error) {
	val, err := container.CopyString(a, s)
	if err != nil {
		return 0, err
	}
	return arena.Make(a, stringNode{typ: String, val: val})
}

func newArray(a *arena.Arena, items container.Sequence[arena.Ref]) (arena.Ref, error) {
	return arena.Make(a, arrayNode{typ: Array, items: items})
}

func newObject(a *arena.Arena, fields container.Map[arena.Ref]) (arena.Ref, error) {
	return arena.Make(a, objectNode{typ: Object, fields: fields})
}

// variant accessors; callers check Type first

func (n node) array() *arrayNode   { return arena.Get[arrayNode](n.a, n.ref) }
func (n node) object() *objectNode { return arena.Get[objectNode](n.a, n.ref) }

// shape errors

func notAnArray(op string, t JSONType) error {
	return errors.Wrapf(ErrNotAnArray, "%s on %s", op, t)
}

func notAnObject(op string, t JSONType) error {
	return errors.Wrapf(ErrNotAnObject, "%s on %s", op, t)
}

func notConvertible(to string, t JSONType) error {
	return errors.Wrapf(ErrNotConvertible, "%s to %s", t, to)
}

// operations; each variant supports only what is meaningful for it

func (n node) at(idx int) (node, error) {
	if t := n.Type(); t != Array {
		return node{}, notAnArray(fmt.Sprintf("at(%d)", idx), t)
	}
	ref, err := n.array().items.At(n.a, idx)
	if err != nil {
		return node{}, err
	}
	return n.child(ref), nil
}

func (n node) key(name string) (node, error) {
	if t := n.Type(); t != Object {
		return node{}, notAnObject(fmt.Sprintf("key(%q)", name), t)
	}
	ref, err := n.object().fields.Get(n.a, name)
	if err != nil {
		return node{}, err
	}
	return n.child(ref), nil
}

func (n node) append(child arena.Ref) error {
	if t := n.Type(); t != Array {
		return notAnArray("append", t)
	}
	return n.array().items.PushBack(n.a, child)
}

func (n node) setAt(idx int, child arena.Ref) error {
	if t := n.Type(); t != Array {
		return notAnArray(fmt.Sprintf("setAt(%d)", idx), t)
	}
	return n.array().items.Set(n.a, idx, child)
}

func (n node) removeAt(idx int) error {
	if t := n.Type(); t != Array {
		return notAnArray(fmt.Sprintf("removeAt(%d)", idx), t)
	}
	return n.array().items.Remove(n.a, idx)
}

func (n node) setKey(name string, child arena.Ref) error {
	if t := n.Type(); t != Object {
		return notAnObject(fmt.Sprintf("setKey(%q)", name), t)
	}
	return n.object().fields.SetString(n.a, name, child)
}

func (n node) removeKey(name string) error {
	if t := n.Type(); t != Object {
		return notAnObject(fmt.Sprintf("removeKey(%q)", name), t)
	}
	return n.object().fields.Remove(n.a, name)
}

func (n node) size() (int, error) {
	switch t := n.Type(); t {
	case Array:
		return n.array().items.Len(), nil
	case Object:
		return n.object().fields.Len(), nil
	default:
		return 0, errors.Wrapf(ErrNotAnArrayOrObject, "size of %s", t)
	}
}

func (n node) fields() ([]string, error) {
	if t := n.Type(); t != Object {
		return nil, notAnObject("keys", t)
	}
	return n.object().fields.Keys(n.a), nil
}

func (n node) asDouble() (float64, error) {
	if t := n.Type(); t != Number {
		return 0, notConvertible("double", t)
	}
	return arena.Get[numberNode](n.a, n.ref).val, nil
}

func (n node) asBool() (bool, error) {
	if t := n.Type(); t != Bool {
		return false, notConvertible("bool", t)
	}
	return arena.Get[boolNode](n.a, n.ref).val, nil
}

func (n node) asString() (string, error) {
	if t := n.Type(); t != String {
		return "", notConvertible("string", t)
	}
	return arena.Get[stringNode](n.a, n.ref).val.String(n.a), nil
}

// stringBytes returns the bytes of a String node without copying.
func (n node) stringBytes() []byte {
	return arena.Get[stringNode](n.a, n.ref).val.Bytes(n.a)
}

// Value creates the Go representation of a node.
// Like encoding/json the possible underlying types of the first return
// parameter are:
//
//	Object    map[string]interface{}
//	Array     []interface{}
//	String    string
//	Number    float64
//	Bool      bool
//	Null      nil (with the error being nil too)
func (n node) Value() (interface{}, error) {
	switch t := n.Type(); t {
	case Null:
		return nil, nil
	case Bool:
		return n.asBool()
	case Number:
		return n.asDouble()
	case String:
		return n.asString()
	case Array:
		items := n.array().items.Items(n.a)
		s := make([]interface{}, 0, len(items))
		for _, ref := range items {
			itf, err := n.child(ref).Value()
			if err != nil {
				return nil, err
			}
			s = append(s, itf)
		}
		return s, nil
	case Object:
		entries := n.object().fields.Entries(n.a)
		m := make(map[string]interface{}, len(entries))
		for _, e := range entries {
			itf, err := n.child(e.Value).Value()
			if err != nil {
				return nil, err
			}
			m[e.Key.String(n.a)] = itf
		}
		return m, nil
	default:
		return nil, errors.Errorf("node of unknown type: %s", t)
	}
}

// eqNode compares the nodes and all their children. Object key order is
// arbitrary.
func eqNode(a, b node) bool {
	if a == b {
		return true
	}
	t := a.Type()
	if t != b.Type() {
		return false
	}
	switch t {
	case Null:
		return true
	case Bool:
		x, _ := a.asBool()
		y, _ := b.asBool()
		return x == y
	case Number:
		x, _ := a.asDouble()
		y, _ := b.asDouble()
		return x == y
	case String:
		return string(a.stringBytes()) == string(b.stringBytes())
	case Array:
		an, bn := a.array().items.Items(a.a), b.array().items.Items(b.a)
		if len(an) != len(bn) {
			return false
		}
		for i := range an {
			if !eqNode(a.child(an[i]), b.child(bn[i])) {
				return false
			}
		}
		return true
	case Object:
		ae, bo := a.object().fields.Entries(a.a), b.object().fields
		if len(ae) != bo.Len() {
			return false
		}
		for _, e := range ae {
			ref, err := bo.Get(b.a, e.Key.String(a.a))
			if err != nil || !eqNode(a.child(e.Value), b.child(ref)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
