package arenajson

import (
	"fmt"

	"github.com/d1ced/arenajson/internal/arena"
	"github.com/d1ced/arenajson/internal/container"
)

// builder turns parse events into a tree stored in an arena. It keeps a
// single operand stack of node refs: scalars are pushed as they arrive and
// the end of a container folds the trailing stack entries into one node.
type builder struct {
	a     *arena.Arena
	stack container.Sequence[arena.Ref]
}

func newBuilder(a *arena.Arena) (*builder, error) {
	stack, err := container.NewSequence[arena.Ref](a, container.InitialCapacity)
	if err != nil {
		return nil, err
	}
	return &builder{a: a, stack: stack}, nil
}

func (b *builder) push(ref arena.Ref, err error) error {
	if err != nil {
		return err
	}
	return b.stack.PushBack(b.a, ref)
}

func (b *builder) String(s string) error  { return b.push(newString(b.a, s)) }
func (b *builder) Number(v float64) error { return b.push(newNumber(b.a, v)) }
func (b *builder) Bool(v bool) error      { return b.push(newBool(b.a, v)) }
func (b *builder) Null() error            { return b.push(newNull(b.a)) }
func (b *builder) BeginArray() error      { return nil }
func (b *builder) BeginObject() error     { return nil }

// top returns the last n stack entries, oldest first.
func (b *builder) top(n int) ([]arena.Ref, error) {
	if n < 0 || n > b.stack.Len() {
		return nil, newParseError(fmt.Sprintf("builder stack holds %d nodes, container needs %d", b.stack.Len(), n), token{}, token{})
	}
	items := b.stack.Items(b.a)
	return items[len(items)-n:], nil
}

// EndArray pops n nodes into a new Array node and pushes it.
func (b *builder) EndArray(n int) error {
	members, err := b.top(n)
	if err != nil {
		return err
	}
	items, err := container.NewSequence[arena.Ref](b.a, n)
	if err != nil {
		return err
	}
	for _, ref := range members {
		if err := items.PushBack(b.a, ref); err != nil {
			return err
		}
	}
	if err := b.stack.Shrink(n); err != nil {
		return err
	}
	return b.push(newArray(b.a, items))
}

// EndObject pops n key/value pairs into a new Object node and pushes it.
// A later duplicate key overwrites the earlier value.
func (b *builder) EndObject(n int) error {
	members, err := b.top(2 * n)
	if err != nil {
		return err
	}
	fields, err := container.NewMap[arena.Ref](b.a, n)
	if err != nil {
		return err
	}
	for i := 0; i < len(members); i += 2 {
		k := node{a: b.a, ref: members[i]}
		if t := k.Type(); t != String {
			return newParseError(fmt.Sprintf("object key is %s, want String", t), token{}, token{})
		}
		key := arena.Get[stringNode](b.a, members[i]).val
		if err := fields.Set(b.a, key, members[i+1]); err != nil {
			return err
		}
	}
	if err := b.stack.Shrink(2 * n); err != nil {
		return err
	}
	return b.push(newObject(b.a, fields))
}

// result returns the root node. The stack must hold exactly one node once
// the top-level value is complete.
func (b *builder) result() (arena.Ref, error) {
	if b.stack.Len() != 1 {
		return 0, newParseError(fmt.Sprintf("builder stack holds %d nodes after parsing, want 1", b.stack.Len()), token{}, token{})
	}
	return b.stack.PopBack(b.a)
}

// build parses text into a, returning the root node.
func build(a *arena.Arena, text string) (arena.Ref, error) {
	b, err := newBuilder(a)
	if err != nil {
		return 0, err
	}
	if err := parse(newLexer(text), b); err != nil {
		return 0, err
	}
	return b.result()
}
