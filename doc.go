/*
Package arenajson parses, edits and serializes JSON documents whose whole
tree lives in one region-based memory arena.

A document is parsed once with Parse. Every node of the tree, including
fragments added later by mutations, is placed in the arena of that
document and is freed together with it when the last handle becomes
unreachable. Nodes hold no Go pointers, so a large tree costs the garbage
collector only a handful of page buffers.

	doc, err := arenajson.Parse(`{"foo": [1, 2, 3]}`)
	if err != nil {
		return err
	}
	foo, _ := doc.Key("foo")
	_ = foo.Append("4")
	_ = foo.RemoveAt(2)
	fmt.Println(doc.Serialize())

Serialize pretty-prints with four spaces of indentation and " : " between
keys and values; String and MarshalJSON produce compact output.

Handles returned by At and Key alias the tree. A document must only be
mutated by one goroutine at a time, and never while another goroutine reads
it.
*/
package arenajson // import "github.com/d1ced/arenajson"
