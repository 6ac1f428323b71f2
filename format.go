package arenajson

import (
	"math"
	"strconv"
)

// formatter controls the layout of serialized output.
type formatter struct {
	indent  string // per level
	newline string // after opening brackets and members
	colon   string // between key and value
}

var (
	prettyFormat  = formatter{indent: "    ", newline: "\n", colon: " : "}
	compactFormat = formatter{colon: ":"}
)

// appendNode writes n to buf. Composite nodes open on the current line,
// put each member on its own line one level deeper and close at level.
func (f formatter) appendNode(buf []byte, n node, level int) []byte {
	switch n.Type() {
	case Null:
		return append(buf, "null"...)
	case Bool:
		if v, _ := n.asBool(); v {
			return append(buf, "true"...)
		}
		return append(buf, "false"...)
	case Number:
		v, _ := n.asDouble()
		return appendFloat(buf, v)
	case String:
		return appendQuoted(buf, n.stringBytes())
	case Array:
		items := n.array().items.Items(n.a)
		if len(items) == 0 {
			return append(buf, "[]"...)
		}
		buf = append(buf, '[')
		buf = append(buf, f.newline...)
		for i, ref := range items {
			buf = f.appendIndent(buf, level+1)
			buf = f.appendNode(buf, n.child(ref), level+1)
			if i < len(items)-1 {
				buf = append(buf, ',')
			}
			buf = append(buf, f.newline...)
		}
		buf = f.appendIndent(buf, level)
		return append(buf, ']')
	case Object:
		entries := n.object().fields.Entries(n.a)
		if len(entries) == 0 {
			return append(buf, "{}"...)
		}
		buf = append(buf, '{')
		buf = append(buf, f.newline...)
		for i, e := range entries {
			buf = f.appendIndent(buf, level+1)
			buf = appendQuoted(buf, e.Key.Bytes(n.a))
			buf = append(buf, f.colon...)
			buf = f.appendNode(buf, n.child(e.Value), level+1)
			if i < len(entries)-1 {
				buf = append(buf, ',')
			}
			buf = append(buf, f.newline...)
		}
		buf = f.appendIndent(buf, level)
		return append(buf, '}')
	default:
		return append(buf, "<error>"...)
	}
}

func (f formatter) appendIndent(buf []byte, level int) []byte {
	for i := 0; i < level; i++ {
		buf = append(buf, f.indent...)
	}
	return buf
}

// appendFloat writes the shortest representation that parses back to v,
// switching to exponent notation outside [1e-6, 1e21).
func appendFloat(buf []byte, v float64) []byte {
	abs := math.Abs(v)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	buf = strconv.AppendFloat(buf, v, format, -1, 64)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(buf)
		if n >= 4 && buf[n-4] == 'e' && buf[n-3] == '-' && buf[n-2] == '0' {
			buf[n-2] = buf[n-1]
			buf = buf[:n-1]
		}
	}
	return buf
}

const hex = "0123456789abcdef"

// appendQuoted writes s as a JSON string, escaping quotes, backslashes and
// control characters. Invalid UTF-8 is written through unchanged.
func appendQuoted(buf []byte, s []byte) []byte {
	buf = append(buf, '"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			i++
			continue
		}
		buf = append(buf, s[start:i]...)
		switch c {
		case '"', '\\':
			buf = append(buf, '\\', c)
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			buf = append(buf, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xF])
		}
		i++
		start = i
	}
	buf = append(buf, s[start:]...)
	return append(buf, '"')
}
