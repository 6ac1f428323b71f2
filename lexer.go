package arenajson

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// lexer generates tokens from json. It runs synchronously: next drives the
// state functions until one of them emits a token.
// After emitting an error token the lexer quits.
type lexer struct {
	mode     lexFunc
	data     string
	start    int
	pos      int
	row, col int

	out   token
	ready bool
	buf   []byte // scratch for strings with escapes
}

type lexFunc func(*lexer) lexFunc

func newLexer(data string) *lexer {
	return &lexer{mode: noneMode, data: data}
}

// next returns the next token. Once the input is exhausted, or after an
// error token, it keeps returning eofToken.
func (l *lexer) next() token {
	for !l.ready {
		if l.mode == nil {
			return token{Type: eofToken, Position: [2]int{l.row, l.col}}
		}
		l.mode = l.mode(l)
	}
	l.ready = false
	return l.out
}

func (l *lexer) emit(t token, f lexFunc) lexFunc {
	l.out, l.ready = t, true
	return f
}

// skip moves past n bytes of the current line.
func (l *lexer) skip(n int) {
	l.pos += n
	l.col += n
	l.start = l.pos
}

func (l *lexer) errorf(value string, row, col int) lexFunc {
	return l.emit(token{Type: errToken, Value: value, Position: [2]int{row, col}}, nil)
}

func noneMode(l *lexer) lexFunc {
	if l.pos >= len(l.data) {
		return nil
	}
	switch b := l.data[l.pos]; b {
	case ' ', '\t', '\r':
		l.skip(1)
		return noneMode
	case '\n':
		l.pos++
		l.start = l.pos
		l.col = 0
		l.row++
		return noneMode
	case '{', '}', '[', ']', ',', ':':
		t := newToken(b, l.row, l.col)
		l.skip(1)
		return l.emit(t, noneMode)
	case '"':
		return stringMode
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return numberMode
	default:
		return otherMode
	}
}

// stringMode scans a quoted string starting at l.pos. Escapes are decoded;
// the token value aliases the input when there are none.
func stringMode(l *lexer) lexFunc {
	row, col := l.row, l.col
	i := l.pos + 1
	l.buf = l.buf[:0]
	escaped := false
	for i < len(l.data) {
		c := l.data[i]
		switch {
		case c == '"':
			value := l.data[l.pos+1 : i]
			if escaped {
				l.buf = append(l.buf, l.data[l.start:i]...)
				value = string(l.buf)
			}
			l.skip(i + 1 - l.pos)
			return l.emit(token{Type: stringToken, Value: value, Position: [2]int{row, col}}, noneMode)
		case c == '\\':
			if !escaped {
				escaped = true
				l.start = l.pos + 1
			}
			l.buf = append(l.buf, l.data[l.start:i]...)
			n, ok := l.unescape(i)
			if !ok {
				end := i + n
				if end > len(l.data) {
					end = len(l.data)
				}
				return l.errorf(l.data[i:end], row, col+i-l.pos)
			}
			i += n
			l.start = i
		case c < 0x20:
			return l.errorf(l.data[l.pos:i+1], row, col)
		default:
			i++
		}
	}
	return l.errorf(l.data[l.pos:], row, col)
}

// unescape decodes the escape sequence at data[i] into l.buf and reports how
// many input bytes it spans.
func (l *lexer) unescape(i int) (int, bool) {
	if i+1 >= len(l.data) {
		return 1, false
	}
	switch c := l.data[i+1]; c {
	case '"', '\\', '/':
		l.buf = append(l.buf, c)
	case 'b':
		l.buf = append(l.buf, '\b')
	case 'f':
		l.buf = append(l.buf, '\f')
	case 'n':
		l.buf = append(l.buf, '\n')
	case 'r':
		l.buf = append(l.buf, '\r')
	case 't':
		l.buf = append(l.buf, '\t')
	case 'u':
		r, ok := hex4(l.data, i+2)
		if !ok {
			return 6, false
		}
		if utf16.IsSurrogate(r) {
			if lo, ok := hex4(l.data, i+8); ok && l.data[i+6] == '\\' && l.data[i+7] == 'u' {
				if dec := utf16.DecodeRune(r, lo); dec != utf8.RuneError {
					l.buf = utf8.AppendRune(l.buf, dec)
					return 12, true
				}
			}
			r = utf8.RuneError
		}
		l.buf = utf8.AppendRune(l.buf, r)
		return 6, true
	default:
		return 2, false
	}
	return 2, true
}

// hex4 parses four hex digits at data[i:].
func hex4(data string, i int) (rune, bool) {
	if i+4 > len(data) {
		return 0, false
	}
	var r rune
	for _, c := range []byte(data[i : i+4]) {
		switch {
		case '0' <= c && c <= '9':
			c -= '0'
		case 'a' <= c && c <= 'f':
			c = c - 'a' + 10
		case 'A' <= c && c <= 'F':
			c = c - 'A' + 10
		default:
			return 0, false
		}
		r = r<<4 | rune(c)
	}
	return r, true
}

// numberMode scans a number following the JSON grammar:
// -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func numberMode(l *lexer) lexFunc {
	end := scanNumber(l.data, l.pos)
	if end < 0 || (end < len(l.data) && !isDelim(l.data[end])) {
		return l.errorf(l.word(), l.row, l.col)
	}
	t := token{Type: numberToken, Value: l.data[l.pos:end], Position: [2]int{l.row, l.col}}
	l.skip(end - l.pos)
	return l.emit(t, noneMode)
}

// scanNumber returns the end of the number at data[i:], or -1.
func scanNumber(data string, i int) int {
	digits := func() int {
		n := 0
		for i < len(data) && '0' <= data[i] && data[i] <= '9' {
			i++
			n++
		}
		return n
	}
	if i < len(data) && data[i] == '-' {
		i++
	}
	switch {
	case i < len(data) && data[i] == '0':
		i++
	case digits() == 0:
		return -1
	}
	if i < len(data) && data[i] == '.' {
		i++
		if digits() == 0 {
			return -1
		}
	}
	if i < len(data) && (data[i] == 'e' || data[i] == 'E') {
		i++
		if i < len(data) && (data[i] == '+' || data[i] == '-') {
			i++
		}
		if digits() == 0 {
			return -1
		}
	}
	return i
}

// otherMode matches the literals null, true and false as whole words.
func otherMode(l *lexer) lexFunc {
	w := l.word()
	var t token
	switch w {
	case "null":
		t.Type = nullToken
	case "true":
		t.Type = trueToken
	case "false":
		t.Type = falseToken
	default:
		if w == "" {
			w = l.data[l.pos : l.pos+1]
		}
		return l.errorf(w, l.row, l.col)
	}
	t.Position = [2]int{l.row, l.col}
	l.skip(len(w))
	return l.emit(t, noneMode)
}

// word returns the run of non-delimiter bytes at l.pos.
func (l *lexer) word() string {
	rest := l.data[l.pos:]
	if i := strings.IndexAny(rest, " \t\r\n{}[],:\""); i >= 0 {
		return rest[:i]
	}
	return rest
}

func isDelim(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '{', '}', '[', ']', ',', ':', '"':
		return true
	}
	return false
}
