package arenajson

import "fmt"

type tokenType uint8

const (
	errToken tokenType = iota
	eofToken
	nullToken
	trueToken
	falseToken
	numberToken
	stringToken
	commaToken
	colonToken
	arrayOToken
	arrayCToken
	objectOToken
	objectCToken
)

// token is a lexical unit. Position holds the zero-based row and column of
// its first byte.
type token struct {
	Type     tokenType
	Value    string
	Position [2]int
}

func newToken(b byte, row, col int) token {
	t := token{Position: [2]int{row, col}}
	switch b {
	case '{':
		t.Type = objectOToken
	case '}':
		t.Type = objectCToken
	case '[':
		t.Type = arrayOToken
	case ']':
		t.Type = arrayCToken
	case ':':
		t.Type = colonToken
	case ',':
		t.Type = commaToken
	default:
		t.Value = string(b)
	}
	return t
}

// String generates a readable form of a token meant for debugging.
func (t token) String() string {
	switch t.Type {
	case errToken:
		return "lex-err_" + t.Value
	case eofToken:
		return "end of input"
	case nullToken:
		return "'null'"
	case trueToken:
		return "'true'"
	case falseToken:
		return "'false'"
	case numberToken:
		return "lex-num_" + t.Value
	case stringToken:
		return "lex-str_" + t.Value
	case commaToken:
		return "','"
	case colonToken:
		return "':'"
	case arrayOToken:
		return "'['"
	case arrayCToken:
		return "']'"
	case objectOToken:
		return "'{'"
	case objectCToken:
		return "'}'"
	default:
		return "lex-unknown"
	}
}

// Error describes t as an unexpected token at its position.
func (t token) Error() string {
	where := fmt.Sprintf("line %d, column %d", t.Position[0]+1, t.Position[1]+1)
	switch t.Type {
	case errToken:
		return fmt.Sprintf("invalid token %q at %s", t.Value, where)
	case eofToken:
		return fmt.Sprintf("unexpected end of input at %s", where)
	default:
		return fmt.Sprintf("unexpected %s at %s", t.String(), where)
	}
}
