package arenajson

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/d1ced/arenajson/internal/arena"
	"github.com/d1ced/arenajson/internal/container"
)

// Errors reported by Document operations. They are wrapped with context
// describing the failed call; test for them with errors.Is.
var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("illegal JSON format")

	ErrNotAnArray         = errors.New("not an array")
	ErrNotAnObject        = errors.New("not an object")
	ErrNotAnArrayOrObject = errors.New("not an array or object")
	ErrNotConvertible     = errors.New("not convertible")

	ErrOutOfMemory     = arena.ErrOutOfMemory
	ErrIndexOutOfRange = container.ErrIndexOutOfRange
	ErrKeyNotFound     = container.ErrKeyNotFound
	ErrInvalidRange    = container.ErrInvalidRange
)

// ParseError captures information on errors when parsing.
type ParseError struct {
	msg    string
	token  token
	before token
}

func newParseError(msg string, before, after token) *ParseError {
	return &ParseError{
		msg:    msg,
		before: before,
		token:  after,
	}
}

func (e *ParseError) Error() string {
	if e.token == (token{}) {
		return fmt.Sprintf("%s: %s", ErrParse, e.msg)
	}
	if e.before == (token{}) {
		return fmt.Sprintf("%s; expected %s", e.token.Error(), e.msg)
	}
	return fmt.Sprintf("%s; expected %s after %s",
		e.token.Error(), e.msg, e.before.String())
}

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Where returns the row and column where the syntax error in json occurred.
// Both are zero-based.
func (e *ParseError) Where() (row, col int) {
	return e.token.Position[0], e.token.Position[1]
}
