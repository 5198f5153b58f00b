package asm

import (
	"errors"

	"github.com/ezrec/hack/translate"
)

var f = translate.From

var (
	ErrCapacityInvalid = errors.New(f("capacity invalid"))
)

// ErrSyntax locates an error on a line of source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrProgramTooLarge is a program with more words than memory.
type ErrProgramTooLarge struct {
	Size     int
	Capacity int
}

func (err ErrProgramTooLarge) Error() string {
	return f("program of %d words exceeds capacity %d", err.Size, err.Capacity)
}
