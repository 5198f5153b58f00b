package cpu

import (
	"errors"

	"github.com/ezrec/hack/translate"
)

var f = translate.From

var (
	// Machine word conversion errors
	ErrWordNoOp = errors.New(f("no-op has no machine word"))
)

// ErrUnknownMnemonic is a text with no registered field value.
type ErrUnknownMnemonic struct {
	Field Field
	Text  string
}

func (err ErrUnknownMnemonic) Error() string {
	return f("unknown %v mnemonic '%v'", err.Field, err.Text)
}

// ErrUnknownCode is a field value with no registered text.
type ErrUnknownCode struct {
	Field Field
	Value Code
}

func (err ErrUnknownCode) Error() string {
	return f("unknown %v code 0x%x", err.Field, uint32(err.Value))
}

// ErrWordRange is a value that does not fit a machine word.
type ErrWordRange uint32

func (err ErrWordRange) Error() string {
	return f("value 0x%x does not fit a machine word", uint32(err))
}

// ErrMalformedLine is a line that cannot be split into tokens.
type ErrMalformedLine struct {
	Line   string
	Column int
}

func (err ErrMalformedLine) Error() string {
	return f("malformed line '%v' at column %d", err.Line, err.Column)
}

type ErrExpectedNumericOperand string

func (err ErrExpectedNumericOperand) Error() string {
	return f("'%v' is not a numeric operand", string(err))
}

type ErrExpectedDestination string

func (err ErrExpectedDestination) Error() string {
	return f("'%v' is not a destination", string(err))
}

type ErrExpectedExpression string

func (err ErrExpectedExpression) Error() string {
	return f("'%v' is not an expression", string(err))
}

type ErrExpectedJumpCondition string

func (err ErrExpectedJumpCondition) Error() string {
	return f("'%v' is not a jump condition", string(err))
}

type ErrTrailingInput string

func (err ErrTrailingInput) Error() string {
	return f("unexpected '%v' at end of line", string(err))
}
