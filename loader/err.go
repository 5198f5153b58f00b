package loader

import (
	"errors"

	"github.com/ezrec/hack/translate"
)

var f = translate.From

var (
	ErrCapacityInvalid = errors.New(f("capacity invalid"))
	ErrImageSize       = errors.New(f("assembled image size mismatch"))
)

type ErrFileNotFound string

func (err ErrFileNotFound) Error() string {
	return f("%v doesn't exist", string(err))
}

type ErrUnsupportedFileType string

func (err ErrUnsupportedFileType) Error() string {
	return f("%v is not a .hack or .asm file", string(err))
}

// ErrProgramTooLarge is a binary with more lines than memory.
type ErrProgramTooLarge struct {
	Capacity int
}

func (err ErrProgramTooLarge) Error() string {
	return f("program too large for %d words", err.Capacity)
}

// ErrIllegalBinaryLiteral is a binary line that is not a machine word.
type ErrIllegalBinaryLiteral struct {
	LineNo int
	Line   string
}

func (err ErrIllegalBinaryLiteral) Error() string {
	return f("line %d '%v' is not a %d bit binary word", err.LineNo, err.Line, WORD_BITS)
}

// ErrAssemblyFailed wraps an error from the source assembler.
type ErrAssemblyFailed struct {
	Path string
	Err  error
}

func (err ErrAssemblyFailed) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err ErrAssemblyFailed) Unwrap() error {
	return err.Err
}
