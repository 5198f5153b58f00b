// Package loader materializes a Hack program memory image from a file.
//
// Two file types are understood: precompiled ".hack" files, one 16 character
// binary machine word per line, and ".asm" source files, which are handed to
// an Assembler.
package loader

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/hack/asm"
)

const (
	WORD_BITS = 16 // Characters per line of a .hack file.

	SUFFIX_BINARY = ".hack"
	SUFFIX_SOURCE = ".asm"
)

// Assembler turns source text into a memory image.
type Assembler interface {
	Assemble(input io.Reader, capacity int, fill int32) (memory []int32, err error)
}

var _ Assembler = (*asm.Assembler)(nil)

// Loader loads program files.
type Loader struct {
	Verbose   bool      // If set, logs each file loaded.
	Assembler Assembler // Source assembler, an asm.Assembler if nil.
}

// LoadProgram loads a program file with a default Loader.
func LoadProgram(path string, capacity int, fill int32) (memory []int32, err error) {
	return (&Loader{}).LoadProgram(path, capacity, fill)
}

// LoadProgram returns a capacity sized memory image holding the program
// at address 0, with every other word set to fill.
//
// No memory image is returned alongside an error.
func (ld *Loader) LoadProgram(path string, capacity int, fill int32) (memory []int32, err error) {
	if capacity < 0 {
		err = ErrCapacityInvalid
		return
	}

	_, err = os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		err = ErrFileNotFound(path)
		return
	}
	if err != nil {
		return
	}

	switch {
	case strings.HasSuffix(path, SUFFIX_BINARY):
		memory, err = ld.loadBinary(path, capacity, fill)
	case strings.HasSuffix(path, SUFFIX_SOURCE):
		memory, err = ld.loadSource(path, capacity, fill)
	default:
		err = ErrUnsupportedFileType(path)
	}

	if err != nil {
		memory = nil
		return
	}

	if ld.Verbose {
		log.Printf("%v: loaded into %d words", path, capacity)
	}

	return
}

// loadBinary reads a .hack file.
func (ld *Loader) loadBinary(path string, capacity int, fill int32) (memory []int32, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return ReadBinary(inf, capacity, fill)
}

// ReadBinary reads .hack formatted machine words into a memory image.
func ReadBinary(input io.Reader, capacity int, fill int32) (memory []int32, err error) {
	if capacity < 0 {
		err = ErrCapacityInvalid
		return
	}

	memory = make([]int32, capacity)
	for n := range memory {
		memory[n] = fill
	}

	scanner := bufio.NewScanner(input)

	pc := 0
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if pc >= capacity {
			err = &ErrProgramTooLarge{Capacity: capacity}
			break
		}

		value, ok := parseWord(line)
		if !ok {
			err = &ErrIllegalBinaryLiteral{LineNo: pc + 1, Line: line}
			break
		}

		memory[pc] = int32(value)
		pc++
	}

	if err == nil {
		err = scanner.Err()
	}

	if err != nil {
		memory = nil
	}

	return
}

// parseWord strictly parses a WORD_BITS wide binary literal.
func parseWord(line string) (value uint64, ok bool) {
	if len(line) != WORD_BITS {
		return
	}

	value, err := strconv.ParseUint(line, 2, WORD_BITS)
	ok = err == nil
	return
}

// loadSource hands a .asm file to the assembler.
func (ld *Loader) loadSource(path string, capacity int, fill int32) (memory []int32, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	assembler := ld.Assembler
	if assembler == nil {
		assembler = &asm.Assembler{Verbose: ld.Verbose}
	}

	memory, err = assembler.Assemble(inf, capacity, fill)
	if err != nil {
		err = &ErrAssemblyFailed{Path: path, Err: err}
		return
	}

	if len(memory) != capacity {
		memory = nil
		err = &ErrAssemblyFailed{Path: path, Err: ErrImageSize}
	}

	return
}
