package asm

import (
	"iter"
	"slices"

	"github.com/ezrec/hack/cpu"
)

// Opcode is an assembled line of source.
type Opcode struct {
	LineNo int      // Source line number.
	Ip     int      // Address of the instruction in program memory.
	Text   string   // Source text, after $(...) expansion.
	Code   cpu.Code // Encoded instruction.
	Word   uint16   // Machine word.
}

// Program is the result of assembling a source file.
type Program struct {
	Opcodes []Opcode
}

// Debug returns the opcode at an instruction address, or nil.
func (prog *Program) Debug(ip uint16) (op *Opcode) {
	index, ok := slices.BinarySearchFunc(prog.Opcodes, int(ip), func(op Opcode, ip int) int {
		return op.Ip - ip
	})
	if ok {
		op = &prog.Opcodes[index]
	}

	return
}

// Codes iterates over the instruction address and code of each opcode.
func (prog *Program) Codes() iter.Seq2[uint16, cpu.Code] {
	return func(yield func(ip uint16, code cpu.Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(uint16(op.Ip), op.Code) {
				return
			}
		}
	}
}

// Binary returns the machine words of the program.
func (prog *Program) Binary() (words []uint16) {
	words = make([]uint16, 0, len(prog.Opcodes))
	for _, op := range prog.Opcodes {
		words = append(words, op.Word)
	}

	return
}

// Memory places the program at address 0 of a capacity sized memory image
// whose remaining words are set to fill.
func (prog *Program) Memory(capacity int, fill int32) (memory []int32, err error) {
	if capacity < 0 {
		err = ErrCapacityInvalid
		return
	}

	if len(prog.Opcodes) > capacity {
		err = &ErrProgramTooLarge{Size: len(prog.Opcodes), Capacity: capacity}
		return
	}

	memory = make([]int32, capacity)
	for n := range memory {
		memory[n] = fill
	}

	for _, op := range prog.Opcodes {
		memory[op.Ip] = int32(op.Word)
	}

	return
}
