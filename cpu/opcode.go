package cpu

import (
	"fmt"
)

// Code is an encoded instruction in the codec's tagged form.
//
// Compute instructions occupy the low 16 bits exactly as the machine word
// does. Address instructions carry their operand in the low bits and the
// CODE_ADDRESS tag bit, which lies outside the machine word.
type Code int32

const (
	CODE_NOOP    = Code(0x80000) // No instruction (blank line).
	CODE_ADDRESS = Code(1 << 30) // Address instruction tag.

	MAX_ADDRESS = uint32(CODE_ADDRESS) // Exclusive upper bound of an address operand.

	COMP_MASK = Code(0xffc0) // Expression field, including the 0b111 prefix.
	DEST_MASK = Code(0x0038) // Destination field.
	JUMP_MASK = Code(0x0007) // Jump field.

	WORD_MASK    = Code(0xffff) // Bits of a machine word.
	WORD_COMPUTE = uint16(0x8000)
)

// Kind is the instruction variant.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_NOOP    = Kind(0) // noop
	KIND_ADDRESS = Kind(1) // address
	KIND_COMPUTE = Kind(2) // compute
)

// Field names one of the three fields of a compute instruction.
type Field int

//go:generate go tool stringer -linecomment -type=Field
const (
	FIELD_COMP = Field(0) // comp
	FIELD_DEST = Field(1) // dest
	FIELD_JUMP = Field(2) // jump
)

// Comp is the expression field of a compute instruction, in place.
type Comp uint16

const (
	COMP_NONE        = Comp(0)
	COMP_ZERO        = Comp(0xea80) // 0
	COMP_ONE         = Comp(0xefc0) // 1
	COMP_MINUS_ONE   = Comp(0xee80) // -1
	COMP_D           = Comp(0xe300) // D
	COMP_NOT_D       = Comp(0xe340) // !D
	COMP_M           = Comp(0xfc00) // M
	COMP_A           = Comp(0xec00) // A
	COMP_NOT_M       = Comp(0xfc40) // !M
	COMP_NOT_A       = Comp(0xec40) // !A
	COMP_MINUS_D     = Comp(0xe3c0) // -D
	COMP_MINUS_M     = Comp(0xfcc0) // -M
	COMP_MINUS_A     = Comp(0xecc0) // -A
	COMP_D_PLUS_ONE  = Comp(0xe7c0) // D+1
	COMP_M_PLUS_ONE  = Comp(0xfdc0) // M+1
	COMP_A_PLUS_ONE  = Comp(0xedc0) // A+1
	COMP_D_MINUS_ONE = Comp(0xe380) // D-1
	COMP_M_MINUS_ONE = Comp(0xfc80) // M-1
	COMP_A_MINUS_ONE = Comp(0xec80) // A-1
	COMP_D_PLUS_M    = Comp(0xf080) // D+M
	COMP_D_PLUS_A    = Comp(0xe080) // D+A
	COMP_D_MINUS_M   = Comp(0xf4c0) // D-M
	COMP_D_MINUS_A   = Comp(0xe4c0) // D-A
	COMP_M_MINUS_D   = Comp(0xf1c0) // M-D
	COMP_A_MINUS_D   = Comp(0xe1c0) // A-D
	COMP_D_AND_M     = Comp(0xf000) // D&M
	COMP_D_AND_A     = Comp(0xe000) // D&A
	COMP_D_OR_M      = Comp(0xf540) // D|M
	COMP_D_OR_A      = Comp(0xe540) // D|A
)

// Dest is the destination field of a compute instruction, in place.
type Dest uint16

const (
	DEST_NONE = Dest(0)
	DEST_M    = Dest(0x08)
	DEST_D    = Dest(0x10)
	DEST_MD   = Dest(0x18)
	DEST_A    = Dest(0x20)
	DEST_AM   = Dest(0x28)
	DEST_AD   = Dest(0x30)
	DEST_AMD  = Dest(0x38)
)

// Jump is the jump field of a compute instruction.
type Jump uint16

const (
	JUMP_NONE = Jump(0)
	JUMP_JGT  = Jump(1)
	JUMP_JEQ  = Jump(2)
	JUMP_JGE  = Jump(3)
	JUMP_JLT  = Jump(4)
	JUMP_JNE  = Jump(5)
	JUMP_JLE  = Jump(6)
	JUMP_JMP  = Jump(7)
)

// Instruction is a decoded instruction. Only the fields relevant to Kind
// are meaningful.
type Instruction struct {
	Kind    Kind
	Address uint32 // KIND_ADDRESS operand.
	Dest    Dest   // KIND_COMPUTE destination set, may be DEST_NONE.
	Comp    Comp   // KIND_COMPUTE expression.
	Jump    Jump   // KIND_COMPUTE jump condition, may be JUMP_NONE.
}

// MakeCodeAddress creates an address instruction.
// The value must be below MAX_ADDRESS.
func MakeCodeAddress(value uint32) Code {
	return CODE_ADDRESS | Code(value&(MAX_ADDRESS-1))
}

// MakeCodeCompute creates a compute instruction.
func MakeCodeCompute(dest Dest, comp Comp, jump Jump) Code {
	return (Code(dest) & DEST_MASK) | (Code(comp) & COMP_MASK) | (Code(jump) & JUMP_MASK)
}

// Kind returns the instruction variant of the code.
func (code Code) Kind() Kind {
	switch {
	case code == CODE_NOOP:
		return KIND_NOOP
	case (code & CODE_ADDRESS) == CODE_ADDRESS:
		return KIND_ADDRESS
	default:
		return KIND_COMPUTE
	}
}

// Address returns the operand of an address instruction, without the tag.
func (code Code) Address() uint32 {
	return uint32(code &^ CODE_ADDRESS)
}

// ComputeDecode masks out the three fields of a compute instruction.
func (code Code) ComputeDecode() (dest Dest, comp Comp, jump Jump) {
	dest = Dest(code & DEST_MASK)
	comp = Comp(code & COMP_MASK)
	jump = Jump(code & JUMP_MASK)
	return
}

// Instruction splits the code into its variant and fields.
func (code Code) Instruction() (inst Instruction) {
	inst.Kind = code.Kind()
	switch inst.Kind {
	case KIND_ADDRESS:
		inst.Address = code.Address()
	case KIND_COMPUTE:
		inst.Dest, inst.Comp, inst.Jump = code.ComputeDecode()
	}

	return
}

// Code packs the instruction.
func (inst Instruction) Code() Code {
	switch inst.Kind {
	case KIND_ADDRESS:
		return MakeCodeAddress(inst.Address)
	case KIND_COMPUTE:
		return MakeCodeCompute(inst.Dest, inst.Comp, inst.Jump)
	default:
		return CODE_NOOP
	}
}

// Word converts the code into a 16-bit machine word.
func (code Code) Word() (word uint16, err error) {
	switch code.Kind() {
	case KIND_NOOP:
		err = ErrWordNoOp
	case KIND_ADDRESS:
		value := code.Address()
		if value >= uint32(WORD_COMPUTE) {
			err = ErrWordRange(value)
			return
		}
		word = uint16(value)
	case KIND_COMPUTE:
		if (code &^ WORD_MASK) != 0 {
			err = ErrWordRange(uint32(code))
			return
		}
		word = uint16(code)
	}

	return
}

// FromWord converts a 16-bit machine word into the tagged code form.
func FromWord(word uint16) Code {
	if (word & WORD_COMPUTE) == 0 {
		return MakeCodeAddress(uint32(word))
	}

	return Code(word)
}

// String returns a debugging representation of the code.
func (code Code) String() string {
	switch code.Kind() {
	case KIND_NOOP:
		return "noop"
	case KIND_ADDRESS:
		return fmt.Sprintf("address:%d", code.Address())
	default:
		dest, comp, jump := code.ComputeDecode()
		return fmt.Sprintf("compute:%#04x.%#02x.%d", uint16(comp), uint16(dest), uint16(jump))
	}
}
