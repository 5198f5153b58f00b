package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/hack/cpu"
)

func TestAssemblerEmpty(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal("16384", asm.Equate["SCREEN"])
	assert.Equal("24576", asm.Equate["KBD"])
	assert.Equal("15", asm.Equate["R15"])
}

func TestAssemblerParse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"// Computes R0 = 2 + 3",
		"@2",
		"D=A",
		"@3",
		"   D=D+A   // add",
		"",
		"@0",
		"M=D",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	require.NoError(t, err)

	expected := []Opcode{
		{2, 0, "@2", 0x4000_0002, 0x0002},
		{3, 1, "D=A", 0xec10, 0xec10},
		{4, 2, "@3", 0x4000_0003, 0x0003},
		{5, 3, "D=D+A", 0xe090, 0xe090},
		{7, 4, "@0", 0x4000_0000, 0x0000},
		{8, 5, "M=D", 0xe308, 0xe308},
	}

	assert.Equal(expected, prog.Opcodes)
	assert.Equal([]uint16{0x0002, 0xec10, 0x0003, 0xe090, 0x0000, 0xe308}, prog.Binary())

	ips := []uint16{}
	for ip, code := range prog.Codes() {
		ips = append(ips, ip)
		assert.Equal(prog.Opcodes[ip].Code, code)
	}
	assert.Equal([]uint16{0, 1, 2, 3, 4, 5}, ips)
}

func TestAssemblerExpressions(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("BASE", "0x100")

	program := []string{
		"@$(SCREEN+32)",
		"@$(R13)",
		"@$(BASE*2)",
		"@$(LINENO)",
		"@$(KBD) // $(this is not evaluated)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	require.NoError(t, err)

	assert.Equal([]uint16{16416, 13, 512, 4, 24576}, prog.Binary())
	assert.Equal("@16416", prog.Opcodes[0].Text)
	assert.Equal("0x100", asm.Equate["BASE"])
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"@5",
		"X=D",
		"D=M",
		"@$(1/0)",
		"@40000",
		"@$(-1)",
		"(LOOP)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.Nil(prog)
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)

	var linenos []int
	for _, lerr := range joined.Unwrap() {
		var syntax *ErrSyntax
		if assert.ErrorAs(lerr, &syntax) {
			linenos = append(linenos, syntax.LineNo)
		}
	}
	assert.Equal([]int{2, 4, 5, 6, 7}, linenos)

	assert.ErrorIs(err, cpu.ErrExpectedDestination("X"))
	assert.ErrorIs(err, cpu.ErrWordRange(40000))
	assert.ErrorIs(err, ErrParseExpression("-1"))

	var malformed *cpu.ErrMalformedLine
	assert.ErrorAs(err, &malformed)
}

func TestAssemblerAssemble(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Translator: cpu.NewTranslator()}

	source := "@21\nD=A\n0;JMP\n"

	memory, err := asm.Assemble(strings.NewReader(source), 8, -1)
	require.NoError(t, err)
	assert.Equal([]int32{21, 0xec10, 0xea87, -1, -1, -1, -1, -1}, memory)

	memory, err = asm.Assemble(strings.NewReader(source), 3, 0)
	assert.NoError(err)
	assert.Equal([]int32{21, 0xec10, 0xea87}, memory)

	memory, err = asm.Assemble(strings.NewReader(source), 2, 0)
	assert.Nil(memory)
	assert.Equal(&ErrProgramTooLarge{Size: 3, Capacity: 2}, err)

	memory, err = asm.Assemble(strings.NewReader(source), -1, 0)
	assert.Nil(memory)
	assert.True(errors.Is(err, ErrCapacityInvalid))

	memory, err = asm.Assemble(strings.NewReader("D=Q\n"), 8, 0)
	assert.Nil(memory)
	assert.ErrorIs(err, cpu.ErrExpectedExpression("Q"))
}

func TestProgramDebug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader("@1\n\n// skip\nM=1\n"))
	require.NoError(t, err)

	op := prog.Debug(0)
	if assert.NotNil(op) {
		assert.Equal(1, op.LineNo)
	}

	op = prog.Debug(1)
	if assert.NotNil(op) {
		assert.Equal(4, op.LineNo)
		assert.Equal("M=1", op.Text)
	}

	assert.Nil(prog.Debug(2))
}
