package cpu

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		code Code
	}){
		{"@5", 0x4000_0005},
		{"@0", 0x4000_0000},
		{"@1073741823", 0x7fff_ffff},
		{"D=D+M", 0xf090},
		{"0;JMP", 0xea87},
		{"M+D", 0xf080},
		{"D+M", 0xf080},
		{"AM=M+1", 0xfde8},
		{"D;JGT", 0xe301},
		{"AMD=!A;JNE", 0xec7d},
		{"AMD=NOTA;JNE", 0xec7d},
		{"  D = -1 ; JLE  ", 0xee96},
		{"M=D // store", 0xe308},
		{"", CODE_NOOP},
		{"   \t", CODE_NOOP},
		{"// only a comment", CODE_NOOP},
	}

	for _, entry := range table {
		code, err := Encode(entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.code, code, entry.line)
	}
}

func TestEncodeErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		err  error
	}){
		{"@abc", ErrExpectedNumericOperand("abc")},
		{"@", ErrExpectedNumericOperand("")},
		{"@-1", ErrExpectedNumericOperand("-1")},
		{"@0x10", ErrExpectedNumericOperand("0x10")},
		{"@1073741824", ErrExpectedNumericOperand("1073741824")},
		{"@5 D", ErrTrailingInput("D")},
		{"X=D", ErrExpectedDestination("X")},
		{"DA=D", ErrExpectedDestination("DA")},
		{"D=Q", ErrExpectedExpression("Q")},
		{"D=", ErrExpectedExpression("")},
		{"=M", ErrExpectedExpression("=")},
		{"D+Q", ErrExpectedExpression("D+Q")},
		{"D;JXX", ErrExpectedJumpCondition("JXX")},
		{"D;", ErrExpectedJumpCondition("")},
		{"D JMP", ErrTrailingInput("JMP")},
		{"D;JMP JMP", ErrTrailingInput("JMP")},
		{"0;JMP;", ErrTrailingInput(";")},
	}

	for _, entry := range table {
		code, err := Encode(entry.line)
		assert.Equal(entry.err, err, entry.line)
		assert.Equal(Code(0), code, entry.line)
	}
}

func TestEncodeMalformed(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line   string
		column int
	}){
		{"D=M #", 5},
		{"D=M / 2", 5},
		{"(LOOP)", 1},
		{"@$(5)", 3},
		{"D=M\x00", 4},
	}

	for _, entry := range table {
		_, err := Encode(entry.line)
		var malformed *ErrMalformedLine
		if assert.ErrorAs(err, &malformed, entry.line) {
			assert.Equal(entry.line, malformed.Line)
			assert.Equal(entry.column, malformed.Column, entry.line)
		}
	}
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code Code
		line string
	}){
		{CODE_NOOP, ""},
		{0x4000_0005, "@5"},
		{0xf090, "D=D+M"},
		{0xea87, "0;JMP"},
		{0xf080, "D+M"},
		{0xec7d, "AMD=!A;JNE"},
		{0x0000, ""},
		{0x003f, ""},
		{-1, "@3221225471"},
	}

	for _, entry := range table {
		line, err := Decode(entry.code)
		assert.NoError(err, entry.code.String())
		assert.Equal(entry.line, line, entry.code.String())
	}
}

func TestDecodeErrors(t *testing.T) {
	assert := assert.New(t)

	table := []Code{
		0xffc0,   // unregistered expression
		0xe040,   // unregistered expression
		0x1_f080, // beyond the machine word
		-0x8000_0000,
	}

	for _, code := range table {
		line, err := Decode(code)
		var unknown *ErrUnknownCode
		assert.ErrorAs(err, &unknown, code.String())
		assert.Equal(FIELD_COMP, unknown.Field)
		assert.Equal("", line)
	}
}

func TestRoundTripCanonical(t *testing.T) {
	assert := assert.New(t)

	tr := NewTranslator()

	lines := []string{"@0", "@1", "@16384", "@24576", "@32767", "@1073741823"}

	for _, expr := range tr.Canonical(FIELD_COMP) {
		lines = append(lines, expr)
		for _, dest := range tr.Canonical(FIELD_DEST) {
			lines = append(lines, dest+"="+expr)
			for _, jump := range tr.Canonical(FIELD_JUMP) {
				lines = append(lines, dest+"="+expr+";"+jump)
			}
		}
		for _, jump := range tr.Canonical(FIELD_JUMP) {
			lines = append(lines, expr+";"+jump)
		}
	}

	// 28 expressions, each alone, with 7 dests, 7*7 dest/jump and 7 jumps.
	assert.Equal(6+28*(1+7+49+7), len(lines))

	for _, line := range lines {
		code, err := tr.Encode(line)
		assert.NoError(err, line)
		text, err := tr.Decode(code)
		assert.NoError(err, line)
		assert.Equal(line, text)
	}
}

func TestAliasConvergence(t *testing.T) {
	assert := assert.New(t)

	tr := NewTranslator()

	for alias, code := range tr.Aliases(FIELD_COMP) {
		canonical, err := tr.TextFor(FIELD_COMP, code)
		assert.NoError(err)

		aliased, err := tr.Encode("D=" + alias + ";JEQ")
		assert.NoError(err, alias)
		expected, err := tr.Encode("D=" + canonical + ";JEQ")
		assert.NoError(err, canonical)
		assert.Equal(expected, aliased, alias)

		text, err := tr.Decode(aliased)
		assert.NoError(err)
		assert.Equal("D="+canonical+";JEQ", text)
	}

	m_plus_d, _ := tr.Encode("M+D")
	d_plus_m, _ := tr.Encode("D+M")
	assert.Equal(d_plus_m, m_plus_d)
	text, _ := tr.Decode(m_plus_d)
	assert.Equal("D+M", text)
}

func TestFieldDisjoint(t *testing.T) {
	assert := assert.New(t)

	tr := NewTranslator()

	for dtext, dest := range tr.Aliases(FIELD_DEST) {
		for ctext, comp := range tr.Aliases(FIELD_COMP) {
			for jtext, jump := range tr.Aliases(FIELD_JUMP) {
				line := dtext + "=" + ctext + ";" + jtext
				code, err := tr.Encode(line)
				assert.NoError(err, line)
				assert.Equal(dest|comp|jump, code, line)
				assert.Equal(MakeCodeCompute(Dest(dest), Comp(comp), Jump(jump)), code, line)

				d, c, j := code.ComputeDecode()
				assert.Equal(Dest(dest), d, line)
				assert.Equal(Comp(comp), c, line)
				assert.Equal(Jump(jump), j, line)
			}
		}
	}
}

func TestNoOpDistinct(t *testing.T) {
	assert := assert.New(t)

	tr := NewTranslator()

	assert.Equal(KIND_NOOP, CODE_NOOP.Kind())

	line, err := tr.Decode(CODE_NOOP)
	assert.NoError(err)
	assert.Equal("", line)

	assert.NotEqual(CODE_NOOP, MakeCodeAddress(uint32(CODE_NOOP)))
	for _, comp := range tr.Aliases(FIELD_COMP) {
		for dest := range 8 {
			for jump := range 8 {
				code := MakeCodeCompute(Dest(dest<<3), Comp(comp), Jump(jump))
				assert.NotEqual(CODE_NOOP, code)
				assert.Equal(KIND_COMPUTE, code.Kind())
			}
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	tr := Default()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				code, err := tr.Encode("AM=M-1;JGE")
				if err != nil {
					errs <- err
					return
				}
				line, err := tr.Decode(code)
				if err != nil {
					errs <- err
					return
				}
				if line != "AM=M-1;JGE" {
					errs <- errors.New(line)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func FuzzDecode(f *testing.F) {
	for _, code := range []Code{0, CODE_NOOP, 0x4000_0005, 0xf090, 0xea87, 0xffff, -1} {
		f.Add(int32(code))
	}

	tr := NewTranslator()

	f.Fuzz(func(t *testing.T, value int32) {
		assert := assert.New(t)

		code := Code(value)
		line, err := tr.Decode(code)
		if err != nil {
			assert.Equal("", line)
			return
		}
		if len(line) == 0 || code < 0 {
			return
		}

		again, err := tr.Encode(line)
		assert.NoError(err, line)
		assert.Equal(code, again, line)
	})
}
