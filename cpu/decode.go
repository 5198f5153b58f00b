package cpu

import (
	"strconv"
	"strings"
)

// Decode translates a code into its canonical assembly text.
// CODE_NOOP, and any compute code with an empty expression field,
// decode to "".
func (tr *Translator) Decode(code Code) (line string, err error) {
	switch code.Kind() {
	case KIND_NOOP:
		return
	case KIND_ADDRESS:
		line = "@" + strconv.FormatUint(uint64(code.Address()), 10)
		return
	}

	if (code &^ WORD_MASK) != 0 {
		err = &ErrUnknownCode{Field: FIELD_COMP, Value: code}
		return
	}

	dest, comp, jump := code.ComputeDecode()

	expr, err := tr.TextFor(FIELD_COMP, Code(comp))
	if err != nil || len(expr) == 0 {
		return
	}

	var sb strings.Builder

	if dest != DEST_NONE {
		var text string
		text, err = tr.TextFor(FIELD_DEST, Code(dest))
		if err != nil {
			return
		}
		sb.WriteString(text)
		sb.WriteByte('=')
	}

	sb.WriteString(expr)

	if jump != JUMP_NONE {
		var text string
		text, err = tr.TextFor(FIELD_JUMP, Code(jump))
		if err != nil {
			return
		}
		sb.WriteByte(';')
		sb.WriteString(text)
	}

	line = sb.String()

	return
}

// DecodeWord translates a 16-bit machine word into assembly text.
func (tr *Translator) DecodeWord(word uint16) (line string, err error) {
	return tr.Decode(FromWord(word))
}

// Decode translates a code with the Default translator.
func Decode(code Code) (line string, err error) {
	return Default().Decode(code)
}
