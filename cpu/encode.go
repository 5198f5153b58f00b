package cpu

import (
	"strconv"
)

// Parse parses a single line of assembly text into an instruction.
// A blank or comment-only line is a KIND_NOOP instruction.
func (tr *Translator) Parse(line string) (inst Instruction, err error) {
	tokens, err := tokenize(line)
	if err != nil {
		return
	}

	sc := &scanner{tokens: tokens}
	if sc.done() {
		inst.Kind = KIND_NOOP
		return
	}

	if sc.is("@") {
		sc.next()
		word := sc.next()
		var value uint64
		value, err = strconv.ParseUint(word, 10, 32)
		if err != nil || value >= uint64(MAX_ADDRESS) {
			err = ErrExpectedNumericOperand(word)
			return
		}
		if !sc.done() {
			err = ErrTrailingInput(sc.peek())
			return
		}
		inst = Instruction{Kind: KIND_ADDRESS, Address: uint32(value)}
		return
	}

	var dest, comp, jump Code

	first := sc.next()
	expr := first
	if sc.is("=") {
		dest, err = tr.CodeFor(FIELD_DEST, first)
		if err != nil {
			err = ErrExpectedDestination(first)
			return
		}
		sc.next()
		expr = sc.next()
	}

	comp, err = tr.CodeFor(FIELD_COMP, expr)
	if err != nil {
		err = ErrExpectedExpression(expr)
		return
	}

	if sc.is(";") {
		sc.next()
		cond := sc.next()
		jump, err = tr.CodeFor(FIELD_JUMP, cond)
		if err != nil {
			err = ErrExpectedJumpCondition(cond)
			return
		}
	}

	if !sc.done() {
		err = ErrTrailingInput(sc.peek())
		return
	}

	inst = Instruction{
		Kind: KIND_COMPUTE,
		Dest: Dest(dest),
		Comp: Comp(comp),
		Jump: Jump(jump),
	}

	return
}

// Encode translates a single line of assembly text into its code.
// A blank or comment-only line encodes as CODE_NOOP.
func (tr *Translator) Encode(line string) (code Code, err error) {
	inst, err := tr.Parse(line)
	if err != nil {
		return
	}

	switch inst.Kind {
	case KIND_NOOP:
		code = CODE_NOOP
	case KIND_ADDRESS:
		code = MakeCodeAddress(inst.Address)
	default:
		// The fields are bit-disjoint, so the sum is their union.
		code = Code(inst.Dest) + Code(inst.Comp) + Code(inst.Jump)
	}

	return
}

// Encode translates a line with the Default translator.
func Encode(line string) (code Code, err error) {
	return Default().Encode(line)
}
