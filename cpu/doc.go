// Package cpu implements the instruction codec of the 16-bit Hack machine.
//
// A Translator holds the text to code tables of the three compute
// instruction fields (expression, destination and jump) and uses them to
// encode a line of assembly text into a Code and to decode a Code back into
// its canonical text. Address instructions are carried as the operand plus
// an out-of-word tag bit (CODE_ADDRESS); Word and FromWord convert between
// that tagged form and the 16-bit machine word stored in program memory.
//
// ComputeAlu models the ALU, and Comp.Eval applies it to the control bits of
// an expression code.
package cpu
