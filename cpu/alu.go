package cpu

// ComputeAlu computes the Hack ALU output.
//
// Each input is first zeroed, then bitwise negated, if requested. The two
// are then added (add) or bitwise and-ed, and the result bitwise negated
// if requested.
func ComputeAlu(a, b int16, zeroA, negateA, zeroB, negateB, add, negateOut bool) (out int16) {
	if zeroA {
		a = 0
	}
	if zeroB {
		b = 0
	}
	if negateA {
		a = ^a
	}
	if negateB {
		b = ^b
	}
	if add {
		out = a + b
	} else {
		out = a & b
	}
	if negateOut {
		out = ^out
	}

	return
}

// Controls returns the ALU control bits of an expression.
// useM selects M rather than A as the second ALU input.
func (comp Comp) Controls() (useM, zx, nx, zy, ny, add, no bool) {
	bit := func(n uint) bool { return (uint16(comp)>>n)&1 == 1 }

	useM = bit(12)
	zx = bit(11)
	nx = bit(10)
	zy = bit(9)
	ny = bit(8)
	add = bit(7)
	no = bit(6)

	return
}

// Eval computes the expression given the D, A and M register values.
func (comp Comp) Eval(d, a, m int16) int16 {
	useM, zx, nx, zy, ny, add, no := comp.Controls()

	y := a
	if useM {
		y = m
	}

	return ComputeAlu(d, y, zx, nx, zy, ny, add, no)
}
