package vm

// arithmetic.go implements the binary and ternary arithmetic opcodes.
// Every one of these pops its operands a then b and pushes f(a,b) (or
// f(a,b,n) for the modular ternary ops); the word package already
// implements the wrapping, Euclidean, and widened-domain semantics
// these need, so handlers here are thin plumbing.

func opAdd(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(a.Add(b)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opSub(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(a.Sub(b)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opMul(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(a.Mul(b)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opDiv(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(a.Div(b)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opSdiv(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(a.SDiv(b)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opMod(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(a.Mod(b)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opSmod(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(a.SMod(b)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opAddmod(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	n, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(a.AddMod(b, n)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opMulmod(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	n, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(a.MulMod(b, n)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opExp(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(a.Exp(b)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opSignExtend(m *Machine, host Host, info CallInfo) (*opResult, error) {
	k, err := m.pop()
	if err != nil {
		return nil, err
	}
	x, err := m.pop()
	if err != nil {
		return nil, err
	}
	r, err := x.SignExtend(k)
	if err != nil {
		return nil, ErrOutOfBounds
	}
	if err := m.push(r); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}
