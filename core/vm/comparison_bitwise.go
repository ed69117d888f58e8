package vm

import "github.com/evmlite/evmlite/word"

func boolWord(b bool) word.Word {
	if b {
		return word.One()
	}
	return word.Zero()
}

func opLt(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(boolWord(a.Lt(b))); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opGt(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(boolWord(a.Gt(b))); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opSlt(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(boolWord(a.Slt(b))); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opSgt(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(boolWord(a.Sgt(b))); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opEq(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(boolWord(a.Eq(b))); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opIszero(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(boolWord(a.IsZero())); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opAnd(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(a.And(b)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opOr(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(a.Or(b)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opXor(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	b, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(a.Xor(b)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opNot(m *Machine, host Host, info CallInfo) (*opResult, error) {
	a, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(a.Not()); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opByte(m *Machine, host Host, info CallInfo) (*opResult, error) {
	i, err := m.pop()
	if err != nil {
		return nil, err
	}
	x, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(x.Byte(i)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opShl(m *Machine, host Host, info CallInfo) (*opResult, error) {
	shift, err := m.pop()
	if err != nil {
		return nil, err
	}
	value, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(value.Shl(shift)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opShr(m *Machine, host Host, info CallInfo) (*opResult, error) {
	shift, err := m.pop()
	if err != nil {
		return nil, err
	}
	value, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(value.Shr(shift)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opSar(m *Machine, host Host, info CallInfo) (*opResult, error) {
	shift, err := m.pop()
	if err != nil {
		return nil, err
	}
	value, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.push(value.Sar(shift)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}
