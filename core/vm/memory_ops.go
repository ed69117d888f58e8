package vm

// memory_ops.go implements the linear-memory opcodes: MLOAD, MSTORE,
// MSTORE8, and the overlap-safe MCOPY.

func opMload(m *Machine, host Host, info CallInfo) (*opResult, error) {
	offset, err := m.popUsize()
	if err != nil {
		return nil, err
	}
	w, err := m.Memory.Get32(m.Gas, offset)
	if err != nil {
		return nil, err
	}
	if err := m.push(w); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opMstore(m *Machine, host Host, info CallInfo) (*opResult, error) {
	offset, err := m.popUsize()
	if err != nil {
		return nil, err
	}
	val, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.Memory.Set32(m.Gas, offset, val); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opMstore8(m *Machine, host Host, info CallInfo) (*opResult, error) {
	offset, err := m.popUsize()
	if err != nil {
		return nil, err
	}
	val, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.Memory.Set8(m.Gas, offset, val); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opMcopy(m *Machine, host Host, info CallInfo) (*opResult, error) {
	destOffset, err := m.popUsize()
	if err != nil {
		return nil, err
	}
	offset, err := m.popUsize()
	if err != nil {
		return nil, err
	}
	size, err := m.popUsize()
	if err != nil {
		return nil, err
	}
	if err := m.Gas.Charge(uint64(wordsFor(size)) * GasCopyWord); err != nil {
		return nil, err
	}
	if err := m.Memory.Copy(m.Gas, destOffset, offset, size); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}
