package vm

// system.go implements the four opcodes that end a frame outright:
// HALT (implicit stop, no output), RETURN and REVERT (which carry
// output bytes and are represented as ExecutionResult kinds rather
// than Go errors, since a caller must still branch on them), and
// SELFDESTRUCT.

func opHalt(m *Machine, host Host, info CallInfo) (*opResult, error) {
	return haltWith(Halted, nil)
}

func opReturn(m *Machine, host Host, info CallInfo) (*opResult, error) {
	offset, err := m.popUsize()
	if err != nil {
		return nil, err
	}
	size, err := m.popUsize()
	if err != nil {
		return nil, err
	}
	data, err := m.Memory.MemGet(m.Gas, offset, size)
	if err != nil {
		return nil, err
	}
	return haltWith(Returned, data)
}

func opRevert(m *Machine, host Host, info CallInfo) (*opResult, error) {
	offset, err := m.popUsize()
	if err != nil {
		return nil, err
	}
	size, err := m.popUsize()
	if err != nil {
		return nil, err
	}
	data, err := m.Memory.MemGet(m.Gas, offset, size)
	if err != nil {
		return nil, err
	}
	return haltWith(Reverted, data)
}

func opSelfdestruct(m *Machine, host Host, info CallInfo) (*opResult, error) {
	if m.IsStatic {
		return nil, ErrCannotMutateStatic
	}
	beneficiaryWord, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.Gas.Charge(GasSelfdestruct); err != nil {
		return nil, err
	}
	if err := host.Destroy(info.Address, beneficiaryWord.Address()); err != nil {
		return nil, &ContextError{Op: "SELFDESTRUCT", Err: err}
	}
	return haltWith(Halted, nil)
}
