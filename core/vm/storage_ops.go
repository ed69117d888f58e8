package vm

// storage_ops.go implements persistent storage (SLOAD/SSTORE) and
// transient storage (TLOAD/TSTORE), which the host keeps apart from
// persistent storage. The ReferenceHost never clears transient values:
// they last for the life of the host instance, not for one
// transaction. Both writes are rejected
// while the frame is static; the machine enforces this itself so a
// Host never has to duplicate the check.

func opSload(m *Machine, host Host, info CallInfo) (*opResult, error) {
	key, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.Gas.Charge(GasSload); err != nil {
		return nil, err
	}
	val, err := host.SLoad(info.Address, key)
	if err != nil {
		return nil, &ContextError{Op: "SLOAD", Err: err}
	}
	if err := m.push(val); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opSstore(m *Machine, host Host, info CallInfo) (*opResult, error) {
	if m.IsStatic {
		return nil, ErrCannotMutateStatic
	}
	key, err := m.pop()
	if err != nil {
		return nil, err
	}
	val, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.Gas.Charge(GasSstore); err != nil {
		return nil, err
	}
	if err := host.SStore(info.Address, key, val); err != nil {
		return nil, &ContextError{Op: "SSTORE", Err: err}
	}
	m.pc++
	return continueExec()
}

func opTload(m *Machine, host Host, info CallInfo) (*opResult, error) {
	key, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.Gas.Charge(GasTload); err != nil {
		return nil, err
	}
	val, err := host.TLoad(info.Address, key)
	if err != nil {
		return nil, &ContextError{Op: "TLOAD", Err: err}
	}
	if err := m.push(val); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opTstore(m *Machine, host Host, info CallInfo) (*opResult, error) {
	if m.IsStatic {
		return nil, ErrCannotMutateStatic
	}
	key, err := m.pop()
	if err != nil {
		return nil, err
	}
	val, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.Gas.Charge(GasTstore); err != nil {
		return nil, err
	}
	if err := host.TStore(info.Address, key, val); err != nil {
		return nil, &ContextError{Op: "TSTORE", Err: err}
	}
	m.pc++
	return continueExec()
}
