package vm

// control_flow.go implements POP and the two jump opcodes. JUMPDEST
// itself is a no-op marker; its only job is to exist as the 0x5B byte
// ValidJumpDest checks for.

func opPop(m *Machine, host Host, info CallInfo) (*opResult, error) {
	if _, err := m.pop(); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opJump(m *Machine, host Host, info CallInfo) (*opResult, error) {
	dest, err := m.popUsize()
	if err != nil {
		return nil, err
	}
	if !m.ValidJumpDest(dest) {
		return nil, ErrInvalidJump
	}
	m.pc = dest
	return continueExec()
}

func opJumpi(m *Machine, host Host, info CallInfo) (*opResult, error) {
	dest, err := m.popUsize()
	if err != nil {
		return nil, err
	}
	cond, err := m.pop()
	if err != nil {
		return nil, err
	}
	if cond.IsZero() {
		m.pc++
		return continueExec()
	}
	if !m.ValidJumpDest(dest) {
		return nil, ErrInvalidJump
	}
	m.pc = dest
	return continueExec()
}

func opJumpdest(m *Machine, host Host, info CallInfo) (*opResult, error) {
	m.pc++
	return continueExec()
}
