package vm

import "github.com/evmlite/evmlite/word"

// create.go implements CREATE and CREATE2. Address derivation itself
// lives with the host (it needs the caller's current nonce, which
// only the host tracks), so these handlers just assemble the init
// code, forward gas under the no-stipend 63/64 rule, and translate
// the host's verdict into a pushed address (zero on failure).

func opCreate(m *Machine, host Host, info CallInfo) (*opResult, error) {
	if m.IsStatic {
		return nil, ErrCannotMutateStatic
	}
	value, err := m.pop()
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
	return runCreate(m, host, info, value, offset, size, nil)
}

func opCreate2(m *Machine, host Host, info CallInfo) (*opResult, error) {
	if m.IsStatic {
		return nil, ErrCannotMutateStatic
	}
	value, err := m.pop()
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
	salt, err := m.pop()
	if err != nil {
		return nil, err
	}
	return runCreate(m, host, info, value, offset, size, &salt)
}

func runCreate(m *Machine, host Host, info CallInfo, value word.Word, offset, size int, salt *word.Word) (*opResult, error) {
	if err := m.Gas.Charge(GasCreate + uint64(wordsFor(size))*GasCreateDataGas); err != nil {
		return nil, err
	}
	initCode, err := m.Memory.MemGet(m.Gas, offset, size)
	if err != nil {
		return nil, err
	}

	available := m.Gas.Remaining()
	childGas, callerDeduction := ForwardGas(available, available, false)
	if err := m.Gas.Charge(callerDeduction); err != nil {
		return nil, err
	}

	deployed, output, reverted, gasUsed, err := host.Create(info.Address, value, initCode, salt, childGas)
	if err != nil {
		return nil, err
	}

	if gasUsed < childGas {
		leftover := childGas - gasUsed
		if leftover > callerDeduction {
			leftover = callerDeduction
		}
		m.Gas.Refund(leftover)
	}

	m.LastReturn.Set(output)
	if reverted {
		if err := m.push(word.Zero()); err != nil {
			return nil, err
		}
		m.pc++
		return continueExec()
	}
	if err := m.push(word.FromBigEndian(deployed[:])); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}
