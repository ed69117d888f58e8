package vm

import (
	"github.com/evmlite/evmlite/core/types"
	"github.com/evmlite/evmlite/word"
)

// calls.go implements the three call-family opcodes. Each pops its
// own stack layout, assembles the CallInfo the child frame sees, asks
// the host to run it under the 63/64 gas-forwarding rule, and pushes
// a 0/1 success flag. Only the Host-reported output ever becomes the
// return-data buffer; a failed call is not an error here; it is a 0
// pushed onto the stack, exactly like any other sub-call outcome.

func opCall(m *Machine, host Host, info CallInfo) (*opResult, error) {
	requestedGas, err := m.pop()
	if err != nil {
		return nil, err
	}
	addrWord, err := m.pop()
	if err != nil {
		return nil, err
	}
	value, err := m.pop()
	if err != nil {
		return nil, err
	}
	if m.IsStatic && !value.IsZero() {
		return nil, ErrCannotMutateStatic
	}
	argsOffset, argsSize, retOffset, retSize, err := popCallMemArgs(m)
	if err != nil {
		return nil, err
	}
	child := CallInfo{
		Origin:         info.Origin,
		Caller:         info.Address,
		Address:        addrWord.Address(),
		Value:          value,
		IsStatic:       info.IsStatic,
		TransfersValue: !value.IsZero(),
	}
	return runCall(m, host, addrWord.Address(), child, requestedGas, !value.IsZero(),
		argsOffset, argsSize, retOffset, retSize)
}

func opStaticcall(m *Machine, host Host, info CallInfo) (*opResult, error) {
	requestedGas, err := m.pop()
	if err != nil {
		return nil, err
	}
	addrWord, err := m.pop()
	if err != nil {
		return nil, err
	}
	argsOffset, argsSize, retOffset, retSize, err := popCallMemArgs(m)
	if err != nil {
		return nil, err
	}
	child := CallInfo{
		Origin:   info.Origin,
		Caller:   info.Address,
		Address:  addrWord.Address(),
		Value:    word.Zero(),
		IsStatic: true,
	}
	return runCall(m, host, addrWord.Address(), child, requestedGas, false,
		argsOffset, argsSize, retOffset, retSize)
}

func opDelegatecall(m *Machine, host Host, info CallInfo) (*opResult, error) {
	requestedGas, err := m.pop()
	if err != nil {
		return nil, err
	}
	addrWord, err := m.pop()
	if err != nil {
		return nil, err
	}
	argsOffset, argsSize, retOffset, retSize, err := popCallMemArgs(m)
	if err != nil {
		return nil, err
	}
	child := CallInfo{
		Origin:   info.Origin,
		Caller:   info.Caller,
		Address:  info.Address,
		Value:    info.Value,
		IsStatic: info.IsStatic,
	}
	return runCall(m, host, addrWord.Address(), child, requestedGas, false,
		argsOffset, argsSize, retOffset, retSize)
}

func popCallMemArgs(m *Machine) (argsOffset, argsSize, retOffset, retSize int, err error) {
	if argsOffset, err = m.popUsize(); err != nil {
		return
	}
	if argsSize, err = m.popUsize(); err != nil {
		return
	}
	if retOffset, err = m.popUsize(); err != nil {
		return
	}
	if retSize, err = m.popUsize(); err != nil {
		return
	}
	return
}

// runCall charges the flat call cost, computes the 63/64 forwarded
// budget, reads the call's input from memory, invokes the host, and
// writes the result back: return data, output memory (clamped to
// retSize), a 0/1 success flag, and the leftover gas refund.
func runCall(m *Machine, host Host, codeAddr types.Address, child CallInfo, requestedGas word.Word, transfersValue bool,
	argsOffset, argsSize, retOffset, retSize int) (*opResult, error) {
	if err := m.Gas.Charge(GasCall); err != nil {
		return nil, err
	}
	args, err := m.Memory.MemGet(m.Gas, argsOffset, argsSize)
	if err != nil {
		return nil, err
	}
	child.Data = args

	req := requestedGas.Uint64()
	childGas, callerDeduction := ForwardGas(m.Gas.Remaining(), req, transfersValue)
	if err := m.Gas.Charge(callerDeduction); err != nil {
		return nil, err
	}

	output, reverted, gasUsed, err := host.Call(codeAddr, child, childGas)
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
	if retSize > 0 {
		if err := m.Memory.MemPut(m.Gas, retOffset, output, 0, retSize); err != nil {
			return nil, err
		}
	}
	if err := m.push(boolWord(!reverted)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}
