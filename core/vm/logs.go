package vm

import "github.com/evmlite/evmlite/core/types"

// opLog implements LOG0..LOG4: it pops the memory range to emit as
// data, then one topic per LOGn suffix, and hands the record to the
// host. Like any state mutation, it is rejected inside a static frame.
func opLog(m *Machine, host Host, info CallInfo) (*opResult, error) {
	if m.IsStatic {
		return nil, ErrCannotMutateStatic
	}
	op := OpCode(m.codeByte(m.pc))
	numTopics := op.LogTopics()

	offset, err := m.popUsize()
	if err != nil {
		return nil, err
	}
	size, err := m.popUsize()
	if err != nil {
		return nil, err
	}

	topics := make([]types.Hash, numTopics)
	for i := 0; i < numTopics; i++ {
		t, err := m.pop()
		if err != nil {
			return nil, err
		}
		topics[i] = types.BytesToHash(t.BigEndian()[:])
	}

	if err := m.Gas.Charge(GasLog + uint64(numTopics)*GasLogTopic + uint64(size)*GasLogData); err != nil {
		return nil, err
	}
	data, err := m.Memory.MemGet(m.Gas, offset, size)
	if err != nil {
		return nil, err
	}

	if err := host.Log(types.Log{Address: info.Address, Topics: topics, Data: data}); err != nil {
		return nil, &ContextError{Op: "LOG", Err: err}
	}
	m.pc++
	return continueExec()
}
