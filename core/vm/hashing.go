package vm

import (
	"github.com/evmlite/evmlite/crypto"
	"github.com/evmlite/evmlite/word"
)

// opKeccak256 pops offset and size, reads that memory range, and
// pushes its Keccak-256 digest. Gas is charged per word hashed, on
// top of whatever memory-growth charge the read itself incurs.
func opKeccak256(m *Machine, host Host, info CallInfo) (*opResult, error) {
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
	if err := m.Gas.Charge(uint64(wordsFor(size)) * GasKeccak256Word); err != nil {
		return nil, err
	}
	digest := crypto.Keccak256(data)
	if err := m.push(word.FromBigEndian(digest)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}
