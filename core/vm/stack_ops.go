package vm

import "github.com/evmlite/evmlite/word"

// stack_ops.go implements the stack-shuffling opcodes. PUSH0..PUSH32,
// DUP1..DUP16, and SWAP1..16 are each a family of 33/16/16 opcodes
// that only differ in how many immediate bytes they consume or which
// stack slot they touch, so one handler per family reads its own
// opcode byte back out of code to learn which member of the family is
// running.

func opPush(m *Machine, host Host, info CallInfo) (*opResult, error) {
	op := OpCode(m.codeByte(m.pc))
	n := op.PushSize()
	if m.pc+1+n > len(m.Code) {
		return nil, ErrNotEnoughBytesInCode
	}
	data := m.pushData(m.pc+1, n)
	if err := m.push(word.FromBigEndian(data)); err != nil {
		return nil, err
	}
	m.pc += 1 + n
	return continueExec()
}

func opDup(m *Machine, host Host, info CallInfo) (*opResult, error) {
	op := OpCode(m.codeByte(m.pc))
	if err := m.Stack.Dup(op.DupIndex()); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opSwap(m *Machine, host Host, info CallInfo) (*opResult, error) {
	op := OpCode(m.codeByte(m.pc))
	if err := m.Stack.SwapWithTop(op.SwapIndex()); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}
