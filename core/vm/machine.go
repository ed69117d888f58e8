package vm

import (
	"github.com/evmlite/evmlite/core/types"
	"github.com/evmlite/evmlite/word"
)

// machine.go is the dispatch loop: the byte-indexed program counter
// that drives every opcode handler. A Machine is single-use — one per
// frame — and its Run method either halts, returns output, or fails.

// ResultKind classifies how a Machine's execution ended.
type ResultKind int

const (
	// Halted means the code ran off the end without RETURN/REVERT/STOP,
	// or executed HALT explicitly. No output is produced.
	Halted ResultKind = iota
	// Returned means RETURN produced output bytes.
	Returned
	// Reverted means REVERT produced output bytes. The caller sees the
	// frame as failed; the ReferenceHost does not undo the state writes
	// the frame made before reverting.
	Reverted
)

// ExecutionResult is what Run produces on successful termination (a
// Go error return is reserved for revert-class faults and host
// ContextErrors; an explicit REVERT is represented here, not as an
// error, since it is a frame outcome the caller must still branch on).
type ExecutionResult struct {
	Kind       ResultKind
	Output     []byte
	GasUsed    uint64
}

// Machine holds one frame's interpreter state: its code, program
// counter, stack, memory, return-data buffer, its own gas budget, and
// whether it is running under a static restriction. Storage lives in
// the Host, not here.
type Machine struct {
	Address  types.Address
	Code     []byte
	pc       int
	Gas      *GasTracker
	Stack    *Stack
	Memory   *Memory
	LastReturn *ReturnDataBuffer
	IsStatic bool
}

// NewMachine creates a machine bound to the given contract address and
// code, with a fresh stack, memory, and gas budget.
func NewMachine(addr types.Address, code []byte, gasLimit uint64, isStatic bool) *Machine {
	m := &Machine{
		Address:    addr,
		Code:       code,
		Gas:        NewGasTracker(gasLimit),
		Stack:      NewStack(),
		Memory:     NewMemory(),
		LastReturn: NewReturnDataBuffer(),
		IsStatic:   isStatic,
	}
	return m
}

// PC returns the current program counter.
func (m *Machine) PC() int { return m.pc }

// ValidJumpDest reports whether dest names a real JUMPDEST: a literal
// byte-equality check against 0x5B, with no regard for whether dest
// falls inside another instruction's PUSH immediate data. This matches
// the opcode's documented contract exactly; it is the caller's
// responsibility not to emit bytecode where a 0x5B happens to fall
// inside push data and get treated as a jump target.
func (m *Machine) ValidJumpDest(dest int) bool {
	return dest >= 0 && dest < len(m.Code) && m.Code[dest] == byte(JUMPDEST)
}

// codeByte returns the byte at i, or 0 past the end of code. opPush
// does not rely on this padding: a PUSH whose immediate runs past the
// tail fails with ErrNotEnoughBytesInCode before reading it.
func (m *Machine) codeByte(i int) byte {
	if i < 0 || i >= len(m.Code) {
		return 0
	}
	return m.Code[i]
}

// pushData returns the n immediate bytes following a PUSH opcode,
// zero-padding if code ends early.
func (m *Machine) pushData(at, n int) []byte {
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[i] = m.codeByte(at + i)
	}
	return buf
}

// baseStepGas is the flat cost charged before every opcode executes,
// on top of whatever additional cost the opcode's own handler charges
// for memory growth, storage writes, or nested calls.
const baseStepGas = 1

// opResult is what an instruction handler returns: either result is
// non-nil and the frame terminates, or result is nil and the loop
// continues (the handler is responsible for advancing pc itself).
type opResult struct {
	result *ExecutionResult
}

type executionFunc func(m *Machine, host Host, info CallInfo) (*opResult, error)

// Run executes the machine's code against host until it halts,
// returns, reverts, or fails. info describes how this frame was
// invoked.
func (m *Machine) Run(host Host, info CallInfo) (*ExecutionResult, error) {
	startGas := m.Gas.Remaining()
	for {
		if m.pc >= len(m.Code) {
			return &ExecutionResult{Kind: Halted, GasUsed: startGas - m.Gas.Remaining()}, nil
		}
		op := OpCode(m.Code[m.pc])
		if err := m.Gas.Charge(baseStepGas); err != nil {
			return nil, err
		}
		handler, ok := jumpTable[op]
		if !ok {
			return nil, &UnknownOpcodeError{Opcode: byte(op)}
		}
		out, err := handler(m, host, info)
		if err != nil {
			return nil, err
		}
		if out.result != nil {
			out.result.GasUsed = startGas - m.Gas.Remaining()
			return out.result, nil
		}
	}
}

// push is a small helper every handler uses to push a word and map a
// stack-full condition uniformly.
func (m *Machine) push(w word.Word) error {
	return m.Stack.Push(w)
}

func (m *Machine) pop() (word.Word, error) {
	return m.Stack.Pop()
}

func continueExec() (*opResult, error) { return &opResult{}, nil }

func haltWith(kind ResultKind, output []byte) (*opResult, error) {
	return &opResult{result: &ExecutionResult{Kind: kind, Output: output}}, nil
}

// popUsize pops a word and converts it to a machine-native size,
// translating the word package's overflow error into the opcode-level
// ErrOffsetSizeTooLarge.
func (m *Machine) popUsize() (int, error) {
	w, err := m.pop()
	if err != nil {
		return 0, err
	}
	n, err := w.Usize()
	if err != nil {
		return 0, ErrOffsetSizeTooLarge
	}
	return n, nil
}
