package vm

import (
	"errors"

	"github.com/evmlite/evmlite/crypto"
	"github.com/evmlite/evmlite/word"
)

// environment.go implements the opcodes that read caller/call/block
// metadata rather than mutating stack-local values: everything a
// contract can observe about how it was invoked and about the chain
// it believes it is running on.

func opAddress(m *Machine, host Host, info CallInfo) (*opResult, error) {
	if err := m.push(word.FromBigEndian(info.Address[:])); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opBalance(m *Machine, host Host, info CallInfo) (*opResult, error) {
	addrWord, err := m.pop()
	if err != nil {
		return nil, err
	}
	addr := addrWord.Address()
	if err := m.Gas.Charge(GasBalance); err != nil {
		return nil, err
	}
	bal, err := host.Balance(addr)
	if err != nil {
		return nil, &ContextError{Op: "BALANCE", Err: err}
	}
	if err := m.push(bal); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opOrigin(m *Machine, host Host, info CallInfo) (*opResult, error) {
	if err := m.push(word.FromBigEndian(info.Origin[:])); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opCaller(m *Machine, host Host, info CallInfo) (*opResult, error) {
	if err := m.push(word.FromBigEndian(info.Caller[:])); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opCallvalue(m *Machine, host Host, info CallInfo) (*opResult, error) {
	value := word.Word(word.Zero())
	if info.Value != nil {
		value = info.Value.Clone()
	}
	if err := m.push(value); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opCalldataload(m *Machine, host Host, info CallInfo) (*opResult, error) {
	offset, err := m.popUsize()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 32)
	for i := 0; i < 32; i++ {
		idx := offset + i
		if idx >= 0 && idx < len(info.Data) {
			buf[i] = info.Data[idx]
		}
	}
	if err := m.push(word.FromBigEndian(buf)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opCalldatasize(m *Machine, host Host, info CallInfo) (*opResult, error) {
	if err := m.push(word.FromUint64(uint64(len(info.Data)))); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opCalldatacopy(m *Machine, host Host, info CallInfo) (*opResult, error) {
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
	if err := m.Memory.MemPut(m.Gas, destOffset, info.Data, offset, size); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opCodesize(m *Machine, host Host, info CallInfo) (*opResult, error) {
	if err := m.push(word.FromUint64(uint64(len(m.Code)))); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opCodecopy(m *Machine, host Host, info CallInfo) (*opResult, error) {
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
	if err := m.Memory.MemPut(m.Gas, destOffset, m.Code, offset, size); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opGasprice(m *Machine, host Host, info CallInfo) (*opResult, error) {
	return pushEnv(m, host, EnvGasPrice)
}

func opExtcodesize(m *Machine, host Host, info CallInfo) (*opResult, error) {
	addrWord, err := m.pop()
	if err != nil {
		return nil, err
	}
	addr := addrWord.Address()
	if err := m.Gas.Charge(GasExtcodeSize); err != nil {
		return nil, err
	}
	code, err := host.Code(addr)
	if err != nil {
		return nil, &ContextError{Op: "EXTCODESIZE", Err: err}
	}
	if err := m.push(word.FromUint64(uint64(len(code)))); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opExtcodecopy(m *Machine, host Host, info CallInfo) (*opResult, error) {
	addrWord, err := m.pop()
	if err != nil {
		return nil, err
	}
	addr := addrWord.Address()
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
	if err := m.Gas.Charge(GasExtcodeCopy + uint64(wordsFor(size))*GasCopyWord); err != nil {
		return nil, err
	}
	code, err := host.Code(addr)
	if err != nil {
		return nil, &ContextError{Op: "EXTCODECOPY", Err: err}
	}
	if err := m.Memory.MemPut(m.Gas, destOffset, code, offset, size); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opReturndatasize(m *Machine, host Host, info CallInfo) (*opResult, error) {
	size, err := m.LastReturn.Size()
	if err != nil {
		return nil, err
	}
	if err := m.push(word.FromUint64(uint64(size))); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opReturndatacopy(m *Machine, host Host, info CallInfo) (*opResult, error) {
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
	data, err := m.LastReturn.Slice(offset, size)
	if err != nil {
		return nil, err
	}
	if err := m.Gas.Charge(uint64(wordsFor(size)) * GasCopyWord); err != nil {
		return nil, err
	}
	if err := m.Memory.MemPut(m.Gas, destOffset, data, 0, size); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opExtcodehash(m *Machine, host Host, info CallInfo) (*opResult, error) {
	addrWord, err := m.pop()
	if err != nil {
		return nil, err
	}
	addr := addrWord.Address()
	if err := m.Gas.Charge(GasExtcodeHash); err != nil {
		return nil, err
	}
	code, err := host.Code(addr)
	if err != nil {
		return nil, &ContextError{Op: "EXTCODEHASH", Err: err}
	}
	if len(code) == 0 {
		if err := m.push(word.Zero()); err != nil {
			return nil, err
		}
		m.pc++
		return continueExec()
	}
	digest := crypto.Keccak256(code)
	if err := m.push(word.FromBigEndian(digest)); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opBlockhash(m *Machine, host Host, info CallInfo) (*opResult, error) {
	numWord, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.Gas.Charge(GasBlockHash); err != nil {
		return nil, err
	}
	hash, err := host.BlockHash(numWord.Uint64())
	if err != nil {
		if errors.Is(err, ErrBlockHashUnavailable) {
			if err := m.push(word.Zero()); err != nil {
				return nil, err
			}
			m.pc++
			return continueExec()
		}
		return nil, &ContextError{Op: "BLOCKHASH", Err: err}
	}
	if err := m.push(word.FromBigEndian(hash[:])); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opCoinbase(m *Machine, host Host, info CallInfo) (*opResult, error) {
	return pushEnv(m, host, EnvCoinbase)
}

func opTimestamp(m *Machine, host Host, info CallInfo) (*opResult, error) {
	return pushEnv(m, host, EnvTimestamp)
}

func opNumber(m *Machine, host Host, info CallInfo) (*opResult, error) {
	return pushEnv(m, host, EnvNumber)
}

func opPrevrandao(m *Machine, host Host, info CallInfo) (*opResult, error) {
	return pushEnv(m, host, EnvPrevRandao)
}

func opGaslimit(m *Machine, host Host, info CallInfo) (*opResult, error) {
	return pushEnv(m, host, EnvGasLimit)
}

func opChainid(m *Machine, host Host, info CallInfo) (*opResult, error) {
	return pushEnv(m, host, EnvChainID)
}

func opSelfbalance(m *Machine, host Host, info CallInfo) (*opResult, error) {
	if err := m.Gas.Charge(GasSelfBalance); err != nil {
		return nil, err
	}
	bal, err := host.Balance(info.Address)
	if err != nil {
		return nil, &ContextError{Op: "SELFBALANCE", Err: err}
	}
	if err := m.push(bal); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opBasefee(m *Machine, host Host, info CallInfo) (*opResult, error) {
	return pushEnv(m, host, EnvBaseFee)
}

func opBlobhash(m *Machine, host Host, info CallInfo) (*opResult, error) {
	idxWord, err := m.pop()
	if err != nil {
		return nil, err
	}
	if err := m.Gas.Charge(GasBlobHash); err != nil {
		return nil, err
	}
	idx, err := idxWord.Usize()
	if err != nil {
		return nil, ErrOffsetSizeTooLarge
	}
	hash, ok, err := host.BlobHash(idx)
	if err != nil {
		return nil, &ContextError{Op: "BLOBHASH", Err: err}
	}
	if !ok {
		if err := m.push(word.Zero()); err != nil {
			return nil, err
		}
		m.pc++
		return continueExec()
	}
	if err := m.push(word.FromBigEndian(hash[:])); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opBlobbasefee(m *Machine, host Host, info CallInfo) (*opResult, error) {
	return pushEnv(m, host, EnvBlobBaseFee)
}

func opPc(m *Machine, host Host, info CallInfo) (*opResult, error) {
	if err := m.push(word.FromUint64(uint64(m.pc))); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opMsize(m *Machine, host Host, info CallInfo) (*opResult, error) {
	if err := m.push(word.FromUint64(uint64(m.Memory.Len()))); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

func opGas(m *Machine, host Host, info CallInfo) (*opResult, error) {
	if err := m.push(word.FromUint64(m.Gas.Remaining())); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}

// pushEnv charges the quick-step cost and pushes whatever value the
// host reports for tag, advancing pc on success.
func pushEnv(m *Machine, host Host, tag EnvTag) (*opResult, error) {
	if err := m.Gas.Charge(GasQuickStep); err != nil {
		return nil, err
	}
	v, err := host.Info(tag)
	if err != nil {
		return nil, &ContextError{Op: "env", Err: err}
	}
	if err := m.push(v); err != nil {
		return nil, err
	}
	m.pc++
	return continueExec()
}
