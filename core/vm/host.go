package vm

import (
	"github.com/evmlite/evmlite/core/types"
	"github.com/evmlite/evmlite/word"
)

// host.go defines the contract-of-the-world the machine depends on.
// Every opcode handler that touches anything outside its own frame
// (balances, storage, other contracts' code, block metadata) goes
// through this interface, never through a concrete implementation, so
// a production host and the in-memory reference host are
// interchangeable.

// EnvTag names a piece of blockchain-environment information a
// contract can read via Host.Info.
type EnvTag int

const (
	EnvGasPrice EnvTag = iota
	EnvCoinbase
	EnvTimestamp
	EnvNumber
	EnvPrevRandao
	EnvGasLimit
	EnvChainID
	EnvBaseFee
	EnvBlobBaseFee
)

// PrecompiledContract is a built-in callable reachable by address
// instead of by deployed bytecode.
type PrecompiledContract interface {
	Run(input []byte) ([]byte, error)
}

// Host is the read surface a frame needs to observe the world: code,
// balances, the two storage spaces, and environment oracles. Every
// method may return a ContextError if the underlying world cannot
// answer; such errors are never revert-class and are never caught at
// a call boundary.
type Host interface {
	Code(addr types.Address) ([]byte, error)
	Balance(addr types.Address) (word.Word, error)
	Nonce(addr types.Address) (uint64, error)
	SLoad(addr types.Address, key word.Word) (word.Word, error)
	TLoad(addr types.Address, key word.Word) (word.Word, error)
	BlobHash(index int) (types.Hash, bool, error)
	BlockHash(number uint64) (types.Hash, error)
	Info(tag EnvTag) (word.Word, error)
	Precompile(addr types.Address) (PrecompiledContract, bool)

	// Mutating operations. The machine rejects these itself in a
	// static frame before calling the host; the methods receive no
	// static flag, so a host does not repeat the check.
	SStore(addr types.Address, key, value word.Word) error
	TStore(addr types.Address, key, value word.Word) error
	Log(log types.Log) error

	// Call executes the code at addr as a nested frame and returns its
	// output, whether it reverted, and the gas it consumed. info
	// carries the fully-constructed CallInfo for the child frame
	// (already adjusted for CALL/STATICCALL/DELEGATECALL semantics by
	// the caller). gasLimit is the gas made available to the child.
	Call(addr types.Address, info CallInfo, gasLimit uint64) (output []byte, reverted bool, gasUsed uint64, err error)

	// Create deploys initCode as a new contract owned by caller,
	// returning the deployed address, the revert output when the
	// deployment reverted (empty on success, where the init code's
	// output becomes the contract's code), and gas consumed. salt is nil for CREATE and
	// the 32-byte CREATE2 salt otherwise.
	Create(caller types.Address, value word.Word, initCode []byte, salt *word.Word, gasLimit uint64) (deployed types.Address, output []byte, reverted bool, gasUsed uint64, err error)

	// Destroy implements SELFDESTRUCT: contract's remaining balance
	// moves to target and the contract itself is removed from the
	// world.
	Destroy(contract, target types.Address) error
}
