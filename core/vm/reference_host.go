package vm

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"

	"github.com/evmlite/evmlite/core/types"
	"github.com/evmlite/evmlite/word"
)

// reference_host.go is an in-memory Host good enough to run the test
// suite and small standalone programs against: accounts live in a map,
// nothing is persisted across process restarts, and block metadata is
// whatever the caller seeds it with. A production embedding swaps this
// out for a Host backed by real chain state; nothing in core/vm knows
// or cares which one it is talking to.

// Account is one entry of the in-memory world state.
type Account struct {
	Balance word.Word
	Nonce   uint64
	Code    []byte
	Storage map[[32]byte]word.Word
}

func newAccount() *Account {
	return &Account{Balance: word.Zero(), Storage: make(map[[32]byte]word.Word)}
}

// ReferenceHost implements Host entirely in memory.
type ReferenceHost struct {
	accounts    map[types.Address]*Account
	transient   map[types.Address]map[[32]byte]word.Word
	logs        []types.Log
	env         map[EnvTag]word.Word
	blockHashes map[uint64]types.Hash
	precompiles map[types.Address]PrecompiledContract
	depth       int
}

// NewReferenceHost creates an empty world with no accounts and
// zero-valued block metadata, registering the address-0 precompile
// stub every other metadata field leaves disabled.
func NewReferenceHost() *ReferenceHost {
	h := &ReferenceHost{
		accounts:    make(map[types.Address]*Account),
		transient:   make(map[types.Address]map[[32]byte]word.Word),
		env:         make(map[EnvTag]word.Word),
		blockHashes: make(map[uint64]types.Hash),
		precompiles: make(map[types.Address]PrecompiledContract),
	}
	h.precompiles[types.Address{}] = alwaysRevertPrecompile{}
	return h
}

// alwaysRevertPrecompile is the ECRECOVER stand-in registered at
// address 0: this VM has no signature-recovery primitive of its own,
// so a call to that address reverts unconditionally rather than
// silently returning a wrong answer.
type alwaysRevertPrecompile struct{}

func (alwaysRevertPrecompile) Run(input []byte) ([]byte, error) {
	return nil, &RevertReason{Data: []byte("ecrecover unavailable")}
}

// SetEnv seeds one of the block/transaction environment oracles.
func (h *ReferenceHost) SetEnv(tag EnvTag, v word.Word) {
	h.env[tag] = v
}

// SetBlockHash seeds the hash BLOCKHASH reports for number.
func (h *ReferenceHost) SetBlockHash(number uint64, hash types.Hash) {
	h.blockHashes[number] = hash
}

// SetBalance directly sets an account's balance, creating it if
// necessary. Useful for test setup before any code runs.
func (h *ReferenceHost) SetBalance(addr types.Address, bal word.Word) {
	h.account(addr).Balance = bal
}

// SetCode directly installs code at addr, creating the account if
// necessary.
func (h *ReferenceHost) SetCode(addr types.Address, code []byte) {
	h.account(addr).Code = code
}

// Logs returns every log emitted so far, in emission order.
func (h *ReferenceHost) Logs() []types.Log { return h.logs }

func (h *ReferenceHost) account(addr types.Address) *Account {
	a, ok := h.accounts[addr]
	if !ok {
		a = newAccount()
		h.accounts[addr] = a
	}
	return a
}

func storageKey(key word.Word) [32]byte { return key.BigEndian() }

func (h *ReferenceHost) Code(addr types.Address) ([]byte, error) {
	a, ok := h.accounts[addr]
	if !ok {
		return nil, nil
	}
	return a.Code, nil
}

func (h *ReferenceHost) Balance(addr types.Address) (word.Word, error) {
	a, ok := h.accounts[addr]
	if !ok {
		return word.Zero(), nil
	}
	return a.Balance.Clone(), nil
}

func (h *ReferenceHost) Nonce(addr types.Address) (uint64, error) {
	a, ok := h.accounts[addr]
	if !ok {
		return 0, nil
	}
	return a.Nonce, nil
}

func (h *ReferenceHost) SLoad(addr types.Address, key word.Word) (word.Word, error) {
	a, ok := h.accounts[addr]
	if !ok {
		return word.Zero(), nil
	}
	v, ok := a.Storage[storageKey(key)]
	if !ok {
		return word.Zero(), nil
	}
	return v.Clone(), nil
}

func (h *ReferenceHost) SStore(addr types.Address, key, value word.Word) error {
	a := h.account(addr)
	if value.IsZero() {
		delete(a.Storage, storageKey(key))
		return nil
	}
	a.Storage[storageKey(key)] = value.Clone()
	return nil
}

func (h *ReferenceHost) TLoad(addr types.Address, key word.Word) (word.Word, error) {
	m, ok := h.transient[addr]
	if !ok {
		return word.Zero(), nil
	}
	v, ok := m[storageKey(key)]
	if !ok {
		return word.Zero(), nil
	}
	return v.Clone(), nil
}

func (h *ReferenceHost) TStore(addr types.Address, key, value word.Word) error {
	m, ok := h.transient[addr]
	if !ok {
		m = make(map[[32]byte]word.Word)
		h.transient[addr] = m
	}
	if value.IsZero() {
		delete(m, storageKey(key))
		return nil
	}
	m[storageKey(key)] = value.Clone()
	return nil
}

func (h *ReferenceHost) BlobHash(index int) (types.Hash, bool, error) {
	return types.Hash{}, false, nil
}

func (h *ReferenceHost) BlockHash(number uint64) (types.Hash, error) {
	hash, ok := h.blockHashes[number]
	if !ok {
		return types.Hash{}, ErrBlockHashUnavailable
	}
	return hash, nil
}

func (h *ReferenceHost) Info(tag EnvTag) (word.Word, error) {
	v, ok := h.env[tag]
	if !ok {
		return word.Zero(), nil
	}
	return v.Clone(), nil
}

func (h *ReferenceHost) Precompile(addr types.Address) (PrecompiledContract, bool) {
	p, ok := h.precompiles[addr]
	return p, ok
}

func (h *ReferenceHost) Log(l types.Log) error {
	h.logs = append(h.logs, l)
	return nil
}

// Call runs addr's code as a nested frame. Depth is tracked here,
// since only the host sees the whole call tree; the machine itself
// only ever knows about its own frame.
func (h *ReferenceHost) Call(addr types.Address, info CallInfo, gasLimit uint64) (output []byte, reverted bool, gasUsed uint64, err error) {
	if h.depth >= MaxCallDepth {
		return nil, true, gasLimit, nil
	}
	if info.TransfersValue {
		if err := h.transfer(info.Caller, info.Address, info.Value); err != nil {
			return nil, true, 0, nil
		}
		// A value-transferring call costs the caller a nonce the same
		// way a transaction does, independent of whether the callee
		// itself later reverts.
		h.account(info.Caller).Nonce++
	}
	if p, ok := h.Precompile(addr); ok {
		out, perr := p.Run(info.Data)
		if perr != nil {
			if IsRevertClass(perr) {
				return nil, true, gasLimit, nil
			}
			return nil, false, 0, &ContextError{Op: "Call", Err: perr}
		}
		return out, false, 0, nil
	}
	code, cerr := h.Code(addr)
	if cerr != nil {
		return nil, false, 0, &ContextError{Op: "Call", Err: cerr}
	}

	log.Debug("evmlite call", "from", info.Caller.Hex(), "to", addr.Hex(), "gas", gasLimit, "static", info.IsStatic)

	h.depth++
	defer func() { h.depth-- }()

	m := NewMachine(info.Address, code, gasLimit, info.IsStatic)
	result, rerr := m.Run(h, info)
	if rerr != nil {
		if IsRevertClass(rerr) {
			return nil, true, gasLimit, nil
		}
		return nil, false, 0, rerr
	}
	switch result.Kind {
	case Reverted:
		return result.Output, true, result.GasUsed, nil
	default:
		return result.Output, false, result.GasUsed, nil
	}
}

// Create deploys initCode as a new contract. The caller's nonce is
// incremented before the deployment address is derived, so the
// address reflects the post-increment nonce (the nonce this CREATE
// call itself produces, not the value the caller held beforehand).
func (h *ReferenceHost) Create(caller types.Address, value word.Word, initCode []byte, salt *word.Word, gasLimit uint64) (deployed types.Address, output []byte, reverted bool, gasUsed uint64, err error) {
	if h.depth >= MaxCallDepth {
		return types.Address{}, nil, true, gasLimit, nil
	}
	callerAcct := h.account(caller)
	if callerAcct.Balance.Lt(value) {
		return types.Address{}, nil, true, 0, nil
	}
	callerAcct.Nonce++

	if salt != nil {
		deployed = Create2Address(caller, salt.Clone(), initCode)
	} else {
		deployed = CreateAddress(caller, callerAcct.Nonce)
	}
	if existing, ok := h.accounts[deployed]; ok && len(existing.Code) > 0 {
		return types.Address{}, nil, true, 0, nil
	}

	if err := h.transfer(caller, deployed, value); err != nil {
		return types.Address{}, nil, true, 0, nil
	}

	log.Debug("evmlite create", "caller", caller.Hex(), "deployed", deployed.Hex(), "gas", gasLimit)

	h.depth++
	defer func() { h.depth-- }()

	childInfo := CallInfo{Origin: caller, Caller: caller, Address: deployed, Value: value, IsStatic: false}
	m := NewMachine(deployed, initCode, gasLimit, false)
	result, rerr := m.Run(h, childInfo)
	if rerr != nil {
		if IsRevertClass(rerr) {
			return types.Address{}, nil, true, gasLimit, nil
		}
		return types.Address{}, nil, false, 0, rerr
	}
	if result.Kind == Reverted {
		return types.Address{}, result.Output, true, result.GasUsed, nil
	}
	if len(result.Output) > MaxCodeSize {
		return types.Address{}, nil, true, result.GasUsed, nil
	}
	h.account(deployed).Code = result.Output
	return deployed, nil, false, result.GasUsed, nil
}

func (h *ReferenceHost) Destroy(contract, target types.Address) error {
	c := h.account(contract)
	if !c.Balance.IsZero() {
		if err := h.transfer(contract, target, c.Balance); err != nil {
			return err
		}
	}
	delete(h.accounts, contract)
	return nil
}

func (h *ReferenceHost) transfer(from, to types.Address, value word.Word) error {
	if value.IsZero() {
		return nil
	}
	fromAcct := h.account(from)
	if fromAcct.Balance.Lt(value) {
		return fmt.Errorf("%w: %s has insufficient balance", ErrInsufficientBalance, from.Hex())
	}
	toAcct := h.account(to)
	fromAcct.Balance = fromAcct.Balance.Sub(value)
	toAcct.Balance = toAcct.Balance.Add(value)
	return nil
}
