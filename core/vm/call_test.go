package vm

import (
	"testing"

	"github.com/evmlite/evmlite/core/types"
	"github.com/evmlite/evmlite/word"
)

func addrFromByte(b byte) types.Address {
	var a types.Address
	a[types.AddressLength-1] = b
	return a
}

// TestHostCallTransfersValueAndChargesCallerANonce exercises a plain
// value-transferring call directly through the host, mirroring a call
// from an externally-owned account rather than from running bytecode:
// the caller's nonce advances exactly as a transaction's would, the
// value moves, and the callee (which has no code) simply halts.
func TestHostCallTransfersValueAndChargesCallerANonce(t *testing.T) {
	h := NewReferenceHost()
	caller := addrFromByte(123)
	callee := addrFromByte(234)
	h.SetBalance(caller, word.FromUint64(5))

	info := CallInfo{Caller: caller, Address: callee, Value: word.FromUint64(2), TransfersValue: true}
	_, reverted, _, err := h.Call(callee, info, 100_000)
	if err != nil {
		t.Fatal(err)
	}
	if reverted {
		t.Fatal("expected the call to succeed")
	}

	nonce, _ := h.Nonce(caller)
	if nonce != 1 {
		t.Fatalf("got nonce %d want 1", nonce)
	}
	bal, _ := h.Balance(caller)
	if bal.Uint64() != 3 {
		t.Fatalf("got caller balance %d want 3", bal.Uint64())
	}
	calleeNonce, _ := h.Nonce(callee)
	if calleeNonce != 0 {
		t.Fatalf("got callee nonce %d want 0 (calls never touch the callee's nonce)", calleeNonce)
	}
	calleeBal, _ := h.Balance(callee)
	if calleeBal.Uint64() != 2 {
		t.Fatalf("got callee balance %d want 2", calleeBal.Uint64())
	}
}

// TestHostCallInsufficientBalanceReverts mirrors attempting to send
// more value than the caller holds: the call must revert rather than
// fail the whole transaction, and it must leave no trace in the world.
func TestHostCallInsufficientBalanceReverts(t *testing.T) {
	h := NewReferenceHost()
	caller := addrFromByte(123)
	callee := addrFromByte(234)
	h.SetBalance(caller, word.FromUint64(3))

	info := CallInfo{Caller: caller, Address: callee, Value: word.FromUint64(4), TransfersValue: true}
	_, reverted, _, err := h.Call(callee, info, 100_000)
	if err != nil {
		t.Fatal(err)
	}
	if !reverted {
		t.Fatal("a call moving more value than the caller holds must revert")
	}
	bal, _ := h.Balance(caller)
	if bal.Uint64() != 3 {
		t.Fatalf("a reverted call must not move any balance, got %d", bal.Uint64())
	}
}

// TestHostCallDelegateDoesNotTransferValue documents the distinction
// DELEGATECALL relies on: it carries forward the parent's value for
// CALLVALUE to read, but TransfersValue stays false so no balance
// actually moves and the caller's nonce is untouched.
func TestHostCallDelegateDoesNotTransferValue(t *testing.T) {
	h := NewReferenceHost()
	caller := addrFromByte(123)
	callee := addrFromByte(234)
	h.SetBalance(caller, word.FromUint64(5))

	info := CallInfo{Caller: caller, Address: caller, Value: word.FromUint64(2), TransfersValue: false}
	_, reverted, _, err := h.Call(callee, info, 100_000)
	if err != nil {
		t.Fatal(err)
	}
	if reverted {
		t.Fatal("expected the call to succeed")
	}
	bal, _ := h.Balance(caller)
	if bal.Uint64() != 5 {
		t.Fatalf("a delegated call must never move value, got balance %d", bal.Uint64())
	}
	nonce, _ := h.Nonce(caller)
	if nonce != 0 {
		t.Fatalf("a delegated call must not touch the caller's nonce, got %d", nonce)
	}
}

func TestHostCallMaxDepthReverts(t *testing.T) {
	h := NewReferenceHost()
	h.depth = MaxCallDepth
	_, reverted, _, err := h.Call(addrFromByte(1), CallInfo{}, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if !reverted {
		t.Fatal("exceeding the max call depth must revert, not fail the whole execution")
	}
}
