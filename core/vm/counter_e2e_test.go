package vm

import (
	"bytes"
	"testing"

	"github.com/evmlite/evmlite/word"
)

// TestCounterContractDeployAndCallSequence runs a realistic
// deploy-then-call sequence against a compiled Solidity Counter
// contract (number/increment/setNumber): number() returns the current
// count as a 32-byte big-endian word, increment() halts with no
// output, and setNumber(uint256) overwrites the stored count.
//
// The iteration count here is a small stand-in for a much longer loop;
// the semantics asserted at each step are what matter, not the count.
func TestCounterContractDeployAndCallSequence(t *testing.T) {
	h := NewReferenceHost()
	owner := addrFromByte(123)
	h.SetBalance(owner, word.FromUint64(5))

	contract, _, reverted, _, err := h.Create(owner, word.FromUint64(2), counterInitCode(), nil, 1_000_000)
	if err != nil {
		t.Fatal(err)
	}
	if reverted {
		t.Fatal("deploying the counter contract should not revert")
	}

	numberSig := []byte{0x83, 0x81, 0xf5, 0x8a}
	incrementSig := []byte{0xd0, 0x9d, 0xe0, 0x8a}
	setNumberSig := []byte{0x3f, 0xb5, 0xc1, 0xcb}

	call := func(calldata []byte) (*ExecutionResult, error) {
		info := CallInfo{Address: contract, Data: calldata}
		m := NewMachine(contract, h.accounts[contract].Code, 1_000_000, false)
		return m.Run(h, info)
	}

	const iterations = 5
	for i := 0; i < iterations; i++ {
		result, err := call(numberSig)
		if err != nil {
			t.Fatal(err)
		}
		if result.Kind != Returned {
			t.Fatalf("iteration %d: got kind %v want Returned", i, result.Kind)
		}
		want := word.FromUint64(uint64(i)).BigEndian()
		if !bytes.Equal(result.Output, want[:]) {
			t.Fatalf("iteration %d: got %x want %x", i, result.Output, want)
		}

		result, err = call(incrementSig)
		if err != nil {
			t.Fatal(err)
		}
		if result.Kind != Halted {
			t.Fatalf("iteration %d: increment got kind %v want Halted", i, result.Kind)
		}
	}

	setCalldata := append(append([]byte{}, setNumberSig...), word.FromUint64(12345).BigEndian()[:]...)
	result, err := call(setCalldata)
	if err != nil {
		t.Fatal(err)
	}
	if result.Kind != Halted {
		t.Fatalf("setNumber got kind %v want Halted", result.Kind)
	}

	result, err = call(numberSig)
	if err != nil {
		t.Fatal(err)
	}
	if result.Kind != Returned {
		t.Fatalf("got kind %v want Returned", result.Kind)
	}
	want := word.FromUint64(12345).BigEndian()
	if !bytes.Equal(result.Output, want[:]) {
		t.Fatalf("got %x want %x", result.Output, want)
	}
}
