package vm

import (
	"bytes"
	"testing"

	"github.com/evmlite/evmlite/word"
)

func TestMemorySet32AndGet32(t *testing.T) {
	m := NewMemory()
	gas := NewGasTracker(1_000_000)
	w := word.FromUint64(0xdeadbeef)
	if err := m.Set32(gas, 0, w); err != nil {
		t.Fatal(err)
	}
	got, err := m.Get32(gas, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Eq(w) {
		t.Fatalf("got %s want %s", got, w)
	}
}

func TestMemoryGrowsToWholeWords(t *testing.T) {
	m := NewMemory()
	gas := NewGasTracker(1_000_000)
	if err := m.Set8(gas, 0, word.FromUint64(1)); err != nil {
		t.Fatal(err)
	}
	if m.Len() != 32 {
		t.Fatalf("got len %d want 32", m.Len())
	}
}

func TestMemoryReadPastTailIsZeroFilled(t *testing.T) {
	m := NewMemory()
	gas := NewGasTracker(1_000_000)
	got, err := m.MemGet(gas, 64, 32)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, make([]byte, 32)) {
		t.Fatalf("expected all-zero read, got %x", got)
	}
}

func TestMemoryPutClampsToSourceLength(t *testing.T) {
	m := NewMemory()
	gas := NewGasTracker(1_000_000)
	src := []byte{1, 2, 3}
	if err := m.MemPut(gas, 0, src, 0, 5); err != nil {
		t.Fatal(err)
	}
	got, _ := m.MemGet(gas, 0, 5)
	want := []byte{1, 2, 3, 0, 0}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x want %x", got, want)
	}
}

func TestMemoryCopyHandlesOverlap(t *testing.T) {
	m := NewMemory()
	gas := NewGasTracker(1_000_000)
	m.MemPut(gas, 0, []byte{1, 2, 3, 4, 5}, 0, 5)
	// Shift right by 1, overlapping source and destination.
	if err := m.Copy(gas, 1, 0, 5); err != nil {
		t.Fatal(err)
	}
	got, _ := m.MemGet(gas, 0, 6)
	want := []byte{1, 1, 2, 3, 4, 5}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x want %x", got, want)
	}
}

func TestMemoryCopyGrowsPastDestinationEnd(t *testing.T) {
	m := NewMemory()
	gas := NewGasTracker(1_000_000)
	m.MemPut(gas, 0, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
		17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32}, 0, 32)
	// dst=33 lands past src+length=32, so the store must grow to cover
	// dst+length, not just src+length.
	if err := m.Copy(gas, 33, 0, 32); err != nil {
		t.Fatal(err)
	}
	got, err := m.MemGet(gas, 33, 32)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]byte, 32)
	for i := range want {
		want[i] = byte(i + 1)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x want %x", got, want)
	}
}

func TestMemoryGrowthChargesPerWord(t *testing.T) {
	m := NewMemory()
	gas := NewGasTracker(1_000_000)
	before := gas.Remaining()
	if err := m.Set32(gas, 0, word.Zero()); err != nil {
		t.Fatal(err)
	}
	spent := before - gas.Remaining()
	if spent != GasMemoryWord {
		t.Fatalf("got %d want %d", spent, GasMemoryWord)
	}
}
