package vm

import (
	"bytes"
	"testing"
)

func TestReturnDataBufferUnavailableBeforeAnyCall(t *testing.T) {
	rdb := NewReturnDataBuffer()
	if _, err := rdb.Size(); err != ErrReturnDataUnavailable {
		t.Fatalf("got %v want ErrReturnDataUnavailable", err)
	}
}

func TestReturnDataBufferZeroLengthAfterEmptyReturn(t *testing.T) {
	rdb := NewReturnDataBuffer()
	rdb.Set(nil)
	size, err := rdb.Size()
	if err != nil {
		t.Fatal(err)
	}
	if size != 0 {
		t.Fatalf("got size %d want 0", size)
	}
}

func TestReturnDataBufferSliceOutOfBounds(t *testing.T) {
	rdb := NewReturnDataBuffer()
	rdb.Set([]byte{1, 2, 3})
	if _, err := rdb.Slice(1, 10); err != ErrOutOfBounds {
		t.Fatalf("got %v want ErrOutOfBounds", err)
	}
}

func TestReturnDataBufferSliceCopies(t *testing.T) {
	rdb := NewReturnDataBuffer()
	rdb.Set([]byte{1, 2, 3, 4})
	got, err := rdb.Slice(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{2, 3}) {
		t.Fatalf("got %x want 0203", got)
	}
}

func TestCallFrameTypeIsCreate(t *testing.T) {
	if !FrameCreate.IsCreate() || !FrameCreate2.IsCreate() {
		t.Fatal("CREATE/CREATE2 frame types must report IsCreate")
	}
	if FrameCall.IsCreate() || FrameStaticCall.IsCreate() || FrameDelegateCall.IsCreate() {
		t.Fatal("non-create frame types must not report IsCreate")
	}
}
