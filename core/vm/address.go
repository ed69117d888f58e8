package vm

import (
	"github.com/evmlite/evmlite/core/types"
	"github.com/evmlite/evmlite/crypto"
	"github.com/evmlite/evmlite/word"
)

// address.go derives the deployment address for CREATE and CREATE2.
// This is the one corner of RLP the machine needs: encoding a single
// (address, nonce) pair, not a general codec.

// CreateAddress computes the CREATE deployment address from a caller
// and its nonce at the moment of deployment. Per this host's
// bookkeeping, the nonce passed in is the value recorded for the
// caller immediately *after* the increment CREATE performs, not the
// value beforehand.
func CreateAddress(caller types.Address, nonce uint64) types.Address {
	input := make([]byte, 0, 1+types.AddressLength+9)
	input = append(input, 0x94)
	input = append(input, caller[:]...)
	input = append(input, rlpNonce(nonce)...)
	digest := crypto.Keccak256(input)
	return types.BytesToAddress(digest[12:])
}

// rlpNonce encodes a nonce the way a single RLP integer would: the
// byte itself if below 128, otherwise a length-prefixed big-endian
// encoding with no leading zero bytes.
func rlpNonce(n uint64) []byte {
	if n < 128 {
		return []byte{byte(n)}
	}
	b := minimalBigEndian(n)
	return append([]byte{0x80 + byte(len(b))}, b...)
}

func minimalBigEndian(n uint64) []byte {
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = byte(n)
		n >>= 8
	}
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// Create2Address computes the CREATE2 deployment address from a
// caller, salt, and the init code's hash.
func Create2Address(caller types.Address, salt word.Word, initCode []byte) types.Address {
	initCodeHash := crypto.Keccak256(initCode)
	saltBytes := salt.BigEndian()
	input := make([]byte, 0, 1+types.AddressLength+32+32)
	input = append(input, 0xFF)
	input = append(input, caller[:]...)
	input = append(input, saltBytes[:]...)
	input = append(input, initCodeHash...)
	digest := crypto.Keccak256(input)
	return types.BytesToAddress(digest[12:])
}
