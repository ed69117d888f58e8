// Package word implements the 256-bit machine word the interpreter
// operates on: wrapping arithmetic, the signed variants EVM opcodes
// need (SDIV, SMOD, SAR, SLT, SGT), and the big-endian/address
// conversions the rest of the VM uses to talk to memory, storage and
// call data.
//
// Word is expressed as an interface so the dispatch loop and opcode
// handlers never depend on a concrete bit width; U256 is the only
// implementation shipped here, but a narrower word could be swapped
// in without touching core/vm.
package word

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

// Word is a 256-bit (or narrower, for an alternate implementation)
// unsigned machine word with two's-complement wraparound semantics.
// Every method returns a new Word rather than mutating the receiver.
type Word interface {
	Add(other Word) Word
	Sub(other Word) Word
	Mul(other Word) Word
	Div(other Word) Word
	SDiv(other Word) Word
	Mod(other Word) Word
	SMod(other Word) Word
	AddMod(add, mod Word) Word
	MulMod(mul, mod Word) Word
	Exp(exponent Word) Word

	And(other Word) Word
	Or(other Word) Word
	Xor(other Word) Word
	Not() Word
	Shl(bits Word) Word
	Shr(bits Word) Word
	Sar(bits Word) Word
	Byte(index Word) Word
	SignExtend(byteIndex Word) (Word, error)

	Lt(other Word) bool
	Gt(other Word) bool
	Slt(other Word) bool
	Sgt(other Word) bool
	Eq(other Word) bool
	IsZero() bool
	IsNeg() bool

	Uint64() uint64
	Usize() (int, error)
	BigEndian() [32]byte
	Address() [20]byte

	Clone() Word
	String() string
}

var (
	// ErrSignExtendOutOfRange is returned by SignExtend when the byte
	// index is 32 or greater; there is no 33rd byte to extend from.
	ErrSignExtendOutOfRange = errors.New("word: signextend index out of range")
	// ErrTooLarge is returned when a word does not fit the bounds
	// Usize enforces for memory offsets and lengths.
	ErrTooLarge = errors.New("word: value too large")
)

// maxUsize bounds the offsets and lengths bytecode is allowed to name.
// Nothing in a 32-byte word beyond this is ever a real memory address;
// it is bytecode trying to force an absurd allocation.
const maxUsize = 1 << 32

// U256 is the reference Word: an unsigned 256-bit integer backed by
// uint256.Int.
type U256 struct {
	v uint256.Int
}

var _ Word = (*U256)(nil)

// Zero returns the word 0.
func Zero() *U256 { return &U256{} }

// One returns the word 1.
func One() *U256 {
	var u U256
	u.v.SetOne()
	return &u
}

// FromUint64 builds a word from a 64-bit value.
func FromUint64(x uint64) *U256 {
	var u U256
	u.v.SetUint64(x)
	return &u
}

// FromBigEndian builds a word from a big-endian byte slice, left-padding
// shorter input with zero bytes and keeping only the low 32 bytes of
// longer input.
func FromBigEndian(b []byte) *U256 {
	var buf [32]byte
	if len(b) >= 32 {
		copy(buf[:], b[len(b)-32:])
	} else {
		copy(buf[32-len(b):], b)
	}
	var u U256
	u.v.SetBytes32(buf[:])
	return &u
}

// asU256 adapts any Word into a *uint256.Int, going through the shared
// big-endian representation for implementations other than *U256.
func asU256(w Word) *uint256.Int {
	if o, ok := w.(*U256); ok {
		return &o.v
	}
	be := w.BigEndian()
	var u uint256.Int
	u.SetBytes32(be[:])
	return &u
}

func (u *U256) Add(other Word) Word {
	var r U256
	r.v.Add(&u.v, asU256(other))
	return &r
}

func (u *U256) Sub(other Word) Word {
	var r U256
	r.v.Sub(&u.v, asU256(other))
	return &r
}

func (u *U256) Mul(other Word) Word {
	var r U256
	r.v.Mul(&u.v, asU256(other))
	return &r
}

// Div is unsigned division; by zero it yields 0 rather than erroring.
func (u *U256) Div(other Word) Word {
	var r U256
	r.v.Div(&u.v, asU256(other))
	return &r
}

// SDiv is signed division truncating toward zero; by zero it yields 0.
func (u *U256) SDiv(other Word) Word {
	var r U256
	r.v.SDiv(&u.v, asU256(other))
	return &r
}

// Mod is unsigned remainder; by zero it yields 0.
func (u *U256) Mod(other Word) Word {
	var r U256
	r.v.Mod(&u.v, asU256(other))
	return &r
}

// SMod is signed remainder taking the sign of the dividend; by zero it
// yields 0.
func (u *U256) SMod(other Word) Word {
	var r U256
	r.v.SMod(&u.v, asU256(other))
	return &r
}

// AddMod computes (u+add) mod n in the widened domain, yielding 0 when
// n is 0.
func (u *U256) AddMod(add, mod Word) Word {
	m := asU256(mod)
	if m.IsZero() {
		return Zero()
	}
	var r U256
	r.v.AddMod(&u.v, asU256(add), m)
	return &r
}

// MulMod computes (u*mul) mod n in the widened domain, yielding 0 when
// n is 0.
func (u *U256) MulMod(mul, mod Word) Word {
	m := asU256(mod)
	if m.IsZero() {
		return Zero()
	}
	var r U256
	r.v.MulMod(&u.v, asU256(mul), m)
	return &r
}

// Exp is wrapping exponentiation, u**exponent mod 2**256.
func (u *U256) Exp(exponent Word) Word {
	var r U256
	r.v.Exp(&u.v, asU256(exponent))
	return &r
}

func (u *U256) And(other Word) Word {
	var r U256
	r.v.And(&u.v, asU256(other))
	return &r
}

func (u *U256) Or(other Word) Word {
	var r U256
	r.v.Or(&u.v, asU256(other))
	return &r
}

func (u *U256) Xor(other Word) Word {
	var r U256
	r.v.Xor(&u.v, asU256(other))
	return &r
}

func (u *U256) Not() Word {
	var r U256
	r.v.Not(&u.v)
	return &r
}

// Shl shifts left by bits, clamping to 0 once bits reaches 256.
func (u *U256) Shl(bits Word) Word {
	shift := asU256(bits)
	var r U256
	if shift.LtUint64(256) {
		r.v.Lsh(&u.v, uint(shift.Uint64()))
	}
	return &r
}

// Shr shifts right with zero fill, clamping to 0 once bits reaches 256.
func (u *U256) Shr(bits Word) Word {
	shift := asU256(bits)
	var r U256
	if shift.LtUint64(256) {
		r.v.Rsh(&u.v, uint(shift.Uint64()))
	}
	return &r
}

// Sar shifts right with sign-bit replication. A shift of 256 or more
// collapses to all-zero (non-negative operand) or all-one (negative
// operand).
func (u *U256) Sar(bits Word) Word {
	shift := asU256(bits)
	var r U256
	if shift.GtUint64(256) {
		if u.v.Sign() < 0 {
			r.v.SetAllOne()
		}
		return &r
	}
	r.v.SRsh(&u.v, uint(shift.Uint64()))
	return &r
}

// Byte returns byte index of the big-endian representation (0 is the
// most significant byte), or 0 when index is 32 or greater.
func (u *U256) Byte(index Word) Word {
	var r U256
	r.v = u.v
	r.v.Byte(asU256(index))
	return &r
}

// SignExtend treats the low byteIndex+1 bytes of u as a signed integer
// and sign-extends it to the full width. byteIndex must be below 32.
func (u *U256) SignExtend(byteIndex Word) (Word, error) {
	bi := asU256(byteIndex)
	if !bi.IsUint64() || bi.Uint64() >= 32 {
		return nil, ErrSignExtendOutOfRange
	}
	var r U256
	r.v.ExtendSign(&u.v, bi)
	return &r, nil
}

func (u *U256) Lt(other Word) bool { return u.v.Lt(asU256(other)) }
func (u *U256) Gt(other Word) bool { return u.v.Gt(asU256(other)) }
func (u *U256) Slt(other Word) bool { return u.v.Slt(asU256(other)) }
func (u *U256) Sgt(other Word) bool { return u.v.Sgt(asU256(other)) }
func (u *U256) Eq(other Word) bool { return u.v.Eq(asU256(other)) }
func (u *U256) IsZero() bool { return u.v.IsZero() }
func (u *U256) IsNeg() bool { return u.v.Sign() < 0 }

func (u *U256) Uint64() uint64 { return u.v.Uint64() }

// Usize converts to a machine-native size, rejecting values that could
// not possibly be a real memory offset or length.
func (u *U256) Usize() (int, error) {
	if !u.v.IsUint64() {
		return 0, ErrTooLarge
	}
	n := u.v.Uint64()
	if n > maxUsize {
		return 0, ErrTooLarge
	}
	return int(n), nil
}

func (u *U256) BigEndian() [32]byte { return u.v.Bytes32() }
func (u *U256) Address() [20]byte   { return u.v.Bytes20() }

func (u *U256) Clone() Word {
	r := *u
	return &r
}

func (u *U256) String() string {
	b := u.v.Bytes32()
	return fmt.Sprintf("0x%x", b)
}
