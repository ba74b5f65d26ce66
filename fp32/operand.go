package fp32

import (
	"math/bits"
)

// Headroom bits kept below the fraction for rounding: guard, round,
// and sticky.
const GRS_BITS = 3

// Operand is an unpacked finite operand: materialized significand and
// biased exponent wide enough for bias arithmetic.
type Operand struct {
	Sign bool
	Exp  int32
	Sig  uint32 // 24-bit significand, implicit one included.
}

// Zero reports whether the operand magnitude is zero.
func (op Operand) Zero() bool {
	return op.Sig == 0
}

// Unpack decodes a packed value into an Operand. Normal values get the
// implicit leading one materialized; denormals flush to signed zero.
func Unpack(w Word) (op Operand) {
	op.Sign = w.Sign()

	switch w.Class() {
	case CLASS_ZERO, CLASS_DENORMAL:
		// flush-to-zero
	case CLASS_NORMAL:
		op.Exp = int32(w.Exponent())
		op.Sig = w.Fraction() | SIG_ONE
	case CLASS_INFINITY:
		op.Exp = EXP_INF
	case CLASS_NAN:
		op.Exp = EXP_INF
		op.Sig = w.Fraction() | SIG_ONE
	}

	return
}

// Pack re-assembles the operand into its packed encoding, the inverse
// of Unpack for any value Unpack produces.
func (op Operand) Pack() (w Word) {
	if op.Sig == 0 && op.Exp != EXP_INF {
		return Zero(op.Sign)
	}
	return Pack(op.Sign, uint32(op.Exp), op.Sig)
}

// Extended is a wide unnormalized result: a fixed-point significand
// accumulator whose implicit-one position is bit Point, plus a biased
// exponent wide enough to hold transient out-of-range values.
type Extended struct {
	Sign  bool
	Exp   int32
	Sig   uint64
	Point int // Bit index carrying weight 2^0.
}

// Overflow reports whether the exponent ran past the finite range.
func (res *Extended) Overflow() bool {
	return res.Exp >= EXP_INF
}

// Underflow reports whether a nonzero result fell below the normal
// range. Such results flush to signed zero.
func (res *Extended) Underflow() bool {
	return res.Exp <= 0 && res.Sig != 0
}

// Word packs the normalized, rounded result. The significand must
// already sit at the canonical point with the rounding bits cleared.
func (res *Extended) Word() Word {
	if res.Sig == 0 {
		return Zero(res.Sign)
	}
	return Pack(res.Sign, uint32(res.Exp), uint32(res.Sig>>GRS_BITS))
}

// shiftSticky shifts right, ORing every lost bit into the result LSB.
func shiftSticky(sig uint64, shift uint) uint64 {
	if shift == 0 {
		return sig
	}
	if shift >= 64 {
		if sig != 0 {
			return 1
		}
		return 0
	}
	lost := sig & (1<<shift - 1)
	sig >>= shift
	if lost != 0 {
		sig |= 1
	}
	return sig
}

// msb returns the bit index of the most significant set bit.
func msb(sig uint64) int {
	return bits.Len64(sig) - 1
}
