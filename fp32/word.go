package fp32

import (
	"fmt"
	"iter"
	"maps"
	"math"
)

// Field widths and masks of the packed binary32 layout.
const (
	FRAC_BITS = 23                       // Stored fraction width.
	FRAC_MASK = uint32(1<<FRAC_BITS - 1) // Mask of the stored fraction.
	EXP_MASK  = uint32(0xff)             // Mask of the biased exponent.
	EXP_BIAS  = int32(127)               // Exponent bias.
	EXP_INF   = int32(0xff)              // Exponent encoding of Inf/NaN.
	SIG_BITS  = FRAC_BITS + 1            // Significand width with the implicit one.
	SIG_ONE   = uint32(1 << FRAC_BITS)   // Weight of the implicit one.
)

// QNAN is the canonical quiet NaN. Every NaN-producing operation
// collapses to this pattern; payloads are not propagated.
const QNAN = Word(0x7fc00000)

var _fp32_defines = map[string]string{
	"QNAN":      fmt.Sprintf("0x%x", uint32(QNAN)),
	"INF":       fmt.Sprintf("0x%x", uint32(Inf(false))),
	"NEG_INF":   fmt.Sprintf("0x%x", uint32(Inf(true))),
	"EXP_BIAS":  fmt.Sprintf("%v", EXP_BIAS),
	"FRAC_BITS": fmt.Sprintf("%v", FRAC_BITS),
	"SIG_BITS":  fmt.Sprintf("%v", SIG_BITS),
}

// Defines for the packed binary32 layout.
func Defines() iter.Seq2[string, string] {
	return maps.All(_fp32_defines)
}

// Class is the category of a packed value.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_ZERO     = Class(0) // zero
	CLASS_DENORMAL = Class(1) // denormal
	CLASS_NORMAL   = Class(2) // normal
	CLASS_INFINITY = Class(3) // infinity
	CLASS_NAN      = Class(4) // nan
)

// zero reports whether the class is treated as zero by the engine.
// Denormals flush to zero.
func (c Class) zero() bool {
	return c == CLASS_ZERO || c == CLASS_DENORMAL
}

// Word is a packed binary32 value: sign(1), biased exponent(8),
// fraction(23).
type Word uint32

// Pack assembles a packed value from its three fields.
func Pack(sign bool, exp uint32, frac uint32) (w Word) {
	w = Word(((exp & EXP_MASK) << FRAC_BITS) | (frac & FRAC_MASK))
	if sign {
		w |= 1 << 31
	}
	return
}

// Zero returns the signed zero encoding.
func Zero(sign bool) Word {
	return Pack(sign, 0, 0)
}

// Inf returns the signed infinity encoding.
func Inf(sign bool) Word {
	return Pack(sign, uint32(EXP_INF), 0)
}

// FromFloat32 converts a native float32 to its packed encoding.
func FromFloat32(f float32) Word {
	return Word(math.Float32bits(f))
}

// Sign returns the sign bit.
func (w Word) Sign() bool {
	return (w >> 31) == 1
}

// Exponent returns the biased exponent field.
func (w Word) Exponent() uint32 {
	return (uint32(w) >> FRAC_BITS) & EXP_MASK
}

// Fraction returns the stored 23-bit fraction field.
func (w Word) Fraction() uint32 {
	return uint32(w) & FRAC_MASK
}

// Neg returns the value with the sign bit flipped.
func (w Word) Neg() Word {
	return w ^ (1 << 31)
}

// Class categorizes the packed value. It is a pure function of the bit
// pattern.
func (w Word) Class() (class Class) {
	switch w.Exponent() {
	case 0:
		if w.Fraction() == 0 {
			class = CLASS_ZERO
		} else {
			class = CLASS_DENORMAL
		}
	case uint32(EXP_INF):
		if w.Fraction() == 0 {
			class = CLASS_INFINITY
		} else {
			class = CLASS_NAN
		}
	default:
		class = CLASS_NORMAL
	}
	return
}

// Float32 converts the packed encoding to a native float32.
func (w Word) Float32() float32 {
	return math.Float32frombits(uint32(w))
}

// String returns the packed value as a hex bit pattern.
func (w Word) String() string {
	return fmt.Sprintf("0x%08x", uint32(w))
}
