package fp32

// Target bit index of the leading one after normalization: the
// implicit-one position above the fraction and the rounding headroom.
const normPoint = FRAC_BITS + GRS_BITS

// Normalize shifts the significand until its leading one occupies the
// implicit-one position, adjusting the exponent oppositely. Bits lost
// to a right shift collect in sticky. An all-zero significand forces
// the exponent to the zero encoding.
func Normalize(res *Extended) {
	if res.Sig == 0 {
		res.Exp = 0
		res.Point = normPoint
		return
	}

	top := msb(res.Sig)
	res.Exp += int32(top - res.Point)
	if top > normPoint {
		res.Sig = shiftSticky(res.Sig, uint(top-normPoint))
	} else {
		res.Sig <<= uint(normPoint - top)
	}
	res.Point = normPoint
}

// Round applies round-to-nearest-ties-to-even to a normalized result:
// round up when the guard bit is set and any of round, sticky, or the
// fraction LSB is set. A carry out of the fraction renormalizes by one
// and bumps the exponent; the caller re-checks overflow.
func Round(res *Extended) {
	sig := uint32(res.Sig >> GRS_BITS)
	guard := (res.Sig>>2)&1 == 1
	round := (res.Sig>>1)&1 == 1
	sticky := res.Sig&1 == 1

	if guard && (round || sticky || sig&1 == 1) {
		sig++
		if sig == 1<<SIG_BITS {
			sig >>= 1
			res.Exp++
		}
	}

	res.Sig = uint64(sig) << GRS_BITS
}
