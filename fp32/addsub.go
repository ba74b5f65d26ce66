package fp32

// AddSub sums two finite nonzero operands carrying effective signs; a
// subtract request must flip b.Sign before the call. The result keeps
// guard, round, and sticky headroom below the fraction for rounding.
func AddSub(a, b Operand) (res Extended) {
	sa := uint64(a.Sig) << GRS_BITS
	sb := uint64(b.Sig) << GRS_BITS

	// Align the smaller-exponent significand, losing shifted-out bits
	// into sticky. Shifts past the accumulator saturate to sticky-only.
	res.Exp = a.Exp
	diff := a.Exp - b.Exp
	switch {
	case diff > 0:
		sb = shiftSticky(sb, uint(diff))
	case diff < 0:
		res.Exp = b.Exp
		sa = shiftSticky(sa, uint(-diff))
	}

	res.Point = FRAC_BITS + GRS_BITS

	if a.Sign == b.Sign {
		res.Sign = a.Sign
		res.Sig = sa + sb
		return
	}

	// Effective signs differ: subtract the smaller magnitude from the
	// larger and adopt the larger's sign. A magnitude tie takes the
	// non-negated operand's sign.
	if sa >= sb {
		res.Sign = a.Sign
		res.Sig = sa - sb
	} else {
		res.Sign = b.Sign
		res.Sig = sb - sa
	}

	return
}
