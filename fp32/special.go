package fp32

// Special-case resolution runs before any numeric unit. When an
// operand pair matches, the packed result and flags are final and the
// numeric pipeline (including normalize and round) is bypassed.
//
// NaN results always collapse to the canonical QNAN; operand payloads
// are not preserved. Denormal operands count as zero throughout.

// SpecialAddSub resolves the add/sub special cases. Operand b carries
// the effective sign: a subtract request flips it before the call.
func SpecialAddSub(a, b Word) (result Word, flags Flags, special bool) {
	ca := a.Class()
	cb := b.Class()

	switch {
	case ca == CLASS_NAN || cb == CLASS_NAN:
		result = QNAN
		flags.Invalid = true
	case ca == CLASS_INFINITY && cb == CLASS_INFINITY:
		if a.Sign() != b.Sign() {
			// reduces to Inf - Inf
			result = QNAN
			flags.Invalid = true
		} else {
			result = a
		}
	case ca == CLASS_INFINITY:
		result = a
	case cb == CLASS_INFINITY:
		result = b
	case ca.zero() && cb.zero():
		// A magnitude tie takes the non-negated operand's sign.
		result = Zero(a.Sign())
	case ca.zero():
		result = b
	case cb.zero():
		result = a
	default:
		return
	}

	special = true
	return
}

// SpecialMultiply resolves the multiply special cases.
func SpecialMultiply(a, b Word) (result Word, flags Flags, special bool) {
	ca := a.Class()
	cb := b.Class()
	sign := a.Sign() != b.Sign()

	switch {
	case ca == CLASS_NAN || cb == CLASS_NAN:
		result = QNAN
		flags.Invalid = true
	case (ca == CLASS_INFINITY && cb.zero()) || (ca.zero() && cb == CLASS_INFINITY):
		result = QNAN
		flags.Invalid = true
	case ca == CLASS_INFINITY || cb == CLASS_INFINITY:
		result = Inf(sign)
	case ca.zero() || cb.zero():
		result = Zero(sign)
	default:
		return
	}

	special = true
	return
}

// SpecialDivide resolves the divide special cases. dbzInvalid selects
// whether a nonzero dividend over a zero divisor raises the invalid
// flag along with the signed infinity result.
func SpecialDivide(a, b Word, dbzInvalid bool) (result Word, flags Flags, special bool) {
	ca := a.Class()
	cb := b.Class()
	sign := a.Sign() != b.Sign()

	switch {
	case ca == CLASS_NAN || cb == CLASS_NAN:
		result = QNAN
		flags.Invalid = true
	case ca == CLASS_INFINITY && cb == CLASS_INFINITY:
		result = QNAN
		flags.Invalid = true
	case ca.zero() && cb.zero():
		result = QNAN
		flags.Invalid = true
	case cb.zero():
		result = Inf(sign)
		flags.Invalid = dbzInvalid
	case ca == CLASS_INFINITY:
		result = Inf(sign)
	case cb == CLASS_INFINITY:
		result = Zero(sign)
	case ca.zero():
		result = Zero(sign)
	default:
		return
	}

	special = true
	return
}
