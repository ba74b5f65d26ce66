package fp32

// DIVIDE_STEPS is the fixed quotient length of the bit-serial divider:
// the full significand plus guard, round, and sticky precision.
const DIVIDE_STEPS = SIG_BITS + GRS_BITS

// Divider performs bit-serial long division of two significands,
// retiring exactly one quotient bit per Step. The caller runs it for
// DIVIDE_STEPS steps; a step maps to one clock of divide latency.
type Divider struct {
	Sign bool
	Exp  int32

	rem  uint64
	div  uint64
	quo  uint64
	step int
}

// Init loads the divider with finite nonzero operands. The exponent is
// computed up front; the quotient is normalized afterwards.
func (d *Divider) Init(a, b Operand) {
	d.Sign = a.Sign != b.Sign
	d.Exp = a.Exp - b.Exp + EXP_BIAS
	d.rem = uint64(a.Sig)
	d.div = uint64(b.Sig)
	d.quo = 0
	d.step = 0
}

// Step retires one quotient bit: compare the running remainder against
// the divisor, subtract on success, then shift. Reports completion
// after DIVIDE_STEPS bits.
func (d *Divider) Step() (done bool) {
	bit := uint64(0)
	if d.rem >= d.div {
		bit = 1
		d.rem -= d.div
	}
	d.quo = d.quo<<1 | bit
	d.rem <<= 1

	d.step++
	done = d.step >= DIVIDE_STEPS
	return
}

// Result returns the quotient as an unnormalized Extended, with a
// nonzero remainder folded into the sticky bit.
func (d *Divider) Result() (res Extended) {
	res.Sign = d.Sign
	res.Exp = d.Exp
	res.Sig = d.quo << 1
	if d.rem != 0 {
		res.Sig |= 1
	}
	res.Point = DIVIDE_STEPS
	return
}
