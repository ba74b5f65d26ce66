package fp32

// Multiply multiplies two finite nonzero operands: XOR of the signs,
// sum of the biased exponents less the bias, and the full 48-bit
// significand product, handed to Normalize unshifted.
func Multiply(a, b Operand) (res Extended) {
	res.Sign = a.Sign != b.Sign
	res.Exp = a.Exp + b.Exp - EXP_BIAS
	res.Sig = uint64(a.Sig) * uint64(b.Sig)
	res.Point = 2 * FRAC_BITS
	return
}
