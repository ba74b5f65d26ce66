// Package fp32 implements IEEE 754 binary32 arithmetic in software.
//
// A packed value (Word) decodes into a sign, a biased exponent, and a
// 24-bit significand with the implicit leading one materialized. The
// add/sub, multiply, and divide units each produce a wide unnormalized
// Extended result, which is then normalized, rounded to nearest with
// ties to even, and packed back into a Word.
//
// Denormal operands and denormal results are flushed to signed zero.
// Exception conditions (invalid, overflow, underflow) are reported as
// Flags alongside the result, never as Go errors.
package fp32
