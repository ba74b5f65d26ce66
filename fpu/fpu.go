package fpu

import (
	"iter"
	"log"
	"maps"

	"github.com/Dulina14/IEEE754-FP-ALU/fp32"
	"github.com/Dulina14/IEEE754-FP-ALU/internal"
)

// Policy selects between the divergent flag behaviors of the source
// hardware variants.
type Policy struct {
	// DivideByZeroInvalid raises the invalid flag when a nonzero
	// dividend is divided by zero, alongside the signed infinity
	// result. The richer-flag variant sets it; strict IEEE 754 would
	// not.
	DivideByZeroInvalid bool
}

// Fpu is the simulation context for the arithmetic engine. One Tick
// advances the sequencer by exactly one state transition.
type Fpu struct {
	Verbose bool   // Set to enable verbose logging.
	Policy  Policy // Flag policy, latched per operation at Start.

	Ticks int // Tick counter since Reset.

	state State
	op    Op
	a, b  fp32.Word // Operands as requested.
	eb    fp32.Word // Operand b with the effective sign applied.
	opA   fp32.Operand
	opB   fp32.Operand

	div    fp32.Divider
	res    fp32.Extended
	flags  fp32.Flags
	result fp32.Word
	done   bool
}

// NewFpu creates an idle engine with the standardized flag policy.
func NewFpu() (fpu *Fpu) {
	fpu = &Fpu{
		Policy: Policy{DivideByZeroInvalid: true},
	}

	return
}

// Defines for the engine and the packed layout.
func (fpu *Fpu) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_fpu_defines), fp32.Defines())
}

// Reset abandons any in-flight operation and returns to idle.
func (fpu *Fpu) Reset() {
	if fpu.Verbose {
		log.Printf("fpu: reset")
	}

	fpu.state = ST_IDLE
	fpu.done = false
	fpu.flags.Reset()
	fpu.Ticks = 0
}

// State returns the current sequencer state.
func (fpu *Fpu) State() State {
	return fpu.state
}

// Ready reports whether a new operation may be started.
func (fpu *Fpu) Ready() bool {
	return fpu.state == ST_IDLE
}

// Done reports the completion pulse: true for exactly the one tick on
// which the result is published.
func (fpu *Fpu) Done() bool {
	return fpu.done
}

// Result returns the packed result and exception flags of the most
// recently published operation.
func (fpu *Fpu) Result() (result fp32.Word, flags fp32.Flags) {
	result = fpu.result
	flags = fpu.flags
	return
}

// Start latches an operation request. The engine must be idle.
func (fpu *Fpu) Start(a, b fp32.Word, op Op) (err error) {
	if fpu.state != ST_IDLE {
		err = ErrBusy
		return
	}
	if op < OP_ADD || op > OP_DIV {
		err = ErrOpcode(op)
		return
	}

	fpu.a = a
	fpu.b = b
	fpu.op = op
	fpu.flags.Reset()
	fpu.done = false
	fpu.state = ST_UNPACK

	if fpu.Verbose {
		log.Printf("fpu: start %v %v %v", op, a, b)
	}

	return
}

// publish latches the final result and asserts the completion pulse.
func (fpu *Fpu) publish(result fp32.Word) {
	fpu.result = result
	fpu.state = ST_PUBLISH
	fpu.done = true
}

// Tick advances the sequencer by one state transition.
func (fpu *Fpu) Tick() (err error) {
	switch fpu.state {
	case ST_IDLE:
		err = ErrIdle
		return

	case ST_UNPACK:
		fpu.eb = fpu.b
		if fpu.op == OP_SUB {
			fpu.eb = fpu.b.Neg()
		}
		fpu.opA = fp32.Unpack(fpu.a)
		fpu.opB = fp32.Unpack(fpu.eb)
		fpu.state = ST_DISPATCH

	case ST_DISPATCH:
		var special bool
		var result fp32.Word
		switch fpu.op {
		case OP_ADD, OP_SUB:
			result, fpu.flags, special = fp32.SpecialAddSub(fpu.a, fpu.eb)
		case OP_MUL:
			result, fpu.flags, special = fp32.SpecialMultiply(fpu.a, fpu.b)
		case OP_DIV:
			result, fpu.flags, special = fp32.SpecialDivide(fpu.a, fpu.b, fpu.Policy.DivideByZeroInvalid)
		}
		if special {
			fpu.publish(result)
			break
		}

		switch fpu.op {
		case OP_ADD, OP_SUB:
			fpu.res = fp32.AddSub(fpu.opA, fpu.opB)
			fpu.state = ST_NORMALIZE
		case OP_MUL:
			fpu.res = fp32.Multiply(fpu.opA, fpu.opB)
			fpu.state = ST_NORMALIZE
		case OP_DIV:
			fpu.div.Init(fpu.opA, fpu.opB)
			fpu.state = ST_DIVIDE
		}

	case ST_DIVIDE:
		if fpu.div.Step() {
			fpu.res = fpu.div.Result()
			fpu.state = ST_NORMALIZE
		}

	case ST_NORMALIZE:
		fp32.Normalize(&fpu.res)
		switch {
		case fpu.res.Overflow():
			fpu.flags.Overflow = true
			fpu.publish(fp32.Inf(fpu.res.Sign))
		case fpu.res.Underflow():
			fpu.flags.Underflow = true
			fpu.publish(fp32.Zero(fpu.res.Sign))
		default:
			fpu.state = ST_ROUND
		}

	case ST_ROUND:
		fp32.Round(&fpu.res)
		if fpu.res.Overflow() {
			// The rounding carry pushed the exponent past the top.
			fpu.flags.Overflow = true
			fpu.publish(fp32.Inf(fpu.res.Sign))
		} else {
			fpu.state = ST_PACK
		}

	case ST_PACK:
		fpu.publish(fpu.res.Word())

	case ST_PUBLISH:
		fpu.done = false
		fpu.state = ST_IDLE
	}

	fpu.Ticks++

	if fpu.Verbose {
		log.Printf("fpu: tick %v -> %v", fpu.Ticks, fpu.state)
	}

	return
}

// Compute runs one operation synchronously: Start, Tick to the publish
// pulse, sample the result, and drain back to idle. The multi-cycle
// latency collapses into one call.
func (fpu *Fpu) Compute(a, b fp32.Word, op Op) (result fp32.Word, flags fp32.Flags, err error) {
	err = fpu.Start(a, b, op)
	if err != nil {
		return
	}

	for !fpu.done {
		err = fpu.Tick()
		if err != nil {
			return
		}
	}

	result, flags = fpu.Result()

	// Drain the publish pulse.
	err = fpu.Tick()

	return
}
