package fpu

import (
	"fmt"

	"github.com/Dulina14/IEEE754-FP-ALU/fp32"
)

// Op selects the requested operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD = Op(0) // add
	OP_SUB = Op(1) // sub
	OP_MUL = Op(2) // mul
	OP_DIV = Op(3) // div
)

// State is the sequencer state. IDLE is both the initial state and the
// re-entry state after PUBLISH.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	ST_IDLE      = State(0) // idle
	ST_UNPACK    = State(1) // unpack
	ST_DISPATCH  = State(2) // dispatch
	ST_DIVIDE    = State(3) // divide
	ST_NORMALIZE = State(4) // normalize
	ST_ROUND     = State(5) // round
	ST_PACK      = State(6) // pack
	ST_PUBLISH   = State(7) // publish
)

var _fpu_defines = map[string]string{
	"OP_ADD":       fmt.Sprintf("%v", int(OP_ADD)),
	"OP_SUB":       fmt.Sprintf("%v", int(OP_SUB)),
	"OP_MUL":       fmt.Sprintf("%v", int(OP_MUL)),
	"OP_DIV":       fmt.Sprintf("%v", int(OP_DIV)),
	"DIVIDE_STEPS": fmt.Sprintf("%v", fp32.DIVIDE_STEPS),
}
