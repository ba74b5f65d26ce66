package driver

import (
	"fmt"
	"io"

	"github.com/Dulina14/IEEE754-FP-ALU/fp32"
	"github.com/Dulina14/IEEE754-FP-ALU/fpu"
)

// Driver owns one engine and walks vectors through its handshake.
type Driver struct {
	Verbose bool // If set, enables verbose logging.

	Fpu *fpu.Fpu // Reference to the engine simulation.
}

// NewDriver creates a driver around a fresh idle engine.
func NewDriver() (drv *Driver) {
	drv = &Driver{
		Fpu: fpu.NewFpu(),
	}

	return
}

// NewParser creates a vector parser with the engine defines available
// as expression symbols.
func (drv *Driver) NewParser() (p *Parser) {
	p = &Parser{}
	for key, value := range drv.Fpu.Defines() {
		p.Predefine(key, value)
	}

	return
}

// Response is the observed outcome of one vector.
type Response struct {
	Vector
	Result fp32.Word
	Flags  fp32.Flags
	Ticks  int // Ticks from start to the publish pulse.
}

func (resp Response) String() string {
	return fmt.Sprintf("%v -> %v %v (%v ticks)",
		resp.Vector, resp.Result, resp.Flags, resp.Ticks)
}

// Run drives one vector: start while idle, tick until the publish
// pulse, sample the result, and drain back to idle.
func (drv *Driver) Run(vec Vector) (resp Response, err error) {
	drv.Fpu.Verbose = drv.Verbose

	resp.Vector = vec

	start := drv.Fpu.Ticks
	err = drv.Fpu.Start(vec.A, vec.B, vec.Op)
	if err != nil {
		return
	}

	for !drv.Fpu.Done() {
		err = drv.Fpu.Tick()
		if err != nil {
			return
		}
	}

	resp.Result, resp.Flags = drv.Fpu.Result()
	resp.Ticks = drv.Fpu.Ticks - start

	// Drain the publish pulse back to idle.
	err = drv.Fpu.Tick()

	return
}

// RunAll runs vectors in order, writing one response line each to out
// when it is non-nil.
func (drv *Driver) RunAll(vectors []Vector, out io.Writer) (responses []Response, err error) {
	for _, vec := range vectors {
		var resp Response
		resp, err = drv.Run(vec)
		if err != nil {
			return
		}
		responses = append(responses, resp)

		if out != nil {
			_, err = fmt.Fprintln(out, resp)
			if err != nil {
				return
			}
		}
	}

	return
}
