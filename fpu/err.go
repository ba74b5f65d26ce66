package fpu

import (
	"errors"

	"github.com/Dulina14/IEEE754-FP-ALU/translate"
)

var f = translate.From

var (
	ErrBusy = errors.New(f("engine busy"))
	ErrIdle = errors.New(f("engine idle"))
)

type ErrOpcode Op

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v", int(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
