// Package fpu implements the multi-cycle control sequencer around the
// fp32 arithmetic core.
//
// One operation occupies the engine end to end. The caller starts an
// operation while the engine is idle, then advances it one state per
// Tick: unpack, dispatch (with special-case short-circuit), the
// bit-serial divide loop when selected, normalize, round, pack, and a
// one-tick publish pulse back to idle. Divide is blocking; a new start
// is accepted only when Ready reports idle.
package fpu
