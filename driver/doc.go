// Package driver is the stimulus harness around one fpu engine.
//
// A vector file holds one operation per line: an opcode mnemonic and
// two operand bit patterns. Operands may be written as literals, as
// `.equ` symbols, or as compile-time `$()` starlark expressions, where
// integer results are raw bit patterns and float results convert to
// their binary32 encoding. The driver runs each vector through the
// start/tick/done handshake and formats one response line per vector.
package driver
