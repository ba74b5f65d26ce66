package driver

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/Dulina14/IEEE754-FP-ALU/fp32"
	"github.com/Dulina14/IEEE754-FP-ALU/fpu"
)

// Vector is one operation request read from a stimulus file.
type Vector struct {
	LineNo int
	Op     fpu.Op
	A, B   fp32.Word
}

func (vec Vector) String() string {
	return fmt.Sprintf("%v %v %v", vec.Op, vec.A, vec.B)
}

// opMap is a map of opcode mnemonics to operations.
var opMap = map[string]fpu.Op{
	"add": fpu.OP_ADD,
	"sub": fpu.OP_SUB,
	"mul": fpu.OP_MUL,
	"div": fpu.OP_DIV,
}

// Parser is a single pass parser for stimulus vector files.
type Parser struct {
	Verbose bool // If set, verbosely logs the parser actions.

	Equate    map[string]string // Map of equates.
	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate.
func (p *Parser) Predefine(equ string, value string) {
	if p.predefine == nil {
		p.predefine = map[string]string{equ: value}
	} else {
		p.predefine[equ] = value
	}
}

// Parse reads a vector file, one operation per line. ';' starts a
// comment; `.equ NAME VALUE` defines a symbol; `$(...)` evaluates a
// compile-time expression.
func (p *Parser) Parse(rd io.Reader) (vectors []Vector, err error) {
	p.Equate = map[string]string{}
	for key, value := range p.predefine {
		p.Equate[key] = value
	}

	scanner := bufio.NewScanner(rd)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if n := strings.IndexByte(line, ';'); n >= 0 {
			line = line[:n]
		}

		var vec Vector
		var ok bool
		vec, ok, err = p.parseLine(line, lineno)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}
		if ok {
			if p.Verbose {
				log.Printf("parse: %3d: %v", lineno, vec)
			}
			vectors = append(vectors, vec)
		}
	}
	err = scanner.Err()

	return
}

// parseLine parses a single line as a vector or an equate.
func (p *Parser) parseLine(line string, lineno int) (vec Vector, ok bool, err error) {
	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := p.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#x", uint32(value))
	})
	if err != nil {
		return
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, dup := p.Equate[words[1]]
		if dup {
			err = ErrEquateDuplicate
			return
		}
		p.Equate[words[1]] = words[2]
		return
	}

	// Substitute equates.
	for n, word := range words {
		equate, isEquate := p.Equate[word]
		if isEquate {
			words[n] = equate
		}
	}

	if len(words) != 3 {
		err = ErrVectorSyntax
		return
	}

	op, isOp := opMap[words[0]]
	if !isOp {
		err = ErrOpcodeInvalid
		return
	}

	vec.LineNo = lineno
	vec.Op = op
	vec.A, err = p.valueOf(words[1])
	if err != nil {
		return
	}
	vec.B, err = p.valueOf(words[2])
	if err != nil {
		return
	}

	ok = true
	return
}

// valueOf parses a bit-pattern literal.
func (p *Parser) valueOf(word string) (value fp32.Word, err error) {
	value64, err := strconv.ParseUint(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}
	value = fp32.Word(value64)
	return
}

// parenEval does compile-time $(...) evaluations. Integer results are
// raw bit patterns; float results convert to their binary32 encoding.
func (p *Parser) parenEval(expr string) (value fp32.Word, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range p.Equate {
		value32, _err := p.valueOf(str)
		if _err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(int64(uint32(value32)))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	switch rc := st_rc.(type) {
	case starlark.Int:
		st_int64, ok := rc.Int64()
		if !ok {
			err = ErrParseExpression(expr)
			return
		}
		value = fp32.Word(uint32(st_int64))
	case starlark.Float:
		value = fp32.FromFloat32(float32(rc))
	default:
		err = ErrParseExpression(expr)
	}
	return
}
