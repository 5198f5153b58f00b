// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm assembles Hack source text into a program and memory image.
//
// Each source line holds at most one instruction in the syntax accepted by
// cpu.Translator.Encode. Compile-time constant expressions may be written as
// $(...) and are evaluated with Starlark; the Hack memory map names (SP,
// LCL, ARG, THIS, THAT, R0-R15, SCREEN, KBD) and any Predefine'd names are
// visible inside them. Labels and variables are not resolved.
package asm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/hack/cpu"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
	"SP":     "0",
	"LCL":    "1",
	"ARG":    "2",
	"THIS":   "3",
	"THAT":   "4",
	"SCREEN": "16384",
	"KBD":    "24576",
}

func init() {
	for n := range 16 {
		sysEquate[fmt.Sprintf("R%d", n)] = strconv.Itoa(n)
	}
}

var parenRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler turns Hack source into a Program.
type Assembler struct {
	Verbose    bool              // If set, verbosely logs the assembler actions.
	Translator *cpu.Translator   // Instruction codec, cpu.Default() if nil.
	Equate     map[string]string // Constants visible to $(...) during the last Parse.

	predefine map[string]string
}

// Predefine defines a new constant or redefines an existing one.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

func (asm *Assembler) translator() *cpu.Translator {
	if asm.Translator == nil {
		return cpu.Default()
	}
	return asm.Translator
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Only integer constants are visible.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 >= int64(cpu.MAX_ADDRESS) {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

// expandLine strips the comment and evaluates $(...) expressions.
func (asm *Assembler) expandLine(text string, lineno int) (line string, err error) {
	asm.Equate["LINENO"] = strconv.Itoa(lineno)

	line, _, _ = strings.Cut(text, "//")
	line = strings.TrimSpace(line)

	line = parenRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return strconv.FormatUint(uint64(value), 10)
	})

	return
}

// Parse parses an input stream into a Program.
//
// Every failing line is reported as an ErrSyntax; all of them are returned
// joined together, and no Program is returned alongside them.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	tr := asm.translator()

	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	scanner := bufio.NewScanner(input)

	var opcodes []Opcode
	var errs []error
	var lineno int

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, lerr := asm.expandLine(text, lineno)
		if lerr != nil {
			errs = append(errs, &ErrSyntax{LineNo: lineno, Line: text, Err: lerr})
			continue
		}

		code, lerr := tr.Encode(line)
		if lerr != nil {
			errs = append(errs, &ErrSyntax{LineNo: lineno, Line: text, Err: lerr})
			continue
		}

		if code == cpu.CODE_NOOP {
			continue
		}

		word, lerr := code.Word()
		if lerr != nil {
			errs = append(errs, &ErrSyntax{LineNo: lineno, Line: text, Err: lerr})
			continue
		}

		opcodes = append(opcodes, Opcode{
			LineNo: lineno,
			Ip:     len(opcodes),
			Text:   line,
			Code:   code,
			Word:   word,
		})
	}

	if serr := scanner.Err(); serr != nil {
		errs = append(errs, serr)
	}

	if len(errs) != 0 {
		err = errors.Join(errs...)
		return
	}

	prog = &Program{
		Opcodes: opcodes,
	}

	return
}

// Assemble parses the source and lays it out in a capacity sized memory
// image, filling unused words with fill.
func (asm *Assembler) Assemble(input io.Reader, capacity int, fill int32) (memory []int32, err error) {
	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	return prog.Memory(capacity, fill)
}
