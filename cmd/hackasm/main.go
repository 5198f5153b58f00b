// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/tebeka/atexit"

	"github.com/ezrec/hack/asm"
	"github.com/ezrec/hack/cpu"
	"github.com/ezrec/hack/listing"
	"github.com/ezrec/hack/loader"
)

// ROM_SIZE is the default program memory capacity, in words.
const ROM_SIZE = 32768

func fatalf(format string, args ...any) {
	log.Printf(format, args...)
	atexit.Exit(1)
}

func main() {
	var compile string
	var disasm string
	var output string
	var capacity int
	var fill int
	var asYaml bool
	var table bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.StringVar(&disasm, "d", "", ".hack or .asm file to load and list")
	flag.StringVar(&output, "o", "-", "Assembler output")
	flag.IntVar(&capacity, "n", ROM_SIZE, "Memory capacity in words")
	flag.IntVar(&fill, "fill", 0, "Value of unused memory words")
	flag.BoolVar(&asYaml, "yaml", false, "List as YAML")
	flag.BoolVar(&table, "table", false, "Print the instruction tables")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	tr := cpu.Default()

	if table {
		printTables(os.Stdout, tr)
	}

	// Assemble to .hack text.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			fatalf("%v: %v", compile, err)
		}
		atexit.Register(func() { inf.Close() })

		as := &asm.Assembler{Verbose: verbose, Translator: tr}
		prog, err := as.Parse(inf)
		if err != nil {
			fatalf("%v: %v", compile, err)
		}

		if verbose {
			pp.Fprintln(os.Stderr, prog)
		}

		var ouf io.Writer = os.Stdout
		if output != "-" {
			file, err := os.Create(output)
			if err != nil {
				fatalf("%v: %v", output, err)
			}
			atexit.Register(func() { file.Close() })
			ouf = file
		}

		bw := bufio.NewWriter(ouf)
		for _, word := range prog.Binary() {
			fmt.Fprintf(bw, "%016b\n", word)
		}
		err = bw.Flush()
		if err != nil {
			fatalf("%v: %v", output, err)
		}
	}

	// Load and list.
	if len(disasm) != 0 {
		ld := &loader.Loader{
			Verbose:   verbose,
			Assembler: &asm.Assembler{Verbose: verbose, Translator: tr},
		}
		memory, err := ld.LoadProgram(disasm, capacity, int32(fill))
		if err != nil {
			fatalf("%v", err)
		}

		lst := listing.New(tr, memory, int32(fill))
		if asYaml {
			err = lst.WriteYAML(os.Stdout)
		} else {
			err = lst.WriteText(os.Stdout)
		}
		if err != nil {
			fatalf("%v: %v", disasm, err)
		}
	}

	atexit.Exit(0)
}

// printTables prints every accepted spelling of each instruction field.
func printTables(w io.Writer, tr *cpu.Translator) {
	for _, field := range []cpu.Field{cpu.FIELD_COMP, cpu.FIELD_DEST, cpu.FIELD_JUMP} {
		fmt.Fprintf(w, "%v:\n", field)
		for text, code := range tr.Aliases(field) {
			canonical, _ := tr.TextFor(field, code)
			if canonical == text {
				fmt.Fprintf(w, "  %-5v 0x%04x\n", text, uint16(code))
			} else {
				fmt.Fprintf(w, "  %-5v 0x%04x (%v)\n", text, uint16(code), canonical)
			}
		}
	}
}
