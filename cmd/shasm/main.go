// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command shasm compiles shorthand assembly into Nios II assembly source.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"github.com/xyproto/env/v2"

	"github.com/ezrec/shasm/compiler"
	"github.com/ezrec/shasm/translate"
)

// options of a single invocation.
type options struct {
	output   string
	defines  []string
	symbols  bool
	verbose  bool
	language string
	stdout   io.Writer
	stderr   io.Writer
	cleanup  func(func()) // Registers a handler to run at exit
}

func newCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shasm [flags] source.sha",
		Short: "Compile shorthand assembly to Nios II assembly source",
		Long: `Shasm translates a shorthand assembly source file into Nios II
assembly source. The output is written to standard output, or to the file
given by -o. A failed compilation leaves no output file behind.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "-", "assembly output file")
	flags.StringArrayVarP(&opts.defines, "define", "D", nil, "predefine a constant, as NAME=VALUE")
	flags.BoolVar(&opts.symbols, "symbols", false, "print the symbol table to standard error")
	flags.BoolVarP(&opts.verbose, "verbose", "v", env.Bool("SHASM_VERBOSE"), "verbose mode")
	flags.StringVar(&opts.language, "lang", env.Str("SHASM_LANG"), "diagnostic language, as a BCP 47 tag")

	return cmd
}

// run compiles the source file according to the options.
func run(opts *options, source string) (err error) {
	if len(opts.language) != 0 {
		translate.SetLanguage(opts.language)
	}

	cc := &compiler.Compiler{Verbose: opts.verbose}
	for _, define := range opts.defines {
		name, value, ok := strings.Cut(define, "=")
		if !ok || len(name) == 0 {
			err = fmt.Errorf("-D %v: expected NAME=VALUE", define)
			return
		}
		cc.Predefine(name, value)
	}

	inf, err := os.Open(source)
	if err != nil {
		return
	}
	defer inf.Close()

	listing, err := cc.Compile(inf)
	for _, warning := range cc.Warnings {
		fmt.Fprintf(opts.stderr, "%v: warning: %v\n", source, warning)
	}
	if err != nil {
		err = fmt.Errorf("%v: %w", source, err)
		return
	}

	if opts.symbols {
		fmt.Fprintln(opts.stderr, symbolTable(listing.Symbols))
	}

	if opts.output == "-" {
		_, err = io.WriteString(opts.stdout, listing.String())
		return
	}

	ouf, err := os.Create(opts.output)
	if err != nil {
		return
	}

	// Remove partial output, if the process exits before the write
	// completes.
	done := false
	opts.cleanup(func() {
		if !done {
			os.Remove(opts.output)
		}
	})

	_, err = io.WriteString(ouf, listing.String())
	if err == nil {
		err = ouf.Close()
	} else {
		ouf.Close()
	}
	if err != nil {
		os.Remove(opts.output)
		return
	}

	done = true
	return
}

func main() {
	log.SetFlags(0)

	opts := &options{
		stdout: os.Stdout,
		stderr: os.Stderr,
		cleanup: func(fn func()) {
			atexit.Register(fn)
		},
	}

	err := newCommand(opts).Execute()
	if err != nil {
		atexit.Fatalf("shasm: %v", err)
	}

	atexit.Exit(0)
}
