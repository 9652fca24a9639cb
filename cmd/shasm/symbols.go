// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/shasm/compiler"
	"github.com/ezrec/shasm/ir"
)

// symbolTable renders the constants and variables of a compilation.
func symbolTable(sym *compiler.Symbols) string {
	tw := table.NewWriter()
	tw.SetTitle("Symbols")
	tw.AppendHeader(table.Row{"Name", "Kind", "Size", "Value"})

	for name, value := range sym.Constants() {
		tw.AppendRow(table.Row{name, "const", "", value})
	}

	for name, storage := range sym.Variables() {
		kind := "byte"
		if storage.Align == ir.ALIGN_WORD {
			kind = "word"
		}
		tw.AppendRow(table.Row{name, kind, strconv.Itoa(storage.Size), strings.Join(storage.Init, ", ")})
	}

	return tw.Render()
}
