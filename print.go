package main

import (
	"io"

	"github.com/fatih/color"
)

// out is the destination of all user-facing lines. Tests swap it for a
// buffer.
var out io.Writer = color.Output

var (
	errorLine   = color.New(color.FgHiRed)
	successLine = color.New(color.FgHiGreen)
)

func printError(text string) {
	errorLine.Fprintf(out, "Error: %s\n", text)
}

func printSuccess(text string) {
	successLine.Fprintf(out, "Success: %s\n", text)
}
