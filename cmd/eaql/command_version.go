package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const version = "0.1.0"

var logo = []struct{ block, letters string }{
	{"▀▀▀▀▀▀▀▀▀▀", "▗▄▄▄▖ ▗▄▖ ▗▄▄▄▖ ▗▖"},
	{"██████████", "▐▌   ▐▌ ▐▌▐▌ ▐▌ ▐▌"},
	{"▄▄▄▄▄▄▄▄▄▄", "▐▛▀▀▘▐▛▀▜▌▐▌ ▐▌ ▐▌"},
	{"▄▄▄▄▄▄▄▄▄▄", "▐▙▄▄▖▐▌ ▐▌▐▙▄▟▙▖▐▙▄▄"},
	{"▀▀▀▀▀▀▀▀▀▀", ""},
}

// printBanner writes the logo followed by a rule.
func printBanner(w io.Writer) {
	block := color.New(color.FgHiBlack)
	letters := color.New(color.FgHiBlue)

	fmt.Fprintln(w)
	for _, row := range logo {
		fmt.Fprintf(w, "\t%s    %s\n", block.Sprint(row.block), letters.Sprint(row.letters))
	}
	fmt.Fprintln(w, "══════════════════════════════════════════════════")
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	if !ctx.Quiet {
		printBanner(ctx.Out)
	}
	fmt.Fprintf(ctx.Out, "EAQL v%s\n", version)
	return nil
}
