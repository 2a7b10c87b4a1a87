package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/shibukawa/eaql/transpiler"
)

var roleColors = map[transpiler.Role]*color.Color{
	transpiler.RoleSelection:     color.New(color.FgCyan),
	transpiler.RoleTable:         color.New(color.FgGreen),
	transpiler.RoleFilter:        color.New(color.FgYellow),
	transpiler.RolePostProcessor: color.New(color.FgMagenta),
	transpiler.RoleAction:        color.New(color.FgRed),
	transpiler.RoleTarget:        color.New(color.FgBlue),
}

// colorize joins segments with single spaces, painting each by its role.
func colorize(segments []transpiler.Segment) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		if c, ok := roleColors[segment.Role]; ok {
			parts = append(parts, c.Sprint(segment.Text))
		} else {
			parts = append(parts, segment.Text)
		}
	}
	return strings.Join(parts, " ")
}

func printOutput(w io.Writer, output transpiler.Output) {
	fmt.Fprintf(w, "‣ Reduced Query: %s;\n", colorize(output.EchoSegments))
	fmt.Fprintf(w, "‣ SQL Query: %s;\n", colorize(output.SQLSegments))
}

func printVerdict(w io.Writer, valid bool) {
	if valid {
		color.New(color.FgGreen).Fprintln(w, "Valid query!")
		return
	}
	color.New(color.FgRed).Fprintln(w, "Invalid query, see above warnings for issues!")
}
