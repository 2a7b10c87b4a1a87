package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/shibukawa/eaql/report"
)

// ValidateCmd represents the validate command
type ValidateCmd struct {
	Queries []string `arg:"" optional:"" help:"Queries to validate"`
	File    string   `short:"f" help:"Markdown document with eaql code blocks" type:"path"`
	Format  string   `help:"Output format: text, json or yaml (default from config)"`
	JUnit   string   `name:"junit" help:"Write a JUnit XML report to this path" type:"path"`
}

// Run checks every query and fails when any of them is invalid.
func (cmd *ValidateCmd) Run(ctx *Context) error {
	config, engine, err := ctx.setup()
	if err != nil {
		return err
	}

	format, err := resolveFormat(cmd.Format, config)
	if err != nil {
		return err
	}

	queries, suite, err := collectQueries(cmd.Queries, cmd.File)
	if err != nil {
		return err
	}

	results := runBatch(engine, queries)

	switch format {
	case "json":
		err = report.WriteJSON(ctx.Out, results)
	case "yaml":
		err = report.WriteYAML(ctx.Out, results)
	default:
		if !ctx.Quiet {
			for _, result := range results {
				if result.Valid {
					color.New(color.FgGreen).Fprintf(ctx.Out, "✓ %s\n", result.Name)
				} else {
					color.New(color.FgRed).Fprintf(ctx.Out, "✗ %s: %s\n", result.Name, result.Error)
				}
			}
		}
	}
	if err != nil {
		return err
	}

	if cmd.JUnit != "" {
		if err := writeJUnit(cmd.JUnit, suite, results); err != nil {
			return err
		}
	}

	failures := report.Failures(results)
	if format == "text" && !ctx.Quiet {
		fmt.Fprintf(ctx.Out, "%d queries, %d invalid\n", len(results), failures)
	}
	if failures > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidQueries, failures, len(results))
	}
	return nil
}
