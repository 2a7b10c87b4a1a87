package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/shibukawa/eaql/report"
)

// TranspileCmd represents the transpile command
type TranspileCmd struct {
	Queries []string `arg:"" optional:"" help:"Queries to transpile"`
	File    string   `short:"f" help:"Markdown document with eaql code blocks" type:"path"`
	Format  string   `help:"Output format: text, json or yaml (default from config)"`
}

// Run prints the SQL of every query.
func (cmd *TranspileCmd) Run(ctx *Context) error {
	config, engine, err := ctx.setup()
	if err != nil {
		return err
	}

	format, err := resolveFormat(cmd.Format, config)
	if err != nil {
		return err
	}

	queries, _, err := collectQueries(cmd.Queries, cmd.File)
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
		for _, result := range results {
			if result.Valid {
				fmt.Fprintln(ctx.Out, result.SQL)
			} else {
				color.New(color.FgRed).Fprintf(ctx.Out, "-- %s: %s\n", result.Name, result.Error)
			}
		}
	}
	if err != nil {
		return err
	}

	if failures := report.Failures(results); failures > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidQueries, failures, len(results))
	}
	return nil
}
