package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shibukawa/eaql/inspect"
)

// InspectCmd represents the inspect command
type InspectCmd struct {
	Query  string `arg:"" help:"Query to inspect"`
	Format string `help:"Output format: tree, json or csv" default:"tree" enum:"tree,json,csv"`
}

// Run prints the parse tree or a summary of the query.
func (cmd *InspectCmd) Run(ctx *Context) error {
	config, engine, err := ctx.setup()
	if err != nil {
		return err
	}

	if cmd.Format == "" || cmd.Format == "tree" {
		q, err := engine.ProcessQuery(cmd.Query)
		if err != nil {
			return err
		}
		out, err := inspect.Render(q)
		if err != nil {
			return err
		}
		fmt.Fprint(ctx.Out, out)
		return nil
	}

	res, err := inspect.Inspect(strings.NewReader(cmd.Query), inspect.InspectOptions{
		CaseInsensitive: config.Keywords.CaseInsensitive,
	})
	if err != nil {
		return err
	}

	switch cmd.Format {
	case "json":
		encoder := json.NewEncoder(ctx.Out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(res)
	case "csv":
		csvb, err := inspect.ColumnsCSV(res, true)
		if err != nil {
			return err
		}
		_, err = ctx.Out.Write(csvb)
		return err
	}
	return fmt.Errorf("%w: '%s': must be one of tree, json, csv", ErrInvalidFormat, cmd.Format)
}
