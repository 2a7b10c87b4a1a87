package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shibukawa/eaql"
	"github.com/shibukawa/eaql/markdownparser"
	"github.com/shibukawa/eaql/report"
)

type namedQuery struct {
	Name  string
	Query string
}

// collectQueries gathers the queries of a batch run. It also returns the
// suite name used in reports.
func collectQueries(args []string, file string) ([]namedQuery, string, error) {
	var queries []namedQuery
	suite := "eaql"

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open %s: %w", file, err)
		}
		defer f.Close()

		document, err := markdownparser.Parse(f)
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse %s: %w", file, err)
		}

		suite = file
		if document.Title != "" {
			suite = document.Title
		}
		for _, block := range document.Queries {
			name := "line " + strconv.Itoa(block.Line)
			if block.Heading != "" {
				name = block.Heading + " (" + name + ")"
			}
			queries = append(queries, namedQuery{Name: name, Query: block.Query})
		}
	}

	for i, arg := range args {
		queries = append(queries, namedQuery{Name: "query " + strconv.Itoa(i+1), Query: arg})
	}

	if len(queries) == 0 {
		return nil, "", ErrNoQueries
	}
	return queries, suite, nil
}

// runBatch transpiles every query. Failures are recorded, not returned.
func runBatch(engine *eaql.Engine, queries []namedQuery) []report.Result {
	results := make([]report.Result, 0, len(queries))
	for _, q := range queries {
		result := report.Result{Name: q.Name, Query: q.Query}
		output, err := engine.Reduce(q.Query)
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Valid = true
			result.SQL = output.SQL + ";"
			result.Echo = output.Echo
		}
		results = append(results, result)
	}
	return results
}

func resolveFormat(format string, config *eaql.Config) (string, error) {
	if format == "" {
		format = config.Output.Format
	}
	switch format {
	case "text", "json", "yaml":
		return format, nil
	}
	return "", fmt.Errorf("%w: '%s': must be one of text, json, yaml", ErrInvalidFormat, format)
}

func writeJUnit(path, suite string, results []report.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create junit report: %w", err)
	}
	if err := report.WriteJUnit(f, suite, results); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close junit report: %w", err)
	}
	return nil
}
