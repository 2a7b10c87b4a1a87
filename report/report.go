// Package report writes the results of batch runs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"
)

// Result is the outcome of one query.
type Result struct {
	Name  string `json:"name" yaml:"name"`
	Query string `json:"query" yaml:"query"`
	SQL   string `json:"sql,omitempty" yaml:"sql,omitempty"`
	Echo  string `json:"echo,omitempty" yaml:"echo,omitempty"`
	Valid bool   `json:"valid" yaml:"valid"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failures counts the invalid results.
func Failures(results []Result) int {
	count := 0
	for _, result := range results {
		if !result.Valid {
			count++
		}
	}
	return count
}

// WriteJUnit writes results as a JUnit XML report with one test case per
// query.
func WriteJUnit(w io.Writer, suite string, results []Result) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	failures := strconv.Itoa(Failures(results))
	tests := strconv.Itoa(len(results))

	suites := doc.CreateElement("testsuites")
	suites.CreateAttr("tests", tests)
	suites.CreateAttr("failures", failures)

	testSuite := suites.CreateElement("testsuite")
	testSuite.CreateAttr("name", suite)
	testSuite.CreateAttr("tests", tests)
	testSuite.CreateAttr("failures", failures)

	for _, result := range results {
		testCase := testSuite.CreateElement("testcase")
		testCase.CreateAttr("name", result.Name)
		testCase.CreateAttr("classname", suite)

		if result.Valid {
			output := testCase.CreateElement("system-out")
			output.SetText(result.SQL)
			continue
		}

		failure := testCase.CreateElement("failure")
		failure.CreateAttr("message", result.Error)
		failure.CreateAttr("type", "InvalidQuery")
		failure.SetText(result.Query)
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write junit report: %w", err)
	}
	return nil
}

// WriteJSON writes results as an indented JSON array.
func WriteJSON(w io.Writer, results []Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to write json report: %w", err)
	}
	return nil
}

// WriteYAML writes results as a YAML sequence.
func WriteYAML(w io.Writer, results []Result) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to write yaml report: %w", err)
	}
	return encoder.Close()
}
