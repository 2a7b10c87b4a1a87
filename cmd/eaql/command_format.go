package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shibukawa/eaql/formatter"
	"github.com/shibukawa/eaql/tokenizer"
)

// FormatCmd represents the format command
type FormatCmd struct {
	Input  string `arg:"" optional:"" help:"Input file: Markdown or one query per line (default: stdin)"`
	Output string `short:"o" help:"Output file (default: stdout for stdin, or overwrite input file)"`
	Check  bool   `short:"c" help:"Check if the input is formatted (exit 1 if not)"`
}

// Run executes the format command
func (cmd *FormatCmd) Run(ctx *Context) error {
	config, _, err := ctx.setup()
	if err != nil {
		return err
	}
	options := tokenizer.Options{CaseInsensitive: config.Keywords.CaseInsensitive}

	if cmd.Input == "" {
		return cmd.format(options, ctx.In, ctx.Out, "<stdin>", ctx.Err)
	}

	input, err := os.Open(cmd.Input)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", cmd.Input, err)
	}
	defer input.Close()

	if cmd.Check {
		return cmd.format(options, input, io.Discard, cmd.Input, ctx.Err)
	}

	target := cmd.Output
	if target == "" {
		target = cmd.Input
	}

	// Write to a temporary file first so the input survives a failure
	tempFile, err := os.CreateTemp(filepath.Dir(target), ".eaql-format-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	err = cmd.format(options, input, tempFile, cmd.Input, ctx.Err)
	if closeErr := tempFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	return os.Rename(tempFile.Name(), target)
}

func (cmd *FormatCmd) format(options tokenizer.Options, reader io.Reader, writer io.Writer, filename string, errOut io.Writer) error {
	input, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var formatted string
	if formatter.IsMarkdownFile(filename) {
		formatted, err = formatter.NewMarkdownFormatter(options).Format(string(input))
	} else {
		formatted, err = formatLines(formatter.NewQueryFormatter(options), string(input))
	}
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", filename, err)
	}

	if cmd.Check {
		if strings.TrimSpace(string(input)) != strings.TrimSpace(formatted) {
			fmt.Fprintf(errOut, "%s is not formatted\n", filename)
			return ErrFileNotFormatted
		}
		return nil
	}

	_, err = writer.Write([]byte(formatted))
	return err
}

// formatLines formats a plain query file, one query per line. Blank lines
// are kept and the first line that does not parse is an error.
func formatLines(queryFormatter *formatter.QueryFormatter, input string) (string, error) {
	var result strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(input))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			formatted, err := queryFormatter.Format(line)
			if err != nil {
				return "", fmt.Errorf("line %d: %w", lineNumber, err)
			}
			line = formatted
		}
		result.WriteString(line)
		result.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return result.String(), nil
}
