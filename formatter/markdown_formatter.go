package formatter

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shibukawa/eaql/tokenizer"
)

var (
	queryBlockStartRe = regexp.MustCompile("^(\\s*)`{3}(?i:eaql)(\\s.*)?$")
	codeBlockEndRe    = regexp.MustCompile("^(\\s*)`{3}\\s*$")
)

// MarkdownFormatter formats eaql code blocks within Markdown files
type MarkdownFormatter struct {
	queryFormatter *QueryFormatter
}

// NewMarkdownFormatter creates a new Markdown formatter
func NewMarkdownFormatter(options tokenizer.Options) *MarkdownFormatter {
	return &MarkdownFormatter{
		queryFormatter: NewQueryFormatter(options),
	}
}

// Format formats each query line inside eaql code blocks. Lines that do not
// parse are kept as they are.
func (f *MarkdownFormatter) Format(markdown string) (string, error) {
	var result strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(markdown))

	var (
		inQueryBlock bool
		blockIndent  string
	)

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case !inQueryBlock:
			if match := queryBlockStartRe.FindStringSubmatch(line); match != nil {
				inQueryBlock = true
				blockIndent = match[1]
			}
		case codeBlockEndRe.MatchString(line):
			inQueryBlock = false
		case strings.TrimSpace(line) != "":
			if formatted, err := f.queryFormatter.Format(line); err == nil {
				line = blockIndent + formatted
			}
		}

		result.WriteString(line)
		result.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error reading markdown: %w", err)
	}

	formatted := result.String()
	if !strings.HasSuffix(markdown, "\n") {
		formatted = strings.TrimSuffix(formatted, "\n")
	}
	return formatted, nil
}

// FormatFromReader formats eaql code blocks from a reader and writes to a writer
func (f *MarkdownFormatter) FormatFromReader(reader io.Reader, writer io.Writer) error {
	input, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	formatted, err := f.Format(string(input))
	if err != nil {
		return fmt.Errorf("failed to format markdown: %w", err)
	}

	_, err = writer.Write([]byte(formatted))
	return err
}

// IsMarkdownFile checks if a file is a Markdown file
func IsMarkdownFile(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".md"
}
