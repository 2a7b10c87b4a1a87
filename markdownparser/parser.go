// Package markdownparser extracts EAQL queries from Markdown documents.
//
// Queries live in fenced code blocks tagged "eaql", one query per line:
//
//	## Orders
//
//	```eaql
//	get all from orders then limit 5;
//	get id from orders where price > 10;
//	```
package markdownparser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Sentinel errors
var (
	ErrInvalidFrontMatter = errors.New("invalid front matter")
	ErrNoQueries          = errors.New("no eaql code block found")
)

// QueryBlock is one query found in a document.
type QueryBlock struct {
	Heading string // nearest heading above the code block
	Line    int    // 1-based line of the query in the document
	Query   string
}

// Document is a parsed batch document.
type Document struct {
	Title    string
	Metadata map[string]any
	Queries  []QueryBlock
}

// Parse reads a Markdown document. The title comes from the front matter
// "title" key or, failing that, the first level-1 heading.
func Parse(reader io.Reader) (*Document, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	frontMatter, body, lineOffset, err := parseFrontMatter(string(content))
	if err != nil {
		return nil, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
	)
	source := []byte(body)
	doc := md.Parser().Parse(text.NewReader(source))

	document := &Document{Metadata: frontMatter}
	if title, ok := frontMatter["title"].(string); ok {
		document.Title = title
	}

	var heading string
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			heading = extractTextFromNode(node, source)
			if node.Level == 1 && document.Title == "" {
				document.Title = heading
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			if isQueryCodeBlock(node, source) {
				document.Queries = append(document.Queries, extractQueries(node, source, heading, lineOffset)...)
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return document, nil
}

// ExtractQueries returns every query of a Markdown document.
func ExtractQueries(reader io.Reader) ([]QueryBlock, error) {
	document, err := Parse(reader)
	if err != nil {
		return nil, err
	}
	if len(document.Queries) == 0 {
		return nil, ErrNoQueries
	}
	return document.Queries, nil
}

// isQueryCodeBlock checks if a fenced code block is marked as eaql
func isQueryCodeBlock(codeBlock *ast.FencedCodeBlock, content []byte) bool {
	if codeBlock.Info != nil {
		segment := codeBlock.Info.Segment
		info := strings.Fields(string(content[segment.Start:segment.Stop]))
		return len(info) > 0 && strings.EqualFold(info[0], "eaql")
	}
	return false
}

func extractQueries(codeBlock *ast.FencedCodeBlock, content []byte, heading string, lineOffset int) []QueryBlock {
	var queries []QueryBlock
	lines := codeBlock.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		query := strings.TrimSpace(string(content[line.Start:line.Stop]))
		if query == "" {
			continue
		}
		queries = append(queries, QueryBlock{
			Heading: heading,
			Line:    lineOffset + bytes.Count(content[:line.Start], []byte{'\n'}) + 1,
			Query:   query,
		})
	}
	return queries
}

// extractTextFromNode extracts text content from any AST node
func extractTextFromNode(node ast.Node, content []byte) string {
	var result strings.Builder

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch textNode := n.(type) {
		case *ast.Text:
			segment := textNode.Segment
			result.Write(content[segment.Start:segment.Stop])
		case *ast.String:
			result.Write(textNode.Value)
		}

		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(result.String())
}
