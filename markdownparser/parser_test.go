package markdownparser

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestExtractQueries(t *testing.T) {
	markdown := "# Sales queries\n" +
		"\n" +
		"## Orders\n" +
		"\n" +
		"```eaql\n" +
		"get all from orders then limit 5;\n" +
		"\n" +
		"get id from orders where price > 10;\n" +
		"```\n" +
		"\n" +
		"```sql\n" +
		"SELECT 1;\n" +
		"```\n" +
		"\n" +
		"## Databases\n" +
		"\n" +
		"```eaql\n" +
		"show databases!\n" +
		"```\n"

	queries, err := ExtractQueries(strings.NewReader(markdown))
	assert.NoError(t, err)
	assert.Equal(t, []QueryBlock{
		{Heading: "Orders", Line: 6, Query: "get all from orders then limit 5;"},
		{Heading: "Orders", Line: 8, Query: "get id from orders where price > 10;"},
		{Heading: "Databases", Line: 18, Query: "show databases!"},
	}, queries)
}

func TestParseTitle(t *testing.T) {
	t.Run("from heading", func(t *testing.T) {
		document, err := Parse(strings.NewReader("# Report\n\n```eaql\nshow databases;\n```\n"))
		assert.NoError(t, err)
		assert.Equal(t, "Report", document.Title)
		assert.Equal(t, 1, len(document.Queries))
		assert.Equal(t, "Report", document.Queries[0].Heading)
	})

	t.Run("from front matter", func(t *testing.T) {
		markdown := "---\ntitle: Nightly checks\nowner: data\n---\n# Ignored\n\n```eaql\nshow databases;\n```\n"
		document, err := Parse(strings.NewReader(markdown))
		assert.NoError(t, err)
		assert.Equal(t, "Nightly checks", document.Title)
		assert.Equal(t, "data", document.Metadata["owner"])
		assert.Equal(t, 8, document.Queries[0].Line)
	})
}

func TestParseInfoString(t *testing.T) {
	markdown := "```EAQL title=check\nget all from t;\n```\n\n```eaqlx\nget all from u;\n```\n"
	queries, err := ExtractQueries(strings.NewReader(markdown))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(queries))
	assert.Equal(t, "get all from t;", queries[0].Query)
	assert.Equal(t, "", queries[0].Heading)
}

func TestExtractQueriesErrors(t *testing.T) {
	t.Run("no queries", func(t *testing.T) {
		_, err := ExtractQueries(strings.NewReader("# Empty\n\ntext only\n"))
		assert.IsError(t, err, ErrNoQueries)
	})

	t.Run("unterminated front matter", func(t *testing.T) {
		_, err := ExtractQueries(strings.NewReader("---\ntitle: x\n"))
		assert.IsError(t, err, ErrInvalidFrontMatter)
	})

	t.Run("broken front matter", func(t *testing.T) {
		_, err := ExtractQueries(strings.NewReader("---\nkey: [unclosed\n---\n"))
		assert.IsError(t, err, ErrInvalidFrontMatter)
	})
}
