// Package eaql compiles EAQL, a controlled-English query language, into SQL.
//
//	sql, err := eaql.Transpile("get all from orders where price >= 2.43 then limit 5;")
//	// SELECT * FROM orders WHERE price >= 2.43 LIMIT 5;
package eaql

import (
	"fmt"
	"slices"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/shibukawa/eaql/parser"
	"github.com/shibukawa/eaql/tokenizer"
	"github.com/shibukawa/eaql/transpiler"
)

// Logger receives diagnostics. *logrus.Logger and *logrus.Entry satisfy it.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type discardLogger struct{}

func (discardLogger) Debugf(string, ...any) {}
func (discardLogger) Warnf(string, ...any)  {}

// Engine runs the query pipeline. It is safe for concurrent use.
type Engine struct {
	logger    Logger
	options   tokenizer.Options
	cacheSize int
	cache     *lru.Cache[string, transpiler.Output]
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sends diagnostics to logger.
func WithLogger(logger Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTokenizerOptions changes how keywords are recognized.
func WithTokenizerOptions(options tokenizer.Options) Option {
	return func(e *Engine) {
		e.options = options
	}
}

// WithCache memoizes up to size generated queries. Zero disables the cache.
func WithCache(size int) Option {
	return func(e *Engine) {
		e.cacheSize = size
	}
}

// NewEngine creates an engine. Without options it logs nothing and caches
// nothing.
func NewEngine(options ...Option) (*Engine, error) {
	e := &Engine{logger: discardLogger{}}
	for _, option := range options {
		option(e)
	}
	if e.cacheSize > 0 {
		cache, err := lru.New[string, transpiler.Output](e.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create query cache: %w", err)
		}
		e.cache = cache
	}
	return e, nil
}

// NewEngineFromConfig creates an engine configured from config.
func NewEngineFromConfig(config *Config, logger Logger) (*Engine, error) {
	options := []Option{
		WithLogger(logger),
		WithTokenizerOptions(tokenizer.Options{CaseInsensitive: config.Keywords.CaseInsensitive}),
	}
	if config.Cache.IsEnabled() {
		options = append(options, WithCache(config.Cache.Size))
	}
	return NewEngine(options...)
}

var defaultEngine = &Engine{logger: discardLogger{}}

// ProcessQuery parses a query with the default engine.
func ProcessQuery(query string) (*parser.Query, error) {
	return defaultEngine.ProcessQuery(query)
}

// Transpile converts a query to SQL with the default engine.
func Transpile(query string) (string, error) {
	return defaultEngine.Transpile(query)
}

// Validate reports whether a query parses with the default engine.
func Validate(query string) bool {
	return defaultEngine.Validate(query)
}

// ProcessQuery tokenizes and parses a query. Problems are logged at warning
// level and returned.
func (e *Engine) ProcessQuery(query string) (*parser.Query, error) {
	e.logger.Debugf("received query string -> %s", strconv.Quote(query))

	tokens, lexErrors := tokenizer.Tokenize(query, e.options)
	for _, err := range lexErrors {
		e.logger.Warnf("lexer: %v", err)
	}
	e.logger.Debugf("tokens -> %v", tokens)

	if err := CheckDelimiter(tokens); err != nil {
		e.logger.Warnf("%v", err)
		return nil, err
	}

	q, err := parser.Parse(tokens)
	if err != nil {
		e.logger.Warnf("%v", err)
		return nil, err
	}
	e.logger.Debugf("parsed query -> %T %s", q.Statement, strconv.Quote(q.Source))
	return q, nil
}

// CheckDelimiter rejects a token stream that is empty or does not end with
// an end-of-query marker. It runs before parsing so that a missing '.', '!'
// or ';' is reported as such.
func CheckDelimiter(tokens []tokenizer.Token) error {
	if len(tokens) == 0 {
		return ErrEmptyQuery
	}
	if last := tokens[len(tokens)-1]; last.Kind != tokenizer.EndOfQuery {
		return fmt.Errorf("%w: last token was %q", ErrMissingDelimiter, last.Lexeme)
	}
	return nil
}

// Reduce parses a query and returns both the understood part of the query
// and the SQL.
func (e *Engine) Reduce(query string) (transpiler.Output, error) {
	if e.cache != nil {
		if output, ok := e.cache.Get(query); ok {
			e.logger.Debugf("cache hit -> %s", strconv.Quote(query))
			return cloneOutput(output), nil
		}
	}

	q, err := e.ProcessQuery(query)
	if err != nil {
		return transpiler.Output{}, err
	}
	output := transpiler.Generate(q)

	if e.cache != nil {
		e.cache.Add(query, cloneOutput(output))
	}
	return output, nil
}

// Transpile converts a query to a SQL statement terminated by a semicolon.
func (e *Engine) Transpile(query string) (string, error) {
	output, err := e.Reduce(query)
	if err != nil {
		return "", err
	}
	return output.SQL + ";", nil
}

// Validate reports whether a query parses.
func (e *Engine) Validate(query string) bool {
	_, err := e.ProcessQuery(query)
	return err == nil
}

// cloneOutput copies the segment slices so callers never share them with
// the cache.
func cloneOutput(output transpiler.Output) transpiler.Output {
	output.EchoSegments = slices.Clone(output.EchoSegments)
	output.SQLSegments = slices.Clone(output.SQLSegments)
	return output
}
