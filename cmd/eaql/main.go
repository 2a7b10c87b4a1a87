package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shibukawa/eaql"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// CLI represents the command-line interface
var CLI struct {
	Config    string       `help:"Configuration file path" default:"eaql.yaml"`
	Verbose   bool         `help:"Enable verbose output" short:"v"`
	Quiet     bool         `help:"Suppress output" short:"q"`
	Repl      ReplCmd      `cmd:"" default:"1" help:"Start an interactive session"`
	Transpile TranspileCmd `cmd:"" help:"Convert EAQL queries to SQL"`
	Validate  ValidateCmd  `cmd:"" help:"Check EAQL queries"`
	Inspect   InspectCmd   `cmd:"" help:"Show the parsed structure of a query"`
	Format    FormatCmd    `cmd:"" help:"Rewrite queries with canonical keywords"`
	Keywords  KeywordsCmd  `cmd:"" help:"List the keywords and their synonyms"`
	Version   VersionCmd   `cmd:"" help:"Show version information"`
}

// setup loads the configuration and builds an engine that logs to ctx.Err.
func (ctx *Context) setup() (*eaql.Config, *eaql.Engine, error) {
	config, err := eaql.LoadConfig(ctx.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	switch config.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	logger, err := ctx.newLogger(config)
	if err != nil {
		return nil, nil, err
	}

	engine, err := eaql.NewEngineFromConfig(config, logger)
	if err != nil {
		return nil, nil, err
	}

	return config, engine, nil
}

func (ctx *Context) newLogger(config *eaql.Config) (*logrus.Entry, error) {
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	switch {
	case ctx.Verbose:
		level = logrus.DebugLevel
	case ctx.Quiet:
		level = logrus.ErrorLevel
	}

	logger := logrus.New()
	logger.SetOutput(ctx.Err)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   color.NoColor,
	})

	return logger.WithField("session", uuid.NewString()), nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("eaql"),
		kong.Description("EAQL: English-like queries compiled to SQL"),
	)

	appCtx := &Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
		In:      os.Stdin,
		Out:     color.Output,
		Err:     color.Error,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
