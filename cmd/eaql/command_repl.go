package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/shibukawa/eaql"
)

// ReplCmd represents the interactive session
type ReplCmd struct {
	Mode     string `help:"Session mode: transpile or validate (default from config)"`
	NoBanner bool   `help:"Do not print the logo on start"`
}

// Run reads one query per line until exit, quit or end of input.
func (cmd *ReplCmd) Run(ctx *Context) error {
	config, engine, err := ctx.setup()
	if err != nil {
		return err
	}

	mode := cmd.Mode
	if mode == "" {
		mode = config.REPL.Mode
	}
	if mode != eaql.ModeTranspile && mode != eaql.ModeValidate {
		return fmt.Errorf("%w: '%s': must be one of transpile, validate", ErrInvalidMode, mode)
	}

	if !ctx.Quiet && !cmd.NoBanner {
		printBanner(ctx.Out)
	}

	prompt := fmt.Sprintf("(%s) %s ", mode, config.REPL.Prompt)
	scanner := bufio.NewScanner(ctx.In)
	for {
		fmt.Fprint(ctx.Out, prompt)
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		if mode == eaql.ModeValidate {
			printVerdict(ctx.Out, engine.Validate(line))
			continue
		}

		output, err := engine.Reduce(line)
		if err != nil {
			printVerdict(ctx.Out, false)
			continue
		}
		printOutput(ctx.Out, output)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	fmt.Fprintln(ctx.Out)
	return nil
}
