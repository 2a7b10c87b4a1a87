package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/shibukawa/eaql/tokenizer"
)

// KeywordsCmd represents the keywords command
type KeywordsCmd struct{}

// Run prints each keyword kind with the words that produce it.
func (cmd *KeywordsCmd) Run(ctx *Context) error {
	byKind := tokenizer.KeywordsByKind()
	for _, kind := range slices.Sorted(maps.Keys(byKind)) {
		fmt.Fprintf(ctx.Out, "%-22s %s\n", kind.String()+":", strings.Join(byKind[kind], ", "))
	}
	return nil
}
