// Package command resolves orders from a command block the model appends to its reply.
//
// The block is a fenced JSON object:
//
//	```json
//	{"action": "PREPARE", "cocktail_id": "tinto_de_verano"}
//	```
//
// Blocks are always removed from the text shown to the user. A block cut off before its
// closing fence, or an object written with no fence, is removed too and counts as a parse
// failure. Only a single well-formed PREPARE block naming a known recipe confirms an order;
// everything else is NoIntent.
package command

import (
	"context"
	"strings"

	"autonomous-barman/internal/catalog"
	"autonomous-barman/internal/intent"
	"autonomous-barman/pkg/log"
)

// Compile-time interface check.
var _ intent.Resolver = (*Resolver)(nil)

// Resolver reads the model reply.
type Resolver struct {
	l   log.Logger
	cat *catalog.Catalog
}

// New creates a command-block resolver over cat.
func New(l log.Logger, cat *catalog.Catalog) *Resolver {
	return &Resolver{l: l, cat: cat}
}

// Strategy implements intent.Resolver.
func (r *Resolver) Strategy() intent.Strategy {
	return intent.StrategyCommand
}

// Resolve implements intent.Resolver.
func (r *Resolver) Resolve(ctx context.Context, in intent.Input) intent.Result {
	blocks, visible := extract(in.ModelText)

	res := intent.Result{
		Kind:        intent.NoIntent,
		Outcome:     intent.OutcomeNone,
		Rule:        "command-block",
		VisibleText: visible,
	}

	switch {
	case len(blocks) == 0:
		return res

	case len(blocks) > 1:
		res.Outcome = intent.OutcomeMultipleBlocks
		r.l.Warnf(ctx, "command.Resolve: %d command blocks in one reply, ignoring all", len(blocks))
		return res
	}

	b := blocks[0]
	if b.err != nil {
		res.Outcome = intent.OutcomeParseFailure
		r.l.Warnf(ctx, "command.Resolve: unparseable command block %q: %v", b.raw, b.err)
		return res
	}

	if !strings.EqualFold(strings.TrimSpace(b.payload.Action), ActionPrepare) {
		res.Outcome = intent.OutcomeUnsupportedAction
		r.l.Warnf(ctx, "command.Resolve: unsupported action %q", b.payload.Action)
		return res
	}

	rec, ok := r.cat.Get(b.payload.CocktailID)
	if !ok {
		res.Outcome = intent.OutcomeUnknownRecipe
		r.l.Warnf(ctx, "command.Resolve: unknown cocktail_id %q", b.payload.CocktailID)
		return res
	}

	res.Kind = intent.NamedConfirmed
	res.RecipeID = rec.ID
	res.Outcome = intent.OutcomePrepare
	r.l.Infof(ctx, "command.Resolve: PREPARE %s", rec.ID)
	return res
}
