package pattern

import (
	"context"

	"autonomous-barman/internal/intent"
)

// Resolve implements intent.Resolver. Only the user text is read; the model text is
// passed back untouched as the visible text.
func (r *Resolver) Resolve(ctx context.Context, in intent.Input) intent.Result {
	m := newMessage(in.UserText)

	for _, rl := range r.rules {
		d, ok := rl.apply(m)
		if !ok {
			continue
		}
		r.l.Debugf(ctx, "pattern.Resolve: rule=%s kind=%s recipe=%q", rl.name, d.kind, d.recipeID)
		return intent.Result{
			Kind:        d.kind,
			RecipeID:    d.recipeID,
			Rule:        rl.name,
			VisibleText: in.ModelText,
		}
	}

	r.l.Debugf(ctx, "pattern.Resolve: no rule matched %q", m.clean)
	return intent.Result{
		Kind:        intent.NoIntent,
		Rule:        RuleNone,
		VisibleText: in.ModelText,
	}
}
