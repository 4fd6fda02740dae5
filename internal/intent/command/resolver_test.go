package command

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autonomous-barman/internal/catalog"
	"autonomous-barman/internal/intent"
	"autonomous-barman/pkg/log"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	cat, err := catalog.NewCatalog(catalog.DefaultRecipes(catalog.PortionTasting))
	require.NoError(t, err)
	return New(log.NewNop(), cat)
}

func TestResolve(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name     string
		text     string
		kind     intent.Kind
		recipeID string
		outcome  intent.Outcome
		visible  string
	}{
		{
			name:     "well formed block",
			text:     "¡Marchando un Tinto de Verano! 🍷\n\n```json\n{\"action\": \"PREPARE\", \"cocktail_id\": \"tinto_de_verano\"}\n```",
			kind:     intent.NamedConfirmed,
			recipeID: "tinto_de_verano",
			outcome:  intent.OutcomePrepare,
			visible:  "¡Marchando un Tinto de Verano! 🍷",
		},
		{
			name:     "fence without info string and lowercase action",
			text:     "Sirviendo.\n```\n{\"action\":\"prepare\",\"cocktail_id\":\"FANTA\"}\n```\n¡Salud!",
			kind:     intent.NamedConfirmed,
			recipeID: "fanta",
			outcome:  intent.OutcomePrepare,
			visible:  "Sirviendo.\n\n¡Salud!",
		},
		{
			name:    "unknown id is stripped and ignored",
			text:    "Marchando.\n```json\n{\"action\": \"PREPARE\", \"cocktail_id\": \"mojito\"}\n```",
			kind:    intent.NoIntent,
			outcome: intent.OutcomeUnknownRecipe,
			visible: "Marchando.",
		},
		{
			name:    "malformed json is stripped and never dispenses",
			text:    "Vale.\n```json\n{\"action\": \"PREPARE\", \"cocktail_id\": \n```",
			kind:    intent.NoIntent,
			outcome: intent.OutcomeParseFailure,
			visible: "Vale.",
		},
		{
			name:    "missing cocktail id",
			text:    "Vale.\n```json\n{\"action\": \"PREPARE\"}\n```",
			kind:    intent.NoIntent,
			outcome: intent.OutcomeParseFailure,
			visible: "Vale.",
		},
		{
			name:    "other action",
			text:    "Cancelado.\n```json\n{\"action\": \"CANCEL\", \"cocktail_id\": \"fanta\"}\n```",
			kind:    intent.NoIntent,
			outcome: intent.OutcomeUnsupportedAction,
			visible: "Cancelado.",
		},
		{
			name: "two blocks are ambiguous",
			text: "Dos.\n```json\n{\"action\": \"PREPARE\", \"cocktail_id\": \"fanta\"}\n```\n" +
				"```json\n{\"action\": \"PREPARE\", \"cocktail_id\": \"sangria\"}\n```",
			kind:    intent.NoIntent,
			outcome: intent.OutcomeMultipleBlocks,
			visible: "Dos.",
		},
		{
			name:     "capitalized info string",
			text:     "Marchando.\n```Json\n{\"action\":\"PREPARE\",\"cocktail_id\":\"fanta\"}\n```",
			kind:     intent.NamedConfirmed,
			recipeID: "fanta",
			outcome:  intent.OutcomePrepare,
			visible:  "Marchando.",
		},
		{
			name:    "reply cut before the closing fence",
			text:    "Marchando.\n```json\n{\"action\":\"PREPARE\",\"cocktail_id\":\"fanta\"}",
			kind:    intent.NoIntent,
			outcome: intent.OutcomeParseFailure,
			visible: "Marchando.",
		},
		{
			name:    "reply cut inside the json",
			text:    "Marchando.\n```JSON\n{\"action\": \"PREP",
			kind:    intent.NoIntent,
			outcome: intent.OutcomeParseFailure,
			visible: "Marchando.",
		},
		{
			name:    "object without fence",
			text:    "Marchando una Fanta. {\"action\": \"PREPARE\", \"cocktail_id\": \"fanta\"}",
			kind:    intent.NoIntent,
			outcome: intent.OutcomeParseFailure,
			visible: "Marchando una Fanta.",
		},
		{
			name:    "no block",
			text:    "¿Te apetece un Tinto de Verano o una Sangría?",
			kind:    intent.NoIntent,
			outcome: intent.OutcomeNone,
			visible: "¿Te apetece un Tinto de Verano o una Sangría?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Resolve(context.Background(), intent.Input{UserText: "ignored", ModelText: tt.text})
			assert.Equal(t, tt.kind, res.Kind)
			assert.Equal(t, tt.recipeID, res.RecipeID)
			assert.Equal(t, tt.outcome, res.Outcome)
			assert.Equal(t, tt.visible, res.VisibleText)
			assert.NotContains(t, res.VisibleText, "```")
			assert.NotContains(t, res.VisibleText, `"action"`)
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	r := newTestResolver(t)

	text := "Listo.\n" + Format("sunset_mix")
	assert.True(t, strings.HasPrefix(Format("x"), "```json\n"))

	res := r.Resolve(context.Background(), intent.Input{ModelText: text})
	assert.True(t, res.Confirmed())
	assert.Equal(t, "sunset_mix", res.RecipeID)
	assert.Equal(t, "Listo.", res.VisibleText)
	assert.Equal(t, intent.StrategyCommand, r.Strategy())
}
