package usecase

import (
	"context"

	"autonomous-barman/internal/bar"
	"autonomous-barman/internal/catalog"
	"autonomous-barman/internal/model"
)

// ListCocktails returns the menu in declaration order with pump availability.
func (uc *implUseCase) ListCocktails(ctx context.Context) bar.ListCocktailsOutput {
	recipes := uc.cat.All()
	out := bar.ListCocktailsOutput{Cocktails: make([]bar.Cocktail, 0, len(recipes))}

	for _, r := range recipes {
		c := bar.Cocktail{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Available:   true,
			Ingredients: make([]bar.CocktailIngredient, 0, len(r.Ingredients)),
		}
		for _, ing := range r.Ingredients {
			_, ok := uc.reg.ChannelFor(ing.Ingredient)
			c.Ingredients = append(c.Ingredients, bar.CocktailIngredient{
				Ingredient: ing.Ingredient,
				Label:      label(ing.Ingredient),
				Emoji:      catalog.IngredientEmoji[ing.Ingredient],
				ML:         ing.ML,
				Available:  ok,
			})
			c.TotalML += ing.ML
			c.Available = c.Available && ok
		}
		out.Cocktails = append(out.Cocktails, c)
	}

	return out
}

// DispenserStatus proxies the controller status endpoints.
func (uc *implUseCase) DispenserStatus(ctx context.Context) model.DispenserStatus {
	ctx, span := uc.tracer.Start(ctx, "bar.DispenserStatus")
	defer span.End()

	return uc.dispatcher.Status(ctx)
}
