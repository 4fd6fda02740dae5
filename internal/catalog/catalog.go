package catalog

import (
	"fmt"

	"autonomous-barman/internal/model"
	"autonomous-barman/pkg/textnorm"
)

// Catalog is the read-only, ordered set of recipes the bar serves.
// It is built once at startup and shared by reference.
type Catalog struct {
	recipes []model.Recipe
	byKey   map[string]int
}

// NewCatalog validates recipes and keeps them in declaration order.
func NewCatalog(recipes []model.Recipe) (*Catalog, error) {
	if len(recipes) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		recipes: make([]model.Recipe, 0, len(recipes)),
		byKey:   make(map[string]int, len(recipes)),
	}

	for _, r := range recipes {
		if err := validateRecipe(r); err != nil {
			return nil, err
		}
		key := textnorm.Key(r.ID)
		if _, exists := c.byKey[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRecipe, r.ID)
		}

		ings := make([]model.Ingredient, len(r.Ingredients))
		copy(ings, r.Ingredients)
		r.Ingredients = ings

		c.byKey[key] = len(c.recipes)
		c.recipes = append(c.recipes, r)
	}

	return c, nil
}

func validateRecipe(r model.Recipe) error {
	if r.ID == "" || r.Name == "" {
		return fmt.Errorf("%w: id and name are required", ErrInvalidRecipe)
	}
	if len(r.Ingredients) == 0 {
		return fmt.Errorf("%w: %s has no ingredients", ErrInvalidRecipe, r.ID)
	}
	for _, ing := range r.Ingredients {
		if ing.Ingredient == "" || ing.ML <= 0 {
			return fmt.Errorf("%w: %s has a non-positive volume for %q", ErrInvalidRecipe, r.ID, ing.Ingredient)
		}
	}
	return nil
}

// Get looks a recipe up by id, ignoring case, accents and '_' vs ' '.
func (c *Catalog) Get(id string) (model.Recipe, bool) {
	i, ok := c.byKey[textnorm.Key(id)]
	if !ok {
		return model.Recipe{}, false
	}
	return c.recipes[i], true
}

// All returns the recipes in declaration order.
func (c *Catalog) All() []model.Recipe {
	out := make([]model.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// Len returns the number of recipes.
func (c *Catalog) Len() int {
	return len(c.recipes)
}
