package model

// Recipe is a drink the bar knows how to pour.
type Recipe struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
}

// Ingredient is one line of a recipe, in pouring order.
type Ingredient struct {
	Ingredient string  `json:"ingredient" yaml:"ingredient"`
	ML         float64 `json:"ml" yaml:"ml"`
}

// IngredientNames returns the ingredient keys in recipe order.
func (r Recipe) IngredientNames() []string {
	names := make([]string, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		names[i] = ing.Ingredient
	}
	return names
}
