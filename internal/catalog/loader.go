package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"autonomous-barman/internal/model"
)

// File is the on-disk shape of a catalog override.
type File struct {
	Pumps   []model.PumpChannel `yaml:"pumps"`
	Recipes []fileRecipe        `yaml:"recipes"`
}

type fileRecipe struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Ingredients []fileIngredient `yaml:"ingredients"`
}

// fileIngredient carries the tasting volume in ml and, optionally, the full one.
type fileIngredient struct {
	Ingredient string  `yaml:"ingredient"`
	ML         float64 `yaml:"ml"`
	FullML     float64 `yaml:"full_ml"`
}

func (i fileIngredient) volume(mode PortionMode) float64 {
	if mode == PortionFull && i.FullML > 0 {
		return i.FullML
	}
	return i.ML
}

func toRecipes(in []fileRecipe, mode PortionMode) []model.Recipe {
	out := make([]model.Recipe, len(in))
	for i, r := range in {
		ings := make([]model.Ingredient, len(r.Ingredients))
		for j, ing := range r.Ingredients {
			ings[j] = model.Ingredient{Ingredient: ing.Ingredient, ML: ing.volume(mode)}
		}
		out[i] = model.Recipe{ID: r.ID, Name: r.Name, Description: r.Description, Ingredients: ings}
	}
	return out
}

// Load builds the catalog and registry. An empty path yields the built-in menu.
// A file may override pumps, recipes, or both; missing sections fall back to the defaults.
// Ingredients without full_ml pour their ml volume in both modes.
func Load(path string, mode PortionMode) (*Catalog, *Registry, error) {
	f := File{}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("catalog.Load: %w", err)
		}
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return nil, nil, fmt.Errorf("catalog.Load: decode %s: %w", path, err)
		}
	}

	if len(f.Pumps) == 0 {
		f.Pumps = DefaultChannels()
	}
	if len(f.Recipes) == 0 {
		f.Recipes = houseMenu
	}

	reg, err := NewRegistry(f.Pumps)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog.Load: %w", err)
	}
	cat, err := NewCatalog(toRecipes(f.Recipes, mode))
	if err != nil {
		return nil, nil, fmt.Errorf("catalog.Load: %w", err)
	}

	return cat, reg, nil
}
