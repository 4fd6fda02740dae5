package catalog

import (
	"fmt"

	"autonomous-barman/internal/model"
)

// PortionMode selects the volume table every recipe is poured with.
type PortionMode string

const (
	PortionTasting PortionMode = "tasting"
	PortionFull    PortionMode = "full"
)

// ParsePortionMode accepts "tasting" or "full"; empty means tasting.
func ParsePortionMode(s string) (PortionMode, error) {
	switch PortionMode(s) {
	case "", PortionTasting:
		return PortionTasting, nil
	case PortionFull:
		return PortionFull, nil
	default:
		return "", fmt.Errorf("unknown portion mode %q", s)
	}
}

// DefaultChannels is the six-pump rig the bar ships with.
func DefaultChannels() []model.PumpChannel {
	return []model.PumpChannel{
		{ID: "pump_1", Ingredient: "vino_tinto", FlowRate: 10, Address: 17},
		{ID: "pump_2", Ingredient: "vino_blanco", FlowRate: 10, Address: 27},
		{ID: "pump_3", Ingredient: "sangria", FlowRate: 10, Address: 22},
		{ID: "pump_4", Ingredient: "vino_rosa_espumoso", FlowRate: 10, Address: 23},
		{ID: "pump_5", Ingredient: "fanta", FlowRate: 10, Address: 24},
		{ID: "pump_6", Ingredient: "coca_cola", FlowRate: 10, Address: 25},
	}
}

// houseMenu is the menu in presentation order, with both volume tables.
var houseMenu = []fileRecipe{
	{ID: "tinto_de_verano", Name: "Tinto de Verano", Description: "Vino tinto refrescante con Fanta",
		Ingredients: []fileIngredient{{"vino_tinto", 45, 120}, {"fanta", 45, 120}}},
	{ID: "sangria_preparada", Name: "Sangría Preparada", Description: "La clásica sangría con un toque cítrico y dulce",
		Ingredients: []fileIngredient{{"sangria", 50, 150}, {"fanta", 25, 75}}},
	{ID: "sangria", Name: "Sangría", Description: "Sangría sola",
		Ingredients: []fileIngredient{{"sangria", 50, 150}}},
	{ID: "vino_blanco_spritz", Name: "Vino Blanco Spritz", Description: "Vino blanco con un toque dulce de Fanta",
		Ingredients: []fileIngredient{{"vino_blanco", 45, 120}, {"fanta", 30, 80}}},
	{ID: "sunset_mix", Name: "Sunset Mix", Description: "Mezcla frutal de vino rosa, fanta y naranja",
		Ingredients: []fileIngredient{{"vino_rosa_espumoso", 30, 90}, {"fanta", 30, 90}}},
	{ID: "vino_tinto", Name: "Vino Tinto", Description: "Vino tinto",
		Ingredients: []fileIngredient{{"vino_tinto", 600, 600}}},
	{ID: "vino_rosa_espumoso", Name: "Vino Rosa Espumoso", Description: "Vino rosa espumoso",
		Ingredients: []fileIngredient{{"vino_rosa_espumoso", 45, 150}}},
	{ID: "vino_blanco", Name: "Vino Blanco", Description: "Vino blanco",
		Ingredients: []fileIngredient{{"vino_blanco", 45, 150}}},
	{ID: "coca_cola", Name: "Coca-Cola", Description: "Coca-Cola",
		Ingredients: []fileIngredient{{"coca_cola", 45, 330}}},
	{ID: "fanta", Name: "Fanta", Description: "Fanta",
		Ingredients: []fileIngredient{{"fanta", 45, 330}}},
}

// DefaultRecipes is the house menu poured with the given volume table.
func DefaultRecipes(mode PortionMode) []model.Recipe {
	return toRecipes(houseMenu, mode)
}

// IngredientEmoji decorates ingredient names in prompts and menus.
var IngredientEmoji = map[string]string{
	"vino_tinto":         "🍷",
	"vino_blanco":        "🥂",
	"sangria":            "🍹",
	"vino_rosa_espumoso": "🍾",
	"fanta":              "🍊",
	"coca_cola":          "🥤",
}
