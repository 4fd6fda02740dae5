package bar

import (
	"autonomous-barman/internal/intent"
	"autonomous-barman/internal/model"
)

// ChatInput is one chat turn. History is the full prior conversation, owned by the caller.
type ChatInput struct {
	Message string
	History []model.ConversationTurn
}

// ChatOutput is the decision returned to the UI.
// Recipe, PourPlan and ControllerResult are set only when an order was attempted.
type ChatOutput struct {
	Text             string
	ShouldPrepare    bool
	Recipe           *model.Recipe
	PourPlan         *model.PourPlan
	ControllerResult *model.ControllerResult
	Intent           IntentInfo
}

// IntentInfo explains how the message was read.
type IntentInfo struct {
	Kind     intent.Kind
	RecipeID string
	Rule     string
	Outcome  intent.Outcome
}

// ListCocktailsOutput is the menu.
type ListCocktailsOutput struct {
	Cocktails []Cocktail
}

// Cocktail is a menu entry. Available is false when any ingredient lacks a pump.
type Cocktail struct {
	ID          string
	Name        string
	Description string
	TotalML     float64
	Available   bool
	Ingredients []CocktailIngredient
}

// CocktailIngredient is one line of a menu entry.
type CocktailIngredient struct {
	Ingredient string
	Label      string
	Emoji      string
	ML         float64
	Available  bool
}
