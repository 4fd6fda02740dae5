package http

import (
	"strings"
	"time"

	"autonomous-barman/internal/bar"
	"autonomous-barman/internal/intent"
	"autonomous-barman/internal/model"
	"autonomous-barman/pkg/response"
)

// --- Request DTOs ---

type turnReq struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatReq struct {
	Message             string    `json:"message"`
	ConversationHistory []turnReq `json:"conversationHistory"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errMessageRequired
	}
	return nil
}

func (r chatReq) toInput() bar.ChatInput {
	history := make([]model.ConversationTurn, 0, len(r.ConversationHistory))
	for _, t := range r.ConversationHistory {
		role := model.RoleUser
		if t.Role == string(model.RoleAssistant) {
			role = model.RoleAssistant
		}
		history = append(history, model.ConversationTurn{Role: role, Content: t.Content})
	}
	return bar.ChatInput{
		Message: r.Message,
		History: history,
	}
}

// --- Response DTOs ---

type intentResp struct {
	Kind     intent.Kind    `json:"kind"`
	RecipeID string         `json:"recipeId,omitempty"`
	Rule     string         `json:"rule,omitempty"`
	Outcome  intent.Outcome `json:"outcome,omitempty"`
}

type chatResp struct {
	Text             string                  `json:"text"`
	ShouldPrepare    bool                    `json:"shouldPrepare"`
	Recipe           *model.Recipe           `json:"recipe"`
	PourPlan         *model.PourPlan         `json:"pourPlan"`
	ControllerResult *model.ControllerResult `json:"controllerResult"`
	Intent           intentResp              `json:"intent"`
}

func (h *handler) newChatResp(out bar.ChatOutput) chatResp {
	return chatResp{
		Text:             out.Text,
		ShouldPrepare:    out.ShouldPrepare,
		Recipe:           out.Recipe,
		PourPlan:         out.PourPlan,
		ControllerResult: out.ControllerResult,
		Intent: intentResp{
			Kind:     out.Intent.Kind,
			RecipeID: out.Intent.RecipeID,
			Rule:     out.Intent.Rule,
			Outcome:  out.Intent.Outcome,
		},
	}
}

type ingredientResp struct {
	Ingredient string  `json:"ingredient"`
	Label      string  `json:"label"`
	Emoji      string  `json:"emoji,omitempty"`
	ML         float64 `json:"ml"`
	Available  bool    `json:"available"`
}

type cocktailResp struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	TotalML     float64          `json:"total_ml"`
	Available   bool             `json:"available"`
	Ingredients []ingredientResp `json:"ingredients"`
}

type listCocktailsResp struct {
	Cocktails []cocktailResp `json:"cocktails"`
}

func (h *handler) newListCocktailsResp(out bar.ListCocktailsOutput) listCocktailsResp {
	cocktails := make([]cocktailResp, len(out.Cocktails))
	for i, c := range out.Cocktails {
		ings := make([]ingredientResp, len(c.Ingredients))
		for j, ing := range c.Ingredients {
			ings[j] = ingredientResp{
				Ingredient: ing.Ingredient,
				Label:      ing.Label,
				Emoji:      ing.Emoji,
				ML:         ing.ML,
				Available:  ing.Available,
			}
		}
		cocktails[i] = cocktailResp{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			TotalML:     c.TotalML,
			Available:   c.Available,
			Ingredients: ings,
		}
	}
	return listCocktailsResp{Cocktails: cocktails}
}

type dispenserStatusResp struct {
	model.DispenserStatus
	CheckedAt response.DateTime `json:"checked_at"`
}

func (h *handler) newDispenserStatusResp(st model.DispenserStatus, checkedAt time.Time) dispenserStatusResp {
	return dispenserStatusResp{DispenserStatus: st, CheckedAt: response.DateTime(checkedAt)}
}
