package bar

import (
	"context"

	"autonomous-barman/internal/model"
)

// UseCase defines the business logic interface for the bar domain.
type UseCase interface {
	// Chat answers one user message and, when the order is confirmed, pours it.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// ListCocktails returns the menu in presentation order.
	ListCocktails(ctx context.Context) ListCocktailsOutput

	// DispenserStatus reports the controller queue and liveness.
	DispenserStatus(ctx context.Context) model.DispenserStatus
}
