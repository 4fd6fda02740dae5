package catalog

import (
	"fmt"

	"autonomous-barman/internal/model"
	"autonomous-barman/pkg/textnorm"
)

// Registry maps ingredients to the pump channel that dispenses them.
type Registry struct {
	channels []model.PumpChannel
}

// NewRegistry validates channels. Each ingredient may be bound to at most one channel.
func NewRegistry(channels []model.PumpChannel) (*Registry, error) {
	seenID := make(map[string]bool, len(channels))
	seenIngredient := make(map[string]string, len(channels))

	out := make([]model.PumpChannel, 0, len(channels))
	for _, ch := range channels {
		if ch.ID == "" || ch.Ingredient == "" {
			return nil, fmt.Errorf("%w: id and ingredient are required", ErrInvalidChannel)
		}
		if ch.FlowRate <= 0 {
			return nil, fmt.Errorf("%w: %s flow rate must be positive", ErrInvalidChannel, ch.ID)
		}
		if seenID[ch.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateChannel, ch.ID)
		}
		key := textnorm.Key(ch.Ingredient)
		if other, ok := seenIngredient[key]; ok {
			return nil, fmt.Errorf("%w: %s on %s and %s", ErrDuplicateIngredient, ch.Ingredient, other, ch.ID)
		}
		seenID[ch.ID] = true
		seenIngredient[key] = ch.ID
		out = append(out, ch)
	}

	return &Registry{channels: out}, nil
}

// ChannelFor returns the first channel bound to ingredient.
func (r *Registry) ChannelFor(ingredient string) (model.PumpChannel, bool) {
	key := textnorm.Key(ingredient)
	for _, ch := range r.channels {
		if textnorm.Key(ch.Ingredient) == key {
			return ch, true
		}
	}
	return model.PumpChannel{}, false
}

// Channels returns the channels in declaration order.
func (r *Registry) Channels() []model.PumpChannel {
	out := make([]model.PumpChannel, len(r.channels))
	copy(out, r.channels)
	return out
}

// Ingredients returns the provisioned ingredient names in channel order.
func (r *Registry) Ingredients() []string {
	out := make([]string, len(r.channels))
	for i, ch := range r.channels {
		out[i] = ch.Ingredient
	}
	return out
}
