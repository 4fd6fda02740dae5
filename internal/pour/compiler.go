// Package pour turns a confirmed recipe into a device-ready dosing plan.
package pour

import (
	"math"
	"time"

	"autonomous-barman/internal/model"
)

// ChannelLookup finds the pump for an ingredient. *catalog.Registry satisfies it.
type ChannelLookup interface {
	ChannelFor(ingredient string) (model.PumpChannel, bool)
}

// Compiler builds pour plans. It holds no mutable state.
type Compiler struct {
	channels ChannelLookup
	now      func() time.Time
}

// New creates a Compiler using the wall clock.
func New(channels ChannelLookup) *Compiler {
	return &Compiler{channels: channels, now: time.Now}
}

// NewWithClock creates a Compiler with a fixed clock, for tests and replays.
func NewWithClock(channels ChannelLookup, now func() time.Time) *Compiler {
	return &Compiler{channels: channels, now: now}
}

// Compile builds the plan for recipe. Ingredients with no provisioned channel are
// skipped and add nothing to the total. Two ingredients landing on the same channel
// are summed on it.
func (c *Compiler) Compile(recipe model.Recipe) model.PourPlan {
	plan := model.PourPlan{
		RecipeID:   recipe.ID,
		RecipeName: recipe.Name,
		Pumps:      make(map[string]model.PumpDose, len(recipe.Ingredients)),
		Timestamp:  c.now().UnixMilli(),
	}

	for _, ing := range recipe.Ingredients {
		ch, ok := c.channels.ChannelFor(ing.Ingredient)
		if !ok {
			continue
		}

		dose := plan.Pumps[ch.ID]
		dose.Address = ch.Address
		dose.Ingredient = ch.Ingredient
		dose.ML += ing.ML
		dose.DurationMS = Duration(dose.ML, ch.FlowRate)
		plan.Pumps[ch.ID] = dose

		plan.TotalML += ing.ML
	}

	return plan
}

// Duration is how long a pump at flowRate ml/s runs to deliver ml, in milliseconds.
// It rounds half away from zero and never returns 0 for a positive volume.
func Duration(ml, flowRate float64) int64 {
	if ml <= 0 || flowRate <= 0 {
		return 0
	}
	d := int64(math.Round(ml / flowRate * 1000))
	if d < 1 {
		d = 1
	}
	return d
}
