package model

import "encoding/json"

// PourPlan is the dosing command sent to the controller.
type PourPlan struct {
	RecipeID   string              `json:"recipe_id"`
	RecipeName string              `json:"recipe_name"`
	Pumps      map[string]PumpDose `json:"pumps"`
	TotalML    float64             `json:"total_ml"`
	Timestamp  int64               `json:"timestamp"` // unix ms
}

// PumpDose is the amount one channel has to deliver.
type PumpDose struct {
	Address    any     `json:"address"`
	Ingredient string  `json:"ingredient"`
	ML         float64 `json:"ml"`
	DurationMS int64   `json:"duration_ms"`
}

// ControllerResult is what came back from the dispenser.
// On success Body holds the controller's JSON verbatim.
type ControllerResult struct {
	Error   bool
	Message string
	Body    json.RawMessage
}

// NewControllerError builds a failed result.
func NewControllerError(message string) ControllerResult {
	return ControllerResult{Error: true, Message: message}
}

type controllerErrorJSON struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// MarshalJSON emits the controller body as-is on success and {error, message} otherwise.
func (r ControllerResult) MarshalJSON() ([]byte, error) {
	if !r.Error && len(r.Body) > 0 {
		return r.Body, nil
	}
	return json.Marshal(controllerErrorJSON{Error: true, Message: r.Message})
}

// DispenserStatus is the controller queue and liveness as seen by the bar.
type DispenserStatus struct {
	Endpoint      string `json:"endpoint"`
	Online        bool   `json:"online"`
	Health        string `json:"health,omitempty"`
	State         string `json:"state,omitempty"`
	QueuedOrders  int    `json:"queued_orders"`
	EstimatedWait string `json:"estimated_wait,omitempty"`
	Error         string `json:"error,omitempty"`
}
