package model

// PumpChannel is one physical pump on the dispenser.
type PumpChannel struct {
	ID         string  `json:"id" yaml:"id"`
	Ingredient string  `json:"ingredient" yaml:"ingredient"`
	FlowRate   float64 `json:"flow_rate" yaml:"flow_rate"` // ml per second
	// Address is whatever the controller needs to actuate the pump (a GPIO pin on the
	// reference hardware). It is forwarded untouched.
	Address any `json:"address" yaml:"address"`
}
