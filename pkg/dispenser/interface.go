package dispenser

import "context"

// IDispenser talks to the beverage controller.
// Implementations are safe for concurrent use and never retry.
type IDispenser interface {
	// Dispense posts a pour plan. Non-2xx answers return *StatusError, a non-JSON
	// body returns ErrMalformedBody.
	Dispense(ctx context.Context, plan any) (*Reply, error)

	// Status reports the controller queue.
	Status(ctx context.Context) (*Status, error)

	// Health pings the controller.
	Health(ctx context.Context) (*Health, error)

	// Endpoint is the URL pour plans are posted to.
	Endpoint() string

	Close() error
}

// New creates a controller client.
func New(cfg Config) (IDispenser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return newClient(cfg), nil
}
