package intent

import "context"

// Resolver turns chat text into an Intent.
// Implementations are deterministic for identical input and safe for concurrent use.
type Resolver interface {
	Strategy() Strategy
	Resolve(ctx context.Context, in Input) Result
}
