package middleware

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"autonomous-barman/pkg/log"
)

const (
	maxClients = 1000
	clientTTL  = 5 * time.Minute
)

// Config tunes the middleware set.
type Config struct {
	RequestsPerMin int
}

type Middleware struct {
	l        log.Logger
	mu       *sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New builds the middleware set. RequestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, cfg Config) Middleware {
	burst := cfg.RequestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return Middleware{
		l:        l,
		mu:       &sync.Mutex{},
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, clientTTL),
		rate:     rate.Limit(float64(cfg.RequestsPerMin) / 60.0),
		burst:    burst,
	}
}
