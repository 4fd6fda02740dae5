package dispenser

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingHost   = errors.New("dispenser: host is required")
	ErrMalformedBody = errors.New("dispenser: response body is not JSON")
)

// StatusError is returned when the controller answers outside 2xx.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("dispenser: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("dispenser: HTTP %d: %s", e.StatusCode, e.Body)
}

// Config locates the controller.
type Config struct {
	Host       string
	Port       int
	Path       string
	StatusPath string
	HealthPath string
	Timeout    time.Duration
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Path == "" {
		c.Path = DefaultPath
	}
	if c.StatusPath == "" {
		c.StatusPath = DefaultStatusPath
	}
	if c.HealthPath == "" {
		c.HealthPath = DefaultHealthPath
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Host == "" {
		return ErrMissingHost
	}
	return nil
}

// BaseURL is http://host:port.
func (c Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Host, c.Port)
}

// Reply is a successful controller answer, body kept verbatim.
type Reply struct {
	StatusCode int
	Body       []byte
}

// Status is the controller's queue state.
type Status struct {
	State         string `json:"estado"`
	QueuedOrders  int    `json:"pedidos_en_cola"`
	EstimatedWait string `json:"tiempo_estimado"`
}

// Health is the controller's liveness answer.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
