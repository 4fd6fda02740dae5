package dispenser

import "time"

const (
	DefaultPort       = 5000
	DefaultPath       = "/hacer_trago"
	DefaultStatusPath = "/estado"
	DefaultHealthPath = "/health"
	DefaultTimeout    = 10 * time.Second
)
