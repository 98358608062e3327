package configs

import (
	"net/url"
	"time"
)

// API holds configuration for the remote campaign service the dashboard
// coordinates against. BaseURL is the service root; endpoint paths are
// appended by the client. Timeout bounds each request; there are no
// automatic retries.
type API struct {
	// BaseURL is the root of the remote campaign API.
	BaseURL url.URL `env:"BASE_URL" envDefault:"http://localhost:9000"`
	// Timeout is the per-request timeout for remote calls.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}
