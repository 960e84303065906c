package fetcher

import "time"

// Default configuration values.
const (
	defaultUserAgent      = "datascout/1.0 (dataset metadata harvester)"
	defaultRequestTimeout = 20 * time.Second
	defaultCourtesyDelay  = 1 * time.Second
	defaultInitialBackoff = 500 * time.Millisecond
	defaultMaxBackoff     = 10 * time.Second
)

// maxResponseBodyBytes limits the size of fetched page responses.
const maxResponseBodyBytes = 10 * 1024 * 1024 // 10 MB

// Config holds fetcher configuration.
type Config struct {
	// UserAgent sent with every request
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
	// RequestTimeout is the default per-request ceiling, applied when an
	// endpoint does not carry its own timeout
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
	// CourtesyDelay is the pause inserted after every fetch attempt,
	// success or failure, to avoid hammering remote hosts
	CourtesyDelay time.Duration `mapstructure:"courtesy_delay" yaml:"courtesy_delay"`
	// InitialBackoff is the delay before the first retry; doubles on each
	// subsequent retry up to MaxBackoff
	InitialBackoff time.Duration `mapstructure:"initial_backoff" yaml:"initial_backoff"`
	// MaxBackoff caps the exponential backoff delay
	MaxBackoff time.Duration `mapstructure:"max_backoff" yaml:"max_backoff"`
}

// WithDefaults returns a copy of the config with default values applied
// for zero-value fields.
func (c Config) WithDefaults() Config {
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
	if c.CourtesyDelay <= 0 {
		c.CourtesyDelay = defaultCourtesyDelay
	}
	if c.InitialBackoff <= 0 {
		c.InitialBackoff = defaultInitialBackoff
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = defaultMaxBackoff
	}
	return c
}
