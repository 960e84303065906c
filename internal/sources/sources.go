// Package sources manages the registry of remote endpoints the harvest
// pipeline visits. The registry is fixed at construction: built-in
// endpoints first, then any endpoints supplied through configuration, in
// the order given. It is never mutated afterwards.
package sources

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/ethodata/datascout/internal/domain"
)

// ErrNoSources is returned when a registry is constructed with no endpoints.
var ErrNoSources = errors.New("no source endpoints configured")

// Interface defines the read-only interface for accessing the registry.
type Interface interface {
	// Endpoints returns the ordered endpoint list. Callers receive a copy
	// and cannot mutate the registry.
	Endpoints() []domain.SourceEndpoint
	// Len returns the number of registered endpoints.
	Len() int
}

// Registry is an immutable, ordered collection of source endpoints.
type Registry struct {
	endpoints []domain.SourceEndpoint
}

// Ensure Registry implements Interface
var _ Interface = (*Registry)(nil)

// builtin lists the dataset listing pages visited on every run. Extending
// this list is a configuration change, not a runtime operation.
var builtin = []domain.SourceEndpoint{
	{Name: "Animal Kingdom (CVPR2022)", URL: "https://github.com/sutdcv/Animal-Kingdom"},
	{Name: "APT-36K (Animal Pose Tracking)", URL: "https://github.com/pandorgan/APT-36K"},
	{Name: "iNaturalist (ba188/iNaturalist_v2)", URL: "https://huggingface.co/datasets/ba188/iNaturalist_v2"},
	{Name: "MammalNet", URL: "https://mammal-net.github.io/"},
}

// New creates a registry from the built-in endpoints plus any extra
// endpoints from configuration, preserving order. Every endpoint is
// validated; an invalid endpoint fails construction rather than surfacing
// later as a fetch error.
func New(extra ...domain.SourceEndpoint) (*Registry, error) {
	endpoints := make([]domain.SourceEndpoint, 0, len(builtin)+len(extra))
	endpoints = append(endpoints, builtin...)
	endpoints = append(endpoints, extra...)

	if len(endpoints) == 0 {
		return nil, ErrNoSources
	}

	for i := range endpoints {
		if err := validate(&endpoints[i]); err != nil {
			return nil, fmt.Errorf("source %q: %w", endpoints[i].Name, err)
		}
	}

	return &Registry{endpoints: endpoints}, nil
}

// NewFromList creates a registry from exactly the given endpoints, without
// the built-ins. Used by tests and by callers that replace the registry
// wholesale.
func NewFromList(endpoints []domain.SourceEndpoint) (*Registry, error) {
	if len(endpoints) == 0 {
		return nil, ErrNoSources
	}

	copied := make([]domain.SourceEndpoint, len(endpoints))
	copy(copied, endpoints)

	for i := range copied {
		if err := validate(&copied[i]); err != nil {
			return nil, fmt.Errorf("source %q: %w", copied[i].Name, err)
		}
	}

	return &Registry{endpoints: copied}, nil
}

// Endpoints returns a copy of the ordered endpoint list.
func (r *Registry) Endpoints() []domain.SourceEndpoint {
	copied := make([]domain.SourceEndpoint, len(r.endpoints))
	copy(copied, r.endpoints)
	return copied
}

// Len returns the number of registered endpoints.
func (r *Registry) Len() int {
	return len(r.endpoints)
}

// validate checks an endpoint and fills the name from the URL host when
// missing.
func validate(e *domain.SourceEndpoint) error {
	if e.URL == "" {
		return errors.New("missing URL")
	}

	parsed, err := url.Parse(e.URL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return errors.New("URL has no host")
	}

	if e.Name == "" {
		e.Name = parsed.Host
	}

	if e.Timeout < 0 {
		return errors.New("negative timeout")
	}
	if e.RetryBudget < 0 {
		return errors.New("negative retry budget")
	}

	return nil
}
