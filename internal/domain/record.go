// Package domain provides domain models used across the application.
package domain

import "time"

// SourceEndpoint identifies one remote location believed to list dataset
// metadata. Endpoints are defined at process start and never mutated.
type SourceEndpoint struct {
	// Short human-readable name for diagnostics and logs
	Name string `json:"name" yaml:"name" mapstructure:"name"`
	// URL of the listing page
	URL string `json:"url" yaml:"url" mapstructure:"url"`
	// Per-request timeout; zero means the fetcher default ceiling applies
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout" mapstructure:"timeout"`
	// Number of retries after the initial attempt; zero means no retries
	RetryBudget int `json:"retry_budget,omitempty" yaml:"retry_budget" mapstructure:"retry_budget"`
}

// RawDocument is the unprocessed response body for one endpoint, tagged
// with a success/failure status. A failed document carries an error
// description and an empty body.
type RawDocument struct {
	// Endpoint the document was fetched from
	Endpoint SourceEndpoint `json:"endpoint"`
	// Response body; empty when Failed is true
	Body []byte `json:"-"`
	// HTTP status code of the final attempt, zero on transport failure
	StatusCode int `json:"status_code,omitempty"`
	// Failed marks a fetch that produced no usable body
	Failed bool `json:"failed"`
	// Error describes why the fetch failed
	Error string `json:"error,omitempty"`
}

// CandidateFragment is a short heading-level text snippet heuristically
// identified as a dataset name candidate.
type CandidateFragment struct {
	// Trimmed visible text of the heading
	Text string `json:"text"`
	// Endpoint the fragment was extracted from
	Endpoint SourceEndpoint `json:"endpoint"`
}

// DatasetRecord is the canonical five-field output unit for one dataset.
type DatasetRecord struct {
	// Name of the dataset; non-empty and unique within an exported set
	Name string `json:"name"`
	// How the data was captured (video, camera trap, lab setup)
	CaptureSettings string `json:"capture_settings"`
	// Size of the dataset where known
	DataSize string `json:"data_size"`
	// Strengths of the dataset
	Advantages string `json:"advantages"`
	// Known weaknesses of the dataset
	Limitations string `json:"limitations"`
}

// ResultSet is the ordered, deduplicated sequence of records produced by
// one run. Order is first-seen order across sources.
type ResultSet struct {
	Records []DatasetRecord `json:"records"`
}

// Len returns the number of records in the set.
func (rs ResultSet) Len() int {
	return len(rs.Records)
}
