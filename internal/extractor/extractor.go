// Package extractor parses raw page content into candidate dataset name
// fragments. Parsing is tolerant: a failed document, an empty body, or
// markup with no usable headings all yield zero fragments rather than an
// error.
package extractor

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ethodata/datascout/internal/domain"
)

// defaultFragmentCap bounds the number of fragments taken from one
// document, keeping downstream volume predictable for pathological pages.
const defaultFragmentCap = 10

// headingSelector matches the heading levels that listing pages use for
// dataset names.
const headingSelector = "h2, h3"

// Extractor turns a raw document into candidate fragments. Implementations
// must never fail the pipeline; unusable input yields an empty slice. The
// interface is the seam for stricter structured sources (a JSON API
// extractor slots in without touching aggregation or export).
type Extractor interface {
	Extract(doc domain.RawDocument) []domain.CandidateFragment
}

// HeadingExtractor extracts secondary and tertiary heading text from HTML
// using goquery.
type HeadingExtractor struct {
	fragmentCap int
}

// Ensure HeadingExtractor implements Extractor
var _ Extractor = (*HeadingExtractor)(nil)

// NewHeadingExtractor creates a heading extractor with the default
// per-document fragment cap.
func NewHeadingExtractor() *HeadingExtractor {
	return &HeadingExtractor{fragmentCap: defaultFragmentCap}
}

// NewHeadingExtractorWithCap creates a heading extractor with a custom
// fragment cap. A cap below one falls back to the default.
func NewHeadingExtractorWithCap(fragmentCap int) *HeadingExtractor {
	if fragmentCap < 1 {
		fragmentCap = defaultFragmentCap
	}
	return &HeadingExtractor{fragmentCap: fragmentCap}
}

// Extract parses the document body and returns up to the configured cap of
// trimmed, non-empty heading fragments in document order.
func (e *HeadingExtractor) Extract(doc domain.RawDocument) []domain.CandidateFragment {
	if doc.Failed || len(doc.Body) == 0 {
		return nil
	}

	parsed, err := goquery.NewDocumentFromReader(bytes.NewReader(doc.Body))
	if err != nil {
		return nil
	}

	var fragments []domain.CandidateFragment

	parsed.Find(headingSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return true
		}

		fragments = append(fragments, domain.CandidateFragment{
			Text:     text,
			Endpoint: doc.Endpoint,
		})

		return len(fragments) < e.fragmentCap
	})

	return fragments
}
