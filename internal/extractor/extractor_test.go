package extractor_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethodata/datascout/internal/domain"
	"github.com/ethodata/datascout/internal/extractor"
)

var testEndpoint = domain.SourceEndpoint{
	Name: "test-source",
	URL:  "https://example.com/datasets",
}

// listingHTML is a typical dataset listing page with h2/h3 headings mixed
// with headings that must be ignored.
const listingHTML = `<!DOCTYPE html>
<html>
<head><title>Animal Behaviour Datasets</title></head>
<body>
  <h1>All Datasets</h1>
  <h2>Zebrafish Behavior</h2>
  <p>Video recordings of zebrafish schooling.</p>
  <h3>  Animal Kingdom Dataset </h3>
  <p>Large-scale multi-species benchmark.</p>
  <h2>Mouse Social Behavior</h2>
  <h4>Download links</h4>
</body>
</html>`

// noHeadingsHTML has paragraphs but no secondary or tertiary headings.
const noHeadingsHTML = `<!DOCTYPE html>
<html>
<body>
  <h1>Only a top-level heading</h1>
  <p>Paragraph text without any dataset names.</p>
</body>
</html>`

// whitespaceHeadingHTML has a heading whose text trims to nothing.
const whitespaceHeadingHTML = `<!DOCTYPE html>
<html>
<body>
  <h2>   </h2>
  <h2>Real Dataset</h2>
</body>
</html>`

// truncatedHTML is malformed markup cut off mid-tag.
const truncatedHTML = `<html><body><h2>Partial Head`

func TestExtract_HeadingsInDocumentOrder(t *testing.T) {
	t.Parallel()

	ext := extractor.NewHeadingExtractor()

	fragments := ext.Extract(domain.RawDocument{
		Endpoint: testEndpoint,
		Body:     []byte(listingHTML),
	})

	require.Len(t, fragments, 3)
	assert.Equal(t, "Zebrafish Behavior", fragments[0].Text)
	assert.Equal(t, "Animal Kingdom Dataset", fragments[1].Text)
	assert.Equal(t, "Mouse Social Behavior", fragments[2].Text)

	for _, f := range fragments {
		assert.Equal(t, testEndpoint, f.Endpoint)
	}
}

func TestExtract_FailedDocumentYieldsNothing(t *testing.T) {
	t.Parallel()

	ext := extractor.NewHeadingExtractor()

	fragments := ext.Extract(domain.RawDocument{
		Endpoint: testEndpoint,
		Failed:   true,
		Error:    "connection refused",
	})

	assert.Empty(t, fragments)
}

func TestExtract_EmptyBodyYieldsNothing(t *testing.T) {
	t.Parallel()

	ext := extractor.NewHeadingExtractor()

	fragments := ext.Extract(domain.RawDocument{Endpoint: testEndpoint})

	assert.Empty(t, fragments)
}

func TestExtract_NoHeadings(t *testing.T) {
	t.Parallel()

	ext := extractor.NewHeadingExtractor()

	fragments := ext.Extract(domain.RawDocument{
		Endpoint: testEndpoint,
		Body:     []byte(noHeadingsHTML),
	})

	assert.Empty(t, fragments)
}

func TestExtract_WhitespaceHeadingsDiscarded(t *testing.T) {
	t.Parallel()

	ext := extractor.NewHeadingExtractor()

	fragments := ext.Extract(domain.RawDocument{
		Endpoint: testEndpoint,
		Body:     []byte(whitespaceHeadingHTML),
	})

	require.Len(t, fragments, 1)
	assert.Equal(t, "Real Dataset", fragments[0].Text)
}

func TestExtract_TruncatedMarkupIsTolerated(t *testing.T) {
	t.Parallel()

	ext := extractor.NewHeadingExtractor()

	// The html parser repairs truncated markup; extraction must not fail.
	fragments := ext.Extract(domain.RawDocument{
		Endpoint: testEndpoint,
		Body:     []byte(truncatedHTML),
	})

	require.Len(t, fragments, 1)
	assert.Equal(t, "Partial Head", fragments[0].Text)
}

func TestExtract_CapEnforcedOnPathologicalDocument(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("<html><body>")
	for i := range 10000 {
		fmt.Fprintf(&b, "<h2>Dataset %d</h2>", i)
	}
	b.WriteString("</body></html>")

	ext := extractor.NewHeadingExtractor()

	fragments := ext.Extract(domain.RawDocument{
		Endpoint: testEndpoint,
		Body:     []byte(b.String()),
	})

	require.Len(t, fragments, 10)
	assert.Equal(t, "Dataset 0", fragments[0].Text)
	assert.Equal(t, "Dataset 9", fragments[9].Text)
}

func TestExtract_CustomCap(t *testing.T) {
	t.Parallel()

	ext := extractor.NewHeadingExtractorWithCap(2)

	fragments := ext.Extract(domain.RawDocument{
		Endpoint: testEndpoint,
		Body:     []byte(listingHTML),
	})

	assert.Len(t, fragments, 2)
}
