// Package fetcher retrieves raw page content for source endpoints. A
// failed fetch is recorded on the returned document, never raised: one bad
// source degrades the result set, it does not abort the run.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ethodata/datascout/internal/domain"
	"github.com/ethodata/datascout/internal/logger"
)

// Status code boundaries for response handling.
const (
	statusOKLow        = 200
	statusOKHigh       = 299
	statusTooManyReqs  = 429
	statusServerErrLow = 500
)

// Fetcher performs single HTTP GET requests against source endpoints with
// a per-endpoint timeout, an optional retry budget with exponential
// backoff, and a courtesy delay after every attempt.
type Fetcher struct {
	httpClient *http.Client
	log        logger.Interface
	cfg        Config
}

// New creates a fetcher with the given configuration.
func New(cfg Config, log logger.Interface) *Fetcher {
	cfg = cfg.WithDefaults()

	return &Fetcher{
		httpClient: &http.Client{},
		log:        log.WithComponent("fetcher"),
		cfg:        cfg,
	}
}

// Fetch retrieves the endpoint's content. The returned document is marked
// failed on timeout, transport error, or non-2xx status after the retry
// budget is exhausted; Fetch itself never returns an error.
func (f *Fetcher) Fetch(ctx context.Context, endpoint domain.SourceEndpoint) domain.RawDocument {
	doc := domain.RawDocument{Endpoint: endpoint}

	attempts := endpoint.RetryBudget + 1
	backoff := f.cfg.InitialBackoff

	var lastErr error
	var lastStatus int

	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			lastErr = ctx.Err()
			break
		}

		body, statusCode, err := f.attempt(ctx, endpoint)

		// Courtesy pause after every attempt, success or failure.
		f.pause(ctx, f.cfg.CourtesyDelay)

		if err == nil && statusCode >= statusOKLow && statusCode <= statusOKHigh {
			doc.Body = body
			doc.StatusCode = statusCode
			return doc
		}

		lastStatus = statusCode
		if err == nil {
			err = fmt.Errorf("http status %d", statusCode)
		}
		lastErr = err

		f.log.Warn("fetch attempt failed",
			"source", endpoint.Name,
			"url", endpoint.URL,
			"attempt", attempt,
			"error", err.Error(),
		)

		if !retryable(statusCode, err) || attempt == attempts {
			break
		}

		if !f.pause(ctx, backoff) {
			break
		}
		backoff = min(backoff*2, f.cfg.MaxBackoff)
	}

	doc.Failed = true
	doc.StatusCode = lastStatus
	if lastErr != nil {
		doc.Error = lastErr.Error()
	}

	return doc
}

// attempt performs one HTTP GET request for the endpoint.
func (f *Fetcher) attempt(
	ctx context.Context,
	endpoint domain.SourceEndpoint,
) (body []byte, statusCode int, err error) {
	timeout := endpoint.Timeout
	if timeout <= 0 {
		timeout = f.cfg.RequestTimeout
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, reqErr := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint.URL, http.NoBody)
	if reqErr != nil {
		return nil, 0, fmt.Errorf("create request: %w", reqErr)
	}

	req.Header.Set("User-Agent", f.cfg.UserAgent)

	resp, doErr := f.httpClient.Do(req)
	if doErr != nil {
		return nil, 0, fmt.Errorf("http fetch: %w", doErr)
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, maxResponseBodyBytes)

	body, readErr := io.ReadAll(limited)
	if readErr != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response body: %w", readErr)
	}

	return body, resp.StatusCode, nil
}

// pause sleeps for d or until the context is cancelled. Returns false when
// cancelled.
func (f *Fetcher) pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// retryable reports whether a failed attempt is worth retrying: transport
// errors, rate limiting, and server-side errors are; other HTTP statuses
// (404 and friends) are permanent.
func retryable(statusCode int, err error) bool {
	if statusCode == 0 {
		// Transport-level failure, no response received.
		return err != nil
	}
	return statusCode == statusTooManyReqs || statusCode >= statusServerErrLow
}
