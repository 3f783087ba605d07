// Package shodan provides a bee.Searcher backed by the Shodan host search
// REST API.
package shodan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/bee"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Shodan REST API endpoint.
const DefaultBaseURL = "https://api.shodan.io"

// DefaultTimeout is the default timeout for search requests.
const DefaultTimeout = 30 * time.Second

// DefaultRate is the default request rate. Shodan allows one query per
// second on standard plans.
const DefaultRate = rate.Limit(1)

// maxResponseSize bounds how much of a response body is read.
const maxResponseSize = 64 << 20

// Ensure Searcher implements bee.Searcher at compile time.
var _ bee.Searcher = (*Searcher)(nil)

// Searcher runs host searches against the Shodan API.
type Searcher struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	limit   rate.Limit

	client  *http.Client
	limiter *rate.Limiter
	decoder bee.Normalizer
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(s *Searcher) {
		s.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTimeout sets the timeout for search requests.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Searcher) {
		s.timeout = d
	}
}

// WithRateLimit sets the maximum number of requests per second.
// Defaults to DefaultRate if not specified.
func WithRateLimit(limit rate.Limit) Option {
	return func(s *Searcher) {
		s.limit = limit
	}
}

// NewSearcher creates a Searcher authenticating with apiKey. Response bodies
// are converted to trees with decoder.
func NewSearcher(apiKey string, decoder bee.Normalizer, opts ...Option) *Searcher {
	s := &Searcher{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		limit:   DefaultRate,
		decoder: decoder,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{Timeout: s.timeout}
	s.limiter = rate.NewLimiter(s.limit, 1)

	return s
}

// Search runs a host search for query and returns the result object.
// Returns EINVALID for an empty query and EAPI for any request failure.
func (s *Searcher) Search(ctx context.Context, query string) (*bee.Mapping, error) {
	if strings.TrimSpace(query) == "" {
		return nil, bee.Errorf(bee.EINVALID, "search query required")
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, bee.SourceErrorf(bee.EAPI, query, "rate limiter: %v", err)
	}

	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("query", query)
	endpoint := s.baseURL + "/shodan/host/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, bee.SourceErrorf(bee.EAPI, query, "creating request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, bee.SourceErrorf(bee.EAPI, query, "request failed: %v", redactURL(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, bee.SourceErrorf(bee.EAPI, query, "reading response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, bee.SourceErrorf(bee.EAPI, query, "HTTP %d: %s", resp.StatusCode, s.errorMessage(query, body, resp.StatusCode))
	}

	v, err := s.decoder.Normalize(query, body)
	if err != nil {
		return nil, bee.SourceErrorf(bee.EAPI, query, "invalid response: %s", bee.ErrorMessage(err))
	}
	v, err = bee.NormalizeAPIResult(query, v)
	if err != nil {
		return nil, bee.SourceErrorf(bee.EAPI, query, "invalid response: %s", bee.ErrorMessage(err))
	}
	return v.(*bee.Mapping), nil
}

// errorMessage extracts the API's {"error": "..."} message from body,
// falling back to the HTTP status text.
func (s *Searcher) errorMessage(query string, body []byte, status int) string {
	if v, err := s.decoder.Normalize(query, body); err == nil {
		if m, ok := v.(*bee.Mapping); ok {
			if msg, ok := m.Get("error"); ok {
				return bee.Inline(msg)
			}
		}
	}
	return http.StatusText(status)
}

// redactURL drops the request URL, which carries the API key, from
// transport errors.
func redactURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
