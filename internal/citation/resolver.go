package citation

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/antarctica/mdlib/internal/logging"
	"github.com/antarctica/mdlib/internal/retry"
	"github.com/antarctica/mdlib/pkg/mdlib"
)

// HTTPError reports a non-2xx response from the citation service.
type HTTPError struct {
	DOI    string
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%v: %s returned HTTP %d", mdlib.ErrCitationLookup, e.DOI, e.Status)
}

func (e *HTTPError) Unwrap() error { return mdlib.ErrCitationLookup }

// StatusCode lets the retry classifier inspect the response status.
func (e *HTTPError) StatusCode() int { return e.Status }

// DOIResolver implements mdlib.CitationResolver.
type DOIResolver struct {
	client    *http.Client
	executor  *retry.Executor
	baseURL   string
	userAgent string
	logger    mdlib.Logger
}

// Option configures a DOIResolver.
type Option func(*DOIResolver)

// WithHTTPClient replaces the default client (which has the default timeout).
func WithHTTPClient(c *http.Client) Option {
	return func(r *DOIResolver) { r.client = c }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *DOIResolver) { r.client.Timeout = d }
}

// WithRetries sets how many times a transient failure is retried and the
// delay before each retry.
func WithRetries(n int, delay time.Duration) Option {
	return func(r *DOIResolver) {
		r.executor = retry.NewExecutor(retry.NewHTTPErrorClassifier(), retry.Fixed(n, delay))
	}
}

// WithBaseURL rewrites https://doi.org/ DOIs to another resolver, such as
// a test server.
func WithBaseURL(u string) Option {
	return func(r *DOIResolver) { r.baseURL = strings.TrimSuffix(u, "/") + "/" }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(r *DOIResolver) { r.userAgent = ua }
}

// WithLogger sets the logger used to report retries.
func WithLogger(l mdlib.Logger) Option {
	return func(r *DOIResolver) { r.logger = l }
}

const doiPrefix = "https://doi.org/"

// NewDOIResolver returns a resolver that retries once after a transient
// failure.
func NewDOIResolver(opts ...Option) *DOIResolver {
	r := &DOIResolver{
		client: &http.Client{Timeout: mdlib.DefaultCitationTimeout},
		logger: logging.NewNullLogger(),
	}
	WithRetries(mdlib.DefaultCitationRetries, mdlib.DefaultCitationRetryDelay)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve fetches the APA formatted citation for doi.
func (r *DOIResolver) Resolve(ctx context.Context, doi string) (string, error) {
	target := doi
	if r.baseURL != "" {
		target = r.baseURL + strings.TrimPrefix(doi, doiPrefix)
	}

	var citation string
	executor := r.executor.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		r.logger.Verbose("Retrying citation lookup for %s in %v: %v", doi, delay, err)
	})
	err := executor.Execute(ctx, func(ctx context.Context) error {
		text, err := r.fetch(ctx, doi, target)
		if err != nil {
			return err
		}
		citation = text
		return nil
	})
	if err != nil {
		return "", err
	}
	return citation, nil
}

func (r *DOIResolver) fetch(ctx context.Context, doi, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", mdlib.ErrCitationLookup, err)
	}
	req.Header.Set("Accept", mdlib.CitationAccept)
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", mdlib.ErrCitationLookup, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &HTTPError{DOI: doi, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response for %s: %w", mdlib.ErrCitationLookup, doi, err)
	}
	return strings.TrimSpace(string(body)), nil
}
