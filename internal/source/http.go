package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/docdeck/docdeck/internal/httputil"
)

// HTTPSource fetches guide content from a documentation site, one request
// per read.
type HTTPSource struct {
	baseURL    string
	client     *http.Client
	maxRetries int
}

// NewHTTPSource creates a source that resolves refs against baseURL.
// A nil client gets the package default.
func NewHTTPSource(baseURL string, client *http.Client, maxRetries int) *HTTPSource {
	if client == nil {
		client = httputil.NewHTTPClient()
	}
	return &HTTPSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		client:     client,
		maxRetries: maxRetries,
	}
}

func (s *HTTPSource) Read(ctx context.Context, ref string) (string, error) {
	url := s.baseURL + "/" + strings.TrimLeft(ref, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %q: %w", ref, err)
	}
	req.Header = httputil.DocsHeaders()

	resp, err := httputil.DoWithRetry(s.client, req, s.maxRetries)
	if err != nil {
		return "", fmt.Errorf("fetch %q: %w", ref, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %q: status %d", ref, resp.StatusCode)
	}

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return "", fmt.Errorf("read body for %q: %w", ref, err)
	}
	return string(body), nil
}
