package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Fetcher reads datasets from HTTP(S) URLs or local file paths.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a fetcher with the given HTTP timeout (0 for none).
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{httpClient: &http.Client{Timeout: timeout}}
}

// IsRemote reports whether urlOrPath is fetched over HTTP.
func IsRemote(urlOrPath string) bool {
	return strings.HasPrefix(urlOrPath, "http://") || strings.HasPrefix(urlOrPath, "https://")
}

// Open returns a reader for urlOrPath. The caller closes it.
func (f *Fetcher) Open(ctx context.Context, urlOrPath string) (io.ReadCloser, error) {
	if urlOrPath == "" {
		return nil, fmt.Errorf("empty source")
	}
	if !IsRemote(urlOrPath) {
		return os.Open(urlOrPath)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlOrPath, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}
	return resp.Body, nil
}
