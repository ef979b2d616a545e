package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// FetchPreview performs a single GET request against target and returns up to
// the first PreviewLimit characters of the response body, decoded as UTF-8
// with invalid byte sequences dropped. Redirects follow the client's default
// policy; an HTTP status of 400 or above is a fetch failure.
func FetchPreview(ctx context.Context, client *http.Client, target string, cfg Config) (preview string, err error) {
	// Create per-request context with timeout
	reqCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", target, err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", target, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close response body: %w", closeErr)
		}
	}()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("fetch %s: unexpected status %d", target, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body of %s: %w", target, err)
	}

	return truncate(string(body), PreviewLimit), nil
}

// truncate drops invalid UTF-8 sequences from s and returns at most limit
// characters. The cut may land mid-token in structured content; previews are
// diagnostic, not re-parseable.
func truncate(s string, limit int) string {
	s = strings.ToValidUTF8(s, "")
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
