package ssrf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
)

// Fetch failure taxonomy. Validation rejections are returned as *Rejection.
var (
	ErrTimeout     = errors.New("timeout downloading image")
	ErrNetwork     = errors.New("network error downloading image")
	ErrContentType = errors.New("invalid content type, only images are allowed")
	ErrTooLarge    = errors.New("image too large")
	ErrEmpty       = errors.New("image is empty")
)

// BadStatusError is returned for any non-200 response, including redirects,
// which are never followed.
type BadStatusError struct {
	Code int
}

func (e *BadStatusError) Error() string {
	return fmt.Sprintf("error downloading image: HTTP %d", e.Code)
}

// DefaultAllowedContentTypes are the response content types accepted when
// the fetcher is not configured otherwise.
var DefaultAllowedContentTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

const defaultMaxBytes = 5 * 1024 * 1024

// Fetcher retrieves an admitted URL with runtime protections the admission
// gate alone cannot provide: no redirects, no compression, a streaming byte
// cap, a content-type allow-list, and a short timeout.
type Fetcher struct {
	validator    *Validator
	client       *http.Client
	timeout      time.Duration
	maxBytes     int64
	contentTypes []string
}

// FetcherOpt configures a Fetcher.
type FetcherOpt func(*Fetcher)

// WithTimeout bounds the whole fetch.
func WithTimeout(d time.Duration) FetcherOpt {
	return func(f *Fetcher) { f.timeout = d }
}

// WithMaxBytes caps the response body size.
func WithMaxBytes(n int64) FetcherOpt {
	return func(f *Fetcher) { f.maxBytes = n }
}

// WithContentTypes overrides the accepted response content types.
func WithContentTypes(types []string) FetcherOpt {
	return func(f *Fetcher) { f.contentTypes = types }
}

// WithHTTPClient substitutes the transport. The redirect policy is enforced
// on top of the given client.
func WithHTTPClient(client *http.Client) FetcherOpt {
	return func(f *Fetcher) { f.client = client }
}

// NewFetcher builds a Fetcher over the given admission validator.
func NewFetcher(validator *Validator, opts ...FetcherOpt) *Fetcher {
	f := &Fetcher{
		validator:    validator,
		timeout:      5 * time.Second,
		maxBytes:     defaultMaxBytes,
		contentTypes: DefaultAllowedContentTypes,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{}
	} else {
		// Copy so the redirect policy and timeout never leak into a
		// client the caller shares.
		clone := *f.client
		f.client = &clone
	}
	// A redirect from a whitelisted host could point anywhere, including
	// internal addresses. Surface it as a bad status instead of following.
	f.client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	f.client.Timeout = f.timeout
	return f
}

// Fetch re-validates the URL and downloads it, returning the image bytes.
// The error is a *Rejection for admission failures or one of the fetch
// taxonomy errors otherwise. Partial data is never returned.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	// Re-run admission immediately before the request to close the gap
	// between an earlier check and the fetch.
	if rej := f.validator.Validate(ctx, rawURL); rej != nil {
		return nil, rej
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, ErrNetwork
	}
	req.Header.Set("User-Agent", "MedicLab/1.0 Avatar Downloader")
	req.Header.Set("Accept", strings.Join(f.contentTypes, ",")+",image/*")
	// Identity encoding rules out decompression bombs entirely.
	req.Header.Set("Accept-Encoding", "identity")

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Log.Warnw("timeout downloading avatar", "url", rawURL)
			return nil, ErrTimeout
		}
		logger.Log.Warnw("request error downloading avatar", "url", rawURL, "error", err)
		return nil, ErrNetwork
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Warnw("unexpected status downloading avatar", "url", rawURL, "status", resp.StatusCode)
		return nil, &BadStatusError{Code: resp.StatusCode}
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	allowed := false
	for _, ct := range f.contentTypes {
		if strings.Contains(contentType, ct) {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrContentType
	}

	// Read one byte past the cap so oversize bodies are detected without
	// consuming the whole stream.
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, ErrNetwork
	}
	if int64(len(data)) > f.maxBytes {
		return nil, ErrTooLarge
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	logger.Log.Infow("avatar downloaded", "url", rawURL, "size", len(data))
	return data, nil
}
