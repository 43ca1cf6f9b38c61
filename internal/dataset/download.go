package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/tutor/internal/corpus"
)

var (
	// ErrTimeout indicates a download exceeded its timeout.
	ErrTimeout = errors.New("dataset download timed out")

	// ErrBadStatus indicates a non-200 response.
	ErrBadStatus = errors.New("dataset source returned non-200 status")
)

// DefaultTimeout bounds a single source download.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a source is read.
const maxBodyBytes = 8 << 20

// Fetcher retrieves pairs from one source URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]corpus.QAPair, error)
}

// Downloader fetches dataset sources over HTTP.
type Downloader struct {
	http     *http.Client
	timeout  time.Duration
	maxItems int
	logger   *slog.Logger
}

// NewDownloader returns a Downloader. Zero values take the defaults.
func NewDownloader(timeout time.Duration, maxItems int, logger *slog.Logger) *Downloader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Downloader{
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		timeout:  timeout,
		maxItems: maxItems,
		logger:   logger,
	}
}

func (d *Downloader) Fetch(ctx context.Context, url string) ([]corpus.QAPair, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := d.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("reading response: %w", err)
	}

	pairs, err := Parse(body, DetectFormat(url, resp.Header.Get("Content-Type")), d.maxItems)
	if err != nil {
		return nil, err
	}
	d.logger.DebugContext(ctx, "dataset source fetched",
		"url", url, "pairs", len(pairs), "latency_ms", time.Since(start).Milliseconds())
	return pairs, nil
}
