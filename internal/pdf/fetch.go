package pdf

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const fetchTimeout = 60 * time.Second

// Fetcher downloads the docket PDF to local disk. The downloaded file
// is kept as a run artifact next to the generated report.
type Fetcher struct {
	client      *http.Client
	maxFileSize int64
}

// NewFetcher creates a fetcher with the specified size constraint.
func NewFetcher(maxFileSize int64) *Fetcher {
	return &Fetcher{
		client:      &http.Client{Timeout: fetchTimeout},
		maxFileSize: maxFileSize,
	}
}

// Fetch downloads url to destPath. A non-200 status, an oversized
// body, or any transport failure is an error; a partial file is
// removed before returning.
func (f *Fetcher) Fetch(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download PDF: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download PDF: %s returned %s", url, resp.Status)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}

	// Read one byte past the limit so an exactly-at-limit file passes.
	written, err := io.Copy(out, io.LimitReader(resp.Body, f.maxFileSize+1))
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(destPath)
		return fmt.Errorf("failed to save PDF: %w", err)
	}
	if written > f.maxFileSize {
		os.Remove(destPath)
		return fmt.Errorf("downloaded file too large: more than %d bytes", f.maxFileSize)
	}
	if written == 0 {
		os.Remove(destPath)
		return fmt.Errorf("downloaded file is empty: %s", url)
	}

	return nil
}
