package pdf

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcherFetch(t *testing.T) {
	payload := []byte("%PDF-1.4 fake docket body")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "docket.pdf")
	f := NewFetcher(1024)

	require.NoError(t, f.Fetch(context.Background(), srv.URL, dest))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestFetcherFetchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "docket.pdf")
	err := NewFetcher(1024).Fetch(context.Background(), srv.URL, dest)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.NoFileExists(t, dest)
}

func TestFetcherFetchTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, 64))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "docket.pdf")
	err := NewFetcher(16).Fetch(context.Background(), srv.URL, dest)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
	assert.NoFileExists(t, dest)
}

func TestFetcherFetchEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "docket.pdf")
	err := NewFetcher(1024).Fetch(context.Background(), srv.URL, dest)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
	assert.NoFileExists(t, dest)
}

func TestFetcherFetchBadURL(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "docket.pdf")
	err := NewFetcher(1024).Fetch(context.Background(), "http://127.0.0.1:0/docket.pdf", dest)
	require.Error(t, err)
}
