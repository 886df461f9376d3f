package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mydahanu/directory/internal/config"
	"mydahanu/directory/internal/domain"
	"mydahanu/directory/internal/seed"
)

func testConfig() config.ImportConfig {
	return config.ImportConfig{Timeout: 5 * time.Second, MaxRetries: 0}
}

func TestFetchSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(seed.Snapshot())
	}))
	defer srv.Close()

	snap, err := NewSnapshotClient(testConfig()).FetchSnapshot(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, domain.SnapshotVersion, snap.Version)
	assert.Len(t, snap.Categories, 8)
	assert.Len(t, snap.Services, 12)
	assert.Len(t, snap.Banners, 4)
}

func TestFetchSnapshot_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewSnapshotClient(testConfig()).FetchSnapshot(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchSnapshot_InvalidDocument(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "<html></html>"},
		{name: "missing collections", body: `{"version":"1.0.0"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewSnapshotClient(testConfig()).FetchSnapshot(context.Background(), srv.URL)
			assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)
		})
	}
}

func TestFetchSnapshot_Retries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(seed.Snapshot())
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.MaxRetries = 2

	_, err := NewSnapshotClient(cfg).FetchSnapshot(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}
