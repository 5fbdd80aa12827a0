package remote_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuegate/internal/adapter/remote"
	"venuegate/internal/core/domain"
)

func TestFetch_Success(t *testing.T) {
	venueID := uuid.New()
	updatedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fmt.Sprintf("/venues/%s/capacity", venueID), r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"venue_id":   venueID,
			"current":    42,
			"maximum":    100,
			"updated_at": updatedAt,
		})
	}))
	defer server.Close()

	fetcher := remote.NewHTTPCapacityFetcher(server.URL, 2*time.Second)

	snap, err := fetcher.Fetch(context.Background(), venueID)

	require.NoError(t, err)
	assert.Equal(t, venueID, snap.VenueID)
	assert.Equal(t, 42, snap.Current)
	assert.Equal(t, 100, snap.Maximum)
	assert.True(t, updatedAt.Equal(snap.UpdatedAt))
}

func TestFetch_Timeout(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	fetcher := remote.NewHTTPCapacityFetcher(server.URL, 50*time.Millisecond)

	snap, err := fetcher.Fetch(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrFetchTimeout)
	assert.Nil(t, snap)
}

func TestFetch_VenueNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := remote.NewHTTPCapacityFetcher(server.URL, 2*time.Second)

	snap, err := fetcher.Fetch(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
	assert.Nil(t, snap)
}

func TestFetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fetcher := remote.NewHTTPCapacityFetcher(server.URL, 2*time.Second)

	snap, err := fetcher.Fetch(context.Background(), uuid.New())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrFetchTimeout)
	assert.Nil(t, snap)
}
