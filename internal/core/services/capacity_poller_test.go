package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"venuegate/internal/adapter/repository/memory"
	"venuegate/internal/core/domain"
	"venuegate/internal/core/services"
	"venuegate/internal/monitoring"
)

// gatedFetcher blocks each fetch until release is closed, so tests can hold a
// fetch in flight across a Stop.
type gatedFetcher struct {
	started chan struct{}
	release chan struct{}
}

func (f *gatedFetcher) Fetch(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error) {
	f.started <- struct{}{}
	<-f.release
	return &domain.VenueCapacity{VenueID: venueID, Current: 99, Maximum: 100, UpdatedAt: time.Now()}, nil
}

// recordingFetcher reports every fetch on a channel and succeeds immediately.
type recordingFetcher struct {
	calls chan uuid.UUID
}

func (f *recordingFetcher) Fetch(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error) {
	f.calls <- venueID
	return &domain.VenueCapacity{VenueID: venueID, Current: 12, Maximum: 40, UpdatedAt: time.Now()}, nil
}

type failingFetcher struct {
	calls chan struct{}
}

func (f *failingFetcher) Fetch(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error) {
	f.calls <- struct{}{}
	return nil, errors.New("remote unavailable")
}

func waitForFetch[T any](t *testing.T, ch chan T) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a fetch")
	}
}

func TestPoller_StopDiscardsInFlightFetch(t *testing.T) {
	fetcher := &gatedFetcher{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	mirror := memory.NewCapacityMirror()
	poller := services.NewCapacityPoller(fetcher, mirror, monitoring.NewMonitor(), time.Hour, time.Minute)

	venueID := uuid.New()
	poller.Start(context.Background(), time.Hour, venueID)

	waitForFetch(t, fetcher.started)
	poller.Stop()
	close(fetcher.release)

	// The fetch completes after the stop; its result must never land.
	assert.Never(t, func() bool {
		_, ok := mirror.Snapshot(venueID)
		return ok
	}, 300*time.Millisecond, 20*time.Millisecond)
}

func TestPoller_ResumeTriggersImmediateFetch(t *testing.T) {
	fetcher := &recordingFetcher{calls: make(chan uuid.UUID, 4)}
	mirror := memory.NewCapacityMirror()
	poller := services.NewCapacityPoller(fetcher, mirror, monitoring.NewMonitor(), time.Hour, time.Minute)

	venueID := uuid.New()
	poller.Start(context.Background(), time.Hour, venueID)
	defer poller.Stop()

	// Start always performs one immediate poll.
	waitForFetch(t, fetcher.calls)

	poller.Pause()
	poller.Resume()

	// Resume must not wait for the next tick.
	waitForFetch(t, fetcher.calls)

	assert.Eventually(t, func() bool {
		snap, ok := mirror.Snapshot(venueID)
		return ok && snap.Current == 12
	}, 2*time.Second, 20*time.Millisecond)
}

func TestPoller_FailedFetchRetainsMirror(t *testing.T) {
	fetcher := &failingFetcher{calls: make(chan struct{}, 4)}
	mirror := memory.NewCapacityMirror()
	poller := services.NewCapacityPoller(fetcher, mirror, monitoring.NewMonitor(), time.Hour, time.Minute)

	venueID := uuid.New()
	previous := domain.VenueCapacity{VenueID: venueID, Current: 7, Maximum: 40, UpdatedAt: time.Now()}
	mirror.Replace(previous)

	poller.Start(context.Background(), time.Hour, venueID)
	defer poller.Stop()

	waitForFetch(t, fetcher.calls)

	snap, ok := mirror.Snapshot(venueID)
	assert.True(t, ok)
	assert.Equal(t, 7, snap.Current)
}

func TestPoller_RestartReplacesVenueSet(t *testing.T) {
	fetcher := &recordingFetcher{calls: make(chan uuid.UUID, 8)}
	mirror := memory.NewCapacityMirror()
	poller := services.NewCapacityPoller(fetcher, mirror, monitoring.NewMonitor(), time.Hour, time.Minute)

	first := uuid.New()
	second := uuid.New()

	poller.Start(context.Background(), time.Hour, first)
	assert.Equal(t, first, <-fetcher.calls)

	poller.Start(context.Background(), time.Hour, second)
	defer poller.Stop()

	select {
	case got := <-fetcher.calls:
		assert.Equal(t, second, got)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a fetch")
	}
}
