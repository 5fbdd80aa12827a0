package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"venuegate/internal/core/domain"
	"venuegate/internal/core/ports"
	"venuegate/internal/monitoring"
	"venuegate/internal/platform/breaker"
)

const (
	defaultPollInterval = 30 * time.Second
	defaultFetchTimeout = 5 * time.Second
)

// CapacityPoller reconciles a local read-only capacity mirror against the
// remote source of truth on a fixed interval. Each successful fetch replaces
// the mirrored snapshot whole; a timed-out or failed fetch retains the
// previous snapshot and surfaces only a soft error.
//
// The generation counter is bumped on every Stop and Start, so a slow fetch
// still in flight when the poller is cancelled can never write its stale
// result into the mirror, nor race a later Start for different venues.
type CapacityPoller struct {
	fetcher      ports.CapacityFetcher
	mirror       ports.CapacityMirror
	monitor      *monitoring.Monitor
	interval     time.Duration
	fetchTimeout time.Duration
	breaker      *breaker.CircuitBreaker

	generation *atomic.Int64
	foreground *atomic.Bool
	wake       chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewCapacityPoller(fetcher ports.CapacityFetcher, mirror ports.CapacityMirror, monitor *monitoring.Monitor, interval, fetchTimeout time.Duration) *CapacityPoller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	return &CapacityPoller{
		fetcher:      fetcher,
		mirror:       mirror,
		monitor:      monitor,
		interval:     interval,
		fetchTimeout: fetchTimeout,
		breaker:      breaker.New("capacity-fetch"),
		generation:   atomic.NewInt64(0),
		foreground:   atomic.NewBool(true),
		wake:         make(chan struct{}, 1),
	}
}

// Start begins polling the given venues. Any previous loop is stopped first;
// interval <= 0 keeps the configured default.
func (p *CapacityPoller) Start(ctx context.Context, interval time.Duration, venueIDs ...uuid.UUID) {
	if interval <= 0 {
		interval = p.interval
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	gen := p.generation.Inc()
	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	go p.run(runCtx, gen, interval, venueIDs)
}

// Stop cancels the loop immediately. An in-flight fetch may still complete,
// but its result is discarded.
func (p *CapacityPoller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *CapacityPoller) stopLocked() {
	if p.cancel == nil {
		return
	}
	p.generation.Inc()
	p.cancel()
	p.cancel = nil
}

// Pause suspends fetching while the host application is in the background.
// The loop keeps ticking but skips work.
func (p *CapacityPoller) Pause() {
	p.foreground.Store(false)
}

// Resume returns to the foreground: one immediate out-of-cycle fetch, then the
// regular interval.
func (p *CapacityPoller) Resume() {
	if !p.foreground.Swap(true) {
		select {
		case p.wake <- struct{}{}:
		default:
		}
	}
}

func (p *CapacityPoller) run(ctx context.Context, gen int64, interval time.Duration, venueIDs []uuid.UUID) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("capacity poller started: %d venue(s), interval %s", len(venueIDs), interval)

	p.pollAll(ctx, gen, venueIDs)

	for {
		select {
		case <-ctx.Done():
			log.Println("capacity poller stopped")
			return
		case <-ticker.C:
			if !p.foreground.Load() {
				continue
			}
			p.pollAll(ctx, gen, venueIDs)
		case <-p.wake:
			p.pollAll(ctx, gen, venueIDs)
		}
	}
}

func (p *CapacityPoller) pollAll(ctx context.Context, gen int64, venueIDs []uuid.UUID) {
	for _, venueID := range venueIDs {
		if ctx.Err() != nil {
			return
		}
		p.poll(ctx, gen, venueID)
	}
}

func (p *CapacityPoller) poll(ctx context.Context, gen int64, venueID uuid.UUID) {
	fetchCtx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
	defer cancel()

	start := time.Now()
	var snap *domain.VenueCapacity
	err := p.breaker.Execute(func() error {
		var ferr error
		snap, ferr = p.fetcher.Fetch(fetchCtx, venueID)
		return ferr
	})

	if err != nil {
		status := "failure"
		if errors.Is(err, domain.ErrFetchTimeout) || errors.Is(err, context.DeadlineExceeded) {
			status = "timeout"
		}
		p.monitor.TrackCapacityFetch(status, time.Since(start))

		if !errors.Is(err, context.Canceled) {
			log.Printf("capacity sync for venue %s failed, mirror retained: %v", venueID, err)
		}
		return
	}

	p.monitor.TrackCapacityFetch("success", time.Since(start))

	// A Stop (or restart) after this fetch began makes the result stale.
	if p.generation.Load() != gen {
		return
	}

	p.mirror.Replace(*snap)
}
