package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"venuegate/internal/core/domain"
)

// HTTPCapacityFetcher pulls authoritative capacity records over HTTP. A timed
// out request is reported as domain.ErrFetchTimeout so callers keep their
// mirrored snapshot; it is never mapped to an implicit capacity value.
type HTTPCapacityFetcher struct {
	baseURL string
	client  *http.Client
}

func NewHTTPCapacityFetcher(baseURL string, timeout time.Duration) *HTTPCapacityFetcher {
	return &HTTPCapacityFetcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type capacityPayload struct {
	VenueID   uuid.UUID `json:"venue_id"`
	Current   int       `json:"current"`
	Maximum   int       `json:"maximum"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *HTTPCapacityFetcher) Fetch(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error) {
	endpoint := fmt.Sprintf("%s/venues/%s/capacity", f.baseURL, venueID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, fmt.Errorf("%w: %v", domain.ErrFetchTimeout, err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", domain.ErrFetchTimeout, err)
		}
		return nil, fmt.Errorf("fetch capacity for venue %s: %w", venueID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrVenueNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch capacity for venue %s: unexpected status %d", venueID, resp.StatusCode)
	}

	var payload capacityPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode capacity for venue %s: %w", venueID, err)
	}

	return &domain.VenueCapacity{
		VenueID:   payload.VenueID,
		Current:   payload.Current,
		Maximum:   payload.Maximum,
		UpdatedAt: payload.UpdatedAt,
	}, nil
}
