package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"courier-connect/internal/core/httpclient"
)

// HTTPFeedProvider implements ports.LocationProvider against an external
// location feed. The feed serves GET <baseURL>/<deliveryID> with a JSON body
// carrying the current street position.
type HTTPFeedProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFeedProvider creates a provider for the given feed base URL.
func NewHTTPFeedProvider(baseURL string) *HTTPFeedProvider {
	return &HTTPFeedProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  httpclient.NewClient(10 * time.Second),
	}
}

// feedResponse represents the JSON structure from the location feed.
type feedResponse struct {
	CurrentLocation string `json:"currentLocation"`
}

// CurrentLocation fetches the latest position sample for a delivery.
func (p *HTTPFeedProvider) CurrentLocation(ctx context.Context, deliveryID string) (string, error) {
	url := fmt.Sprintf("%s/%s", p.baseURL, deliveryID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch location feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("location feed returned status %d", resp.StatusCode)
	}

	var body feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode location feed response: %w", err)
	}
	if body.CurrentLocation == "" {
		return "", fmt.Errorf("location feed returned empty location")
	}

	return body.CurrentLocation, nil
}

// simulatedRoute is the canned loop of street positions used when no feed is
// configured.
var simulatedRoute = []string{
	"Mission Street & 5th Street",
	"Mission Street & 3rd Street",
	"Market Street & 2nd Street",
	"Business Ave & Main Street",
}

// SimulatedFeedProvider implements ports.LocationProvider without any
// external feed, walking each delivery through a fixed loop of street
// positions.
type SimulatedFeedProvider struct {
	mu    sync.Mutex
	ticks map[string]int
}

// NewSimulatedFeedProvider creates a new SimulatedFeedProvider.
func NewSimulatedFeedProvider() *SimulatedFeedProvider {
	return &SimulatedFeedProvider{
		ticks: make(map[string]int),
	}
}

// CurrentLocation returns the next position on the simulated route for the
// delivery.
func (p *SimulatedFeedProvider) CurrentLocation(_ context.Context, deliveryID string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tick := p.ticks[deliveryID]
	p.ticks[deliveryID] = tick + 1
	return simulatedRoute[tick%len(simulatedRoute)], nil
}
