package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/discovery"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/infrastructure/config"
)

// maxRoutingResponseSize limits the response body size to prevent memory exhaustion
const maxRoutingResponseSize = 1 * 1024 * 1024 // 1MB max response

// routeResponse is the routing service wire format
type routeResponse struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationMinutes float64 `json:"duration_minutes"`
	NoRoute         bool    `json:"no_route"`
}

// RoutingClient resolves travel metrics against an external routing service.
// It implements discovery.DistanceProvider.
type RoutingClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewRoutingClient creates a new RoutingClient from the geo configuration
func NewRoutingClient(cfg *config.GeoConfig) *RoutingClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 3 * time.Second
	}
	return &RoutingClient{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Distance returns the route length in meters from origin to destination.
// Distances are resolved over the road network, so the driving profile is
// used regardless of the travel mode.
func (c *RoutingClient) Distance(ctx context.Context, origin discovery.Location, destination string) (float64, error) {
	route, err := c.route(ctx, origin, destination, discovery.ModeDriving)
	if err != nil {
		return 0, err
	}
	return route.DistanceMeters, nil
}

// TravelTime returns the travel duration in minutes for the given mode
func (c *RoutingClient) TravelTime(ctx context.Context, origin discovery.Location, destination string, mode discovery.TravelMode) (float64, error) {
	route, err := c.route(ctx, origin, destination, mode)
	if err != nil {
		return 0, err
	}
	return route.DurationMinutes, nil
}

func (c *RoutingClient) route(ctx context.Context, origin discovery.Location, destination string, mode discovery.TravelMode) (*routeResponse, error) {
	params := url.Values{}
	params.Set("origin", string(origin))
	params.Set("destination", destination)
	params.Set("mode", string(mode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/route?"+params.Encode(), nil)
	if err != nil {
		return nil, &discovery.GeoLookupError{Destination: destination, Err: err}
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &discovery.GeoLookupError{Destination: destination, Err: err}
	}
	defer resp.Body.Close()

	// 404 means the service found no route between the points, which is a
	// domain answer rather than a transport failure
	if resp.StatusCode == http.StatusNotFound {
		return nil, discovery.ErrNoRoute
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &discovery.GeoLookupError{
			Destination: destination,
			Err:         fmt.Errorf("routing service returned status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRoutingResponseSize))
	if err != nil {
		return nil, &discovery.GeoLookupError{Destination: destination, Err: err}
	}

	var route routeResponse
	if err := json.Unmarshal(body, &route); err != nil {
		return nil, &discovery.GeoLookupError{Destination: destination, Err: err}
	}
	if route.NoRoute {
		return nil, discovery.ErrNoRoute
	}
	return &route, nil
}
