// Package geo implements the RoutingClient port against an external
// geocoding/routing HTTP service. The service resolves a free-text address
// into coordinates and a routed distance from the restaurant.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/ports"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"
)

// ErrAddressNotResolved is returned when the routing service cannot resolve
// the given address to a routable destination.
var ErrAddressNotResolved = errors.New("address could not be resolved to a route")

// Client calls the routing service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a routing client for the service at baseURL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

type routeResponse struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes int     `json:"duration_minutes"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

// Estimate resolves the address and returns the routed distance, travel time
// and destination coordinates.
func (c *Client) Estimate(ctx context.Context, address string) (ports.RouteEstimate, error) {
	if address == "" {
		return ports.RouteEstimate{}, errs.NewValueIsRequiredError("address")
	}

	endpoint := fmt.Sprintf("%s/route?address=%s", c.baseURL, url.QueryEscape(address))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.RouteEstimate{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.RouteEstimate{}, fmt.Errorf("routing request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusUnprocessableEntity:
		return ports.RouteEstimate{}, fmt.Errorf("%w: %s", ErrAddressNotResolved, address)
	default:
		return ports.RouteEstimate{}, fmt.Errorf("routing service returned status %d", resp.StatusCode)
	}

	var body routeResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.RouteEstimate{}, fmt.Errorf("decode routing response: %w", err)
	}

	destination, err := kernel.NewGeoPoint(body.Latitude, body.Longitude)
	if err != nil {
		return ports.RouteEstimate{}, err
	}

	return ports.RouteEstimate{
		DistanceKm:      body.DistanceKm,
		DurationMinutes: body.DurationMinutes,
		Destination:     destination,
	}, nil
}
