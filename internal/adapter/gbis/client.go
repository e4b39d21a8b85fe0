// Package gbis implements the Gyeonggi bus information system client for
// live arrivals, vehicle positions and route lookups.
package gbis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/y-smart/service-tripplan/internal/domain"
	"github.com/y-smart/service-tripplan/internal/domain/transit"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://apis.gg.go.kr/GGITS"

// Client calls the GBIS open API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates a GBIS client with the given timeout.
func NewClient(apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// WithBaseURL overrides the API base URL. Used by tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// Arrivals fetches upcoming bus arrivals for a station.
func (c *Client) Arrivals(ctx context.Context, stationID string) ([]transit.BusArrival, error) {
	q := url.Values{"pSize": {"10"}, "STATION_ID": {stationID}}
	raw, err := c.get(ctx, "/BusArrivalInfo/Station", q, "BusArrivalInfo")
	if err != nil {
		return nil, err
	}
	records, err := decodeRecordList[busArrivalRecord](raw)
	if err != nil {
		return nil, domain.NewUpstreamError("bus arrival decode failed", err)
	}

	arrivals := make([]transit.BusArrival, 0, len(records))
	for _, r := range records {
		arrivals = append(arrivals, r.toDomain())
	}
	return arrivals, nil
}

// Locations fetches live vehicle positions for a route.
func (c *Client) Locations(ctx context.Context, routeID string) ([]transit.BusLocation, error) {
	q := url.Values{"ROUTE_ID": {routeID}}
	raw, err := c.get(ctx, "/BusLocationInfo", q, "BusLocationInfo")
	if err != nil {
		return nil, err
	}
	records, err := decodeRecordList[busLocationRecord](raw)
	if err != nil {
		return nil, domain.NewUpstreamError("bus location decode failed", err)
	}

	locations := make([]transit.BusLocation, 0, len(records))
	for _, r := range records {
		locations = append(locations, r.toDomain())
	}
	return locations, nil
}

// RoutesByName looks up bus lines by route name.
func (c *Client) RoutesByName(ctx context.Context, routeName string) ([]transit.BusRoute, error) {
	q := url.Values{"ROUTE_NM": {routeName}}
	raw, err := c.get(ctx, "/BusRouteInfo", q, "BusRouteInfo")
	if err != nil {
		return nil, err
	}
	records, err := decodeRecordList[busRouteRecord](raw)
	if err != nil {
		return nil, domain.NewUpstreamError("bus route decode failed", err)
	}

	routes := make([]transit.BusRoute, 0, len(records))
	for _, r := range records {
		routes = append(routes, r.toDomain())
	}
	return routes, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, envelopeKey string) (json.RawMessage, error) {
	q.Set("KEY", c.apiKey)
	q.Set("TYPE", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamError("bus information request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUpstreamError(
			fmt.Sprintf("bus information request returned status %d", resp.StatusCode), nil)
	}

	var envelope map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, domain.NewUpstreamError("bus information decode failed", err)
	}
	return envelope[envelopeKey], nil
}
