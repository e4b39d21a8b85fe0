// Package kakao implements the Kakao REST API clients used by the
// trip-planning service. All provider-specific payload shapes are parsed
// here; nothing outside this package branches on Kakao field names.
package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/y-smart/service-tripplan/internal/domain"
	"github.com/y-smart/service-tripplan/internal/domain/geo"
	"github.com/y-smart/service-tripplan/internal/domain/route"
	"go.uber.org/zap"
)

const defaultNaviBaseURL = "https://apis-navi.kakaomobility.com"

// DirectionsClient calls the Kakao Mobility directions API.
type DirectionsClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewDirectionsClient creates a directions client with the given timeout.
func NewDirectionsClient(apiKey string, timeout time.Duration, logger *zap.Logger) *DirectionsClient {
	return &DirectionsClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultNaviBaseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// WithBaseURL overrides the API base URL. Used by tests.
func (c *DirectionsClient) WithBaseURL(baseURL string) *DirectionsClient {
	c.baseURL = baseURL
	return c
}

// directionsResponse is the subset of the provider payload the app consumes.
type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance int `json:"distance"`
			Duration int `json:"duration"`
			Fare     struct {
				Taxi int `json:"taxi"`
				Toll int `json:"toll"`
			} `json:"fare"`
		} `json:"summary"`
	} `json:"routes"`
}

// Directions requests candidate routes between two coordinates with the
// fixed RECOMMEND priority. A non-success response is a total failure; the
// caller decides whether to degrade to mock data.
func (c *DirectionsClient) Directions(ctx context.Context, origin, dest geo.Coordinate) ([]route.Candidate, error) {
	q := url.Values{}
	q.Set("origin", fmt.Sprintf("%f,%f", origin.Lng, origin.Lat))
	q.Set("destination", fmt.Sprintf("%f,%f", dest.Lng, dest.Lat))
	q.Set("priority", "RECOMMEND")

	reqURL := c.baseURL + "/v1/directions?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamError("directions request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUpstreamError(
			fmt.Sprintf("directions request returned status %d", resp.StatusCode), nil)
	}

	var payload directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.NewUpstreamError("directions response decode failed", err)
	}

	candidates := make([]route.Candidate, 0, len(payload.Routes))
	for _, r := range payload.Routes {
		candidates = append(candidates, route.Candidate{
			DurationSec: r.Summary.Duration,
			DistanceM:   r.Summary.Distance,
			TaxiFareKRW: r.Summary.Fare.Taxi,
		})
	}

	c.logger.Debug("directions response",
		zap.Int("candidates", len(candidates)),
	)
	return candidates, nil
}
