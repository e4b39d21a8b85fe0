package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/y-smart/service-tripplan/internal/domain"
	"github.com/y-smart/service-tripplan/internal/domain/geo"
	"github.com/y-smart/service-tripplan/internal/domain/place"
	"go.uber.org/zap"
)

const defaultLocalBaseURL = "https://dapi.kakao.com"

// LocalClient calls the Kakao Local REST API for geocoding, reverse
// geocoding and keyword place search.
type LocalClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewLocalClient creates a local-search client with the given timeout.
func NewLocalClient(apiKey string, timeout time.Duration, logger *zap.Logger) *LocalClient {
	return &LocalClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultLocalBaseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// WithBaseURL overrides the API base URL. Used by tests.
func (c *LocalClient) WithBaseURL(baseURL string) *LocalClient {
	c.baseURL = baseURL
	return c
}

// The local API returns coordinates as decimal strings: x is longitude,
// y is latitude.
type addressDocument struct {
	AddressName string `json:"address_name"`
	X           string `json:"x"`
	Y           string `json:"y"`
}

type placeDocument struct {
	PlaceName    string `json:"place_name"`
	AddressName  string `json:"address_name"`
	RoadAddress  string `json:"road_address_name"`
	CategoryName string `json:"category_name"`
	X            string `json:"x"`
	Y            string `json:"y"`
}

// Geocode resolves a free-text address to a coordinate. A provider miss is
// (zero, false, nil), not an error.
func (c *LocalClient) Geocode(ctx context.Context, address string) (geo.Coordinate, bool, error) {
	var payload struct {
		Documents []addressDocument `json:"documents"`
	}
	if err := c.get(ctx, "/v2/local/search/address.json", url.Values{"query": {address}}, &payload); err != nil {
		return geo.Coordinate{}, false, err
	}
	if len(payload.Documents) == 0 {
		return geo.Coordinate{}, false, nil
	}

	coord, err := parseCoordinate(payload.Documents[0].X, payload.Documents[0].Y)
	if err != nil {
		return geo.Coordinate{}, false, domain.NewUpstreamError("geocode coordinate parse failed", err)
	}
	return coord, true, nil
}

// ReverseGeocode resolves a coordinate to its address name.
func (c *LocalClient) ReverseGeocode(ctx context.Context, coord geo.Coordinate) (string, bool, error) {
	var payload struct {
		Documents []struct {
			Address struct {
				AddressName string `json:"address_name"`
			} `json:"address"`
		} `json:"documents"`
	}
	q := url.Values{
		"x": {strconv.FormatFloat(coord.Lng, 'f', -1, 64)},
		"y": {strconv.FormatFloat(coord.Lat, 'f', -1, 64)},
	}
	if err := c.get(ctx, "/v2/local/geo/coord2address.json", q, &payload); err != nil {
		return "", false, err
	}
	if len(payload.Documents) == 0 {
		return "", false, nil
	}
	return payload.Documents[0].Address.AddressName, true, nil
}

// SearchPlaces runs a keyword place search.
func (c *LocalClient) SearchPlaces(ctx context.Context, keyword string) ([]place.Place, error) {
	var payload struct {
		Documents []placeDocument `json:"documents"`
	}
	if err := c.get(ctx, "/v2/local/search/keyword.json", url.Values{"query": {keyword}}, &payload); err != nil {
		return nil, err
	}

	places := make([]place.Place, 0, len(payload.Documents))
	for _, d := range payload.Documents {
		coord, err := parseCoordinate(d.X, d.Y)
		if err != nil {
			c.logger.Warn("skipping place with unparseable coordinate",
				zap.String("place", d.PlaceName), zap.Error(err))
			continue
		}
		address := d.RoadAddress
		if address == "" {
			address = d.AddressName
		}
		places = append(places, place.Place{
			Name:     d.PlaceName,
			Address:  address,
			Category: d.CategoryName,
			Coord:    coord,
		})
	}
	return places, nil
}

// DistanceBetween returns the straight-line distance in meters.
func (c *LocalClient) DistanceBetween(a, b geo.Coordinate) int {
	return geo.DistanceMeters(a, b)
}

func (c *LocalClient) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewUpstreamError("local search request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return domain.NewUpstreamError(
			fmt.Sprintf("local search returned status %d", resp.StatusCode), nil)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewUpstreamError("local search response decode failed", err)
	}
	return nil
}

func parseCoordinate(x, y string) (geo.Coordinate, error) {
	lng, err := strconv.ParseFloat(x, 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("invalid longitude %q: %w", x, err)
	}
	lat, err := strconv.ParseFloat(y, 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("invalid latitude %q: %w", y, err)
	}
	return geo.Coordinate{Lat: lat, Lng: lng}, nil
}
