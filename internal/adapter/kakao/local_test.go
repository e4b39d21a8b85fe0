package kakao

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y-smart/service-tripplan/internal/domain"
	"github.com/y-smart/service-tripplan/internal/domain/geo"
	"go.uber.org/zap"
)

func newLocalTestClient(t *testing.T, handler http.HandlerFunc) *LocalClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewLocalClient("test-key", time.Second, zap.NewNop()).WithBaseURL(server.URL)
}

func TestGeocode_ParsesStringCoordinates(t *testing.T) {
	client := newLocalTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/local/search/address.json", r.URL.Path)
		assert.Equal(t, "용인시청", r.URL.Query().Get("query"))
		_, _ = w.Write([]byte(`{
			"documents": [
				{"address_name": "경기 용인시 처인구", "x": "127.1776", "y": "37.2411"}
			]
		}`))
	})

	coord, ok, err := client.Geocode(context.Background(), "용인시청")

	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 37.2411, coord.Lat, 1e-9)
	assert.InDelta(t, 127.1776, coord.Lng, 1e-9)
}

func TestGeocode_NoDocumentsIsMissNotError(t *testing.T) {
	client := newLocalTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"documents": []}`))
	})

	_, ok, err := client.Geocode(context.Background(), "아틀란티스")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGeocode_BadCoordinateIsUpstreamError(t *testing.T) {
	client := newLocalTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"documents": [{"x": "east-ish", "y": "37.2"}]}`))
	})

	_, _, err := client.Geocode(context.Background(), "용인시청")

	require.Error(t, err)
	assert.Equal(t, domain.KindUpstream, domain.KindOf(err))
}

func TestReverseGeocode(t *testing.T) {
	client := newLocalTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/local/geo/coord2address.json", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("x"))
		assert.NotEmpty(t, r.URL.Query().Get("y"))
		_, _ = w.Write([]byte(`{
			"documents": [{"address": {"address_name": "경기 용인시 처인구 삼가동"}}]
		}`))
	})

	name, ok, err := client.ReverseGeocode(context.Background(), geo.Coordinate{Lat: 37.2411, Lng: 127.1776})

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "경기 용인시 처인구 삼가동", name)
}

func TestSearchPlaces(t *testing.T) {
	client := newLocalTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/local/search/keyword.json", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"documents": [
				{
					"place_name": "용인시청",
					"address_name": "경기 용인시 처인구 삼가동 6",
					"road_address_name": "경기 용인시 처인구 중부대로 1199",
					"category_name": "공공기관 > 시청",
					"x": "127.1776",
					"y": "37.2411"
				},
				{
					"place_name": "용인중앙시장",
					"address_name": "경기 용인시 처인구 김량장동",
					"road_address_name": "",
					"category_name": "가정,생활 > 시장",
					"x": "127.2045",
					"y": "37.2340"
				},
				{
					"place_name": "좌표 없는 곳",
					"x": "",
					"y": ""
				}
			]
		}`))
	})

	places, err := client.SearchPlaces(context.Background(), "용인")

	require.NoError(t, err)
	// The unparseable third document is skipped.
	require.Len(t, places, 2)

	assert.Equal(t, "용인시청", places[0].Name)
	assert.Equal(t, "경기 용인시 처인구 중부대로 1199", places[0].Address)
	assert.Equal(t, "공공기관 > 시청", places[0].Category)
	assert.InDelta(t, 37.2411, places[0].Coord.Lat, 1e-9)

	// Falls back to the lot-number address when no road address exists.
	assert.Equal(t, "경기 용인시 처인구 김량장동", places[1].Address)
}

func TestSearchPlaces_NonOKStatus(t *testing.T) {
	client := newLocalTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.SearchPlaces(context.Background(), "용인")

	require.Error(t, err)
	assert.Equal(t, domain.KindUpstream, domain.KindOf(err))
}

func TestDistanceBetween(t *testing.T) {
	client := NewLocalClient("test-key", time.Second, zap.NewNop())

	d := client.DistanceBetween(
		geo.Coordinate{Lat: 37.3219, Lng: 127.0947},
		geo.Coordinate{Lat: 37.2411, Lng: 127.1776},
	)
	assert.Greater(t, d, 10000)
	assert.Less(t, d, 13000)
}
