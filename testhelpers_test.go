//go:build integration

package main_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/y-smart/service-tripplan/internal/adapter/gbis"
	"github.com/y-smart/service-tripplan/internal/adapter/kakao"
	"github.com/y-smart/service-tripplan/internal/application"
	"github.com/y-smart/service-tripplan/internal/handler"
	"github.com/y-smart/service-tripplan/internal/metrics"
	"github.com/y-smart/service-tripplan/internal/middleware"
	"github.com/y-smart/service-tripplan/internal/repository"
	"go.uber.org/zap"
)

// fakeKakao serves both the local-search and directions APIs from one
// in-process server so the full stack can run without network access.
func fakeKakao(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/local/search/address.json", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("query") {
		case "수지구청역":
			_, _ = w.Write([]byte(`{"documents": [{"x": "127.0947", "y": "37.3219"}]}`))
		case "용인시청":
			_, _ = w.Write([]byte(`{"documents": [{"x": "127.1776", "y": "37.2411"}]}`))
		default:
			_, _ = w.Write([]byte(`{"documents": []}`))
		}
	})
	mux.HandleFunc("/v2/local/search/keyword.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"documents": [
			{"place_name": "용인시청", "road_address_name": "경기 용인시 처인구 중부대로 1199", "x": "127.1776", "y": "37.2411"}
		]}`))
	})
	mux.HandleFunc("/v1/directions", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"routes": [
			{"summary": {"distance": 8400, "duration": 1800, "fare": {"taxi": 9800}}}
		]}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func fakeGBIS(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/BusArrivalInfo/Station", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"BusArrivalInfo": [
			{"ROUTE_NM": "5-3", "PREDICT_TIME": 4, "LOCATION_NO": 3, "REMAIN_SEAT": 20}
		]}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// newTestServer wires the whole service against the fake upstreams, the same
// way main does, and serves it from an httptest server.
func newTestServer(t *testing.T, demoMode bool) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	collector := metrics.NewCollector()

	kakaoServer := fakeKakao(t)
	gbisServer := fakeGBIS(t)

	mapService := kakao.NewLocalClient("test-key", time.Second, log).WithBaseURL(kakaoServer.URL)
	directionsClient := kakao.NewDirectionsClient("test-key", time.Second, log).WithBaseURL(kakaoServer.URL)
	gbisClient := gbis.NewClient("test-key", time.Second, log).WithBaseURL(gbisServer.URL)

	store := repository.NewTripStore(30 * time.Minute)

	tripService := application.NewTripService(mapService, directionsClient, store, demoMode, time.Second, collector, log)
	placeService := application.NewPlaceService(mapService, collector, log)
	transitService := application.NewTransitService(gbisClient, collector, log)
	paymentService := application.NewPaymentService(store, 5*time.Millisecond, collector, log)

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())

	handler.NewHealthHandler("service-tripplan").RegisterRoutes(router)
	handler.NewTripHandler(tripService).RegisterRoutes(&router.RouterGroup)
	handler.NewPlaceHandler(placeService).RegisterRoutes(&router.RouterGroup)
	handler.NewTransitHandler(transitService).RegisterRoutes(&router.RouterGroup)
	handler.NewPaymentHandler(paymentService).RegisterRoutes(&router.RouterGroup)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}
