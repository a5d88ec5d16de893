package geo

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flicky/flowerstore-client/internal/config"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.MapConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		ShopLat: 10.8411276,
		ShopLng: 106.8090055,
	}
	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_ReverseGeocode(t *testing.T) {
	var got url.Values
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"place_id": "p1",
				"formatted_address": "12 Nguyen Hue, District 1",
				"geometry": {"location": {"lat": 10.77, "lng": 106.7}}
			}]
		}`))
	}))

	resp := client.ReverseGeocode(context.Background(), 10.77, 106.7)
	require.NotNil(t, resp)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "12 Nguyen Hue, District 1", resp.Results[0].FormattedAddress)
	assert.InDelta(t, 10.77, resp.Results[0].Geometry.Location.Lat, 1e-9)

	assert.Equal(t, "10.77,106.7", got.Get("latlng"))
	assert.Equal(t, "test-key", got.Get("api_key"))
}

func TestClient_ForwardGeocode(t *testing.T) {
	var got url.Values
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"status":"OK","results":[]}`))
	}))

	resp := client.ForwardGeocode(context.Background(), "12 Nguyen Hue")
	require.NotNil(t, resp)
	assert.Equal(t, "12 Nguyen Hue", got.Get("address"))
}

func TestClient_DistanceToShop(t *testing.T) {
	var got url.Values
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{
			"rows": [{"elements": [{
				"status": "OK",
				"distance": {"text": "4.2 km", "value": 4200},
				"duration": {"text": "12 mins", "value": 720}
			}]}]
		}`))
	}))

	resp := client.DistanceToShop(context.Background(), 10.77, 106.7)
	require.NotNil(t, resp)
	require.Len(t, resp.Rows, 1)
	require.Len(t, resp.Rows[0].Elements, 1)
	assert.Equal(t, 4200, resp.Rows[0].Elements[0].Distance.Value)

	assert.Equal(t, "10.77,106.7", got.Get("origins"))
	assert.Equal(t, "10.8411276,106.8090055", got.Get("destinations"))
	assert.Equal(t, "car", got.Get("vehicle"))
}

func TestClient_DirectionToShop(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"routes": [{
				"overview_polyline": {"points": "gef_Cyzk` + "`" + `S"},
				"legs": [{"distance": {"text": "4.2 km", "value": 4200},
					"duration": {"text": "12 mins", "value": 720}}]
			}]
		}`))
	}))

	resp := client.DirectionToShop(context.Background(), 10.77, 106.7)
	require.NotNil(t, resp)
	require.Len(t, resp.Routes, 1)
	assert.NotEmpty(t, resp.Routes[0].OverviewPolyline.Points)
}

func TestClient_SearchPlacesAndDetail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Place/AutoComplete":
			assert.Equal(t, "flower shop", r.URL.Query().Get("input"))
			w.Write([]byte(`{"predictions":[{"place_id":"p1","description":"Flower Shop, District 1"}]}`))
		case "/Place/Detail":
			assert.Equal(t, "p1", r.URL.Query().Get("place_id"))
			w.Write([]byte(`{
				"status": "OK",
				"result": {"place_id": "p1", "name": "Flower Shop",
					"formatted_address": "12 Nguyen Hue",
					"geometry": {"location": {"lat": 10.77, "lng": 106.7}}}
			}`))
		default:
			http.NotFound(w, r)
		}
	}))
	ctx := context.Background()

	predictions := client.SearchPlaces(ctx, "flower shop")
	require.Len(t, predictions, 1)
	assert.Equal(t, "p1", predictions[0].PlaceID)

	detail := client.PlaceDetail(ctx, predictions[0].PlaceID)
	require.NotNil(t, detail)
	assert.Equal(t, "Flower Shop", detail.Name)
	assert.InDelta(t, 106.7, detail.Geometry.Location.Lng, 1e-9)
}

func TestClient_SwallowsServerErrors(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	ctx := context.Background()

	assert.Nil(t, client.ReverseGeocode(ctx, 10.77, 106.7))
	assert.Nil(t, client.ForwardGeocode(ctx, "anywhere"))
	assert.Nil(t, client.DistanceToShop(ctx, 10.77, 106.7))
	assert.Nil(t, client.DirectionToShop(ctx, 10.77, 106.7))
	assert.Nil(t, client.SearchPlaces(ctx, "q"))
	assert.Nil(t, client.PlaceDetail(ctx, "p1"))
}

func TestClient_SwallowsTransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	cfg := config.MapConfig{BaseURL: srv.URL, APIKey: "test-key"}
	client := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Nil(t, client.ReverseGeocode(context.Background(), 10.77, 106.7))
}

func TestClient_SwallowsMalformedResponses(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	assert.Nil(t, client.ReverseGeocode(context.Background(), 10.77, 106.7))
}
