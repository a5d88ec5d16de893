// Package geo talks to the Goong mapping API for geocoding, distance and
// routing. Map data is supplementary, not checkout-critical: every function
// swallows its own failures and returns a nil result instead of an error, so
// wayfinding degrades gracefully while the rest of the app keeps working.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/flicky/flowerstore-client/internal/config"
)

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Geometry struct {
	Location Location `json:"location"`
}

type GeocodeResult struct {
	PlaceID          string   `json:"place_id"`
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
}

type GeocodeResponse struct {
	Results []GeocodeResult `json:"results"`
	Status  string          `json:"status"`
}

type ValueText struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type DistanceElement struct {
	Status   string    `json:"status"`
	Distance ValueText `json:"distance"`
	Duration ValueText `json:"duration"`
}

type DistanceRow struct {
	Elements []DistanceElement `json:"elements"`
}

type DistanceMatrixResponse struct {
	Rows []DistanceRow `json:"rows"`
}

type Polyline struct {
	Points string `json:"points"`
}

type RouteLeg struct {
	Distance ValueText `json:"distance"`
	Duration ValueText `json:"duration"`
}

type Route struct {
	OverviewPolyline Polyline   `json:"overview_polyline"`
	Legs             []RouteLeg `json:"legs"`
}

type DirectionResponse struct {
	Routes []Route `json:"routes"`
}

type Prediction struct {
	PlaceID     string `json:"place_id"`
	Description string `json:"description"`
}

type PlacesResponse struct {
	Predictions []Prediction `json:"predictions"`
}

type PlaceDetail struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
}

type PlaceDetailResponse struct {
	Result PlaceDetail `json:"result"`
	Status string      `json:"status"`
}

type Client struct {
	baseURL string
	apiKey  string
	shopLat float64
	shopLng float64
	http    *http.Client
	log     *slog.Logger
}

func New(cfg config.MapConfig, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		shopLat: cfg.ShopLat,
		shopLng: cfg.ShopLng,
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
}

func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) *GeocodeResponse {
	var out GeocodeResponse
	if !c.get(ctx, "/geocode", url.Values{"latlng": {latlng(lat, lng)}}, &out) {
		return nil
	}
	return &out
}

func (c *Client) ForwardGeocode(ctx context.Context, address string) *GeocodeResponse {
	var out GeocodeResponse
	if !c.get(ctx, "/geocode", url.Values{"address": {address}}, &out) {
		return nil
	}
	return &out
}

// DistanceToShop measures driving distance from the given point to the shop.
func (c *Client) DistanceToShop(ctx context.Context, lat, lng float64) *DistanceMatrixResponse {
	query := url.Values{
		"origins":      {latlng(lat, lng)},
		"destinations": {latlng(c.shopLat, c.shopLng)},
		"vehicle":      {"car"},
	}
	var out DistanceMatrixResponse
	if !c.get(ctx, "/DistanceMatrix", query, &out) {
		return nil
	}
	return &out
}

// DirectionToShop returns a driving route to the shop, including the encoded
// overview polyline for rendering.
func (c *Client) DirectionToShop(ctx context.Context, lat, lng float64) *DirectionResponse {
	query := url.Values{
		"origin":      {latlng(lat, lng)},
		"destination": {latlng(c.shopLat, c.shopLng)},
		"vehicle":     {"car"},
	}
	var out DirectionResponse
	if !c.get(ctx, "/Direction", query, &out) {
		return nil
	}
	return &out
}

func (c *Client) SearchPlaces(ctx context.Context, query string) []Prediction {
	var out PlacesResponse
	if !c.get(ctx, "/Place/AutoComplete", url.Values{"input": {query}}, &out) {
		return nil
	}
	return out.Predictions
}

func (c *Client) PlaceDetail(ctx context.Context, placeID string) *PlaceDetail {
	var out PlaceDetailResponse
	if !c.get(ctx, "/Place/Detail", url.Values{"place_id": {placeID}}, &out) {
		return nil
	}
	return &out.Result
}

// get performs one keyed GET and reports whether out was populated. Any
// failure is logged and absorbed here.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) bool {
	query.Set("api_key", c.apiKey)
	u := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		c.log.Warn("map request build failed", "path", path, "error", err)
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("map request failed", "path", path, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.Warn("map request rejected", "path", path, "status", resp.StatusCode, "body", string(body))
		return false
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Warn("map response decode failed", "path", path, "error", err)
		return false
	}
	return true
}

func latlng(lat, lng float64) string {
	return fmt.Sprintf("%v,%v", lat, lng)
}
