// Package location wraps the Kakao Local REST API for nearby-place lookup,
// keyword search, and reverse geocoding. Callers treat every failure as soft:
// a quest generated without a location is still a quest.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"stepquest/internal/engine"
)

const DefaultBaseURL = "https://dapi.kakao.com"

// categoryCodes maps template place types to Kakao category group codes.
var categoryCodes = map[string]string{
	"convenience_store": "CS2",
	"cafe":              "CE7",
	"restaurant":        "FD6",
	"supermarket":       "MT1",
	"mart":              "MT1",
	"book_store":        "SW8",
	"bank":              "BK9",
	"hair_salon":        "HP8",
	"hospital":          "HP8",
	"pharmacy":          "PM9",
	"gas_station":       "OL7",
	"parking":           "PK6",
	"bus_station":       "SW8",
	"store":             "MT1",
	"street":            "SW8",
}

const fallbackCategoryCode = "SW8"

// CategoryCode returns the Kakao category group code for a place type.
func CategoryCode(placeType string) string {
	if code, ok := categoryCodes[placeType]; ok {
		return code
	}
	return fallbackCategoryCode
}

type kakaoPlace struct {
	ID              string `json:"id"`
	PlaceName       string `json:"place_name"`
	CategoryName    string `json:"category_name"`
	AddressName     string `json:"address_name"`
	RoadAddressName string `json:"road_address_name"`
	X               string `json:"x"` // longitude
	Y               string `json:"y"` // latitude
	Distance        string `json:"distance"`
}

type kakaoSearchResponse struct {
	Documents []kakaoPlace `json:"documents"`
}

type kakaoAddressResponse struct {
	Documents []struct {
		RoadAddress *struct {
			AddressName string `json:"address_name"`
		} `json:"road_address"`
		Address *struct {
			AddressName string `json:"address_name"`
		} `json:"address"`
	} `json:"documents"`
}

// Client calls the Kakao Local API. One-shot request/response, no retry, no
// cache.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

type ClientOption func(*Client)

func WithBaseURL(base string) ClientOption {
	return func(c *Client) { c.baseURL = base }
}

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(log *zap.Logger) ClientOption {
	return func(c *Client) { c.log = log }
}

func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("kakao api key is required")
	}
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FindNearbyPlaces searches for places of the given type around origin,
// sorted by distance. Satisfies engine.PlaceFinder.
func (c *Client) FindNearbyPlaces(ctx context.Context, origin engine.Location, placeType string, radiusMeters int) ([]engine.Location, error) {
	if radiusMeters <= 0 {
		radiusMeters = 1000
	}
	q := url.Values{}
	q.Set("category_group_code", CategoryCode(placeType))
	q.Set("x", strconv.FormatFloat(origin.Longitude, 'f', -1, 64))
	q.Set("y", strconv.FormatFloat(origin.Latitude, 'f', -1, 64))
	q.Set("radius", strconv.Itoa(radiusMeters))
	q.Set("sort", "distance")

	var resp kakaoSearchResponse
	if err := c.get(ctx, "/v2/local/search/category.json", q, &resp); err != nil {
		return nil, err
	}
	return placesToLocations(resp.Documents), nil
}

// SearchPlaces looks up places by keyword, optionally sorted by distance from
// the given origin.
func (c *Client) SearchPlaces(ctx context.Context, query string, origin *engine.Location) ([]engine.Location, error) {
	q := url.Values{}
	q.Set("query", query)
	if origin != nil {
		q.Set("x", strconv.FormatFloat(origin.Longitude, 'f', -1, 64))
		q.Set("y", strconv.FormatFloat(origin.Latitude, 'f', -1, 64))
		q.Set("sort", "distance")
	}

	var resp kakaoSearchResponse
	if err := c.get(ctx, "/v2/local/search/keyword.json", q, &resp); err != nil {
		return nil, err
	}
	return placesToLocations(resp.Documents), nil
}

// ReverseGeocode resolves coordinates to a human-readable address. Returns
// an empty string when nothing matches.
func (c *Client) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	q := url.Values{}
	q.Set("x", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("y", strconv.FormatFloat(latitude, 'f', -1, 64))

	var resp kakaoAddressResponse
	if err := c.get(ctx, "/v2/local/geo/coord2address.json", q, &resp); err != nil {
		return "", err
	}
	if len(resp.Documents) == 0 {
		return "", nil
	}
	doc := resp.Documents[0]
	if doc.RoadAddress != nil && doc.RoadAddress.AddressName != "" {
		return doc.RoadAddress.AddressName, nil
	}
	if doc.Address != nil {
		return doc.Address.AddressName, nil
	}
	return "", nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("kakao request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("kakao request: unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode kakao response: %w", err)
	}
	return nil
}

func placesToLocations(places []kakaoPlace) []engine.Location {
	out := make([]engine.Location, 0, len(places))
	for _, p := range places {
		lat, errY := strconv.ParseFloat(p.Y, 64)
		lng, errX := strconv.ParseFloat(p.X, 64)
		if errY != nil || errX != nil {
			continue
		}
		addr := p.RoadAddressName
		if addr == "" {
			addr = p.AddressName
		}
		out = append(out, engine.Location{
			Latitude:  lat,
			Longitude: lng,
			Address:   addr,
			PlaceName: p.PlaceName,
			Category:  p.CategoryName,
		})
	}
	return out
}

// Distance returns the great-circle distance between two coordinates in
// meters (haversine).
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c * 1000
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
