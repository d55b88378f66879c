package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepquest/internal/engine"
)

const searchBody = `{
	"documents": [
		{
			"id": "1",
			"place_name": "스타벅스 시청점",
			"category_name": "음식점 > 카페",
			"address_name": "서울 중구 태평로1가",
			"road_address_name": "서울 중구 세종대로 110",
			"x": "126.9780",
			"y": "37.5665",
			"distance": "120"
		},
		{
			"id": "2",
			"place_name": "이디야커피",
			"category_name": "음식점 > 카페",
			"address_name": "서울 중구 무교동",
			"road_address_name": "",
			"x": "bad",
			"y": "37.5670",
			"distance": "200"
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient("test-key", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("")
	require.Error(t, err)
}

func TestFindNearbyPlaces(t *testing.T) {
	var gotPath, gotAuth string
	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchBody))
	})

	origin := engine.Location{Latitude: 37.5665, Longitude: 126.978}
	places, err := c.FindNearbyPlaces(context.Background(), origin, "cafe", 500)
	require.NoError(t, err)

	assert.Equal(t, "/v2/local/search/category.json", gotPath)
	assert.Equal(t, "KakaoAK test-key", gotAuth)
	assert.Equal(t, []string{"CE7"}, gotQuery["category_group_code"])
	assert.Equal(t, []string{"500"}, gotQuery["radius"])
	assert.Equal(t, []string{"distance"}, gotQuery["sort"])

	// The second document has an unparseable coordinate and is dropped.
	require.Len(t, places, 1)
	assert.Equal(t, "스타벅스 시청점", places[0].PlaceName)
	assert.Equal(t, "서울 중구 세종대로 110", places[0].Address)
	assert.InDelta(t, 37.5665, places[0].Latitude, 1e-9)
	assert.InDelta(t, 126.978, places[0].Longitude, 1e-9)
}

func TestFindNearbyPlacesDefaultRadius(t *testing.T) {
	var gotRadius string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotRadius = r.URL.Query().Get("radius")
		_, _ = w.Write([]byte(`{"documents":[]}`))
	})

	_, err := c.FindNearbyPlaces(context.Background(), engine.Location{}, "cafe", 0)
	require.NoError(t, err)
	assert.Equal(t, "1000", gotRadius)
}

func TestSearchPlacesKeyword(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(searchBody))
	})

	places, err := c.SearchPlaces(context.Background(), "카페", nil)
	require.NoError(t, err)
	assert.Equal(t, "/v2/local/search/keyword.json", gotPath)
	assert.Equal(t, []string{"카페"}, gotQuery["query"])
	assert.NotContains(t, gotQuery, "sort")
	require.Len(t, places, 1)
}

func TestReverseGeocodePrefersRoadAddress(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/local/geo/coord2address.json", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"documents": [{
				"road_address": {"address_name": "서울 중구 세종대로 110"},
				"address": {"address_name": "서울 중구 태평로1가 31"}
			}]
		}`))
	})

	addr, err := c.ReverseGeocode(context.Background(), 37.5665, 126.978)
	require.NoError(t, err)
	assert.Equal(t, "서울 중구 세종대로 110", addr)
}

func TestReverseGeocodeEmptyResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"documents":[]}`))
	})
	addr, err := c.ReverseGeocode(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, addr)
}

func TestErrorStatusSurfaces(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
	_, err := c.FindNearbyPlaces(context.Background(), engine.Location{}, "cafe", 500)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestCategoryCodeFallback(t *testing.T) {
	assert.Equal(t, "CE7", CategoryCode("cafe"))
	assert.Equal(t, "CS2", CategoryCode("convenience_store"))
	assert.Equal(t, "SW8", CategoryCode("no_such_type"))
}

func TestDistance(t *testing.T) {
	// Seoul City Hall to Gwanghwamun, roughly a kilometer.
	d := Distance(37.5665, 126.9780, 37.5759, 126.9768)
	assert.InDelta(t, 1050, d, 150)

	assert.InDelta(t, 0, Distance(37.5, 127.0, 37.5, 127.0), 1e-6)
}
