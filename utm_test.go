package terrain_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/twpayne/go-terrain"
)

func TestUTMZone(t *testing.T) {
	for _, tc := range []struct {
		name     string
		lat      float64
		lon      float64
		expected int
	}{
		{name: "bologna", lat: 44.5, lon: 11.35, expected: 32},
		{name: "greenwich", lat: 51.5, lon: -0.1, expected: 30},
		{name: "new_york", lat: 40.7, lon: -74, expected: 18},
		{name: "cape_town", lat: -33.9, lon: 18.4, expected: 34},
		{name: "wrapped", lat: 44.5, lon: 371.35, expected: 32},
		{name: "antimeridian", lat: 0, lon: -180, expected: 1},
		{name: "norway", lat: 60, lon: 5, expected: 32},
		{name: "south_of_norway", lat: 55, lon: 5, expected: 31},
		{name: "svalbard_31", lat: 78, lon: 5, expected: 31},
		{name: "svalbard_33", lat: 78, lon: 15, expected: 33},
		{name: "svalbard_35", lat: 78, lon: 25, expected: 35},
		{name: "svalbard_37", lat: 78, lon: 35, expected: 37},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, terrain.UTMZone(tc.lat, tc.lon))
		})
	}
}

func TestLatLonToUTMCentralMeridian(t *testing.T) {
	for _, tc := range []struct {
		name             string
		lat              float64
		lon              float64
		expectedZone     int
		expectedNorthing float64
	}{
		{name: "equator", lat: 0, lon: 9, expectedZone: 32, expectedNorthing: 0},
		{name: "north", lat: 45, lon: 9, expectedZone: 32, expectedNorthing: 4982950.4},
		{name: "south", lat: -45, lon: 15, expectedZone: 33, expectedNorthing: 10000000 - 4982950.4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			easting, northing, zone := terrain.LatLonToUTM(tc.lat, tc.lon)
			assert.Equal(t, tc.expectedZone, zone)
			assertInDelta(t, 500000, easting, 1e-6)
			assertInDelta(t, tc.expectedNorthing, northing, 0.1)
		})
	}
}

func TestUTMRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		lat  float64
		lon  float64
	}{
		{name: "bologna", lat: 44.5, lon: 11.35},
		{name: "trieste", lat: 45.65, lon: 13.77},
		{name: "bergen", lat: 60.39, lon: 5.32},
		{name: "cape_town", lat: -33.9, lon: 18.4},
		{name: "quito", lat: -0.18, lon: -78.47},
		{name: "longyearbyen", lat: 78.22, lon: 15.65},
	} {
		t.Run(tc.name, func(t *testing.T) {
			easting, northing, zone := terrain.LatLonToUTM(tc.lat, tc.lon)
			assert.True(t, easting > 160000 && easting < 840000)
			if tc.lat < 0 {
				assert.True(t, northing > 0 && northing < 10000000)
			}
			lat, lon := terrain.UTMToLatLon(zone, tc.lat, easting, northing)
			assertInDelta(t, tc.lat, lat, 1e-5)
			assertInDelta(t, tc.lon, lon, 1e-5)
		})
	}
}

func TestLatLonToUTMForceZone(t *testing.T) {
	// Points either side of a zone boundary, forced into the same zone.
	east1, north1 := terrain.LatLonToUTMForceZone(32, 45, 11.99)
	east2, north2 := terrain.LatLonToUTMForceZone(32, 45, 12.01)
	assertInDelta(t, 1576.3, east2-east1, 0.5)
	assertInDelta(t, 58.4, north2-north1, 0.5)

	east3, _, zone := terrain.LatLonToUTM(45, 12.01)
	assert.Equal(t, 33, zone)
	assert.True(t, east3 < 500000)
	assert.True(t, east2 > 500000)
}

func TestIsValidUTMTimeZone(t *testing.T) {
	for _, tc := range []struct {
		utmZone  int
		timeZone int
		expected bool
	}{
		{utmZone: 32, timeZone: 1, expected: true},
		{utmZone: 33, timeZone: 1, expected: true},
		{utmZone: 31, timeZone: 1, expected: false},
		{utmZone: 34, timeZone: 1, expected: true},
		{utmZone: 32, timeZone: -5, expected: true},
		{utmZone: 18, timeZone: -5, expected: true},
		{utmZone: 17, timeZone: -5, expected: true},
		{utmZone: 16, timeZone: -5, expected: false},
		{utmZone: 2, timeZone: 13, expected: true},
		{utmZone: 4, timeZone: 14, expected: false},
		{utmZone: 5, timeZone: 14, expected: true},
		{utmZone: 60, timeZone: 13, expected: false},
		{utmZone: 60, timeZone: -12, expected: true},
		{utmZone: 1, timeZone: 12, expected: true},
	} {
		assert.Equal(t, tc.expected, terrain.IsValidUTMTimeZone(tc.utmZone, tc.timeZone))
	}
}
