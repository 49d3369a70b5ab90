package terrain_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/twpayne/go-terrain"
)

func TestGeomProjector(t *testing.T) {
	p, err := terrain.NewGeomProjector()
	assert.NoError(t, err)

	for _, tc := range []struct {
		name string
		lat  float64
		lon  float64
	}{
		{name: "bologna", lat: 44.5, lon: 11.35},
		{name: "bergen", lat: 60.39, lon: 5.32},
		{name: "cape_town", lat: -33.9, lon: 18.4},
		{name: "quito", lat: -0.18, lon: -78.47},
	} {
		t.Run(tc.name, func(t *testing.T) {
			zone := terrain.UTMZone(tc.lat, tc.lon)
			easting, northing, err := p.LatLonToUTMForceZone(zone, tc.lat, tc.lon)
			assert.NoError(t, err)
			expectedEasting, expectedNorthing := terrain.LatLonToUTMForceZone(zone, tc.lat, tc.lon)
			assertInDelta(t, expectedEasting, easting, 0.05)
			assertInDelta(t, expectedNorthing, northing, 0.05)

			lat, lon, err := p.UTMToLatLon(zone, tc.lat, easting, northing)
			assert.NoError(t, err)
			assertInDelta(t, tc.lat, lat, 1e-6)
			assertInDelta(t, tc.lon, lon, 1e-6)
		})
	}

	_, _, err = p.LatLonToUTMForceZone(0, 0, 0)
	assert.Error(t, err)
	_, _, err = p.UTMToLatLon(61, 0, 500000, 0)
	assert.Error(t, err)
}

func TestGeomProjectorElevationService(t *testing.T) {
	p, err := terrain.NewGeomProjector()
	assert.NoError(t, err)

	settings := terrain.DefaultSettings()
	dem := terrain.NewRasterGrid()
	assert.NoError(t, dem.InitializeValue(newBolognaHeader(10, 10), 100))
	s, err := terrain.NewElevationService(dem, settings, terrain.WithProjector(p))
	assert.NoError(t, err)

	actual, err := s.Elevation(settings.LatLonFromUTM(terrain.UTMPoint{
		X: dem.Header.LLCorner.X + 500,
		Y: dem.Header.LLCorner.Y + 500,
	}))
	assert.NoError(t, err)
	assert.Equal(t, 100.0, actual)
}
