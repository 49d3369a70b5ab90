package terrain_test

import (
	"testing"
	"testing/fstest"

	"github.com/alecthomas/assert/v2"

	"github.com/twpayne/go-terrain"
)

func TestLoadSettings(t *testing.T) {
	fsys := fstest.MapFS{
		"rome.toml": &fstest.MapFile{
			Data: []byte("" +
				"utm_zone = 33\n" +
				"time_zone = 1\n" +
				"\n" +
				"[start_location]\n" +
				"latitude = 41.9\n" +
				"longitude = 12.5\n",
			),
		},
		"partial.toml": &fstest.MapFile{
			Data: []byte("is_utc = false\n"),
		},
		"invalid_zone.toml": &fstest.MapFile{
			Data: []byte("utm_zone = 61\n"),
		},
		"mismatched.toml": &fstest.MapFile{
			Data: []byte("utm_zone = 30\ntime_zone = 3\n"),
		},
		"malformed.toml": &fstest.MapFile{
			Data: []byte("utm_zone = \n"),
		},
	}

	actual, err := terrain.LoadSettings(fsys, "rome.toml")
	assert.NoError(t, err)
	assert.Equal(t, terrain.Settings{
		StartLocation: terrain.GeoPoint{Latitude: 41.9, Longitude: 12.5},
		UTMZone:       33,
		TimeZone:      1,
		IsUTC:         true,
	}, actual)

	actual, err = terrain.LoadSettings(fsys, "partial.toml")
	assert.NoError(t, err)
	expected := terrain.DefaultSettings()
	expected.IsUTC = false
	assert.Equal(t, expected, actual)

	_, err = terrain.LoadSettings(fsys, "invalid_zone.toml")
	assert.IsError(t, err, terrain.ErrInvalidSettings)

	_, err = terrain.LoadSettings(fsys, "mismatched.toml")
	assert.IsError(t, err, terrain.ErrInvalidSettings)

	_, err = terrain.LoadSettings(fsys, "malformed.toml")
	assert.Error(t, err)

	_, err = terrain.LoadSettings(fsys, "missing.toml")
	assert.Error(t, err)
}

func TestSettingsConversions(t *testing.T) {
	settings := terrain.DefaultSettings()
	assert.NoError(t, settings.Validate())
	assert.True(t, settings.IsNorthernHemisphere())

	p := settings.UTMFromLatLon(settings.StartLocation)
	actual := settings.LatLonFromUTM(p)
	assertInDelta(t, settings.StartLocation.Latitude, actual.Latitude, 1e-6)
	assertInDelta(t, settings.StartLocation.Longitude, actual.Longitude, 1e-6)

	southern := terrain.Settings{
		StartLocation: terrain.GeoPoint{Latitude: -33.9, Longitude: 18.4},
		UTMZone:       34,
		TimeZone:      1,
	}
	assert.NoError(t, southern.Validate())
	for _, tc := range []struct {
		name        string
		settings    terrain.Settings
		expectedErr bool
	}{
		{
			name: "samoa",
			settings: terrain.Settings{
				StartLocation: terrain.GeoPoint{Latitude: -13.8, Longitude: -171.8},
				UTMZone:       2,
				TimeZone:      13,
			},
		},
		{
			name: "line_islands",
			settings: terrain.Settings{
				StartLocation: terrain.GeoPoint{Latitude: -9.9, Longitude: -150.2},
				UTMZone:       5,
				TimeZone:      14,
			},
		},
		{
			name: "time_zone_range",
			settings: terrain.Settings{
				UTMZone:  5,
				TimeZone: 15,
			},
			expectedErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.settings.Validate()
			if tc.expectedErr {
				assert.IsError(t, err, terrain.ErrInvalidSettings)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.False(t, southern.IsNorthernHemisphere())
	p = southern.UTMFromLatLon(southern.StartLocation)
	actual = southern.LatLonFromUTM(p)
	assertInDelta(t, -33.9, actual.Latitude, 1e-6)
	assertInDelta(t, 18.4, actual.Longitude, 1e-6)
}
