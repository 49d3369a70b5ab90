package terrain

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings fixes the UTM zone and hemisphere of a project, so that
// conversions do not need them on every call.
type Settings struct {
	StartLocation GeoPoint `toml:"start_location"`
	UTMZone       int      `toml:"utm_zone"`
	TimeZone      int      `toml:"time_zone"`
	IsUTC         bool     `toml:"is_utc"`
}

// DefaultSettings returns settings for Bologna, Italy.
func DefaultSettings() Settings {
	return Settings{
		StartLocation: GeoPoint{Latitude: 44.5, Longitude: 11.35},
		UTMZone:       32,
		TimeZone:      1,
		IsUTC:         true,
	}
}

// LoadSettings reads TOML settings from filename in fsys. Unset fields keep
// their default values.
//
//	utm_zone = 33
//	time_zone = 1
//	is_utc = true
//
//	[start_location]
//	latitude = 41.9
//	longitude = 12.5
func LoadSettings(fsys fs.FS, filename string) (Settings, error) {
	settings := DefaultSettings()
	if _, err := toml.DecodeFS(fsys, filename, &settings); err != nil {
		return Settings{}, err
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate returns an error if s is inconsistent.
func (s Settings) Validate() error {
	switch {
	case s.UTMZone < 1 || s.UTMZone > 60:
		return fmt.Errorf("%w: utm zone %d", ErrInvalidSettings, s.UTMZone)
	case s.TimeZone < -12 || s.TimeZone > 14:
		return fmt.Errorf("%w: time zone %d", ErrInvalidSettings, s.TimeZone)
	case s.StartLocation.Latitude < -90 || s.StartLocation.Latitude > 90:
		return fmt.Errorf("%w: latitude %f", ErrInvalidSettings, s.StartLocation.Latitude)
	case !IsValidUTMTimeZone(s.UTMZone, s.TimeZone):
		return fmt.Errorf("%w: time zone %d too far east of utm zone %d", ErrInvalidSettings, s.TimeZone, s.UTMZone)
	default:
		return nil
	}
}

// IsNorthernHemisphere returns whether s's start location is in the northern
// hemisphere.
func (s Settings) IsNorthernHemisphere() bool {
	return s.StartLocation.Latitude >= 0
}

// LatLonFromUTM returns the geographic coordinates of p in s's zone and
// hemisphere.
func (s Settings) LatLonFromUTM(p UTMPoint) GeoPoint {
	lat, lon := UTMToLatLon(s.UTMZone, s.StartLocation.Latitude, p.X, p.Y)
	return GeoPoint{Latitude: lat, Longitude: lon}
}

// UTMFromLatLon returns the UTM coordinates of p in s's zone.
func (s Settings) UTMFromLatLon(p GeoPoint) UTMPoint {
	x, y := LatLonToUTMForceZone(s.UTMZone, p.Latitude, p.Longitude)
	return UTMPoint{X: x, Y: y}
}
