// Package terrain maintains georeferenced raster elevation grids and derives
// terrain attributes from them.
//
// Grids are stored row-major with row 0 as the northernmost row. A sentinel
// no-data value, recorded in each grid's header, marks cells without a sample
// and is excluded from every statistic.
package terrain

import (
	"errors"
	"math"
)

const (
	// NoData is the default sentinel for cells, headers and points without a
	// value.
	NoData = -9999

	// Epsilon is the gradient substituted when a slope cannot be estimated.
	Epsilon = 0.00001

	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

var (
	ErrDivideByZero   = errors.New("divide by zero")
	ErrGridTooLarge   = errors.New("grid too large")
	ErrHeaderMismatch = errors.New("header mismatch")
	ErrInvalidRange   = errors.New("invalid range")
	ErrNoData         = errors.New("no data")
	ErrNotLoaded      = errors.New("grid not loaded")
)

// A GeoPoint is a geographic coordinate in decimal degrees.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// A UTMPoint is a projected coordinate.
type UTMPoint struct {
	X float64
	Y float64
}

// A Point3D is a projected coordinate with an elevation.
type Point3D struct {
	UTM UTMPoint
	Z   float64
}

// A RasterCell is a cell coordinate.
type RasterCell struct {
	Row int
	Col int
}

// A RasterWindow is a rectangle of cells between two corners, inclusive.
type RasterWindow struct {
	From RasterCell
	To   RasterCell
}

// NewGeoPoint returns a GeoPoint with no value.
func NewGeoPoint() GeoPoint {
	return GeoPoint{Latitude: NoData, Longitude: NoData}
}

// NewUTMPoint returns a UTMPoint with no value.
func NewUTMPoint() UTMPoint {
	return UTMPoint{X: NoData, Y: NoData}
}

// NewRasterWindow returns the window with corners (row1, col1) and (row2,
// col2).
func NewRasterWindow(row1, col1, row2, col2 int) RasterWindow {
	return RasterWindow{
		From: RasterCell{Row: row1, Col: col1},
		To:   RasterCell{Row: row2, Col: col2},
	}
}

// Distance returns the Euclidean distance between p0 and p1.
func Distance(p0, p1 UTMPoint) float64 {
	return math.Hypot(p1.X-p0.X, p1.Y-p0.Y)
}
