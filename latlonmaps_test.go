package terrain_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/twpayne/go-terrain"
)

func newBolognaHeader(nRows, nCols int) terrain.RasterHeader {
	x, y := terrain.LatLonToUTMForceZone(32, 44.5, 11.35)
	return terrain.RasterHeader{
		NRows:    nRows,
		NCols:    nCols,
		CellSize: 100,
		NoData:   noData,
		LLCorner: terrain.UTMPoint{X: x, Y: y},
	}
}

func TestComputeLatLonMaps(t *testing.T) {
	settings := terrain.DefaultSettings()
	g := terrain.NewRasterGrid()
	assert.NoError(t, g.Load(newBolognaHeader(2, 2), [][]float64{
		{50, noData},
		{60, 70},
	}))

	latMap, lonMap, err := terrain.ComputeLatLonMaps(g, settings)
	assert.NoError(t, err)
	assert.Equal(t, float64(noData), latMap.Value(0, 1))
	assert.Equal(t, float64(noData), lonMap.Value(0, 1))

	for _, cell := range []terrain.RasterCell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}} {
		p := settings.UTMFromLatLon(terrain.GeoPoint{
			Latitude:  latMap.Value(cell.Row, cell.Col),
			Longitude: lonMap.Value(cell.Row, cell.Col),
		})
		center := g.CellCenter(cell.Row, cell.Col)
		assertInDelta(t, center.X, p.X, 1e-3)
		assertInDelta(t, center.Y, p.Y, 1e-3)
	}

	// Rows increase southwards.
	assert.True(t, latMap.Value(0, 0) > latMap.Value(1, 0))
	assert.True(t, lonMap.Value(1, 1) > lonMap.Value(1, 0))
	assert.True(t, latMap.Minimum > 44.5 && latMap.Maximum < 44.51)

	_, _, err = terrain.ComputeLatLonMaps(terrain.NewRasterGrid(), settings)
	assert.IsError(t, err, terrain.ErrNotLoaded)
}

func TestGeoExtentsFromUTMHeader(t *testing.T) {
	settings := terrain.DefaultSettings()
	utmHeader := newBolognaHeader(10, 20)
	latLonHeader := terrain.GeoExtentsFromUTMHeader(settings, utmHeader)
	assert.Equal(t, 10, latLonHeader.NRows)
	assert.Equal(t, 20, latLonHeader.NCols)
	assert.Equal(t, float64(noData), latLonHeader.NoData)
	assert.True(t, latLonHeader.DX > 0)
	assert.True(t, latLonHeader.DY > 0)

	ll, ur := utmHeader.Extent()
	for _, corner := range []terrain.UTMPoint{
		ll,
		{X: ur.X, Y: ll.Y},
		ur,
		{X: ll.X, Y: ur.Y},
	} {
		p := settings.LatLonFromUTM(corner)
		assert.True(t, p.Latitude >= latLonHeader.LLCorner.Latitude)
		assert.True(t, p.Longitude >= latLonHeader.LLCorner.Longitude)
		assert.True(t, p.Latitude <= latLonHeader.LLCorner.Latitude+float64(latLonHeader.NRows)*latLonHeader.DY+1e-9)
		assert.True(t, p.Longitude <= latLonHeader.LLCorner.Longitude+float64(latLonHeader.NCols)*latLonHeader.DX+1e-9)
	}
	assertInDelta(t, 44.5, latLonHeader.LLCorner.Latitude, 1e-3)
	assertInDelta(t, 11.35, latLonHeader.LLCorner.Longitude, 1e-3)
}

func TestUTMWindow(t *testing.T) {
	settings := terrain.DefaultSettings()
	utmHeader := newBolognaHeader(10, 10)
	latLonHeader := terrain.GeoExtentsFromUTMHeader(settings, utmHeader)

	window := terrain.UTMWindow(latLonHeader, utmHeader, terrain.NewRasterWindow(5, 5, 5, 5), settings.UTMZone)
	for _, cell := range []terrain.RasterCell{window.From, window.To} {
		assert.True(t, cell.Row >= 4 && cell.Row <= 6)
		assert.True(t, cell.Col >= 4 && cell.Col <= 6)
	}

	window = terrain.UTMWindow(latLonHeader, utmHeader, terrain.NewRasterWindow(0, 0, 9, 9), settings.UTMZone)
	assert.True(t, window.From.Row >= 0 && window.From.Row <= 1)
	assert.True(t, window.From.Col >= 0 && window.From.Col <= 1)
	assert.True(t, window.To.Row >= 8 && window.To.Row <= 9)
	assert.True(t, window.To.Col >= 8 && window.To.Col <= 9)

	window = terrain.UTMWindow(latLonHeader, utmHeader, terrain.NewRasterWindow(-10, -10, 20, 20), settings.UTMZone)
	assert.Equal(t, terrain.NewRasterWindow(0, 0, 9, 9), window)
}
