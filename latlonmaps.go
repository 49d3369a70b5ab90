package terrain

import "math"

// ComputeLatLonMaps returns grids with the latitude and longitude of the
// center of every cell of g with data.
func ComputeLatLonMaps(g *RasterGrid, settings Settings) (*RasterGrid, *RasterGrid, error) {
	if !g.IsLoaded {
		return nil, nil, ErrNotLoaded
	}
	latMap := NewRasterGrid()
	if err := latMap.InitializeFrom(g); err != nil {
		return nil, nil, err
	}
	lonMap := NewRasterGrid()
	if err := lonMap.InitializeFrom(g); err != nil {
		return nil, nil, err
	}
	for row := range g.Header.NRows {
		for col := range g.Header.NCols {
			if g.Value(row, col) == g.Header.NoData {
				continue
			}
			p := settings.LatLonFromUTM(g.CellCenter(row, col))
			latMap.SetValue(row, col, p.Latitude)
			lonMap.SetValue(row, col, p.Longitude)
		}
	}
	_ = UpdateMinMax(latMap)
	_ = UpdateMinMax(lonMap)
	return latMap, lonMap, nil
}

// GeoExtentsFromUTMHeader returns a geographic header with the same number
// of rows and columns as utmHeader that covers its extent.
func GeoExtentsFromUTMHeader(settings Settings, utmHeader RasterHeader) LatLonHeader {
	ll, ur := utmHeader.Extent()
	corners := []GeoPoint{
		settings.LatLonFromUTM(ll),
		settings.LatLonFromUTM(UTMPoint{X: ur.X, Y: ll.Y}),
		settings.LatLonFromUTM(ur),
		settings.LatLonFromUTM(UTMPoint{X: ll.X, Y: ur.Y}),
	}
	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLon, maxLon := math.Inf(1), math.Inf(-1)
	for _, corner := range corners {
		minLat = min(minLat, corner.Latitude)
		maxLat = max(maxLat, corner.Latitude)
		minLon = min(minLon, corner.Longitude)
		maxLon = max(maxLon, corner.Longitude)
	}
	return LatLonHeader{
		NRows:    utmHeader.NRows,
		NCols:    utmHeader.NCols,
		DX:       (maxLon - minLon) / float64(utmHeader.NCols),
		DY:       (maxLat - minLat) / float64(utmHeader.NRows),
		NoData:   utmHeader.NoData,
		LLCorner: GeoPoint{Latitude: minLat, Longitude: minLon},
	}
}

// UTMWindow returns the window of utmHeader cells covering latLonWindow, a
// window of latLonHeader cells, using utmZone for the projection. The result
// is clamped to utmHeader.
func UTMWindow(latLonHeader LatLonHeader, utmHeader RasterHeader, latLonWindow RasterWindow, utmZone int) RasterWindow {
	cells := make([]RasterCell, 0, 4)
	for _, row := range []int{latLonWindow.From.Row, latLonWindow.To.Row} {
		for _, col := range []int{latLonWindow.From.Col, latLonWindow.To.Col} {
			p := latLonHeader.LatLonFromRowCol(row, col)
			x, y := LatLonToUTMForceZone(utmZone, p.Latitude, p.Longitude)
			cells = append(cells, utmHeader.CellFromXY(UTMPoint{X: x, Y: y}))
		}
	}
	window := RasterWindow{From: cells[0], To: cells[0]}
	for _, cell := range cells[1:] {
		window.From.Row = min(window.From.Row, cell.Row)
		window.From.Col = min(window.From.Col, cell.Col)
		window.To.Row = max(window.To.Row, cell.Row)
		window.To.Col = max(window.To.Col, cell.Col)
	}
	window.From.Row = max(window.From.Row, 0)
	window.From.Col = max(window.From.Col, 0)
	window.To.Row = min(window.To.Row, utmHeader.NRows-1)
	window.To.Col = min(window.To.Col, utmHeader.NCols-1)
	return window
}
