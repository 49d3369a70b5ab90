package terrain

import "math"

// InterpolateBilinear returns the value at (x, y) interpolated between the
// centers of the four surrounding cells. It returns the no-data value if any
// of them is outside g or has no data.
func (g *RasterGrid) InterpolateBilinear(x, y float64) float64 {
	cellSize := g.Header.CellSize
	// Fractional column and row of (x, y) relative to cell centers, rows
	// counted from the south.
	fx := (x-g.Header.LLCorner.X)/cellSize - 0.5
	fy := (y-g.Header.LLCorner.Y)/cellSize - 0.5
	x0 := math.Floor(fx)
	y0 := math.Floor(fy)
	dx := fx - x0
	dy := fy - y0

	col0 := int(x0)
	row0 := g.Header.NRows - 1 - int(y0)
	// Points on the last center line do not need the cell beyond it.
	col1, row1 := col0+1, row0-1
	if dx == 0 {
		col1 = col0
	}
	if dy == 0 {
		row1 = row0
	}
	samples := [4]float64{
		g.Value(row0, col0),
		g.Value(row0, col1),
		g.Value(row1, col0),
		g.Value(row1, col1),
	}
	for _, sample := range samples {
		if sample == g.Header.NoData {
			return g.Header.NoData
		}
	}
	return 0 +
		samples[0]*(1-dx)*(1-dy) +
		samples[1]*dx*(1-dy) +
		samples[2]*(1-dx)*dy +
		samples[3]*dx*dy
}
