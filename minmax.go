package terrain

// UpdateMinMax sets g's minimum and maximum, and the domain of its color
// scale, to the range of its values. It returns ErrNoData, leaving g
// unchanged, if g has no data.
func UpdateMinMax(g *RasterGrid) error {
	minimum, maximum, ok := minMax(g, 0, 0, g.Header.NRows-1, g.Header.NCols-1)
	if !ok {
		return ErrNoData
	}
	g.Minimum = minimum
	g.Maximum = maximum
	g.ColorScale.Minimum = minimum
	g.ColorScale.Maximum = maximum
	return nil
}

// UpdateColorScale sets the domain of g's color scale to the range of the
// values inside window. Rows are swapped if reversed and the window is
// clamped to g. It returns ErrNoData, leaving g unchanged, if the window has
// no data.
func UpdateColorScale(g *RasterGrid, window RasterWindow) error {
	row0, col0 := window.From.Row, window.From.Col
	row1, col1 := window.To.Row, window.To.Col
	if row0 > row1 {
		row0, row1 = row1, row0
	}
	row0 = max(row0, 0)
	col0 = max(col0, 0)
	row1 = min(row1, g.Header.NRows-1)
	col1 = min(col1, g.Header.NCols-1)

	minimum, maximum, ok := minMax(g, row0, col0, row1, col1)
	if !ok {
		return ErrNoData
	}
	g.ColorScale.Minimum = minimum
	g.ColorScale.Maximum = maximum
	return nil
}

// minMax returns the range of the values of g between (row0, col0) and
// (row1, col1) inclusive, which must be inside g.
func minMax(g *RasterGrid, row0, col0, row1, col1 int) (float64, float64, bool) {
	var minimum, maximum float64
	found := false
	for row := row0; row <= row1; row++ {
		values := g.Row(row)
		for col := col0; col <= col1; col++ {
			value := values[col]
			switch {
			case value == g.Header.NoData:
			case !found:
				minimum, maximum = value, value
				found = true
			case value < minimum:
				minimum = value
			case value > maximum:
				maximum = value
			}
		}
	}
	return minimum, maximum, found
}
