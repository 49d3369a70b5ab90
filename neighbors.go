package terrain

// IsStrictMaximum returns whether the value at (row, col) is greater than
// the values of all its neighbors with data.
func IsStrictMaximum(g *RasterGrid, row, col int) bool {
	z := g.Value(row, col)
	if z == g.Header.NoData {
		return false
	}
	for r := -1; r <= 1; r++ {
		for c := -1; c <= 1; c++ {
			if r == 0 && c == 0 {
				continue
			}
			if adjZ := g.Value(row+r, col+c); adjZ != g.Header.NoData && z <= adjZ {
				return false
			}
		}
	}
	return true
}

// IsMinimum returns whether the value at (row, col) is less than or equal to
// the values of all its neighbors with data.
func IsMinimum(g *RasterGrid, row, col int) bool {
	z := g.Value(row, col)
	if z == g.Header.NoData {
		return false
	}
	for r := -1; r <= 1; r++ {
		for c := -1; c <= 1; c++ {
			if r == 0 && c == 0 {
				continue
			}
			if adjZ := g.Value(row+r, col+c); adjZ != g.Header.NoData && z > adjZ {
				return false
			}
		}
	}
	return true
}

// IsMinimumOrNearMinimum returns whether (row, col) or one of its neighbors
// is a minimum.
func IsMinimumOrNearMinimum(g *RasterGrid, row, col int) bool {
	if g.Value(row, col) == g.Header.NoData {
		return false
	}
	for r := -1; r <= 1; r++ {
		for c := -1; c <= 1; c++ {
			if IsMinimum(g, row+r, col+c) {
				return true
			}
		}
	}
	return false
}

// IsBoundary returns whether (row, col) has data and at least one of its
// neighbors has none. Neighbors outside g have no data.
func IsBoundary(g *RasterGrid, row, col int) bool {
	if g.Value(row, col) == g.Header.NoData {
		return false
	}
	for r := -1; r <= 1; r++ {
		for c := -1; c <= 1; c++ {
			if r == 0 && c == 0 {
				continue
			}
			if g.Value(row+r, col+c) == g.Header.NoData {
				return true
			}
		}
	}
	return false
}
