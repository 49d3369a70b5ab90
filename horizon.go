package terrain

// TopographicDistance returns the height, above the lower of p1 and p2, of
// the tallest obstruction on the straight line between them. distance is
// the horizontal distance between p1 and p2. The line is sampled once per
// cell size of dem, and returns 0 if it is shorter than one cell.
func TopographicDistance(p1, p2 Point3D, distance float64, dem *RasterGrid) float64 {
	step := dem.Header.CellSize
	if distance < step {
		return 0
	}
	nrSteps := int(distance / step)

	from, to := p2, p1
	if p1.Z < p2.Z {
		from, to = p1, p2
	}
	dx := (to.UTM.X - from.UTM.X) / float64(nrSteps)
	dy := (to.UTM.Y - from.UTM.Y) / float64(nrSteps)

	x, y := from.UTM.X, from.UTM.Y
	maxDeltaZ := 0.0
	for range nrSteps {
		x += dx
		y += dy
		z := dem.FastValueXY(x, y)
		if z != dem.Header.NoData && z > from.Z {
			maxDeltaZ = max(maxDeltaZ, z-from.Z)
		}
	}
	return maxDeltaZ
}

// TopographicDistanceMap returns a grid with the topographic distance
// between point and every cell of dem with data.
func TopographicDistanceMap(point Point3D, dem *RasterGrid) (*RasterGrid, error) {
	if !dem.IsLoaded {
		return nil, ErrNotLoaded
	}
	m := NewRasterGrid()
	if err := m.InitializeFrom(dem); err != nil {
		return nil, err
	}
	for row := range dem.Header.NRows {
		for col := range dem.Header.NCols {
			z := dem.Value(row, col)
			if z == dem.Header.NoData {
				continue
			}
			center := dem.CellCenter(row, col)
			distance := Distance(center, point.UTM)
			m.SetValue(row, col, TopographicDistance(Point3D{UTM: center, Z: z}, point, distance, dem))
		}
	}
	_ = UpdateMinMax(m)
	return m, nil
}
