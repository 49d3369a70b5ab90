package terrain

import "math"

// SlopeAspectMaps returns the slope and aspect of dtm, in degrees. Aspect is
// measured from north, clockwise.
//
// Gradients are the mean of the first differences to the available
// neighbors: the three cells of the adjacent row on each side for dz/dy, and
// the three cells of the adjacent column on each side for dz/dx. A direction
// without neighbors gets a gradient of Epsilon.
func SlopeAspectMaps(dtm *RasterGrid) (*RasterGrid, *RasterGrid, error) {
	if !dtm.IsLoaded {
		return nil, nil, ErrNotLoaded
	}

	slopeMap := NewRasterGrid()
	if err := slopeMap.InitializeFrom(dtm); err != nil {
		return nil, nil, err
	}
	aspectMap := NewRasterGrid()
	if err := aspectMap.InitializeFrom(dtm); err != nil {
		return nil, nil, err
	}

	noData := dtm.Header.NoData
	cellSize := dtm.Header.CellSize
	for row := range dtm.Header.NRows {
		for col := range dtm.Header.NCols {
			z := dtm.Value(row, col)
			if z == noData {
				continue
			}

			var dz float64
			n := 0
			for i := -1; i <= 1; i++ {
				if zNorth := dtm.Value(row-1, col+i); zNorth != noData {
					dz += zNorth - z
					n++
				}
				if zSouth := dtm.Value(row+1, col+i); zSouth != noData {
					dz += z - zSouth
					n++
				}
			}
			dzdy := Epsilon
			if n != 0 {
				dzdy = dz / (float64(n) * cellSize)
			}

			dz = 0
			n = 0
			for i := -1; i <= 1; i++ {
				if zWest := dtm.Value(row+i, col-1); zWest != noData {
					dz += zWest - z
					n++
				}
				if zEast := dtm.Value(row+i, col+1); zEast != noData {
					dz += z - zEast
					n++
				}
			}
			dzdx := Epsilon
			if n != 0 {
				dzdx = dz / (float64(n) * cellSize)
			}

			slope := math.Atan(math.Sqrt(dzdx*dzdx+dzdy*dzdy)) * radToDeg
			slopeMap.SetValue(row, col, slope)

			if dzdx == 0 {
				dzdx = Epsilon
			}
			// Zero east, then rotated to zero north.
			aspect := math.Atan(dzdy / dzdx)
			if dzdx < 0 {
				aspect += math.Pi
			}
			aspect = (aspect + math.Pi/2) * radToDeg
			aspectMap.SetValue(row, col, aspect)
		}
	}

	_ = UpdateMinMax(slopeMap)
	_ = UpdateMinMax(aspectMap)
	return slopeMap, aspectMap, nil
}
