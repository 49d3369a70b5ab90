package terrain

// prevailingDim is the half width, in samples, of the neighborhood sampled
// for each output cell by PrevailingMap.
const prevailingDim = 3

// PrevailingValue returns the most frequent value in values. Ties go to the
// value seen first. values must not be empty and are expected to be few.
func PrevailingValue(values []float64) float64 {
	type counter struct {
		value float64
		count int
	}
	counters := make([]counter, 0, len(values))
VALUES:
	for _, value := range values {
		for i := range counters {
			if counters[i].value == value {
				counters[i].count++
				continue VALUES
			}
		}
		counters = append(counters, counter{value: value, count: 1})
	}

	prevailing := counters[0]
	for _, c := range counters[1:] {
		if c.count > prevailing.count {
			prevailing = c
		}
	}
	return prevailing.value
}

// PrevailingMap sets each cell of out to the prevailing value of in over a
// regular 7×7 sample of the cell's area. Cells whose sample has no data are
// set to out's no-data value.
func PrevailingMap(in, out *RasterGrid) error {
	if !out.IsLoaded {
		return ErrNotLoaded
	}
	step := out.Header.CellSize / (2*prevailingDim + 1)
	values := make([]float64, 0, (2*prevailingDim+1)*(2*prevailingDim+1))
	for row := range out.Header.NRows {
		for col := range out.Header.NCols {
			x, y := out.Header.XYFromRowCol(row, col)
			values = values[:0]
			for i := -prevailingDim; i <= prevailingDim; i++ {
				for j := -prevailingDim; j <= prevailingDim; j++ {
					sx, sy := x+float64(i)*step, y+float64(j)*step
					if in.Header.IsOutOfGridXY(sx, sy) {
						continue
					}
					inRow, inCol := in.Header.RowColFromXY(sx, sy)
					if value := in.Value(inRow, inCol); value != in.Header.NoData {
						values = append(values, value)
					}
				}
			}
			if len(values) == 0 {
				out.SetValue(row, col, out.Header.NoData)
			} else {
				out.SetValue(row, col, PrevailingValue(values))
			}
		}
	}
	return nil
}
