package terrain

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// A Statistics summarizes the values of a grid with data.
type Statistics struct {
	Count             int
	Minimum           float64
	Maximum           float64
	Mean              float64
	StandardDeviation float64
}

// GridStatistics returns statistics over the values of g with data.
func GridStatistics(g *RasterGrid) (Statistics, error) {
	values := make([]float64, 0, len(g.values))
	for _, value := range g.values {
		if value != g.Header.NoData {
			values = append(values, value)
		}
	}
	if len(values) == 0 {
		return Statistics{}, ErrNoData
	}
	mean, standardDeviation := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		standardDeviation = 0
	}
	return Statistics{
		Count:             len(values),
		Minimum:           floats.Min(values),
		Maximum:           floats.Max(values),
		Mean:              mean,
		StandardDeviation: standardDeviation,
	}, nil
}
