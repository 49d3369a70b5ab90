package terrain_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/twpayne/go-terrain"
)

func TestPrevailingValue(t *testing.T) {
	for _, tc := range []struct {
		name     string
		values   []float64
		expected float64
	}{
		{name: "single", values: []float64{5}, expected: 5},
		{name: "majority", values: []float64{1, 3, 3, 2, 3}, expected: 3},
		{name: "tie_first_seen", values: []float64{1, 2, 2, 3, 3}, expected: 2},
		{name: "all_distinct", values: []float64{4, 3, 2, 1}, expected: 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, terrain.PrevailingValue(tc.values))
		})
	}
}

func TestPrevailingMap(t *testing.T) {
	for _, tc := range []struct {
		name     string
		rows     [][]float64
		expected float64
	}{
		{
			name: "uniform",
			rows: [][]float64{
				{5, 5, 5},
				{5, 5, 5},
				{5, 5, 5},
			},
			expected: 5,
		},
		{
			name: "center_minority",
			rows: [][]float64{
				{1, 1, 1},
				{1, 9, 1},
				{1, 1, 1},
			},
			expected: 1,
		},
		{
			name: "middle_row_minority",
			rows: [][]float64{
				{1, 1, 1},
				{7, 7, 7},
				{1, 1, 1},
			},
			expected: 1,
		},
		{
			name: "no_data_ignored",
			rows: [][]float64{
				{noData, noData, noData},
				{noData, 2, noData},
				{noData, noData, noData},
			},
			expected: 2,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			in := newTestGrid(t, tc.rows)
			out := terrain.NewRasterGrid()
			assert.NoError(t, out.InitializeValue(terrain.RasterHeader{
				NRows:    1,
				NCols:    1,
				CellSize: 30,
				NoData:   noData,
			}, 0))
			assert.NoError(t, terrain.PrevailingMap(in, out))
			assert.Equal(t, tc.expected, out.Value(0, 0))
		})
	}
}

func TestPrevailingMapNoData(t *testing.T) {
	in := newTestGrid(t, [][]float64{{1, 2}, {3, 4}})
	out := terrain.NewRasterGrid()
	assert.IsError(t, terrain.PrevailingMap(in, out), terrain.ErrNotLoaded)

	// The second output column lies east of in.
	assert.NoError(t, out.InitializeValue(terrain.RasterHeader{
		NRows:    1,
		NCols:    2,
		CellSize: 20,
		NoData:   noData,
	}, 0))
	assert.NoError(t, terrain.PrevailingMap(in, out))
	assert.Equal(t, float64(noData), out.Value(0, 1))
	assert.NotEqual(t, float64(noData), out.Value(0, 0))
}
