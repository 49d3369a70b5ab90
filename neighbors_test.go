package terrain_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/twpayne/go-terrain"
)

func TestNeighbors(t *testing.T) {
	g := newTestGrid(t, [][]float64{
		{1, 2, 3},
		{4, 9, 5},
		{6, 7, noData},
	})
	for _, tc := range []struct {
		name                           string
		row                            int
		col                            int
		expectedIsStrictMaximum        bool
		expectedIsMinimum              bool
		expectedIsMinimumOrNearMinimum bool
		expectedIsBoundary             bool
	}{
		{
			name:                           "peak",
			row:                            1,
			col:                            1,
			expectedIsStrictMaximum:        true,
			expectedIsMinimumOrNearMinimum: true,
			expectedIsBoundary:             true,
		},
		{
			name:                           "pit",
			row:                            0,
			col:                            0,
			expectedIsMinimum:              true,
			expectedIsMinimumOrNearMinimum: true,
			expectedIsBoundary:             true,
		},
		{
			name:               "far_from_pit",
			row:                2,
			col:                1,
			expectedIsBoundary: true,
		},
		{
			name: "no_data",
			row:  2,
			col:  2,
		},
		{
			name: "outside",
			row:  3,
			col:  3,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedIsStrictMaximum, terrain.IsStrictMaximum(g, tc.row, tc.col))
			assert.Equal(t, tc.expectedIsMinimum, terrain.IsMinimum(g, tc.row, tc.col))
			assert.Equal(t, tc.expectedIsMinimumOrNearMinimum, terrain.IsMinimumOrNearMinimum(g, tc.row, tc.col))
			assert.Equal(t, tc.expectedIsBoundary, terrain.IsBoundary(g, tc.row, tc.col))
		})
	}
}

func TestIsBoundaryInterior(t *testing.T) {
	g := newTestGrid(t, [][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	assert.False(t, terrain.IsBoundary(g, 1, 1))
	assert.True(t, terrain.IsBoundary(g, 0, 1))
	assert.False(t, terrain.IsStrictMaximum(g, 1, 1))
	assert.True(t, terrain.IsMinimum(g, 1, 1))
}
