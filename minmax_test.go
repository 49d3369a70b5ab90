package terrain_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/twpayne/go-terrain"
)

func TestUpdateMinMax(t *testing.T) {
	g := newTestGrid(t, [][]float64{
		{10, 20, 30},
		{noData, 40, noData},
		{15, 25, 35},
	})
	g.SetValue(1, 0, -5)
	assert.NoError(t, terrain.UpdateMinMax(g))
	assert.Equal(t, -5.0, g.Minimum)
	assert.Equal(t, 40.0, g.Maximum)
	assert.Equal(t, -5.0, g.ColorScale.Minimum)
	assert.Equal(t, 40.0, g.ColorScale.Maximum)

	empty := newTestGrid(t, [][]float64{{noData, noData}})
	empty.Minimum = 1
	empty.Maximum = 2
	assert.IsError(t, terrain.UpdateMinMax(empty), terrain.ErrNoData)
	assert.Equal(t, 1.0, empty.Minimum)
	assert.Equal(t, 2.0, empty.Maximum)
}

func TestUpdateColorScale(t *testing.T) {
	for _, tc := range []struct {
		name            string
		window          terrain.RasterWindow
		expectedErr     error
		expectedMinimum float64
		expectedMaximum float64
	}{
		{
			name:            "first_column_reversed",
			window:          terrain.NewRasterWindow(2, 0, 0, 0),
			expectedMinimum: 10,
			expectedMaximum: 15,
		},
		{
			name:            "clamped",
			window:          terrain.NewRasterWindow(-5, -5, 10, 10),
			expectedMinimum: 10,
			expectedMaximum: 40,
		},
		{
			name:            "bottom_right",
			window:          terrain.NewRasterWindow(1, 1, 2, 2),
			expectedMinimum: 25,
			expectedMaximum: 40,
		},
		{
			name:        "no_data",
			window:      terrain.NewRasterWindow(1, 2, 1, 2),
			expectedErr: terrain.ErrNoData,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGrid(t, [][]float64{
				{10, 20, 30},
				{noData, 40, noData},
				{15, 25, 35},
			})
			err := terrain.UpdateColorScale(g, tc.window)
			if tc.expectedErr != nil {
				assert.IsError(t, err, tc.expectedErr)
				assert.Equal(t, 10.0, g.ColorScale.Minimum)
				assert.Equal(t, 40.0, g.ColorScale.Maximum)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedMinimum, g.ColorScale.Minimum)
			assert.Equal(t, tc.expectedMaximum, g.ColorScale.Maximum)
			assert.Equal(t, 10.0, g.Minimum)
			assert.Equal(t, 40.0, g.Maximum)
		})
	}
}
