package terrain

import "math"

// A RasterGrid is a grid of values in a projected frame. It exclusively owns
// its header, its color scale and its values.
type RasterGrid struct {
	Header     RasterHeader
	ColorScale *ColorScale
	Minimum    float64
	Maximum    float64
	IsLoaded   bool
	TimeString string
	values     []float64
}

// NewRasterGrid returns a new empty RasterGrid.
func NewRasterGrid() *RasterGrid {
	return &RasterGrid{
		Header:     NewRasterHeader(),
		ColorScale: NewColorScale(),
		Minimum:    NoData,
		Maximum:    NoData,
	}
}

// Initialize allocates g for header with a new color scale and fills it with
// header's no-data value. On error, g is unchanged.
func (g *RasterGrid) Initialize(header RasterHeader) error {
	if err := checkHeader(header); err != nil {
		return err
	}
	g.Free()
	g.Header = header
	g.ColorScale = NewColorScale()
	return g.allocate(header.NoData)
}

// InitializeValue allocates g for header with a new color scale and fills it
// with value.
func (g *RasterGrid) InitializeValue(header RasterHeader, value float64) error {
	if err := checkHeader(header); err != nil {
		return err
	}
	g.Free()
	g.Header = header
	g.ColorScale = NewColorScale()
	return g.allocate(value)
}

// InitializeFrom allocates g with the header and a copy of the color scale
// of other, filled with the no-data value.
func (g *RasterGrid) InitializeFrom(other *RasterGrid) error {
	return g.InitializeFromValue(other, other.Header.NoData)
}

// InitializeFromValue allocates g with the header and a copy of the color
// scale of other, filled with value.
func (g *RasterGrid) InitializeFromValue(other *RasterGrid, value float64) error {
	if err := checkHeader(other.Header); err != nil {
		return err
	}
	header, colorScale := other.Header, other.ColorScale.Clone()
	g.Free()
	g.Header = header
	g.ColorScale = colorScale
	return g.allocate(value)
}

// CopyFrom makes g a deep copy of other.
func (g *RasterGrid) CopyFrom(other *RasterGrid) error {
	if g == other {
		return nil
	}
	header, colorScale := other.Header, other.ColorScale.Clone()
	g.Free()
	g.Header = header
	g.ColorScale = colorScale
	g.values = append([]float64(nil), other.values...)
	g.TimeString = other.TimeString
	_ = UpdateMinMax(g)
	g.IsLoaded = true
	return nil
}

// Clone returns a deep copy of g.
func (g *RasterGrid) Clone() *RasterGrid {
	clone := NewRasterGrid()
	_ = clone.CopyFrom(g)
	clone.IsLoaded = g.IsLoaded
	return clone
}

// Load allocates g for header and copies rows into it. rows must have
// header.NRows rows of header.NCols values, row 0 being the northernmost.
func (g *RasterGrid) Load(header RasterHeader, rows [][]float64) error {
	if header.NRows < 0 || header.NCols < 0 || len(rows) != header.NRows {
		return ErrHeaderMismatch
	}
	for _, row := range rows {
		if len(row) != header.NCols {
			return ErrHeaderMismatch
		}
	}
	if err := g.Initialize(header); err != nil {
		return err
	}
	for row, values := range rows {
		copy(g.Row(row), values)
	}
	_ = UpdateMinMax(g)
	return nil
}

// Free releases g's values.
func (g *RasterGrid) Free() {
	g.values = nil
	g.TimeString = ""
	g.Minimum = NoData
	g.Maximum = NoData
	g.Header.NRows = 0
	g.Header.NCols = 0
	g.IsLoaded = false
}

// Empty sets every cell of g to the no-data value.
func (g *RasterGrid) Empty() {
	for i := range g.values {
		g.values[i] = g.Header.NoData
	}
}

// SetConstantValue sets every cell of g to value.
func (g *RasterGrid) SetConstantValue(value float64) {
	for i := range g.values {
		g.values[i] = value
	}
	g.Minimum = value
	g.Maximum = value
}

// SetConstantValueWithBase sets every cell of g that has data in base to
// value. g and base must have equal headers.
func (g *RasterGrid) SetConstantValueWithBase(value float64, base *RasterGrid) error {
	if !g.IsLoaded {
		return ErrNotLoaded
	}
	if !g.Header.Equal(base.Header) {
		return ErrHeaderMismatch
	}
	for i, baseValue := range base.values {
		if baseValue != base.Header.NoData {
			g.values[i] = value
		}
	}
	g.Minimum = value
	g.Maximum = value
	return UpdateMinMax(g)
}

// Row returns the values of row. The returned slice aliases g's storage.
func (g *RasterGrid) Row(row int) []float64 {
	return g.values[row*g.Header.NCols : (row+1)*g.Header.NCols]
}

// Rows returns a copy of g's values, row by row.
func (g *RasterGrid) Rows() [][]float64 {
	rows := make([][]float64, g.Header.NRows)
	for row := range rows {
		rows[row] = append([]float64(nil), g.Row(row)...)
	}
	return rows
}

// IsOutOfGrid returns whether (row, col) is outside g.
func (g *RasterGrid) IsOutOfGrid(row, col int) bool {
	return row < 0 || row >= g.Header.NRows || col < 0 || col >= g.Header.NCols
}

// Value returns the value at (row, col), or the no-data value if (row, col)
// is outside g.
func (g *RasterGrid) Value(row, col int) float64 {
	if g.IsOutOfGrid(row, col) {
		return g.Header.NoData
	}
	return g.values[row*g.Header.NCols+col]
}

// SetValue sets the value at (row, col). It panics if (row, col) is outside
// g.
func (g *RasterGrid) SetValue(row, col int, value float64) {
	if g.IsOutOfGrid(row, col) {
		panic("terrain: cell out of grid")
	}
	g.values[row*g.Header.NCols+col] = value
}

// ValueXY returns the value at (x, y), or the no-data value if (x, y) is
// outside g.
func (g *RasterGrid) ValueXY(x, y float64) float64 {
	if g.Header.IsOutOfGridXY(x, y) {
		return g.Header.NoData
	}
	row, col := g.Header.RowColFromXY(x, y)
	return g.Value(row, col)
}

// FastValueXY returns the value at (x, y) using truncating index arithmetic.
// Points just outside the lower and left edges map to the first row and
// column.
func (g *RasterGrid) FastValueXY(x, y float64) float64 {
	row := (g.Header.NRows - 1) - int((y-g.Header.LLCorner.Y)/g.Header.CellSize)
	col := int((x - g.Header.LLCorner.X) / g.Header.CellSize)
	return g.Value(row, col)
}

// CellCenter returns the center of the cell at (row, col).
func (g *RasterGrid) CellCenter(row, col int) UTMPoint {
	x, y := g.Header.XYFromRowCol(row, col)
	return UTMPoint{X: x, Y: y}
}

// MapCenter returns the center of g and the value there.
func (g *RasterGrid) MapCenter() Point3D {
	p := UTMPoint{
		X: g.Header.LLCorner.X + float64(g.Header.NCols)*g.Header.CellSize/2,
		Y: g.Header.LLCorner.Y + float64(g.Header.NRows)*g.Header.CellSize/2,
	}
	return Point3D{
		UTM: p,
		Z:   g.ValueXY(p.X, p.Y),
	}
}

// maxCells is the largest number of cells in a grid.
const maxCells = math.MaxInt32

// checkHeader returns an error if no grid can be allocated for header.
func checkHeader(header RasterHeader) error {
	if header.NRows < 0 || header.NCols < 0 {
		return ErrHeaderMismatch
	}
	if header.NRows != 0 && header.NCols > maxCells/header.NRows {
		return ErrGridTooLarge
	}
	return nil
}

// allocate fills g with value. g's header must have passed checkHeader.
func (g *RasterGrid) allocate(value float64) error {
	g.values = make([]float64, g.Header.NRows*g.Header.NCols)
	g.SetConstantValue(value)
	g.IsLoaded = true
	return nil
}
