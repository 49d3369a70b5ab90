package terrain

import "math"

// cornerTolerance is the maximum corner offset, in coordinate units, between
// two headers that are considered equal.
const cornerTolerance = 0.1

// A RasterHeader describes the geometry of a grid in a projected frame.
type RasterHeader struct {
	NRows    int
	NCols    int
	CellSize float64
	NoData   float64
	LLCorner UTMPoint // Lower left corner of the grid.
}

// A LatLonHeader describes the geometry of a grid in a geographic frame.
type LatLonHeader struct {
	NRows    int
	NCols    int
	DX       float64 // Longitude step, in degrees.
	DY       float64 // Latitude step, in degrees.
	NoData   float64
	LLCorner GeoPoint
}

// NewRasterHeader returns an empty RasterHeader.
func NewRasterHeader() RasterHeader {
	return RasterHeader{
		CellSize: NoData,
		NoData:   NoData,
		LLCorner: NewUTMPoint(),
	}
}

// NewLatLonHeader returns an empty LatLonHeader.
func NewLatLonHeader() LatLonHeader {
	return LatLonHeader{
		DX:       NoData,
		DY:       NoData,
		NoData:   NoData,
		LLCorner: NewGeoPoint(),
	}
}

// RasterHeaderFromLatLon returns a projected header with the same shape as
// h, treating degrees as coordinate units. The cell size is the mean of h's
// steps.
func RasterHeaderFromLatLon(h LatLonHeader) RasterHeader {
	return RasterHeader{
		NRows:    h.NRows,
		NCols:    h.NCols,
		CellSize: (h.DX + h.DY) * 0.5,
		NoData:   h.NoData,
		LLCorner: UTMPoint{
			X: h.LLCorner.Longitude,
			Y: h.LLCorner.Latitude,
		},
	}
}

// Equal returns whether h and other describe the same cells.
func (h RasterHeader) Equal(other RasterHeader) bool {
	return h.CellSize == other.CellSize &&
		h.NoData == other.NoData &&
		math.Abs(h.LLCorner.X-other.LLCorner.X) < cornerTolerance &&
		math.Abs(h.LLCorner.Y-other.LLCorner.Y) < cornerTolerance &&
		h.NCols == other.NCols &&
		h.NRows == other.NRows
}

// Extent returns the lower left and upper right corners of h.
func (h RasterHeader) Extent() (UTMPoint, UTMPoint) {
	return h.LLCorner, UTMPoint{
		X: h.LLCorner.X + float64(h.NCols)*h.CellSize,
		Y: h.LLCorner.Y + float64(h.NRows)*h.CellSize,
	}
}

// IsOutOfGridXY returns whether (x, y) lies outside h. The upper and right
// edges are outside.
func (h RasterHeader) IsOutOfGridXY(x, y float64) bool {
	return x < h.LLCorner.X ||
		y < h.LLCorner.Y ||
		x >= h.LLCorner.X+float64(h.NCols)*h.CellSize ||
		y >= h.LLCorner.Y+float64(h.NRows)*h.CellSize
}

// RowColFromXY returns the cell containing (x, y). The result is not bounds
// checked.
func (h RasterHeader) RowColFromXY(x, y float64) (int, int) {
	row := (h.NRows - 1) - int(math.Floor((y-h.LLCorner.Y)/h.CellSize))
	col := int(math.Floor((x - h.LLCorner.X) / h.CellSize))
	return row, col
}

// CellFromXY returns the cell containing p.
func (h RasterHeader) CellFromXY(p UTMPoint) RasterCell {
	row, col := h.RowColFromXY(p.X, p.Y)
	return RasterCell{Row: row, Col: col}
}

// XYFromRowCol returns the center of the cell at (row, col).
func (h RasterHeader) XYFromRowCol(row, col int) (float64, float64) {
	x := h.LLCorner.X + h.CellSize*(float64(col)+0.5)
	y := h.LLCorner.Y + h.CellSize*(float64(h.NRows-row)-0.5)
	return x, y
}

// XYFromRowCol32 is XYFromRowCol in single precision.
func (h RasterHeader) XYFromRowCol32(row, col int) (float32, float32) {
	x := float32(h.LLCorner.X + h.CellSize*float64(float32(col)+0.5))
	y := float32(h.LLCorner.Y + h.CellSize*float64(float32(h.NRows-row)-0.5))
	return x, y
}

// IsInsideGrid returns whether p lies inside h, boundary included.
func (p UTMPoint) IsInsideGrid(h RasterHeader) bool {
	return p.X >= h.LLCorner.X &&
		p.X <= h.LLCorner.X+float64(h.NCols)*h.CellSize &&
		p.Y >= h.LLCorner.Y &&
		p.Y <= h.LLCorner.Y+float64(h.NRows)*h.CellSize
}

// IsInsideGrid returns whether p lies inside h, boundary included.
func (p GeoPoint) IsInsideGrid(h LatLonHeader) bool {
	return p.Longitude >= h.LLCorner.Longitude &&
		p.Longitude <= h.LLCorner.Longitude+float64(h.NCols)*h.DX &&
		p.Latitude >= h.LLCorner.Latitude &&
		p.Latitude <= h.LLCorner.Latitude+float64(h.NRows)*h.DY
}

// RowColFromLatLon returns the cell containing p. The result is not bounds
// checked.
func (h LatLonHeader) RowColFromLatLon(p GeoPoint) (int, int) {
	row := (h.NRows - 1) - int(math.Floor((p.Latitude-h.LLCorner.Latitude)/h.DY))
	col := int(math.Floor((p.Longitude - h.LLCorner.Longitude) / h.DX))
	return row, col
}

// LatLonFromRowCol returns the center of the cell at (row, col).
func (h LatLonHeader) LatLonFromRowCol(row, col int) GeoPoint {
	return GeoPoint{
		Latitude:  h.LLCorner.Latitude + h.DY*(float64(h.NRows-row)-0.5),
		Longitude: h.LLCorner.Longitude + h.DX*(float64(col)+0.5),
	}
}
