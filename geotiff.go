package terrain

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/google/tiff"
	_ "github.com/google/tiff/bigtiff"
	_ "github.com/google/tiff/geotiff"
	"github.com/maypok86/otter/v2"
	"golang.org/x/image/tiff/lzw"
)

const (
	compressionNone = 1
	compressionLZW  = 5
)

var errShortRead = errors.New("short read")

// A tileCoord is the coordinate of a tile within a GeoTIFF.
type tileCoord struct {
	C int // Column.
	R int // Row.
}

// A GeoTIFF is an open tiled GeoTIFF file of 32-bit floating point samples.
// It reads tiles on demand and caches them decoded. It is safe for
// concurrent use.
type GeoTIFF struct {
	file                      io.ReaderAt
	closer                    io.Closer
	imageWidth                int
	imageLength               int
	tileWidth                 int
	tileLength                int
	tilesAcross               int
	tilesDown                 int
	tileOffsets               []uint64
	tileByteCounts            []uint64
	smallestTileByteCount     uint64
	tileSampleCount           int
	tileByteCountUncompressed int
	tileCacheSizeBytes        int
	tileSamplesCache          *otter.Cache[tileCoord, []float32]
	compression               int
	byteOrder                 binary.ByteOrder
	noData                    float32
	hasNoData                 bool
	emptyTileMutex            sync.Mutex
	emptyTileBytes            []byte
	scaleX                    float64
	scaleY                    float64
	translateX                float64
	translateY                float64
	geoKeys                   *ParsedGeoKeys
}

// A GeoTIFFOption sets an option on a GeoTIFF.
type GeoTIFFOption func(*GeoTIFF)

// A geoTIFFIFD is a struct into which github.com/google/tiff can unmarshal an
// IFD.
type geoTIFFIFD struct {
	ImageWidth                uint16    `tiff:"field,tag=256"`
	ImageLength               uint16    `tiff:"field,tag=257"`
	BitsPerSample             uint16    `tiff:"field,tag=258"`
	Compression               uint16    `tiff:"field,tag=259"`
	PhotometricInterpretation uint16    `tiff:"field,tag=262"`
	SamplesPerPixel           uint16    `tiff:"field,tag=277"`
	PlanarConfiguration       uint16    `tiff:"field,tag=284"`
	Predictor                 uint16    `tiff:"field,tag=317"`
	TileWidth                 uint16    `tiff:"field,tag=322"`
	TileLength                uint16    `tiff:"field,tag=323"`
	TileOffsets               []uint64  `tiff:"field,tag=324"`
	TileByteCounts            []uint64  `tiff:"field,tag=325"`
	SampleFormat              uint16    `tiff:"field,tag=339"`
	ModelPixelScaleTag        []float64 `tiff:"field,tag=33550"`
	ModelTiepointTag          []float64 `tiff:"field,tag=33922"`
	GeoKeyDirectoryTag        []uint16  `tiff:"field,tag=34735"`
	GeoDoubleParamsTag        []float64 `tiff:"field,tag=34736"`
	GeoASCIIParamsTag         string    `tiff:"field,tag=34737"`
	GDALNoData                string    `tiff:"field,tag=42113"`
}

// WithTileCacheSize sets the size, in bytes, of the decoded tile cache.
func WithTileCacheSize(tileCacheSize int) GeoTIFFOption {
	return func(f *GeoTIFF) {
		f.tileCacheSizeBytes = tileCacheSize
	}
}

// OpenGeoTIFF opens filename in fsys.
func OpenGeoTIFF(fsys fs.FS, filename string, options ...GeoTIFFOption) (*GeoTIFF, error) {
	f := &GeoTIFF{
		tileCacheSizeBytes: 128 << 20, // 128MB.
	}
	for _, option := range options {
		option(f)
	}

	file, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	readSeeker, ok := file.(interface {
		io.ReaderAt
		io.ReadSeeker
	})
	if !ok {
		_ = file.Close()
		return nil, errors.ErrUnsupported
	}
	f.file = readSeeker
	f.closer = file
	if err := f.init(readSeeker); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return f, nil
}

func (f *GeoTIFF) init(r tiff.ReadAtReadSeeker) error {
	tiffTIFF, err := tiff.Parse(r, tiff.GetTagSpace("GeoTIFF"), nil)
	if err != nil {
		return err
	}

	if len(tiffTIFF.IFDs()) != 1 {
		return fmt.Errorf("found %d IFDs, expected 1", len(tiffTIFF.IFDs()))
	}

	switch order := tiffTIFF.Order(); order {
	case "II":
		f.byteOrder = binary.LittleEndian
	case "MM":
		f.byteOrder = binary.BigEndian
	default:
		return fmt.Errorf("%q: %w", order, errors.ErrUnsupported)
	}

	var ifd geoTIFFIFD
	if err := tiff.UnmarshalIFD(tiffTIFF.IFDs()[0], &ifd); err != nil {
		return err
	}

	if ifd.BitsPerSample != 32 ||
		(ifd.Compression != compressionNone && ifd.Compression != compressionLZW) ||
		ifd.PhotometricInterpretation != 1 ||
		ifd.SamplesPerPixel != 1 ||
		ifd.PlanarConfiguration != 1 ||
		(ifd.Predictor != 0 && ifd.Predictor != 1) ||
		ifd.SampleFormat != 3 ||
		ifd.TileWidth == 0 || ifd.TileLength == 0 ||
		len(ifd.ModelPixelScaleTag) != 3 ||
		len(ifd.ModelTiepointTag) != 6 {
		return errors.ErrUnsupported
	}

	if ifd.GDALNoData != "" {
		noData, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimRight(ifd.GDALNoData, "\x00")), 32)
		if err != nil {
			return err
		}
		f.noData = float32(noData)
		f.hasNoData = true
	}

	f.compression = int(ifd.Compression)
	f.imageWidth = int(ifd.ImageWidth)
	f.imageLength = int(ifd.ImageLength)
	f.tileWidth = int(ifd.TileWidth)
	f.tileLength = int(ifd.TileLength)
	f.tilesAcross = (f.imageWidth + f.tileWidth - 1) / f.tileWidth
	f.tilesDown = (f.imageLength + f.tileLength - 1) / f.tileLength
	tilesPerImage := f.tilesAcross * f.tilesDown
	if len(ifd.TileByteCounts) != tilesPerImage || len(ifd.TileOffsets) != tilesPerImage {
		return errors.New("incorrect number of tile byte counts or offsets")
	}
	f.tileOffsets = ifd.TileOffsets
	f.tileByteCounts = ifd.TileByteCounts
	f.smallestTileByteCount = ifd.TileByteCounts[0]
	for _, tileByteCount := range ifd.TileByteCounts[1:] {
		if tileByteCount < f.smallestTileByteCount {
			f.smallestTileByteCount = tileByteCount
		}
	}
	f.tileSampleCount = f.tileWidth * f.tileLength
	f.tileByteCountUncompressed = f.tileSampleCount * int(ifd.BitsPerSample) / 8

	tileCacheCount := max(f.tileCacheSizeBytes/f.tileByteCountUncompressed, 1)
	f.tileSamplesCache, err = otter.New(&otter.Options[tileCoord, []float32]{
		MaximumSize: tileCacheCount,
	})
	if err != nil {
		return err
	}

	// Only square pixels anchored at the upper left corner of the first
	// pixel map onto a RasterHeader.
	scaleX, scaleY, scaleZ := ifd.ModelPixelScaleTag[0], ifd.ModelPixelScaleTag[1], ifd.ModelPixelScaleTag[2]
	if scaleX <= 0 || scaleX != scaleY || scaleZ != 0 {
		return errors.ErrUnsupported
	}
	i, j, k := ifd.ModelTiepointTag[0], ifd.ModelTiepointTag[1], ifd.ModelTiepointTag[2]
	if i != 0 || j != 0 || k != 0 {
		return errors.ErrUnsupported
	}
	f.scaleX = scaleX
	f.scaleY = scaleY
	f.translateX = ifd.ModelTiepointTag[3]
	f.translateY = ifd.ModelTiepointTag[4]

	if len(ifd.GeoKeyDirectoryTag) != 0 {
		f.geoKeys, err = ParseGeoKeys(ifd.GeoKeyDirectoryTag, ifd.GeoDoubleParamsTag, []byte(ifd.GeoASCIIParamsTag))
		if err != nil {
			return err
		}
	}

	return nil
}

// Close closes f.
func (f *GeoTIFF) Close() error {
	return f.closer.Close()
}

// Header returns the header of the grid covered by f. Cells without data
// have the value NoData.
func (f *GeoTIFF) Header() RasterHeader {
	return RasterHeader{
		NRows:    f.imageLength,
		NCols:    f.imageWidth,
		CellSize: f.scaleX,
		NoData:   NoData,
		LLCorner: UTMPoint{
			X: f.translateX,
			Y: f.translateY - float64(f.imageLength)*f.scaleY,
		},
	}
}

// UTMZone returns the UTM zone and hemisphere of f, if its GeoKeys declare
// a UTM CRS.
func (f *GeoTIFF) UTMZone() (zone int, south bool, ok bool) {
	if f.geoKeys == nil {
		return 0, false, false
	}
	return f.geoKeys.UTMZone()
}

// Sample returns the sample of f at p, or NoData.
func (f *GeoTIFF) Sample(ctx context.Context, p UTMPoint) (float64, error) {
	row, col := f.localRowCol(p)
	localTileCoord, ok := f.localTileCoord(row, col)
	if !ok {
		return NoData, nil
	}
	switch tileSamples, err := f.getTileSamplesCached(ctx, localTileCoord); {
	case errors.Is(err, otter.ErrNotFound):
		return NoData, nil
	case err != nil:
		return 0, err
	default:
		return f.tileSample(tileSamples, row, col), nil
	}
}

// ReadGrid returns a new grid with all of f's samples.
func (f *GeoTIFF) ReadGrid(ctx context.Context) (*RasterGrid, error) {
	g := NewRasterGrid()
	if err := g.Initialize(f.Header()); err != nil {
		return nil, err
	}
	for r := range f.tilesDown {
		for c := range f.tilesAcross {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			tileSamples, err := f.getTileSamplesCached(ctx, tileCoord{C: c, R: r})
			switch {
			case errors.Is(err, otter.ErrNotFound):
				continue
			case err != nil:
				return nil, err
			}
			rowEnd := min((r+1)*f.tileLength, f.imageLength)
			colEnd := min((c+1)*f.tileWidth, f.imageWidth)
			for row := r * f.tileLength; row < rowEnd; row++ {
				values := g.Row(row)
				for col := c * f.tileWidth; col < colEnd; col++ {
					values[col] = f.tileSample(tileSamples, row, col)
				}
			}
		}
	}
	_ = UpdateMinMax(g)
	return g, nil
}

// getCompressedTileData returns the compressed tile data for the data at
// localTileCoord. If the tile is known to be empty, it returns the error
// otter.ErrNotFound.
func (f *GeoTIFF) getCompressedTileData(localTileCoord tileCoord) ([]byte, error) {
	tileIndex := localTileCoord.C + f.tilesAcross*localTileCoord.R
	tileByteCount := f.tileByteCounts[tileIndex]
	tileOffset := f.tileOffsets[tileIndex]
	compressedData := make([]byte, tileByteCount)
	n, err := f.file.ReadAt(compressedData, int64(tileOffset))
	switch {
	case n != int(tileByteCount):
		if err != nil {
			return nil, err
		}
		return nil, errShortRead
	case err != nil && !errors.Is(err, io.EOF):
		return nil, err
	}
	f.emptyTileMutex.Lock()
	defer f.emptyTileMutex.Unlock()
	if f.emptyTileBytes != nil && bytes.Equal(compressedData, f.emptyTileBytes) {
		return nil, otter.ErrNotFound
	}
	return compressedData, nil
}

// decompressTileData decompresses the tile data in compressedData.
func (f *GeoTIFF) decompressTileData(compressedData []byte) ([]byte, error) {
	if f.compression == compressionNone {
		if len(compressedData) < f.tileByteCountUncompressed {
			return nil, errShortRead
		}
		return compressedData, nil
	}
	tileData := make([]byte, f.tileByteCountUncompressed)
	r := lzw.NewReader(bytes.NewReader(compressedData), lzw.MSB, 8)
	defer r.Close()
	if _, err := io.ReadFull(r, tileData); err != nil {
		return nil, err
	}
	return tileData, nil
}

// decodeTileData decodes tileData in f's byte order.
func (f *GeoTIFF) decodeTileData(tileData []byte) []float32 {
	tileSamples := make([]float32, f.tileSampleCount)
	for i := range f.tileSampleCount {
		b := f.byteOrder.Uint32(tileData[i*4 : (i+1)*4])
		tileSamples[i] = math.Float32frombits(b)
	}
	return tileSamples
}

// localRowCol returns the pixel row and column of p.
func (f *GeoTIFF) localRowCol(p UTMPoint) (int, int) {
	row := int(math.Floor((f.translateY - p.Y) / f.scaleY))
	col := int(math.Floor((p.X - f.translateX) / f.scaleX))
	return row, col
}

// getTileSamples returns the tile samples at localTileCoord.
func (f *GeoTIFF) getTileSamples(ctx context.Context, localTileCoord tileCoord) ([]float32, error) {
	// Retrieve the compressed tile data.
	compressedTileData, err := f.getCompressedTileData(localTileCoord)
	if err != nil {
		return nil, err
	}

	// Decompress the tile data and decode it.
	tileData, err := f.decompressTileData(compressedTileData)
	if err != nil {
		return nil, err
	}
	tileSamples := f.decodeTileData(tileData)
	geoTIFFTileReads.Inc()

	// Remember what the smallest tile looks like if it has no data, so later
	// empty tiles are detected before they are decompressed.
	if f.hasNoData && len(compressedTileData) == int(f.smallestTileByteCount) {
		isEmptyTile := true
		for _, sample := range tileSamples {
			if sample != f.noData {
				isEmptyTile = false
				break
			}
		}
		if isEmptyTile {
			f.emptyTileMutex.Lock()
			if f.emptyTileBytes == nil {
				f.emptyTileBytes = compressedTileData
			}
			f.emptyTileMutex.Unlock()
			geoTIFFEmptyTiles.Inc()
			return nil, otter.ErrNotFound
		}
	}

	return tileSamples, nil
}

// getTileSamplesCached returns the tile at localTileCoord using f's cache.
func (f *GeoTIFF) getTileSamplesCached(ctx context.Context, localTileCoord tileCoord) ([]float32, error) {
	return f.tileSamplesCache.Get(ctx, localTileCoord, otter.LoaderFunc[tileCoord, []float32](f.getTileSamples))
}

// localTileCoord returns the tile containing the pixel at (row, col).
func (f *GeoTIFF) localTileCoord(row, col int) (tileCoord, bool) {
	if col < 0 || f.imageWidth <= col || row < 0 || f.imageLength <= row {
		return tileCoord{}, false
	}
	return tileCoord{
		C: col / f.tileWidth,
		R: row / f.tileLength,
	}, true
}

// tileSample returns the sample from tileSamples at the pixel (row, col).
func (f *GeoTIFF) tileSample(tileSamples []float32, row, col int) float64 {
	sample := tileSamples[col%f.tileWidth+(row%f.tileLength)*f.tileWidth]
	if (f.hasNoData && sample == f.noData) || math.IsNaN(float64(sample)) {
		return NoData
	}
	return float64(sample)
}
