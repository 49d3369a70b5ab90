package terrain

import "errors"

var errParse = errors.New("parse error")

// A GeoKey is a GeoTIFF GeoKey identifier.
type GeoKey uint16

const (
	GeoKeyGTModelType  GeoKey = 1024
	GeoKeyGTRasterType GeoKey = 1025
	GeoKeyGTCitation   GeoKey = 1026

	GeoKeyGeodeticCRS   GeoKey = 2048
	GeoKeyGeogCitation  GeoKey = 2049
	GeoKeyGeodeticDatum GeoKey = 2050
	GeoKeyAngularUnits  GeoKey = 2054
	GeoKeyEllipsoid     GeoKey = 2056

	GeoKeyProjectedCRS GeoKey = 3072
	GeoKeyPCSCitation  GeoKey = 3073
	GeoKeyProjection   GeoKey = 3074
	GeoKeyProjMethod   GeoKey = 3075
	GeoKeyLinearUnits  GeoKey = 3076

	GeoKeyVertical      GeoKey = 4096
	GeoKeyVerticalUnits GeoKey = 4099
)

const (
	modelTypeProjected   = 1
	linearUnitsMetre     = 9001
	tagGeoDoubleParams   = 34736
	tagGeoASCIIParams    = 34737
	epsgWGS84UTMNorth    = 32600
	epsgWGS84UTMSouth    = 32700
	epsgETRS89UTM        = 25800
	epsgETRS89UTMMinZone = 28
	epsgETRS89UTMMaxZone = 38
)

// ParsedGeoKeys are the values of a GeoTIFF GeoKey directory, by type.
type ParsedGeoKeys struct {
	Params       map[GeoKey]int
	DoubleParams map[GeoKey]float64
	ASCIIParams  map[GeoKey]string
}

// ParseGeoKeys parses a GeoKey directory and its double and ASCII parameter
// tags.
func ParseGeoKeys(directory []uint16, doubleParams []float64, asciiParams []byte) (*ParsedGeoKeys, error) {
	if len(directory) < 4 {
		return nil, errParse
	}

	if keyDirectoryVersion := int(directory[0]); keyDirectoryVersion != 1 {
		return nil, errParse
	}
	if keyRevision := int(directory[1]); keyRevision != 1 {
		return nil, errParse
	}
	if minorRevision := int(directory[2]); minorRevision != 0 && minorRevision != 1 {
		return nil, errParse
	}
	numberOfKeys := int(directory[3])
	if len(directory) != 4+4*numberOfKeys {
		return nil, errParse
	}

	parsedGeoKeys := &ParsedGeoKeys{
		Params:       make(map[GeoKey]int),
		DoubleParams: make(map[GeoKey]float64),
		ASCIIParams:  make(map[GeoKey]string),
	}
	for i := range numberOfKeys {
		keyValues := directory[4+4*i : 4+4*(i+1)]
		key := GeoKey(keyValues[0])
		tiffTagLocation := int(keyValues[1])
		numberOfValues := int(keyValues[2])
		switch tiffTagLocation {
		case 0:
			if numberOfValues != 1 {
				return nil, errParse
			}
			parsedGeoKeys.Params[key] = int(keyValues[3])
		case tagGeoDoubleParams:
			index := int(keyValues[3])
			if numberOfValues != 1 {
				return nil, errors.ErrUnsupported
			}
			if index >= len(doubleParams) {
				return nil, errParse
			}
			parsedGeoKeys.DoubleParams[key] = doubleParams[index]
		case tagGeoASCIIParams:
			index := int(keyValues[3])
			if index+numberOfValues > len(asciiParams) {
				return nil, errParse
			}
			parsedGeoKeys.ASCIIParams[key] = string(asciiParams[index : index+numberOfValues])
		default:
			return nil, errors.ErrUnsupported
		}
	}
	return parsedGeoKeys, nil
}

// IsProjected returns whether k describe a projected model.
func (k *ParsedGeoKeys) IsProjected() bool {
	return k.Params[GeoKeyGTModelType] == modelTypeProjected
}

// UTMZone returns the UTM zone and hemisphere of the projected CRS in k, if
// it is a WGS84 or ETRS89 UTM CRS with an EPSG code.
func (k *ParsedGeoKeys) UTMZone() (zone int, south bool, ok bool) {
	if !k.IsProjected() {
		return 0, false, false
	}
	if units, ok := k.Params[GeoKeyLinearUnits]; ok && units != linearUnitsMetre {
		return 0, false, false
	}
	switch crs := k.Params[GeoKeyProjectedCRS]; {
	case crs > epsgWGS84UTMNorth && crs <= epsgWGS84UTMNorth+60:
		return crs - epsgWGS84UTMNorth, false, true
	case crs > epsgWGS84UTMSouth && crs <= epsgWGS84UTMSouth+60:
		return crs - epsgWGS84UTMSouth, true, true
	case crs >= epsgETRS89UTM+epsgETRS89UTMMinZone && crs <= epsgETRS89UTM+epsgETRS89UTMMaxZone:
		return crs - epsgETRS89UTM, false, true
	default:
		return 0, false, false
	}
}
