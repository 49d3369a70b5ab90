package terrain

import (
	"fmt"
	"sync"

	"github.com/ctessum/geom/proj"
)

// A GeomProjector is a pure Go Projector backed by
// github.com/ctessum/geom/proj. It is safe for concurrent use.
type GeomProjector struct {
	wgs84      *proj.SR
	mutex      sync.Mutex
	transforms map[utmCRS]*geomTransforms
}

type geomTransforms struct {
	forward proj.Transformer
	inverse proj.Transformer
}

// NewGeomProjector returns a new GeomProjector.
func NewGeomProjector() (*GeomProjector, error) {
	wgs84, err := proj.Parse("+proj=longlat +datum=WGS84 +no_defs")
	if err != nil {
		return nil, err
	}
	return &GeomProjector{
		wgs84:      wgs84,
		transforms: make(map[utmCRS]*geomTransforms),
	}, nil
}

// LatLonToUTMForceZone returns the UTM coordinates of (lat, lon) in zone,
// in the southern hemisphere CRS if lat is negative.
func (p *GeomProjector) LatLonToUTMForceZone(zone int, lat, lon float64) (float64, float64, error) {
	transforms, err := p.getTransforms(utmCRS{zone: zone, south: lat < 0})
	if err != nil {
		return 0, 0, err
	}
	return transforms.forward(lon, lat)
}

// UTMToLatLon returns the geographic coordinates of (easting, northing) in
// zone, in the hemisphere of referenceLat.
func (p *GeomProjector) UTMToLatLon(zone int, referenceLat, easting, northing float64) (float64, float64, error) {
	transforms, err := p.getTransforms(utmCRS{zone: zone, south: referenceLat < 0})
	if err != nil {
		return 0, 0, err
	}
	lon, lat, err := transforms.inverse(easting, northing)
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

func (p *GeomProjector) getTransforms(crs utmCRS) (*geomTransforms, error) {
	if crs.zone < 1 || crs.zone > 60 {
		return nil, fmt.Errorf("%d: invalid utm zone", crs.zone)
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if transforms, ok := p.transforms[crs]; ok {
		return transforms, nil
	}

	utm, err := proj.Parse(crs.proj4())
	if err != nil {
		return nil, err
	}
	forward, err := p.wgs84.NewTransform(utm)
	if err != nil {
		return nil, err
	}
	inverse, err := utm.NewTransform(p.wgs84)
	if err != nil {
		return nil, err
	}
	transforms := &geomTransforms{
		forward: forward,
		inverse: inverse,
	}
	p.transforms[crs] = transforms
	return transforms, nil
}
