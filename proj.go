package terrain

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/twpayne/go-proj/v10"
)

// A Projector converts between geographic and UTM coordinates.
type Projector interface {
	LatLonToUTMForceZone(zone int, lat, lon float64) (float64, float64, error)
	UTMToLatLon(zone int, referenceLat, easting, northing float64) (float64, float64, error)
}

// A SeriesProjector is a Projector using the Transverse Mercator series of
// LatLonToUTMForceZone and UTMToLatLon.
type SeriesProjector struct{}

func (SeriesProjector) LatLonToUTMForceZone(zone int, lat, lon float64) (float64, float64, error) {
	easting, northing := LatLonToUTMForceZone(zone, lat, lon)
	return easting, northing, nil
}

func (SeriesProjector) UTMToLatLon(zone int, referenceLat, easting, northing float64) (float64, float64, error) {
	lat, lon := UTMToLatLon(zone, referenceLat, easting, northing)
	return lat, lon, nil
}

// A utmCRS identifies a WGS84 UTM coordinate reference system.
type utmCRS struct {
	zone  int
	south bool
}

func (c utmCRS) String() string {
	if c.south {
		return fmt.Sprintf("EPSG:327%02d", c.zone)
	}
	return fmt.Sprintf("EPSG:326%02d", c.zone)
}

// proj4 returns c as a proj4 definition.
func (c utmCRS) proj4() string {
	if c.south {
		return fmt.Sprintf("+proj=utm +zone=%d +south +datum=WGS84 +units=m +no_defs", c.zone)
	}
	return fmt.Sprintf("+proj=utm +zone=%d +datum=WGS84 +units=m +no_defs", c.zone)
}

// A PROJTransformer is a Projector backed by PROJ. It caches one
// transformation per zone and hemisphere, and is safe for concurrent use.
type PROJTransformer struct {
	mutex     sync.Mutex
	cacheSize int
	pjCache   *lru.Cache[utmCRS, *proj.PJ]
}

// A PROJTransformerOption sets an option on a PROJTransformer.
type PROJTransformerOption func(*PROJTransformer)

// WithPROJCacheSize sets the number of transformations kept.
func WithPROJCacheSize(cacheSize int) PROJTransformerOption {
	return func(t *PROJTransformer) {
		t.cacheSize = cacheSize
	}
}

// NewPROJTransformer returns a new PROJTransformer with the given options.
func NewPROJTransformer(options ...PROJTransformerOption) (*PROJTransformer, error) {
	t := &PROJTransformer{
		cacheSize: 8,
	}
	for _, option := range options {
		option(t)
	}

	var err error
	t.pjCache, err = lru.NewWithEvict(t.cacheSize, func(key utmCRS, value *proj.PJ) {
		projCacheEvictions.Inc()
		value.Destroy()
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// LatLonToUTMForceZone returns the UTM coordinates of (lat, lon) in zone,
// in the southern hemisphere CRS if lat is negative.
func (t *PROJTransformer) LatLonToUTMForceZone(zone int, lat, lon float64) (float64, float64, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	pj, err := t.getPJCached(utmCRS{zone: zone, south: lat < 0})
	if err != nil {
		return 0, 0, err
	}
	// EPSG:4326 has latitude first.
	coord, err := pj.Forward(proj.NewCoord(lat, lon, 0, 0))
	if err != nil {
		return 0, 0, err
	}
	return coord[0], coord[1], nil
}

// UTMToLatLon returns the geographic coordinates of (easting, northing) in
// zone, in the hemisphere of referenceLat.
func (t *PROJTransformer) UTMToLatLon(zone int, referenceLat, easting, northing float64) (float64, float64, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	pj, err := t.getPJCached(utmCRS{zone: zone, south: referenceLat < 0})
	if err != nil {
		return 0, 0, err
	}
	coord, err := pj.Inverse(proj.NewCoord(easting, northing, 0, 0))
	if err != nil {
		return 0, 0, err
	}
	return coord[0], coord[1], nil
}

// Close releases all cached transformations.
func (t *PROJTransformer) Close() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.pjCache.Purge()
}

// getPJCached returns the transformation from WGS84 to crs, creating it if
// needed. t.mutex must be held.
func (t *PROJTransformer) getPJCached(crs utmCRS) (*proj.PJ, error) {
	if pj, ok := t.pjCache.Get(crs); ok {
		projCacheHits.Inc()
		return pj, nil
	}

	projCacheMisses.Inc()

	if crs.zone < 1 || crs.zone > 60 {
		return nil, fmt.Errorf("%d: invalid utm zone", crs.zone)
	}
	pj, err := proj.NewCRSToCRS("EPSG:4326", crs.String(), nil)
	if err != nil {
		return nil, err
	}
	t.pjCache.Add(crs, pj)
	return pj, nil
}
