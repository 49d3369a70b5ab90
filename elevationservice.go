package terrain

// An ElevationService returns elevations at geographic coordinates by
// interpolating a DEM in a UTM zone.
type ElevationService struct {
	dem       *RasterGrid
	projector Projector
	zone      int
}

// An ElevationServiceOption sets an option on an ElevationService.
type ElevationServiceOption func(*ElevationService)

// WithProjector sets the Projector used to convert geographic coordinates to
// the DEM's frame.
func WithProjector(projector Projector) ElevationServiceOption {
	return func(s *ElevationService) {
		s.projector = projector
	}
}

// WithUTMZone sets the UTM zone of the DEM.
func WithUTMZone(zone int) ElevationServiceOption {
	return func(s *ElevationService) {
		s.zone = zone
	}
}

// NewElevationService returns a new ElevationService for dem, which is in
// settings' UTM zone unless overridden by options.
func NewElevationService(dem *RasterGrid, settings Settings, options ...ElevationServiceOption) (*ElevationService, error) {
	if !dem.IsLoaded {
		return nil, ErrNotLoaded
	}
	s := &ElevationService{
		dem:       dem,
		projector: SeriesProjector{},
		zone:      settings.UTMZone,
	}
	for _, option := range options {
		option(s)
	}
	return s, nil
}

// Elevation returns the elevation at p, or the DEM's no-data value if p is
// outside it.
func (s *ElevationService) Elevation(p GeoPoint) (float64, error) {
	x, y, err := s.projector.LatLonToUTMForceZone(s.zone, p.Latitude, p.Longitude)
	if err != nil {
		return 0, err
	}
	return s.dem.InterpolateBilinear(x, y), nil
}

// Elevations returns the elevations at points.
func (s *ElevationService) Elevations(points []GeoPoint) ([]float64, error) {
	elevations := make([]float64, len(points))
	for i, p := range points {
		var err error
		elevations[i], err = s.Elevation(p)
		if err != nil {
			return nil, err
		}
	}
	return elevations, nil
}
