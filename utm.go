package terrain

import "math"

// Transverse Mercator series from USGS Bulletin 1532 (Snyder, Map
// Projections: A Working Manual) on the WGS84 ellipsoid.
const (
	equatorialRadius    = 6378137.0
	eccentricitySquared = 6.69438000426083e-3
	utmScaleFactor      = 0.9996
	utmFalseEasting     = 500000.0
	utmFalseNorthing    = 10000000.0
)

// LatLonToUTM returns the UTM coordinates and zone of (lat, lon), in decimal
// degrees. The zone follows the Norway and Svalbard exceptions.
func LatLonToUTM(lat, lon float64) (float64, float64, int) {
	zone := UTMZone(lat, lon)
	easting, northing := LatLonToUTMForceZone(zone, lat, lon)
	return easting, northing, zone
}

// UTMZone returns the UTM zone of (lat, lon).
func UTMZone(lat, lon float64) int {
	lon = normalizeLongitude(lon)
	zone := max(int(math.Ceil((lon+180)/6)), 1)

	if lat >= 56 && lat < 64 && lon >= 3 && lon < 12 {
		zone = 32
	}
	if lat >= 72 && lat < 84 {
		switch {
		case lon >= 0 && lon < 9:
			zone = 31
		case lon >= 9 && lon < 21:
			zone = 33
		case lon >= 21 && lon < 33:
			zone = 35
		case lon >= 33 && lon < 42:
			zone = 37
		}
	}
	return zone
}

// LatLonToUTMForceZone returns the UTM coordinates of (lat, lon) in zone.
// Southern latitudes get the false northing.
func LatLonToUTMForceZone(zone int, lat, lon float64) (float64, float64) {
	const (
		e2 = eccentricitySquared
		e4 = e2 * e2
		e6 = e4 * e2
		ep = e2 / (1 - e2)
	)

	latRad := lat * degToRad
	lonRad := normalizeLongitude(lon) * degToRad
	lonOriginRad := centralMeridian(zone) * degToRad

	sinLat, cosLat, tanLat := math.Sin(latRad), math.Cos(latRad), math.Tan(latRad)
	n := equatorialRadius / math.Sqrt(1-e2*sinLat*sinLat)
	t := tanLat * tanLat
	c := ep * cosLat * cosLat
	a := cosLat * (lonRad - lonOriginRad)

	m := equatorialRadius * ((1-e2/4-3*e4/64-5*e6/256)*latRad -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*latRad) +
		(15*e4/256+45*e6/1024)*math.Sin(4*latRad) -
		(35*e6/3072)*math.Sin(6*latRad))

	a2 := a * a
	a3 := a2 * a
	a4 := a3 * a
	a5 := a4 * a
	a6 := a5 * a

	easting := utmScaleFactor*n*(a+(1-t+c)*a3/6+
		(5-18*t+t*t+72*c-58*ep)*a5/120) + utmFalseEasting

	northing := utmScaleFactor * (m + n*tanLat*(a2/2+
		(5-t+9*c+4*c*c)*a4/24+
		(61-58*t+t*t+600*c-330*ep)*a6/720))
	if lat < 0 {
		northing += utmFalseNorthing
	}

	return easting, northing
}

// UTMToLatLon returns the geographic coordinates of (easting, northing) in
// zone. A UTM northing alone does not tell the hemisphere, so the caller
// passes a latitude in the same hemisphere as referenceLat: a negative
// value means southern.
func UTMToLatLon(zone int, referenceLat, easting, northing float64) (float64, float64) {
	const (
		e2 = eccentricitySquared
		e4 = e2 * e2
		e6 = e4 * e2
		ep = e2 / (1 - e2)
	)
	e1 := (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2))

	x := easting - utmFalseEasting
	y := northing
	if referenceLat < 0 {
		y -= utmFalseNorthing
	}

	m := y / utmScaleFactor
	mu := m / (equatorialRadius * (1 - e2/4 - 3*e4/64 - 5*e6/256))

	phi1 := mu +
		(3*e1/2-27*e1*e1*e1/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*e1*e1*e1*e1/32)*math.Sin(4*mu) +
		(151*e1*e1*e1/96)*math.Sin(6*mu)

	sinPhi1, cosPhi1, tanPhi1 := math.Sin(phi1), math.Cos(phi1), math.Tan(phi1)
	n1 := equatorialRadius / math.Sqrt(1-e2*sinPhi1*sinPhi1)
	t1 := tanPhi1 * tanPhi1
	c1 := ep * cosPhi1 * cosPhi1
	r1 := equatorialRadius * (1 - e2) / math.Pow(1-e2*sinPhi1*sinPhi1, 1.5)
	d := x / (n1 * utmScaleFactor)

	d2 := d * d
	d3 := d2 * d
	d4 := d3 * d
	d5 := d4 * d
	d6 := d5 * d

	lat := phi1 - (n1*tanPhi1/r1)*(d2/2-
		(5+3*t1+10*c1-4*c1*c1-9*ep)*d4/24+
		(61+90*t1+298*c1+45*t1*t1-252*ep-3*c1*c1)*d6/720)

	lon := (d - (1+2*t1+c1)*d3/6 +
		(5-2*c1+28*t1-3*c1*c1+8*ep+24*t1*t1)*d5/120) / cosPhi1

	return lat * radToDeg, lon*radToDeg + centralMeridian(zone)
}

// IsValidUTMTimeZone returns whether the central meridian of timeZone, in
// hours east of UTC, is at most 7.5° east of the central meridian of
// utmZone. Longitudes are compared across the antimeridian.
func IsValidUTMTimeZone(utmZone, timeZone int) bool {
	lonUTMZone := float64((utmZone-1)*6 - 180 + 3)
	lonTimeZone := float64(timeZone * 15)
	return math.Remainder(lonTimeZone-lonUTMZone, 360) <= 7.5
}

// centralMeridian returns the longitude of the central meridian of zone.
func centralMeridian(zone int) float64 {
	return float64(zone-1)*6 - 180 + 3
}

// normalizeLongitude returns lon in [-180, 180).
func normalizeLongitude(lon float64) float64 {
	return (lon + 180) - math.Floor((lon+180)/360)*360 - 180
}
